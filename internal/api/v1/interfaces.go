package v1

import (
	"context"

	"github.com/rentfolio/rentfolio/internal/domain"
)

// DataStore abstracts the repository accessor pattern for handler testing.
// *sqlite.Store and *postgres.Store both satisfy this interface.
type DataStore interface {
	Users() domain.UserRepository
	Properties() domain.PropertyRepository
	Tenants() domain.TenantRepository
	Leases() domain.LeaseRepository
	Payments() domain.PaymentRepository
	PaymentInfo() domain.OwnerPaymentInfoRepository
	Stats() domain.StatsRepository
	Audit() domain.AuditRepository
}

// AuthService abstracts authentication operations for handler testing.
// *auth.Service satisfies this interface.
type AuthService interface {
	Register(ctx context.Context, email, password, confirm, name, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *domain.User, err error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}
