package v1_test

import (
	"context"

	"github.com/rentfolio/rentfolio/internal/domain"
	"github.com/rentfolio/rentfolio/internal/server/middleware"
)

// ---------------------------------------------------------------------------
// Context helpers: inject owner/email/role into context for the *Ctx methods
// ---------------------------------------------------------------------------

func ownerCtx(ownerID string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, middleware.ContextKeyOwnerID, ownerID)
	ctx = context.WithValue(ctx, middleware.ContextKeyEmail, "demo@demo.com")
	ctx = context.WithValue(ctx, middleware.ContextKeyRole, middleware.RoleOwner)
	return ctx
}

func tenantCtx(email string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, middleware.ContextKeyOwnerID, "u_"+email)
	ctx = context.WithValue(ctx, middleware.ContextKeyEmail, email)
	ctx = context.WithValue(ctx, middleware.ContextKeyRole, middleware.RoleTenant)
	return ctx
}

// ---------------------------------------------------------------------------
// Mock DataStore
// ---------------------------------------------------------------------------

type mockDataStore struct {
	users       domain.UserRepository
	properties  domain.PropertyRepository
	tenants     domain.TenantRepository
	leases      domain.LeaseRepository
	payments    domain.PaymentRepository
	paymentInfo domain.OwnerPaymentInfoRepository
	stats       domain.StatsRepository
	audit       domain.AuditRepository
}

// newMockStore returns a store with a no-op audit repo so mutation handlers
// can record entries without each test wiring one up.
func newMockStore() *mockDataStore {
	return &mockDataStore{
		audit: &mockAuditRepo{
			recordFunc: func(_ context.Context, _ *domain.AuditEntry) error { return nil },
		},
	}
}

func (m *mockDataStore) Users() domain.UserRepository                   { return m.users }
func (m *mockDataStore) Properties() domain.PropertyRepository          { return m.properties }
func (m *mockDataStore) Tenants() domain.TenantRepository               { return m.tenants }
func (m *mockDataStore) Leases() domain.LeaseRepository                 { return m.leases }
func (m *mockDataStore) Payments() domain.PaymentRepository             { return m.payments }
func (m *mockDataStore) PaymentInfo() domain.OwnerPaymentInfoRepository { return m.paymentInfo }
func (m *mockDataStore) Stats() domain.StatsRepository                  { return m.stats }
func (m *mockDataStore) Audit() domain.AuditRepository                  { return m.audit }

// ---------------------------------------------------------------------------
// Mock UserRepository
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	createFunc     func(ctx context.Context, u *domain.User) error
	getByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.createFunc(ctx, u)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFunc(ctx, email)
}

// ---------------------------------------------------------------------------
// Mock PropertyRepository
// ---------------------------------------------------------------------------

type mockPropertyRepo struct {
	createFunc       func(ctx context.Context, p *domain.Property) error
	listFunc         func(ctx context.Context, ownerID string) ([]*domain.Property, error)
	getByIDFunc      func(ctx context.Context, ownerID, id string) (*domain.Property, error)
	toggleStatusFunc func(ctx context.Context, ownerID, id string) error
	deleteFunc       func(ctx context.Context, ownerID, id string) error
}

func (m *mockPropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	return m.createFunc(ctx, p)
}

func (m *mockPropertyRepo) List(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	return m.listFunc(ctx, ownerID)
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.Property, error) {
	return m.getByIDFunc(ctx, ownerID, id)
}

func (m *mockPropertyRepo) ToggleStatus(ctx context.Context, ownerID, id string) error {
	return m.toggleStatusFunc(ctx, ownerID, id)
}

func (m *mockPropertyRepo) Delete(ctx context.Context, ownerID, id string) error {
	return m.deleteFunc(ctx, ownerID, id)
}

// ---------------------------------------------------------------------------
// Mock TenantRepository
// ---------------------------------------------------------------------------

type mockTenantRepo struct {
	createFunc        func(ctx context.Context, t *domain.Tenant) error
	listFunc          func(ctx context.Context, ownerID string) ([]*domain.Tenant, error)
	deleteFunc        func(ctx context.Context, ownerID, id string) error
	getByEmailFunc    func(ctx context.Context, email string) (*domain.Tenant, error)
	existsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockTenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	return m.createFunc(ctx, t)
}

func (m *mockTenantRepo) List(ctx context.Context, ownerID string) ([]*domain.Tenant, error) {
	return m.listFunc(ctx, ownerID)
}

func (m *mockTenantRepo) Delete(ctx context.Context, ownerID, id string) error {
	return m.deleteFunc(ctx, ownerID, id)
}

func (m *mockTenantRepo) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	return m.getByEmailFunc(ctx, email)
}

func (m *mockTenantRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmailFunc(ctx, email)
}

// ---------------------------------------------------------------------------
// Mock LeaseRepository
// ---------------------------------------------------------------------------

type mockLeaseRepo struct {
	createFunc      func(ctx context.Context, ownerID string, l *domain.Lease) error
	listFunc        func(ctx context.Context, ownerID string) ([]*domain.LeaseView, error)
	getByTenantFunc func(ctx context.Context, tenantID string) (*domain.LeaseView, error)
	deleteFunc      func(ctx context.Context, ownerID, id string) error
}

func (m *mockLeaseRepo) Create(ctx context.Context, ownerID string, l *domain.Lease) error {
	return m.createFunc(ctx, ownerID, l)
}

func (m *mockLeaseRepo) List(ctx context.Context, ownerID string) ([]*domain.LeaseView, error) {
	return m.listFunc(ctx, ownerID)
}

func (m *mockLeaseRepo) GetByTenant(ctx context.Context, tenantID string) (*domain.LeaseView, error) {
	return m.getByTenantFunc(ctx, tenantID)
}

func (m *mockLeaseRepo) Delete(ctx context.Context, ownerID, id string) error {
	return m.deleteFunc(ctx, ownerID, id)
}

// ---------------------------------------------------------------------------
// Mock PaymentRepository
// ---------------------------------------------------------------------------

type mockPaymentRepo struct {
	createFunc      func(ctx context.Context, ownerID string, p *domain.Payment) error
	listByOwnerFunc func(ctx context.Context, ownerID string) ([]*domain.PaymentView, error)
	listByLeaseFunc func(ctx context.Context, leaseID string) ([]*domain.Payment, error)
	togglePaidFunc  func(ctx context.Context, ownerID, id string) error
	deleteFunc      func(ctx context.Context, ownerID, id string) error
}

func (m *mockPaymentRepo) Create(ctx context.Context, ownerID string, p *domain.Payment) error {
	return m.createFunc(ctx, ownerID, p)
}

func (m *mockPaymentRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.PaymentView, error) {
	return m.listByOwnerFunc(ctx, ownerID)
}

func (m *mockPaymentRepo) ListByLease(ctx context.Context, leaseID string) ([]*domain.Payment, error) {
	return m.listByLeaseFunc(ctx, leaseID)
}

func (m *mockPaymentRepo) TogglePaid(ctx context.Context, ownerID, id string) error {
	return m.togglePaidFunc(ctx, ownerID, id)
}

func (m *mockPaymentRepo) Delete(ctx context.Context, ownerID, id string) error {
	return m.deleteFunc(ctx, ownerID, id)
}

// ---------------------------------------------------------------------------
// Mock OwnerPaymentInfoRepository
// ---------------------------------------------------------------------------

type mockPaymentInfoRepo struct {
	getFunc func(ctx context.Context, ownerID string) (*domain.OwnerPaymentInfo, error)
	setFunc func(ctx context.Context, info *domain.OwnerPaymentInfo) error
}

func (m *mockPaymentInfoRepo) Get(ctx context.Context, ownerID string) (*domain.OwnerPaymentInfo, error) {
	return m.getFunc(ctx, ownerID)
}

func (m *mockPaymentInfoRepo) Set(ctx context.Context, info *domain.OwnerPaymentInfo) error {
	return m.setFunc(ctx, info)
}

// ---------------------------------------------------------------------------
// Mock StatsRepository
// ---------------------------------------------------------------------------

type mockStatsRepo struct {
	summaryFunc func(ctx context.Context, ownerID string) (*domain.KPISummary, error)
}

func (m *mockStatsRepo) Summary(ctx context.Context, ownerID string) (*domain.KPISummary, error) {
	return m.summaryFunc(ctx, ownerID)
}

// ---------------------------------------------------------------------------
// Mock AuditRepository
// ---------------------------------------------------------------------------

type mockAuditRepo struct {
	recordFunc      func(ctx context.Context, entry *domain.AuditEntry) error
	listByOwnerFunc func(ctx context.Context, ownerID string, limit, offset int) ([]*domain.AuditEntry, error)
}

func (m *mockAuditRepo) Record(ctx context.Context, entry *domain.AuditEntry) error {
	return m.recordFunc(ctx, entry)
}

func (m *mockAuditRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.AuditEntry, error) {
	return m.listByOwnerFunc(ctx, ownerID, limit, offset)
}

// ---------------------------------------------------------------------------
// Mock AuthService
// ---------------------------------------------------------------------------

type mockAuthService struct {
	registerFunc func(ctx context.Context, email, password, confirm, name, role string) (*domain.User, error)
	loginFunc    func(ctx context.Context, email, password string) (string, string, *domain.User, error)
	refreshFunc  func(ctx context.Context, refreshToken string) (string, error)
	logoutFunc   func(ctx context.Context, refreshToken string) error
}

func (m *mockAuthService) Register(ctx context.Context, email, password, confirm, name, role string) (*domain.User, error) {
	return m.registerFunc(ctx, email, password, confirm, name, role)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return m.refreshFunc(ctx, refreshToken)
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.logoutFunc(ctx, refreshToken)
}
