package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type mockUserRepo struct {
	CreateFunc     func(ctx context.Context, u *domain.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.CreateFunc(ctx, u)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

type mockTenantRepo struct {
	CreateFunc        func(ctx context.Context, t *domain.Tenant) error
	ListFunc          func(ctx context.Context, ownerID string) ([]*domain.Tenant, error)
	DeleteFunc        func(ctx context.Context, ownerID, id string) error
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.Tenant, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockTenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	return m.CreateFunc(ctx, t)
}

func (m *mockTenantRepo) List(ctx context.Context, ownerID string) ([]*domain.Tenant, error) {
	return m.ListFunc(ctx, ownerID)
}

func (m *mockTenantRepo) Delete(ctx context.Context, ownerID, id string) error {
	return m.DeleteFunc(ctx, ownerID, id)
}

func (m *mockTenantRepo) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockTenantRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.ExistsByEmailFunc(ctx, email)
}

// memoryUsers is a map-backed UserRepository for flows that need real
// round-trips (register then login).
type memoryUsers struct {
	byEmail map[string]*domain.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]*domain.User)}
}

func (m *memoryUsers) Create(_ context.Context, u *domain.User) error {
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func tenantsWithEmails(emails ...string) *mockTenantRepo {
	known := make(map[string]bool, len(emails))
	for _, e := range emails {
		known[e] = true
	}
	return &mockTenantRepo{
		ExistsByEmailFunc: func(_ context.Context, email string) (bool, error) {
			return known[email], nil
		},
	}
}

func newTestService(users domain.UserRepository, tenants domain.TenantRepository) *Service {
	return NewService(users, tenants, NewMemorySessions(), testSecret, 15*time.Minute, 24*time.Hour)
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("owner registration hashes the password", func(t *testing.T) {
		t.Parallel()
		users := newMemoryUsers()
		svc := newTestService(users, tenantsWithEmails())

		user, err := svc.Register(ctx, "  Olive@Example.COM ", "secret1", "secret1", "Olive", domain.RoleOwner)
		require.NoError(t, err)
		assert.Equal(t, "olive@example.com", user.Email)
		assert.Equal(t, domain.RoleOwner, user.Role)
		assert.NotEmpty(t, user.SharedID)
		assert.NotEqual(t, "secret1", user.PasswordHash)
		assert.True(t, verifyPassword("secret1", user.PasswordHash))
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newMemoryUsers(), tenantsWithEmails())

		_, err := svc.Register(ctx, "olive@example.com", "short", "short", "Olive", domain.RoleOwner)
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("rejects mismatched confirmation", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newMemoryUsers(), tenantsWithEmails())

		_, err := svc.Register(ctx, "olive@example.com", "secret1", "secret2", "Olive", domain.RoleOwner)
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		t.Parallel()
		users := newMemoryUsers()
		svc := newTestService(users, tenantsWithEmails())

		_, err := svc.Register(ctx, "olive@example.com", "secret1", "secret1", "Olive", domain.RoleOwner)
		require.NoError(t, err)

		_, err = svc.Register(ctx, "olive@example.com", "secret1", "secret1", "Olive", domain.RoleOwner)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("tenant registration requires a landlord record", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newMemoryUsers(), tenantsWithEmails("john@example.com"))

		_, err := svc.Register(ctx, "stranger@example.com", "secret1", "secret1", "Stranger", domain.RoleTenant)
		assert.ErrorIs(t, err, ErrTenantNotRegistered)

		user, err := svc.Register(ctx, "john@example.com", "secret1", "secret1", "John", domain.RoleTenant)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleTenant, user.Role)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("issues access and refresh tokens", func(t *testing.T) {
		t.Parallel()
		users := newMemoryUsers()
		svc := newTestService(users, tenantsWithEmails())

		_, err := svc.Register(ctx, "olive@example.com", "secret1", "secret1", "Olive", domain.RoleOwner)
		require.NoError(t, err)

		access, refresh, user, err := svc.Login(ctx, "olive@example.com", "secret1")
		require.NoError(t, err)
		require.NotNil(t, user)

		accessClaims, err := ValidateToken(testSecret, access)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeAccess, accessClaims.TokenType)
		assert.Equal(t, user.SharedID, accessClaims.OwnerID)

		refreshClaims, err := ValidateToken(testSecret, refresh)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
		assert.NotEmpty(t, refreshClaims.SessionID)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		t.Parallel()
		users := newMemoryUsers()
		svc := newTestService(users, tenantsWithEmails())

		_, err := svc.Register(ctx, "olive@example.com", "secret1", "secret1", "Olive", domain.RoleOwner)
		require.NoError(t, err)

		_, _, _, err = svc.Login(ctx, "olive@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newMemoryUsers(), tenantsWithEmails())

		_, _, _, err := svc.Login(ctx, "nobody@example.com", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("tenant login requires the landlord record to still exist", func(t *testing.T) {
		t.Parallel()
		users := newMemoryUsers()
		known := map[string]bool{"john@example.com": true}
		tenants := &mockTenantRepo{
			ExistsByEmailFunc: func(_ context.Context, email string) (bool, error) {
				return known[email], nil
			},
		}
		svc := newTestService(users, tenants)

		_, err := svc.Register(ctx, "john@example.com", "secret1", "secret1", "John", domain.RoleTenant)
		require.NoError(t, err)

		// Landlord removes the tenant record; the account is locked out.
		delete(known, "john@example.com")
		_, _, _, err = svc.Login(ctx, "john@example.com", "secret1")
		assert.ErrorIs(t, err, ErrTenantNotRegistered)
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("issues a new access token for an active session", func(t *testing.T) {
		t.Parallel()
		users := newMemoryUsers()
		svc := newTestService(users, tenantsWithEmails())

		_, err := svc.Register(ctx, "olive@example.com", "secret1", "secret1", "Olive", domain.RoleOwner)
		require.NoError(t, err)
		_, refresh, _, err := svc.Login(ctx, "olive@example.com", "secret1")
		require.NoError(t, err)

		access, err := svc.Refresh(ctx, refresh)
		require.NoError(t, err)

		claims, err := ValidateToken(testSecret, access)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
		assert.Equal(t, "olive@example.com", claims.Email)
	})

	t.Run("rejects access tokens", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newMemoryUsers(), tenantsWithEmails())

		access, err := IssueAccessToken(testSecret, "olive@example.com", "u_abc", "owner", time.Hour)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a revoked session", func(t *testing.T) {
		t.Parallel()
		users := newMemoryUsers()
		svc := newTestService(users, tenantsWithEmails())

		_, err := svc.Register(ctx, "olive@example.com", "secret1", "secret1", "Olive", domain.RoleOwner)
		require.NoError(t, err)
		_, refresh, _, err := svc.Login(ctx, "olive@example.com", "secret1")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, refresh))

		_, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects deleted users", func(t *testing.T) {
		t.Parallel()
		users := newMemoryUsers()
		svc := newTestService(users, tenantsWithEmails())

		_, err := svc.Register(ctx, "olive@example.com", "secret1", "secret1", "Olive", domain.RoleOwner)
		require.NoError(t, err)
		_, refresh, _, err := svc.Login(ctx, "olive@example.com", "secret1")
		require.NoError(t, err)

		delete(users.byEmail, "olive@example.com")

		_, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("rejects access tokens", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newMemoryUsers(), tenantsWithEmails())

		access, err := IssueAccessToken(testSecret, "olive@example.com", "u_abc", "owner", time.Hour)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Logout(ctx, access), ErrInvalidToken)
	})

	t.Run("revoking twice is a no-op", func(t *testing.T) {
		t.Parallel()
		users := newMemoryUsers()
		svc := newTestService(users, tenantsWithEmails())

		_, err := svc.Register(ctx, "olive@example.com", "secret1", "secret1", "Olive", domain.RoleOwner)
		require.NoError(t, err)
		_, refresh, _, err := svc.Login(ctx, "olive@example.com", "secret1")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, refresh))
		require.NoError(t, svc.Logout(ctx, refresh))
	})
}
