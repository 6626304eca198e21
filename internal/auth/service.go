package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"

	"github.com/rentfolio/rentfolio/internal/domain"
)

// Sentinel errors for the auth package.
var (
	ErrInvalidCredentials  = errors.New("auth: invalid credentials")
	ErrUserAlreadyExists   = errors.New("auth: user already exists")
	ErrUserNotFound        = errors.New("auth: user not found")
	ErrPasswordTooShort    = errors.New("auth: password must be at least 6 characters")
	ErrPasswordMismatch    = errors.New("auth: passwords do not match")
	ErrTenantNotRegistered = errors.New("auth: email is not registered by a landlord")
)

// minPasswordLen matches the legacy sign-up rule.
const minPasswordLen = 6

// argon2id parameters following OWASP recommendations.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// Service provides authentication operations over the user store.
type Service struct {
	users      domain.UserRepository
	tenants    domain.TenantRepository
	sessions   SessionStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewService creates a new auth service.
func NewService(users domain.UserRepository, tenants domain.TenantRepository, sessions SessionStore, jwtSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		tenants:    tenants,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Register creates a new user with email/password. Tenant-role sign-ups are
// only accepted when a landlord has already registered the email as a tenant
// contact. Returns the created user.
func (s *Service) Register(ctx context.Context, email, password, confirm, name, role string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("auth.Register: %w", ErrPasswordTooShort)
	}
	if password != confirm {
		return nil, fmt.Errorf("auth.Register: %w", ErrPasswordMismatch)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("auth.Register: %w", ErrUserAlreadyExists)
	}

	if role == domain.RoleTenant {
		registered, existsErr := s.tenants.ExistsByEmail(ctx, email)
		if existsErr != nil {
			return nil, fmt.Errorf("auth.Register: %w", existsErr)
		}
		if !registered {
			return nil, fmt.Errorf("auth.Register: %w", ErrTenantNotRegistered)
		}
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	user, err := domain.NewUser(email, name, hash, role, domain.NewID("u_"))
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	return user, nil
}

// Login validates email/password and returns access + refresh JWT tokens plus
// the authenticated user. Tenant-role logins require a matching tenant
// contact, same as registration.
func (s *Service) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *domain.User, err error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err = s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", "", nil, fmt.Errorf("auth.Login: %w", ErrInvalidCredentials)
	}

	if !verifyPassword(password, user.PasswordHash) {
		return "", "", nil, fmt.Errorf("auth.Login: %w", ErrInvalidCredentials)
	}

	if user.Role == domain.RoleTenant {
		registered, existsErr := s.tenants.ExistsByEmail(ctx, email)
		if existsErr != nil {
			return "", "", nil, fmt.Errorf("auth.Login: %w", existsErr)
		}
		if !registered {
			return "", "", nil, fmt.Errorf("auth.Login: %w", ErrTenantNotRegistered)
		}
	}

	accessToken, err = IssueAccessToken(s.jwtSecret, user.Email, user.SharedID, user.Role, s.accessTTL)
	if err != nil {
		return "", "", nil, fmt.Errorf("auth.Login: %w", err)
	}

	sessionID := uuid.NewString()
	refreshToken, err = IssueRefreshToken(s.jwtSecret, user.Email, user.SharedID, user.Role, sessionID, s.refreshTTL)
	if err != nil {
		return "", "", nil, fmt.Errorf("auth.Login: %w", err)
	}

	if err := s.sessions.Put(ctx, sessionID, s.refreshTTL); err != nil {
		return "", "", nil, fmt.Errorf("auth.Login: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// Refresh validates a refresh token against the session registry and issues a
// new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := ValidateToken(s.jwtSecret, refreshToken)
	if err != nil {
		return "", fmt.Errorf("auth.Refresh: %w", err)
	}

	if claims.TokenType != TokenTypeRefresh {
		return "", fmt.Errorf("auth.Refresh: %w", ErrInvalidToken)
	}

	active, err := s.sessions.Active(ctx, claims.SessionID)
	if err != nil {
		return "", fmt.Errorf("auth.Refresh: %w", err)
	}
	if !active {
		return "", fmt.Errorf("auth.Refresh: %w", ErrInvalidToken)
	}

	// Verify the user still exists and fetch the current role.
	user, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		return "", fmt.Errorf("auth.Refresh: %w", ErrUserNotFound)
	}

	newAccess, err := IssueAccessToken(s.jwtSecret, user.Email, user.SharedID, user.Role, s.accessTTL)
	if err != nil {
		return "", fmt.Errorf("auth.Refresh: %w", err)
	}

	return newAccess, nil
}

// Logout revokes the refresh session carried by the token.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := ValidateToken(s.jwtSecret, refreshToken)
	if err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	if claims.TokenType != TokenTypeRefresh || claims.SessionID == "" {
		return fmt.Errorf("auth.Logout: %w", ErrInvalidToken)
	}

	if err := s.sessions.Revoke(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	return nil
}

// hashPassword generates an argon2id hash with a random salt.
// Format: hex(salt) + "$" + hex(hash)
func hashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(hash), nil
}

// verifyPassword checks a password against an argon2id hash.
func verifyPassword(password, encoded string) bool {
	var saltHex, hashHex string
	for i := range len(encoded) {
		if encoded[i] == '$' {
			saltHex = encoded[:i]
			hashHex = encoded[i+1:]
			break
		}
	}

	if saltHex == "" || hashHex == "" {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}

	expectedHash, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	// Constant-time comparison to prevent timing attacks.
	if len(computed) != len(expectedHash) {
		return false
	}

	var diff byte
	for i := range computed {
		diff |= computed[i] ^ expectedHash[i]
	}

	return diff == 0
}
