package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// User roles.
const (
	RoleOwner  = "owner"
	RoleTenant = "tenant"
)

type User struct {
	Email        string    `json:"email"` // unique, lowercased
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // "owner" or "tenant"
	SharedID     string    `json:"shared_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a User with validated required fields. The email is
// normalized to lower case; the password hash is supplied by the auth layer.
func NewUser(email, name, passwordHash, role, sharedID string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("user: email is required")
	}
	if passwordHash == "" {
		return nil, errors.New("user: password hash is required")
	}
	if role != RoleOwner && role != RoleTenant {
		return nil, errors.New("user: role must be owner or tenant")
	}
	if sharedID == "" {
		return nil, errors.New("user: shared ID is required")
	}
	return &User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		SharedID:     sharedID,
		CreatedAt:    time.Now(),
	}, nil
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	// GetByEmail is global and case-insensitive; there is no owner scope on
	// accounts.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
