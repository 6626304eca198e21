package domain

import (
	"context"
	"errors"
	"strings"
)

type Tenant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"` // optional email, stored lowercased
	OwnerID  string `json:"owner_id"`
	SharedID string `json:"shared_id"`
}

// NewTenant creates a Tenant with validated required fields. Contact is
// normalized to lower case so self-service lookup by email stays
// case-insensitive.
func NewTenant(name, contact, ownerID, sharedID string) (*Tenant, error) {
	if name == "" {
		return nil, errors.New("tenant: name is required")
	}
	if ownerID == "" {
		return nil, errors.New("tenant: owner ID is required")
	}
	return &Tenant{
		ID:       NewID("t_"),
		Name:     name,
		Contact:  strings.ToLower(strings.TrimSpace(contact)),
		OwnerID:  ownerID,
		SharedID: sharedID,
	}, nil
}

type TenantRepository interface {
	Create(ctx context.Context, t *Tenant) error
	List(ctx context.Context, ownerID string) ([]*Tenant, error)
	// Delete is owner-scoped; a non-owned or absent id is a silent no-op.
	Delete(ctx context.Context, ownerID, id string) error
	// GetByEmail matches the contact column case-insensitively across all
	// owners. Used to resolve tenant self-service accounts.
	GetByEmail(ctx context.Context, email string) (*Tenant, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
