package domain

import (
	"context"
	"errors"
)

// Placeholder display values when a joined row cannot be resolved.
const (
	MissingPropertyLabel = "(property?)"
	MissingTenantLabel   = "(tenant?)"
)

type Lease struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"property_id"`
	TenantID   string  `json:"tenant_id"`
	Start      string  `json:"start"` // YYYY-MM-DD
	End        string  `json:"end"`   // YYYY-MM-DD
	Rent       float64 `json:"rent"`
}

// LeaseView is a Lease denormalized for display with the joined property
// address and tenant name.
type LeaseView struct {
	Lease
	PropertyAddress string `json:"property_address"`
	TenantName      string `json:"tenant_name"`
}

// NewLease creates a Lease with validated required fields.
func NewLease(propertyID, tenantID, start, end string, rent float64) (*Lease, error) {
	if propertyID == "" || tenantID == "" {
		return nil, errors.New("lease: property and tenant IDs are required")
	}
	if start == "" || end == "" {
		return nil, errors.New("lease: start and end dates are required")
	}
	if rent < 0 {
		return nil, errors.New("lease: rent must be non-negative")
	}
	return &Lease{
		ID:         NewID("l_"),
		PropertyID: propertyID,
		TenantID:   tenantID,
		Start:      start,
		End:        end,
		Rent:       rent,
	}, nil
}

type LeaseRepository interface {
	// Create inserts the lease and force-sets the referenced property to
	// occupied in one transaction. It fails with ErrNotFound unless both the
	// property and the tenant exist and belong to ownerID.
	Create(ctx context.Context, ownerID string, l *Lease) error
	// List returns leases whose property AND tenant both belong to ownerID,
	// ordered by property address then tenant name.
	List(ctx context.Context, ownerID string) ([]*LeaseView, error)
	// GetByTenant returns the lease held by the given tenant row, or
	// ErrNotFound.
	GetByTenant(ctx context.Context, tenantID string) (*LeaseView, error)
	// Delete is owner-scoped through the property join; a non-owned or absent
	// id is a silent no-op. Payments cascade.
	Delete(ctx context.Context, ownerID, id string) error
}
