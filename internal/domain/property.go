package domain

import (
	"context"
	"errors"
)

type PropertyStatus string

const (
	PropertyOccupied PropertyStatus = "occupied"
	PropertyVacant   PropertyStatus = "vacant"
)

// Toggle returns the flipped occupancy status.
func (s PropertyStatus) Toggle() PropertyStatus {
	if s == PropertyOccupied {
		return PropertyVacant
	}
	return PropertyOccupied
}

type Property struct {
	ID          string         `json:"id"`
	Address     string         `json:"address"`
	Status      PropertyStatus `json:"status"`
	DefaultRent float64        `json:"default_rent"`
	OwnerID     string         `json:"owner_id"`
}

// NewProperty creates a vacant Property with validated required fields.
func NewProperty(address string, defaultRent float64, ownerID string) (*Property, error) {
	if address == "" {
		return nil, errors.New("property: address is required")
	}
	if defaultRent < 0 {
		return nil, errors.New("property: default rent must be non-negative")
	}
	if ownerID == "" {
		return nil, errors.New("property: owner ID is required")
	}
	return &Property{
		ID:          NewID("p_"),
		Address:     address,
		Status:      PropertyVacant,
		DefaultRent: defaultRent,
		OwnerID:     ownerID,
	}, nil
}

type PropertyRepository interface {
	Create(ctx context.Context, p *Property) error
	List(ctx context.Context, ownerID string) ([]*Property, error)
	GetByID(ctx context.Context, ownerID, id string) (*Property, error)
	// ToggleStatus flips occupied<->vacant. A non-owned or absent id is a
	// silent no-op.
	ToggleStatus(ctx context.Context, ownerID, id string) error
	// Delete cascades to leases and their payments. A non-owned or absent id
	// is a silent no-op.
	Delete(ctx context.Context, ownerID, id string) error
}
