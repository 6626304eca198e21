package domain

import (
	"context"
	"errors"
	"regexp"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

type Payment struct {
	ID      string  `json:"id"`
	LeaseID string  `json:"lease_id"`
	Month   string  `json:"month"` // YYYY-MM
	Amount  float64 `json:"amount"`
	Paid    bool    `json:"paid"`
}

// PaymentView is a Payment denormalized for display with the property address
// and tenant name resolved through the lease.
type PaymentView struct {
	Payment
	PropertyAddress string `json:"property_address"`
	TenantName      string `json:"tenant_name"`
}

// NewPayment creates a Payment with validated required fields. Month ordering
// in lists relies on the exact YYYY-MM layout, so it is enforced here.
func NewPayment(leaseID, month string, amount float64, paid bool) (*Payment, error) {
	if leaseID == "" {
		return nil, errors.New("payment: lease ID is required")
	}
	if !monthRe.MatchString(month) {
		return nil, errors.New("payment: month must be formatted YYYY-MM")
	}
	if amount < 0 {
		return nil, errors.New("payment: amount must be non-negative")
	}
	return &Payment{
		ID:      NewID("pay_"),
		LeaseID: leaseID,
		Month:   month,
		Amount:  amount,
		Paid:    paid,
	}, nil
}

type PaymentRepository interface {
	// Create fails with ErrNotFound unless the lease exists and both its
	// property and tenant belong to ownerID.
	Create(ctx context.Context, ownerID string, p *Payment) error
	// ListByOwner returns payments whose lease's property AND tenant both
	// belong to ownerID, ordered by month descending (year then two-digit
	// month substrings).
	ListByOwner(ctx context.Context, ownerID string) ([]*PaymentView, error)
	// ListByLease returns payments for one lease ordered by month ascending.
	ListByLease(ctx context.Context, leaseID string) ([]*Payment, error)
	// TogglePaid flips the paid flag; owner-scoped through the lease joins.
	// A non-owned or absent id is a silent no-op.
	TogglePaid(ctx context.Context, ownerID, id string) error
	// Delete is owner-scoped through the lease joins; a non-owned or absent
	// id is a silent no-op.
	Delete(ctx context.Context, ownerID, id string) error
}
