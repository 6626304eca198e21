package domain

import "context"

// OwnerPaymentInfo holds the free-text payment instructions an owner shows to
// their tenants.
type OwnerPaymentInfo struct {
	OwnerID      string `json:"owner_id"`
	Instructions string `json:"instructions"`
}

type OwnerPaymentInfoRepository interface {
	// Get returns nil (not an error) when no instructions are stored.
	Get(ctx context.Context, ownerID string) (*OwnerPaymentInfo, error)
	// Set upserts keyed by ownerID.
	Set(ctx context.Context, info *OwnerPaymentInfo) error
}
