package domain

import (
	"context"
	"time"
)

// AuditEntry records one mutation through the façade, partitioned by owner.
type AuditEntry struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	ActorEmail string    `json:"actor_email"`
	Action     string    `json:"action"`   // "create", "delete", "toggle", "upsert"
	Resource   string    `json:"resource"` // "property", "tenant", "lease", "payment", "payment_info"
	ResourceID string    `json:"resource_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAuditEntry builds an entry stamped with the current time.
func NewAuditEntry(ownerID, actorEmail, action, resource, resourceID string) *AuditEntry {
	return &AuditEntry{
		ID:         NewID("a_"),
		OwnerID:    ownerID,
		ActorEmail: actorEmail,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		CreatedAt:  time.Now(),
	}
}

type AuditRepository interface {
	Record(ctx context.Context, entry *AuditEntry) error
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*AuditEntry, error)
}
