package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type AuditRepo struct {
	db *sql.DB
}

func (r *AuditRepo) Record(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (id, owner_id, actor_email, action, resource, resource_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.OwnerID, entry.ActorEmail, entry.Action,
		entry.Resource, entry.ResourceID, entry.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("auditRepo.Record: %w", err)
	}

	return nil
}

func (r *AuditRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, actor_email, action, resource, resource_id, created_at
		 FROM audit_log WHERE owner_id = ?
		 ORDER BY created_at DESC, id
		 LIMIT ? OFFSET ?`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("auditRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var createdAt int64

		err = rows.Scan(&e.ID, &e.OwnerID, &e.ActorEmail, &e.Action, &e.Resource, &e.ResourceID, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("auditRepo.ListByOwner: scan: %w", err)
		}

		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, &e)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("auditRepo.ListByOwner: rows: %w", err)
	}

	return entries, nil
}
