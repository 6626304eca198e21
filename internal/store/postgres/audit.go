package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type AuditRepo struct {
	pool *pgxpool.Pool
}

func (r *AuditRepo) Record(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_log (id, owner_id, actor_email, action, resource, resource_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.OwnerID, entry.ActorEmail, entry.Action,
		entry.Resource, entry.ResourceID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("auditRepo.Record: %w", err)
	}

	return nil
}

func (r *AuditRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.AuditEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_id, actor_email, action, resource, resource_id, created_at
		 FROM audit_log WHERE owner_id = $1
		 ORDER BY created_at DESC, id
		 LIMIT $2 OFFSET $3`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("auditRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry

		err = rows.Scan(&e.ID, &e.OwnerID, &e.ActorEmail, &e.Action, &e.Resource, &e.ResourceID, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("auditRepo.ListByOwner: scan: %w", err)
		}

		entries = append(entries, &e)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("auditRepo.ListByOwner: rows: %w", err)
	}

	return entries, nil
}
