package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type StatsRepo struct {
	db *sql.DB
}

func (r *StatsRepo) Summary(ctx context.Context, ownerID string) (*domain.KPISummary, error) {
	var k domain.KPISummary

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'occupied'),
		        COUNT(*) FILTER (WHERE status = 'vacant')
		 FROM properties WHERE owner_id = ?`,
		ownerID,
	).Scan(&k.TotalProperties, &k.Occupied, &k.Vacant)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.Summary: properties: %w", err)
	}

	// Unpaid requires the owning property and tenant to both match, same as
	// the payment list scoping.
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM payments p
		 JOIN leases     l  ON l.id = p.lease_id
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE p.paid = 0 AND pr.owner_id = ? AND t.owner_id = ?`,
		ownerID, ownerID,
	).Scan(&k.Unpaid)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.Summary: unpaid: %w", err)
	}

	return &k, nil
}
