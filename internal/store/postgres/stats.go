package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type StatsRepo struct {
	pool *pgxpool.Pool
}

func (r *StatsRepo) Summary(ctx context.Context, ownerID string) (*domain.KPISummary, error) {
	var k domain.KPISummary

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'occupied'),
		        COUNT(*) FILTER (WHERE status = 'vacant')
		 FROM properties WHERE owner_id = $1`,
		ownerID,
	).Scan(&k.TotalProperties, &k.Occupied, &k.Vacant)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.Summary: properties: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM payments p
		 JOIN leases     l  ON l.id = p.lease_id
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE NOT p.paid AND pr.owner_id = $1 AND t.owner_id = $1`,
		ownerID,
	).Scan(&k.Unpaid)
	if err != nil {
		return nil, fmt.Errorf("statsRepo.Summary: unpaid: %w", err)
	}

	return &k, nil
}
