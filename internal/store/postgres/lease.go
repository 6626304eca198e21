package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type LeaseRepo struct {
	pool *pgxpool.Pool
}

func (r *LeaseRepo) Create(ctx context.Context, ownerID string, l *domain.Lease) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var one int
	err = tx.QueryRow(ctx,
		`SELECT 1 FROM properties WHERE id = $1 AND owner_id = $2`,
		l.PropertyID, ownerID,
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("leaseRepo.Create: property: %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: property: %w", err)
	}

	err = tx.QueryRow(ctx,
		`SELECT 1 FROM tenants WHERE id = $1 AND owner_id = $2`,
		l.TenantID, ownerID,
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("leaseRepo.Create: tenant: %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: tenant: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO leases (id, property_id, tenant_id, start, "end", rent)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.PropertyID, l.TenantID, l.Start, l.End, l.Rent,
	)
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: insert: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE properties SET status = 'occupied' WHERE id = $1`,
		l.PropertyID,
	)
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: occupy property: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("leaseRepo.Create: commit: %w", err)
	}

	return nil
}

func (r *LeaseRepo) List(ctx context.Context, ownerID string) ([]*domain.LeaseView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT l.id, l.property_id, l.tenant_id, l.start, l."end", l.rent,
		        pr.address, t.name
		 FROM leases l
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE pr.owner_id = $1 AND t.owner_id = $1
		 ORDER BY pr.address, t.name`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("leaseRepo.List: %w", err)
	}
	defer rows.Close()

	var leases []*domain.LeaseView
	for rows.Next() {
		lv, scanErr := scanLeaseView(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("leaseRepo.List: %w", scanErr)
		}
		leases = append(leases, lv)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("leaseRepo.List: rows: %w", err)
	}

	return leases, nil
}

func (r *LeaseRepo) GetByTenant(ctx context.Context, tenantID string) (*domain.LeaseView, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT l.id, l.property_id, l.tenant_id, l.start, l."end", l.rent,
		        pr.address, t.name
		 FROM leases l
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE l.tenant_id = $1
		 ORDER BY l.start
		 LIMIT 1`,
		tenantID,
	)

	lv, err := scanLeaseView(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("leaseRepo.GetByTenant: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("leaseRepo.GetByTenant: %w", err)
	}

	return lv, nil
}

func (r *LeaseRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM leases
		 WHERE id = $1
		   AND property_id IN (SELECT id FROM properties WHERE owner_id = $2)
		   AND tenant_id   IN (SELECT id FROM tenants   WHERE owner_id = $2)`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("leaseRepo.Delete: %w", err)
	}

	return nil
}

func scanLeaseView(row pgx.Row) (*domain.LeaseView, error) {
	var lv domain.LeaseView
	var address, name *string

	err := row.Scan(&lv.ID, &lv.PropertyID, &lv.TenantID, &lv.Start, &lv.End, &lv.Rent,
		&address, &name)
	if err != nil {
		return nil, err
	}

	lv.PropertyAddress = derefStr(address)
	if lv.PropertyAddress == "" {
		lv.PropertyAddress = domain.MissingPropertyLabel
	}
	lv.TenantName = derefStr(name)
	if lv.TenantName == "" {
		lv.TenantName = domain.MissingTenantLabel
	}

	return &lv, nil
}
