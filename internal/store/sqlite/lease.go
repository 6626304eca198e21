package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type LeaseRepo struct {
	db *sql.DB
}

// Create inserts the lease and marks the property occupied in one
// transaction. Both joined sides must belong to ownerID or the insert is
// rejected with ErrNotFound, keeping cross-owner references out of the store.
func (r *LeaseRepo) Create(ctx context.Context, ownerID string, l *domain.Lease) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var one int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM properties WHERE id = ? AND owner_id = ?`,
		l.PropertyID, ownerID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("leaseRepo.Create: property: %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: property: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM tenants WHERE id = ? AND owner_id = ?`,
		l.TenantID, ownerID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("leaseRepo.Create: tenant: %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: tenant: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO leases (id, property_id, tenant_id, start, "end", rent)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.PropertyID, l.TenantID, l.Start, l.End, l.Rent,
	)
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: insert: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE properties SET status = 'occupied' WHERE id = ?`,
		l.PropertyID,
	)
	if err != nil {
		return fmt.Errorf("leaseRepo.Create: occupy property: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("leaseRepo.Create: commit: %w", err)
	}

	return nil
}

func (r *LeaseRepo) List(ctx context.Context, ownerID string) ([]*domain.LeaseView, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT l.id, l.property_id, l.tenant_id, l.start, l."end", l.rent,
		        pr.address, t.name
		 FROM leases l
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE pr.owner_id = ? AND t.owner_id = ?
		 ORDER BY pr.address, t.name`,
		ownerID, ownerID,
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
	row := r.db.QueryRowContext(ctx,
		`SELECT l.id, l.property_id, l.tenant_id, l.start, l."end", l.rent,
		        pr.address, t.name
		 FROM leases l
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE l.tenant_id = ?
		 ORDER BY l.start`,
		tenantID,
	)

	lv, err := scanLeaseView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("leaseRepo.GetByTenant: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("leaseRepo.GetByTenant: %w", err)
	}

	return lv, nil
}

func (r *LeaseRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM leases
		 WHERE id = ?
		   AND property_id IN (SELECT id FROM properties WHERE owner_id = ?)
		   AND tenant_id   IN (SELECT id FROM tenants   WHERE owner_id = ?)`,
		id, ownerID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("leaseRepo.Delete: %w", err)
	}

	return nil
}

func scanLeaseView(row rowScanner) (*domain.LeaseView, error) {
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
