package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type TenantRepo struct {
	pool *pgxpool.Pool
}

func (r *TenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tenants (id, name, contact, owner_id, shared_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.Name, nilIfEmpty(t.Contact), t.OwnerID, nilIfEmpty(t.SharedID),
	)
	if err != nil {
		return fmt.Errorf("tenantRepo.Create: %w", err)
	}

	return nil
}

func (r *TenantRepo) List(ctx context.Context, ownerID string) ([]*domain.Tenant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, contact, owner_id, shared_id
		 FROM tenants WHERE owner_id = $1 ORDER BY name`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("tenantRepo.List: %w", err)
	}
	defer rows.Close()

	var tenants []*domain.Tenant
	for rows.Next() {
		t, scanErr := scanTenant(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("tenantRepo.List: %w", scanErr)
		}
		tenants = append(tenants, t)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("tenantRepo.List: rows: %w", err)
	}

	return tenants, nil
}

func (r *TenantRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM tenants WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("tenantRepo.Delete: %w", err)
	}

	return nil
}

func (r *TenantRepo) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, contact, owner_id, shared_id
		 FROM tenants WHERE lower(contact) = lower($1)`,
		email,
	)

	t, err := scanTenant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("tenantRepo.GetByEmail: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("tenantRepo.GetByEmail: %w", err)
	}

	return t, nil
}

func (r *TenantRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM tenants WHERE lower(contact) = lower($1)`,
		email,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("tenantRepo.ExistsByEmail: %w", err)
	}

	return count > 0, nil
}

func scanTenant(row pgx.Row) (*domain.Tenant, error) {
	var t domain.Tenant
	var contact, sharedID *string

	if err := row.Scan(&t.ID, &t.Name, &contact, &t.OwnerID, &sharedID); err != nil {
		return nil, err
	}

	t.Contact = derefStr(contact)
	t.SharedID = derefStr(sharedID)

	return &t, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
