package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type TenantRepo struct {
	db *sql.DB
}

func (r *TenantRepo) Create(ctx context.Context, t *domain.Tenant) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tenants (id, name, contact, owner_id, shared_id)
		 VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Name, nilIfEmpty(t.Contact), t.OwnerID, nilIfEmpty(t.SharedID),
	)
	if err != nil {
		return fmt.Errorf("tenantRepo.Create: %w", err)
	}

	return nil
}

func (r *TenantRepo) List(ctx context.Context, ownerID string) ([]*domain.Tenant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, contact, owner_id, shared_id
		 FROM tenants WHERE owner_id = ? ORDER BY name`,
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
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM tenants WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("tenantRepo.Delete: %w", err)
	}

	return nil
}

func (r *TenantRepo) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, contact, owner_id, shared_id
		 FROM tenants WHERE lower(contact) = lower(?)`,
		email,
	)

	t, err := scanTenant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tenantRepo.GetByEmail: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("tenantRepo.GetByEmail: %w", err)
	}

	return t, nil
}

func (r *TenantRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tenants WHERE lower(contact) = lower(?)`,
		email,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("tenantRepo.ExistsByEmail: %w", err)
	}

	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTenant(row rowScanner) (*domain.Tenant, error) {
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
