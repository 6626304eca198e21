package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type PaymentRepo struct {
	db *sql.DB
}

// Create rejects leases that are absent or not visible to ownerID on both
// joined sides, mirroring the list scoping.
func (r *PaymentRepo) Create(ctx context.Context, ownerID string, p *domain.Payment) error {
	var one int

	err := r.db.QueryRowContext(ctx,
		`SELECT 1
		 FROM leases l
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE l.id = ? AND pr.owner_id = ? AND t.owner_id = ?`,
		p.LeaseID, ownerID, ownerID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("paymentRepo.Create: lease: %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: lease: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO payments (id, lease_id, month, amount, paid)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.LeaseID, p.Month, p.Amount, boolToInt(p.Paid),
	)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}

	return nil
}

func (r *PaymentRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.PaymentView, error) {
	// Month is always formatted YYYY-MM, so the year and two-digit month
	// substrings sort correctly as text.
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.lease_id, p.month, p.amount, p.paid,
		        pr.address, t.name
		 FROM payments p
		 JOIN leases     l  ON l.id = p.lease_id
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE pr.owner_id = ? AND t.owner_id = ?
		 ORDER BY substr(p.month,1,4) DESC, substr(p.month,6,2) DESC`,
		ownerID, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	var payments []*domain.PaymentView
	for rows.Next() {
		var pv domain.PaymentView
		var paid int
		var address, name *string

		err = rows.Scan(&pv.ID, &pv.LeaseID, &pv.Month, &pv.Amount, &paid, &address, &name)
		if err != nil {
			return nil, fmt.Errorf("paymentRepo.ListByOwner: scan: %w", err)
		}

		pv.Paid = paid != 0
		pv.PropertyAddress = derefStr(address)
		if pv.PropertyAddress == "" {
			pv.PropertyAddress = domain.MissingPropertyLabel
		}
		pv.TenantName = derefStr(name)
		if pv.TenantName == "" {
			pv.TenantName = domain.MissingTenantLabel
		}
		payments = append(payments, &pv)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByOwner: rows: %w", err)
	}

	return payments, nil
}

func (r *PaymentRepo) ListByLease(ctx context.Context, leaseID string) ([]*domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, lease_id, month, amount, paid
		 FROM payments WHERE lease_id = ?
		 ORDER BY substr(month,1,4), substr(month,6,2)`,
		leaseID,
	)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByLease: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		var paid int

		err = rows.Scan(&p.ID, &p.LeaseID, &p.Month, &p.Amount, &paid)
		if err != nil {
			return nil, fmt.Errorf("paymentRepo.ListByLease: scan: %w", err)
		}

		p.Paid = paid != 0
		payments = append(payments, &p)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByLease: rows: %w", err)
	}

	return payments, nil
}

func (r *PaymentRepo) TogglePaid(ctx context.Context, ownerID, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE payments SET paid = 1 - paid
		 WHERE id = ? AND lease_id IN (
		     SELECT l.id
		     FROM leases l
		     JOIN properties pr ON pr.id = l.property_id
		     JOIN tenants    t  ON t.id = l.tenant_id
		     WHERE pr.owner_id = ? AND t.owner_id = ?
		 )`,
		id, ownerID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("paymentRepo.TogglePaid: %w", err)
	}

	return nil
}

func (r *PaymentRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM payments
		 WHERE id = ? AND lease_id IN (
		     SELECT l.id
		     FROM leases l
		     JOIN properties pr ON pr.id = l.property_id
		     JOIN tenants    t  ON t.id = l.tenant_id
		     WHERE pr.owner_id = ? AND t.owner_id = ?
		 )`,
		id, ownerID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("paymentRepo.Delete: %w", err)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
