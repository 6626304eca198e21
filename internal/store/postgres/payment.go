package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
}

func (r *PaymentRepo) Create(ctx context.Context, ownerID string, p *domain.Payment) error {
	var one int

	err := r.pool.QueryRow(ctx,
		`SELECT 1
		 FROM leases l
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE l.id = $1 AND pr.owner_id = $2 AND t.owner_id = $2`,
		p.LeaseID, ownerID,
	).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("paymentRepo.Create: lease: %w", domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: lease: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO payments (id, lease_id, month, amount, paid)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.LeaseID, p.Month, p.Amount, p.Paid,
	)
	if err != nil {
		return fmt.Errorf("paymentRepo.Create: %w", err)
	}

	return nil
}

func (r *PaymentRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.PaymentView, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.lease_id, p.month, p.amount, p.paid,
		        pr.address, t.name
		 FROM payments p
		 JOIN leases     l  ON l.id = p.lease_id
		 JOIN properties pr ON pr.id = l.property_id
		 JOIN tenants    t  ON t.id = l.tenant_id
		 WHERE pr.owner_id = $1 AND t.owner_id = $1
		 ORDER BY substr(p.month,1,4) DESC, substr(p.month,6,2) DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	var payments []*domain.PaymentView
	for rows.Next() {
		var pv domain.PaymentView
		var address, name *string

		err = rows.Scan(&pv.ID, &pv.LeaseID, &pv.Month, &pv.Amount, &pv.Paid, &address, &name)
		if err != nil {
			return nil, fmt.Errorf("paymentRepo.ListByOwner: scan: %w", err)
		}

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
	rows, err := r.pool.Query(ctx,
		`SELECT id, lease_id, month, amount, paid
		 FROM payments WHERE lease_id = $1
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

		err = rows.Scan(&p.ID, &p.LeaseID, &p.Month, &p.Amount, &p.Paid)
		if err != nil {
			return nil, fmt.Errorf("paymentRepo.ListByLease: scan: %w", err)
		}

		payments = append(payments, &p)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("paymentRepo.ListByLease: rows: %w", err)
	}

	return payments, nil
}

func (r *PaymentRepo) TogglePaid(ctx context.Context, ownerID, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE payments SET paid = NOT paid
		 WHERE id = $1 AND lease_id IN (
		     SELECT l.id
		     FROM leases l
		     JOIN properties pr ON pr.id = l.property_id
		     JOIN tenants    t  ON t.id = l.tenant_id
		     WHERE pr.owner_id = $2 AND t.owner_id = $2
		 )`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("paymentRepo.TogglePaid: %w", err)
	}

	return nil
}

func (r *PaymentRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM payments
		 WHERE id = $1 AND lease_id IN (
		     SELECT l.id
		     FROM leases l
		     JOIN properties pr ON pr.id = l.property_id
		     JOIN tenants    t  ON t.id = l.tenant_id
		     WHERE pr.owner_id = $2 AND t.owner_id = $2
		 )`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("paymentRepo.Delete: %w", err)
	}

	return nil
}
