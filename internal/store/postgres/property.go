package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type PropertyRepo struct {
	pool *pgxpool.Pool
}

func (r *PropertyRepo) Create(ctx context.Context, p *domain.Property) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO properties (id, address, status, default_rent, owner_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Address, p.Status, p.DefaultRent, p.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("propertyRepo.Create: %w", err)
	}

	return nil
}

func (r *PropertyRepo) List(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, address, status, default_rent, owner_id
		 FROM properties WHERE owner_id = $1 ORDER BY address`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("propertyRepo.List: %w", err)
	}
	defer rows.Close()

	var props []*domain.Property
	for rows.Next() {
		var p domain.Property
		err = rows.Scan(&p.ID, &p.Address, &p.Status, &p.DefaultRent, &p.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("propertyRepo.List: scan: %w", err)
		}
		props = append(props, &p)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("propertyRepo.List: rows: %w", err)
	}

	return props, nil
}

func (r *PropertyRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.Property, error) {
	var p domain.Property

	err := r.pool.QueryRow(ctx,
		`SELECT id, address, status, default_rent, owner_id
		 FROM properties WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	).Scan(&p.ID, &p.Address, &p.Status, &p.DefaultRent, &p.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("propertyRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("propertyRepo.GetByID: %w", err)
	}

	return &p, nil
}

func (r *PropertyRepo) ToggleStatus(ctx context.Context, ownerID, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE properties
		 SET status = CASE status WHEN 'occupied' THEN 'vacant' ELSE 'occupied' END
		 WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("propertyRepo.ToggleStatus: %w", err)
	}

	return nil
}

func (r *PropertyRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM properties WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("propertyRepo.Delete: %w", err)
	}

	return nil
}
