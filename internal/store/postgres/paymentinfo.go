package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type OwnerPaymentInfoRepo struct {
	pool *pgxpool.Pool
}

func (r *OwnerPaymentInfoRepo) Get(ctx context.Context, ownerID string) (*domain.OwnerPaymentInfo, error) {
	var info domain.OwnerPaymentInfo
	var instructions *string

	err := r.pool.QueryRow(ctx,
		`SELECT owner_id, instructions FROM owner_payment_info WHERE owner_id = $1`,
		ownerID,
	).Scan(&info.OwnerID, &instructions)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ownerPaymentInfoRepo.Get: %w", err)
	}

	info.Instructions = derefStr(instructions)

	return &info, nil
}

func (r *OwnerPaymentInfoRepo) Set(ctx context.Context, info *domain.OwnerPaymentInfo) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO owner_payment_info (owner_id, instructions) VALUES ($1, $2)
		 ON CONFLICT (owner_id) DO UPDATE SET instructions = excluded.instructions`,
		info.OwnerID, info.Instructions,
	)
	if err != nil {
		return fmt.Errorf("ownerPaymentInfoRepo.Set: %w", err)
	}

	return nil
}
