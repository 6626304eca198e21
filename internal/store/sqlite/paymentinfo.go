package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type OwnerPaymentInfoRepo struct {
	db *sql.DB
}

// Get returns nil when no instructions row exists; absence is not an error.
func (r *OwnerPaymentInfoRepo) Get(ctx context.Context, ownerID string) (*domain.OwnerPaymentInfo, error) {
	var info domain.OwnerPaymentInfo
	var instructions *string

	err := r.db.QueryRowContext(ctx,
		`SELECT owner_id, instructions FROM owner_payment_info WHERE owner_id = ?`,
		ownerID,
	).Scan(&info.OwnerID, &instructions)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ownerPaymentInfoRepo.Get: %w", err)
	}

	info.Instructions = derefStr(instructions)

	return &info, nil
}

func (r *OwnerPaymentInfoRepo) Set(ctx context.Context, info *domain.OwnerPaymentInfo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO owner_payment_info (owner_id, instructions) VALUES (?, ?)
		 ON CONFLICT(owner_id) DO UPDATE SET instructions = excluded.instructions`,
		info.OwnerID, info.Instructions,
	)
	if err != nil {
		return fmt.Errorf("ownerPaymentInfoRepo.Set: %w", err)
	}

	return nil
}
