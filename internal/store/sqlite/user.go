package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rentfolio/rentfolio/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, name, pass_hash, role, shared_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.Email, u.Name, u.PasswordHash, u.Role, u.SharedID, u.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("userRepo.Create: %w", err)
	}

	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	var createdAt int64

	err := r.db.QueryRowContext(ctx,
		`SELECT email, name, pass_hash, role, shared_id, created_at
		 FROM users WHERE email = lower(?)`,
		email,
	).Scan(&u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.SharedID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("userRepo.GetByEmail: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("userRepo.GetByEmail: %w", err)
	}

	u.CreatedAt = time.Unix(createdAt, 0)

	return &u, nil
}
