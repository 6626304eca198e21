// Package postgres implements the storage repositories on PostgreSQL for
// deployments that outgrow the embedded SQLite store. Both packages share one
// schema shape and the same owner-scoping rules.
package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rentfolio/rentfolio/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	pool        *pgxpool.Pool
	users       *UserRepo
	properties  *PropertyRepo
	tenants     *TenantRepo
	leases      *LeaseRepo
	payments    *PaymentRepo
	paymentInfo *OwnerPaymentInfoRepo
	stats       *StatsRepo
	audit       *AuditRepo
}

// New connects, applies the schema, and returns a ready store. Like the
// SQLite driver, initialization completes before the constructor returns.
func New(ctx context.Context, dsn string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: parse config: %w", err)
	}

	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: connect: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	_, err = pool.Exec(ctx, schemaSQL)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: apply schema: %w", err)
	}

	return &Store{
		pool:        pool,
		users:       &UserRepo{pool: pool},
		properties:  &PropertyRepo{pool: pool},
		tenants:     &TenantRepo{pool: pool},
		leases:      &LeaseRepo{pool: pool},
		payments:    &PaymentRepo{pool: pool},
		paymentInfo: &OwnerPaymentInfoRepo{pool: pool},
		stats:       &StatsRepo{pool: pool},
		audit:       &AuditRepo{pool: pool},
	}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Users() domain.UserRepository                   { return s.users }
func (s *Store) Properties() domain.PropertyRepository          { return s.properties }
func (s *Store) Tenants() domain.TenantRepository               { return s.tenants }
func (s *Store) Leases() domain.LeaseRepository                 { return s.leases }
func (s *Store) Payments() domain.PaymentRepository             { return s.payments }
func (s *Store) PaymentInfo() domain.OwnerPaymentInfoRepository { return s.paymentInfo }
func (s *Store) Stats() domain.StatsRepository                  { return s.stats }
func (s *Store) Audit() domain.AuditRepository                  { return s.audit }
