// Package sqlite implements the storage repositories on an embedded SQLite
// database (modernc.org/sqlite, no cgo). It is the default driver and the
// single schema owner for the consolidated data model.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/rentfolio/rentfolio/internal/domain"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	db          *sql.DB
	users       *UserRepo
	properties  *PropertyRepo
	tenants     *TenantRepo
	leases      *LeaseRepo
	payments    *PaymentRepo
	paymentInfo *OwnerPaymentInfoRepo
	stats       *StatsRepo
	audit       *AuditRepo
}

// Open opens (or creates) the database at path, brings the schema to a ready
// state, and seeds demo data on first run. The store is fully initialized
// before Open returns; no caller can observe a half-built schema.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: %w", err)
	}

	// Single writer; modernc sqlite serializes writes anyway and one
	// connection keeps shared in-memory databases coherent in tests.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.Open: ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.Open: apply schema: %w", err)
	}

	s := &Store{
		db:          db,
		users:       &UserRepo{db: db},
		properties:  &PropertyRepo{db: db},
		tenants:     &TenantRepo{db: db},
		leases:      &LeaseRepo{db: db},
		payments:    &PaymentRepo{db: db},
		paymentInfo: &OwnerPaymentInfoRepo{db: db},
		stats:       &StatsRepo{db: db},
		audit:       &AuditRepo{db: db},
	}

	if err := s.seed(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite.Open: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("sqlite.Store.Close: %w", err)
	}
	return nil
}

func (s *Store) Users() domain.UserRepository                   { return s.users }
func (s *Store) Properties() domain.PropertyRepository          { return s.properties }
func (s *Store) Tenants() domain.TenantRepository               { return s.tenants }
func (s *Store) Leases() domain.LeaseRepository                 { return s.leases }
func (s *Store) Payments() domain.PaymentRepository             { return s.payments }
func (s *Store) PaymentInfo() domain.OwnerPaymentInfoRepository { return s.paymentInfo }
func (s *Store) Stats() domain.StatsRepository                  { return s.stats }
func (s *Store) Audit() domain.AuditRepository                  { return s.audit }
