// Package legacy preserves the deprecated flat-file surface used by one
// variant of the product. It stores users and tenants as JSON arrays in two
// files, fully disjoint from the relational store, and rewrites the whole
// file on every mutation.
package legacy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

const (
	usersFile   = "users.json"
	tenantsFile = "tenants.json"
)

// User is a flat-file account. Passwords are stored as given; this surface
// predates the hashed credential store and is kept only for data
// compatibility.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // G117: legacy file format
}

// Tenant is a flat-file tenant record. The optional billing fields are kept
// as raw JSON so whatever the old clients sent round-trips unchanged.
type Tenant struct {
	Name              string          `json:"name"`
	Address           string          `json:"address"`
	RentPaid          bool            `json:"rentPaid"`
	LeaseType         string          `json:"leaseType,omitempty"`
	LeaseStart        string          `json:"leaseStart"`
	LeaseEnd          string          `json:"leaseEnd"`
	RentPrice         json.RawMessage `json:"rentPrice,omitempty"`
	SecurityDeposit   json.RawMessage `json:"securityDeposit,omitempty"`
	PaymentDueDate    json.RawMessage `json:"paymentDueDate,omitempty"`
	LateFee           json.RawMessage `json:"lateFee,omitempty"`
	UtilitiesIncluded []string        `json:"utilitiesIncluded"`
}

// Store reads and writes the two JSON files under dir. A single mutex
// serializes all access; the files are small and contention is not a concern
// on a deprecated surface.
type Store struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewStore creates a flat-file store rooted at dir, creating it if needed.
func NewStore(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("legacy.NewStore: %w", err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

func (s *Store) loadUsers() ([]User, error) {
	var users []User
	if err := s.load(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) saveUsers(users []User) error {
	return s.save(usersFile, users)
}

func (s *Store) loadTenants() ([]Tenant, error) {
	var tenants []Tenant
	if err := s.load(tenantsFile, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (s *Store) saveTenants(tenants []Tenant) error {
	return s.save(tenantsFile, tenants)
}

// load reads the whole file into out. A missing file is an empty list.
func (s *Store) load(name string, out any) error {
	data, err := afero.ReadFile(s.fs, filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("legacy.load %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("legacy.load %s: %w", name, err)
	}
	return nil
}

// save rewrites the whole file, matching the original durability model.
func (s *Store) save(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("legacy.save %s: %w", name, err)
	}
	if err := afero.WriteFile(s.fs, filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("legacy.save %s: %w", name, err)
	}
	return nil
}
