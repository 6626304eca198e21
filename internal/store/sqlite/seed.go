package sqlite

import (
	"context"
	"fmt"
)

// seed inserts the demo owner's data on first run, matching the legacy
// application's initial state. A store that already holds properties is left
// untouched.
func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		return fmt.Errorf("seed: count properties: %w", err)
	}
	if count > 0 {
		return nil
	}

	const seedSQL = `
INSERT INTO properties (id,address,status,default_rent,owner_id) VALUES
('p1','12 Oak St, Apt 1','vacant',1200,'u_demo'),
('p2','34 Maple Ave','occupied',1500,'u_demo'),
('p3','18 Cedar Ct','occupied',1350,'u_demo');

INSERT INTO tenants (id,name,contact,owner_id,shared_id) VALUES
('t1','John Doe','john@example.com','u_demo','demo'),
('t2','Ava Smith','ava@example.com','u_demo','demo');

INSERT INTO leases (id,property_id,tenant_id,start,"end",rent) VALUES
('l1','p2','t1','2025-01-01','2025-12-31',1500),
('l2','p3','t2','2025-07-01','2026-06-30',1350);

INSERT INTO payments (id,lease_id,month,amount,paid) VALUES
('pay1','l1','2025-09',1500,1),
('pay2','l1','2025-10',1500,0),
('pay3','l2','2025-10',1350,1);

INSERT INTO owner_payment_info (owner_id,instructions) VALUES
('u_demo','Send rent via Zelle to demo@pmgt.test or mail a check to 34 Maple Ave, Suite 100.');
`

	if _, err := s.db.ExecContext(ctx, seedSQL); err != nil {
		return fmt.Errorf("seed: insert demo rows: %w", err)
	}

	return nil
}
