package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/rentfolio/rentfolio/internal/api/v1"
	"github.com/rentfolio/rentfolio/internal/domain"
)

// johnTenantRepo resolves john@example.com to the demo tenant record,
// regardless of the caller's email casing.
func johnTenantRepo(t *testing.T) *mockTenantRepo {
	t.Helper()
	return &mockTenantRepo{
		getByEmailFunc: func(_ context.Context, email string) (*domain.Tenant, error) {
			if email == "john@example.com" || email == "John@Example.COM" {
				return &domain.Tenant{ID: "t1", Name: "John Doe", Contact: "john@example.com", OwnerID: "u_demo"}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
}

func TestPortalGetLease(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = johnTenantRepo(t)
		store.leases = &mockLeaseRepo{
			getByTenantFunc: func(_ context.Context, tenantID string) (*domain.LeaseView, error) {
				require.Equal(t, "t1", tenantID)
				return &domain.LeaseView{
					Lease:           domain.Lease{ID: "l1", PropertyID: "p2", TenantID: "t1", Start: "2025-01-01", End: "2025-12-31", Rent: 1500},
					PropertyAddress: "34 Maple Ave",
					TenantName:      "John Doe",
				}, nil
			},
		}
		v1.RegisterPortalRoutes(api, store)

		resp := api.GetCtx(tenantCtx("john@example.com"), "/portal/lease")

		require.Equal(t, http.StatusOK, resp.Code)

		var body domain.LeaseView
		err := json.Unmarshal(resp.Body.Bytes(), &body)
		require.NoError(t, err)
		assert.Equal(t, "34 Maple Ave", body.PropertyAddress)
		assert.Equal(t, float64(1500), body.Rent)
	})

	t.Run("no_tenant_record", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = johnTenantRepo(t)
		v1.RegisterPortalRoutes(api, store)

		resp := api.GetCtx(tenantCtx("stranger@example.com"), "/portal/lease")

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "no tenant record")
	})

	t.Run("no_lease_assigned", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = johnTenantRepo(t)
		store.leases = &mockLeaseRepo{
			getByTenantFunc: func(_ context.Context, _ string) (*domain.LeaseView, error) {
				return nil, domain.ErrNotFound
			},
		}
		v1.RegisterPortalRoutes(api, store)

		resp := api.GetCtx(tenantCtx("john@example.com"), "/portal/lease")

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "no lease found")
	})
}

func TestPortalListPayments(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	store := newMockStore()
	store.tenants = johnTenantRepo(t)
	store.leases = &mockLeaseRepo{
		getByTenantFunc: func(_ context.Context, _ string) (*domain.LeaseView, error) {
			return &domain.LeaseView{Lease: domain.Lease{ID: "l1"}}, nil
		},
	}
	store.payments = &mockPaymentRepo{
		listByLeaseFunc: func(_ context.Context, leaseID string) ([]*domain.Payment, error) {
			require.Equal(t, "l1", leaseID)
			return []*domain.Payment{
				{ID: "pay1", LeaseID: "l1", Month: "2025-06", Amount: 1200, Paid: true},
				{ID: "pay2", LeaseID: "l1", Month: "2025-07", Amount: 1200, Paid: false},
			}, nil
		},
	}
	v1.RegisterPortalRoutes(api, store)

	resp := api.GetCtx(tenantCtx("john@example.com"), "/portal/payments")

	require.Equal(t, http.StatusOK, resp.Code)

	var body []*domain.Payment
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Len(t, body, 2)
	assert.Equal(t, "2025-06", body[0].Month, "history is oldest first")
}

func TestPortalGetPaymentInfo(t *testing.T) {
	t.Parallel()

	t.Run("returns_landlord_instructions", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = johnTenantRepo(t)
		store.paymentInfo = &mockPaymentInfoRepo{
			getFunc: func(_ context.Context, ownerID string) (*domain.OwnerPaymentInfo, error) {
				require.Equal(t, "u_demo", ownerID, "instructions are looked up by the tenant's landlord")
				return &domain.OwnerPaymentInfo{OwnerID: "u_demo", Instructions: "Wire to account 123"}, nil
			},
		}
		v1.RegisterPortalRoutes(api, store)

		resp := api.GetCtx(tenantCtx("john@example.com"), "/portal/payment-info")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Wire to account 123")
	})

	t.Run("fallback_when_not_provided", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = johnTenantRepo(t)
		store.paymentInfo = &mockPaymentInfoRepo{
			getFunc: func(_ context.Context, _ string) (*domain.OwnerPaymentInfo, error) {
				return nil, nil
			},
		}
		v1.RegisterPortalRoutes(api, store)

		resp := api.GetCtx(tenantCtx("john@example.com"), "/portal/payment-info")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "has not provided payment instructions yet")
	})

	t.Run("no_tenant_record", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = johnTenantRepo(t)
		store.paymentInfo = &mockPaymentInfoRepo{}
		v1.RegisterPortalRoutes(api, store)

		resp := api.GetCtx(tenantCtx("stranger@example.com"), "/portal/payment-info")

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
