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

func TestCreateTenant(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = &mockTenantRepo{
			createFunc: func(_ context.Context, _ *domain.Tenant) error { return nil },
		}
		v1.RegisterTenantRoutes(api, store)

		resp := api.PostCtx(ownerCtx("u_demo"), "/tenants", map[string]any{
			"name":    "Mia Chen",
			"contact": "Mia@Example.com",
		})

		require.Equal(t, http.StatusOK, resp.Code)

		var body domain.Tenant
		err := json.Unmarshal(resp.Body.Bytes(), &body)
		require.NoError(t, err)
		assert.Equal(t, "Mia Chen", body.Name)
		assert.Equal(t, "mia@example.com", body.Contact, "contact is stored lowercased")
		assert.Equal(t, "u_demo", body.OwnerID)
		assert.Equal(t, "u_demo", body.SharedID, "tenant rows share the owner's partition key")
	})

	t.Run("contact_is_optional", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = &mockTenantRepo{
			createFunc: func(_ context.Context, _ *domain.Tenant) error { return nil },
		}
		v1.RegisterTenantRoutes(api, store)

		resp := api.PostCtx(ownerCtx("u_demo"), "/tenants", map[string]any{
			"name": "Walk-in Tenant",
		})

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("missing_account_context", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = &mockTenantRepo{}
		v1.RegisterTenantRoutes(api, store)

		resp := api.PostCtx(context.Background(), "/tenants", map[string]any{
			"name": "Mia Chen",
		})

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})
}

func TestListTenants(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	store := newMockStore()
	store.tenants = &mockTenantRepo{
		listFunc: func(_ context.Context, ownerID string) ([]*domain.Tenant, error) {
			require.Equal(t, "u_demo", ownerID)
			return []*domain.Tenant{
				{ID: "t1", Name: "John Doe", Contact: "john@example.com", OwnerID: "u_demo"},
				{ID: "t2", Name: "Ava Smith", Contact: "ava@example.com", OwnerID: "u_demo"},
			}, nil
		},
	}
	v1.RegisterTenantRoutes(api, store)

	resp := api.GetCtx(ownerCtx("u_demo"), "/tenants")

	require.Equal(t, http.StatusOK, resp.Code)

	var body []*domain.Tenant
	err := json.Unmarshal(resp.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Len(t, body, 2)
	assert.Equal(t, "John Doe", body[0].Name)
}

func TestDeleteTenant(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		deleted := ""
		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = &mockTenantRepo{
			deleteFunc: func(_ context.Context, ownerID, id string) error {
				assert.Equal(t, "u_demo", ownerID)
				deleted = id
				return nil
			},
		}
		v1.RegisterTenantRoutes(api, store)

		resp := api.DeleteCtx(ownerCtx("u_demo"), "/tenants/t1")

		assert.Equal(t, http.StatusNoContent, resp.Code)
		assert.Equal(t, "t1", deleted)
	})

	t.Run("absent_id_is_silent_noop", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		store := newMockStore()
		store.tenants = &mockTenantRepo{
			deleteFunc: func(_ context.Context, _, _ string) error { return nil },
		}
		v1.RegisterTenantRoutes(api, store)

		resp := api.DeleteCtx(ownerCtx("u_demo"), "/tenants/ghost")

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})
}
