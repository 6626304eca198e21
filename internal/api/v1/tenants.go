package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentfolio/rentfolio/internal/domain"
	"github.com/rentfolio/rentfolio/internal/server/middleware"
)

type CreateTenantInput struct {
	Body struct {
		Name    string `json:"name" minLength:"1" maxLength:"255" doc:"Tenant full name"`
		Contact string `json:"contact,omitempty" maxLength:"255" doc:"Contact email, used to link a self-service account"`
	}
}

type CreateTenantOutput struct {
	Body *domain.Tenant
}

type ListTenantsInput struct{}

type ListTenantsOutput struct {
	Body []*domain.Tenant
}

type DeleteTenantInput struct {
	ID string `path:"id" doc:"Tenant ID"`
}

func RegisterTenantRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "create-tenant",
		Method:      http.MethodPost,
		Path:        "/tenants",
		Summary:     "Add a tenant",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *CreateTenantInput) (*CreateTenantOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		t, err := domain.NewTenant(input.Body.Name, input.Body.Contact, ownerID, ownerID)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}

		if createErr := store.Tenants().Create(ctx, t); createErr != nil {
			return nil, huma.Error500InternalServerError("failed to create tenant", createErr)
		}

		recordAudit(ctx, store, ownerID, "create", "tenant", t.ID)
		return &CreateTenantOutput{Body: t}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-tenants",
		Method:      http.MethodGet,
		Path:        "/tenants",
		Summary:     "List this account's tenants",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, _ *ListTenantsInput) (*ListTenantsOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		tenants, err := store.Tenants().List(ctx, ownerID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list tenants", err)
		}

		return &ListTenantsOutput{Body: tenants}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-tenant",
		Method:      http.MethodDelete,
		Path:        "/tenants/{id}",
		Summary:     "Delete a tenant",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *DeleteTenantInput) (*struct{}, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		// Absent or foreign IDs are a silent no-op.
		if err := store.Tenants().Delete(ctx, ownerID, input.ID); err != nil {
			return nil, huma.Error500InternalServerError("failed to delete tenant", err)
		}

		recordAudit(ctx, store, ownerID, "delete", "tenant", input.ID)
		return nil, nil
	})
}
