package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentfolio/rentfolio/internal/domain"
	"github.com/rentfolio/rentfolio/internal/server/middleware"
)

type CreatePropertyInput struct {
	Body struct {
		Address     string  `json:"address" minLength:"1" maxLength:"500" doc:"Street address"`
		DefaultRent float64 `json:"default_rent,omitempty" minimum:"0" doc:"Default monthly rent"`
	}
}

type CreatePropertyOutput struct {
	Body *domain.Property
}

type ListPropertiesInput struct{}

type ListPropertiesOutput struct {
	Body []*domain.Property
}

type TogglePropertyInput struct {
	ID string `path:"id" doc:"Property ID"`
}

type DeletePropertyInput struct {
	ID string `path:"id" doc:"Property ID"`
}

func RegisterPropertyRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "create-property",
		Method:      http.MethodPost,
		Path:        "/properties",
		Summary:     "Add a property",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *CreatePropertyInput) (*CreatePropertyOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		p, err := domain.NewProperty(input.Body.Address, input.Body.DefaultRent, ownerID)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}

		if createErr := store.Properties().Create(ctx, p); createErr != nil {
			return nil, huma.Error500InternalServerError("failed to create property", createErr)
		}

		recordAudit(ctx, store, ownerID, "create", "property", p.ID)
		return &CreatePropertyOutput{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-properties",
		Method:      http.MethodGet,
		Path:        "/properties",
		Summary:     "List this account's properties",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, _ *ListPropertiesInput) (*ListPropertiesOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		properties, err := store.Properties().List(ctx, ownerID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list properties", err)
		}

		return &ListPropertiesOutput{Body: properties}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "toggle-property-status",
		Method:      http.MethodPost,
		Path:        "/properties/{id}/toggle",
		Summary:     "Flip a property between occupied and vacant",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *TogglePropertyInput) (*struct{}, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		// Absent or foreign IDs are a silent no-op.
		if err := store.Properties().ToggleStatus(ctx, ownerID, input.ID); err != nil {
			return nil, huma.Error500InternalServerError("failed to toggle property status", err)
		}

		recordAudit(ctx, store, ownerID, "toggle", "property", input.ID)
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-property",
		Method:      http.MethodDelete,
		Path:        "/properties/{id}",
		Summary:     "Delete a property and its leases and payments",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *DeletePropertyInput) (*struct{}, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		// Absent or foreign IDs are a silent no-op.
		if err := store.Properties().Delete(ctx, ownerID, input.ID); err != nil {
			return nil, huma.Error500InternalServerError("failed to delete property", err)
		}

		recordAudit(ctx, store, ownerID, "delete", "property", input.ID)
		return nil, nil
	})
}
