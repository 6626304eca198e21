package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentfolio/rentfolio/internal/domain"
	"github.com/rentfolio/rentfolio/internal/server/middleware"
)

type CreateLeaseInput struct {
	Body struct {
		PropertyID string  `json:"property_id" minLength:"1" doc:"Property ID"`
		TenantID   string  `json:"tenant_id" minLength:"1" doc:"Tenant ID"`
		Start      string  `json:"start" minLength:"1" doc:"Lease start date (YYYY-MM-DD)"`
		End        string  `json:"end" minLength:"1" doc:"Lease end date (YYYY-MM-DD)"`
		Rent       float64 `json:"rent,omitempty" minimum:"0" doc:"Monthly rent"`
	}
}

type CreateLeaseOutput struct {
	Body *domain.Lease
}

type ListLeasesInput struct{}

type ListLeasesOutput struct {
	Body []*domain.LeaseView
}

type DeleteLeaseInput struct {
	ID string `path:"id" doc:"Lease ID"`
}

func RegisterLeaseRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "create-lease",
		Method:      http.MethodPost,
		Path:        "/leases",
		Summary:     "Add a lease, marking its property occupied",
		Tags:        []string{"Leases"},
	}, func(ctx context.Context, input *CreateLeaseInput) (*CreateLeaseOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		l, err := domain.NewLease(input.Body.PropertyID, input.Body.TenantID, input.Body.Start, input.Body.End, input.Body.Rent)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}

		if createErr := store.Leases().Create(ctx, ownerID, l); createErr != nil {
			if errors.Is(createErr, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("property or tenant not found")
			}
			return nil, huma.Error500InternalServerError("failed to create lease", createErr)
		}

		recordAudit(ctx, store, ownerID, "create", "lease", l.ID)
		return &CreateLeaseOutput{Body: l}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-leases",
		Method:      http.MethodGet,
		Path:        "/leases",
		Summary:     "List this account's leases",
		Tags:        []string{"Leases"},
	}, func(ctx context.Context, _ *ListLeasesInput) (*ListLeasesOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		leases, err := store.Leases().List(ctx, ownerID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list leases", err)
		}

		return &ListLeasesOutput{Body: leases}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-lease",
		Method:      http.MethodDelete,
		Path:        "/leases/{id}",
		Summary:     "Delete a lease and its payments",
		Tags:        []string{"Leases"},
	}, func(ctx context.Context, input *DeleteLeaseInput) (*struct{}, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		// Absent or foreign IDs are a silent no-op. The property's status is
		// left untouched; vacancy is managed explicitly via the toggle.
		if err := store.Leases().Delete(ctx, ownerID, input.ID); err != nil {
			return nil, huma.Error500InternalServerError("failed to delete lease", err)
		}

		recordAudit(ctx, store, ownerID, "delete", "lease", input.ID)
		return nil, nil
	})
}
