package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentfolio/rentfolio/internal/domain"
	"github.com/rentfolio/rentfolio/internal/server/middleware"
)

type DashboardInput struct{}

type DashboardOutput struct {
	Body *domain.KPISummary
}

func RegisterDashboardRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard",
		Summary:     "Portfolio KPI summary",
		Tags:        []string{"Dashboard"},
	}, func(ctx context.Context, _ *DashboardInput) (*DashboardOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		summary, err := store.Stats().Summary(ctx, ownerID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to compute dashboard summary", err)
		}

		return &DashboardOutput{Body: summary}, nil
	})
}
