package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentfolio/rentfolio/internal/domain"
	"github.com/rentfolio/rentfolio/internal/server/middleware"
)

// paymentInfoFallback is shown to tenants whose landlord has not stored
// payment instructions.
const paymentInfoFallback = "Your landlord has not provided payment instructions yet. Please contact them directly."

type PortalLeaseInput struct{}

type PortalLeaseOutput struct {
	Body *domain.LeaseView
}

type PortalPaymentsInput struct{}

type PortalPaymentsOutput struct {
	Body []*domain.Payment
}

type PortalPaymentInfoInput struct{}

type PortalPaymentInfoOutput struct {
	Body struct {
		Instructions string `json:"instructions"`
	}
}

// portalTenant resolves the caller's tenant record from the authenticated
// email. A missing record gets its own message so tenants can tell it apart
// from a missing lease.
func portalTenant(ctx context.Context, store DataStore) (*domain.Tenant, error) {
	email, ok := middleware.EmailFromContext(ctx)
	if !ok || email == "" {
		return nil, huma.Error403Forbidden("missing account context")
	}

	tenant, err := store.Tenants().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("no tenant record; please contact your landlord to add your email")
		}
		return nil, huma.Error500InternalServerError("failed to look up tenant record", err)
	}
	return tenant, nil
}

func RegisterPortalRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "portal-get-lease",
		Method:      http.MethodGet,
		Path:        "/portal/lease",
		Summary:     "The caller's lease with property and landlord details",
		Tags:        []string{"Portal"},
	}, func(ctx context.Context, _ *PortalLeaseInput) (*PortalLeaseOutput, error) {
		tenant, err := portalTenant(ctx, store)
		if err != nil {
			return nil, err
		}

		lease, err := store.Leases().GetByTenant(ctx, tenant.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("no lease found; your landlord has not assigned a lease yet")
			}
			return nil, huma.Error500InternalServerError("failed to look up lease", err)
		}

		return &PortalLeaseOutput{Body: lease}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "portal-list-payments",
		Method:      http.MethodGet,
		Path:        "/portal/payments",
		Summary:     "Payment history for the caller's lease, oldest month first",
		Tags:        []string{"Portal"},
	}, func(ctx context.Context, _ *PortalPaymentsInput) (*PortalPaymentsOutput, error) {
		tenant, err := portalTenant(ctx, store)
		if err != nil {
			return nil, err
		}

		lease, err := store.Leases().GetByTenant(ctx, tenant.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("no lease found; your landlord has not assigned a lease yet")
			}
			return nil, huma.Error500InternalServerError("failed to look up lease", err)
		}

		payments, err := store.Payments().ListByLease(ctx, lease.ID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list payments", err)
		}

		return &PortalPaymentsOutput{Body: payments}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "portal-get-payment-info",
		Method:      http.MethodGet,
		Path:        "/portal/payment-info",
		Summary:     "The landlord's payment instructions",
		Tags:        []string{"Portal"},
	}, func(ctx context.Context, _ *PortalPaymentInfoInput) (*PortalPaymentInfoOutput, error) {
		tenant, err := portalTenant(ctx, store)
		if err != nil {
			return nil, err
		}

		info, err := store.PaymentInfo().Get(ctx, tenant.OwnerID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to get payment info", err)
		}

		out := &PortalPaymentInfoOutput{}
		if info != nil && info.Instructions != "" {
			out.Body.Instructions = info.Instructions
		} else {
			out.Body.Instructions = paymentInfoFallback
		}
		return out, nil
	})
}
