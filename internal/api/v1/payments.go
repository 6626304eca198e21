package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentfolio/rentfolio/internal/domain"
	"github.com/rentfolio/rentfolio/internal/server/middleware"
)

type CreatePaymentInput struct {
	Body struct {
		LeaseID string  `json:"lease_id" minLength:"1" doc:"Lease ID"`
		Month   string  `json:"month" minLength:"7" maxLength:"7" doc:"Billing month (YYYY-MM)"`
		Amount  float64 `json:"amount,omitempty" minimum:"0" doc:"Payment amount"`
		Paid    bool    `json:"paid,omitempty" doc:"Whether the payment was received"`
	}
}

type CreatePaymentOutput struct {
	Body *domain.Payment
}

type ListPaymentsInput struct{}

type ListPaymentsOutput struct {
	Body []*domain.PaymentView
}

type ListLeasePaymentsInput struct {
	ID string `path:"id" doc:"Lease ID"`
}

type ListLeasePaymentsOutput struct {
	Body []*domain.Payment
}

type TogglePaymentInput struct {
	ID string `path:"id" doc:"Payment ID"`
}

type DeletePaymentInput struct {
	ID string `path:"id" doc:"Payment ID"`
}

func RegisterPaymentRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "create-payment",
		Method:      http.MethodPost,
		Path:        "/payments",
		Summary:     "Record a rent payment",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *CreatePaymentInput) (*CreatePaymentOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		p, err := domain.NewPayment(input.Body.LeaseID, input.Body.Month, input.Body.Amount, input.Body.Paid)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}

		if createErr := store.Payments().Create(ctx, ownerID, p); createErr != nil {
			if errors.Is(createErr, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("lease not found")
			}
			return nil, huma.Error500InternalServerError("failed to create payment", createErr)
		}

		recordAudit(ctx, store, ownerID, "create", "payment", p.ID)
		return &CreatePaymentOutput{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-payments",
		Method:      http.MethodGet,
		Path:        "/payments",
		Summary:     "List this account's payments, newest month first",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, _ *ListPaymentsInput) (*ListPaymentsOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		payments, err := store.Payments().ListByOwner(ctx, ownerID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list payments", err)
		}

		return &ListPaymentsOutput{Body: payments}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-lease-payments",
		Method:      http.MethodGet,
		Path:        "/leases/{id}/payments",
		Summary:     "List payments for one lease, oldest month first",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *ListLeasePaymentsInput) (*ListLeasePaymentsOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		// Confirm the lease is visible to this account before listing.
		leases, err := store.Leases().List(ctx, ownerID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list payments", err)
		}
		visible := false
		for _, l := range leases {
			if l.ID == input.ID {
				visible = true
				break
			}
		}
		if !visible {
			return nil, huma.Error404NotFound("lease not found")
		}

		payments, err := store.Payments().ListByLease(ctx, input.ID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list payments", err)
		}

		return &ListLeasePaymentsOutput{Body: payments}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "toggle-payment-paid",
		Method:      http.MethodPost,
		Path:        "/payments/{id}/toggle",
		Summary:     "Flip a payment between paid and unpaid",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *TogglePaymentInput) (*struct{}, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		// Absent or foreign IDs are a silent no-op.
		if err := store.Payments().TogglePaid(ctx, ownerID, input.ID); err != nil {
			return nil, huma.Error500InternalServerError("failed to toggle payment", err)
		}

		recordAudit(ctx, store, ownerID, "toggle", "payment", input.ID)
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-payment",
		Method:      http.MethodDelete,
		Path:        "/payments/{id}",
		Summary:     "Delete a payment",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *DeletePaymentInput) (*struct{}, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		// Absent or foreign IDs are a silent no-op.
		if err := store.Payments().Delete(ctx, ownerID, input.ID); err != nil {
			return nil, huma.Error500InternalServerError("failed to delete payment", err)
		}

		recordAudit(ctx, store, ownerID, "delete", "payment", input.ID)
		return nil, nil
	})
}
