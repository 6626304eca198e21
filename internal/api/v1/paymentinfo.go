package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentfolio/rentfolio/internal/domain"
	"github.com/rentfolio/rentfolio/internal/server/middleware"
)

type GetPaymentInfoInput struct{}

type GetPaymentInfoOutput struct {
	Body struct {
		Instructions string `json:"instructions"`
	}
}

type SetPaymentInfoInput struct {
	Body struct {
		Instructions string `json:"instructions" maxLength:"10000" doc:"Free-form payment instructions shown to tenants"`
	}
}

type SetPaymentInfoOutput struct {
	Body struct {
		Instructions string `json:"instructions"`
	}
}

func RegisterPaymentInfoRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "get-payment-info",
		Method:      http.MethodGet,
		Path:        "/payment-info",
		Summary:     "Get this account's payment instructions",
		Tags:        []string{"PaymentInfo"},
	}, func(ctx context.Context, _ *GetPaymentInfoInput) (*GetPaymentInfoOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		info, err := store.PaymentInfo().Get(ctx, ownerID)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to get payment info", err)
		}

		out := &GetPaymentInfoOutput{}
		if info != nil {
			out.Body.Instructions = info.Instructions
		}
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "set-payment-info",
		Method:      http.MethodPut,
		Path:        "/payment-info",
		Summary:     "Set this account's payment instructions",
		Tags:        []string{"PaymentInfo"},
	}, func(ctx context.Context, input *SetPaymentInfoInput) (*SetPaymentInfoOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		info := &domain.OwnerPaymentInfo{
			OwnerID:      ownerID,
			Instructions: input.Body.Instructions,
		}
		if err := store.PaymentInfo().Set(ctx, info); err != nil {
			return nil, huma.Error500InternalServerError("failed to set payment info", err)
		}

		recordAudit(ctx, store, ownerID, "upsert", "payment_info", ownerID)

		out := &SetPaymentInfoOutput{}
		out.Body.Instructions = info.Instructions
		return out, nil
	})
}
