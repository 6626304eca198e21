package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/rentfolio/rentfolio/internal/domain"
	"github.com/rentfolio/rentfolio/internal/server/middleware"
)

type ListAuditInput struct {
	Limit  int `query:"limit" default:"50" minimum:"1" maximum:"500" doc:"Page size"`
	Offset int `query:"offset" default:"0" minimum:"0" doc:"Page offset"`
}

type ListAuditOutput struct {
	Body []*domain.AuditEntry
}

func RegisterAuditRoutes(api huma.API, store DataStore) {
	huma.Register(api, huma.Operation{
		OperationID: "list-audit-log",
		Method:      http.MethodGet,
		Path:        "/audit",
		Summary:     "List recent changes to this account's data",
		Tags:        []string{"Audit"},
	}, func(ctx context.Context, input *ListAuditInput) (*ListAuditOutput, error) {
		ownerID, ok := middleware.OwnerIDFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing account context")
		}

		entries, err := store.Audit().ListByOwner(ctx, ownerID, input.Limit, input.Offset)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list audit log", err)
		}

		return &ListAuditOutput{Body: entries}, nil
	})
}

// recordAudit writes an audit entry for a mutation. Failures are logged, not
// surfaced; the mutation itself already succeeded.
func recordAudit(ctx context.Context, store DataStore, ownerID, action, resource, resourceID string) {
	email, _ := middleware.EmailFromContext(ctx)
	entry := domain.NewAuditEntry(ownerID, email, action, resource, resourceID)
	if err := store.Audit().Record(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("action", action).
			Str("resource", resource).
			Msg("audit: failed to record entry")
	}
}
