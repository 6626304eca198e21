package middleware

import "context"

type contextKey string

const (
	ContextKeyOwnerID contextKey = "owner_id"
	ContextKeyEmail   contextKey = "email"
	ContextKeyRole    contextKey = "role"
)

func OwnerIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextKeyOwnerID).(string)
	return v, ok
}

func EmailFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextKeyEmail).(string)
	return v, ok
}

func RoleFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextKeyRole).(string)
	return v, ok
}
