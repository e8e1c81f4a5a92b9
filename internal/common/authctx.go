package common

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type ctxKey string

const userIDKey ctxKey = "auth/user-id"

// WithUserID stores the authenticated user identifier on the provided context.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID extracts the authenticated user identifier from the context if present.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// Owner resolves the authenticated user of ctx as a database id.
func Owner(ctx context.Context) (pgtype.UUID, error) {
	id, ok := UserID(ctx)
	if !ok {
		return pgtype.UUID{}, Unauthorized()
	}
	owner, err := ParseUUID(id)
	if err != nil {
		return pgtype.UUID{}, Unauthorized()
	}
	return owner, nil
}
