package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

// CodeUserNotFound is returned when the owner is unknown or disabled.
const CodeUserNotFound = "USER_NOT_FOUND"

// ErrUserNotFound builds the error reported for missing or disabled owners.
func ErrUserNotFound() *common.AppError {
	return common.NotFound(CodeUserNotFound, "User not found")
}

// ActiveUser loads the owner and rejects disabled accounts.
func ActiveUser(ctx context.Context, q gen.Querier, id pgtype.UUID) (gen.User, error) {
	return checkActive(q.GetUserByID(ctx, id))
}

// LockActiveUser locks the owner row for the rest of the transaction so
// concurrent writes for one owner serialize.
func LockActiveUser(ctx context.Context, q gen.Querier, id pgtype.UUID) (gen.User, error) {
	return checkActive(q.LockUserForUpdate(ctx, id))
}

func checkActive(u gen.User, err error) (gen.User, error) {
	if err != nil {
		if db.IsNotFound(err) {
			return gen.User{}, ErrUserNotFound()
		}
		return gen.User{}, fmt.Errorf("load user: %w", err)
	}
	if u.DisabledAt.Valid {
		return gen.User{}, ErrUserNotFound()
	}
	return u, nil
}
