package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

// Error codes returned by the account operations.
const (
	CodeInvalidPassword   = "INVALID_PASSWORD"
	CodePasswordUnchanged = "PASSWORD_UNCHANGED"
)

// AccountInput is the payload for changing the owner's name and email.
type AccountInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// PasswordChange is the payload for changing the owner's password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// AccountDeletion confirms an account deletion with the current password.
type AccountDeletion struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
}

func errInvalidPassword() *common.AppError {
	return common.BadRequest(CodeInvalidPassword, "current password is incorrect")
}

// UpdateAccount changes the owner's name and email. The email stays unique
// across accounts, ignoring case.
func (s *Service) UpdateAccount(ctx context.Context, owner pgtype.UUID, in AccountInput) (User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := common.Validate(in); err != nil {
		return User{}, err
	}
	var updated gen.User
	err := s.store.InTx(ctx, func(q gen.Querier) error {
		if _, err := LockActiveUser(ctx, q, owner); err != nil {
			return err
		}
		var err error
		updated, err = q.UpdateUserAccount(ctx, gen.UpdateUserAccountParams{ID: owner, Name: in.Name, Email: in.Email})
		return err
	})
	if db.IsUniqueViolation(err) {
		return User{}, common.NewAppError(CodeEmailAlreadyUsed, "email is already registered", http.StatusConflict, err)
	}
	if err != nil {
		if common.IsAppError(err) {
			return User{}, err
		}
		return User{}, fmt.Errorf("update account: %w", err)
	}
	return toUser(updated), nil
}

// ChangePassword replaces the owner's password after checking the current
// one. The new password must differ from the current one.
func (s *Service) ChangePassword(ctx context.Context, owner pgtype.UUID, in PasswordChange) error {
	if err := common.Validate(in); err != nil {
		return err
	}
	if len(strings.TrimSpace(in.NewPassword)) < minPasswordLen {
		return common.BadRequest("VALIDATION_ERROR", fmt.Sprintf("new password must be at least %d characters", minPasswordLen))
	}
	return s.store.InTx(ctx, func(q gen.Querier) error {
		u, err := LockActiveUser(ctx, q, owner)
		if err != nil {
			return err
		}
		if !passwordMatches(in.CurrentPassword, u.PasswordHash) {
			return errInvalidPassword()
		}
		if passwordMatches(in.NewPassword, u.PasswordHash) {
			return common.BadRequest(CodePasswordUnchanged, "new password must be different from current password")
		}
		hash, err := argon2id.CreateHash(in.NewPassword, argon2id.DefaultParams)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if err := q.UpdateUserPassword(ctx, gen.UpdateUserPasswordParams{ID: owner, PasswordHash: hash}); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		return nil
	})
}

// DeleteAccount removes the owner and, through the foreign keys, their
// cart, saved records and orders.
func (s *Service) DeleteAccount(ctx context.Context, owner pgtype.UUID, in AccountDeletion) error {
	if err := common.Validate(in); err != nil {
		return err
	}
	return s.store.InTx(ctx, func(q gen.Querier) error {
		u, err := LockActiveUser(ctx, q, owner)
		if err != nil {
			return err
		}
		if !passwordMatches(in.CurrentPassword, u.PasswordHash) {
			return errInvalidPassword()
		}
		if err := q.DeleteUser(ctx, owner); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}

func passwordMatches(password, hash string) bool {
	ok, err := argon2id.ComparePasswordAndHash(password, hash)
	return err == nil && ok
}
