// Package db wires the generated queries to a pgx pool and runs units of work
// inside serializable transactions.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

// Store runs work against the database. Read uses plain pooled queries, InTx
// runs fn in one serializable transaction and retries it on conflict.
type Store interface {
	Read(ctx context.Context, fn func(q gen.Querier) error) error
	InTx(ctx context.Context, fn func(q gen.Querier) error) error
}

// PgStore implements Store on top of a pgx pool.
type PgStore struct {
	Pool       *pgxpool.Pool
	Q          *gen.Queries
	MaxRetries int
}

// NewPgStore constructs a PgStore for the pool.
func NewPgStore(pool *pgxpool.Pool, maxRetries int) *PgStore {
	return &PgStore{Pool: pool, Q: gen.New(pool), MaxRetries: maxRetries}
}

// Read executes fn using the pool-backed queries.
func (s *PgStore) Read(ctx context.Context, fn func(q gen.Querier) error) error {
	return fn(s.Q)
}

// InTx executes fn inside a serializable transaction. fn may run more than
// once, so it must only touch the database through q.
func (s *PgStore) InTx(ctx context.Context, fn func(q gen.Querier) error) error {
	if s.Pool == nil {
		return errors.New("db: pool not configured")
	}
	return RetrySerializable(ctx, s.MaxRetries, func(ctx context.Context) error {
		tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer func() {
			_ = tx.Rollback(ctx)
		}()
		if err := fn(s.Q.WithTx(tx)); err != nil {
			return err
		}
		return tx.Commit(ctx)
	})
}

// RetrySerializable runs fn and repeats it while it fails with a
// serialization failure or deadlock, up to maxRetries additional attempts.
func RetrySerializable(ctx context.Context, maxRetries int, fn func(context.Context) error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * 10 * time.Millisecond
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		err = fn(ctx)
		if err == nil || !IsSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("transaction retries exhausted: %w", err)
}

// IsSerializationFailure reports whether err is a retryable transaction conflict.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsNotFound reports whether err signals a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
