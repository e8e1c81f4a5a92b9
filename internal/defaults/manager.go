// Package defaults keeps exactly one default record per owner across a
// collection of saved records such as addresses or payment methods.
package defaults

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ErrNotFound is returned when the record does not belong to the owner.
var ErrNotFound = errors.New("defaults: record not found")

// Repository adapts one kind of saved record. Implementations are bound to
// the transaction the manager runs in. Get returns ErrNotFound when the
// record is absent or owned by someone else.
type Repository[T any] interface {
	List(ctx context.Context, owner pgtype.UUID) ([]T, error)
	Get(ctx context.Context, owner pgtype.UUID, id int64) (T, error)
	Insert(ctx context.Context, owner pgtype.UUID, record T, isDefault bool) (T, error)
	ClearDefaults(ctx context.Context, owner pgtype.UUID) error
	MarkDefault(ctx context.Context, owner pgtype.UUID, id int64) (T, error)
	Delete(ctx context.Context, owner pgtype.UUID, id int64) error

	ID(record T) int64
	IsDefault(record T) bool
	CreatedAt(record T) time.Time
}

// Manager applies the single-default rules through a Repository.
type Manager[T any] struct {
	Repo Repository[T]
}

// New returns a Manager over repo.
func New[T any](repo Repository[T]) *Manager[T] {
	return &Manager[T]{Repo: repo}
}

// SetDefault makes id the owner's only default record.
func (m *Manager[T]) SetDefault(ctx context.Context, owner pgtype.UUID, id int64) (T, error) {
	var zero T
	if _, err := m.Repo.Get(ctx, owner, id); err != nil {
		return zero, err
	}
	if err := m.Repo.ClearDefaults(ctx, owner); err != nil {
		return zero, err
	}
	return m.Repo.MarkDefault(ctx, owner, id)
}

// OnInsert stores record. A requested default replaces the current one; the
// owner's first record becomes default even when not requested.
func (m *Manager[T]) OnInsert(ctx context.Context, owner pgtype.UUID, record T, requestedDefault bool) (T, error) {
	var zero T
	makeDefault := requestedDefault
	if requestedDefault {
		if err := m.Repo.ClearDefaults(ctx, owner); err != nil {
			return zero, err
		}
	} else {
		existing, err := m.Repo.List(ctx, owner)
		if err != nil {
			return zero, err
		}
		makeDefault = len(existing) == 0
	}
	return m.Repo.Insert(ctx, owner, record, makeDefault)
}

// OnDelete removes id. When it was the default, the most recently created
// remaining record is promoted and returned.
func (m *Manager[T]) OnDelete(ctx context.Context, owner pgtype.UUID, id int64) (*T, error) {
	target, err := m.Repo.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if err := m.Repo.Delete(ctx, owner, id); err != nil {
		return nil, err
	}
	if !m.Repo.IsDefault(target) {
		return nil, nil
	}
	remaining, err := m.Repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	next, ok := m.MostRecent(remaining)
	if !ok {
		return nil, nil
	}
	promoted, err := m.Repo.MarkDefault(ctx, owner, m.Repo.ID(next))
	if err != nil {
		return nil, err
	}
	return &promoted, nil
}

// MostRecent picks the record with the latest creation time, breaking ties
// by the highest id.
func (m *Manager[T]) MostRecent(records []T) (T, bool) {
	var zero T
	if len(records) == 0 {
		return zero, false
	}
	best := slices.MaxFunc(records, func(a, b T) int {
		if c := m.Repo.CreatedAt(a).Compare(m.Repo.CreatedAt(b)); c != 0 {
			return c
		}
		switch ia, ib := m.Repo.ID(a), m.Repo.ID(b); {
		case ia < ib:
			return -1
		case ia > ib:
			return 1
		}
		return 0
	})
	return best, true
}
