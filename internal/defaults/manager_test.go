package defaults_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/defaults"
)

type rec struct {
	id      int64
	owner   pgtype.UUID
	def     bool
	created time.Time
}

// fakeRepo keeps records in memory and rejects a second default, like the
// partial unique index does.
type fakeRepo struct {
	rows  []rec
	next  int64
	clock time.Time
	tick  time.Duration
}

func (f *fakeRepo) List(_ context.Context, owner pgtype.UUID) ([]rec, error) {
	var out []rec
	for _, r := range f.rows {
		if r.owner == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Get(_ context.Context, owner pgtype.UUID, id int64) (rec, error) {
	for _, r := range f.rows {
		if r.id == id && r.owner == owner {
			return r, nil
		}
	}
	return rec{}, defaults.ErrNotFound
}

func (f *fakeRepo) Insert(_ context.Context, owner pgtype.UUID, r rec, isDefault bool) (rec, error) {
	if isDefault && f.hasDefault(owner) {
		panic("second default")
	}
	f.next++
	f.clock = f.clock.Add(f.tick)
	r.id, r.owner, r.def, r.created = f.next, owner, isDefault, f.clock
	f.rows = append(f.rows, r)
	return r, nil
}

func (f *fakeRepo) hasDefault(owner pgtype.UUID) bool {
	return slices.ContainsFunc(f.rows, func(r rec) bool { return r.owner == owner && r.def })
}

func (f *fakeRepo) ClearDefaults(_ context.Context, owner pgtype.UUID) error {
	for i := range f.rows {
		if f.rows[i].owner == owner {
			f.rows[i].def = false
		}
	}
	return nil
}

func (f *fakeRepo) MarkDefault(_ context.Context, owner pgtype.UUID, id int64) (rec, error) {
	if f.hasDefault(owner) {
		panic("second default")
	}
	for i := range f.rows {
		if f.rows[i].id == id && f.rows[i].owner == owner {
			f.rows[i].def = true
			return f.rows[i], nil
		}
	}
	return rec{}, defaults.ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, owner pgtype.UUID, id int64) error {
	f.rows = slices.DeleteFunc(f.rows, func(r rec) bool { return r.id == id && r.owner == owner })
	return nil
}

func (f *fakeRepo) ID(r rec) int64            { return r.id }
func (f *fakeRepo) IsDefault(r rec) bool      { return r.def }
func (f *fakeRepo) CreatedAt(r rec) time.Time { return r.created }

func (f *fakeRepo) defaultIDs(owner pgtype.UUID) []int64 {
	var ids []int64
	for _, r := range f.rows {
		if r.owner == owner && r.def {
			ids = append(ids, r.id)
		}
	}
	return ids
}

var (
	alice = pgtype.UUID{Bytes: [16]byte{1}, Valid: true}
	bob   = pgtype.UUID{Bytes: [16]byte{2}, Valid: true}
)

func newManager(tick time.Duration) (*defaults.Manager[rec], *fakeRepo) {
	repo := &fakeRepo{clock: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), tick: tick}
	return defaults.New[rec](repo), repo
}

func TestOnInsertFirstRecordBecomesDefault(t *testing.T) {
	m, repo := newManager(time.Second)
	ctx := context.Background()

	first, err := m.OnInsert(ctx, alice, rec{}, false)
	require.NoError(t, err)
	require.True(t, first.def)

	second, err := m.OnInsert(ctx, alice, rec{}, false)
	require.NoError(t, err)
	require.False(t, second.def)

	third, err := m.OnInsert(ctx, alice, rec{}, true)
	require.NoError(t, err)
	require.True(t, third.def)
	require.Equal(t, []int64{third.id}, repo.defaultIDs(alice))
}

func TestSetDefaultScopedToOwner(t *testing.T) {
	m, repo := newManager(time.Second)
	ctx := context.Background()
	_, _ = m.OnInsert(ctx, alice, rec{}, false)
	a2, _ := m.OnInsert(ctx, alice, rec{}, false)
	b1, _ := m.OnInsert(ctx, bob, rec{}, false)

	got, err := m.SetDefault(ctx, alice, a2.id)
	require.NoError(t, err)
	require.True(t, got.def)
	require.Equal(t, []int64{a2.id}, repo.defaultIDs(alice))
	require.Equal(t, []int64{b1.id}, repo.defaultIDs(bob))

	_, err = m.SetDefault(ctx, alice, b1.id)
	require.ErrorIs(t, err, defaults.ErrNotFound)
	require.Equal(t, []int64{a2.id}, repo.defaultIDs(alice))
}

func TestOnDeletePromotesMostRecent(t *testing.T) {
	m, repo := newManager(time.Second)
	ctx := context.Background()
	a1, _ := m.OnInsert(ctx, alice, rec{}, true)
	a2, _ := m.OnInsert(ctx, alice, rec{}, false)
	a3, _ := m.OnInsert(ctx, alice, rec{}, false)

	promoted, err := m.OnDelete(ctx, alice, a1.id)
	require.NoError(t, err)
	require.NotNil(t, promoted)
	require.Equal(t, a3.id, promoted.id)
	require.Equal(t, []int64{a3.id}, repo.defaultIDs(alice))

	promoted, err = m.OnDelete(ctx, alice, a2.id)
	require.NoError(t, err)
	require.Nil(t, promoted)

	promoted, err = m.OnDelete(ctx, alice, a3.id)
	require.NoError(t, err)
	require.Nil(t, promoted)
	require.Empty(t, repo.rows)
}

func TestOnDeleteTieBreaksOnHighestID(t *testing.T) {
	m, repo := newManager(0)
	ctx := context.Background()
	a1, _ := m.OnInsert(ctx, alice, rec{}, true)
	_, _ = m.OnInsert(ctx, alice, rec{}, false)
	a3, _ := m.OnInsert(ctx, alice, rec{}, false)

	promoted, err := m.OnDelete(ctx, alice, a1.id)
	require.NoError(t, err)
	require.Equal(t, a3.id, promoted.id)
	require.Equal(t, []int64{a3.id}, repo.defaultIDs(alice))
}

func TestOnDeleteUnknownRecord(t *testing.T) {
	m, _ := newManager(time.Second)
	_, err := m.OnDelete(context.Background(), alice, 99)
	require.ErrorIs(t, err, defaults.ErrNotFound)
}
