package memdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

var _ db.Store = (*DB)(nil)

func TestInTxRollsBackOnError(t *testing.T) {
	m := New()
	u := m.SeedUser("Ana", "ana@example.com")
	p := m.SeedProduct("Mug", "10.00")
	ctx := context.Background()

	boom := errors.New("boom")
	err := m.InTx(ctx, func(q gen.Querier) error {
		if _, err := q.InsertCartItem(ctx, gen.InsertCartItemParams{UserID: u.ID, ProductID: p.ID, Quantity: 2}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Empty(t, m.CartLines(u.ID))

	require.NoError(t, m.InTx(ctx, func(q gen.Querier) error {
		_, err := q.InsertCartItem(ctx, gen.InsertCartItemParams{UserID: u.ID, ProductID: p.ID, Quantity: 2})
		return err
	}))
	require.Equal(t, map[int64]int32{p.ID: 2}, m.CartLines(u.ID))
}

func TestConstraintsMirrorSchema(t *testing.T) {
	m := New()
	u := m.SeedUser("Ana", "ana@example.com")
	p := m.SeedProduct("Mug", "10.00")
	ctx := context.Background()

	err := m.InTx(ctx, func(q gen.Querier) error {
		_, err := q.InsertCartItem(ctx, gen.InsertCartItemParams{UserID: u.ID, ProductID: p.ID, Quantity: 0})
		return err
	})
	require.Error(t, err)

	err = m.InTx(ctx, func(q gen.Querier) error {
		if _, err := q.InsertCartItem(ctx, gen.InsertCartItemParams{UserID: u.ID, ProductID: p.ID, Quantity: 1}); err != nil {
			return err
		}
		_, err := q.InsertCartItem(ctx, gen.InsertCartItemParams{UserID: u.ID, ProductID: p.ID, Quantity: 1})
		return err
	})
	require.Error(t, err)
	require.True(t, db.IsUniqueViolation(err))

	err = m.InTx(ctx, func(q gen.Querier) error {
		_, err := q.CreatePaymentMethod(ctx, gen.CreatePaymentMethodParams{UserID: u.ID, Label: "Card", Method: gen.PaymentMethodKindCard})
		return err
	})
	require.Error(t, err)
}

func TestListAddressesNewestFirstWithIDTieBreak(t *testing.T) {
	m := New()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.Now = func() time.Time { return fixed }
	u := m.SeedUser("Ana", "ana@example.com")
	ctx := context.Background()

	require.NoError(t, m.InTx(ctx, func(q gen.Querier) error {
		for _, label := range []string{"a", "b", "c"} {
			if _, err := q.CreateAddress(ctx, gen.CreateAddressParams{UserID: u.ID, Label: label}); err != nil {
				return err
			}
		}
		return nil
	}))

	var rows []gen.UserAddress
	require.NoError(t, m.Read(ctx, func(q gen.Querier) error {
		var err error
		rows, err = q.ListAddressesByUser(ctx, u.ID)
		return err
	}))
	require.Len(t, rows, 3)
	require.Equal(t, "c", rows[0].Label)
	require.Equal(t, "a", rows[2].Label)
}

func TestFailOnInjectsErrors(t *testing.T) {
	m := New()
	boom := errors.New("down")
	m.FailOn("ListCategories", boom)
	err := m.Read(context.Background(), func(q gen.Querier) error {
		_, err := q.ListCategories(context.Background())
		return err
	})
	require.ErrorIs(t, err, boom)

	m.FailOn("ListCategories", nil)
	require.NoError(t, m.Read(context.Background(), func(q gen.Querier) error {
		_, err := q.ListCategories(context.Background())
		return err
	}))
}

func TestDeleteUserCascades(t *testing.T) {
	m := New()
	ana := m.SeedUser("Ana", "ana@example.com")
	bo := m.SeedUser("Bo", "bo@example.com")
	p := m.SeedProduct("Mug", "10.00")
	ctx := context.Background()

	require.NoError(t, m.InTx(ctx, func(q gen.Querier) error {
		for _, u := range []gen.User{ana, bo} {
			o, err := q.CreateOrder(ctx, gen.CreateOrderParams{
				UserID:        u.ID,
				Status:        "accepted",
				Currency:      "USD",
				Subtotal:      MustPrice("10.00"),
				PaymentMethod: gen.PaymentMethodKindPaypal,
			})
			if err != nil {
				return err
			}
			_, err = q.CreateOrderItem(ctx, gen.CreateOrderItemParams{
				OrderID: o.ID, ProductID: p.ID, ProductName: "Mug",
				UnitPrice: MustPrice("10.00"), Quantity: 1, LineTotal: MustPrice("10.00"),
			})
			if err != nil {
				return err
			}
		}
		return q.DeleteUser(ctx, ana.ID)
	}))

	require.Len(t, m.Orders(), 1)
	require.Equal(t, bo.ID, m.Orders()[0].UserID)
	require.Len(t, m.OrderItems(), 1)
	require.Equal(t, m.Orders()[0].ID, m.OrderItems()[0].OrderID)
}

func TestUpdateUserAccountKeepsEmailUnique(t *testing.T) {
	m := New()
	ana := m.SeedUser("Ana", "ana@example.com")
	m.SeedUser("Bo", "bo@example.com")
	ctx := context.Background()

	err := m.InTx(ctx, func(q gen.Querier) error {
		_, err := q.UpdateUserAccount(ctx, gen.UpdateUserAccountParams{ID: ana.ID, Name: "Ana", Email: "BO@example.com"})
		return err
	})
	require.True(t, db.IsUniqueViolation(err))

	require.NoError(t, m.InTx(ctx, func(q gen.Querier) error {
		_, err := q.UpdateUserAccount(ctx, gen.UpdateUserAccountParams{ID: ana.ID, Name: "Ana", Email: "ANA@example.com"})
		return err
	}))
}
