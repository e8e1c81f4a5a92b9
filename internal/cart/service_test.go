package cart_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/cart"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db/memdb"
	"github.com/noah-isme/toko-checkout/internal/money"
	"github.com/noah-isme/toko-checkout/internal/obs"
)

func newService(t *testing.T) (*cart.Service, *memdb.DB) {
	t.Helper()
	m := memdb.New()
	return &cart.Service{Store: m, Currency: "usd"}, m
}

func TestMergeSumsQuantitiesPerProduct(t *testing.T) {
	svc, m := newService(t)
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	p2 := m.SeedProduct("Tee", "4.50")
	ctx := context.Background()

	_, err := svc.Merge(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 1}})
	require.NoError(t, err)
	view, err := svc.Merge(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 2}, {ProductID: p2.ID, Quantity: 3}})
	require.NoError(t, err)

	require.Equal(t, map[int64]int32{p1.ID: 3, p2.ID: 3}, m.CartLines(u.ID))
	require.Len(t, view.Items, 2)
	require.Equal(t, int64(6), view.ItemCount)
	require.Equal(t, "43.50", money.Format(view.Subtotal.Decimal()))
	require.Equal(t, "USD", view.Currency)
}

func TestReplaceSumsDuplicatesAndDropsOldLines(t *testing.T) {
	svc, m := newService(t)
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	p2 := m.SeedProduct("Tee", "4.50")
	ctx := context.Background()

	_, err := svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 5}})
	require.NoError(t, err)
	_, err = svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p2.ID, Quantity: 1}, {ProductID: p2.ID, Quantity: 2}})
	require.NoError(t, err)

	require.Equal(t, map[int64]int32{p2.ID: 3}, m.CartLines(u.ID))
}

func TestReplaceWithZeroQuantityKeepsPriorCart(t *testing.T) {
	svc, m := newService(t)
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	p2 := m.SeedProduct("Tee", "4.50")
	ctx := context.Background()

	_, err := svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 2}})
	require.NoError(t, err)

	_, err = svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p2.ID, Quantity: 1}, {ProductID: p1.ID, Quantity: 0}})
	require.Error(t, err)
	require.True(t, common.HasCode(err, cart.CodeInvalidQuantity))
	appErr, _ := common.AsAppError(err)
	require.Equal(t, "quantity must be at least 1", appErr.Message)

	require.Equal(t, map[int64]int32{p1.ID: 2}, m.CartLines(u.ID))
}

func TestQuantitySumAboveInt32IsRejected(t *testing.T) {
	svc, m := newService(t)
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	ctx := context.Background()

	_, err := svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 2}})
	require.NoError(t, err)

	_, err = svc.Replace(ctx, u.ID, []cart.Item{
		{ProductID: p1.ID, Quantity: math.MaxInt32},
		{ProductID: p1.ID, Quantity: math.MaxInt32},
		{ProductID: p1.ID, Quantity: 4},
	})
	require.True(t, common.HasCode(err, cart.CodeInvalidQuantity))
	require.Equal(t, map[int64]int32{p1.ID: 2}, m.CartLines(u.ID))

	_, err = svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: math.MaxInt32}})
	require.NoError(t, err)
	_, err = svc.Merge(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 2}})
	appErr, ok := common.AsAppError(err)
	require.True(t, ok, "merge overflow must be a client error, got %v", err)
	require.Equal(t, cart.CodeInvalidQuantity, appErr.Code)
	require.Equal(t, map[int64]int32{p1.ID: math.MaxInt32}, m.CartLines(u.ID))
}

func TestAddQuantity(t *testing.T) {
	sum, err := cart.AddQuantity(math.MaxInt32-1, 1)
	require.NoError(t, err)
	require.Equal(t, int32(math.MaxInt32), sum)

	_, err = cart.AddQuantity(math.MaxInt32, 1)
	require.True(t, common.HasCode(err, cart.CodeInvalidQuantity))
}

func TestReplaceUnknownProductKeepsPriorCart(t *testing.T) {
	svc, m := newService(t)
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	ctx := context.Background()

	_, err := svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 2}})
	require.NoError(t, err)

	_, err = svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 1}, {ProductID: 999, Quantity: 1}})
	require.True(t, common.HasCode(err, cart.CodeUnknownProduct))
	appErr, _ := common.AsAppError(err)
	require.Equal(t, "Unknown product id: 999", appErr.Message)
	require.Equal(t, map[int64]int32{p1.ID: 2}, m.CartLines(u.ID))
}

func TestReplaceRollsBackWhenInsertFails(t *testing.T) {
	svc, m := newService(t)
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	p2 := m.SeedProduct("Tee", "4.50")
	ctx := context.Background()

	_, err := svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 2}})
	require.NoError(t, err)

	boom := errors.New("disk full")
	m.FailOn("InsertCartItem", boom)
	_, err = svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p2.ID, Quantity: 1}})
	require.ErrorIs(t, err, boom)
	require.Equal(t, map[int64]int32{p1.ID: 2}, m.CartLines(u.ID))
}

func TestViewReflectsLivePrices(t *testing.T) {
	svc, m := newService(t)
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	ctx := context.Background()

	_, err := svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 3}})
	require.NoError(t, err)
	m.SetPrice(p1.ID, "3.335")

	view, err := svc.View(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.Equal(t, "3.34", money.Format(view.Items[0].Product.Price.Decimal()))
	require.Equal(t, "10.02", money.Format(view.Items[0].LineTotal.Decimal()))
	require.Equal(t, "10.02", money.Format(view.Subtotal.Decimal()))
}

func TestClearEmptiesCart(t *testing.T) {
	svc, m := newService(t)
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	ctx := context.Background()

	_, err := svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 3}})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, u.ID))
	require.Empty(t, m.CartLines(u.ID))
}

func TestDisabledOrUnknownUserIsNotFound(t *testing.T) {
	svc, m := newService(t)
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	m.DisableUser(u.ID)
	ctx := context.Background()

	_, err := svc.Replace(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 1}})
	require.True(t, common.HasCode(err, "USER_NOT_FOUND"))
	_, err = svc.View(ctx, u.ID)
	require.True(t, common.HasCode(err, "USER_NOT_FOUND"))

	stranger, err := common.ParseUUID("6f1c0f5e-8d7a-4b59-9a47-2d3e1c0b9a11")
	require.NoError(t, err)
	require.True(t, common.HasCode(svc.Clear(ctx, stranger), "USER_NOT_FOUND"))
}

func TestMutationsAreCounted(t *testing.T) {
	svc, m := newService(t)
	svc.Metrics = obs.NewDomainMetrics("test", prometheus.NewRegistry())
	u := m.SeedUser("Ana", "ana@example.com")
	p1 := m.SeedProduct("Mug", "10.00")
	ctx := context.Background()

	_, _ = svc.Merge(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: 1}})
	_, _ = svc.Merge(ctx, u.ID, []cart.Item{{ProductID: p1.ID, Quantity: -1}})

	require.Equal(t, float64(1), testutil.ToFloat64(svc.Metrics.CartMutationsTotal.WithLabelValues("merge", "ok")))
	require.Equal(t, float64(1), testutil.ToFloat64(svc.Metrics.CartMutationsTotal.WithLabelValues("merge", cart.CodeInvalidQuantity)))
}

func TestNormalizeKeepsFirstSeenOrder(t *testing.T) {
	got, err := cart.Normalize([]cart.Item{{ProductID: 7, Quantity: 1}, {ProductID: 3, Quantity: 2}, {ProductID: 7, Quantity: 4}})
	require.NoError(t, err)
	require.Equal(t, []cart.Item{{ProductID: 7, Quantity: 5}, {ProductID: 3, Quantity: 2}}, got)
}
