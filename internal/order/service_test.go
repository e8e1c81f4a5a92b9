package order_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/auth"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/db/memdb"
	"github.com/noah-isme/toko-checkout/internal/money"
	"github.com/noah-isme/toko-checkout/internal/order"
)

func seedOrder(t *testing.T, m *memdb.DB, owner pgtype.UUID, p gen.Product, qty int32) gen.Order {
	t.Helper()
	var o gen.Order
	require.NoError(t, m.InTx(context.Background(), func(q gen.Querier) error {
		var err error
		total := money.LineTotal(p.Price, qty)
		o, err = q.CreateOrder(context.Background(), gen.CreateOrderParams{
			UserID:           owner,
			Status:           "accepted",
			Currency:         "USD",
			Subtotal:         total,
			ShippingFullName: "Ana",
			ShippingEmail:    "ana@example.com",
			ShippingAddress:  "1 Main St",
			ShippingCity:     "Lisbon",
			ShippingCountry:  "PT",
			PaymentMethod:    gen.PaymentMethodKindCard,
			PaymentCardLast4: common.Text("4242"),
		})
		if err != nil {
			return err
		}
		_, err = q.CreateOrderItem(context.Background(), gen.CreateOrderItemParams{
			OrderID: o.ID, ProductID: p.ID, ProductName: p.Name, UnitPrice: p.Price, Quantity: qty, LineTotal: total,
		})
		return err
	}))
	return o
}

func newClock() func() time.Time {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
}

func TestListNewestFirstWithLines(t *testing.T) {
	m := memdb.New()
	m.Now = newClock()
	u := m.SeedUser("Ana", "ana@example.com")
	other := m.SeedUser("Bo", "bo@example.com")
	mug := m.SeedProduct("Mug", "10.00")
	first := seedOrder(t, m, u.ID, mug, 1)
	second := seedOrder(t, m, u.ID, mug, 3)
	seedOrder(t, m, other.ID, mug, 2)

	svc := &order.Service{Store: m}
	orders, err := svc.List(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, order.ExternalID(second.ID), orders[0].ID)
	require.Equal(t, order.ExternalID(first.ID), orders[1].ID)
	require.Len(t, orders[0].Items, 1)
	require.Equal(t, int32(3), orders[0].Items[0].Quantity)
	require.Equal(t, "30.00", money.Format(orders[0].Items[0].LineTotal.Decimal()))
	require.Equal(t, "4242", orders[0].Payment.CardLast4)
	require.Equal(t, "card", orders[0].Payment.Method)
}

func TestListEmpty(t *testing.T) {
	m := memdb.New()
	u := m.SeedUser("Ana", "ana@example.com")
	orders, err := (&order.Service{Store: m}).List(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, orders)
	require.Empty(t, orders)
}

func TestGetScopesToOwner(t *testing.T) {
	m := memdb.New()
	u := m.SeedUser("Ana", "ana@example.com")
	other := m.SeedUser("Bo", "bo@example.com")
	mug := m.SeedProduct("Mug", "10.00")
	o := seedOrder(t, m, u.ID, mug, 2)
	svc := &order.Service{Store: m}
	ctx := context.Background()

	view, err := svc.Get(ctx, u.ID, order.ExternalID(o.ID))
	require.NoError(t, err)
	require.Equal(t, "20.00", money.Format(view.Subtotal.Decimal()))

	view, err = svc.Get(ctx, u.ID, "ord-"+view.ID[len("ORD-"):])
	require.NoError(t, err)

	for _, id := range []string{order.ExternalID(o.ID + 100), "ORD-x", "", "ORD--1"} {
		_, err = svc.Get(ctx, u.ID, id)
		require.True(t, common.HasCode(err, order.CodeOrderNotFound), id)
	}
	_, err = svc.Get(ctx, other.ID, view.ID)
	require.True(t, common.HasCode(err, order.CodeOrderNotFound))

	m.DisableUser(u.ID)
	_, err = svc.Get(ctx, u.ID, view.ID)
	require.True(t, common.HasCode(err, auth.CodeUserNotFound))
}

func TestParseExternalID(t *testing.T) {
	cases := map[string]int64{"ORD-17": 17, "ord-3": 3, " 42 ": 42}
	for raw, want := range cases {
		got, ok := order.ParseExternalID(raw)
		require.True(t, ok, raw)
		require.Equal(t, want, got)
	}
	for _, raw := range []string{"ORD-0", "ORD-", "17a", "ORDER-1"} {
		_, ok := order.ParseExternalID(raw)
		require.False(t, ok, raw)
	}
}

func TestHandlerGet(t *testing.T) {
	m := memdb.New()
	u := m.SeedUser("Ana", "ana@example.com")
	mug := m.SeedProduct("Mug", "10.00")
	o := seedOrder(t, m, u.ID, mug, 2)
	h := &order.Handler{Svc: &order.Service{Store: m}}
	r := chi.NewRouter()
	r.Get("/api/v1/orders", h.List)
	r.Get("/api/v1/orders/{orderID}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+order.ExternalID(o.ID), nil)
	req = req.WithContext(common.WithUserID(req.Context(), common.UUIDString(u.ID)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"subtotal":20.00`)

	var resp struct {
		Data order.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, order.ExternalID(o.ID), resp.Data.ID)
	require.Len(t, resp.Data.Items, 1)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-999", nil)
	req = req.WithContext(common.WithUserID(req.Context(), common.UUIDString(u.ID)))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Body.String(), order.CodeOrderNotFound)
}
