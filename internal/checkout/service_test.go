package checkout_test

import (
	"context"
	"errors"
	"math"
	"strconv"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/auth"
	"github.com/noah-isme/toko-checkout/internal/cart"
	"github.com/noah-isme/toko-checkout/internal/checkout"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/db/memdb"
	"github.com/noah-isme/toko-checkout/internal/events"
	"github.com/noah-isme/toko-checkout/internal/lock"
	"github.com/noah-isme/toko-checkout/internal/money"
	"github.com/noah-isme/toko-checkout/internal/obs"
	"github.com/noah-isme/toko-checkout/internal/payment"
	"github.com/noah-isme/toko-checkout/internal/user"
)

type fixture struct {
	m    *memdb.DB
	svc  *checkout.Service
	user gen.User
	mug  gen.Product
	sent []gen.DomainEvent
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{m: memdb.New()}
	f.user = f.m.SeedUser("Ana", "ana@example.com")
	f.mug = f.m.SeedProduct("Mug", "10.00")
	var mu sync.Mutex
	bus := &events.Bus{Notifiers: []events.Notifier{events.NotifierFunc(func(_ context.Context, ev gen.DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		f.sent = append(f.sent, ev)
		return nil
	})}}
	f.svc = &checkout.Service{Store: f.m, Bus: bus, Currency: "USD"}
	return f
}

func (f *fixture) fill(t *testing.T, items ...cart.Item) {
	t.Helper()
	_, err := (&cart.Service{Store: f.m}).Replace(context.Background(), f.user.ID, items)
	require.NoError(t, err)
}

func inlineRequest(t *testing.T, subtotal string, items ...checkout.Item) checkout.Request {
	return checkout.Request{
		Items:    items,
		Subtotal: amount(t, subtotal),
		Currency: "usd",
		Shipping: &checkout.ShippingInput{
			FullName:   " Ana Lima ",
			Email:      "Ana@Example.COM",
			Address:    "1 Main St",
			City:       "Lisbon",
			PostalCode: "1000-001",
			Country:    "PT",
		},
		Payment: &payment.Input{
			Method:     "Card",
			CardNumber: "4242 4242 4242 4242",
			CardExpiry: "12/30",
			CardCvc:    "123",
		},
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := common.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	f := newFixture(t)
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 2})

	res, err := f.svc.Checkout(context.Background(), f.user.ID,
		inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2}))
	require.NoError(t, err)
	require.Equal(t, "accepted", res.Status)
	require.Equal(t, "Order placed successfully.", res.Message)

	orders := f.m.Orders()
	require.Len(t, orders, 1)
	o := orders[0]
	require.Equal(t, "ORD-"+itoa(o.ID), res.OrderID)
	require.Equal(t, "20.00", money.Format(o.Subtotal))
	require.Equal(t, "USD", o.Currency)
	require.Equal(t, "Ana Lima", o.ShippingFullName)
	require.Equal(t, "ana@example.com", o.ShippingEmail)
	require.Equal(t, gen.PaymentMethodKindCard, o.PaymentMethod)
	require.Equal(t, "4242", o.PaymentCardLast4.String)
	require.Equal(t, "12/30", o.PaymentCardExpiry.String)
	require.False(t, o.PaymentPaypalEmail.Valid)

	items := f.m.OrderItems()
	require.Len(t, items, 1)
	require.Equal(t, o.ID, items[0].OrderID)
	require.Equal(t, int32(2), items[0].Quantity)
	require.Equal(t, "10.00", money.Format(items[0].UnitPrice))
	require.Equal(t, "20.00", money.Format(items[0].LineTotal))
	require.Equal(t, "Mug", items[0].ProductName)

	require.Empty(t, f.m.CartLines(f.user.ID))

	evs := f.m.Events()
	require.Len(t, evs, 1)
	require.Equal(t, events.TopicOrderAccepted, evs[0].Topic)
	require.Equal(t, res.OrderID, evs[0].AggregateID)
	require.JSONEq(t, `{"orderId":"`+res.OrderID+`","userId":"`+common.UUIDString(f.user.ID)+`","email":"ana@example.com","subtotal":"20.00","currency":"USD","itemCount":1}`, string(evs[0].Payload))
	require.Len(t, f.sent, 1)
	require.Equal(t, evs[0].ID, f.sent[0].ID)

	// no saved records unless asked
	require.NoError(t, f.m.Read(context.Background(), func(q gen.Querier) error {
		addrs, err := q.ListAddressesByUser(context.Background(), f.user.ID)
		require.NoError(t, err)
		require.Empty(t, addrs)
		return nil
	}))
}

func TestCheckoutRejectionsWriteNothing(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T, f *fixture) checkout.Request
		code  string
	}{
		{
			name: "duplicate items wrapping to the cart quantity",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				return inlineRequest(t, "20.00",
					checkout.Item{ProductID: f.mug.ID, Quantity: math.MaxInt32},
					checkout.Item{ProductID: f.mug.ID, Quantity: math.MaxInt32},
					checkout.Item{ProductID: f.mug.ID, Quantity: 4},
				)
			},
			code: cart.CodeInvalidQuantity,
		},
		{
			name: "subtotal mismatch",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				return inlineRequest(t, "20.01", checkout.Item{ProductID: f.mug.ID, Quantity: 2})
			},
			code: checkout.CodeSubtotalMismatch,
		},
		{
			name: "quantity changed",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				return inlineRequest(t, "30.00", checkout.Item{ProductID: f.mug.ID, Quantity: 3})
			},
			code: checkout.CodeCartChanged,
		},
		{
			name: "price changed since render",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				f.m.SetPrice(f.mug.ID, "10.50")
				return inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2})
			},
			code: checkout.CodeSubtotalMismatch,
		},
		{
			name: "product removed from catalog",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				f.m.DeleteProduct(f.mug.ID)
				return inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2})
			},
			code: checkout.CodeEmptyCart,
		},
		{
			name: "unsupported currency",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				req := inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2})
				req.Currency = "EUR"
				return req
			},
			code: checkout.CodeUnsupportedCurrency,
		},
		{
			name: "unsupported payment method",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				req := inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2})
				req.Payment = &payment.Input{Method: "bitcoin"}
				return req
			},
			code: payment.CodeUnsupportedMethod,
		},
		{
			name: "card without cvc",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				req := inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2})
				req.Payment.CardCvc = ""
				req.SaveShippingAddress = true
				return req
			},
			code: "VALIDATION_ERROR",
		},
		{
			name: "missing shipping",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				req := inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2})
				req.Shipping = nil
				return req
			},
			code: "VALIDATION_ERROR",
		},
		{
			name: "unknown saved address",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				req := inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2})
				id := int64(999)
				req.SavedAddressID = &id
				return req
			},
			code: checkout.CodeSavedRecordNotFound,
		},
		{
			name: "disabled user",
			setup: func(t *testing.T, f *fixture) checkout.Request {
				f.m.DisableUser(f.user.ID)
				return inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2})
			},
			code: auth.CodeUserNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 2})
			req := tc.setup(t, f)

			_, err := f.svc.Checkout(context.Background(), f.user.ID, req)
			requireCode(t, err, tc.code)

			require.Empty(t, f.m.Orders())
			require.Empty(t, f.m.OrderItems())
			require.Empty(t, f.m.Events())
			require.Empty(t, f.sent)
			require.Equal(t, map[int64]int32{f.mug.ID: 2}, f.m.CartLines(f.user.ID))
		})
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Checkout(context.Background(), f.user.ID, inlineRequest(t, "0.00"))
	requireCode(t, err, checkout.CodeEmptyCart)
	appErr, _ := common.AsAppError(err)
	require.Equal(t, "Your cart is empty", appErr.Message)
}

func TestCheckoutUnknownUser(t *testing.T) {
	f := newFixture(t)
	stranger := pgtype.UUID{Bytes: [16]byte{9}, Valid: true}
	_, err := f.svc.Checkout(context.Background(), stranger, inlineRequest(t, "0.00"))
	requireCode(t, err, auth.CodeUserNotFound)
}

func TestCheckoutFailureAfterOrderInsertRollsBack(t *testing.T) {
	f := newFixture(t)
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 2})
	f.m.FailOn("DeleteCartItemsByUser", errors.New("connection reset"))

	_, err := f.svc.Checkout(context.Background(), f.user.ID,
		inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2}))
	require.Error(t, err)
	require.False(t, common.IsAppError(err))

	require.Empty(t, f.m.Orders())
	require.Empty(t, f.m.OrderItems())
	require.Empty(t, f.m.Events())
	require.Equal(t, map[int64]int32{f.mug.ID: 2}, f.m.CartLines(f.user.ID))

	f.m.FailOn("DeleteCartItemsByUser", nil)
	_, err = f.svc.Checkout(context.Background(), f.user.ID,
		inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2}))
	require.NoError(t, err)
	require.Len(t, f.m.Orders(), 1)
}

func TestCheckoutUsesSavedRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	profile := &user.Service{Store: f.m}
	addr, err := profile.CreateAddress(ctx, f.user.ID, user.AddressInput{
		Label: "Home", FullName: "Ana Lima", Email: "ana@example.com", Address: "1 Main St",
		City: "Lisbon", PostalCode: "1000-001", Country: "PT",
	})
	require.NoError(t, err)
	pm, err := profile.CreatePaymentMethod(ctx, f.user.ID, user.PaymentMethodInput{
		Label: "Personal", Method: "paypal", PaypalEmail: "ana@paypal.test",
	})
	require.NoError(t, err)
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 1})

	req := checkout.Request{
		Items:                []checkout.Item{{ProductID: f.mug.ID, Quantity: 1}},
		Subtotal:             amount(t, "10"),
		Currency:             "USD",
		SavedAddressID:       &addr.ID,
		SavedPaymentMethodID: &pm.ID,
		SaveShippingAddress:  true,
		SavePaymentMethod:    true,
	}
	_, err = f.svc.Checkout(ctx, f.user.ID, req)
	require.NoError(t, err)

	o := f.m.Orders()[0]
	require.Equal(t, "1 Main St", o.ShippingAddress)
	require.Equal(t, gen.PaymentMethodKindPaypal, o.PaymentMethod)
	require.Equal(t, "ana@paypal.test", o.PaymentPaypalEmail.String)
	require.False(t, o.PaymentCardLast4.Valid)

	// saved references are never duplicated
	addrs, err := profile.ListAddresses(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	methods, err := profile.ListPaymentMethods(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, methods, 1)
}

func TestCheckoutSavedRecordOfAnotherOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	other := f.m.SeedUser("Bo", "bo@example.com")
	pm, err := (&user.Service{Store: f.m}).CreatePaymentMethod(ctx, other.ID, user.PaymentMethodInput{
		Label: "Bo card", Method: "card", CardLast4: "1111", CardExpiry: "01/29",
	})
	require.NoError(t, err)
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 1})

	req := inlineRequest(t, "10.00", checkout.Item{ProductID: f.mug.ID, Quantity: 1})
	req.Payment = nil
	req.SavedPaymentMethodID = &pm.ID
	_, err = f.svc.Checkout(ctx, f.user.ID, req)
	requireCode(t, err, checkout.CodeSavedRecordNotFound)
	appErr, _ := common.AsAppError(err)
	require.Equal(t, "Saved payment method not found", appErr.Message)
	require.Empty(t, f.m.Orders())
}

func TestCheckoutSavesInlineRecordsOnRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 1})

	req := inlineRequest(t, "10.00", checkout.Item{ProductID: f.mug.ID, Quantity: 1})
	req.SaveShippingAddress = true
	req.SavePaymentMethod = true
	req.PaymentMethodLabel = "  Travel card "
	_, err := f.svc.Checkout(ctx, f.user.ID, req)
	require.NoError(t, err)

	profile := &user.Service{Store: f.m}
	addrs, err := profile.ListAddresses(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	require.Equal(t, "Saved address", addrs[0].Label)
	require.Equal(t, "ana@example.com", addrs[0].Email)
	require.True(t, addrs[0].IsDefault)

	methods, err := profile.ListPaymentMethods(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	require.Equal(t, "Travel card", methods[0].Label)
	require.Equal(t, "card", methods[0].Method)
	require.Equal(t, "4242", methods[0].CardLast4)
	require.True(t, methods[0].IsDefault)
}

func TestCheckoutDispatchFailureIsNotSurfaced(t *testing.T) {
	f := newFixture(t)
	f.svc.Bus = &events.Bus{Notifiers: []events.Notifier{events.NotifierFunc(func(context.Context, gen.DomainEvent) error {
		return errors.New("queue down")
	})}}
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 2})

	res, err := f.svc.Checkout(context.Background(), f.user.ID,
		inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2}))
	require.NoError(t, err)
	require.Equal(t, "accepted", res.Status)
	require.Len(t, f.m.Events(), 1)
}

func newLocker(t *testing.T, wait time.Duration) (lock.Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return lock.Locker{R: client, RetryBackoff: 5 * time.Millisecond, Wait: wait}, mr
}

func TestCheckoutLockHeldElsewhere(t *testing.T) {
	f := newFixture(t)
	locker, mr := newLocker(t, 30*time.Millisecond)
	metrics := newMetrics()
	f.svc.Locker = locker
	f.svc.Metrics = metrics
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 2})
	require.NoError(t, mr.Set(checkout.LockKey(f.user.ID), "someone-else"))

	_, err := f.svc.Checkout(context.Background(), f.user.ID,
		inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2}))
	requireCode(t, err, checkout.CodeCheckoutInProgress)
	appErr, _ := common.AsAppError(err)
	require.Equal(t, 409, appErr.HTTPStatus)
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.CheckoutLockContends))
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.CheckoutTotal.WithLabelValues(checkout.CodeCheckoutInProgress)))
	require.Equal(t, map[int64]int32{f.mug.ID: 2}, f.m.CartLines(f.user.ID))
}

func TestConcurrentDoubleCheckoutPlacesOneOrder(t *testing.T) {
	f := newFixture(t)
	locker, mr := newLocker(t, 2*time.Second)
	metrics := newMetrics()
	f.svc.Locker = locker
	f.svc.Metrics = metrics
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 2})
	req := inlineRequest(t, "20.00", checkout.Item{ProductID: f.mug.ID, Quantity: 2})

	const attempts = 4
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = f.svc.Checkout(context.Background(), f.user.ID, req)
		}()
	}
	close(start)
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
			continue
		}
		requireCode(t, err, checkout.CodeEmptyCart)
	}
	require.Equal(t, 1, accepted)
	require.Len(t, f.m.Orders(), 1)
	require.Len(t, f.m.OrderItems(), 1)
	require.Empty(t, f.m.CartLines(f.user.ID))
	require.False(t, mr.Exists(checkout.LockKey(f.user.ID)))
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.CheckoutTotal.WithLabelValues("accepted")))
}

func newMetrics() *obs.DomainMetrics {
	return obs.NewDomainMetrics("test", prometheus.NewRegistry())
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
