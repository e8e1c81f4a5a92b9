// Package checkout turns an owner's cart into an accepted order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-checkout/internal/auth"
	"github.com/noah-isme/toko-checkout/internal/cart"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/events"
	"github.com/noah-isme/toko-checkout/internal/lock"
	"github.com/noah-isme/toko-checkout/internal/money"
	"github.com/noah-isme/toko-checkout/internal/obs"
	"github.com/noah-isme/toko-checkout/internal/order"
	"github.com/noah-isme/toko-checkout/internal/payment"
)

const (
	// StatusAccepted is the status of every order placed by Checkout.
	StatusAccepted  = "accepted"
	acceptedMessage = "Order placed successfully."
	defaultLockTTL  = 10 * time.Second
)

// Locker scopes fn to a named mutual exclusion. lock.Locker implements it.
type Locker interface {
	WithLock(ctx context.Context, key string, ttl time.Duration, fn func(context.Context) error) error
}

// Service places orders. Locker may be nil, in which case concurrent
// checkouts for one owner are serialized by the owner row lock alone.
type Service struct {
	Store    db.Store
	Locker   Locker
	Bus      *events.Bus
	Metrics  *obs.DomainMetrics
	Logger   zerolog.Logger
	Currency string
	LockTTL  time.Duration
}

// LockKey is the Redis key guarding checkouts of owner.
func LockKey(owner pgtype.UUID) string {
	return "checkout:lock:" + common.UUIDString(owner)
}

// ErrCheckoutInProgress is returned while another checkout of the same owner runs.
func ErrCheckoutInProgress() *common.AppError {
	return common.Conflict(CodeCheckoutInProgress, "Another checkout is already in progress")
}

type placed struct {
	order gen.Order
	lines int
	event gen.DomainEvent
}

// Checkout validates req against the owner's cart, persists the order with
// its lines, records an order.accepted event and empties the cart, all in one
// transaction. Nothing is written when any check fails.
func (s *Service) Checkout(ctx context.Context, owner pgtype.UUID, req Request) (Result, error) {
	if s == nil || s.Store == nil {
		return Result{}, errors.New("checkout service not configured")
	}
	start := time.Now()

	var out placed
	run := func(ctx context.Context) error {
		var err error
		out, err = s.place(ctx, owner, req)
		return err
	}
	var err error
	if s.Locker != nil {
		err = s.Locker.WithLock(ctx, LockKey(owner), s.lockTTL(), run)
		if errors.Is(err, lock.ErrNotAcquired) {
			s.Metrics.LockContended()
			err = ErrCheckoutInProgress()
		}
	} else {
		err = run(ctx)
	}

	s.Metrics.ObserveCheckout(resultLabel(err), time.Since(start))
	if err != nil {
		s.logRejected(err, owner)
		return Result{}, err
	}

	orderID := order.ExternalID(out.order.ID)
	s.Logger.Info().
		Str("order_id", orderID).
		Str("user_id", common.UUIDString(owner)).
		Str("subtotal", money.Format(out.order.Subtotal)).
		Str("currency", out.order.Currency).
		Int("lines", out.lines).
		Msg("checkout accepted")

	if err := s.Bus.Dispatch(context.WithoutCancel(ctx), out.event); err != nil {
		s.Logger.Error().Err(err).Str("order_id", orderID).Msg("dispatch order event failed")
	}
	return Result{OrderID: orderID, Status: StatusAccepted, Message: acceptedMessage}, nil
}

func (s *Service) place(ctx context.Context, owner pgtype.UUID, req Request) (placed, error) {
	var out placed
	err := s.Store.InTx(ctx, func(q gen.Querier) error {
		u, err := auth.LockActiveUser(ctx, q, owner)
		if err != nil {
			return err
		}
		rows, err := q.ListCartItemsByUser(ctx, owner)
		if err != nil {
			return fmt.Errorf("list cart: %w", err)
		}
		if len(rows) == 0 {
			return errEmptyCart()
		}
		lines := LinesFromCart(rows)
		subtotal, err := Validate(lines, req, s.currency())
		if err != nil {
			return err
		}
		resolved, err := Resolver{Q: q}.Resolve(ctx, owner, req)
		if err != nil {
			return err
		}

		pay := payment.ToColumns(resolved.Payment)
		o, err := q.CreateOrder(ctx, gen.CreateOrderParams{
			UserID:             owner,
			Status:             StatusAccepted,
			Currency:           s.currency(),
			Subtotal:           subtotal,
			ShippingFullName:   resolved.Shipping.FullName,
			ShippingEmail:      resolved.Shipping.Email,
			ShippingAddress:    resolved.Shipping.Address,
			ShippingCity:       resolved.Shipping.City,
			ShippingPostalCode: resolved.Shipping.PostalCode,
			ShippingCountry:    resolved.Shipping.Country,
			PaymentMethod:      pay.Kind,
			PaymentCardLast4:   pay.CardLast4,
			PaymentCardExpiry:  pay.CardExpiry,
			PaymentPaypalEmail: pay.PaypalEmail,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		for _, l := range lines {
			unit := money.Round2(l.UnitPrice)
			if _, err := q.CreateOrderItem(ctx, gen.CreateOrderItemParams{
				OrderID:     o.ID,
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				UnitPrice:   unit,
				Quantity:    l.Quantity,
				LineTotal:   money.LineTotal(l.UnitPrice, l.Quantity),
			}); err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
		}

		orderID := order.ExternalID(o.ID)
		ev, err := s.Bus.Emit(ctx, q, events.TopicOrderAccepted, orderID, events.OrderAccepted{
			OrderID:   orderID,
			UserID:    common.UUIDString(owner),
			Email:     u.Email,
			Subtotal:  money.Format(subtotal),
			Currency:  o.Currency,
			ItemCount: len(lines),
		})
		if err != nil {
			return err
		}
		if err := cart.ClearLines(ctx, q, owner); err != nil {
			return err
		}
		out = placed{order: o, lines: len(lines), event: ev}
		return nil
	})
	return out, err
}

func (s *Service) currency() string {
	if c := strings.ToUpper(strings.TrimSpace(s.Currency)); c != "" {
		return c
	}
	return "USD"
}

func (s *Service) lockTTL() time.Duration {
	if s.LockTTL > 0 {
		return s.LockTTL
	}
	return defaultLockTTL
}

func (s *Service) logRejected(err error, owner pgtype.UUID) {
	appErr, ok := common.AsAppError(err)
	if !ok {
		s.Logger.Error().Err(err).Str("user_id", common.UUIDString(owner)).Msg("checkout failed")
		return
	}
	s.Logger.Warn().
		Str("code", appErr.Code).
		Str("user_id", common.UUIDString(owner)).
		Str("reason", appErr.Message).
		Msg("checkout rejected")
}

func resultLabel(err error) string {
	if err == nil {
		return StatusAccepted
	}
	if appErr, ok := common.AsAppError(err); ok {
		return appErr.Code
	}
	return "error"
}
