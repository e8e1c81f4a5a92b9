// Package order serves the order history of the authenticated owner.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/toko-checkout/internal/auth"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/money"
)

const CodeOrderNotFound = "ORDER_NOT_FOUND"

// Line is an order line as sold.
type Line struct {
	ProductID   int64        `json:"productId"`
	ProductName string       `json:"productName"`
	UnitPrice   money.Amount `json:"unitPrice"`
	Quantity    int32        `json:"quantity"`
	LineTotal   money.Amount `json:"lineTotal"`
}

// Shipping is the address snapshot taken at checkout.
type Shipping struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Payment is the stored payment metadata of an order.
type Payment struct {
	Method      string `json:"method"`
	CardLast4   string `json:"cardLast4,omitempty"`
	CardExpiry  string `json:"cardExpiry,omitempty"`
	PaypalEmail string `json:"paypalEmail,omitempty"`
}

// View is an order as returned to its owner.
type View struct {
	ID        string       `json:"id"`
	Status    string       `json:"status"`
	Currency  string       `json:"currency"`
	Subtotal  money.Amount `json:"subtotal"`
	Shipping  Shipping     `json:"shipping"`
	Payment   Payment      `json:"payment"`
	Items     []Line       `json:"items"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Service reads orders.
type Service struct {
	Store db.Store
}

// ErrOrderNotFound reports an order that does not exist for the owner.
func ErrOrderNotFound() *common.AppError {
	return common.NotFound(CodeOrderNotFound, "Order not found")
}

// List returns the owner's orders newest first, each with its lines.
func (s *Service) List(ctx context.Context, owner pgtype.UUID) ([]View, error) {
	if s == nil || s.Store == nil {
		return nil, errors.New("order service not configured")
	}
	var out []View
	err := s.Store.Read(ctx, func(q gen.Querier) error {
		if _, err := auth.ActiveUser(ctx, q, owner); err != nil {
			return err
		}
		orders, err := q.ListOrdersByUser(ctx, owner)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		out, err = withLines(ctx, q, orders)
		return err
	})
	return out, err
}

// Get returns one order by its external id. Orders of other owners and
// malformed ids are reported as not found.
func (s *Service) Get(ctx context.Context, owner pgtype.UUID, externalID string) (View, error) {
	if s == nil || s.Store == nil {
		return View{}, errors.New("order service not configured")
	}
	id, ok := ParseExternalID(externalID)
	if !ok {
		return View{}, ErrOrderNotFound()
	}
	var out View
	err := s.Store.Read(ctx, func(q gen.Querier) error {
		if _, err := auth.ActiveUser(ctx, q, owner); err != nil {
			return err
		}
		o, err := q.GetOrderByIDAndUser(ctx, gen.GetOrderByIDAndUserParams{ID: id, UserID: owner})
		if db.IsNotFound(err) {
			return ErrOrderNotFound()
		}
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		views, err := withLines(ctx, q, []gen.Order{o})
		if err != nil {
			return err
		}
		out = views[0]
		return nil
	})
	return out, err
}

func withLines(ctx context.Context, q gen.Querier, orders []gen.Order) ([]View, error) {
	out := make([]View, 0, len(orders))
	if len(orders) == 0 {
		return out, nil
	}
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	items, err := q.ListOrderItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	byOrder := make(map[int64][]Line, len(orders))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], Line{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   money.NewAmount(it.UnitPrice),
			Quantity:    it.Quantity,
			LineTotal:   money.NewAmount(it.LineTotal),
		})
	}
	for _, o := range orders {
		lines := byOrder[o.ID]
		if lines == nil {
			lines = []Line{}
		}
		out = append(out, toView(o, lines))
	}
	return out, nil
}

func toView(o gen.Order, lines []Line) View {
	return View{
		ID:       ExternalID(o.ID),
		Status:   o.Status,
		Currency: o.Currency,
		Subtotal: money.NewAmount(o.Subtotal),
		Shipping: Shipping{
			FullName:   o.ShippingFullName,
			Email:      o.ShippingEmail,
			Address:    o.ShippingAddress,
			City:       o.ShippingCity,
			PostalCode: o.ShippingPostalCode,
			Country:    o.ShippingCountry,
		},
		Payment: Payment{
			Method:      string(o.PaymentMethod),
			CardLast4:   common.TextValue(o.PaymentCardLast4),
			CardExpiry:  common.TextValue(o.PaymentCardExpiry),
			PaypalEmail: common.TextValue(o.PaymentPaypalEmail),
		},
		Items:     lines,
		CreatedAt: common.Time(o.CreatedAt),
	}
}
