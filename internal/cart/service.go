// Package cart stores the per-owner set of (product, quantity) lines.
package cart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-checkout/internal/auth"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/money"
	"github.com/noah-isme/toko-checkout/internal/obs"
)

const (
	CodeInvalidQuantity = "INVALID_QUANTITY"
	CodeUnknownProduct  = "UNKNOWN_PRODUCT"
)

// Item is one requested cart line.
type Item struct {
	ProductID int64 `json:"productId"`
	Quantity  int32 `json:"quantity"`
}

// ProductView is the live catalog data shown next to a cart line.
type ProductView struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Price      money.Amount `json:"price"`
	CategoryID *int64       `json:"categoryId"`
}

// LineView is one cart line priced at the current catalog price.
type LineView struct {
	ID        int64        `json:"id"`
	ProductID int64        `json:"productId"`
	Quantity  int32        `json:"quantity"`
	Product   ProductView  `json:"product"`
	LineTotal money.Amount `json:"lineTotal"`
}

// View is the cart as returned to clients.
type View struct {
	Items     []LineView   `json:"items"`
	ItemCount int64        `json:"itemCount"`
	Subtotal  money.Amount `json:"subtotal"`
	Currency  string       `json:"currency"`
}

// Service implements cart reads and writes.
type Service struct {
	Store    db.Store
	Metrics  *obs.DomainMetrics
	Logger   zerolog.Logger
	Currency string
}

// MaxQuantity is the largest quantity one cart line may hold, summed
// duplicates included. It is the range of the quantity column.
const MaxQuantity = math.MaxInt32

// ErrInvalidQuantity reports a requested line below one unit.
func ErrInvalidQuantity() *common.AppError {
	return common.BadRequest(CodeInvalidQuantity, "quantity must be at least 1")
}

// ErrQuantityTooLarge reports a line whose summed quantity exceeds MaxQuantity.
func ErrQuantityTooLarge() *common.AppError {
	return common.BadRequest(CodeInvalidQuantity, "quantity must be at most "+strconv.Itoa(MaxQuantity))
}

// ErrUnknownProduct reports a product id absent from the catalog.
func ErrUnknownProduct(id int64) *common.AppError {
	return common.BadRequest(CodeUnknownProduct, "Unknown product id: "+strconv.FormatInt(id, 10))
}

// View returns the owner's cart joined with live product data.
func (s *Service) View(ctx context.Context, owner pgtype.UUID) (View, error) {
	if s == nil || s.Store == nil {
		return View{}, errors.New("cart service not configured")
	}
	var view View
	err := s.Store.Read(ctx, func(q gen.Querier) error {
		if _, err := auth.ActiveUser(ctx, q, owner); err != nil {
			return err
		}
		rows, err := q.ListCartItemsByUser(ctx, owner)
		if err != nil {
			return fmt.Errorf("list cart: %w", err)
		}
		view = s.buildView(rows)
		return nil
	})
	return view, err
}

// Replace swaps the owner's cart for items. Duplicate product ids are summed.
// On error the previous cart is left untouched.
func (s *Service) Replace(ctx context.Context, owner pgtype.UUID, items []Item) (View, error) {
	normalized, err := Normalize(items)
	if err != nil {
		s.observe("replace", err)
		return View{}, err
	}
	view, err := s.write(ctx, owner, func(ctx context.Context, q gen.Querier) ([]Item, error) {
		return normalized, nil
	})
	s.observe("replace", err)
	return view, err
}

// Merge adds items to the owner's cart, summing quantities per product.
func (s *Service) Merge(ctx context.Context, owner pgtype.UUID, items []Item) (View, error) {
	normalized, err := Normalize(items)
	if err != nil {
		s.observe("merge", err)
		return View{}, err
	}
	view, err := s.write(ctx, owner, func(ctx context.Context, q gen.Querier) ([]Item, error) {
		rows, err := q.ListCartItemsByUser(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("list cart: %w", err)
		}
		current := make([]Item, 0, len(rows)+len(normalized))
		for _, row := range rows {
			current = append(current, Item{ProductID: row.ProductID, Quantity: row.Quantity})
		}
		return Normalize(append(current, normalized...))
	})
	s.observe("merge", err)
	return view, err
}

// Clear removes every line of the owner's cart.
func (s *Service) Clear(ctx context.Context, owner pgtype.UUID) error {
	if s == nil || s.Store == nil {
		return errors.New("cart service not configured")
	}
	err := s.Store.InTx(ctx, func(q gen.Querier) error {
		if _, err := auth.LockActiveUser(ctx, q, owner); err != nil {
			return err
		}
		return ClearLines(ctx, q, owner)
	})
	s.observe("clear", err)
	return err
}

// ClearLines deletes the owner's cart rows using q.
func ClearLines(ctx context.Context, q gen.Querier, owner pgtype.UUID) error {
	if err := q.DeleteCartItemsByUser(ctx, owner); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// write locks the owner, computes the target lines and replaces the stored
// set in one transaction.
func (s *Service) write(ctx context.Context, owner pgtype.UUID, target func(context.Context, gen.Querier) ([]Item, error)) (View, error) {
	if s == nil || s.Store == nil {
		return View{}, errors.New("cart service not configured")
	}
	var view View
	err := s.Store.InTx(ctx, func(q gen.Querier) error {
		if _, err := auth.LockActiveUser(ctx, q, owner); err != nil {
			return err
		}
		items, err := target(ctx, q)
		if err != nil {
			return err
		}
		if err := ensureProducts(ctx, q, items); err != nil {
			return err
		}
		if err := ClearLines(ctx, q, owner); err != nil {
			return err
		}
		for _, it := range items {
			if _, err := q.InsertCartItem(ctx, gen.InsertCartItemParams{
				UserID:    owner,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			}); err != nil {
				return fmt.Errorf("insert cart item %d: %w", it.ProductID, err)
			}
		}
		rows, err := q.ListCartItemsByUser(ctx, owner)
		if err != nil {
			return fmt.Errorf("list cart: %w", err)
		}
		view = s.buildView(rows)
		return nil
	})
	return view, err
}

// Normalize rejects lines below one unit and sums duplicate product ids,
// keeping the order in which products first appear. A sum above
// MaxQuantity is rejected rather than wrapped.
func Normalize(items []Item) ([]Item, error) {
	out := make([]Item, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, ErrInvalidQuantity()
		}
		i, ok := index[it.ProductID]
		if !ok {
			index[it.ProductID] = len(out)
			out = append(out, it)
			continue
		}
		sum, err := AddQuantity(out[i].Quantity, it.Quantity)
		if err != nil {
			return nil, err
		}
		out[i].Quantity = sum
	}
	return out, nil
}

// AddQuantity adds two line quantities, failing with ErrQuantityTooLarge
// when the result leaves the int32 range.
func AddQuantity(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum > MaxQuantity {
		return 0, ErrQuantityTooLarge()
	}
	return int32(sum), nil
}

func ensureProducts(ctx context.Context, q gen.Querier, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := q.GetProductsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	known := make(map[int64]struct{}, len(products))
	for _, p := range products {
		known[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return ErrUnknownProduct(id)
		}
	}
	return nil
}

func (s *Service) buildView(rows []gen.ListCartItemsByUserRow) View {
	view := View{Items: make([]LineView, 0, len(rows)), Currency: s.currency()}
	totals := make([]decimal.Decimal, 0, len(rows))
	for _, row := range rows {
		lineTotal := money.LineTotal(row.ProductPrice, row.Quantity)
		totals = append(totals, lineTotal)
		view.ItemCount += int64(row.Quantity)
		view.Items = append(view.Items, LineView{
			ID:        row.ID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			Product: ProductView{
				ID:         row.ProductID,
				Name:       row.ProductName,
				Price:      money.NewAmount(money.Round2(row.ProductPrice)),
				CategoryID: common.Int8Ptr(row.ProductCategoryID),
			},
			LineTotal: money.NewAmount(lineTotal),
		})
	}
	view.Subtotal = money.NewAmount(money.Sum(totals...))
	return view
}

func (s *Service) currency() string {
	if c := strings.TrimSpace(s.Currency); c != "" {
		return strings.ToUpper(c)
	}
	return "USD"
}

func (s *Service) observe(op string, err error) {
	if s == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
		if appErr, ok := common.AsAppError(err); ok && appErr.HTTPStatus < http.StatusInternalServerError {
			result = appErr.Code
		}
		s.Logger.Warn().Err(err).Str("op", op).Msg("cart mutation failed")
	}
	s.Metrics.ObserveCartMutation(op, result)
}
