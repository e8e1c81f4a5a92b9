package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/noah-isme/toko-checkout/internal/cart"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/money"
)

const (
	CodeEmptyCart           = "EMPTY_CART"
	CodeUnsupportedCurrency = "UNSUPPORTED_CURRENCY"
	CodeCartChanged         = "CART_CHANGED"
	CodeSubtotalMismatch    = "SUBTOTAL_MISMATCH"
	CodeSavedRecordNotFound = "SAVED_RECORD_NOT_FOUND"
	CodeCheckoutInProgress  = "CHECKOUT_IN_PROGRESS"
)

func errEmptyCart() *common.AppError {
	return common.BadRequest(CodeEmptyCart, "Your cart is empty")
}

func errCartChanged() *common.AppError {
	return common.BadRequest(CodeCartChanged, "Cart changed. Refresh and try checkout again.")
}

func errSubtotalMismatch() *common.AppError {
	return common.BadRequest(CodeSubtotalMismatch, "Subtotal mismatch. Refresh and try checkout again.")
}

// Line is one authoritative cart line priced from the catalog.
type Line struct {
	ProductID   int64
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int32
}

// LinesFromCart converts the joined cart rows.
func LinesFromCart(rows []gen.ListCartItemsByUserRow) []Line {
	out := make([]Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, Line{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitPrice:   row.ProductPrice,
			Quantity:    row.Quantity,
		})
	}
	return out
}

// Subtotal prices lines as round2(sum(round2(unit) * qty)).
func Subtotal(lines []Line) decimal.Decimal {
	totals := make([]decimal.Decimal, 0, len(lines))
	for _, l := range lines {
		totals = append(totals, money.LineTotal(l.UnitPrice, l.Quantity))
	}
	return money.Sum(totals...)
}

// Validate checks the client's view of the cart against the authoritative
// lines: currency first, then the product set and quantities, then the
// subtotal recomputed from current prices. It returns that subtotal.
func Validate(lines []Line, req Request, currency string) (decimal.Decimal, error) {
	if !strings.EqualFold(strings.TrimSpace(req.Currency), strings.TrimSpace(currency)) {
		return decimal.Zero, common.BadRequest(CodeUnsupportedCurrency, "Unsupported currency: "+strings.TrimSpace(req.Currency))
	}

	server := make(map[int64]int32, len(lines))
	for _, l := range lines {
		server[l.ProductID] = l.Quantity
	}
	client := make(map[int64]int32, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return decimal.Zero, cart.ErrInvalidQuantity()
		}
		sum, err := cart.AddQuantity(client[it.ProductID], it.Quantity)
		if err != nil {
			return decimal.Zero, err
		}
		client[it.ProductID] = sum
	}
	if len(server) != len(client) {
		return decimal.Zero, errCartChanged()
	}
	for id, qty := range server {
		if got, ok := client[id]; !ok || got != qty {
			return decimal.Zero, errCartChanged()
		}
	}

	subtotal := Subtotal(lines)
	if !money.Equal(subtotal, req.Subtotal.Decimal()) {
		return decimal.Zero, errSubtotalMismatch()
	}
	return subtotal, nil
}
