// Package money implements fixed two-decimal currency arithmetic.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for every amount.
const Scale = 2

// Round2 rounds half away from zero at two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// LineTotal returns Round2(Round2(unit) * qty).
func LineTotal(unit decimal.Decimal, qty int32) decimal.Decimal {
	return Round2(Round2(unit).Mul(decimal.NewFromInt32(qty)))
}

// Sum adds the amounts and rounds the result.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Round2(total)
}

// Equal compares two amounts after rounding both.
func Equal(a, b decimal.Decimal) bool {
	return Round2(a).Equal(Round2(b))
}

// Parse reads a decimal amount such as "19.99".
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// Format renders the amount with exactly two decimals.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// Amount marshals to JSON as a number with exactly two decimals.
type Amount decimal.Decimal

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d)
}

// Decimal returns the wrapped value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).StringFixed(Scale)), nil
}

// UnmarshalJSON accepts JSON numbers and quoted decimal strings.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = Amount(d)
	return nil
}
