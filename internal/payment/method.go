// Package payment normalizes payment details into the metadata that may be
// stored: a card is reduced to its last four digits and expiry, PayPal to the
// account email. Nothing here talks to a payment gateway.
package payment

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

// Kind names a supported payment method.
type Kind string

const (
	KindCard   Kind = "card"
	KindPayPal Kind = "paypal"
)

// Error codes reported to clients.
const (
	CodeUnsupportedMethod = "UNSUPPORTED_PAYMENT_METHOD"
	CodeMissingField      = "VALIDATION_ERROR"
)

var (
	// ErrUnsupportedMethod is wrapped by errors for unknown method names.
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	// ErrMissingField is wrapped by errors for absent or malformed method fields.
	ErrMissingField = errors.New("missing payment field")
)

// Method is normalized payment metadata. It is implemented only by Card
// and PayPal.
type Method interface {
	Kind() Kind
	DefaultLabel() string
	isMethod()
}

// Card holds the storable part of a card.
type Card struct {
	Last4  string
	Expiry string
}

// PayPal holds the PayPal account email.
type PayPal struct {
	Email string
}

func (Card) Kind() Kind           { return KindCard }
func (Card) DefaultLabel() string { return "Card" }
func (Card) isMethod()            {}

func (PayPal) Kind() Kind           { return KindPayPal }
func (PayPal) DefaultLabel() string { return "PayPal" }
func (PayPal) isMethod()            {}

// ParseKind maps a client supplied method name onto a Kind.
func ParseKind(raw string) (Kind, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch Kind(value) {
	case KindCard, KindPayPal:
		return Kind(value), nil
	case "":
		return "", missing("payment.method is required")
	default:
		return "", common.NewAppError(CodeUnsupportedMethod, "Unsupported payment method: "+strings.TrimSpace(raw), http.StatusBadRequest, ErrUnsupportedMethod)
	}
}

func missing(msg string) error {
	return common.NewAppError(CodeMissingField, msg, http.StatusBadRequest, ErrMissingField)
}

// Columns is the nullable column form of a Method.
type Columns struct {
	Kind        gen.PaymentMethodKind
	CardLast4   pgtype.Text
	CardExpiry  pgtype.Text
	PaypalEmail pgtype.Text
}

// ToColumns flattens m for storage.
func ToColumns(m Method) Columns {
	switch v := m.(type) {
	case Card:
		return Columns{Kind: gen.PaymentMethodKindCard, CardLast4: common.Text(v.Last4), CardExpiry: common.Text(v.Expiry)}
	case PayPal:
		return Columns{Kind: gen.PaymentMethodKindPaypal, PaypalEmail: common.Text(v.Email)}
	}
	return Columns{}
}

// FromColumns rebuilds a Method from stored columns.
func FromColumns(c Columns) (Method, error) {
	switch c.Kind {
	case gen.PaymentMethodKindCard:
		if !c.CardLast4.Valid || !c.CardExpiry.Valid {
			return nil, errors.New("stored card payment lacks last4 or expiry")
		}
		return Card{Last4: c.CardLast4.String, Expiry: c.CardExpiry.String}, nil
	case gen.PaymentMethodKindPaypal:
		if !c.PaypalEmail.Valid {
			return nil, errors.New("stored paypal payment lacks email")
		}
		return PayPal{Email: c.PaypalEmail.String}, nil
	}
	return nil, fmt.Errorf("stored payment method %q is unknown", c.Kind)
}

// FromRecord rebuilds the Method of a saved payment method row.
func FromRecord(row gen.UserPaymentMethod) (Method, error) {
	return FromColumns(Columns{Kind: row.Method, CardLast4: row.CardLast4, CardExpiry: row.CardExpiry, PaypalEmail: row.PaypalEmail})
}

func normalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return email, false
	}
	return email, true
}
