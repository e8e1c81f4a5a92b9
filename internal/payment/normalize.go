package payment

import (
	"strings"
)

// Input is inline payment data submitted with a checkout.
type Input struct {
	Method      string `json:"method" validate:"required"`
	CardNumber  string `json:"cardNumber,omitempty"`
	CardExpiry  string `json:"cardExpiry,omitempty"`
	CardCvc     string `json:"cardCvc,omitempty"`
	PaypalEmail string `json:"paypalEmail,omitempty"`
}

// Normalize validates inline payment data and keeps only what may be stored.
// The card number is reduced to its last four digits and the CVC is dropped.
func Normalize(in Input) (Method, error) {
	kind, err := ParseKind(in.Method)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindCard:
		number := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(in.CardNumber))
		if number == "" {
			return nil, missing("cardNumber is required for card payments")
		}
		if !isDigits(number) || len(number) < 13 || len(number) > 19 {
			return nil, missing("cardNumber must be 13 to 19 digits")
		}
		expiry := strings.TrimSpace(in.CardExpiry)
		if expiry == "" {
			return nil, missing("cardExpiry is required for card payments")
		}
		if !validExpiry(expiry) {
			return nil, missing("cardExpiry must be in MM/YY format")
		}
		cvc := strings.TrimSpace(in.CardCvc)
		if cvc == "" {
			return nil, missing("cardCvc is required for card payments")
		}
		if !isDigits(cvc) || len(cvc) < 3 || len(cvc) > 4 {
			return nil, missing("cardCvc must be 3 or 4 digits")
		}
		return Card{Last4: number[len(number)-4:], Expiry: expiry}, nil
	default:
		if strings.TrimSpace(in.PaypalEmail) == "" {
			return nil, missing("paypalEmail is required for paypal payments")
		}
		email, ok := normalizeEmail(in.PaypalEmail)
		if !ok {
			return nil, missing("paypalEmail must be a valid email address")
		}
		return PayPal{Email: email}, nil
	}
}

// SavedInput is the payload of a payment method saved from the profile. It
// only ever carries already-masked card data.
type SavedInput struct {
	Method      string `json:"method" validate:"required"`
	CardLast4   string `json:"cardLast4,omitempty"`
	CardExpiry  string `json:"cardExpiry,omitempty"`
	PaypalEmail string `json:"paypalEmail,omitempty"`
}

// FromSavedInput validates profile payment data.
func FromSavedInput(in SavedInput) (Method, error) {
	kind, err := ParseKind(in.Method)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindCard:
		last4 := strings.TrimSpace(in.CardLast4)
		if last4 == "" {
			return nil, missing("cardLast4 is required for card payment methods")
		}
		if len(last4) != 4 || !isDigits(last4) {
			return nil, missing("cardLast4 must be 4 digits")
		}
		expiry := strings.TrimSpace(in.CardExpiry)
		if expiry == "" {
			return nil, missing("cardExpiry is required for card payment methods")
		}
		if !validExpiry(expiry) {
			return nil, missing("cardExpiry must be in MM/YY format")
		}
		return Card{Last4: last4, Expiry: expiry}, nil
	default:
		if strings.TrimSpace(in.PaypalEmail) == "" {
			return nil, missing("paypalEmail is required for paypal payment methods")
		}
		email, ok := normalizeEmail(in.PaypalEmail)
		if !ok {
			return nil, missing("paypalEmail must be a valid email address")
		}
		return PayPal{Email: email}, nil
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// validExpiry accepts MM/YY with a month between 01 and 12.
func validExpiry(s string) bool {
	if len(s) != 5 || s[2] != '/' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return false
	}
	month := int(s[0]-'0')*10 + int(s[1]-'0')
	return month >= 1 && month <= 12
}
