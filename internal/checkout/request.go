package checkout

import (
	"github.com/noah-isme/toko-checkout/internal/money"
	"github.com/noah-isme/toko-checkout/internal/payment"
)

// Item is the client's view of one cart line. UnitPrice is informational.
type Item struct {
	ProductID int64         `json:"productId"`
	Quantity  int32         `json:"quantity"`
	UnitPrice *money.Amount `json:"unitPrice,omitempty"`
}

// ShippingInput is an inline shipping address.
type ShippingInput struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// Request is the checkout payload. Shipping and payment each come either
// inline or as a reference to a saved record.
type Request struct {
	Items                []Item         `json:"items"`
	Subtotal             money.Amount   `json:"subtotal"`
	Currency             string         `json:"currency"`
	Shipping             *ShippingInput `json:"shipping,omitempty"`
	SavedAddressID       *int64         `json:"savedAddressId,omitempty"`
	Payment              *payment.Input `json:"payment,omitempty"`
	SavedPaymentMethodID *int64         `json:"savedPaymentMethodId,omitempty"`
	SaveShippingAddress  bool           `json:"saveShippingAddress"`
	ShippingAddressLabel string         `json:"shippingAddressLabel,omitempty"`
	SavePaymentMethod    bool           `json:"savePaymentMethod"`
	PaymentMethodLabel   string         `json:"paymentMethodLabel,omitempty"`
}

// Result is returned for an accepted checkout.
type Result struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
