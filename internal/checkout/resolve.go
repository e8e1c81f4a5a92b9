package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/defaults"
	"github.com/noah-isme/toko-checkout/internal/payment"
	"github.com/noah-isme/toko-checkout/internal/user"
)

const defaultAddressLabel = "Saved address"

// Shipping is the address snapshot written onto an order.
type Shipping struct {
	FullName   string
	Email      string
	Address    string
	City       string
	PostalCode string
	Country    string
}

// Resolved holds the shipping and payment snapshots for one checkout.
type Resolved struct {
	Shipping Shipping
	Payment  payment.Method
}

// Resolver turns the shipping and payment parts of a request into order
// snapshots, reading saved records through Q.
type Resolver struct {
	Q gen.Querier
}

// Resolve looks up saved records or normalizes inline data. When the request
// asks to keep inline data it is saved through the default-flag rules, which
// is the only write Resolve performs.
func (r Resolver) Resolve(ctx context.Context, owner pgtype.UUID, req Request) (Resolved, error) {
	if r.Q == nil {
		return Resolved{}, errors.New("checkout resolver not configured")
	}
	shipping, saveAddress, err := r.shipping(ctx, owner, req)
	if err != nil {
		return Resolved{}, err
	}
	method, savePayment, err := r.payment(ctx, owner, req)
	if err != nil {
		return Resolved{}, err
	}

	if saveAddress {
		record := gen.UserAddress{
			Label:      labelOr(req.ShippingAddressLabel, defaultAddressLabel),
			FullName:   shipping.FullName,
			Email:      shipping.Email,
			Address:    shipping.Address,
			City:       shipping.City,
			PostalCode: shipping.PostalCode,
			Country:    shipping.Country,
		}
		if _, err := user.Addresses(r.Q).OnInsert(ctx, owner, record, false); err != nil {
			return Resolved{}, err
		}
	}
	if savePayment {
		record := user.PaymentRecord(labelOr(req.PaymentMethodLabel, method.DefaultLabel()), method)
		if _, err := user.PaymentMethods(r.Q).OnInsert(ctx, owner, record, false); err != nil {
			return Resolved{}, err
		}
	}
	return Resolved{Shipping: shipping, Payment: method}, nil
}

func (r Resolver) shipping(ctx context.Context, owner pgtype.UUID, req Request) (Shipping, bool, error) {
	if req.SavedAddressID != nil {
		row, err := user.AddressRepo{Q: r.Q}.Get(ctx, owner, *req.SavedAddressID)
		if errors.Is(err, defaults.ErrNotFound) {
			return Shipping{}, false, common.BadRequest(CodeSavedRecordNotFound, "Saved address not found")
		}
		if err != nil {
			return Shipping{}, false, err
		}
		return Shipping{
			FullName:   row.FullName,
			Email:      row.Email,
			Address:    row.Address,
			City:       row.City,
			PostalCode: row.PostalCode,
			Country:    row.Country,
		}, false, nil
	}
	if req.Shipping == nil {
		return Shipping{}, false, common.BadRequest("VALIDATION_ERROR", "shipping is required")
	}
	in := normalizeShipping(*req.Shipping)
	if err := common.Validate(struct {
		Shipping ShippingInput `json:"shipping"`
	}{in}); err != nil {
		return Shipping{}, false, err
	}
	return Shipping(in), req.SaveShippingAddress, nil
}

func (r Resolver) payment(ctx context.Context, owner pgtype.UUID, req Request) (payment.Method, bool, error) {
	if req.SavedPaymentMethodID != nil {
		row, err := user.PaymentMethodRepo{Q: r.Q}.Get(ctx, owner, *req.SavedPaymentMethodID)
		if errors.Is(err, defaults.ErrNotFound) {
			return nil, false, common.BadRequest(CodeSavedRecordNotFound, "Saved payment method not found")
		}
		if err != nil {
			return nil, false, err
		}
		method, err := payment.FromRecord(row)
		if err != nil {
			return nil, false, err
		}
		return method, false, nil
	}
	if req.Payment == nil {
		return nil, false, common.BadRequest("VALIDATION_ERROR", "payment is required")
	}
	method, err := payment.Normalize(*req.Payment)
	if err != nil {
		return nil, false, err
	}
	return method, req.SavePaymentMethod, nil
}

func normalizeShipping(in ShippingInput) ShippingInput {
	return ShippingInput{
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Address:    strings.TrimSpace(in.Address),
		City:       strings.TrimSpace(in.City),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
	}
}

func labelOr(label, fallback string) string {
	if l := strings.TrimSpace(label); l != "" {
		return l
	}
	return fallback
}
