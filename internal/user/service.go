// Package user manages the owner's saved addresses and payment methods.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-checkout/internal/auth"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/defaults"
	"github.com/noah-isme/toko-checkout/internal/payment"
)

const (
	CodeAddressNotFound       = "ADDRESS_NOT_FOUND"
	CodePaymentMethodNotFound = "PAYMENT_METHOD_NOT_FOUND"
)

// Address is a saved address as returned to clients.
type Address struct {
	ID         int64     `json:"id"`
	Label      string    `json:"label"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AddressInput is the payload for saving an address.
type AddressInput struct {
	Label      string `json:"label" validate:"required"`
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	IsDefault  bool   `json:"isDefault"`
}

// Normalize trims every field and lower-cases the email.
func (in AddressInput) Normalize() AddressInput {
	return AddressInput{
		Label:      strings.TrimSpace(in.Label),
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Address:    strings.TrimSpace(in.Address),
		City:       strings.TrimSpace(in.City),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Country:    strings.TrimSpace(in.Country),
		IsDefault:  in.IsDefault,
	}
}

// Record converts the input to a row for insertion.
func (in AddressInput) Record() gen.UserAddress {
	return gen.UserAddress{
		Label:      in.Label,
		FullName:   in.FullName,
		Email:      in.Email,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
}

// PaymentMethod is a saved payment method as returned to clients. Only the
// fields of its method are set.
type PaymentMethod struct {
	ID          int64     `json:"id"`
	Label       string    `json:"label"`
	Method      string    `json:"method"`
	CardLast4   string    `json:"cardLast4,omitempty"`
	CardExpiry  string    `json:"cardExpiry,omitempty"`
	PaypalEmail string    `json:"paypalEmail,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PaymentMethodInput is the payload for saving a payment method.
type PaymentMethodInput struct {
	Label       string `json:"label"`
	Method      string `json:"method"`
	CardLast4   string `json:"cardLast4,omitempty"`
	CardExpiry  string `json:"cardExpiry,omitempty"`
	PaypalEmail string `json:"paypalEmail,omitempty"`
	IsDefault   bool   `json:"isDefault"`
}

// Service implements the profile operations.
type Service struct {
	Store  db.Store
	Logger zerolog.Logger
}

// ErrAddressNotFound reports a missing or foreign address.
func ErrAddressNotFound() *common.AppError {
	return common.NotFound(CodeAddressNotFound, "Address not found")
}

// ErrPaymentMethodNotFound reports a missing or foreign payment method.
func ErrPaymentMethodNotFound() *common.AppError {
	return common.NotFound(CodePaymentMethodNotFound, "Payment method not found")
}

// ListAddresses returns the owner's addresses, newest first.
func (s *Service) ListAddresses(ctx context.Context, owner pgtype.UUID) ([]Address, error) {
	var out []Address
	err := s.read(ctx, owner, func(q gen.Querier) error {
		rows, err := q.ListAddressesByUser(ctx, owner)
		if err != nil {
			return fmt.Errorf("list addresses: %w", err)
		}
		out = make([]Address, 0, len(rows))
		for _, row := range rows {
			out = append(out, ToAddress(row))
		}
		return nil
	})
	return out, err
}

// CreateAddress saves an address. The owner's first address is always default.
func (s *Service) CreateAddress(ctx context.Context, owner pgtype.UUID, in AddressInput) (Address, error) {
	in = in.Normalize()
	if err := common.Validate(in); err != nil {
		return Address{}, err
	}
	var out Address
	err := s.write(ctx, owner, func(q gen.Querier) error {
		row, err := Addresses(q).OnInsert(ctx, owner, in.Record(), in.IsDefault)
		if err != nil {
			return fmt.Errorf("create address: %w", err)
		}
		out = ToAddress(row)
		return nil
	})
	return out, err
}

// SetDefaultAddress makes id the owner's default address.
func (s *Service) SetDefaultAddress(ctx context.Context, owner pgtype.UUID, id int64) (Address, error) {
	var out Address
	err := s.write(ctx, owner, func(q gen.Querier) error {
		row, err := Addresses(q).SetDefault(ctx, owner, id)
		if err != nil {
			return addressErr(err)
		}
		out = ToAddress(row)
		return nil
	})
	return out, err
}

// DeleteAddress removes id, promoting the newest remaining address when the
// default was deleted.
func (s *Service) DeleteAddress(ctx context.Context, owner pgtype.UUID, id int64) error {
	return s.write(ctx, owner, func(q gen.Querier) error {
		promoted, err := Addresses(q).OnDelete(ctx, owner, id)
		if err != nil {
			return addressErr(err)
		}
		if promoted != nil {
			s.Logger.Debug().Int64("address_id", promoted.ID).Msg("default address promoted")
		}
		return nil
	})
}

// ListPaymentMethods returns the owner's payment methods, newest first.
func (s *Service) ListPaymentMethods(ctx context.Context, owner pgtype.UUID) ([]PaymentMethod, error) {
	var out []PaymentMethod
	err := s.read(ctx, owner, func(q gen.Querier) error {
		rows, err := q.ListPaymentMethodsByUser(ctx, owner)
		if err != nil {
			return fmt.Errorf("list payment methods: %w", err)
		}
		out = make([]PaymentMethod, 0, len(rows))
		for _, row := range rows {
			out = append(out, ToPaymentMethod(row))
		}
		return nil
	})
	return out, err
}

// CreatePaymentMethod saves already-masked payment metadata.
func (s *Service) CreatePaymentMethod(ctx context.Context, owner pgtype.UUID, in PaymentMethodInput) (PaymentMethod, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return PaymentMethod{}, common.BadRequest("VALIDATION_ERROR", "label is required")
	}
	method, err := payment.FromSavedInput(payment.SavedInput{
		Method:      in.Method,
		CardLast4:   in.CardLast4,
		CardExpiry:  in.CardExpiry,
		PaypalEmail: in.PaypalEmail,
	})
	if err != nil {
		return PaymentMethod{}, err
	}
	var out PaymentMethod
	err = s.write(ctx, owner, func(q gen.Querier) error {
		row, err := PaymentMethods(q).OnInsert(ctx, owner, PaymentRecord(label, method), in.IsDefault)
		if err != nil {
			return fmt.Errorf("create payment method: %w", err)
		}
		out = ToPaymentMethod(row)
		return nil
	})
	return out, err
}

// SetDefaultPaymentMethod makes id the owner's default payment method.
func (s *Service) SetDefaultPaymentMethod(ctx context.Context, owner pgtype.UUID, id int64) (PaymentMethod, error) {
	var out PaymentMethod
	err := s.write(ctx, owner, func(q gen.Querier) error {
		row, err := PaymentMethods(q).SetDefault(ctx, owner, id)
		if err != nil {
			return paymentErr(err)
		}
		out = ToPaymentMethod(row)
		return nil
	})
	return out, err
}

// DeletePaymentMethod removes id, promoting the newest remaining method when
// the default was deleted.
func (s *Service) DeletePaymentMethod(ctx context.Context, owner pgtype.UUID, id int64) error {
	return s.write(ctx, owner, func(q gen.Querier) error {
		promoted, err := PaymentMethods(q).OnDelete(ctx, owner, id)
		if err != nil {
			return paymentErr(err)
		}
		if promoted != nil {
			s.Logger.Debug().Int64("payment_method_id", promoted.ID).Msg("default payment method promoted")
		}
		return nil
	})
}

// PaymentRecord builds the row stored for method under label.
func PaymentRecord(label string, method payment.Method) gen.UserPaymentMethod {
	cols := payment.ToColumns(method)
	return gen.UserPaymentMethod{
		Label:       label,
		Method:      cols.Kind,
		CardLast4:   cols.CardLast4,
		CardExpiry:  cols.CardExpiry,
		PaypalEmail: cols.PaypalEmail,
	}
}

// ToAddress converts a row into its API form.
func ToAddress(row gen.UserAddress) Address {
	return Address{
		ID:         row.ID,
		Label:      row.Label,
		FullName:   row.FullName,
		Email:      row.Email,
		Address:    row.Address,
		City:       row.City,
		PostalCode: row.PostalCode,
		Country:    row.Country,
		IsDefault:  row.IsDefault,
		CreatedAt:  common.Time(row.CreatedAt),
	}
}

// ToPaymentMethod converts a row into its API form.
func ToPaymentMethod(row gen.UserPaymentMethod) PaymentMethod {
	return PaymentMethod{
		ID:          row.ID,
		Label:       row.Label,
		Method:      string(row.Method),
		CardLast4:   common.TextValue(row.CardLast4),
		CardExpiry:  common.TextValue(row.CardExpiry),
		PaypalEmail: common.TextValue(row.PaypalEmail),
		IsDefault:   row.IsDefault,
		CreatedAt:   common.Time(row.CreatedAt),
	}
}

func (s *Service) read(ctx context.Context, owner pgtype.UUID, fn func(q gen.Querier) error) error {
	if s == nil || s.Store == nil {
		return errors.New("user service not configured")
	}
	return s.Store.Read(ctx, func(q gen.Querier) error {
		if _, err := auth.ActiveUser(ctx, q, owner); err != nil {
			return err
		}
		return fn(q)
	})
}

func (s *Service) write(ctx context.Context, owner pgtype.UUID, fn func(q gen.Querier) error) error {
	if s == nil || s.Store == nil {
		return errors.New("user service not configured")
	}
	return s.Store.InTx(ctx, func(q gen.Querier) error {
		if _, err := auth.LockActiveUser(ctx, q, owner); err != nil {
			return err
		}
		return fn(q)
	})
}

func addressErr(err error) error {
	if errors.Is(err, defaults.ErrNotFound) {
		return ErrAddressNotFound()
	}
	return fmt.Errorf("address: %w", err)
}

func paymentErr(err error) error {
	if errors.Is(err, defaults.ErrNotFound) {
		return ErrPaymentMethodNotFound()
	}
	return fmt.Errorf("payment method: %w", err)
}
