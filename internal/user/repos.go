package user

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/defaults"
)

// AddressRepo adapts user_addresses to defaults.Repository.
type AddressRepo struct {
	Q gen.Querier
}

var _ defaults.Repository[gen.UserAddress] = AddressRepo{}

// Addresses returns the default-flag manager for saved addresses on q.
func Addresses(q gen.Querier) *defaults.Manager[gen.UserAddress] {
	return defaults.New[gen.UserAddress](AddressRepo{Q: q})
}

func (r AddressRepo) List(ctx context.Context, owner pgtype.UUID) ([]gen.UserAddress, error) {
	return r.Q.ListAddressesByUser(ctx, owner)
}

func (r AddressRepo) Get(ctx context.Context, owner pgtype.UUID, id int64) (gen.UserAddress, error) {
	row, err := r.Q.GetAddressByIDAndUser(ctx, gen.GetAddressByIDAndUserParams{ID: id, UserID: owner})
	if db.IsNotFound(err) {
		return gen.UserAddress{}, defaults.ErrNotFound
	}
	return row, err
}

func (r AddressRepo) Insert(ctx context.Context, owner pgtype.UUID, a gen.UserAddress, isDefault bool) (gen.UserAddress, error) {
	return r.Q.CreateAddress(ctx, gen.CreateAddressParams{
		UserID:     owner,
		Label:      a.Label,
		FullName:   a.FullName,
		Email:      a.Email,
		Address:    a.Address,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		IsDefault:  isDefault,
	})
}

func (r AddressRepo) ClearDefaults(ctx context.Context, owner pgtype.UUID) error {
	return r.Q.ClearDefaultAddresses(ctx, owner)
}

func (r AddressRepo) MarkDefault(ctx context.Context, owner pgtype.UUID, id int64) (gen.UserAddress, error) {
	row, err := r.Q.MarkAddressDefault(ctx, gen.MarkAddressDefaultParams{ID: id, UserID: owner})
	if db.IsNotFound(err) {
		return gen.UserAddress{}, defaults.ErrNotFound
	}
	return row, err
}

func (r AddressRepo) Delete(ctx context.Context, owner pgtype.UUID, id int64) error {
	return r.Q.DeleteAddress(ctx, gen.DeleteAddressParams{ID: id, UserID: owner})
}

func (AddressRepo) ID(a gen.UserAddress) int64           { return a.ID }
func (AddressRepo) IsDefault(a gen.UserAddress) bool     { return a.IsDefault }
func (AddressRepo) CreatedAt(a gen.UserAddress) time.Time { return a.CreatedAt.Time }

// PaymentMethodRepo adapts user_payment_methods to defaults.Repository.
type PaymentMethodRepo struct {
	Q gen.Querier
}

var _ defaults.Repository[gen.UserPaymentMethod] = PaymentMethodRepo{}

// PaymentMethods returns the default-flag manager for saved payment methods on q.
func PaymentMethods(q gen.Querier) *defaults.Manager[gen.UserPaymentMethod] {
	return defaults.New[gen.UserPaymentMethod](PaymentMethodRepo{Q: q})
}

func (r PaymentMethodRepo) List(ctx context.Context, owner pgtype.UUID) ([]gen.UserPaymentMethod, error) {
	return r.Q.ListPaymentMethodsByUser(ctx, owner)
}

func (r PaymentMethodRepo) Get(ctx context.Context, owner pgtype.UUID, id int64) (gen.UserPaymentMethod, error) {
	row, err := r.Q.GetPaymentMethodByIDAndUser(ctx, gen.GetPaymentMethodByIDAndUserParams{ID: id, UserID: owner})
	if db.IsNotFound(err) {
		return gen.UserPaymentMethod{}, defaults.ErrNotFound
	}
	return row, err
}

func (r PaymentMethodRepo) Insert(ctx context.Context, owner pgtype.UUID, p gen.UserPaymentMethod, isDefault bool) (gen.UserPaymentMethod, error) {
	return r.Q.CreatePaymentMethod(ctx, gen.CreatePaymentMethodParams{
		UserID:      owner,
		Label:       p.Label,
		Method:      p.Method,
		CardLast4:   p.CardLast4,
		CardExpiry:  p.CardExpiry,
		PaypalEmail: p.PaypalEmail,
		IsDefault:   isDefault,
	})
}

func (r PaymentMethodRepo) ClearDefaults(ctx context.Context, owner pgtype.UUID) error {
	return r.Q.ClearDefaultPaymentMethods(ctx, owner)
}

func (r PaymentMethodRepo) MarkDefault(ctx context.Context, owner pgtype.UUID, id int64) (gen.UserPaymentMethod, error) {
	row, err := r.Q.MarkPaymentMethodDefault(ctx, gen.MarkPaymentMethodDefaultParams{ID: id, UserID: owner})
	if db.IsNotFound(err) {
		return gen.UserPaymentMethod{}, defaults.ErrNotFound
	}
	return row, err
}

func (r PaymentMethodRepo) Delete(ctx context.Context, owner pgtype.UUID, id int64) error {
	return r.Q.DeletePaymentMethod(ctx, gen.DeletePaymentMethodParams{ID: id, UserID: owner})
}

func (PaymentMethodRepo) ID(p gen.UserPaymentMethod) int64           { return p.ID }
func (PaymentMethodRepo) IsDefault(p gen.UserPaymentMethod) bool     { return p.IsDefault }
func (PaymentMethodRepo) CreatedAt(p gen.UserPaymentMethod) time.Time { return p.CreatedAt.Time }
