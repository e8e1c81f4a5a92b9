package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db/memdb"
	"github.com/noah-isme/toko-checkout/internal/user"
)

func address(label string, isDefault bool) user.AddressInput {
	return user.AddressInput{
		Label:      label,
		FullName:   "Ana Lima",
		Email:      " Ana@Example.com ",
		Address:    "1 Main St",
		City:       "Lisbon",
		PostalCode: "1000-001",
		Country:    "PT",
		IsDefault:  isDefault,
	}
}

func newService() (*user.Service, *memdb.DB, pgtype.UUID) {
	m := memdb.New()
	u := m.SeedUser("Ana", "ana@example.com")
	return &user.Service{Store: m}, m, u.ID
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	svc, _, owner := newService()
	ctx := context.Background()

	first, err := svc.CreateAddress(ctx, owner, address("Home", false))
	require.NoError(t, err)
	require.True(t, first.IsDefault)
	require.Equal(t, "ana@example.com", first.Email)

	second, err := svc.CreateAddress(ctx, owner, address("Office", false))
	require.NoError(t, err)
	require.False(t, second.IsDefault)
}

func TestRequestedDefaultFlipsPrevious(t *testing.T) {
	svc, _, owner := newService()
	ctx := context.Background()

	first, err := svc.CreateAddress(ctx, owner, address("Home", false))
	require.NoError(t, err)
	second, err := svc.CreateAddress(ctx, owner, address("Office", true))
	require.NoError(t, err)
	require.True(t, second.IsDefault)

	list, err := svc.ListAddresses(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	defaults := map[int64]bool{}
	for _, a := range list {
		defaults[a.ID] = a.IsDefault
	}
	require.Equal(t, map[int64]bool{first.ID: false, second.ID: true}, defaults)
}

func TestSetDefaultAddress(t *testing.T) {
	svc, _, owner := newService()
	ctx := context.Background()

	first, err := svc.CreateAddress(ctx, owner, address("Home", false))
	require.NoError(t, err)
	second, err := svc.CreateAddress(ctx, owner, address("Office", false))
	require.NoError(t, err)

	updated, err := svc.SetDefaultAddress(ctx, owner, second.ID)
	require.NoError(t, err)
	require.True(t, updated.IsDefault)

	list, err := svc.ListAddresses(ctx, owner)
	require.NoError(t, err)
	for _, a := range list {
		require.Equal(t, a.ID == second.ID, a.IsDefault, "address %d", a.ID)
	}
	require.NotEqual(t, first.ID, second.ID)
}

func TestDeleteDefaultPromotesMostRecent(t *testing.T) {
	svc, m, owner := newService()
	ctx := context.Background()
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m.Now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	home, err := svc.CreateAddress(ctx, owner, address("Home", false))
	require.NoError(t, err)
	office, err := svc.CreateAddress(ctx, owner, address("Office", false))
	require.NoError(t, err)
	cabin, err := svc.CreateAddress(ctx, owner, address("Cabin", false))
	require.NoError(t, err)
	require.True(t, home.IsDefault)

	require.NoError(t, svc.DeleteAddress(ctx, owner, home.ID))
	list, err := svc.ListAddresses(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, cabin.ID, list[0].ID)
	require.True(t, list[0].IsDefault)
	require.Equal(t, office.ID, list[1].ID)
	require.False(t, list[1].IsDefault)
}

func TestPromotionTieBreaksOnHighestID(t *testing.T) {
	svc, m, owner := newService()
	ctx := context.Background()
	frozen := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m.Now = func() time.Time { return frozen }

	first, err := svc.CreateAddress(ctx, owner, address("A", false))
	require.NoError(t, err)
	_, err = svc.CreateAddress(ctx, owner, address("B", false))
	require.NoError(t, err)
	third, err := svc.CreateAddress(ctx, owner, address("C", false))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAddress(ctx, owner, first.ID))
	list, err := svc.ListAddresses(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, third.ID, list[0].ID)
	require.True(t, list[0].IsDefault)
}

func TestDeleteLastAddressLeavesNone(t *testing.T) {
	svc, _, owner := newService()
	ctx := context.Background()

	only, err := svc.CreateAddress(ctx, owner, address("Home", false))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteAddress(ctx, owner, only.ID))

	list, err := svc.ListAddresses(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestForeignAddressIsNotFound(t *testing.T) {
	svc, m, owner := newService()
	ctx := context.Background()
	other := m.SeedUser("Bo", "bo@example.com")

	theirs, err := svc.CreateAddress(ctx, other.ID, address("Home", false))
	require.NoError(t, err)

	_, err = svc.SetDefaultAddress(ctx, owner, theirs.ID)
	require.True(t, common.HasCode(err, user.CodeAddressNotFound))
	err = svc.DeleteAddress(ctx, owner, theirs.ID)
	require.True(t, common.HasCode(err, user.CodeAddressNotFound))
	appErr, _ := common.AsAppError(err)
	require.Equal(t, "Address not found", appErr.Message)
}

func TestAddressValidation(t *testing.T) {
	svc, _, owner := newService()
	in := address("  ", false)
	_, err := svc.CreateAddress(context.Background(), owner, in)
	require.True(t, common.HasCode(err, "VALIDATION_ERROR"))
	appErr, _ := common.AsAppError(err)
	require.Equal(t, "label is required", appErr.Message)
}

func TestPaymentMethodsFollowDefaultRules(t *testing.T) {
	svc, _, owner := newService()
	ctx := context.Background()

	card, err := svc.CreatePaymentMethod(ctx, owner, user.PaymentMethodInput{Label: "Visa", Method: "card", CardLast4: "4242", CardExpiry: "12/30"})
	require.NoError(t, err)
	require.True(t, card.IsDefault)
	require.Equal(t, "card", card.Method)
	require.Empty(t, card.PaypalEmail)

	pp, err := svc.CreatePaymentMethod(ctx, owner, user.PaymentMethodInput{Label: "PP", Method: "PayPal", PaypalEmail: "Ana@Example.com", IsDefault: true})
	require.NoError(t, err)
	require.True(t, pp.IsDefault)
	require.Equal(t, "ana@example.com", pp.PaypalEmail)
	require.Empty(t, pp.CardLast4)

	require.NoError(t, svc.DeletePaymentMethod(ctx, owner, pp.ID))
	list, err := svc.ListPaymentMethods(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].IsDefault)

	_, err = svc.SetDefaultPaymentMethod(ctx, owner, pp.ID)
	require.True(t, common.HasCode(err, user.CodePaymentMethodNotFound))
}

func TestPaymentMethodValidationMessages(t *testing.T) {
	svc, _, owner := newService()
	ctx := context.Background()
	cases := []struct {
		in   user.PaymentMethodInput
		code string
		msg  string
	}{
		{user.PaymentMethodInput{Method: "card", CardLast4: "4242", CardExpiry: "12/30"}, "VALIDATION_ERROR", "label is required"},
		{user.PaymentMethodInput{Label: "x", Method: "card", CardExpiry: "12/30"}, "VALIDATION_ERROR", "cardLast4 is required for card payment methods"},
		{user.PaymentMethodInput{Label: "x", Method: "card", CardLast4: "4242"}, "VALIDATION_ERROR", "cardExpiry is required for card payment methods"},
		{user.PaymentMethodInput{Label: "x", Method: "paypal"}, "VALIDATION_ERROR", "paypalEmail is required for paypal payment methods"},
		{user.PaymentMethodInput{Label: "x", Method: "bitcoin"}, "UNSUPPORTED_PAYMENT_METHOD", "Unsupported payment method: bitcoin"},
	}
	for _, tc := range cases {
		_, err := svc.CreatePaymentMethod(ctx, owner, tc.in)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok, tc.msg)
		require.Equal(t, tc.code, appErr.Code)
		require.Equal(t, tc.msg, appErr.Message)
	}
	list, err := svc.ListPaymentMethods(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDisabledOwnerIsNotFound(t *testing.T) {
	svc, m, owner := newService()
	m.DisableUser(owner)
	_, err := svc.ListAddresses(context.Background(), owner)
	require.True(t, common.HasCode(err, "USER_NOT_FOUND"))
}
