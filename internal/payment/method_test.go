package payment

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

func TestNormalizeCardKeepsOnlyLastFour(t *testing.T) {
	m, err := Normalize(Input{Method: " Card ", CardNumber: "4111 1111 1111 1234", CardExpiry: "12/29", CardCvc: "123"})
	require.NoError(t, err)
	card, ok := m.(Card)
	require.True(t, ok)
	require.Equal(t, "1234", card.Last4)
	require.Equal(t, "12/29", card.Expiry)

	cols := ToColumns(m)
	require.Equal(t, gen.PaymentMethodKindCard, cols.Kind)
	require.Equal(t, "1234", cols.CardLast4.String)
	require.False(t, cols.PaypalEmail.Valid)
}

func TestNormalizeCardSnapshotNeverLeaksNumber(t *testing.T) {
	numbers := []string{"4111111111111", "4111-1111-1111-1111", "6011000990139424123"}
	for _, n := range numbers {
		m, err := Normalize(Input{Method: "card", CardNumber: n, CardExpiry: "01/30", CardCvc: "9999"})
		require.NoError(t, err, n)
		cols := ToColumns(m)
		require.Len(t, cols.CardLast4.String, 4)
		digits := strings.ReplaceAll(n, "-", "")
		require.Equal(t, digits[len(digits)-4:], cols.CardLast4.String)
	}
}

func TestNormalizeCardErrors(t *testing.T) {
	base := Input{Method: "card", CardNumber: "4111111111111111", CardExpiry: "12/29", CardCvc: "123"}
	cases := map[string]func(*Input){
		"cardNumber is required for card payments": func(in *Input) { in.CardNumber = " " },
		"cardNumber must be 13 to 19 digits":       func(in *Input) { in.CardNumber = "4111" },
		"cardExpiry is required for card payments": func(in *Input) { in.CardExpiry = "" },
		"cardExpiry must be in MM/YY format":       func(in *Input) { in.CardExpiry = "13/29" },
		"cardCvc is required for card payments":    func(in *Input) { in.CardCvc = "" },
		"cardCvc must be 3 or 4 digits":            func(in *Input) { in.CardCvc = "12" },
	}
	for msg, mutate := range cases {
		in := base
		mutate(&in)
		_, err := Normalize(in)
		appErr, ok := common.AsAppError(err)
		require.True(t, ok, msg)
		require.Equal(t, CodeMissingField, appErr.Code)
		require.Equal(t, msg, appErr.Message)
		require.True(t, errors.Is(err, ErrMissingField))
	}
}

func TestNormalizePayPal(t *testing.T) {
	m, err := Normalize(Input{Method: "paypal", PaypalEmail: "  Buyer@Example.COM "})
	require.NoError(t, err)
	require.Equal(t, PayPal{Email: "buyer@example.com"}, m)
	require.Equal(t, "PayPal", m.DefaultLabel())

	_, err = Normalize(Input{Method: "paypal"})
	require.True(t, common.HasCode(err, CodeMissingField))
}

func TestParseKind(t *testing.T) {
	_, err := ParseKind("bitcoin")
	appErr, ok := common.AsAppError(err)
	require.True(t, ok)
	require.Equal(t, CodeUnsupportedMethod, appErr.Code)
	require.Equal(t, "Unsupported payment method: bitcoin", appErr.Message)
	require.ErrorIs(t, err, ErrUnsupportedMethod)

	_, err = ParseKind("")
	require.True(t, common.HasCode(err, CodeMissingField))
}

func TestFromSavedInput(t *testing.T) {
	m, err := FromSavedInput(SavedInput{Method: "card", CardLast4: "4242", CardExpiry: "08/27"})
	require.NoError(t, err)
	require.Equal(t, Card{Last4: "4242", Expiry: "08/27"}, m)

	_, err = FromSavedInput(SavedInput{Method: "card", CardExpiry: "08/27"})
	appErr, _ := common.AsAppError(err)
	require.Equal(t, "cardLast4 is required for card payment methods", appErr.Message)

	_, err = FromSavedInput(SavedInput{Method: "paypal"})
	appErr, _ = common.AsAppError(err)
	require.Equal(t, "paypalEmail is required for paypal payment methods", appErr.Message)
}

func TestColumnsRoundTrip(t *testing.T) {
	for _, m := range []Method{Card{Last4: "0005", Expiry: "02/28"}, PayPal{Email: "a@b.co"}} {
		back, err := FromColumns(ToColumns(m))
		require.NoError(t, err)
		require.Equal(t, m, back)
	}
	_, err := FromColumns(Columns{Kind: gen.PaymentMethodKindCard})
	require.Error(t, err)
}
