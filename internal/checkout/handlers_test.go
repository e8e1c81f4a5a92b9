package checkout_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/cart"
	"github.com/noah-isme/toko-checkout/internal/checkout"
	"github.com/noah-isme/toko-checkout/internal/common"
)

func postCheckout(t *testing.T, h *checkout.Handler, owner, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	if owner != "" {
		req = req.WithContext(common.WithUserID(req.Context(), owner))
	}
	rr := httptest.NewRecorder()
	h.Checkout(rr, req)
	return rr
}

func TestHandlerCheckoutAccepted(t *testing.T) {
	f := newFixture(t)
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 2})
	h := &checkout.Handler{Svc: f.svc}

	body := `{
		"items": [{"productId": ` + strconv.FormatInt(f.mug.ID, 10) + `, "quantity": 2, "unitPrice": 10}],
		"subtotal": 20.00,
		"currency": "USD",
		"shipping": {"fullName": "Ana", "email": "ana@example.com", "address": "1 Main St",
			"city": "Lisbon", "postalCode": "1000", "country": "PT"},
		"payment": {"method": "paypal", "paypalEmail": "Ana@PayPal.test"}
	}`
	rr := postCheckout(t, h, common.UUIDString(f.user.ID), body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		Data checkout.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "accepted", resp.Data.Status)
	require.True(t, strings.HasPrefix(resp.Data.OrderID, "ORD-"))
	require.Equal(t, "ana@paypal.test", f.m.Orders()[0].PaymentPaypalEmail.String)
}

func TestHandlerCheckoutErrors(t *testing.T) {
	f := newFixture(t)
	f.fill(t, cart.Item{ProductID: f.mug.ID, Quantity: 2})
	h := &checkout.Handler{Svc: f.svc}
	owner := common.UUIDString(f.user.ID)

	rr := postCheckout(t, h, "", `{}`)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = postCheckout(t, h, owner, `{"items":`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), `"BAD_REQUEST"`)

	body := `{"items":[{"productId":` + strconv.FormatInt(f.mug.ID, 10) + `,"quantity":2}],"subtotal":"20.01","currency":"USD",
		"shipping":{"fullName":"Ana","email":"ana@example.com","address":"1","city":"c","postalCode":"p","country":"PT"},
		"payment":{"method":"paypal","paypalEmail":"ana@paypal.test"}}`
	rr = postCheckout(t, h, owner, body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, checkout.CodeSubtotalMismatch, resp.Error.Code)
	require.Equal(t, "Subtotal mismatch. Refresh and try checkout again.", resp.Error.Message)

	body = strings.Replace(body, `"fullName":"Ana"`, `"fullName":"  "`, 1)
	body = strings.Replace(body, `"20.01"`, `"20.00"`, 1)
	rr = postCheckout(t, h, owner, body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "shipping.fullName is required")
}
