package security_test

import (
	"crypto/tls"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/security"
)

func okHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(status) })
}

func TestBodyLimit(t *testing.T) {
	var captured string
	h := security.BodyLimit{Max: 10}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured = string(data)
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/payload", strings.NewReader("hello")))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "hello", captured)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/payload", strings.NewReader("far too excessive")))
	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	require.Contains(t, rr.Body.String(), "PAYLOAD_TOO_LARGE")

	req := httptest.NewRequest(http.MethodPost, "/payload", strings.NewReader("content"))
	req.ContentLength = 100
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestCSRF(t *testing.T) {
	h := security.CSRF{SessionCookie: "access_token"}.Middleware(okHandler(http.StatusNoContent))
	session := &http.Cookie{Name: "access_token", Value: "jwt"}

	tests := []struct {
		name  string
		build func(*http.Request)
		want  int
	}{
		{"no session cookie", func(*http.Request) {}, http.StatusNoContent},
		{"bearer", func(r *http.Request) {
			r.AddCookie(session)
			r.Header.Set("Authorization", "Bearer abc.def")
		}, http.StatusNoContent},
		{"cookie without token", func(r *http.Request) { r.AddCookie(session) }, http.StatusForbidden},
		{"mismatched token", func(r *http.Request) {
			r.AddCookie(session)
			r.AddCookie(&http.Cookie{Name: "X-CSRF-Token", Value: "a"})
			r.Header.Set("X-CSRF-Token", "b")
		}, http.StatusForbidden},
		{"matching token", func(r *http.Request) {
			r.AddCookie(session)
			r.AddCookie(&http.Cookie{Name: "X-CSRF-Token", Value: "secure-token"})
			r.Header.Set("X-CSRF-Token", "secure-token")
		}, http.StatusNoContent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
			tc.build(req)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			require.Equal(t, tc.want, rr.Code)
		})
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(session)
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHeaders(t *testing.T) {
	h := security.Headers{EnableHSTS: true, HSTSIncludeSubdomains: true}.Middleware(okHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	req.TLS = &tls.ConnectionState{}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "max-age=31536000; includeSubDomains", rr.Header().Get("Strict-Transport-Security"))

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://example.com", nil))
	require.Empty(t, rr.Header().Get("Strict-Transport-Security"))
}

func TestCORS(t *testing.T) {
	h := security.CORS([]string{"https://shop.example"})(okHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/checkout", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, "https://shop.example", rr.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
