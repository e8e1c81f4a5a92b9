package obs_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/obs"
)

func TestHTTPMetricsUseRoutePattern(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := obs.NewHTTPMetrics("toko", []float64{0.1, 1}, registry)

	r := chi.NewRouter()
	r.Use(obs.HTTPObs{Metrics: metrics}.Middleware)
	r.Get("/api/v1/orders/{orderID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/orders/ORD-7", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	total := testutil.ToFloat64(metrics.Requests.WithLabelValues(http.MethodGet, "/api/v1/orders/{orderID}", "204"))
	require.Equal(t, float64(1), total)
	require.NotZero(t, testutil.CollectAndCount(metrics.Latency))
	require.Zero(t, testutil.ToFloat64(metrics.Active))
}

func TestNewHTTPMetricsReusesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := obs.NewHTTPMetrics("toko", nil, registry)
	second := obs.NewHTTPMetrics("toko", nil, registry)
	require.Same(t, first.Requests, second.Requests)
}

func TestDomainMetricsNilSafe(t *testing.T) {
	var m *obs.DomainMetrics
	require.NotPanics(t, func() {
		m.ObserveCheckout("accepted", time.Millisecond)
		m.LockContended()
		m.ObserveCartMutation("replace", "ok")
		m.ObserveConfirmation("enqueue", "ok")
	})
}

func TestDomainMetricsCounters(t *testing.T) {
	m := obs.NewDomainMetrics("toko", prometheus.NewRegistry())
	m.ObserveCheckout("accepted", 3*time.Millisecond)
	m.ObserveCheckout("SUBTOTAL_MISMATCH", time.Millisecond)
	m.LockContended()
	m.ObserveCartMutation("merge", "ok")

	require.Equal(t, float64(1), testutil.ToFloat64(m.CheckoutTotal.WithLabelValues("accepted")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.CheckoutTotal.WithLabelValues("SUBTOTAL_MISMATCH")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.CheckoutLockContends))
	require.Equal(t, float64(1), testutil.ToFloat64(m.CartMutationsTotal.WithLabelValues("merge", "ok")))
}

func TestRequestLoggerCarriesFieldsAddedDownstream(t *testing.T) {
	var buf bytes.Buffer
	logger := obs.NewLoggerTo(&buf, "json", "debug")

	r := chi.NewRouter()
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Get("/api/v1/cart", func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", "u-1")
		})
		w.WriteHeader(http.StatusConflict)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	require.Equal(t, "http_request", line["message"])
	require.Equal(t, "warn", line["level"])
	require.Equal(t, "/api/v1/cart", line["route"])
	require.Equal(t, "u-1", line["user_id"])
	require.Equal(t, float64(http.StatusConflict), line["status"])
}

func TestHTTPMetricsUnmatchedRoute(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := obs.NewHTTPMetrics("toko", nil, registry)

	r := chi.NewRouter()
	r.Use(obs.HTTPObs{Metrics: metrics}.Middleware)
	// chi only runs the middleware stack once a route is registered.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, float64(1), testutil.ToFloat64(metrics.Requests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
