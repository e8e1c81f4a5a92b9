package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/ratelimit"
)

func serve(t *testing.T, h http.Handler, userID, addr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
	req.RemoteAddr = addr
	if userID != "" {
		req = req.WithContext(common.WithUserID(req.Context(), userID))
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
}

func TestMiddlewareLimitsPerUser(t *testing.T) {
	mw, err := ratelimit.Middleware(ratelimit.Config{Rate: "2-M", Store: memory.NewStore(), Name: "checkout"})
	require.NoError(t, err)
	h := mw(noContent())

	require.Equal(t, http.StatusNoContent, serve(t, h, "u-1", "10.0.0.1:1234").Code)
	rr := serve(t, h, "u-1", "10.0.0.2:1234")
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))

	rr = serve(t, h, "u-1", "10.0.0.3:1234")
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.Contains(t, rr.Body.String(), ratelimit.CodeRateLimited)
	require.NotEmpty(t, rr.Header().Get("Retry-After"))

	require.Equal(t, http.StatusNoContent, serve(t, h, "u-2", "10.0.0.1:1234").Code)
}

func TestMiddlewareFallsBackToAddress(t *testing.T) {
	mw, err := ratelimit.Middleware(ratelimit.Config{Rate: "1-H", Store: memory.NewStore()})
	require.NoError(t, err)
	h := mw(noContent())

	require.Equal(t, http.StatusNoContent, serve(t, h, "", "10.0.0.1:1111").Code)
	require.Equal(t, http.StatusTooManyRequests, serve(t, h, "", "10.0.0.1:2222").Code)
	require.Equal(t, http.StatusNoContent, serve(t, h, "", "10.0.0.9:1111").Code)
}

func TestMiddlewareConfigErrors(t *testing.T) {
	_, err := ratelimit.Middleware(ratelimit.Config{Rate: "often"})
	require.Error(t, err)

	_, err = ratelimit.Middleware(ratelimit.Config{Rate: "often", Store: memory.NewStore()})
	require.ErrorContains(t, err, "often")
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store, err := ratelimit.NewRedisStore(rdb, "")
	require.NoError(t, err)
	mw, err := ratelimit.Middleware(ratelimit.Config{Rate: "1-M", Store: store, Name: "checkout"})
	require.NoError(t, err)
	h := mw(noContent())

	require.Equal(t, http.StatusNoContent, serve(t, h, "u-1", "10.0.0.1:1").Code)
	require.Equal(t, http.StatusTooManyRequests, serve(t, h, "u-1", "10.0.0.1:1").Code)
}
