// Package ratelimit throttles write endpoints per caller.
package ratelimit

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/noah-isme/toko-checkout/internal/common"
)

// DefaultCheckoutRate allows ten checkout attempts per minute.
const DefaultCheckoutRate = "10-M"

// CodeRateLimited marks throttled requests.
const CodeRateLimited = "RATE_LIMITED"

// NewRedisStore returns a limiter store sharing the API's Redis client.
func NewRedisStore(rdb *redis.Client, prefix string) (limiter.Store, error) {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return limiterredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: prefix})
}

// Config describes one limited route group.
type Config struct {
	// Rate uses the ulule notation, e.g. "10-M" or "100-H".
	Rate   string
	Store  limiter.Store
	Name   string
	Logger zerolog.Logger
}

// Middleware returns a middleware keyed by the authenticated user, falling
// back to the client address for anonymous requests.
func Middleware(cfg Config) (func(http.Handler) http.Handler, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("ratelimit: store is required")
	}
	raw := strings.TrimSpace(cfg.Rate)
	if raw == "" {
		raw = DefaultCheckoutRate
	}
	rate, err := limiter.NewRateFromFormatted(raw)
	if err != nil {
		return nil, fmt.Errorf("ratelimit: parse rate %q: %w", raw, err)
	}
	name := cfg.Name
	if name == "" {
		name = "default"
	}
	logger := cfg.Logger

	mw := stdlib.NewMiddleware(limiter.New(cfg.Store, rate),
		stdlib.WithKeyGetter(func(r *http.Request) string {
			return name + ":" + callerKey(r)
		}),
		stdlib.WithLimitReachedHandler(func(w http.ResponseWriter, _ *http.Request) {
			setRetryAfter(w.Header())
			common.JSONError(w, http.StatusTooManyRequests, CodeRateLimited, "Too many requests, try again later", nil)
		}),
		stdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error().Err(err).Str("limiter", name).Msg("rate limit store failed")
			common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error", nil)
		}),
	)
	return mw.Handler, nil
}

// setRetryAfter derives Retry-After from the X-RateLimit-Reset header the
// limiter middleware has already written.
func setRetryAfter(h http.Header) {
	reset, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return
	}
	wait := time.Until(time.Unix(reset, 0)).Seconds()
	if wait < 0 {
		wait = 0
	}
	h.Set("Retry-After", strconv.Itoa(int(math.Ceil(wait))))
}

func callerKey(r *http.Request) string {
	if id, ok := common.UserID(r.Context()); ok && id != "" {
		return "user:" + id
	}
	return "ip:" + common.ClientIP(r)
}
