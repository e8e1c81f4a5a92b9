// Package config loads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	RedisURL           string
	JWTSecret          string
	CORSAllowedOrigins []string
	AccessTokenTTL     time.Duration
	CookieDomain       string
	CookieSecure       bool
	CookieSameSite     http.SameSite

	CurrencyCode       string
	CheckoutLockTTL    time.Duration
	CheckoutLockWait   time.Duration
	CheckoutMaxRetries int
	IdempotencyTTL     time.Duration
	RateLimitCheckout  string
	DBAutoMigrate      bool
	BodyLimitBytes     int64
	CatalogCacheTTL    time.Duration

	Obs ObsConfig
}

// ObsConfig configures logging, metrics and tracing.
type ObsConfig struct {
	LogFormat            string
	LogLevel             string
	EnablePrometheus     bool
	EnableTracing        bool
	OTLPEndpoint         string
	TracingSamplingRatio float64
	MetricsNamespace     string
}

// Load reads the process environment, after merging any .env file found in
// the working directory. Variables already set win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	cfg := build(source{k})
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func build(src source) *Config {
	return &Config{
		AppEnv:             src.str("APP_ENV", "development"),
		Port:               src.str("PORT", "8080"),
		DatabaseURL:        src.str("DATABASE_URL", ""),
		RedisURL:           src.str("REDIS_URL", ""),
		JWTSecret:          src.str("JWT_SECRET", ""),
		CORSAllowedOrigins: src.list("CORS_ALLOWED_ORIGINS"),
		AccessTokenTTL:     src.duration("ACCESS_TOKEN_TTL", 15*time.Minute),
		CookieDomain:       src.str("COOKIE_DOMAIN", ""),
		CookieSecure:       src.boolean("COOKIE_SECURE", false),
		CookieSameSite:     sameSite(src.str("COOKIE_SAMESITE", "lax")),

		CurrencyCode:       strings.ToUpper(src.str("CURRENCY_CODE", "USD")),
		CheckoutLockTTL:    src.duration("CHECKOUT_LOCK_TTL", 10*time.Second),
		CheckoutLockWait:   src.duration("CHECKOUT_LOCK_WAIT", 3*time.Second),
		CheckoutMaxRetries: src.positive("CHECKOUT_MAX_RETRIES", 3),
		IdempotencyTTL:     src.duration("IDEMPOTENCY_TTL", 24*time.Hour),
		RateLimitCheckout:  src.str("RATE_LIMIT_CHECKOUT", "10-M"),
		DBAutoMigrate:      src.boolean("DB_AUTO_MIGRATE", false),
		BodyLimitBytes:     int64(src.positive("BODY_LIMIT_BYTES", 1<<20)),
		CatalogCacheTTL:    src.duration("CATALOG_CACHE_TTL", time.Minute),

		Obs: ObsConfig{
			LogFormat:            strings.ToLower(src.str("OBS_LOG_FORMAT", "json")),
			LogLevel:             strings.ToLower(src.str("OBS_LOG_LEVEL", "info")),
			EnablePrometheus:     src.boolean("OBS_ENABLE_PROMETHEUS", true),
			EnableTracing:        src.boolean("OBS_ENABLE_TRACING", false),
			OTLPEndpoint:         src.str("OBS_OTLP_ENDPOINT", ""),
			TracingSamplingRatio: src.ratio("OBS_TRACING_SAMPLING_RATIO", 1),
			MetricsNamespace:     src.str("OBS_METRICS_NAMESPACE", "toko"),
		},
	}
}

func (c *Config) validate() error {
	var errs []error
	for key, v := range map[string]string{
		"DATABASE_URL": c.DatabaseURL,
		"REDIS_URL":    c.RedisURL,
		"JWT_SECRET":   c.JWTSecret,
	} {
		if v == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}
	if len(c.CurrencyCode) != 3 {
		errs = append(errs, fmt.Errorf("CURRENCY_CODE must be a 3-letter code, got %q", c.CurrencyCode))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether the API runs with production defaults.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// HTTPAddr returns the listen address for Port, which may be given as
// "8080" or ":8080".
func (c *Config) HTTPAddr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// source reads typed values out of koanf. Blank and malformed values fall
// back to the given default.
type source struct{ k *koanf.Koanf }

func (s source) str(key, fallback string) string {
	if v := strings.TrimSpace(s.k.String(key)); v != "" {
		return v
	}
	return fallback
}

func (s source) list(key string) []string {
	var out []string
	for _, part := range strings.Split(s.k.String(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (s source) duration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s.str(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func (s source) boolean(key string, fallback bool) bool {
	switch strings.ToLower(s.str(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

func (s source) positive(key string, fallback int) int {
	n, err := strconv.Atoi(s.str(key, ""))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (s source) ratio(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s.str(key, ""), 64)
	if err != nil || f < 0 || f > 1 {
		return fallback
	}
	return f
}

func sameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
