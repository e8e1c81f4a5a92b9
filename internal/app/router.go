// Package app assembles the HTTP API from the domain packages.
package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/noah-isme/toko-checkout/internal/auth"
	"github.com/noah-isme/toko-checkout/internal/cart"
	"github.com/noah-isme/toko-checkout/internal/catalog"
	"github.com/noah-isme/toko-checkout/internal/checkout"
	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/config"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/events"
	"github.com/noah-isme/toko-checkout/internal/health"
	"github.com/noah-isme/toko-checkout/internal/lock"
	"github.com/noah-isme/toko-checkout/internal/notify"
	"github.com/noah-isme/toko-checkout/internal/obs"
	"github.com/noah-isme/toko-checkout/internal/order"
	"github.com/noah-isme/toko-checkout/internal/ratelimit"
	"github.com/noah-isme/toko-checkout/internal/security"
	"github.com/noah-isme/toko-checkout/internal/user"
)

// AccessCookieName carries the access token for browser clients.
const AccessCookieName = "access_token"

const lockRetryBackoff = 50 * time.Millisecond

// RouterDeps are the resources the HTTP API is built from. Redis and Tasks
// are optional: without Redis the checkout lock, idempotency keys and the
// catalog cache are off and rate limits are kept in process memory; without
// Tasks no confirmation jobs are enqueued.
type RouterDeps struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Store    db.Store
	Redis    *redis.Client
	Tasks    notify.TaskClient
	Registry *prometheus.Registry
	Checker  health.Checker
}

// NewRouter builds the API handler.
func NewRouter(d RouterDeps) (http.Handler, error) {
	cfg := d.Config
	if cfg == nil {
		return nil, errors.New("app: config is required")
	}
	if d.Store == nil {
		return nil, errors.New("app: store is required")
	}
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	logger := d.Logger
	domainMetrics := obs.NewDomainMetrics(cfg.Obs.MetricsNamespace, reg)

	authSvc, err := auth.NewService(auth.Config{
		Store:          d.Store,
		Secret:         cfg.JWTSecret,
		AccessTokenTTL: cfg.AccessTokenTTL,
	})
	if err != nil {
		return nil, err
	}
	authHandler := &auth.Handler{
		Service:          authSvc,
		AccessCookieName: AccessCookieName,
		CookieDomain:     cfg.CookieDomain,
		CookieSecure:     cfg.CookieSecure,
		CookieSameSite:   cfg.CookieSameSite,
	}
	authMiddleware := auth.Middleware{Service: authSvc, AccessCookie: AccessCookieName}

	catalogSvc, err := catalog.NewService(catalog.ServiceConfig{
		Store:  d.Store,
		Cache:  catalog.NewCache(d.Redis, cfg.CatalogCacheTTL),
		Logger: logger.With().Str("component", "catalog").Logger(),
	})
	if err != nil {
		return nil, err
	}
	catalogHandler := catalog.NewHandler(catalog.HandlerConfig{Service: catalogSvc})

	cartHandler := &cart.Handler{Svc: &cart.Service{
		Store:    d.Store,
		Metrics:  domainMetrics,
		Logger:   logger.With().Str("component", "cart").Logger(),
		Currency: cfg.CurrencyCode,
	}}
	profileHandler := &user.Handler{Service: &user.Service{
		Store:  d.Store,
		Logger: logger.With().Str("component", "profile").Logger(),
	}}
	orderHandler := &order.Handler{Svc: &order.Service{Store: d.Store}}

	bus := &events.Bus{}
	if d.Tasks != nil {
		bus.Notifiers = append(bus.Notifiers, &notify.Enqueuer{
			Client:  d.Tasks,
			Metrics: domainMetrics,
			Logger:  logger.With().Str("component", "notify").Logger(),
		})
	}
	checkoutSvc := &checkout.Service{
		Store:    d.Store,
		Bus:      bus,
		Metrics:  domainMetrics,
		Logger:   logger.With().Str("component", "checkout").Logger(),
		Currency: cfg.CurrencyCode,
		LockTTL:  cfg.CheckoutLockTTL,
	}
	if d.Redis != nil {
		checkoutSvc.Locker = lock.Locker{R: d.Redis, RetryBackoff: lockRetryBackoff, Wait: cfg.CheckoutLockWait}
	}
	checkoutHandler := &checkout.Handler{Svc: checkoutSvc}

	var limitStore limiter.Store = memory.NewStore()
	if d.Redis != nil {
		if limitStore, err = ratelimit.NewRedisStore(d.Redis, "ratelimit"); err != nil {
			return nil, err
		}
	}
	checkoutLimit, err := ratelimit.Middleware(ratelimit.Config{
		Rate:   cfg.RateLimitCheckout,
		Store:  limitStore,
		Name:   "checkout",
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	idem := common.Idem{R: d.Redis, TTL: cfg.IdempotencyTTL}
	csrf := security.CSRF{SessionCookie: AccessCookieName}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Obs.EnableTracing {
		r.Use(obs.Tracing("http.server"))
	}
	if cfg.Obs.EnablePrometheus {
		r.Use(obs.HTTPObs{Metrics: obs.NewHTTPMetrics(cfg.Obs.MetricsNamespace, nil, reg)}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(security.Headers{EnableHSTS: cfg.IsProduction()}.Middleware)
	r.Use(security.CORS(cfg.CORSAllowedOrigins))
	r.Use(security.BodyLimit{Max: cfg.BodyLimitBytes}.Middleware)

	healthHandler := health.Handler{Checker: d.Checker}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)
	if cfg.Obs.EnablePrometheus {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(v chi.Router) {
		v.Get("/categories", catalogHandler.Categories)
		v.Get("/categories/{id}", catalogHandler.Category)
		v.Get("/products", catalogHandler.Products)
		v.Get("/products/{id}", catalogHandler.Product)

		v.Route("/auth", func(a chi.Router) {
			a.Post("/register", authHandler.Register)
			a.Post("/login", authHandler.Login)
			a.Post("/logout", authHandler.Logout)
			a.With(authMiddleware.RequireAuth).Get("/me", authHandler.Me)
		})

		v.Group(func(p chi.Router) {
			p.Use(authMiddleware.RequireAuth)
			p.Use(csrf.Middleware)

			p.Route("/cart", func(c chi.Router) {
				c.Get("/", cartHandler.Get)
				c.Put("/", cartHandler.Replace)
				c.Post("/merge", cartHandler.Merge)
				c.Delete("/", cartHandler.Clear)
			})
			p.Route("/profile", func(pr chi.Router) {
				pr.Patch("/account", authHandler.UpdateAccount)
				pr.Patch("/account/password", authHandler.ChangePassword)
				pr.Delete("/account", authHandler.DeleteAccount)
				profileHandler.Routes(pr)
			})
			p.Get("/orders", orderHandler.List)
			p.Get("/orders/{orderID}", orderHandler.Get)
			p.With(checkoutLimit, idem.Middleware).Post("/checkout", checkoutHandler.Checkout)
		})
	})
	return r, nil
}
