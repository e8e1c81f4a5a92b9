package app

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/extra/redisotel/v9"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-checkout/internal/config"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/health"
	"github.com/noah-isme/toko-checkout/internal/obs"
)

const connectTimeout = 5 * time.Second

// Dependencies are the process-wide connections shared by the API and the
// worker.
type Dependencies struct {
	Pool     *pgxpool.Pool
	Store    *db.PgStore
	Redis    *redis.Client
	Tasks    *asynq.Client
	Registry *prometheus.Registry
}

// Open connects to Postgres and Redis and prepares the task client.
// appName is reported to Postgres as application_name.
func Open(ctx context.Context, cfg *config.Config, appName string) (*Dependencies, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.ConnConfig.Tracer = obs.PGXTracer{}
	if poolConfig.ConnConfig.RuntimeParams == nil {
		poolConfig.ConnConfig.RuntimeParams = map[string]string{}
	}
	poolConfig.ConnConfig.RuntimeParams["application_name"] = appName

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		pool.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	connOpt, err := TaskRedis(cfg.RedisURL)
	if err != nil {
		pool.Close()
		_ = rdb.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Dependencies{
		Pool:     pool,
		Store:    db.NewPgStore(pool, cfg.CheckoutMaxRetries),
		Redis:    rdb,
		Tasks:    asynq.NewClient(connOpt),
		Registry: reg,
	}, nil
}

// Instrument attaches OpenTelemetry hooks to the Redis client.
func (d *Dependencies) Instrument(cfg *config.Config) error {
	if cfg.Obs.EnableTracing {
		if err := obs.InstrumentRedis(d.Redis); err != nil {
			return err
		}
	}
	if cfg.Obs.EnablePrometheus {
		if err := redisotel.InstrumentMetrics(d.Redis); err != nil {
			return fmt.Errorf("redis metrics: %w", err)
		}
	}
	return nil
}

// Checker pings the connections for readiness.
func (d *Dependencies) Checker() health.Checker {
	return health.Pinger{Pool: d.Pool, Redis: d.Redis}
}

// Close releases every connection, logging failures.
func (d *Dependencies) Close(logger zerolog.Logger) {
	if d.Tasks != nil {
		if err := d.Tasks.Close(); err != nil {
			logger.Error().Err(err).Msg("close task client")
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			logger.Error().Err(err).Msg("close redis")
		}
	}
	if d.Pool != nil {
		d.Pool.Close()
	}
}

// TaskRedis converts a redis:// URL into asynq connection options.
func TaskRedis(redisURL string) (asynq.RedisConnOpt, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse task redis url: %w", err)
	}
	return opt, nil
}
