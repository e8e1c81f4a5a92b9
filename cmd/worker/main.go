package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/toko-checkout/internal/app"
	"github.com/noah-isme/toko-checkout/internal/config"
	"github.com/noah-isme/toko-checkout/internal/notify"
	"github.com/noah-isme/toko-checkout/internal/obs"
)

func main() {
	concurrency := flag.Int("concurrency", 10, "number of confirmation tasks processed in parallel")
	republish := flag.Int("republish", 0, "re-enqueue up to n stored order.accepted events on start")
	metricsAddr := flag.String("metrics-addr", ":9091", "address serving /metrics, empty to disable")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := obs.NewLogger(cfg.Obs.LogFormat, cfg.Obs.LogLevel).With().Str("component", "worker").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := app.Open(ctx, cfg, "toko-checkout-worker")
	if err != nil {
		logger.Fatal().Err(err).Msg("open dependencies")
	}
	defer deps.Close(logger)

	metrics := obs.NewDomainMetrics(cfg.Obs.MetricsNamespace, deps.Registry)
	if *metricsAddr != "" && cfg.Obs.EnablePrometheus {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
		metricsSrv := &http.Server{Addr: *metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("metrics server")
			}
		}()
		defer func() { _ = metricsSrv.Close() }()
	}

	if *republish > 0 {
		enq := &notify.Enqueuer{Client: deps.Tasks, Metrics: metrics, Logger: logger}
		n, err := notify.Republish(ctx, deps.Store, enq, int32(*republish))
		if err != nil {
			logger.Error().Err(err).Int("republished", n).Msg("republish order events")
		} else {
			logger.Info().Int("republished", n).Msg("republished order events")
		}
	}

	connOpt, err := app.TaskRedis(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("task redis")
	}
	srv := asynq.NewServer(connOpt, asynq.Config{
		Concurrency:  *concurrency,
		Queues:       map[string]int{"default": 1},
		Logger:       notify.NewAsynqLogger(logger),
		ErrorHandler: notify.ErrorHandler(logger),
	})
	handler := notify.ConfirmationHandler{
		Mail:    notify.LogMailer{Logger: logger},
		Guard:   notify.RedisSendGuard{Client: deps.Redis},
		Metrics: metrics,
		Logger:  logger,
	}
	if err := srv.Start(notify.NewServeMux(handler)); err != nil {
		logger.Fatal().Err(err).Msg("start worker")
	}
	logger.Info().Int("concurrency", *concurrency).Msg("worker started")

	<-ctx.Done()
	srv.Shutdown()
	logger.Info().Msg("worker shutdown complete")
}
