package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/noah-isme/toko-checkout/internal/app"
	"github.com/noah-isme/toko-checkout/internal/auth"
	"github.com/noah-isme/toko-checkout/internal/config"
	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/obs"
	"github.com/noah-isme/toko-checkout/internal/seed"
)

func main() {
	email := flag.String("email", "demo@toko.test", "demo account email, empty to skip")
	password := flag.String("password", "demo-password", "demo account password")
	migrate := flag.Bool("migrate", true, "apply migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := obs.NewLogger(cfg.Obs.LogFormat, cfg.Obs.LogLevel).With().Str("component", "seeder").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *migrate {
		if err := db.MigrateUp(cfg.DatabaseURL); err != nil {
			logger.Fatal().Err(err).Msg("migrate")
		}
	}

	deps, err := app.Open(ctx, cfg, "toko-seeder")
	if err != nil {
		logger.Fatal().Err(err).Msg("open dependencies")
	}
	defer deps.Close(logger)

	accounts, err := auth.NewService(auth.Config{Store: deps.Store, Secret: cfg.JWTSecret})
	if err != nil {
		logger.Fatal().Err(err).Msg("initialise auth service")
	}
	res, err := seed.Run(ctx, deps.Store, accounts, seed.Demo{Name: "Demo Shopper", Email: *email, Password: *password})
	if err != nil {
		logger.Error().Err(err).Msg("seed failed")
		deps.Close(logger)
		os.Exit(1)
	}
	logger.Info().
		Int("categories", res.Categories).
		Int("products", res.Products).
		Str("user_id", res.UserID).
		Msg("seed complete")
}
