package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "nutrilog/internal/adapter/http"
	"nutrilog/internal/adapter/memory"
	"nutrilog/internal/adapter/postgres"
	"nutrilog/internal/aggregate"
	"nutrilog/internal/app"
	"nutrilog/internal/config"
	"nutrilog/internal/domain"
	"nutrilog/internal/logger"

	"go.uber.org/zap"
)

// store is satisfied by every persistence backend.
type store interface {
	domain.UserRepository
	domain.FoodRepository
	domain.MealLogRepository
	domain.WeightRepository
	domain.HeightRepository
	domain.MeasurementRepository
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync(log)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var db store
	switch cfg.DataBackend {
	case config.BackendPostgres:
		pg, err := postgres.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns)
		if err != nil {
			return fmt.Errorf("db open: %w", err)
		}
		defer func() { _ = pg.Close() }()
		db = pg
	default:
		db = memory.New()
	}
	log.Info("storage initialised", zap.String("backend", cfg.DataBackend))

	tokens := app.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	svc := adapthttp.Services{
		Auth:         app.NewAuthService(db, tokens, log),
		Foods:        app.NewFoodService(db),
		MealLogs:     app.NewMealLogService(db, db),
		Weights:      app.NewWeightService(db),
		Heights:      app.NewHeightService(db),
		Measurements: app.NewMeasurementService(db),
		Dashboard:    app.NewDashboardService(db, db, db, db, aggregate.New(loc)),
	}

	opts := adapthttp.Options{WebDir: cfg.WebDir, Location: loc, Logger: log}
	if cfg.SSOEnabled() {
		opts.OIDC, err = adapthttp.NewOIDCConfig(ctx, cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
		if err != nil {
			return err
		}
		log.Info("sso enabled", zap.String("issuer", cfg.OIDCIssuer))
	}

	srv := &http.Server{
		Addr:           cfg.Addr,
		Handler:        adapthttp.New(svc, opts).Handler(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info("shutdown signal received", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	log.Info("listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	log.Info("server stopped gracefully")
	return nil
}
