// Pitchside is the game backend: store purchases, player profiles and the
// transaction ledger behind them.
//
//	@title			Pitchside API
//	@version		1.0
//	@description	Football-management game backend: store, profiles, transactions.
//	@BasePath		/
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pitchside/pitchside/internal/catalog"
	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/database"
	"github.com/pitchside/pitchside/internal/database/postgres"
	"github.com/pitchside/pitchside/internal/handler"
	"github.com/pitchside/pitchside/internal/logger"
	"github.com/pitchside/pitchside/internal/profile"
	"github.com/pitchside/pitchside/internal/server"
	"github.com/pitchside/pitchside/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("service exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false))
	slog.Info("starting service",
		slog.Int("port", cfg.Port),
		slog.String("environment", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	catalogRepo := postgres.NewCatalogRepository(pool)
	if _, err := catalog.SyncToDatabase(ctx, cfg.CatalogSeedPath, catalogRepo); err != nil {
		return err
	}

	ledger := postgres.NewLedgerRepository(pool)
	catalogSvc := catalog.NewService(catalogRepo)

	h := handler.New(handler.Config{
		Store:     store.NewService(ledger, catalogSvc),
		Profile:   profile.NewService(ledger),
		Catalog:   catalogSvc,
		Readiness: pool,
		JWTSecret: []byte(cfg.JWTSecret),
		SeedPath:  cfg.CatalogSeedPath,
		Version:   cfg.Version,
	})

	srv := server.New(server.Config{
		Port:      cfg.Port,
		APIKey:    cfg.APIKey,
		JWTSecret: []byte(cfg.JWTSecret),
		Handler:   h,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
