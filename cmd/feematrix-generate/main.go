package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"containerhub/internal/app"
	"containerhub/internal/pkg/config"
	"containerhub/internal/pkg/dotenv"
	"containerhub/internal/pkg/postgres"
	"containerhub/pkg/logger"
	"containerhub/pkg/logger/zap_adapter"
)

// One-shot COD fee matrix generator. Recomputes the full depot-to-depot grid
// and swaps it in atomically, then exits. Meant for deploys and cron, the
// long-running service refreshes the matrix on its own schedule.
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting feematrix-generate")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			os.Exit(1)
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), appLogger, cfg); err != nil {
		mainLog.Error("matrix generation failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := app.InitializeFeeMatrixApp(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	entries, err := businessApp.ServiceCodFee.RefreshMatrix(ctx)
	if err != nil {
		return fmt.Errorf("refresh matrix: %w", err)
	}

	runLog.With(
		logger.NewField("entries", entries),
	).Info("fee matrix generated")

	return nil
}
