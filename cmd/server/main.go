package main

import (
	"Inventory/internal/config"
	"Inventory/internal/handlers"
	"Inventory/internal/middleware"
	"Inventory/internal/repo"
	"Inventory/internal/service"
	"Inventory/internal/view"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("Server stopped with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(gormDB); err != nil {
			sugar.Errorw("Failed to close database", "error", err)
		}
	}()

	itemRepo := repo.NewItemRepository(gormDB)
	statsRepo, err := repo.NewStatsRepository(gormDB)
	if err != nil {
		return err
	}
	itemService := service.NewItemService(itemRepo, statsRepo, sugar)

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	h := handlers.NewHandler(itemService, renderer, sugar)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow("Config",
		"Addr", cfg.Addr(),
		"Debug", cfg.Debug,
		"Postgres", repo.IsPostgresDSN(cfg.DatabaseDSN),
	)
	sugar.Infow("Starting server", "addr", srv.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	sugar.Infow("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
