package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/plantops/shiftlog-backend/internal/adapter/postgres"
	categoryrepo "github.com/plantops/shiftlog-backend/internal/adapter/postgres/category"
	distributionrepo "github.com/plantops/shiftlog-backend/internal/adapter/postgres/distribution"
	logentryrepo "github.com/plantops/shiftlog-backend/internal/adapter/postgres/logentry"
	"github.com/plantops/shiftlog-backend/internal/config"
	"github.com/plantops/shiftlog-backend/internal/notify"
	distributionsvc "github.com/plantops/shiftlog-backend/internal/service/distribution"
	logbooksvc "github.com/plantops/shiftlog-backend/internal/service/logbook"
	"github.com/plantops/shiftlog-backend/internal/transport/middleware"
	"github.com/plantops/shiftlog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	categories := categoryrepo.New(pool)
	logs := logentryrepo.New(pool)
	distributions := distributionrepo.New(pool)

	distService := distributionsvc.NewService(logger, distributions, cfg.Logbook)
	logbookService := logbooksvc.NewService(
		logger,
		logs,
		categories,
		distService,
		txManager,
		notify.NewLogNotifier(logger),
		cfg.Logbook,
	)

	logHandler := rest.NewLogHandler(logbookService, logger)
	ackHandler := rest.NewAckHandler(distService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	mux := rest.NewRouter(logHandler, ackHandler, healthHandler)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
