// Package server assembles the journal API server: storage, services,
// HTTP routing and graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/common"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
	"github.com/dmitrijs2005/gophjournal/internal/server/config"
	"github.com/dmitrijs2005/gophjournal/internal/server/httpapi"
	"github.com/dmitrijs2005/gophjournal/internal/server/metrics"
	"github.com/dmitrijs2005/gophjournal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophjournal/internal/server/services"
	"go.uber.org/zap"
)

var openDB = sql.Open

type App struct {
	config  *config.Config
	logger  *logging.ZapLogger
	db      *sql.DB
	handler http.Handler
}

// NewApp opens storage, applies migrations when Postgres is used and
// builds the router. The caller must call Close.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	zl, err := logging.NewProductionZap(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	return newApp(ctx, cfg, zl)
}

func newApp(ctx context.Context, cfg *config.Config, zl *zap.Logger) (*App, error) {
	logger := logging.NewZapLogger(zl)

	secret := cfg.SecretKey
	if secret == "" {
		s, err := common.RandomHex(32)
		if err != nil {
			return nil, fmt.Errorf("secret generation error: %w", err)
		}
		secret = s
		logger.Warn(ctx, "no secret key configured, issued tokens will not survive a restart")
	}

	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		var err error
		db, err = openDB("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	default:
		rm = repomanager.NewMemoryRepositoryManager()
	}

	svcCfg := *cfg
	svcCfg.SecretKey = secret

	handler := httpapi.NewRouter(httpapi.Options{
		Users:          services.NewUserService(db, rm, &svcCfg),
		Entries:        services.NewEntryService(db, rm),
		Metrics:        metrics.NewCollector("gophjournal"),
		Logger:         zl,
		SecretKey:      []byte(secret),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	logger.Info(ctx, "app initialized", "storage", cfg.Storage, "addr", cfg.ListenAddr)
	return &App{config: cfg, logger: logger, db: db, handler: handler}, nil
}

// Handler exposes the router, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.handler
}

func (app *App) Close() error {
	_ = app.logger.Zap().Sync()
	if app.db != nil {
		return app.db.Close()
	}
	return nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT arrives,
// then drains in-flight requests within ShutdownTimeout.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.ListenAddr, err)
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting HTTP server", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
