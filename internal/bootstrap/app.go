package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/garden-faq/internal/domain/gardenfaq"
	"github.com/yanqian/garden-faq/internal/infra/config"
)

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
	faqSvc gardenfaq.Service
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, faqSvc gardenfaq.Service) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, faqSvc: faqSvc}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	if a.cfg.FAQ.Warmup {
		go a.warmup(ctx)
	}

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// warmup loads the FAQ document ahead of the first request. Failure is not
// fatal: the next search retries the load.
func (a *App) warmup(ctx context.Context) {
	if err := a.faqSvc.Warmup(ctx); err != nil {
		a.logger.Warn("faq warmup failed", "source", a.cfg.FAQ.Source, "error", err)
		return
	}
	a.logger.Info("faq warmup complete", "source", a.cfg.FAQ.Source)
}
