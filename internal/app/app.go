package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fedipeek/fedipeek/internal/config"
	"github.com/fedipeek/fedipeek/internal/httpserver"
	"github.com/fedipeek/fedipeek/internal/httpserver/deps"
	"github.com/fedipeek/fedipeek/internal/logger"
	"github.com/fedipeek/fedipeek/internal/metrics"
	"github.com/fedipeek/fedipeek/internal/render"
	"github.com/fedipeek/fedipeek/internal/sources/instance"
	"github.com/fedipeek/fedipeek/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	m := metrics.New()

	fetcher := instance.NewFetcher(instance.Options{
		Timeout:    cfg.FetchTimeout,
		UserAgent:  cfg.UserAgent,
		Logger:     loggerClient,
		OnFallback: m.FallbacksTotal.Inc,
	})

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Fetcher:      fetcher,
		Renderer:     render.New(),
		Metrics:      m,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting fedipeek v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("fedipeek %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ fedipeek stopped cleanly")
	return nil
}
