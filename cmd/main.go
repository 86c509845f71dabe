package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/mlbdw/livetracker/internal/adapters/http/api"
	"github.com/mlbdw/livetracker/internal/adapters/repository"
	"github.com/mlbdw/livetracker/internal/adapters/statsapi"
	app "github.com/mlbdw/livetracker/internal/app"
	"github.com/mlbdw/livetracker/internal/config"
	"github.com/mlbdw/livetracker/internal/domain/lookup"
	"github.com/mlbdw/livetracker/pkg/logger"
	"github.com/mlbdw/livetracker/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Lookup tables are optional; a missing data dir degrades every join
	// to its zero value rather than refusing to start.
	tables, err := lookup.LoadDir(cfg.DataDir)
	if err != nil {
		log.Warn(ctx, "lookup tables unavailable; joins will degrade",
			logger.String("data_dir", cfg.DataDir), logger.Error(err))
		tables = lookup.NewTables()
	}

	client := statsapi.New(
		statsapi.WithBaseURL(cfg.APIBaseURL),
		statsapi.WithTimeout(cfg.HTTPTimeout()),
		statsapi.WithRetries(cfg.FetchRetries),
		statsapi.WithRetryBackoff(cfg.RetryBackoff()),
		statsapi.WithLogger(log.Named("statsapi")),
	)
	store := repository.NewMemoryStore()

	svc := app.New(client, store, tables,
		app.WithLogger(log.Named("service")),
		app.WithDate(cfg.Date),
		app.WithSportIDs(cfg.SportIDs),
		app.WithRefreshInterval(cfg.RefreshInterval()),
		app.WithScheduleTTL(cfg.ScheduleTTL()),
		app.WithGameTTL(cfg.GameTTL()),
		app.WithWorkerBounds(cfg.MinFetchWorkers, cfg.MaxFetchWorkers),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	go startSystemMetricsUpdater(ctx)

	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater refreshes process-level gauges on a ticker.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var mem runtime.MemStats
			runtime.ReadMemStats(&mem)
			metrics.UpdateMemoryAlloc(mem.Alloc)
			metrics.UpdateGoroutines(runtime.NumGoroutine())
		}
	}
}
