package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/wordbook/internal/adapter/httpserver"
	"github.com/pscheid92/wordbook/internal/adapter/locale"
	"github.com/pscheid92/wordbook/internal/adapter/memory"
	"github.com/pscheid92/wordbook/internal/adapter/metrics"
	"github.com/pscheid92/wordbook/internal/app"
	"github.com/pscheid92/wordbook/internal/platform/config"
	"github.com/pscheid92/wordbook/internal/platform/logging"
	"github.com/pscheid92/wordbook/internal/platform/version"
)

func runGracefulShutdown(cfg *config.Config, srv *httpserver.Server, admin *httpserver.AdminServer, dictionary *memory.Dictionary) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if admin != nil {
			if err := admin.Shutdown(shutdownCtx); err != nil {
				slog.Error("Admin server shutdown error", "error", err)
			}
		}

		slog.Info("Server stopped",
			"requests", srv.RequestCount(),
			"entries", dictionary.Count(shutdownCtx))
		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func startAdminServer(cfg *config.Config, admin *httpserver.AdminServer) {
	go func() {
		if err := admin.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Admin server error", "port", cfg.AdminPort, "error", err)
		}
	}()
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "version", version.Get().String(), "locale", cfg.Locale)

	catalog, err := locale.New(cfg.Locale)
	if err != nil {
		slog.Error("Failed to load message catalog", "locale", cfg.Locale, "error", err)
		os.Exit(1)
	}

	registry := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	dictMetrics := metrics.NewDictionaryMetrics(registry)

	dictionary := memory.NewDictionary()
	dictionarySvc := app.NewDictionaryService(dictionary, dictMetrics)

	srv := httpserver.NewServer(cfg, dictionarySvc, catalog, httpMetrics, dictMetrics)

	var admin *httpserver.AdminServer
	if cfg.AdminPort != "" {
		admin = httpserver.NewAdminServer(cfg.AdminPort, registry, clock, []httpserver.Probe{
			srv.ListenerProbe(),
			{Name: "dictionary", Check: dictionary.Check},
		})
		startAdminServer(cfg, admin)
	}

	done := runGracefulShutdown(cfg, srv, admin, dictionary)

	slog.Info("Server running", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
