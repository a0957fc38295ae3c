package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/wordbook/internal/adapter/metrics"
)

// AdminServer serves metrics, liveness, readiness and build info on a separate
// port, keeping the public dictionary surface free of extra routes.
type AdminServer struct {
	echo      *echo.Echo
	port      string
	registry  *prometheus.Registry
	probes    []Probe
	clock     clockwork.Clock
	startTime time.Time
}

func NewAdminServer(port string, registry *prometheus.Registry, clock clockwork.Clock, probes []Probe) *AdminServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	srv := &AdminServer{
		echo:      e,
		port:      port,
		registry:  registry,
		probes:    probes,
		clock:     clock,
		startTime: clock.Now(),
	}

	srv.registerProbeRoutes()
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(registry)))

	return srv
}

func (s *AdminServer) Start() error {
	slog.Info("Starting admin server", "port", s.port)
	if err := s.echo.Start(":" + s.port); err != nil {
		return fmt.Errorf("failed to start admin server: %w", err)
	}
	return nil
}

func (s *AdminServer) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown admin server: %w", err)
	}
	return nil
}
