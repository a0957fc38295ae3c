package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/wordbook/internal/platform/version"
)

const readinessTimeout = 2 * time.Second

var errNotListening = errors.New("public listener is not accepting connections")

// Probe is a named readiness check run by the admin server.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// ListenerProbe fails until the public listener is bound and again once shutdown starts.
func (s *Server) ListenerProbe() Probe {
	return Probe{
		Name: "listener",
		Check: func(context.Context) error {
			if !s.Listening() {
				return errNotListening
			}
			return nil
		},
	}
}

type livenessResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

// readinessResponse maps every probe name to "ok" or its error.
type readinessResponse struct {
	Status string            `json:"status"`
	Probes map[string]string `json:"probes"`
}

func (s *AdminServer) registerProbeRoutes() {
	s.echo.GET("/health/live", s.handleLive)
	s.echo.GET("/health/ready", s.handleReady)
	s.echo.GET("/version", s.handleVersion)
}

func (s *AdminServer) handleLive(c echo.Context) error {
	return sendJSON(c, http.StatusOK, livenessResponse{
		Status:        "ok",
		UptimeSeconds: s.clock.Since(s.startTime).Seconds(),
	})
}

// handleReady runs all probes, so one response names every failing part.
func (s *AdminServer) handleReady(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	resp := readinessResponse{Status: "ready", Probes: make(map[string]string, len(s.probes))}
	status := http.StatusOK
	for _, p := range s.probes {
		if err := p.Check(ctx); err != nil {
			slog.WarnContext(ctx, "Readiness probe failed", "probe", p.Name, "error", err)
			resp.Probes[p.Name] = err.Error()
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Probes[p.Name] = "ok"
	}

	return sendJSON(c, status, resp)
}

func (s *AdminServer) handleVersion(c echo.Context) error {
	return sendJSON(c, http.StatusOK, version.Get())
}
