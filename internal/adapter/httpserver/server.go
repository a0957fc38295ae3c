package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/wordbook/internal/adapter/metrics"
	"github.com/pscheid92/wordbook/internal/app"
	"github.com/pscheid92/wordbook/internal/domain"
	"github.com/pscheid92/wordbook/internal/platform/config"
)

type dictionaryService interface {
	Lookup(ctx context.Context, word string) (domain.Entry, error)
	Define(ctx context.Context, body []byte) (app.Definition, error)
}

// messageCatalog renders the user-facing messages of one locale.
type messageCatalog interface {
	InvalidGetRequest() string
	WordNotFound(word string, requestNumber int64) string
	InvalidWordOrDefinition() string
	WordExists(word string, requestNumber int64) string
	NewEntryRecorded(word, definition string, totalEntries int, requestNumber int64) string
	MethodNotAllowed() string
	EndpointNotFound() string
}

type requestObserver interface {
	RequestReceived()
}

// Server is the public dictionary endpoint. It owns the request counter and
// holds the dictionary for the lifetime of the process.
type Server struct {
	echo   *echo.Echo
	config *config.Config

	dictionary dictionaryService
	messages   messageCatalog
	requests   *requestCounter
	stopping   atomic.Bool

	httpMetrics *metrics.HTTPMetrics
	observer    requestObserver
}

func NewServer(cfg *config.Config, dictionary dictionaryService, messages messageCatalog, httpMetrics *metrics.HTTPMetrics, observer requestObserver) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:        e,
		config:      cfg,
		dictionary:  dictionary,
		messages:    messages,
		requests:    &requestCounter{},
		httpMetrics: httpMetrics,
		observer:    observer,
	}

	e.HTTPErrorHandler = srv.handleHTTPError
	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.stopping.Store(true)
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Listening reports whether the public listener is bound and not shutting down.
func (s *Server) Listening() bool {
	return s.echo.ListenerAddr() != nil && !s.stopping.Load()
}

// RequestCount returns how many requests the server has received so far.
func (s *Server) RequestCount() int64 {
	return s.requests.current()
}
