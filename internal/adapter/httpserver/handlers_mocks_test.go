package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/wordbook/internal/adapter/locale"
	"github.com/pscheid92/wordbook/internal/adapter/memory"
	"github.com/pscheid92/wordbook/internal/adapter/metrics"
	"github.com/pscheid92/wordbook/internal/app"
	"github.com/pscheid92/wordbook/internal/domain"
	"github.com/pscheid92/wordbook/internal/platform/config"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockDictionaryService struct {
	lookupFn func(ctx context.Context, word string) (domain.Entry, error)
	defineFn func(ctx context.Context, body []byte) (app.Definition, error)
}

func (m *mockDictionaryService) Lookup(ctx context.Context, word string) (domain.Entry, error) {
	if m.lookupFn != nil {
		return m.lookupFn(ctx, word)
	}
	return domain.Entry{}, domain.ErrWordNotFound
}

func (m *mockDictionaryService) Define(ctx context.Context, body []byte) (app.Definition, error) {
	if m.defineFn != nil {
		return m.defineFn(ctx, body)
	}
	return app.Definition{}, errors.New("not implemented")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

// --- Test helpers ---

type testServer struct {
	*Server
	httpMetrics *metrics.HTTPMetrics
	dictMetrics *metrics.DictionaryMetrics
}

// newTestServer wires a server against a fresh in-memory dictionary unless
// another dictionary service is given.
func newTestServer(t *testing.T, dictionary ...dictionaryService) *testServer {
	t.Helper()

	catalog, err := locale.New("en")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)
	dictMetrics := metrics.NewDictionaryMetrics(reg)

	var svc dictionaryService = app.NewDictionaryService(memory.NewDictionary(), dictMetrics)
	if len(dictionary) > 0 {
		svc = dictionary[0]
	}

	srv := NewServer(&config.Config{Port: "8000"}, svc, catalog, httpMetrics, dictMetrics)
	return &testServer{Server: srv, httpMetrics: httpMetrics, dictMetrics: dictMetrics}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) define(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, http.MethodPost, "/api/definitions", body)
}

func (s *testServer) lookup(t *testing.T, word string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, http.MethodGet, "/api/definitions/?word="+word, "")
}
