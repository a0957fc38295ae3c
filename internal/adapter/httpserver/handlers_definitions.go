package httpserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/wordbook/internal/domain"
	apperrors "github.com/pscheid92/wordbook/internal/platform/errors"
)

const (
	definitionsPath       = "/api/definitions"
	definitionsLookupPath = "/api/definitions/"
)

type lookupResponse struct {
	RequestNumber int64  `json:"requestNumber"`
	Word          string `json:"word"`
	Definition    string `json:"definition"`
	Success       bool   `json:"success"`
}

type definitionResponse struct {
	RequestNumber int64  `json:"requestNumber"`
	TotalEntries  int    `json:"totalEntries"`
	Message       string `json:"message"`
}

// Static routes win over the wildcards; methods without a route get a 405.
func (s *Server) registerDictionaryRoutes() {
	s.echo.OPTIONS("/*", s.handlePreflight)

	s.echo.GET(definitionsLookupPath, s.handleLookup)
	s.echo.GET("/*", s.handleInvalidLookup)

	s.echo.POST(definitionsPath, s.handleDefine)
	s.echo.POST("/*", s.handleUnknownEndpoint)
}

func (s *Server) handlePreflight(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleLookup(c echo.Context) error {
	word := queryValue(c.Request().URL.RawQuery, "word")
	if word == "" {
		return s.handleInvalidLookup(c)
	}

	n := requestNumber(c)
	entry, err := s.dictionary.Lookup(c.Request().Context(), word)
	if errors.Is(err, domain.ErrWordNotFound) {
		return apperrors.NotFoundError(s.messages.WordNotFound(word, n)).
			WithRequestNumber(n).
			WithField("word", word)
	}
	if err != nil {
		return apperrors.InternalError("failed to look up word", err).WithField("word", word)
	}

	return sendJSON(c, http.StatusOK, lookupResponse{
		RequestNumber: n,
		Word:          entry.Word,
		Definition:    entry.Definition,
		Success:       true,
	})
}

func (s *Server) handleInvalidLookup(c echo.Context) error {
	return apperrors.ValidationError(s.messages.InvalidGetRequest()).
		WithField("path", c.Request().URL.Path)
}

// handleDefine blocks until the whole body has arrived. Any failure other than a
// duplicate is reported with the same invalid-input message; the reason is only logged.
func (s *Server) handleDefine(c echo.Context) error {
	req := c.Request()
	// The endpoint is matched on the full request URI, so a query string makes it unknown.
	if req.URL.RawQuery != "" || req.URL.ForceQuery {
		return s.handleUnknownEndpoint(c)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return s.invalidEntry(err, "unreadable_body")
	}

	n := requestNumber(c)
	def, err := s.dictionary.Define(req.Context(), body)

	var invalid *domain.InvalidEntryError
	var exists *domain.WordExistsError
	switch {
	case errors.As(err, &invalid):
		return s.invalidEntry(err, string(invalid.Reason))
	case errors.As(err, &exists):
		return apperrors.ConflictError(s.messages.WordExists(exists.Word, n)).
			WithRequestNumber(n).
			WithField("word", exists.Word)
	case err != nil:
		return s.invalidEntry(err, "unexpected")
	}

	return sendJSON(c, http.StatusCreated, definitionResponse{
		RequestNumber: n,
		TotalEntries:  def.TotalEntries,
		Message:       s.messages.NewEntryRecorded(def.Entry.Word, def.Entry.Definition, def.TotalEntries, n),
	})
}

func (s *Server) invalidEntry(cause error, reason string) error {
	return apperrors.ValidationError(s.messages.InvalidWordOrDefinition()).
		WithCause(cause).
		WithField("reason", reason)
}

func (s *Server) handleUnknownEndpoint(c echo.Context) error {
	return apperrors.NotFoundError(s.messages.EndpointNotFound()).
		WithField("uri", c.Request().RequestURI)
}
