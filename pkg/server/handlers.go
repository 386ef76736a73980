package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	goliaerr "github.com/golia-dev/golia/internal/errors"
	"github.com/golia-dev/golia/pkg/transpile"
	"go.opentelemetry.io/otel/attribute"
)

// handleDerender converts raw HTML from the request body to builder
// code. The transpiler itself never fails; request-level problems
// (empty or oversized bodies) surface as client errors.
func (s *Server) handleDerender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.clientError(w, http.StatusRequestEntityTooLarge, goliaerr.New("E201"))
			return
		}
		s.clientError(w, http.StatusBadRequest, err)
		return
	}

	html := string(body)
	if strings.TrimSpace(html) == "" {
		s.clientError(w, http.StatusBadRequest, goliaerr.New("E200"))
		return
	}

	_, span := s.tracer.Start(r.Context(), "transpile.document")
	span.SetAttributes(attribute.Int("transpile.input_bytes", len(html)))
	code := transpile.Document(html)
	span.SetAttributes(attribute.Int("transpile.output_lines", strings.Count(code, "\n")+1))
	span.End()

	s.metrics.transpileBytes.Observe(float64(len(html)))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, code); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok\n")
}

// clientError writes an error message as plain text and logs it.
func (s *Server) clientError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("client error", "status", status, "err", err)
	s.metrics.clientErrors.Inc()
	http.Error(w, err.Error(), status)
}
