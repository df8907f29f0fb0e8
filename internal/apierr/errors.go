// Package apierr maps domain errors onto HTTP responses for the API server.
//
// Handlers wrap lookup failures with ErrNotFound and malformed bodies with
// ErrBadRequest using fmt.Errorf("%s: %w", msg, sentinel). Status and Message
// then classify any error returned by the generator packages.
package apierr

import (
	"errors"
	"net/http"

	"github.com/alnah/go-promptgen/internal/form"
	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
	"github.com/alnah/go-promptgen/internal/tool"
)

// Sentinel errors raised by the HTTP layer itself.
var (
	// ErrNotFound indicates an unknown route parameter (kind, template).
	ErrNotFound = errors.New("not found")

	// ErrBadRequest indicates a body that could not be read or decoded.
	ErrBadRequest = errors.New("bad request")
)

// Status returns the HTTP status code for err.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound), errors.Is(err, template.ErrUnknown):
		return http.StatusNotFound
	case errors.Is(err, form.ErrMissingField), errors.Is(err, form.ErrInvalidChoice):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadRequest), errors.Is(err, request.ErrInvalidInput), errors.Is(err, tool.ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err.
// Client errors carry the wrapped detail; server errors stay generic so
// internals never leak into responses.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if Status(err) >= http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}
