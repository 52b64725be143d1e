// Package server provides the HTTP REST API for the career navigator.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-navigator/internal/ingestion"
	"github.com/jonathan/career-navigator/internal/llm"
	"github.com/jonathan/career-navigator/internal/parsing"
)

// ErrSessionNotFound indicates the session id is unknown
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Upstream completion failures map to 502 so clients can tell them apart
// from their own bad input; untyped errors come from input guards and
// report 400.
func HTTPStatus(err error) int {
	var (
		sessionErr *ErrSessionNotFound
		adapterErr *ingestion.AdapterError
		shapeErr   *parsing.ShapeError
		parseErr   *parsing.ParseError
		requestErr *llm.RequestError
	)

	switch {
	case errors.As(err, &sessionErr):
		return http.StatusNotFound
	case errors.As(err, &adapterErr):
		return http.StatusBadRequest
	case errors.As(err, &shapeErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &parseErr), errors.As(err, &requestErr):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}
