// Package parsing provides resilient JSON decoding for completion output,
// with diagnostic context capture and a uniform failure signal.
package parsing

import "fmt"

// ParseError represents malformed JSON after extraction. It carries the
// stage context and the underlying decoder message; the logged excerpt is a
// diagnostic side effect and is never part of the error surface.
type ParseError struct {
	Context string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("failed to parse %s: %s", e.Context, e.Message)
	}
	return fmt.Sprintf("failed to parse %s", e.Context)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ShapeError represents well-formed JSON missing required fields or with the
// wrong arity. Expected describes what the stage required.
type ShapeError struct {
	Context  string
	Expected string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected %s shape: expected %s", e.Context, e.Expected)
}
