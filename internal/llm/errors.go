package llm

import "fmt"

// RequestError represents a non-success HTTP status from the completion
// endpoint. The status code is surfaced verbatim to the user.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("completion request failed: %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("completion request failed: %d", e.Status)
}
