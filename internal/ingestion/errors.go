package ingestion

import "fmt"

// AdapterError reports a file that could not be turned into resume text. The
// message is user-facing guidance, not an internal diagnostic.
type AdapterError struct {
	Filename string
	Message  string
}

func (e *AdapterError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s: %s", e.Filename, e.Message)
	}
	return e.Message
}
