package parsing

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
)

// excerptRadius bounds the diagnostic excerpt logged around a failure offset.
const excerptRadius = 80

// Decode parses jsonText into T. It never returns a partially-built value:
// on any decoder failure the result is nil and a ParseError carrying the
// stage context. The excerpt around the failure offset is logged with line
// and column, as a diagnostic side effect only.
func Decode[T any](jsonText, context string) (*T, error) {
	var value T
	if err := json.Unmarshal([]byte(jsonText), &value); err != nil {
		logFailureExcerpt(jsonText, context, err)
		return nil, &ParseError{
			Context: context,
			Message: err.Error(),
			Cause:   err,
		}
	}
	return &value, nil
}

// logFailureExcerpt logs a bounded excerpt around the decoder's reported
// offset, with the line and column of the failure.
func logFailureExcerpt(jsonText, context string, err error) {
	offset := int64(-1)

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}

	if offset < 0 || offset > int64(len(jsonText)) {
		log.Printf("[parsing] %s: %v (no offset available, input length %d)", context, err, len(jsonText))
		return
	}

	line, col := lineCol(jsonText, int(offset))

	start := int(offset) - excerptRadius
	if start < 0 {
		start = 0
	}
	end := int(offset) + excerptRadius
	if end > len(jsonText) {
		end = len(jsonText)
	}

	log.Printf("[parsing] %s: %v at line %d, column %d; excerpt: %q", context, err, line, col, jsonText[start:end])
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(text string, offset int) (line, col int) {
	prefix := text[:offset]
	line = strings.Count(prefix, "\n") + 1
	if idx := strings.LastIndexByte(prefix, '\n'); idx >= 0 {
		col = offset - idx
	} else {
		col = offset + 1
	}
	return line, col
}
