// Package llm - extract.go isolates JSON values from free-form completions.
package llm

import "strings"

// ExtractJSON isolates one balanced top-level JSON value (object or array)
// from a raw completion. Completions are frequently wrapped in prose or
// markdown fences and may be truncated by the token ceiling, so this never
// fails: when no JSON value can be found the cleaned input is returned
// unchanged and the downstream parse reports the precise failure. Calling
// ExtractJSON on its own output is a no-op.
func ExtractJSON(raw string) string {
	cleaned := CleanJSONBlock(raw)

	objStart := strings.IndexByte(cleaned, '{')
	arrStart := strings.IndexByte(cleaned, '[')

	start := objStart
	openCh, closeCh := byte('{'), byte('}')
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start = arrStart
		openCh, closeCh = '[', ']'
	}
	if start < 0 {
		return cleaned
	}

	end := scanBalanced(cleaned, start, openCh, closeCh)
	if end < 0 {
		// Truncated output: best effort, let the parser report the failure.
		return cleaned[start:]
	}
	return cleaned[start : end+1]
}

// scanBalanced walks forward from start tracking nesting depth for the given
// bracket pair. Brackets inside string literals do not affect depth; a
// backslash escapes the next character so an escaped quote does not toggle
// the string flag. Returns the index of the closing bracket, or -1 if depth
// never returns to zero.
func scanBalanced(s string, start int, openCh, closeCh byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}

		switch {
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
			// Structural characters inside strings are data.
		case ch == openCh:
			depth++
		case ch == closeCh:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
