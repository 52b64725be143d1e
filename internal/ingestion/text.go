// Package ingestion turns uploaded resume files into clean plain text the
// analysis stages can work with.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRE = regexp.MustCompile(`\s+`)
	blankRunsRE  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes resume text while preserving structure: line endings
// become LF, runs of spaces collapse, headings and bullet lists survive, and
// blank-line runs shrink to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunsRE.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Markdown headings keep their markers, indentation dropped.
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	// Bullet items keep their indentation and marker.
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + trimmed
	}

	indent := len(line) - len(trimmed)
	content := multiSpaceRE.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}
