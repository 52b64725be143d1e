package parsing

import (
	"errors"
	"strings"
	"testing"
)

type pathwayDoc struct {
	Timeline      string `json:"timeline"`
	LearningSteps []struct {
		Step  int    `json:"step"`
		Title string `json:"title"`
	} `json:"learningSteps"`
}

func TestDecodeValid(t *testing.T) {
	input := `{"timeline": "3-6 months", "learningSteps": [{"step": 1, "title": "Foundations"}]}`

	doc, err := Decode[pathwayDoc](input, "learning pathway")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if doc.Timeline != "3-6 months" {
		t.Errorf("Timeline = %q, want %q", doc.Timeline, "3-6 months")
	}
	if len(doc.LearningSteps) != 1 || doc.LearningSteps[0].Title != "Foundations" {
		t.Errorf("LearningSteps = %+v", doc.LearningSteps)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated object", `{"timeline": "3 months", "learningSteps": [{"step": 1,`},
		{"not json at all", `no skills found`},
		{"trailing garbage", `{"timeline": "x"} and then some`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode[pathwayDoc](tt.input, "learning pathway")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if doc != nil {
				t.Errorf("expected nil value on failure, got %+v", doc)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if parseErr.Context != "learning pathway" {
				t.Errorf("Context = %q, want %q", parseErr.Context, "learning pathway")
			}
			if !strings.Contains(err.Error(), "learning pathway") {
				t.Errorf("error message %q missing context", err.Error())
			}
		})
	}
}

func TestDecodeDeterministicFailure(t *testing.T) {
	input := `[{"name": "Python"}, {"name": "Ja`

	_, err1 := Decode[[]map[string]string](input, "skill list")
	_, err2 := Decode[[]map[string]string](input, "skill list")

	if err1 == nil || err2 == nil {
		t.Fatal("expected both decodes to fail")
	}
	if err1.Error() != err2.Error() {
		t.Errorf("failure not deterministic: %q vs %q", err1.Error(), err2.Error())
	}
}

func TestLineCol(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{"start of text", "abc", 0, 1, 1},
		{"single line", `{"a": }`, 6, 1, 7},
		{"second line", "{\n  \"a\": }", 9, 2, 8},
		{"after several lines", "{\n\n\n}", 4, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := lineCol(tt.text, tt.offset)
			if line != tt.wantLine || col != tt.wantCol {
				t.Errorf("lineCol() = (%d, %d), want (%d, %d)", line, col, tt.wantLine, tt.wantCol)
			}
		})
	}
}
