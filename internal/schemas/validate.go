// Package schemas provides JSON Schema shape validation for parsed stage
// output. Schemas are embedded at compile time.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Stage identifies the pipeline stage whose output shape is being checked.
type Stage string

// Stage constants map to the embedded schema files.
const (
	StageRawSkills    Stage = "raw_skills"
	StageMappedSkills Stage = "mapped_skills"
	StageCareerPaths  Stage = "career_paths"
	StagePathway      Stage = "pathway"
	StageJobMarket    Stage = "job_market"
	StageContact      Stage = "contact"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Stage  Stage
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s validation failed:\n", ve.Stage))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Expected summarizes the violated expectations as a one-line description.
func (ve *ValidationError) Expected() string {
	parts := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(parts, "; ")
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Stage   Stage
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s schema: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s schema: %s", e.Stage, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateStage validates parsed stage output (as JSON text) against the
// stage's embedded schema. Returns nil when valid, a *ValidationError when
// the shape is wrong, and a *SchemaLoadError when the schema itself cannot
// be loaded.
func ValidateStage(stage Stage, jsonContent string) error {
	schemaContent, err := schemaFiles.ReadFile(string(stage) + ".schema.json")
	if err != nil {
		return &SchemaLoadError{
			Stage:   stage,
			Message: "no embedded schema for stage",
			Cause:   err,
		}
	}

	schemaLoader := gojsonschema.NewStringLoader(string(schemaContent))
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Stage:   stage,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Stage:  stage,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
