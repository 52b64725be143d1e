package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStage_RawSkills(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{"non-empty array", `["JavaScript", "Leadership"]`, true},
		{"empty array", `[]`, false},
		{"array of objects", `[{"name": "JavaScript"}]`, false},
		{"not an array", `{"skills": []}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStage(StageRawSkills, tt.content)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateStage_MappedSkills(t *testing.T) {
	valid := `[{"name": "Python (Programming Language)", "lightcastId": "KS1200364C9C1LK3V5Q1", "category": "Hard Skills", "level": "Advanced", "type": "Specialized Knowledge"}]`
	require.NoError(t, ValidateStage(StageMappedSkills, valid))

	missingLevel := `[{"name": "Python", "lightcastId": "KS1", "category": "Hard Skills", "type": "Specialized Knowledge"}]`
	err := ValidateStage(StageMappedSkills, missingLevel)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, StageMappedSkills, validationErr.Stage)
	assert.Contains(t, validationErr.Expected(), "level")
}

func TestValidateStage_CareerPaths(t *testing.T) {
	valid := `[{"title": "Software Developer", "socCode": "15-1252", "match": 85, "skillsToLearn": ["Go (Programming Language)"]}]`
	assert.NoError(t, ValidateStage(StageCareerPaths, valid))

	assert.Error(t, ValidateStage(StageCareerPaths, `[]`), "empty array must fail")
	assert.Error(t, ValidateStage(StageCareerPaths, `[{"socCode": "15-1252"}]`), "missing title must fail")
	assert.Error(t, ValidateStage(StageCareerPaths, `[{"title": "X", "match": 120, "skillsToLearn": []}]`), "match above 100 must fail")
}

func TestValidateStage_PathwayMinimalShape(t *testing.T) {
	// Truncation handling commits any top-level object, including one with
	// no learning steps; the display layer renders the empty state.
	assert.NoError(t, ValidateStage(StagePathway, `{"timeline": "3 months", "learningSteps": []}`))
	assert.NoError(t, ValidateStage(StagePathway, `{}`))
	assert.Error(t, ValidateStage(StagePathway, `["not", "an", "object"]`))
}

func TestValidateStage_JobMarket(t *testing.T) {
	valid := `{"totalEstimate": "1,500+", "sampleListings": [{"title": "Developer", "remote": true}], "insights": {"trending": "Growing"}}`
	assert.NoError(t, ValidateStage(StageJobMarket, valid))

	assert.Error(t, ValidateStage(StageJobMarket, `"just a string"`))
	assert.Error(t, ValidateStage(StageJobMarket, `{"sampleListings": "not an array"}`))
}

func TestValidateStage_UnknownStage(t *testing.T) {
	err := ValidateStage(Stage("bogus"), `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}
