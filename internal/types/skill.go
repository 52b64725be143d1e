// Package types provides type definitions for structured data used throughout the career-navigator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Skill categories used by the Lightcast taxonomy mapping.
const (
	CategoryHardSkills     = "Hard Skills"
	CategorySoftSkills     = "Soft Skills"
	CategorySoftware       = "Software and Applications"
	CategorySpecialized    = "Specialized Skills"
	CategoryCertifications = "Certifications"
)

// Proficiency levels.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// Lightcast skill types.
const (
	TypeSpecializedKnowledge = "Specialized Knowledge"
	TypeCoreCompetency       = "Core Competency"
	TypeCommonSkill          = "Common Skill"
)

// Skill represents a competency normalized to the Lightcast taxonomy.
// Duplicate names are permitted: skills originate from free-text inference
// and may legitimately repeat under user edits.
type Skill struct {
	Name        string `json:"name"`
	LightcastID string `json:"lightcastId"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Type        string `json:"type"`
	Definition  string `json:"definition,omitempty"`
	Evidence    string `json:"evidence,omitempty"`
	// Confidence is a pointer so a reported score of 0 survives
	// serialization instead of collapsing into "not reported".
	Confidence *int `json:"confidence,omitempty"`
}

// EditableSkillFields lists the fields that can be updated in place on a
// skill. Other fields are only set by the mapping stage.
var EditableSkillFields = map[string]bool{
	"name":     true,
	"category": true,
	"level":    true,
	"type":     true,
}

// NewManualSkill creates a skill for a user-typed name with a synthesized
// taxonomy ID and mid-level defaults.
func NewManualSkill(name string) Skill {
	return Skill{
		Name:        strings.TrimSpace(name),
		LightcastID: NewLightcastID(),
		Category:    CategoryHardSkills,
		Level:       LevelIntermediate,
		Type:        TypeCoreCompetency,
	}
}

const lightcastIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewLightcastID synthesizes a plausible Lightcast skill ID: "KS" followed
// by 18 uppercase alphanumeric characters.
func NewLightcastID() string {
	var sb strings.Builder
	sb.WriteString("KS")
	for i := 0; i < 18; i++ {
		sb.WriteByte(lightcastIDCharset[rand.IntN(len(lightcastIDCharset))])
	}
	return sb.String()
}

// SetField updates a single editable field by name.
func (s *Skill) SetField(field, value string) error {
	switch field {
	case "name":
		s.Name = value
	case "category":
		s.Category = value
	case "level":
		s.Level = value
	case "type":
		s.Type = value
	default:
		return fmt.Errorf("field %q is not editable", field)
	}
	return nil
}
