package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewManualSkill(t *testing.T) {
	skill := NewManualSkill("  Kubernetes  ")

	if skill.Name != "Kubernetes" {
		t.Errorf("Name = %q, want %q", skill.Name, "Kubernetes")
	}
	if skill.Category != CategoryHardSkills {
		t.Errorf("Category = %q, want %q", skill.Category, CategoryHardSkills)
	}
	if skill.Level != LevelIntermediate {
		t.Errorf("Level = %q, want %q", skill.Level, LevelIntermediate)
	}
	if skill.Type != TypeCoreCompetency {
		t.Errorf("Type = %q, want %q", skill.Type, TypeCoreCompetency)
	}
}

func TestNewLightcastID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewLightcastID()
		if !strings.HasPrefix(id, "KS") {
			t.Fatalf("ID %q does not start with KS", id)
		}
		if len(id) != 20 {
			t.Fatalf("ID %q has length %d, want 20", id, len(id))
		}
		for _, ch := range id {
			if !strings.ContainsRune(lightcastIDCharset, ch) {
				t.Fatalf("ID %q contains unexpected character %q", id, ch)
			}
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Error("expected distinct IDs across calls")
	}
}

func TestSkillConfidenceZeroSurvivesSerialization(t *testing.T) {
	var skill Skill
	if err := json.Unmarshal([]byte(`{"name": "Go (Programming Language)", "confidence": 0}`), &skill); err != nil {
		t.Fatal(err)
	}
	if skill.Confidence == nil || *skill.Confidence != 0 {
		t.Fatalf("Confidence = %v, want pointer to 0", skill.Confidence)
	}

	encoded, err := json.Marshal(skill)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(encoded), `"confidence":0`) {
		t.Errorf("encoded skill %s drops the zero confidence", encoded)
	}

	// A skill with no reported confidence stays absent on the wire.
	encoded, err = json.Marshal(Skill{Name: "Leadership"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(encoded), "confidence") {
		t.Errorf("encoded skill %s invents a confidence field", encoded)
	}
}

func TestSkillSetField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		check   func(Skill) bool
	}{
		{
			name:  "update name",
			field: "name",
			value: "Go (Programming Language)",
			check: func(s Skill) bool { return s.Name == "Go (Programming Language)" },
		},
		{
			name:  "update level",
			field: "level",
			value: LevelExpert,
			check: func(s Skill) bool { return s.Level == LevelExpert },
		},
		{
			name:  "update category",
			field: "category",
			value: CategorySoftSkills,
			check: func(s Skill) bool { return s.Category == CategorySoftSkills },
		},
		{
			name:  "update type",
			field: "type",
			value: TypeCommonSkill,
			check: func(s Skill) bool { return s.Type == TypeCommonSkill },
		},
		{
			name:    "non-editable field",
			field:   "lightcastId",
			value:   "KS000",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skill := NewManualSkill("Python")
			err := skill.SetField(tt.field, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(skill) {
				t.Errorf("field %q not updated, got %+v", tt.field, skill)
			}
		})
	}
}
