package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/career-navigator/internal/prompts"
	"github.com/jonathan/career-navigator/internal/schemas"
	"github.com/jonathan/career-navigator/internal/store"
	"github.com/jonathan/career-navigator/internal/types"
)

// GeneratePathway builds a learning pathway for the career path at the given
// index and commits it to the per-path cache. The entry moves through
// Loading and ends Populated or Failed; a populated entry may carry an empty
// step list, which the display layer renders as an empty state rather than
// an error.
func (p *Pipeline) GeneratePathway(ctx context.Context, index int) (store.PathwayEntry, error) {
	path, err := p.store.CareerPath(index)
	if err != nil {
		return store.PathwayEntry{}, err
	}
	if len(path.SkillsToLearn) == 0 {
		return store.PathwayEntry{}, fmt.Errorf("career path %q lists no skills to learn", path.Title)
	}

	p.store.BeginPathway(index)
	p.emit("pathway", fmt.Sprintf("Generating learning pathway for %s...", path.Title), nil)

	prompt := prompts.Stage("generate-pathway", map[string]string{
		"CareerTitle":   path.Title,
		"SkillsToLearn": strings.Join(path.SkillsToLearn, ", "),
		"CurrentSkills": joinSkillNames(p.store.Skills()),
	})

	pathway, truncated, err := completeStage[types.LearningPathway](ctx, p.client, prompt, maxTokensPathway, schemas.StagePathway, "learning pathway")
	if err != nil {
		p.store.FailPathway(index)
		return p.store.Pathway(index), err
	}

	p.store.CompletePathway(index, pathway, truncated)
	entry := p.store.Pathway(index)
	p.emit("pathway", fmt.Sprintf("Pathway ready for %s", path.Title), entry)
	return entry, nil
}

func joinSkillNames(skills []types.Skill) string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}
