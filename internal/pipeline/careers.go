package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/career-navigator/internal/prompts"
	"github.com/jonathan/career-navigator/internal/schemas"
	"github.com/jonathan/career-navigator/internal/types"
)

// MatchCareers runs career matching over the finalized skill set and commits
// the result. The store stable-sorts by match and discards both per-path
// caches on commit. On any failure the previously committed paths are left
// untouched.
func (p *Pipeline) MatchCareers(ctx context.Context) ([]types.CareerPath, error) {
	skills := p.store.Skills()
	if len(skills) == 0 {
		return nil, fmt.Errorf("at least one skill is required to match career paths")
	}

	encoded, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode skills: %w", err)
	}

	prompt := prompts.Stage("match-careers", map[string]string{
		"Skills": string(encoded),
	})

	p.emit("careers", "Matching career paths...", nil)
	paths, _, err := completeStage[[]types.CareerPath](ctx, p.client, prompt, maxTokensCareers, schemas.StageCareerPaths, "career paths")
	if err != nil {
		return nil, err
	}

	p.store.ReplaceCareerPaths(*paths)
	committed := p.store.CareerPaths()
	p.emit("careers", fmt.Sprintf("Found %d career paths", len(committed)), committed)
	return committed, nil
}
