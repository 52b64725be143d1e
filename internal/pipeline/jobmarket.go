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

// LookupJobs builds a job market snapshot for the career path at the given
// index and commits it to the per-path cache. An empty location falls back
// to DefaultLocation.
func (p *Pipeline) LookupJobs(ctx context.Context, index int, location string) (store.JobMarketEntry, error) {
	path, err := p.store.CareerPath(index)
	if err != nil {
		return store.JobMarketEntry{}, err
	}

	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultLocation
	}

	p.store.BeginJobMarket(index)
	p.emit("jobs", fmt.Sprintf("Searching job listings for %s...", path.Title), nil)

	prompt := prompts.Stage("search-jobs", map[string]string{
		"CareerTitle": path.Title,
		"Location":    location,
	})

	snapshot, truncated, err := completeStage[types.JobMarketSnapshot](ctx, p.client, prompt, maxTokensJobs, schemas.StageJobMarket, "job market")
	if err != nil {
		p.store.FailJobMarket(index)
		return p.store.JobMarket(index), err
	}

	p.store.CompleteJobMarket(index, snapshot, truncated)
	entry := p.store.JobMarket(index)
	p.emit("jobs", fmt.Sprintf("Job market data ready for %s", path.Title), entry)
	return entry, nil
}

// BackToSkills returns the flow to skill review, discarding career paths and
// both per-path caches.
func (p *Pipeline) BackToSkills() {
	p.store.BackToSkillReview()
}

// Reset clears the session back to the upload step.
func (p *Pipeline) Reset() {
	p.store.Reset()
}
