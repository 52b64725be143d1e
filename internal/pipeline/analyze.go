package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-navigator/internal/parsing"
	"github.com/jonathan/career-navigator/internal/prompts"
	"github.com/jonathan/career-navigator/internal/schemas"
	"github.com/jonathan/career-navigator/internal/types"
)

// Analyze runs the resume analysis stages: contact extraction and skill
// extraction run concurrently, then the extracted skill names are mapped to
// the taxonomy. On success the mapped skills are committed and the flow
// advances to skill review. Contact extraction is non-critical enrichment
// and is never allowed to block progress: its failures are logged and
// swallowed.
func (p *Pipeline) Analyze(ctx context.Context, resumeText string) error {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return fmt.Errorf("resume text is required")
	}

	p.store.SetResumeText(resumeText)

	var rawSkills []string

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p.emit("contact", "Extracting contact details...", nil)
		contact, err := p.extractContact(gCtx, resumeText)
		if err != nil {
			log.Printf("[pipeline] contact extraction failed (ignored): %v", err)
			return nil
		}
		if !contact.IsZero() {
			p.store.SetContact(*contact)
		}
		return nil
	})

	g.Go(func() error {
		p.emit("skills", "Extracting skills from resume...", nil)
		skills, err := p.extractSkills(gCtx, resumeText)
		if err != nil {
			return err
		}
		rawSkills = skills
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	p.emit("mapping", "Mapping skills to the taxonomy...", nil)
	mapped, err := p.mapSkills(ctx, rawSkills, resumeText)
	if err != nil {
		return err
	}

	p.store.ReplaceSkills(mapped)
	p.emit("mapping", fmt.Sprintf("Mapped %d skills", len(mapped)), mapped)
	return nil
}

// extractContact pulls best-effort contact details from the resume.
func (p *Pipeline) extractContact(ctx context.Context, resumeText string) (*types.ContactInfo, error) {
	prompt := prompts.Stage("extract-contact", map[string]string{
		"ResumeText": resumeText,
	})

	contact, _, err := completeStage[types.ContactInfo](ctx, p.client, prompt, maxTokensContact, schemas.StageContact, "contact info")
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// extractSkills returns the raw skill names found in the resume.
func (p *Pipeline) extractSkills(ctx context.Context, resumeText string) ([]string, error) {
	prompt := prompts.Stage("extract-skills", map[string]string{
		"ResumeText": resumeText,
	})

	skills, _, err := completeStage[[]string](ctx, p.client, prompt, maxTokensExtract, schemas.StageRawSkills, "skill list")
	if err != nil {
		return nil, err
	}
	return *skills, nil
}

// mapSkills normalizes raw skill names to taxonomy records. The resume
// prefix rides along for evidence and proficiency context.
func (p *Pipeline) mapSkills(ctx context.Context, rawSkills []string, resumeText string) ([]types.Skill, error) {
	encoded, err := json.Marshal(rawSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode skill names: %w", err)
	}

	prompt := prompts.Stage("map-skills", map[string]string{
		"Skills":        string(encoded),
		"ResumeExcerpt": truncate(resumeText, resumeExcerptLimit),
	})

	mapped, _, err := completeStage[[]types.Skill](ctx, p.client, prompt, maxTokensMapping, schemas.StageMappedSkills, "mapped skills")
	if err != nil {
		var shapeErr *parsing.ShapeError
		if errors.As(err, &shapeErr) {
			return nil, &parsing.ShapeError{
				Context:  "mapped skills",
				Expected: "a non-empty skill array; check your resume format and try again",
			}
		}
		return nil, err
	}
	return *mapped, nil
}
