// Package pipeline orchestrates the dependent completion stages: contact
// extraction, skill extraction, taxonomy mapping, career matching, and the
// per-path pathway and job market lookups. Each stage builds a prompt from
// current store state, calls the completion client, feeds the response
// through the extractor and parser, validates shape, and commits to the
// domain model store.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/jonathan/career-navigator/internal/llm"
	"github.com/jonathan/career-navigator/internal/parsing"
	"github.com/jonathan/career-navigator/internal/schemas"
	"github.com/jonathan/career-navigator/internal/store"
)

// Per-stage completion token budgets.
const (
	maxTokensContact = 500
	maxTokensExtract = 2000
	maxTokensMapping = 3000
	maxTokensCareers = 4000
	maxTokensPathway = 3000
	maxTokensJobs    = 3000
)

// resumeExcerptLimit bounds the resume prefix included in the taxonomy
// mapping prompt for evidence lookup.
const resumeExcerptLimit = 6000

// DefaultLocation is used for job market lookups when the user gives none.
const DefaultLocation = "United States"

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Pipeline wires the completion client to the domain model store. It never
// holds stage output across calls; the store is the sole owner.
type Pipeline struct {
	client  llm.Client
	store   *store.Store
	verbose bool

	progressMu sync.Mutex
	onProgress ProgressCallback
}

// New creates a pipeline over the given client and store.
func New(client llm.Client, st *store.Store, verbose bool) *Pipeline {
	return &Pipeline{
		client:  client,
		store:   st,
		verbose: verbose,
	}
}

// Store returns the domain model store the pipeline commits to.
func (p *Pipeline) Store() *store.Store {
	return p.store
}

// SetOnProgress installs the callback invoked for per-stage progress, or
// removes it when cb is nil. Stages run on their own goroutines, so the
// callback may be swapped while an analysis is in flight.
func (p *Pipeline) SetOnProgress(cb ProgressCallback) {
	p.progressMu.Lock()
	p.onProgress = cb
	p.progressMu.Unlock()
}

func (p *Pipeline) emit(stage, message string, content any) {
	if p.verbose {
		fmt.Printf("[%s] %s\n", stage, message)
	}
	p.progressMu.Lock()
	cb := p.onProgress
	p.progressMu.Unlock()
	if cb != nil {
		cb(ProgressEvent{Stage: stage, Message: message, Content: content})
	}
}

// completeStage runs one completion and feeds the response through the
// extractor, the resilient parser, and shape validation. The decoded value
// is returned with the truncation flag; every failure carries its stage
// context.
func completeStage[T any](ctx context.Context, client llm.Client, prompt string, maxTokens int, stage schemas.Stage, stageName string) (*T, bool, error) {
	completion, err := client.Complete(ctx, prompt, maxTokens)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", stageName, err)
	}

	jsonText := llm.ExtractJSON(completion.Text)

	value, err := parsing.Decode[T](jsonText, stageName)
	if err != nil {
		return nil, completion.Truncated, err
	}

	if err := schemas.ValidateStage(stage, jsonText); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, completion.Truncated, &parsing.ShapeError{
				Context:  stageName,
				Expected: validationErr.Expected(),
			}
		}
		return nil, completion.Truncated, err
	}

	return value, completion.Truncated, nil
}

// truncate bounds a string to at most max bytes, backing the cut up to a
// rune boundary so a multi-byte character is never split.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
