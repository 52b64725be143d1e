package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/career-navigator/internal/pipeline"
)

// Registry maps session ids to their pipelines. Each session owns an
// isolated store; sessions live for the process lifetime unless deleted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*pipeline.Pipeline
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*pipeline.Pipeline)}
}

// Create registers a pipeline under a fresh session id.
func (r *Registry) Create(p *pipeline.Pipeline) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = p
	r.mu.Unlock()
	return id
}

// Get returns the pipeline for a session id.
func (r *Registry) Get(id string) (*pipeline.Pipeline, error) {
	r.mu.RLock()
	p, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &ErrSessionNotFound{ID: id}
	}
	return p, nil
}

// Delete removes a session.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return &ErrSessionNotFound{ID: id}
	}
	delete(r.sessions, id)
	return nil
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
