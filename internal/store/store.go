// Package store owns the mutable, user-editable domain model: skills,
// career paths, and the per-path pathway and job market caches. All
// invariants (sort order, cache invalidation on regeneration) are enforced
// here rather than scattered across call sites.
package store

import (
	"fmt"
	"sync"

	"github.com/jonathan/career-navigator/internal/types"
)

// UI steps of the linear flow.
const (
	StepUploadResume = 1
	StepReviewSkills = 2
	StepCareerPaths  = 3
)

// CacheState is the per-entry lifecycle of an on-demand stage result.
type CacheState string

// Cache states. "Requested but failed" is explicitly distinct from
// "not yet requested" and from "present".
const (
	StateUncomputed  CacheState = "uncomputed"
	StateLoading     CacheState = "loading"
	StatePopulated   CacheState = "populated"
	StateFailedEmpty CacheState = "failed"
)

// PathwayEntry is one keyed cache entry for a learning pathway.
type PathwayEntry struct {
	State     CacheState             `json:"state"`
	Pathway   *types.LearningPathway `json:"pathway,omitempty"`
	Truncated bool                   `json:"truncated,omitempty"`
}

// JobMarketEntry is one keyed cache entry for a job market snapshot.
type JobMarketEntry struct {
	State     CacheState               `json:"state"`
	Snapshot  *types.JobMarketSnapshot `json:"snapshot,omitempty"`
	Truncated bool                     `json:"truncated,omitempty"`
}

// Store is the sole mutable owner of the domain model. All mutations are
// synchronous and immediately consistent for any subsequent read. The
// pipeline only proposes replacement values; it never holds its own copy
// across calls.
type Store struct {
	mu          sync.Mutex
	step        int
	resumeText  string
	contact     *types.ContactInfo
	skills      []types.Skill
	careerPaths []types.CareerPath
	pathways    map[int]*PathwayEntry
	jobMarkets  map[int]*JobMarketEntry
}

// New creates an empty store at the upload step.
func New() *Store {
	return &Store{
		step:       StepUploadResume,
		pathways:   make(map[int]*PathwayEntry),
		jobMarkets: make(map[int]*JobMarketEntry),
	}
}

// Step returns the current UI step.
func (s *Store) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// SetResumeText records the resume text the pipeline is working from.
func (s *Store) SetResumeText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumeText = text
}

// ResumeText returns the recorded resume text.
func (s *Store) ResumeText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumeText
}

// SetContact commits best-effort contact details.
func (s *Store) SetContact(contact types.ContactInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := contact
	s.contact = &c
}

// Contact returns the extracted contact details, or nil.
func (s *Store) Contact() *types.ContactInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contact == nil {
		return nil
	}
	c := *s.contact
	return &c
}

// Skills returns a copy of the current skill collection.
func (s *Store) Skills() []types.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Skill, len(s.skills))
	copy(out, s.skills)
	return out
}

// SkillCount returns the number of skills.
func (s *Store) SkillCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.skills)
}

// AddSkill appends a manually entered skill with synthesized defaults.
func (s *Store) AddSkill(name string) (types.Skill, error) {
	skill := types.NewManualSkill(name)
	if skill.Name == "" {
		return types.Skill{}, fmt.Errorf("skill name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = append(s.skills, skill)
	return skill, nil
}

// RemoveSkill deletes the skill at the given position. Career path indices
// are unaffected: paths are only ever wholesale-replaced after a fresh
// skill set is finalized.
func (s *Store) RemoveSkill(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.skills) {
		return fmt.Errorf("skill index %d out of range", index)
	}
	s.skills = append(s.skills[:index], s.skills[index+1:]...)
	return nil
}

// UpdateSkill sets a single editable field on the skill at the given position.
func (s *Store) UpdateSkill(index int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.skills) {
		return fmt.Errorf("skill index %d out of range", index)
	}
	return s.skills[index].SetField(field, value)
}

// ReplaceSkills commits a freshly mapped skill collection and advances the
// flow to skill review.
func (s *Store) ReplaceSkills(skills []types.Skill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = make([]types.Skill, len(skills))
	copy(s.skills, skills)
	s.step = StepReviewSkills
}

// CareerPaths returns a copy of the committed career paths.
func (s *Store) CareerPaths() []types.CareerPath {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.CareerPath, len(s.careerPaths))
	copy(out, s.careerPaths)
	return out
}

// CareerPath returns the path at the given index.
func (s *Store) CareerPath(index int) (types.CareerPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.careerPaths) {
		return types.CareerPath{}, fmt.Errorf("career path index %d out of range", index)
	}
	return s.careerPaths[index], nil
}

// ReplaceCareerPaths commits a freshly matched path collection. The
// collection is stable-sorted descending by match before commit, both
// per-index caches are discarded (stale entries would misattribute
// pathways or listings to a changed path list), and the flow advances to
// the career paths step.
func (s *Store) ReplaceCareerPaths(paths []types.CareerPath) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.careerPaths = make([]types.CareerPath, len(paths))
	copy(s.careerPaths, paths)
	types.SortCareerPathsByMatch(s.careerPaths)
	s.pathways = make(map[int]*PathwayEntry)
	s.jobMarkets = make(map[int]*JobMarketEntry)
	s.step = StepCareerPaths
}

// BackToSkillReview discards the career paths and both caches and returns
// to the skill review step. Partial reuse is deliberately not attempted.
func (s *Store) BackToSkillReview() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.careerPaths = nil
	s.pathways = make(map[int]*PathwayEntry)
	s.jobMarkets = make(map[int]*JobMarketEntry)
	s.step = StepReviewSkills
}

// Reset discards everything and returns to the upload step.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepUploadResume
	s.resumeText = ""
	s.contact = nil
	s.skills = nil
	s.careerPaths = nil
	s.pathways = make(map[int]*PathwayEntry)
	s.jobMarkets = make(map[int]*JobMarketEntry)
}

// BeginPathway marks the pathway for a career path index as loading.
// Re-entry from any state is valid: a retry after failure or an explicit
// refresh of a populated entry both pass through Loading again.
func (s *Store) BeginPathway(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pathways[index] = &PathwayEntry{State: StateLoading}
}

// CompletePathway commits a parsed pathway. Last write wins: there is no
// request fencing, so a slower earlier invocation may overwrite a later one.
func (s *Store) CompletePathway(index int, pathway *types.LearningPathway, truncated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pathways[index] = &PathwayEntry{
		State:     StatePopulated,
		Pathway:   pathway,
		Truncated: truncated,
	}
}

// FailPathway records a failed fetch, distinct from "not yet requested".
func (s *Store) FailPathway(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pathways[index] = &PathwayEntry{State: StateFailedEmpty}
}

// Pathway returns the cache entry for a career path index. Absent keys
// report StateUncomputed.
func (s *Store) Pathway(index int) PathwayEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.pathways[index]; ok {
		return *entry
	}
	return PathwayEntry{State: StateUncomputed}
}

// BeginJobMarket marks the job market snapshot for an index as loading.
func (s *Store) BeginJobMarket(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobMarkets[index] = &JobMarketEntry{State: StateLoading}
}

// CompleteJobMarket commits a parsed snapshot (last write wins).
func (s *Store) CompleteJobMarket(index int, snapshot *types.JobMarketSnapshot, truncated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobMarkets[index] = &JobMarketEntry{
		State:     StatePopulated,
		Snapshot:  snapshot,
		Truncated: truncated,
	}
}

// FailJobMarket records a failed fetch.
func (s *Store) FailJobMarket(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobMarkets[index] = &JobMarketEntry{State: StateFailedEmpty}
}

// JobMarket returns the cache entry for a career path index. Absent keys
// report StateUncomputed.
func (s *Store) JobMarket(index int) JobMarketEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.jobMarkets[index]; ok {
		return *entry
	}
	return JobMarketEntry{State: StateUncomputed}
}

// Snapshot is a point-in-time copy of the domain model for rendering.
type Snapshot struct {
	Step        int                    `json:"step"`
	Contact     *types.ContactInfo     `json:"contact,omitempty"`
	Skills      []types.Skill          `json:"skills"`
	CareerPaths []types.CareerPath     `json:"careerPaths"`
	Pathways    map[int]PathwayEntry   `json:"pathways"`
	JobMarkets  map[int]JobMarketEntry `json:"jobMarkets"`
}

// Snapshot returns a copy of the current state for rendering.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Step:        s.step,
		Skills:      make([]types.Skill, len(s.skills)),
		CareerPaths: make([]types.CareerPath, len(s.careerPaths)),
		Pathways:    make(map[int]PathwayEntry, len(s.pathways)),
		JobMarkets:  make(map[int]JobMarketEntry, len(s.jobMarkets)),
	}
	copy(snap.Skills, s.skills)
	copy(snap.CareerPaths, s.careerPaths)
	for k, v := range s.pathways {
		snap.Pathways[k] = *v
	}
	for k, v := range s.jobMarkets {
		snap.JobMarkets[k] = *v
	}
	if s.contact != nil {
		c := *s.contact
		snap.Contact = &c
	}
	return snap
}
