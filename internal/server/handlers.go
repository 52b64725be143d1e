package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/career-navigator/internal/ingestion"
	"github.com/jonathan/career-navigator/internal/pipeline"
	"github.com/jonathan/career-navigator/internal/store"
)

// maxUploadBytes bounds resume file uploads.
const maxUploadBytes = 10 << 20

// analyzeRequest is the body for text-based analysis endpoints.
type analyzeRequest struct {
	Text string `json:"text"`
}

// addSkillRequest is the body for manual skill additions.
type addSkillRequest struct {
	Name string `json:"name"`
}

// updateSkillRequest is the body for single-field skill edits.
type updateSkillRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// cacheEntryResponse is the wire shape for on-demand stage results. State,
// truncation, and emptiness ride along so the UI can render warning and
// empty states.
type cacheEntryResponse struct {
	State     store.CacheState `json:"state"`
	Truncated bool             `json:"truncated"`
	Empty     bool             `json:"empty"`
	Pathway   any              `json:"pathway,omitempty"`
	JobMarket any              `json:"jobMarket,omitempty"`
}

// newPipeline creates a session-scoped pipeline over the shared client.
func (s *Server) newPipeline() *pipeline.Pipeline {
	return pipeline.New(s.client, store.New(), s.verbose)
}

// session resolves the pipeline for the request's session id.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*pipeline.Pipeline, bool) {
	pipe, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return nil, false
	}
	return pipe, true
}

// pathIndex parses the {index} path segment.
func pathIndex(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("index"))
}

// handleCreateSession starts a new session with an empty store.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	id := s.sessions.Create(s.newPipeline())
	s.jsonResponse(w, http.StatusCreated, map[string]string{"session_id": id})
}

// handleGetSession returns the session's full state snapshot.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, pipe.Store().Snapshot())
}

// handleDeleteSession removes a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.PathValue("id")); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleResetSession clears the session back to the upload step.
func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}
	pipe.Reset()
	s.jsonResponse(w, http.StatusOK, pipe.Store().Snapshot())
}

// handleAnalyzeResume runs the analysis stages over pasted resume text.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := pipe.Analyze(r.Context(), req.Text); err != nil {
		s.handleError(w, err)
		return
	}

	s.writeAnalysisResult(w, pipe)
}

// handleUploadResume extracts text from an uploaded file and runs analysis.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read file")
		return
	}

	text, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		s.handleError(w, err)
		return
	}

	if err := pipe.Analyze(r.Context(), text); err != nil {
		s.handleError(w, err)
		return
	}

	s.writeAnalysisResult(w, pipe)
}

// handleAnalyzeStream runs analysis while streaming per-stage progress as
// server-sent events.
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	pipe.SetOnProgress(func(event pipeline.ProgressEvent) {
		sse.WriteEvent("progress", event) //nolint:errcheck
	})
	defer pipe.SetOnProgress(nil)

	if err := pipe.Analyze(r.Context(), req.Text); err != nil {
		sse.WriteError(err.Error())
		return
	}

	snapshot := pipe.Store().Snapshot()
	sse.WriteComplete(map[string]any{
		"step":    snapshot.Step,
		"contact": snapshot.Contact,
		"skills":  snapshot.Skills,
	})
}

// writeAnalysisResult responds with the post-analysis session state.
func (s *Server) writeAnalysisResult(w http.ResponseWriter, pipe *pipeline.Pipeline) {
	snapshot := pipe.Store().Snapshot()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"step":    snapshot.Step,
		"contact": snapshot.Contact,
		"skills":  snapshot.Skills,
	})
}

// handleAddSkill appends a manually entered skill.
func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	var req addSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	skill, err := pipe.Store().AddSkill(req.Name)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, skill)
}

// handleUpdateSkill edits a single field of a skill.
func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	index, err := pathIndex(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid skill index")
		return
	}

	var req updateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := pipe.Store().UpdateSkill(index, req.Field, req.Value); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": pipe.Store().Skills()})
}

// handleRemoveSkill deletes a skill by position.
func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	index, err := pathIndex(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid skill index")
		return
	}

	if err := pipe.Store().RemoveSkill(index); err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": pipe.Store().Skills()})
}

// handleMatchCareers runs career matching over the reviewed skill set.
func (s *Server) handleMatchCareers(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	paths, err := pipe.MatchCareers(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"step":        pipe.Store().Step(),
		"careerPaths": paths,
	})
}

// handleCareersBack returns to skill review, discarding paths and caches.
func (s *Server) handleCareersBack(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	pipe.BackToSkills()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"step":   pipe.Store().Step(),
		"skills": pipe.Store().Skills(),
	})
}

// handleGeneratePathway builds the learning pathway for one career path.
func (s *Server) handleGeneratePathway(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	index, err := pathIndex(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid career path index")
		return
	}

	entry, err := pipe.GeneratePathway(r.Context(), index)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, cacheEntryResponse{
		State:     entry.State,
		Truncated: entry.Truncated,
		Empty:     entry.Pathway.IsEmpty(),
		Pathway:   entry.Pathway,
	})
}

// handleLookupJobs builds the job market snapshot for one career path.
func (s *Server) handleLookupJobs(w http.ResponseWriter, r *http.Request) {
	pipe, ok := s.session(w, r)
	if !ok {
		return
	}

	index, err := pathIndex(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid career path index")
		return
	}

	entry, err := pipe.LookupJobs(r.Context(), index, r.URL.Query().Get("location"))
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, cacheEntryResponse{
		State:     entry.State,
		Truncated: entry.Truncated,
		Empty:     entry.Snapshot.IsEmpty(),
		JobMarket: entry.Snapshot,
	})
}

// handleSampleResume serves the built-in sample resume text.
func (s *Server) handleSampleResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": SampleResume})
}
