package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-navigator/internal/llm"
)

// fakeClient routes each prompt to a scripted response by substring match.
type fakeClient struct {
	responses map[string]llm.Completion
	errors    map[string]error
}

func (f *fakeClient) Complete(_ context.Context, prompt string, _ int) (llm.Completion, error) {
	for key, err := range f.errors {
		if strings.Contains(prompt, key) {
			return llm.Completion{}, err
		}
	}
	for key, resp := range f.responses {
		if strings.Contains(prompt, key) {
			return resp, nil
		}
	}
	return llm.Completion{}, fmt.Errorf("no scripted response for prompt")
}

func (f *fakeClient) Model() string { return "fake-model" }
func (f *fakeClient) Close() error  { return nil }

func analysisResponses() map[string]llm.Completion {
	return map[string]llm.Completion{
		"contact details":    {Text: `{"name": "Jane Doe", "email": "jane@example.com"}`},
		"extract all skills": {Text: `["Go", "Leadership"]`},
		"Map these skills":   {Text: `[{"name": "Go (Programming Language)", "lightcastId": "KS1", "category": "Hard Skills", "level": "Advanced", "type": "Specialized Knowledge"}, {"name": "Leadership", "lightcastId": "KS2", "category": "Soft Skills", "level": "Intermediate", "type": "Common Skill"}]`},
	}
}

func newTestServer(client llm.Client) *Server {
	return &Server{
		client:   client,
		sessions: NewRegistry(),
	}
}

func (s *Server) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, s *Server) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["session_id"])
	return body["session_id"]
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(&fakeClient{})
	id := createSession(t, s)

	rec := s.do(t, http.MethodGet, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var snapshot map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, float64(1), snapshot["step"])

	rec = s.do(t, http.MethodDelete, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownSessionIs404(t *testing.T) {
	s := newTestServer(&fakeClient{})

	rec := s.do(t, http.MethodPost, "/sessions/nope/careers", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyzeResume(t *testing.T) {
	s := newTestServer(&fakeClient{responses: analysisResponses()})
	id := createSession(t, s)

	rec := s.do(t, http.MethodPost, "/sessions/"+id+"/resume", map[string]string{
		"text": "Jane Doe\nSenior Engineer with Go experience.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Step    int `json:"step"`
		Contact *struct {
			Name string `json:"name"`
		} `json:"contact"`
		Skills []struct {
			Name string `json:"name"`
		} `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Step)
	require.NotNil(t, body.Contact)
	assert.Equal(t, "Jane Doe", body.Contact.Name)
	require.Len(t, body.Skills, 2)
	assert.Equal(t, "Go (Programming Language)", body.Skills[0].Name)
}

func TestAnalyzeResumeEmptyTextIs400(t *testing.T) {
	s := newTestServer(&fakeClient{})
	id := createSession(t, s)

	rec := s.do(t, http.MethodPost, "/sessions/"+id+"/resume", map[string]string{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeResumeUpstreamFailureIs502(t *testing.T) {
	s := newTestServer(&fakeClient{
		responses: map[string]llm.Completion{
			"contact details": {Text: `{"name": "Jane Doe"}`},
		},
		errors: map[string]error{
			"extract all skills": &llm.RequestError{Status: 500, Body: "overloaded"},
		},
	})
	id := createSession(t, s)

	rec := s.do(t, http.MethodPost, "/sessions/"+id+"/resume", map[string]string{"text": "resume"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "500")
}

func TestUploadResume(t *testing.T) {
	s := newTestServer(&fakeClient{responses: analysisResponses()})
	id := createSession(t, s)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Jane Doe\nSenior Engineer"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/resume/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Go (Programming Language)")
}

func TestUploadPDFIs400WithGuidance(t *testing.T) {
	s := newTestServer(&fakeClient{})
	id := createSession(t, s)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/resume/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PDF support coming soon")
}

func TestSkillReviewFlow(t *testing.T) {
	s := newTestServer(&fakeClient{responses: analysisResponses()})
	id := createSession(t, s)

	rec := s.do(t, http.MethodPost, "/sessions/"+id+"/resume", map[string]string{"text": "resume"})
	require.Equal(t, http.StatusOK, rec.Code)

	// Manual add
	rec = s.do(t, http.MethodPost, "/sessions/"+id+"/skills", map[string]string{"name": "Kubernetes"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kubernetes")
	assert.Contains(t, rec.Body.String(), `"lightcastId":"KS`)

	// Edit
	rec = s.do(t, http.MethodPut, "/sessions/"+id+"/skills/0", map[string]string{
		"field": "level", "value": "Expert",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Expert")

	// Non-editable field rejected
	rec = s.do(t, http.MethodPut, "/sessions/"+id+"/skills/0", map[string]string{
		"field": "lightcastId", "value": "KS000",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Remove
	rec = s.do(t, http.MethodDelete, "/sessions/"+id+"/skills/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Out of range
	rec = s.do(t, http.MethodDelete, "/sessions/"+id+"/skills/99", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCareerFlow(t *testing.T) {
	responses := analysisResponses()
	responses["career counselor"] = llm.Completion{Text: `[{"title": "Software Developer", "socCode": "15-1252", "match": 85, "skillsToLearn": ["Rust (Programming Language)"]}]`}
	responses["educational pathway"] = llm.Completion{Text: `{"timeline": "3 months", "difficulty": "Intermediate", "learningSteps": [{"step": 1, "title": "Rust basics", "duration": "2 weeks"}]}`}
	responses["job listings"] = llm.Completion{Text: `{"totalEstimate": "1,500+", "sampleListings": [{"title": "Developer", "company": "TechCorp"}]}`}

	s := newTestServer(&fakeClient{responses: responses})
	id := createSession(t, s)

	rec := s.do(t, http.MethodPost, "/sessions/"+id+"/resume", map[string]string{"text": "resume"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/sessions/"+id+"/careers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Software Developer")
	assert.Contains(t, rec.Body.String(), `"step":3`)

	rec = s.do(t, http.MethodPost, "/sessions/"+id+"/careers/0/pathway", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var pathwayBody cacheEntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pathwayBody))
	assert.Equal(t, "populated", string(pathwayBody.State))
	assert.False(t, pathwayBody.Empty)

	rec = s.do(t, http.MethodPost, "/sessions/"+id+"/careers/0/jobs?location=Austin%2C+TX", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TechCorp")

	// Back to skill review drops paths, keeps skills
	rec = s.do(t, http.MethodPost, "/sessions/"+id+"/careers/back", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"step":2`)
	assert.Contains(t, rec.Body.String(), "Go (Programming Language)")
}

func TestMatchCareersWithoutSkillsIs400(t *testing.T) {
	s := newTestServer(&fakeClient{})
	id := createSession(t, s)

	rec := s.do(t, http.MethodPost, "/sessions/"+id+"/careers", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedStageOutputIs502(t *testing.T) {
	responses := analysisResponses()
	responses["career counselor"] = llm.Completion{Text: `this is not JSON at all`}

	s := newTestServer(&fakeClient{responses: responses})
	id := createSession(t, s)

	rec := s.do(t, http.MethodPost, "/sessions/"+id+"/resume", map[string]string{"text": "resume"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/sessions/"+id+"/careers", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestResetSession(t *testing.T) {
	s := newTestServer(&fakeClient{responses: analysisResponses()})
	id := createSession(t, s)

	rec := s.do(t, http.MethodPost, "/sessions/"+id+"/resume", map[string]string{"text": "resume"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/sessions/"+id+"/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, float64(1), snapshot["step"])
	assert.Empty(t, snapshot["skills"])
}

func TestSampleResume(t *testing.T) {
	s := newTestServer(&fakeClient{})

	rec := s.do(t, http.MethodGet, "/sample-resume", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "John Doe")
	assert.Contains(t, rec.Body.String(), "Senior Software Engineer")
}

func TestHealth(t *testing.T) {
	s := newTestServer(&fakeClient{})

	rec := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), "fake-model")
}

func TestAnalyzeStreamEmitsProgressAndComplete(t *testing.T) {
	s := newTestServer(&fakeClient{responses: analysisResponses()})
	id := createSession(t, s)

	rec := s.do(t, http.MethodPost, "/sessions/"+id+"/resume/analyze/stream", map[string]string{"text": "resume"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, body, "event: progress")
	assert.Contains(t, body, "event: complete")
	assert.Contains(t, body, "Go (Programming Language)")
}
