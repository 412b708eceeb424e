package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/config"
	"github.com/jonathan/resume-evaluator/internal/server/ratelimit"
)

const testResume = `Jane Smith
jane.smith@example.com | (555) 123-4567

SUMMARY
Senior software engineer with 8 years of experience in Python building distributed systems.

SKILLS
Python, Go, Kubernetes, PostgreSQL, AWS

EXPERIENCE
Senior Software Engineer at Initech Inc, 2018 - Present
Led a platform team and increased deployment frequency by 40%.

EDUCATION
Bachelor of Science in Computer Science, 2014
`

func testServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		cfg:         config.Default(),
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth_ReportsPersistenceState(t *testing.T) {
	handler := testServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"persistence":"disabled"`)
}

func TestHandleParseSections_SplitsResume(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/parse/sections", map[string]string{"text": testResume})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Sections      map[string]string `json:"sections"`
		SectionsFound int               `json:"sections_found"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.GreaterOrEqual(t, body.SectionsFound, 3)
	assert.Contains(t, body.Sections["skills"], "Python")
}

func TestHandleParseSections_RejectsShortText(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/parse/sections", map[string]string{"text": "too short"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParseSections_RejectsUnknownFields(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/parse/sections", map[string]string{"text": testResume, "bogus": "x"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeSkills_ScoresSkills(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/analysis/skills", map[string]any{
		"skills":      []string{"Python", "COBOL"},
		"resume_text": testResume,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		SkillAnalysis []struct {
			Skill string `json:"skill"`
			Score int    `json:"score"`
		} `json:"skill_analysis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.SkillAnalysis, 2)
	assert.Equal(t, "Python", body.SkillAnalysis[0].Skill)
	// "8 years of experience in Python" lands inside Python's context window
	assert.GreaterOrEqual(t, body.SkillAnalysis[0].Score, 60)
	assert.Greater(t, body.SkillAnalysis[0].Score, body.SkillAnalysis[1].Score)
}

func TestHandleEvaluate_FullPipeline(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/evaluate", map[string]string{"text": testResume})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Scoring struct {
			OverallScore int `json:"overall_score"`
		} `json:"scoring_result"`
		Report struct {
			ProfileTier string `json:"profile_tier"`
		} `json:"report"`
		EvaluationID string `json:"evaluation_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Greater(t, body.Scoring.OverallScore, 0)
	assert.NotEmpty(t, body.Report.ProfileTier)
	// No database configured, so no stored ID
	assert.Empty(t, body.EvaluationID)
}

func TestHandleEvaluateBatch_ResultsInInputOrder(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/evaluate/batch", map[string]any{
		"resumes": []map[string]string{
			{"id": "first", "text": testResume},
			{"id": "second", "text": testResume},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Results []struct {
			ID    string `json:"id"`
			Error string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Results, 2)
	assert.Equal(t, "first", body.Results[0].ID)
	assert.Equal(t, "second", body.Results[1].ID)
	assert.Empty(t, body.Results[0].Error)
}

func TestHandleEvaluateBatch_RejectsShortResume(t *testing.T) {
	handler := testServer(t).Handler()

	rec := postJSON(t, handler, "/api/v1/evaluate/batch", map[string]any{
		"resumes": []map[string]string{{"id": "bad", "text": "too short"}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExtractFile_TxtUpload(t *testing.T) {
	handler := testServer(t).Handler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(testResume))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/file", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Text     string `json:"text"`
		Metadata struct {
			FileName string `json:"file_name"`
			FileType string `json:"file_type"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Text, "Jane Smith")
	assert.Equal(t, "resume.txt", body.Metadata.FileName)
	assert.Equal(t, "txt", body.Metadata.FileType)
}

func TestHandleExtractFile_RejectsUnsupportedType(t *testing.T) {
	handler := testServer(t).Handler()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.exe")
	require.NoError(t, err)
	_, err = part.Write([]byte("binary"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract/file", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestHandleListEvaluations_WithoutDatabase(t *testing.T) {
	handler := testServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGetEvaluation_WithoutDatabase(t *testing.T) {
	handler := testServer(t).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations/"+strings.Repeat("0", 8)+"-0000-0000-0000-000000000000", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleScore_InvalidJSON(t *testing.T) {
	handler := testServer(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
