package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-evaluator/internal/db"
	"github.com/jonathan/resume-evaluator/internal/experience"
	"github.com/jonathan/resume-evaluator/internal/extraction"
	"github.com/jonathan/resume-evaluator/internal/ingestion"
	"github.com/jonathan/resume-evaluator/internal/ner"
	"github.com/jonathan/resume-evaluator/internal/pipeline"
	"github.com/jonathan/resume-evaluator/internal/proficiency"
	"github.com/jonathan/resume-evaluator/internal/report"
	"github.com/jonathan/resume-evaluator/internal/schemas"
	"github.com/jonathan/resume-evaluator/internal/scoring"
	"github.com/jonathan/resume-evaluator/internal/segmenter"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// maxBatchConcurrency bounds parallel pipeline runs in a batch request.
const maxBatchConcurrency = 4

// decodeJSON reads and decodes a JSON request body
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// handleParseSections splits raw resume text into canonical sections
func (s *Server) handleParseSections(w http.ResponseWriter, r *http.Request) {
	var req types.ParseSectionsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sections := segmenter.New().Split(req.Text)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sections":       sections,
		"sections_found": sections.SectionsFound(),
	})
}

// handleParseEntities extracts entities from segmented sections
func (s *Server) handleParseEntities(w http.ResponseWriter, r *http.Request) {
	var req types.ParseEntitiesRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entities := extraction.New(ner.NewRuleBased()).Extract(req.Sections)
	s.jsonResponse(w, http.StatusOK, map[string]any{"entities": entities})
}

// handleAnalyzeSkills scores the named skills against the resume text
func (s *Server) handleAnalyzeSkills(w http.ResponseWriter, r *http.Request) {
	var req types.SkillAnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	results := proficiency.NewEngine().Analyze(req.Skills, req.ResumeText)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skill_analysis": results,
		"summary":        proficiency.Summarize(results),
	})
}

// handleAnalyzeExperience analyzes the experience section text
func (s *Server) handleAnalyzeExperience(w http.ResponseWriter, r *http.Request) {
	var req types.ExperienceAnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis := experience.NewAnalyzer().Analyze(req.ExperienceText, req.Entities)
	s.jsonResponse(w, http.StatusOK, map[string]any{"experience_analysis": analysis})
}

// handleScore combines component analyses into a global score
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := scoring.NewScorer().Score(req.SkillAnalysis, req.ExperienceAnalysis, req.Sections, req.Weights)
	s.jsonResponse(w, http.StatusOK, map[string]any{"scoring_result": result})
}

// handleReport renders an evaluation report from a scoring result
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req types.ReportRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	generated := report.NewGenerator().Generate(req.ScoringResult, req.SkillAnalysis, req.ExperienceAnalysis, time.Now())
	if err := schemas.ValidateEvaluationReport(generated); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "generated report failed schema validation")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"report": generated})
}

// evaluateResponse is the full pipeline output plus the stored record ID
type evaluateResponse struct {
	*pipeline.Result
	EvaluationID string `json:"evaluation_id,omitempty"`
}

// handleEvaluate runs the full pipeline on one resume. The body is either an
// EvaluateRequest JSON document or a multipart form with a resume file.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	req, err := s.readEvaluateRequest(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := pipeline.Run(r.Context(), pipeline.Options{
		Text:    req.Text,
		Weights: req.Weights,
		Verbose: s.cfg.Verbose,
	})
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response := evaluateResponse{Result: result}
	if s.db != nil {
		if id, err := s.db.SaveEvaluation(r.Context(), result.Report); err == nil {
			response.EvaluationID = id.String()
		}
	}
	s.jsonResponse(w, http.StatusOK, response)
}

// readEvaluateRequest extracts the evaluate payload from JSON or multipart bodies
func (s *Server) readEvaluateRequest(r *http.Request) (*types.EvaluateRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		var req types.EvaluateRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	text, _, err := s.readUploadedResume(r)
	if err != nil {
		return nil, err
	}
	return &types.EvaluateRequest{Text: text}, nil
}

// readUploadedResume reads and extracts text from a multipart file upload
func (s *Server) readUploadedResume(r *http.Request) (string, *ingestion.Metadata, error) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return "", nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("missing form field %q: %w", "file", err)
	}
	defer file.Close()

	if err := ingestion.ValidateUpload(header.Filename, header.Size, s.cfg.MaxUploadBytes); err != nil {
		return "", nil, err
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", nil, fmt.Errorf("file too large: exceeds limit of %d bytes", s.cfg.MaxUploadBytes)
	}

	raw, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		return "", nil, err
	}

	text := ingestion.CleanText(raw)
	metadata := ingestion.NewMetadata(header.Filename, int64(len(data)), text)
	return text, metadata, nil
}

// handleExtractFile extracts clean text from an uploaded resume file
func (s *Server) handleExtractFile(w http.ResponseWriter, r *http.Request) {
	text, metadata, err := s.readUploadedResume(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"text":     text,
		"metadata": metadata,
	})
}

// batchResult is the outcome for one resume in a batch
type batchResult struct {
	ID     string           `json:"id,omitempty"`
	Result *pipeline.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// handleEvaluateBatch evaluates several resumes concurrently. Results come
// back in input order; one bad resume fails its slot, not the batch.
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchEvaluateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	results := make([]batchResult, len(req.Resumes))

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxBatchConcurrency)
	for i, resume := range req.Resumes {
		g.Go(func() error {
			result, err := pipeline.Run(ctx, pipeline.Options{Text: resume.Text})
			if err != nil {
				results[i] = batchResult{ID: resume.ID, Error: err.Error()}
				return nil
			}
			results[i] = batchResult{ID: resume.ID, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"results": results})
}

// handleListEvaluations returns the most recent stored evaluations
func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := s.db.ListEvaluations(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"evaluations": records})
}

// handleGetEvaluation returns a stored evaluation by ID
func (s *Server) handleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid evaluation id")
		return
	}

	record, err := s.db.GetEvaluation(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "evaluation not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}
