package types

import (
	"github.com/go-playground/validator/v10"
)

// ParseSectionsRequest asks the segmenter to split raw resume text.
type ParseSectionsRequest struct {
	Text string `json:"text" validate:"required,min=50"`
}

// ParseEntitiesRequest asks the entity extractor to process segmented sections.
type ParseEntitiesRequest struct {
	Sections SectionMap `json:"sections"`
}

// SkillAnalysisRequest asks the proficiency engine to score named skills
// against the full resume text.
type SkillAnalysisRequest struct {
	Skills     []string `json:"skills" validate:"required,min=1,dive,min=1"`
	ResumeText string   `json:"resume_text" validate:"required,min=100"`
}

// ExperienceAnalysisRequest asks the experience analyzer to assess an
// experience section, optionally enriched with extracted entities.
type ExperienceAnalysisRequest struct {
	ExperienceText string        `json:"experience_text" validate:"required"`
	Entities       *EntityBundle `json:"entities,omitempty"`
}

// ScoreRequest asks the global scorer to combine component analyses.
type ScoreRequest struct {
	SkillAnalysis      []SkillProficiency `json:"skill_analysis"`
	ExperienceAnalysis ExperienceAnalysis `json:"experience_analysis"`
	Sections           SectionMap         `json:"sections"`
	Weights            *ScoringWeights    `json:"weights,omitempty"`
}

// ReportRequest asks the report generator to render a scoring result.
type ReportRequest struct {
	ScoringResult      ScoringResult      `json:"scoring_result"`
	SkillAnalysis      []SkillProficiency `json:"skill_analysis"`
	ExperienceAnalysis ExperienceAnalysis `json:"experience_analysis"`
}

// EvaluateRequest runs the full pipeline on raw resume text.
type EvaluateRequest struct {
	Text    string          `json:"text" validate:"required,min=50"`
	Weights *ScoringWeights `json:"weights,omitempty"`
}

// BatchResumeInput is one resume in a batch evaluation request.
type BatchResumeInput struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text" validate:"required,min=50"`
}

// BatchEvaluateRequest runs the full pipeline over several independent resumes.
type BatchEvaluateRequest struct {
	Resumes []BatchResumeInput `json:"resumes" validate:"required,min=1,max=20,dive"`
}

// Validate validates the ParseSectionsRequest using the validator.
func (r *ParseSectionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SkillAnalysisRequest using the validator.
func (r *SkillAnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ExperienceAnalysisRequest using the validator.
func (r *ExperienceAnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchEvaluateRequest using the validator.
func (r *BatchEvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
