// Package pipeline provides the high-level orchestration for the resume evaluation process.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jonathan/resume-evaluator/internal/experience"
	"github.com/jonathan/resume-evaluator/internal/extraction"
	"github.com/jonathan/resume-evaluator/internal/ner"
	"github.com/jonathan/resume-evaluator/internal/observability"
	"github.com/jonathan/resume-evaluator/internal/proficiency"
	"github.com/jonathan/resume-evaluator/internal/report"
	"github.com/jonathan/resume-evaluator/internal/scoring"
	"github.com/jonathan/resume-evaluator/internal/segmenter"
	"github.com/jonathan/resume-evaluator/internal/types"
)

// Stage names used in progress events.
const (
	StageSections   = "sections"
	StageEntities   = "entities"
	StageSkills     = "skills"
	StageExperience = "experience"
	StageScoring    = "scoring"
	StageReport     = "report"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the evaluation pipeline
type Options struct {
	Text       string
	Weights    *types.ScoringWeights
	Thresholds *report.Thresholds
	Recognizer ner.Recognizer
	Now        time.Time
	Verbose    bool
	OnProgress ProgressCallback
}

// Result holds every stage output of a pipeline run
type Result struct {
	Sections     types.SectionMap           `json:"sections"`
	Entities     types.EntityBundle         `json:"entities"`
	Skills       []types.SkillProficiency   `json:"skill_analysis"`
	SkillSummary types.SkillAnalysisSummary `json:"skill_summary"`
	Experience   types.ExperienceAnalysis   `json:"experience_analysis"`
	Scoring      types.ScoringResult        `json:"scoring_result"`
	Report       types.EvaluationReport     `json:"report"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, stage, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Stage:   stage,
			Message: message,
			Content: content,
		})
	}
}

// Run executes the full evaluation pipeline on one resume. The clock is
// sampled once so every stage of a run sees the same evaluation time, which
// keeps repeated runs on the same input identical.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if strings.TrimSpace(opts.Text) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	recognizer := opts.Recognizer
	if recognizer == nil {
		recognizer = ner.NewRuleBased()
	}

	printer := observability.NewPrinter(os.Stdout)

	log.Printf("[pipeline] step 1/5: segmenting resume into sections")
	seg := segmenter.New()
	sections := seg.Split(opts.Text)
	if opts.Verbose {
		printer.PrintSections(sections)
	}
	emitProgress(&opts, StageSections, fmt.Sprintf("Identified %d sections", sections.SectionsFound()), sections)

	log.Printf("[pipeline] step 2/5: extracting entities")
	extractor := extraction.New(recognizer)
	entities := extractor.Extract(sections)
	if opts.Verbose {
		printer.PrintEntities(entities)
	}
	emitProgress(&opts, StageEntities, fmt.Sprintf("Extracted %d skills", len(entities.Skills)), entities)

	// Skill proficiency and experience quality both read only upstream
	// output. They run in order on the calling goroutine; concurrency in
	// this system belongs to callers evaluating many resumes at once.
	log.Printf("[pipeline] step 3/5: analyzing skills and experience")

	normalized := segmenter.Normalize(opts.Text)

	skills := proficiency.NewEngine().Analyze(entities.Skills, normalized)
	summary := proficiency.Summarize(skills)

	analyzer := experience.NewAnalyzerAt(func() time.Time { return now })
	experienceText := sections.Experience
	if strings.TrimSpace(experienceText) == "" {
		experienceText = normalized
	}
	expResult := analyzer.Analyze(experienceText, &entities)

	if opts.Verbose {
		printer.PrintSkillAnalysis(skills, summary)
		printer.PrintExperience(expResult)
	}
	emitProgress(&opts, StageSkills, fmt.Sprintf("Analyzed %d skills", len(skills)), nil)
	emitProgress(&opts, StageExperience,
		fmt.Sprintf("Experience: %d years, %s level", expResult.TotalExperienceYears, expResult.SeniorityLevel), nil)

	log.Printf("[pipeline] step 4/5: computing global score")
	scorer := scoring.NewScorer()
	scoringResult := scorer.Score(skills, expResult, sections, opts.Weights)
	if opts.Verbose {
		printer.PrintScoring(scoringResult)
	}
	emitProgress(&opts, StageScoring,
		fmt.Sprintf("Overall score %d/100 (%s)", scoringResult.OverallScore, scoringResult.RecommendationTier), nil)

	log.Printf("[pipeline] step 5/5: generating evaluation report")
	generator := report.NewGenerator()
	if opts.Thresholds != nil {
		generator = report.NewGeneratorWithThresholds(*opts.Thresholds)
	}
	evaluation := generator.Generate(scoringResult, skills, expResult, now)
	if opts.Verbose {
		printer.PrintReport(evaluation)
	}
	emitProgress(&opts, StageReport, fmt.Sprintf("Report ready, tier %s", evaluation.ProfileTier), evaluation)

	return &Result{
		Sections:     sections,
		Entities:     entities,
		Skills:       skills,
		SkillSummary: summary,
		Experience:   expResult,
		Scoring:      scoringResult,
		Report:       evaluation,
	}, nil
}
