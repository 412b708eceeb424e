package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-evaluator/internal/types"
)

func TestPrintSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	sections := types.SectionMap{
		Summary: "Experienced engineer with a platform background.",
		Skills:  "Go, Python, Kubernetes",
	}

	p.PrintSections(sections)
	output := buf.String()

	assert.Contains(t, output, "RESUME SECTIONS")
	assert.Contains(t, output, "Sections found: 2")
	assert.Contains(t, output, "summary")
	assert.Contains(t, output, "skills")
}

func TestPrintEntities(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entities := types.EntityBundle{
		Name:   "Jane Smith",
		Email:  "jane@example.com",
		Skills: []string{"Go", "Python"},
	}

	p.PrintEntities(entities)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED ENTITIES")
	assert.Contains(t, output, "Jane Smith")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Go, Python")
}

func TestPrintEntities_MissingContactShownAsDash(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEntities(types.EntityBundle{})

	assert.Contains(t, buf.String(), "Name:   -")
}

func TestPrintSkillAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	years := 5
	skills := []types.SkillProficiency{
		{Skill: "Go", Score: 90, Level: types.LevelExpert, YearsExperience: &years},
		{Skill: "Python", Score: 40, Level: types.LevelIntermediate},
	}
	summary := types.SkillAnalysisSummary{TotalSkills: 2, AverageScore: 65.0}

	p.PrintSkillAnalysis(skills, summary)
	output := buf.String()

	assert.Contains(t, output, "SKILL PROFICIENCY")
	assert.Contains(t, output, "Skills analyzed: 2 (avg score 65.0)")
	assert.Contains(t, output, "Score: 90 (Expert), 5 years")
}

func TestPrintSkillAnalysis_EmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillAnalysis(nil, types.SkillAnalysisSummary{})

	assert.Empty(t, buf.String())
}

func TestPrintScoring(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.ScoringResult{
		OverallScore:       84,
		RecommendationTier: "Good",
		Breakdown:          types.ScoreBreakdown{SkillsScore: 85.0},
		MissingSections:    []string{"projects"},
	}

	p.PrintScoring(result)
	output := buf.String()

	assert.Contains(t, output, "GLOBAL SCORE")
	assert.Contains(t, output, "Overall: 84/100 (Good)")
	assert.Contains(t, output, "Missing sections: projects")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := types.EvaluationReport{
		OverallScore: 85,
		ProfileTier:  "Strong Profile",
		Strengths:    []string{"Substantial professional experience (10 years)"},
		NextSteps:    []string{"Fine-tune resume for specific target positions"},
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "EVALUATION REPORT")
	assert.Contains(t, output, "Tier: Strong Profile (85/100)")
	assert.Contains(t, output, "Substantial professional experience")
}
