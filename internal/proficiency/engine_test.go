package proficiency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/types"
)

func TestAnalyzeSkill_AbsentSkillGetsMinimalResult(t *testing.T) {
	result := NewEngine().AnalyzeSkill("COBOL", "Python developer with many years building services")

	assert.Equal(t, 10, result.Score)
	assert.Equal(t, types.LevelBeginner, result.Level)
	assert.InDelta(t, 0.1, result.Confidence, 0.0001)
	assert.Nil(t, result.YearsExperience)
	assert.Equal(t, []string{"skill listed but no context found"}, result.SignalsDetected)
}

func TestAnalyzeSkill_StrongContextReachesExpert(t *testing.T) {
	text := "Architected and led Python microservices for 5 years across the platform."

	result := NewEngine().AnalyzeSkill("Python", text)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, types.LevelExpert, result.Level)
	require.NotNil(t, result.YearsExperience)
	assert.Equal(t, 5, *result.YearsExperience)
	assert.Contains(t, result.SignalsDetected, "5 years of Python")
	assert.Contains(t, result.SignalsDetected, "strong action: architected")
}

func TestAnalyzeSkill_WeakVerbsClampToZero(t *testing.T) {
	text := "learned studied exposed introduced trained COBOL attended participated observed assisted helped supported"

	result := NewEngine().AnalyzeSkill("COBOL", text)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, types.LevelBeginner, result.Level)
}

func TestAnalyzeSkill_LevelKeywordLandsIntermediate(t *testing.T) {
	result := NewEngine().AnalyzeSkill("Python", "Intermediate Python")

	assert.Equal(t, 30, result.Score)
	assert.Equal(t, types.LevelIntermediate, result.Level)
	assert.InDelta(t, 0.5, result.Confidence, 0.0001)
}

func TestAnalyzeSkill_RepeatedSignalsDeduplicated(t *testing.T) {
	result := NewEngine().AnalyzeSkill("Python", "Deployed Python and deployed Python again")

	assert.Equal(t, []string{"strong action: deployed"}, result.SignalsDetected)
}

func TestAnalyzeSkill_SymbolSkillFoundBySubstringScan(t *testing.T) {
	result := NewEngine().AnalyzeSkill("C++", "Developed C++ services for 3 years")

	require.NotNil(t, result.YearsExperience)
	assert.Equal(t, 3, *result.YearsExperience)
	assert.Greater(t, result.Score, 10)
}

func TestAnalyzeSkill_ImplausibleYearsIgnored(t *testing.T) {
	result := NewEngine().AnalyzeSkill("Python", "Python for 99 years")

	assert.Nil(t, result.YearsExperience)
}

func TestAnalyzeSkill_ConfidenceNeverExceedsOne(t *testing.T) {
	text := "Expert Python: architected, designed, developed, built, led, managed, optimized Python for 10 years"

	result := NewEngine().AnalyzeSkill("Python", text)

	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.Equal(t, 100, result.Score)
}

func TestAnalyze_PreservesInputOrder(t *testing.T) {
	results := NewEngine().Analyze([]string{"Go", "Rust"}, "Built Go services; Rust not mentioned here... actually it is: Rust")

	require.Len(t, results, 2)
	assert.Equal(t, "Go", results[0].Skill)
	assert.Equal(t, "Rust", results[1].Skill)
}

func TestSummarize_AveragesAndDistribution(t *testing.T) {
	results := []types.SkillProficiency{
		{Skill: "Go", Score: 80, Level: types.LevelExpert},
		{Skill: "PHP", Score: 10, Level: types.LevelBeginner},
	}

	summary := Summarize(results)

	assert.Equal(t, 2, summary.TotalSkills)
	assert.InDelta(t, 45.0, summary.AverageScore, 0.0001)
	assert.Equal(t, 1, summary.LevelDistribution[string(types.LevelExpert)])
	assert.Equal(t, 1, summary.LevelDistribution[string(types.LevelBeginner)])
}
