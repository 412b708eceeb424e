package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-evaluator/internal/types"
)

func solidSections() types.SectionMap {
	return types.SectionMap{
		Experience: strings.Repeat("shipped features and ran systems ", 5),
		Skills:     strings.Repeat("Go, Python, Kubernetes, PostgreSQL ", 4),
	}
}

func TestScore_InvalidWeightsFallBackToDefaults(t *testing.T) {
	weights := &types.ScoringWeights{Skills: 0.5, Experience: 0.5, Achievement: 0.5, Structure: 0.5}

	result := NewScorer().Score(nil, types.ExperienceAnalysis{SeniorityLevel: "Entry"}, types.SectionMap{}, weights)

	assert.Equal(t, types.DefaultScoringWeights(), result.WeightsUsed)
}

func TestScore_StructureWithOnlyEssentialSections(t *testing.T) {
	result := NewScorer().Score(nil, types.ExperienceAnalysis{SeniorityLevel: "Entry"}, solidSections(), nil)

	// 40 + 40 essential, +2 +2 length bonus
	assert.InDelta(t, 84.0, result.Breakdown.StructureScore, 0.0001)
	assert.Equal(t, []string{"summary", "education", "projects", "certifications"}, result.MissingSections)
}

func TestScore_NoSkillsScoresZeroComponent(t *testing.T) {
	result := NewScorer().Score(nil, types.ExperienceAnalysis{SeniorityLevel: "Entry"}, types.SectionMap{}, nil)

	assert.InDelta(t, 0.0, result.Breakdown.SkillsScore, 0.0001)
}

func TestScore_FullBreakdownAndTier(t *testing.T) {
	skills := []types.SkillProficiency{
		{Skill: "Go", Score: 80, Level: types.LevelExpert},
		{Skill: "Python", Score: 80, Level: types.LevelExpert},
	}
	exp := types.ExperienceAnalysis{
		TotalExperienceYears:    10,
		SeniorityLevel:          "Senior",
		AchievementScore:        90,
		ExperienceStrengthScore: 60,
		StrongVerbsCount:        4,
	}

	result := NewScorer().Score(skills, exp, solidSections(), nil)

	assert.InDelta(t, 85.0, result.Breakdown.SkillsScore, 0.0001)
	assert.InDelta(t, 85.0, result.Breakdown.ExperienceScore, 0.0001)
	assert.InDelta(t, 81.0, result.Breakdown.AchievementScore, 0.0001)
	assert.Equal(t, 84, result.OverallScore)
	assert.Equal(t, "Good", result.RecommendationTier)
	assert.Contains(t, result.KeyStrengths, "Senior-level professional experience (Senior)")
}

func TestScore_InsightFallbacksWhenNothingFires(t *testing.T) {
	exp := types.ExperienceAnalysis{SeniorityLevel: "Entry"}

	result := NewScorer().Score(nil, exp, types.SectionMap{}, nil)

	assert.Equal(t, []string{"Resume submitted for professional analysis"}, result.KeyStrengths)
	assert.NotEmpty(t, result.ImprovementAreas)
}

func TestTierFor_BandBoundaries(t *testing.T) {
	assert.Equal(t, "Excellent", tierFor(90))
	assert.Equal(t, "Good", tierFor(89))
	assert.Equal(t, "Good", tierFor(75))
	assert.Equal(t, "Fair", tierFor(74))
	assert.Equal(t, "Fair", tierFor(60))
	assert.Equal(t, "Poor", tierFor(59))
}

func TestAchievementComponent_SeniorityMultiplier(t *testing.T) {
	senior := achievementComponent(types.ExperienceAnalysis{AchievementScore: 80, SeniorityLevel: "Senior"})
	intern := achievementComponent(types.ExperienceAnalysis{AchievementScore: 80, SeniorityLevel: "Intern"})

	assert.InDelta(t, 72.0, senior, 0.0001)
	assert.InDelta(t, 96.0, intern, 0.0001)
}
