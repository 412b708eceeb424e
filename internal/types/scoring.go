package types

import "math"

// weightSumTolerance bounds how far the four weights may drift from 1.0.
const weightSumTolerance = 0.001

// ScoringWeights controls how the four component scores combine into the
// overall score. Invalid weights are replaced wholesale by defaults rather
// than rejected.
type ScoringWeights struct {
	Skills      float64 `json:"skills_weight"`
	Experience  float64 `json:"experience_weight"`
	Achievement float64 `json:"achievement_weight"`
	Structure   float64 `json:"structure_weight"`
}

// DefaultScoringWeights returns the standard component weighting.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Skills:      0.35,
		Experience:  0.40,
		Achievement: 0.15,
		Structure:   0.10,
	}
}

// Valid reports whether the weights are non-negative and sum to 1.0 within
// tolerance.
func (w ScoringWeights) Valid() bool {
	if w.Skills < 0 || w.Experience < 0 || w.Achievement < 0 || w.Structure < 0 {
		return false
	}
	sum := w.Skills + w.Experience + w.Achievement + w.Structure
	return math.Abs(sum-1.0) < weightSumTolerance
}

// ScoreBreakdown carries the four component scores, rounded to one decimal.
type ScoreBreakdown struct {
	SkillsScore      float64 `json:"skills_score"`
	ExperienceScore  float64 `json:"experience_score"`
	AchievementScore float64 `json:"achievement_score"`
	StructureScore   float64 `json:"structure_score"`
}

// ScoringResult is the output of the global scorer.
type ScoringResult struct {
	OverallScore        int            `json:"overall_score"`
	Breakdown           ScoreBreakdown `json:"breakdown"`
	WeightsUsed         ScoringWeights `json:"weights_used"`
	TotalSkillsAnalyzed int            `json:"total_skills_analyzed"`
	RecommendationTier  string         `json:"recommendation_tier"`
	KeyStrengths        []string       `json:"key_strengths"`
	ImprovementAreas    []string       `json:"improvement_areas"`
	MissingSections     []string       `json:"missing_sections"`
}
