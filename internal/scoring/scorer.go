// Package scoring combines the per-module analyses into one weighted resume
// score with a recommendation tier and insight lists.
package scoring

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

const (
	criticalBonusPerSkill = 2.0
	maxCriticalBonus      = 10.0
	diversityBonusPerSkil = 0.5
	maxDiversityBonus     = 5.0

	essentialSectionPoints = 40.0
	importantSectionPoints = 10.0
	optionalSectionPoints  = 5.0
	substantialContentLen  = 100
	moderateContentLen     = 50

	maxComponentScore = 100.0
	maxInsights       = 5
)

// criticalSkills get bonus weighting in the skills component.
var criticalSkills = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true,
	"c++": true, "c#": true, "go": true, "rust": true,
	"aws": true, "azure": true, "gcp": true, "docker": true,
	"kubernetes": true, "jenkins": true, "terraform": true,
	"sql": true, "machine learning": true, "data science": true,
	"tensorflow": true, "pytorch": true,
	"react": true, "angular": true, "vue": true, "node.js": true,
	"spring": true, "django": true,
	"postgresql": true, "mongodb": true, "redis": true, "elasticsearch": true,
}

var (
	essentialSections = []string{"experience", "skills"}
	importantSections = []string{"summary", "education"}
	optionalSections  = []string{"projects", "certifications"}
)

var seniorityBonuses = map[string]float64{
	"Intern": 0, "Entry": 2, "Junior": 4,
	"Mid": 6, "Senior": 10, "Executive": 15,
}

var achievementMultipliers = map[string]float64{
	"Intern": 1.2, "Entry": 1.1, "Junior": 1.0,
	"Mid": 0.95, "Senior": 0.9, "Executive": 0.85,
}

// Scorer computes the global resume score.
type Scorer struct{}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score combines component analyses using the given weights. Nil or invalid
// weights fall back to defaults; the request still succeeds.
func (s *Scorer) Score(
	skills []types.SkillProficiency,
	exp types.ExperienceAnalysis,
	sections types.SectionMap,
	weights *types.ScoringWeights,
) types.ScoringResult {
	used := types.DefaultScoringWeights()
	if weights != nil {
		if weights.Valid() {
			used = *weights
		} else {
			log.Printf("[scoring] invalid weights provided, using defaults")
		}
	}

	skillsScore := skillsComponent(skills)
	experienceScore := experienceComponent(exp)
	achievementScore := achievementComponent(exp)
	structureScore, missing := structureComponent(sections)

	overall := skillsScore*used.Skills +
		experienceScore*used.Experience +
		achievementScore*used.Achievement +
		structureScore*used.Structure
	overall = math.Max(0, math.Min(100, overall))
	overallInt := int(math.Round(overall))

	strengths, improvements := generateInsights(
		skillsScore, experienceScore, achievementScore, structureScore,
		exp, len(skills), missing,
	)

	return types.ScoringResult{
		OverallScore: overallInt,
		Breakdown: types.ScoreBreakdown{
			SkillsScore:      roundOne(skillsScore),
			ExperienceScore:  roundOne(experienceScore),
			AchievementScore: roundOne(achievementScore),
			StructureScore:   roundOne(structureScore),
		},
		WeightsUsed:         used,
		TotalSkillsAnalyzed: len(skills),
		RecommendationTier:  tierFor(overallInt),
		KeyStrengths:        strengths,
		ImprovementAreas:    improvements,
		MissingSections:     missing,
	}
}

// skillsComponent averages proficiency and adds critical-skill and diversity
// bonuses. No skills means zero, not an error.
func skillsComponent(skills []types.SkillProficiency) float64 {
	if len(skills) == 0 {
		return 0
	}

	total := 0
	criticalCount := 0
	for _, skill := range skills {
		total += skill.Score
		if criticalSkills[strings.ToLower(skill.Skill)] {
			criticalCount++
		}
	}
	average := float64(total) / float64(len(skills))

	criticalBonus := math.Min(float64(criticalCount)*criticalBonusPerSkill, maxCriticalBonus)
	diversityBonus := math.Min(float64(len(skills))*diversityBonusPerSkil, maxDiversityBonus)

	return math.Min(average+criticalBonus+diversityBonus, maxComponentScore)
}

func experienceComponent(exp types.ExperienceAnalysis) float64 {
	base := float64(exp.ExperienceStrengthScore)

	seniorityBonus, ok := seniorityBonuses[exp.SeniorityLevel]
	if !ok {
		seniorityBonus = 2
	}

	yearsBonus := 0.0
	if exp.TotalExperienceYears > 0 {
		yearsBonus = math.Min(float64(exp.TotalExperienceYears)*1.5, 10)
	}

	verbBonus := 0.0
	if exp.StrongVerbsCount+exp.WeakVerbsCount > 0 {
		ratio := float64(exp.StrongVerbsCount) / float64(exp.StrongVerbsCount+exp.WeakVerbsCount)
		verbBonus = ratio * 5
	}

	return math.Min(base+seniorityBonus+yearsBonus+verbBonus, maxComponentScore)
}

// achievementComponent scales the raw achievement score by a seniority
// multiplier: senior candidates are expected to show achievements, juniors
// get credit for having any.
func achievementComponent(exp types.ExperienceAnalysis) float64 {
	multiplier, ok := achievementMultipliers[exp.SeniorityLevel]
	if !ok {
		multiplier = 1.0
	}
	return math.Min(float64(exp.AchievementScore)*multiplier, maxComponentScore)
}

func structureComponent(sections types.SectionMap) (float64, []string) {
	score := 0.0
	var missing []string

	for _, name := range essentialSections {
		if strings.TrimSpace(sections.Get(name)) != "" {
			score += essentialSectionPoints
		} else {
			missing = append(missing, name)
		}
	}
	for _, name := range importantSections {
		if strings.TrimSpace(sections.Get(name)) != "" {
			score += importantSectionPoints
		} else {
			missing = append(missing, name)
		}
	}
	for _, name := range optionalSections {
		if strings.TrimSpace(sections.Get(name)) != "" {
			score += optionalSectionPoints
		} else {
			missing = append(missing, name)
		}
	}

	for _, name := range append(append(append([]string{}, essentialSections...), importantSections...), optionalSections...) {
		content := strings.TrimSpace(sections.Get(name))
		if len(content) > substantialContentLen {
			score += 2
		} else if len(content) > moderateContentLen {
			score += 1
		}
	}

	return math.Min(score, maxComponentScore), missing
}

// tierFor maps the rounded overall score to its recommendation tier.
func tierFor(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Poor"
	}
}

func generateInsights(
	skillsScore, experienceScore, achievementScore, structureScore float64,
	exp types.ExperienceAnalysis,
	skillsCount int,
	missing []string,
) ([]string, []string) {
	var strengths, improvements []string

	if skillsScore >= 80 {
		strengths = append(strengths, fmt.Sprintf("Strong technical skills portfolio (%d skills analyzed)", skillsCount))
	}
	if experienceScore >= 80 {
		strengths = append(strengths, fmt.Sprintf("Excellent professional experience (%d years)", exp.TotalExperienceYears))
	}
	if achievementScore >= 75 {
		strengths = append(strengths, "Strong track record of quantified achievements")
	}
	if structureScore >= 90 {
		strengths = append(strengths, "Well-structured resume with comprehensive sections")
	}
	if exp.SeniorityLevel == "Senior" || exp.SeniorityLevel == "Executive" {
		strengths = append(strengths, fmt.Sprintf("Senior-level professional experience (%s)", exp.SeniorityLevel))
	}

	if skillsScore < 60 {
		improvements = append(improvements, "Consider expanding technical skills or highlighting existing expertise")
	}
	if experienceScore < 60 {
		improvements = append(improvements, "Strengthen experience descriptions with more impact-focused language")
	}
	if achievementScore < 50 {
		improvements = append(improvements, "Add more quantified achievements and measurable results")
	}
	if structureScore < 70 {
		improvements = append(improvements, "Improve resume structure and ensure all key sections are present")
	}
	if len(missing) > 0 {
		improvements = append(improvements, "Add missing sections: "+strings.Join(missing, ", "))
	}
	if exp.WeakVerbsCount > exp.StrongVerbsCount {
		improvements = append(improvements, "Use more strong action verbs to describe accomplishments")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Resume submitted for professional analysis")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, "Continue building experience and skills")
	}

	if len(strengths) > maxInsights {
		strengths = strengths[:maxInsights]
	}
	if len(improvements) > maxInsights {
		improvements = improvements[:maxInsights]
	}

	return strengths, improvements
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
