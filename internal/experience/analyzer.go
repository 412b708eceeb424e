// Package experience evaluates the strength of a resume's work history:
// duration, seniority, quantified achievements, and action-verb strength.
package experience

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-evaluator/internal/types"
)

const (
	maxDetectedRoles = 5
	maxRoleLength    = 100

	durationPointsPerYear = 3.0
	maxDurationPoints     = 40.0
	maxAchievementPoints  = 25.0
	maxVerbPoints         = 10.0
	maxVerbCountBonus     = 5.0
	maxCombinedScore      = 100
)

// seniorityTier ties a level to its score and the keywords that select it.
// Iteration order is fixed; a tier only wins with a strictly greater score.
type seniorityTier struct {
	level    string
	score    int
	keywords []string
}

var seniorityTiers = []seniorityTier{
	{"Intern", 10, []string{"intern", "trainee", "apprentice", "student"}},
	{"Junior", 25, []string{"junior", "entry", "associate", "graduate", "fresher"}},
	{"Mid", 50, []string{"engineer", "developer", "analyst", "specialist", "consultant"}},
	{"Senior", 75, []string{"senior", "sr", "lead", "principal", "staff"}},
	{"Executive", 90, []string{"manager", "director", "vp", "vice president", "head", "chief", "cto", "ceo", "architect"}},
}

// seniorityPoints feeds the combined score; distinct from the tier scores
// used for tier selection.
var seniorityPoints = map[string]float64{
	"Intern":    5,
	"Junior":    10,
	"Mid":       15,
	"Senior":    20,
	"Executive": 25,
	"Entry":     8,
}

// Analyzer scores experience sections. The clock is injected so "present" in
// date ranges resolves to a single sampled year per analysis.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an analyzer using the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// NewAnalyzerAt creates an analyzer with a fixed clock.
func NewAnalyzerAt(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// Analyze evaluates the experience text. The entity bundle contributes
// extracted dates and job titles; it may be nil. Empty text yields the zero
// result with seniority "Entry".
func (a *Analyzer) Analyze(text string, entities *types.EntityBundle) types.ExperienceAnalysis {
	result := types.ExperienceAnalysis{SeniorityLevel: "Entry"}

	if strings.TrimSpace(text) == "" {
		return result
	}

	var dates, titles []string
	if entities != nil {
		dates = entities.Dates
		titles = entities.JobTitles
	}

	currentYear := a.now().Year()

	result.TotalExperienceYears = calculateDuration(text, dates, currentYear)
	result.SeniorityLevel, result.DetectedRoles = analyzeSeniority(text, titles)
	result.AchievementScore, result.QuantifiedAchievements = detectAchievements(text)
	result.StrongVerbsCount, result.WeakVerbsCount = countVerbs(text)
	result.ExperienceStrengthScore = combinedScore(
		result.TotalExperienceYears,
		result.SeniorityLevel,
		result.AchievementScore,
		result.StrongVerbsCount,
		result.WeakVerbsCount,
	)

	return result
}

// analyzeSeniority scans job titles and text for tier keywords. The highest
// scoring tier wins; sentences containing a matched keyword become detected
// roles, deduplicated and capped.
func analyzeSeniority(text string, jobTitles []string) (string, []string) {
	allTitles := strings.ToLower(strings.Join(jobTitles, " ")) + " " + strings.ToLower(text)

	level := "Entry"
	maxScore := 0
	var roles []string

	for _, tier := range seniorityTiers {
		for _, keyword := range tier.keywords {
			if !strings.Contains(allTitles, keyword) {
				continue
			}
			if tier.score > maxScore {
				maxScore = tier.score
				level = tier.level
			}

			pattern := regexp.MustCompile(`(?i)\b[^.]*` + regexp.QuoteMeta(keyword) + `[^.]*\b`)
			for _, match := range pattern.FindAllString(text, -1) {
				role := strings.TrimSpace(match)
				if role != "" && len(role) < maxRoleLength {
					roles = append(roles, role)
				}
			}
		}
	}

	roles = dedupe(roles)
	if len(roles) > maxDetectedRoles {
		roles = roles[:maxDetectedRoles]
	}

	return level, roles
}

func combinedScore(years int, seniority string, achievementScore, strongVerbs, weakVerbs int) int {
	durationScore := float64(years) * durationPointsPerYear
	if durationScore > maxDurationPoints {
		durationScore = maxDurationPoints
	}

	seniorityScore, ok := seniorityPoints[seniority]
	if !ok {
		seniorityScore = seniorityPoints["Entry"]
	}

	achievementWeight := float64(achievementScore) * 0.25
	if achievementWeight > maxAchievementPoints {
		achievementWeight = maxAchievementPoints
	}

	verbScore := 0.0
	if strongVerbs+weakVerbs > 0 {
		ratio := float64(strongVerbs) / float64(strongVerbs+weakVerbs)
		countBonus := float64(strongVerbs)
		if countBonus > maxVerbCountBonus {
			countBonus = maxVerbCountBonus
		}
		verbScore = ratio*10 + countBonus
		if verbScore > maxVerbPoints {
			verbScore = maxVerbPoints
		}
	}

	total := int(durationScore + seniorityScore + achievementWeight + verbScore)
	if total > maxCombinedScore {
		return maxCombinedScore
	}
	return total
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
