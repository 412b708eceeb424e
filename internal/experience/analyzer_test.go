package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-evaluator/internal/types"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestAnalyze_EmptyTextYieldsZeroResult(t *testing.T) {
	result := NewAnalyzer().Analyze("   ", nil)

	assert.Equal(t, 0, result.TotalExperienceYears)
	assert.Equal(t, "Entry", result.SeniorityLevel)
	assert.Equal(t, 0, result.ExperienceStrengthScore)
	assert.Empty(t, result.DetectedRoles)
}

func TestAnalyze_OverlappingDateRangesMerged(t *testing.T) {
	analyzer := NewAnalyzerAt(fixedClock(2026))

	result := analyzer.Analyze("Software roles from 2018 - 2020 and again 2019 - 2022.", nil)

	assert.Equal(t, 4, result.TotalExperienceYears)
}

func TestAnalyze_ExplicitMentionBeatsDateRanges(t *testing.T) {
	analyzer := NewAnalyzerAt(fixedClock(2026))
	text := "5 years of experience across jobs from 2010 - 2012 and 2015 - 2016"

	result := analyzer.Analyze(text, nil)

	assert.Equal(t, 5, result.TotalExperienceYears)
}

func TestAnalyze_PresentResolvesToSampledYear(t *testing.T) {
	analyzer := NewAnalyzerAt(fixedClock(2026))

	result := analyzer.Analyze("Platform team, Jan 2020 - Present.", nil)

	assert.Equal(t, 6, result.TotalExperienceYears)
}

func TestAnalyze_SeniorKeywordSetsLevel(t *testing.T) {
	result := NewAnalyzer().Analyze("Senior Software Engineer leading the team.", nil)

	assert.Equal(t, "Senior", result.SeniorityLevel)
	assert.Contains(t, result.DetectedRoles, "Senior Software Engineer leading the team")
}

func TestAnalyze_ExecutiveOutranksSenior(t *testing.T) {
	result := NewAnalyzer().Analyze("Senior engineer promoted to Director of Engineering.", nil)

	assert.Equal(t, "Executive", result.SeniorityLevel)
}

func TestAnalyze_ArchitectVerbCountsAsExecutive(t *testing.T) {
	// Tier keywords match anywhere in the text, so "Architected" selects the
	// Executive tier even in a bullet describing work, not a title.
	result := NewAnalyzer().Analyze("Senior engineer. Architected Go microservices at scale.", nil)

	assert.Equal(t, "Executive", result.SeniorityLevel)
}

func TestAnalyze_QuantifiedAchievementsScored(t *testing.T) {
	result := NewAnalyzer().Analyze("Increased revenue by 40% and saved $2 million annually.", nil)

	assert.Equal(t, 100, result.AchievementScore)
	assert.Len(t, result.QuantifiedAchievements, 1)
	assert.Contains(t, result.QuantifiedAchievements[0], "40%")
}

func TestAnalyze_NumbersWithoutOutcomeContextIgnored(t *testing.T) {
	result := NewAnalyzer().Analyze("Office occupancy was 85% on weekdays.", nil)

	assert.Equal(t, 0, result.AchievementScore)
	assert.Empty(t, result.QuantifiedAchievements)
}

func TestAnalyze_CombinedScoreBreakdown(t *testing.T) {
	analyzer := NewAnalyzerAt(fixedClock(2026))
	text := "Senior engineer with 10 years of experience. Led team, increased performance by 50%."

	result := analyzer.Analyze(text, nil)

	// duration 30 + seniority 20 + achievements 12.5 + verbs 10, truncated
	assert.Equal(t, 72, result.ExperienceStrengthScore)
	assert.Equal(t, 2, result.StrongVerbsCount)
	assert.Equal(t, 0, result.WeakVerbsCount)
}

func TestAnalyze_JobTitleEntitiesInfluenceSeniority(t *testing.T) {
	entities := &types.EntityBundle{JobTitles: []string{"VP of Engineering"}}

	result := NewAnalyzer().Analyze("Ran the platform group for a decade.", entities)

	assert.Equal(t, "Executive", result.SeniorityLevel)
}

func TestCalculateDuration_CapsAtFiftyYears(t *testing.T) {
	years := calculateDuration("employed 1950 - 2020", nil, 2026)

	assert.Equal(t, 50, years)
}

func TestCalculateDuration_InvalidRangeDiscarded(t *testing.T) {
	years := calculateDuration("listed as 2022 - 2019 by mistake", nil, 2026)

	assert.Equal(t, 0, years)
}

func TestCountVerbs_WholeWordMatches(t *testing.T) {
	strong, weak := countVerbs("Led and delivered features; assisted QA. Misled nobody.")

	assert.Equal(t, 2, strong)
	assert.Equal(t, 1, weak)
}
