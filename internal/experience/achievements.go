package experience

import (
	"regexp"
	"strings"
)

const (
	achievementContext    = 50
	achievementBasePoints = 15
	maxAchievementBase    = 60
	highImpactBonus       = 10
	maxAchievementScore   = 100
	maxAchievementsKept   = 10
)

// Quantified-result shapes: percentages, large counts, money, and multiplier
// metrics.
var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?%`),
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*percent\b`),
	regexp.MustCompile(`(?i)\b\d+(?:,\d{3})*(?:\.\d+)?\s*(?:k|thousand)\b`),
	regexp.MustCompile(`(?i)\b\d+(?:,\d{3})*(?:\.\d+)?\s*(?:m|million)\b`),
	regexp.MustCompile(`(?i)\b\d+(?:,\d{3})*(?:\.\d+)?\s*(?:b|billion)\b`),
	regexp.MustCompile(`(?i)\$\d+(?:,\d{3})*(?:\.\d+)?(?:\s*(?:k|m|b|thousand|million|billion))?\b`),
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?x\s*(?:faster|quicker|improvement|increase)\b`),
	regexp.MustCompile(`(?i)\b(?:reduced|decreased|saved).*?\d+(?:\.\d+)?%`),
	regexp.MustCompile(`(?i)\b(?:increased|improved|boosted|grew).*?\d+(?:\.\d+)?%`),
}

// A quantified match only counts as an achievement if its surrounding context
// names an outcome.
var achievementKeywords = []string{
	"increased", "improved", "reduced", "decreased", "saved", "generated",
	"achieved", "exceeded", "delivered", "boosted", "optimized", "enhanced",
	"grew", "growth", "revenue", "profit", "efficiency", "performance",
}

var highImpactIndicators = []string{"$", "million", "billion", "%", "percent"}

var strongVerbs = []string{
	"led", "managed", "directed", "orchestrated", "spearheaded",
	"designed", "architected", "engineered", "developed", "created",
	"implemented", "deployed", "launched", "delivered", "built",
	"optimized", "improved", "enhanced", "streamlined", "automated",
	"transformed", "scaled", "established", "founded", "pioneered",
	"achieved", "accomplished", "exceeded", "increased", "reduced",
	"drove", "executed", "supervised", "coordinated", "facilitated",
}

var weakVerbs = []string{
	"assisted", "helped", "supported", "participated", "involved",
	"responsible", "worked", "handled", "dealt", "used",
	"familiar", "exposed", "learned", "studied", "observed",
	"attended", "contributed", "collaborated", "cooperated",
}

var verbPatterns = buildVerbPatterns()

func buildVerbPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(strongVerbs)+len(weakVerbs))
	for _, verb := range append(append([]string{}, strongVerbs...), weakVerbs...) {
		patterns[verb] = regexp.MustCompile(`\b` + regexp.QuoteMeta(verb) + `\b`)
	}
	return patterns
}

// detectAchievements finds quantified achievements and scores them: 15 points
// per achievement up to 60, plus 10 per high-impact mention, capped at 100.
func detectAchievements(text string) (int, []string) {
	var achievements []string

	for _, pattern := range achievementPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			start := loc[0] - achievementContext
			if start < 0 {
				start = 0
			}
			end := loc[1] + achievementContext
			if end > len(text) {
				end = len(text)
			}
			context := strings.TrimSpace(text[start:end])

			if containsAny(strings.ToLower(context), achievementKeywords) {
				achievements = append(achievements, context)
			}
		}
	}

	score := 0
	if len(achievements) > 0 {
		score = len(achievements) * achievementBasePoints
		if score > maxAchievementBase {
			score = maxAchievementBase
		}
		for _, achievement := range achievements {
			if containsAny(strings.ToLower(achievement), highImpactIndicators) {
				score += highImpactBonus
			}
		}
		if score > maxAchievementScore {
			score = maxAchievementScore
		}
	}

	unique := dedupe(achievements)
	if len(unique) > maxAchievementsKept {
		unique = unique[:maxAchievementsKept]
	}

	return score, unique
}

// countVerbs counts whole-word strong and weak verb occurrences.
func countVerbs(text string) (int, int) {
	lower := strings.ToLower(text)

	strong := 0
	for _, verb := range strongVerbs {
		strong += len(verbPatterns[verb].FindAllString(lower, -1))
	}

	weak := 0
	for _, verb := range weakVerbs {
		weak += len(verbPatterns[verb].FindAllString(lower, -1))
	}

	return strong, weak
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
