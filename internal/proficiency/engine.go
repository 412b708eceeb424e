// Package proficiency estimates per-skill proficiency by scanning the context
// around each skill mention for years-of-experience phrases, explicit level
// keywords, and strong or weak action verbs.
package proficiency

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

const (
	// contextWindow is how many characters around a mention are inspected.
	contextWindow = 100

	// noMentionScore is assigned to skills listed but never found in text.
	noMentionScore      = 10
	noMentionConfidence = 0.1

	// baseSignalScore is granted whenever at least one signal exists.
	baseSignalScore = 20

	// Years contribute 15 points per year, capped.
	yearsPointsPerYear = 15.0
	maxYearsBonus      = 60.0

	minPlausibleYears = 0.5
	maxPlausibleYears = 20.0

	strongVerbBase = 60.0
	weakVerbBase   = 30.0

	yearsWeight      = 0.6
	levelWeight      = 0.4
	strongVerbWeight = 0.3
	weakVerbWeight   = -0.2
)

// levelKeyword pairs an explicit proficiency word with its base score.
type levelKeyword struct {
	keyword string
	score   float64
}

// verbWeight pairs an action verb with its strength factor.
type verbWeight struct {
	verb     string
	strength float64
}

var levelKeywords = []levelKeyword{
	{"expert", 90},
	{"advanced", 85},
	{"proficient", 75},
	{"experienced", 70},
	{"intermediate", 50},
	{"moderate", 45},
	{"basic", 30},
	{"beginner", 20},
	{"novice", 15},
	{"familiar", 25},
	{"learning", 20},
}

var strongVerbs = []verbWeight{
	{"architected", 0.9},
	{"designed", 0.8},
	{"developed", 0.8},
	{"built", 0.7},
	{"led", 0.9},
	{"managed", 0.8},
	{"optimized", 0.8},
	{"implemented", 0.7},
	{"created", 0.7},
	{"engineered", 0.8},
	{"deployed", 0.7},
	{"maintained", 0.6},
	{"integrated", 0.6},
	{"configured", 0.6},
	{"customized", 0.6},
	{"enhanced", 0.7},
	{"improved", 0.7},
	{"automated", 0.8},
	{"streamlined", 0.7},
	{"scaled", 0.8},
}

var weakVerbs = []verbWeight{
	{"learned", 0.3},
	{"studied", 0.3},
	{"familiar", 0.3},
	{"exposed", 0.2},
	{"introduced", 0.3},
	{"trained", 0.4},
	{"attended", 0.2},
	{"participated", 0.3},
	{"observed", 0.2},
	{"assisted", 0.4},
	{"helped", 0.4},
	{"supported", 0.4},
}

var numberPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// Engine scores skills against resume text. It is stateless and safe for
// concurrent use.
type Engine struct{}

// NewEngine creates a proficiency engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Analyze scores every skill independently against the resume text. The
// result order matches the input order.
func (e *Engine) Analyze(skills []string, resumeText string) []types.SkillProficiency {
	results := make([]types.SkillProficiency, 0, len(skills))
	for _, skill := range skills {
		results = append(results, e.AnalyzeSkill(skill, resumeText))
	}
	return results
}

// Summarize computes aggregate statistics over per-skill results.
func Summarize(results []types.SkillProficiency) types.SkillAnalysisSummary {
	summary := types.SkillAnalysisSummary{
		TotalSkills: len(results),
		LevelDistribution: map[string]int{
			string(types.LevelBeginner):     0,
			string(types.LevelIntermediate): 0,
			string(types.LevelExpert):       0,
		},
	}

	if len(results) == 0 {
		return summary
	}

	total := 0
	for _, r := range results {
		total += r.Score
		summary.LevelDistribution[string(r.Level)]++
	}
	summary.AverageScore = roundTo(float64(total)/float64(len(results)), 2)

	return summary
}

// AnalyzeSkill scores one skill from the signals found around its mentions.
func (e *Engine) AnalyzeSkill(skill, resumeText string) types.SkillProficiency {
	occurrences := findOccurrences(skill, resumeText)

	if len(occurrences) == 0 {
		return types.SkillProficiency{
			Skill:           skill,
			Score:           noMentionScore,
			Level:           types.LevelBeginner,
			Confidence:      noMentionConfidence,
			SignalsDetected: []string{"skill listed but no context found"},
		}
	}

	var signals []types.SkillSignal
	for _, position := range occurrences {
		context := contextAround(resumeText, position, len(skill))
		signals = append(signals, detectSignals(skill, context, position)...)
	}
	signals = deduplicate(signals)

	score := scoreSignals(signals)

	return types.SkillProficiency{
		Skill:           skill,
		Score:           score,
		Level:           scoreToLevel(score),
		YearsExperience: yearsFromSignals(signals),
		Confidence:      confidence(signals, len(occurrences)),
		SignalsDetected: signalValues(signals),
	}
}

// findOccurrences locates skill mentions case-insensitively on word
// boundaries. Skills carrying symbols such as "C++" fall back to a manual
// boundary scan, since \b misbehaves next to non-word characters.
func findOccurrences(skill, text string) []int {
	textLower := strings.ToLower(text)
	skillLower := strings.ToLower(skill)
	if skillLower == "" {
		return nil
	}

	if hasSymbol(skillLower) {
		return scanOccurrences(textLower, skillLower)
	}

	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(skillLower) + `\b`)
	var positions []int
	for _, m := range pattern.FindAllStringIndex(textLower, -1) {
		positions = append(positions, m[0])
	}
	return positions
}

func hasSymbol(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '_':
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		default:
			return true
		}
	}
	return false
}

func scanOccurrences(textLower, skillLower string) []int {
	var positions []int
	for i := 0; i <= len(textLower)-len(skillLower); {
		j := strings.Index(textLower[i:], skillLower)
		if j < 0 {
			break
		}
		positions = append(positions, i+j)
		i = i + j + 1
	}
	return positions
}

func contextAround(text string, position, skillLen int) string {
	start := position - contextWindow
	if start < 0 {
		start = 0
	}
	end := position + skillLen + contextWindow
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}

func detectSignals(skill, context string, position int) []types.SkillSignal {
	var signals []types.SkillSignal
	contextLower := strings.ToLower(context)

	signals = append(signals, detectYears(skill, contextLower, position)...)

	for _, lk := range levelKeywords {
		if idx := strings.Index(contextLower, lk.keyword); idx >= 0 {
			signals = append(signals, types.SkillSignal{
				Type:     types.SignalLevelKeyword,
				Value:    lk.keyword + " level",
				Weight:   levelWeight * (lk.score / 100),
				Position: position + idx,
			})
		}
	}

	for _, vw := range strongVerbs {
		if idx := strings.Index(contextLower, vw.verb); idx >= 0 {
			signals = append(signals, types.SkillSignal{
				Type:     types.SignalStrongVerb,
				Value:    "strong action: " + vw.verb,
				Weight:   strongVerbWeight * vw.strength,
				Position: position + idx,
			})
		}
	}

	for _, vw := range weakVerbs {
		if idx := strings.Index(contextLower, vw.verb); idx >= 0 {
			signals = append(signals, types.SkillSignal{
				Type:     types.SignalWeakVerb,
				Value:    "weak indicator: " + vw.verb,
				Weight:   weakVerbWeight * vw.strength,
				Position: position + idx,
			})
		}
	}

	return signals
}

// detectYears matches the four phrasings that tie a year count to the skill,
// accepting only plausible values.
func detectYears(skill, contextLower string, position int) []types.SkillSignal {
	escaped := regexp.QuoteMeta(strings.ToLower(skill))
	patterns := []string{
		`(\d+(?:\.\d+)?)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience\s*)?(?:with\s*|in\s*|using\s*)?` + escaped,
		escaped + `\s*(?:for\s*|over\s*)?(\d+(?:\.\d+)?)\s*(?:years?|yrs?)`,
		`(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)\s*.*?` + escaped,
		escaped + `.*?(\d+(?:\.\d+)?)\s*(?:years?|yrs?)`,
	}

	var signals []types.SkillSignal
	for _, raw := range patterns {
		pattern, err := regexp.Compile(raw)
		if err != nil {
			continue
		}
		for _, m := range pattern.FindAllStringSubmatchIndex(contextLower, -1) {
			yearsStr := contextLower[m[2]:m[3]]
			years, err := strconv.ParseFloat(yearsStr, 64)
			if err != nil || years < minPlausibleYears || years > maxPlausibleYears {
				continue
			}
			signals = append(signals, types.SkillSignal{
				Type:     types.SignalYearsExperience,
				Value:    fmt.Sprintf("%g years of %s", years, skill),
				Weight:   yearsWeight,
				Position: position + m[0],
			})
		}
	}
	return signals
}

func deduplicate(signals []types.SkillSignal) []types.SkillSignal {
	seen := make(map[string]bool, len(signals))
	var unique []types.SkillSignal
	for _, s := range signals {
		key := string(s.Type) + "|" + strings.ToLower(s.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, s)
	}
	return unique
}

// scoreSignals aggregates signal contributions. Only the single best years
// bonus counts; weak verbs subtract; the clamp to [0,100] is applied once on
// the final total.
func scoreSignals(signals []types.SkillSignal) int {
	if len(signals) == 0 {
		return noMentionScore
	}

	total := 0.0
	yearsBonus := 0.0

	for _, s := range signals {
		switch s.Type {
		case types.SignalYearsExperience:
			if m := numberPattern.FindString(s.Value); m != "" {
				years, err := strconv.ParseFloat(m, 64)
				if err == nil {
					bonus := years * yearsPointsPerYear
					if bonus > maxYearsBonus {
						bonus = maxYearsBonus
					}
					if bonus > yearsBonus {
						yearsBonus = bonus
					}
				}
			}
		case types.SignalLevelKeyword:
			for _, lk := range levelKeywords {
				if strings.Contains(strings.ToLower(s.Value), lk.keyword) {
					total += lk.score * s.Weight
					break
				}
			}
		case types.SignalStrongVerb:
			total += strongVerbBase * s.Weight
		case types.SignalWeakVerb:
			total += s.Weight * weakVerbBase
		}
	}

	total += yearsBonus
	total += baseSignalScore

	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return int(total)
}

func scoreToLevel(score int) types.SkillLevel {
	switch {
	case score < 30:
		return types.LevelBeginner
	case score < 60:
		return types.LevelIntermediate
	default:
		return types.LevelExpert
	}
}

func yearsFromSignals(signals []types.SkillSignal) *int {
	for _, s := range signals {
		if s.Type != types.SignalYearsExperience {
			continue
		}
		if m := numberPattern.FindString(s.Value); m != "" {
			if years, err := strconv.ParseFloat(m, 64); err == nil {
				y := int(years)
				return &y
			}
		}
	}
	return nil
}

// confidence grows with signal-type variety, mention count, and mean absolute
// signal weight, capped at 1.
func confidence(signals []types.SkillSignal, occurrences int) float64 {
	if len(signals) == 0 {
		return noMentionConfidence
	}

	seenTypes := make(map[types.SignalType]bool)
	weightSum := 0.0
	for _, s := range signals {
		seenTypes[s.Type] = true
		if s.Weight < 0 {
			weightSum -= s.Weight
		} else {
			weightSum += s.Weight
		}
	}

	typeConfidence := float64(len(seenTypes)) * 0.2
	occurrenceConfidence := float64(occurrences) * 0.1
	if occurrenceConfidence > 0.3 {
		occurrenceConfidence = 0.3
	}
	strengthConfidence := weightSum / float64(len(signals))

	total := typeConfidence + occurrenceConfidence + strengthConfidence
	if total > 1.0 {
		return 1.0
	}
	return total
}

func signalValues(signals []types.SkillSignal) []string {
	values := make([]string, 0, len(signals))
	for _, s := range signals {
		values = append(values, s.Value)
	}
	return values
}

func roundTo(v float64, places int) float64 {
	factor := 1.0
	for i := 0; i < places; i++ {
		factor *= 10
	}
	if v >= 0 {
		return float64(int64(v*factor+0.5)) / factor
	}
	return float64(int64(v*factor-0.5)) / factor
}
