package types

// SignalType identifies the kind of evidence found near a skill mention.
type SignalType string

// Signal types emitted by the proficiency engine.
const (
	SignalYearsExperience SignalType = "years_experience"
	SignalLevelKeyword    SignalType = "level_keyword"
	SignalStrongVerb      SignalType = "strong_verb"
	SignalWeakVerb        SignalType = "weak_verb"
)

// SkillSignal is a single piece of proficiency evidence found in the context
// window around a skill mention.
type SkillSignal struct {
	Type     SignalType `json:"signal_type"`
	Value    string     `json:"signal_value"`
	Weight   float64    `json:"weight"`
	Position int        `json:"position"`
}

// SkillLevel is the coarse proficiency band derived from the numeric score.
type SkillLevel string

// Proficiency bands: [0,30) Beginner, [30,60) Intermediate, [60,100] Expert.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelExpert       SkillLevel = "Expert"
)

// SkillProficiency is the per-skill result of the proficiency engine.
type SkillProficiency struct {
	Skill           string     `json:"skill"`
	Score           int        `json:"score"`
	Level           SkillLevel `json:"level"`
	YearsExperience *int       `json:"years_experience"`
	Confidence      float64    `json:"confidence"`
	SignalsDetected []string   `json:"signals_detected"`
}

// SkillAnalysisSummary aggregates a batch of per-skill results.
type SkillAnalysisSummary struct {
	TotalSkills       int            `json:"total_skills"`
	AverageScore      float64        `json:"average_score"`
	LevelDistribution map[string]int `json:"level_distribution"`
}
