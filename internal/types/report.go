package types

// EvaluationSection is one titled block of a generated report.
type EvaluationSection struct {
	Title         string   `json:"title"`
	Content       []string `json:"content"`
	PriorityLevel string   `json:"priority_level"`
}

// EvaluationReport is the reader-facing narrative built from the scoring
// result and the underlying analyses.
type EvaluationReport struct {
	OverallScore         int               `json:"overall_score"`
	ProfileTier          string            `json:"profile_tier"`
	SummaryStatement     string            `json:"summary_statement"`
	Strengths            []string          `json:"strengths"`
	Weaknesses           []string          `json:"weaknesses"`
	Recommendations      []string          `json:"recommendations"`
	SkillsEvaluation     EvaluationSection `json:"skills_evaluation"`
	ExperienceEvaluation EvaluationSection `json:"experience_evaluation"`
	StructureEvaluation  EvaluationSection `json:"structure_evaluation"`
	NextSteps            []string          `json:"next_steps"`
	EvaluationCriteria   map[string]string `json:"evaluation_criteria"`
}
