package types

// ExperienceAnalysis is the output of the experience quality analyzer.
type ExperienceAnalysis struct {
	TotalExperienceYears    int      `json:"total_experience_years"`
	SeniorityLevel          string   `json:"seniority_level"`
	AchievementScore        int      `json:"achievement_score"`
	ExperienceStrengthScore int      `json:"experience_strength_score"`
	DetectedRoles           []string `json:"detected_roles"`
	QuantifiedAchievements  []string `json:"quantified_achievements"`
	StrongVerbsCount        int      `json:"strong_verbs_count"`
	WeakVerbsCount          int      `json:"weak_verbs_count"`
}
