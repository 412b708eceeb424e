// Package report turns scoring and analysis output into a structured,
// human-readable evaluation report with strengths, weaknesses, and
// actionable recommendations.
package report

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/resume-evaluator/internal/types"
)

const (
	maxStrengths       = 6
	maxWeaknesses      = 5
	maxRecommendations = 6
	maxNextSteps       = 4

	priorityHigh   = "high"
	priorityMedium = "medium"
)

// Thresholds control which report branches fire. All values are scores on a
// 0-100 scale.
type Thresholds struct {
	HighScore          int `json:"high_score_threshold"`
	ModerateScore      int `json:"moderate_score_threshold"`
	HighSkill          int `json:"high_skill_threshold"`
	LowSkill           int `json:"low_skill_threshold"`
	StrongAchievement  int `json:"strong_achievement_threshold"`
	ExperienceStrength int `json:"experience_strength_threshold"`
}

// DefaultThresholds returns the standard report thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighScore:          80,
		ModerateScore:      60,
		HighSkill:          70,
		LowSkill:           40,
		StrongAchievement:  75,
		ExperienceStrength: 70,
	}
}

// criticalSkills are the in-demand industry skills called out in the report
// narrative. Order matters: the "consider adding" recommendation draws from
// the front of the list.
var criticalSkills = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "kotlin", "swift",
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins", "terraform", "ansible",
	"sql", "machine learning", "data science", "tensorflow", "pytorch", "spark", "hadoop",
	"react", "angular", "vue", "node.js", "spring", "django", "flask", "express",
	"postgresql", "mongodb", "redis", "elasticsearch", "mysql", "cassandra",
	"agile", "scrum", "devops", "microservices", "rest api", "graphql",
}

var criticalSkillSet = buildCriticalSkillSet()

func buildCriticalSkillSet() map[string]bool {
	set := make(map[string]bool, len(criticalSkills))
	for _, skill := range criticalSkills {
		set[skill] = true
	}
	return set
}

// Generator builds evaluation reports.
type Generator struct {
	thresholds Thresholds
}

// NewGenerator creates a generator with default thresholds.
func NewGenerator() *Generator {
	return &Generator{thresholds: DefaultThresholds()}
}

// NewGeneratorWithThresholds creates a generator with custom thresholds.
func NewGeneratorWithThresholds(t Thresholds) *Generator {
	return &Generator{thresholds: t}
}

// Generate builds the full evaluation report. The evaluation date recorded in
// the criteria map comes from now, so callers sample the clock once per
// pipeline run.
func (g *Generator) Generate(
	scoring types.ScoringResult,
	skills []types.SkillProficiency,
	exp types.ExperienceAnalysis,
	now time.Time,
) types.EvaluationReport {
	log.Printf("[report] generating evaluation report, overall score %d/100", scoring.OverallScore)

	summary, tier := g.summaryStatement(scoring.OverallScore)
	strengths := g.identifyStrengths(scoring, skills, exp)
	weaknesses := g.identifyWeaknesses(scoring, skills, exp)
	recommendations := g.generateRecommendations(scoring, skills, exp)

	criteria := map[string]string{
		"skills_weight":       formatWeight(scoring.WeightsUsed.Skills),
		"experience_weight":   formatWeight(scoring.WeightsUsed.Experience),
		"achievement_weight":  formatWeight(scoring.WeightsUsed.Achievement),
		"structure_weight":    formatWeight(scoring.WeightsUsed.Structure),
		"evaluation_date":     now.Format("2006-01-02"),
		"scoring_methodology": "Rule-based multi-component analysis",
	}

	log.Printf("[report] tier %q: %d strengths, %d weaknesses, %d recommendations",
		tier, len(strengths), len(weaknesses), len(recommendations))

	return types.EvaluationReport{
		OverallScore:         scoring.OverallScore,
		ProfileTier:          tier,
		SummaryStatement:     summary,
		Strengths:            strengths,
		Weaknesses:           weaknesses,
		Recommendations:      recommendations,
		SkillsEvaluation:     g.skillsEvaluation(skills, scoring.Breakdown.SkillsScore),
		ExperienceEvaluation: g.experienceEvaluation(exp, scoring.Breakdown.ExperienceScore),
		StructureEvaluation:  g.structureEvaluation(scoring.MissingSections, scoring.Breakdown.StructureScore),
		NextSteps:            g.nextSteps(scoring),
		EvaluationCriteria:   criteria,
	}
}

func (g *Generator) summaryStatement(overall int) (string, string) {
	switch {
	case overall >= g.thresholds.HighScore:
		return fmt.Sprintf(
			"This is a strong professional profile with an overall score of %d/100. "+
				"The candidate demonstrates excellent qualifications with well-developed skills, "+
				"substantial experience, and clear evidence of professional achievements. "+
				"This profile would be competitive for senior-level positions.", overall,
		), "Strong Profile"
	case overall >= g.thresholds.ModerateScore:
		return fmt.Sprintf(
			"This is a moderate professional profile with an overall score of %d/100. "+
				"The candidate shows solid foundational skills and relevant experience, though "+
				"there are opportunities for enhancement in certain areas. With targeted improvements, "+
				"this profile could become highly competitive.", overall,
		), "Moderate Profile"
	default:
		return fmt.Sprintf(
			"This is a developing professional profile with an overall score of %d/100. "+
				"While the candidate shows potential, significant improvements are needed to enhance "+
				"competitiveness. Focus on skill development, experience building, and resume optimization "+
				"would strengthen this profile considerably.", overall,
		), "Developing Profile"
	}
}

func (g *Generator) identifyStrengths(
	scoring types.ScoringResult,
	skills []types.SkillProficiency,
	exp types.ExperienceAnalysis,
) []string {
	var strengths []string

	var highSkills []types.SkillProficiency
	for _, skill := range skills {
		if skill.Score > g.thresholds.HighSkill {
			highSkills = append(highSkills, skill)
		}
	}
	if len(highSkills) > 0 {
		var criticalHigh []string
		for _, skill := range highSkills {
			if criticalSkillSet[strings.ToLower(skill.Skill)] {
				criticalHigh = append(criticalHigh, skill.Skill)
			}
		}
		if len(criticalHigh) > 0 {
			strengths = append(strengths,
				"Strong proficiency in critical technical skills: "+strings.Join(head(criticalHigh, 4), ", "))
		}
		if len(highSkills) >= 5 {
			strengths = append(strengths,
				fmt.Sprintf("Diverse technical skill portfolio with %d high-proficiency skills", len(highSkills)))
		}
	}

	if exp.ExperienceStrengthScore >= g.thresholds.ExperienceStrength {
		if exp.TotalExperienceYears >= 5 {
			strengths = append(strengths,
				fmt.Sprintf("Substantial professional experience (%d years)", exp.TotalExperienceYears))
		}
		if exp.SeniorityLevel == "Senior" || exp.SeniorityLevel == "Executive" {
			strengths = append(strengths, exp.SeniorityLevel+"-level professional background")
		}
	}

	if exp.AchievementScore >= g.thresholds.StrongAchievement {
		strengths = append(strengths, "Strong track record of quantified professional achievements")
		if len(exp.QuantifiedAchievements) >= 3 {
			strengths = append(strengths, "Multiple measurable accomplishments demonstrating impact")
		}
	}

	if exp.StrongVerbsCount > exp.WeakVerbsCount*2 {
		strengths = append(strengths, "Strong leadership and action-oriented language throughout experience")
	}

	if scoring.Breakdown.StructureScore >= 90 {
		strengths = append(strengths, "Well-organized resume structure with comprehensive sections")
	}
	if scoring.Breakdown.SkillsScore >= 85 {
		strengths = append(strengths, "Exceptional technical skills evaluation")
	}
	if scoring.Breakdown.ExperienceScore >= 85 {
		strengths = append(strengths, "Outstanding professional experience quality")
	}

	if len(strengths) == 0 {
		if len(skills) > 0 {
			strengths = append(strengths,
				"Technical skills portfolio including "+strings.Join(skillNames(head(skills, 3)), ", "))
		}
		if exp.TotalExperienceYears > 0 {
			strengths = append(strengths,
				fmt.Sprintf("Professional experience in the field (%d years)", exp.TotalExperienceYears))
		}
		if len(strengths) == 0 {
			strengths = append(strengths, "Resume submitted for professional evaluation")
		}
	}

	return head(strengths, maxStrengths)
}

func (g *Generator) identifyWeaknesses(
	scoring types.ScoringResult,
	skills []types.SkillProficiency,
	exp types.ExperienceAnalysis,
) []string {
	var weaknesses []string

	lowSkills := lowProficiency(skills, g.thresholds.LowSkill)
	if len(lowSkills) > 0 {
		weaknesses = append(weaknesses,
			"Limited proficiency in key skills: "+strings.Join(skillNames(head(lowSkills, 3)), ", "))
	}
	if len(skills) < 5 {
		weaknesses = append(weaknesses, "Limited technical skills diversity - consider expanding skill set")
	}

	if exp.ExperienceStrengthScore < g.thresholds.ExperienceStrength {
		weaknesses = append(weaknesses, "Professional experience could benefit from stronger impact statements")
	}
	if exp.TotalExperienceYears < 2 {
		weaknesses = append(weaknesses,
			"Limited professional experience - focus on skill development and practice projects")
	}

	if exp.AchievementScore < 50 {
		weaknesses = append(weaknesses, "Lack of quantified achievements and measurable results")
	}
	if len(exp.QuantifiedAchievements) == 0 {
		weaknesses = append(weaknesses, "Missing specific metrics and quantified accomplishments")
	}

	if exp.WeakVerbsCount > exp.StrongVerbsCount {
		weaknesses = append(weaknesses,
			"Passive language - replace weak action verbs with stronger, more impactful terms")
	}

	if len(scoring.MissingSections) > 0 {
		weaknesses = append(weaknesses,
			"Missing important resume sections: "+strings.Join(scoring.MissingSections, ", "))
	}
	if scoring.Breakdown.StructureScore < 70 {
		weaknesses = append(weaknesses, "Resume structure and organization could be improved")
	}

	if scoring.Breakdown.SkillsScore < 60 {
		weaknesses = append(weaknesses, "Technical skills evaluation indicates need for skill development")
	}
	if scoring.Breakdown.ExperienceScore < 60 {
		weaknesses = append(weaknesses, "Professional experience section needs strengthening")
	}
	if scoring.Breakdown.AchievementScore < 40 {
		weaknesses = append(weaknesses, "Limited demonstration of professional impact and achievements")
	}

	if (exp.SeniorityLevel == "Senior" || exp.SeniorityLevel == "Executive") && exp.AchievementScore < 70 {
		weaknesses = append(weaknesses, "Senior-level role should demonstrate stronger quantified achievements")
	}

	if len(weaknesses) == 0 && scoring.OverallScore < g.thresholds.ModerateScore {
		weaknesses = append(weaknesses, "Overall profile needs strengthening across multiple areas")
	}
	if len(weaknesses) == 0 && scoring.OverallScore < 95 {
		weaknesses = append(weaknesses,
			"Continue building expertise and documenting achievements for career growth")
	}

	return head(weaknesses, maxWeaknesses)
}

func (g *Generator) generateRecommendations(
	scoring types.ScoringResult,
	skills []types.SkillProficiency,
	exp types.ExperienceAnalysis,
) []string {
	var recommendations []string

	lowSkills := lowProficiency(skills, g.thresholds.LowSkill)
	if len(lowSkills) > 0 {
		recommendations = append(recommendations,
			"Enhance proficiency in "+strings.Join(skillNames(head(lowSkills, 2)), ", ")+
				" through courses or hands-on projects")
	}

	analyzed := make(map[string]bool, len(skills))
	for _, skill := range skills {
		analyzed[strings.ToLower(skill.Skill)] = true
	}
	var missing []string
	for _, critical := range criticalSkills[:10] {
		if !analyzed[critical] {
			missing = append(missing, critical)
		}
	}
	if len(missing) > 0 && len(skills) < 8 {
		recommendations = append(recommendations,
			"Consider adding in-demand skills like "+strings.Join(head(missing, 2), ", ")+
				" to strengthen technical profile")
	}

	if exp.AchievementScore < g.thresholds.StrongAchievement {
		recommendations = append(recommendations,
			"Add specific metrics and quantified results to experience descriptions (e.g., '% improvement', '$ saved', 'users served')")
	}
	if exp.WeakVerbsCount > exp.StrongVerbsCount {
		recommendations = append(recommendations,
			"Replace passive language with strong action verbs like 'led', 'implemented', 'optimized', 'designed'")
	}
	if (exp.SeniorityLevel == "Entry" || exp.SeniorityLevel == "Junior") && exp.TotalExperienceYears >= 2 {
		recommendations = append(recommendations,
			"Highlight leadership opportunities and initiatives to demonstrate career progression")
	}

	if len(scoring.MissingSections) > 0 {
		var essential []string
		for _, section := range scoring.MissingSections {
			if section == "summary" || section == "skills" || section == "experience" {
				essential = append(essential, section)
			}
		}
		if len(essential) > 0 {
			recommendations = append(recommendations,
				"Add essential resume sections: "+strings.Join(essential, ", "))
		}
	}
	if scoring.Breakdown.StructureScore < 80 {
		recommendations = append(recommendations,
			"Improve resume organization with clear section headings and consistent formatting")
	}

	if exp.TotalExperienceYears < 3 {
		recommendations = append(recommendations,
			"Build experience through internships, freelance projects, or open-source contributions")
	}
	if scoring.OverallScore >= g.thresholds.HighScore && exp.SeniorityLevel != "Executive" {
		recommendations = append(recommendations,
			"Consider pursuing leadership roles or certifications to advance to the next career level")
	}
	if len(skills) >= 8 && exp.AchievementScore >= 70 {
		recommendations = append(recommendations,
			"Create a portfolio or GitHub profile to showcase practical application of your technical skills")
	}

	if len(recommendations) == 0 {
		if scoring.OverallScore < g.thresholds.ModerateScore {
			recommendations = append(recommendations,
				"Focus on skill development and gaining relevant professional experience")
		} else {
			recommendations = append(recommendations,
				"Continue documenting achievements and expanding technical expertise")
		}
	}

	return head(recommendations, maxRecommendations)
}

func (g *Generator) skillsEvaluation(skills []types.SkillProficiency, skillsScore float64) types.EvaluationSection {
	if len(skills) == 0 {
		return types.EvaluationSection{
			Title:         "Skills Analysis",
			Content:       []string{"No technical skills identified for evaluation"},
			PriorityLevel: priorityHigh,
		}
	}

	content := []string{
		fmt.Sprintf("Technical skills evaluation score: %.1f/100", skillsScore),
		fmt.Sprintf("Total skills identified: %d", len(skills)),
	}

	var expert, advanced, developing []types.SkillProficiency
	for _, skill := range skills {
		switch {
		case skill.Level == types.LevelExpert || skill.Score >= 80:
			expert = append(expert, skill)
		case skill.Score >= 60:
			advanced = append(advanced, skill)
		default:
			developing = append(developing, skill)
		}
	}
	if len(expert) > 0 {
		content = append(content, fmt.Sprintf("Expert-level skills (%d): %s",
			len(expert), strings.Join(skillNames(head(expert, 5)), ", ")))
	}
	if len(advanced) > 0 {
		content = append(content, fmt.Sprintf("Advanced skills (%d): %s",
			len(advanced), strings.Join(skillNames(head(advanced, 5)), ", ")))
	}
	if len(developing) > 0 {
		content = append(content, fmt.Sprintf("Developing skills (%d): %s",
			len(developing), strings.Join(skillNames(head(developing, 3)), ", ")))
	}

	var critical []string
	for _, skill := range skills {
		if criticalSkillSet[strings.ToLower(skill.Skill)] {
			critical = append(critical, skill.Skill)
		}
	}
	if len(critical) > 0 {
		content = append(content, "High-demand industry skills: "+strings.Join(critical, ", "))
	}

	return types.EvaluationSection{
		Title:         "Skills Analysis",
		Content:       content,
		PriorityLevel: priorityHigh,
	}
}

func (g *Generator) experienceEvaluation(exp types.ExperienceAnalysis, experienceScore float64) types.EvaluationSection {
	content := []string{
		fmt.Sprintf("Professional experience score: %.1f/100", experienceScore),
		fmt.Sprintf("Total experience: %d years", exp.TotalExperienceYears),
		"Seniority level: " + exp.SeniorityLevel,
	}

	switch {
	case exp.AchievementScore >= g.thresholds.StrongAchievement:
		content = append(content, fmt.Sprintf("Strong achievement record (score: %d/100)", exp.AchievementScore))
	case exp.AchievementScore >= 50:
		content = append(content, fmt.Sprintf("Moderate achievement documentation (score: %d/100)", exp.AchievementScore))
	default:
		content = append(content, fmt.Sprintf("Limited quantified achievements (score: %d/100)", exp.AchievementScore))
	}

	totalVerbs := exp.StrongVerbsCount + exp.WeakVerbsCount
	if totalVerbs > 0 {
		strongRatio := float64(exp.StrongVerbsCount) / float64(totalVerbs)
		if strongRatio > 0.6 {
			content = append(content,
				fmt.Sprintf("Strong action-oriented language (%d strong verbs)", exp.StrongVerbsCount))
		} else {
			content = append(content,
				fmt.Sprintf("Opportunity to improve action verb usage (ratio: %.1f%%)", strongRatio*100))
		}
	}

	if exp.TotalExperienceYears >= 5 && (exp.SeniorityLevel == "Senior" || exp.SeniorityLevel == "Executive") {
		content = append(content, "Career progression aligns with experience level")
	} else if exp.TotalExperienceYears >= 3 && (exp.SeniorityLevel == "Entry" || exp.SeniorityLevel == "Junior") {
		content = append(content, "Opportunity for career advancement based on experience")
	}

	return types.EvaluationSection{
		Title:         "Experience Analysis",
		Content:       content,
		PriorityLevel: priorityHigh,
	}
}

func (g *Generator) structureEvaluation(missingSections []string, structureScore float64) types.EvaluationSection {
	content := []string{fmt.Sprintf("Resume structure score: %.1f/100", structureScore)}

	if len(missingSections) == 0 {
		content = append(content, "All essential resume sections are present")
	} else {
		content = append(content, "Missing sections: "+strings.Join(missingSections, ", "))
	}

	switch {
	case structureScore >= 90:
		content = append(content, "Excellent resume organization and completeness")
	case structureScore >= 70:
		content = append(content, "Good resume structure with minor improvements needed")
	default:
		content = append(content, "Resume structure needs significant improvement")
	}

	return types.EvaluationSection{
		Title:         "Structure Analysis",
		Content:       content,
		PriorityLevel: priorityMedium,
	}
}

func (g *Generator) nextSteps(scoring types.ScoringResult) []string {
	var steps []string

	switch {
	case scoring.OverallScore < 60:
		steps = append(steps,
			"Focus on fundamental resume improvements and skill development",
			"Add quantified achievements and specific examples of impact")
	case scoring.OverallScore < 80:
		steps = append(steps,
			"Enhance technical skills and strengthen experience descriptions",
			"Improve resume structure and add missing sections")
	default:
		steps = append(steps,
			"Fine-tune resume for specific target positions",
			"Continue building expertise in emerging technologies")
	}

	if scoring.Breakdown.SkillsScore < 70 {
		steps = append(steps, "Invest in technical skill development through courses or certifications")
	}
	if scoring.Breakdown.ExperienceScore < 70 {
		steps = append(steps, "Rewrite experience descriptions with stronger action verbs and metrics")
	}
	if len(scoring.MissingSections) > 0 {
		steps = append(steps, "Complete all essential resume sections before applying")
	}

	return head(steps, maxNextSteps)
}

func lowProficiency(skills []types.SkillProficiency, threshold int) []types.SkillProficiency {
	var low []types.SkillProficiency
	for _, skill := range skills {
		if skill.Score <= threshold {
			low = append(low, skill)
		}
	}
	return low
}

func skillNames(skills []types.SkillProficiency) []string {
	names := make([]string, len(skills))
	for i, skill := range skills {
		names[i] = skill.Skill
	}
	return names
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func formatWeight(w float64) string {
	return fmt.Sprintf("%.0f%%", w*100)
}
