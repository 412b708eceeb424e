// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSections outputs a summary of the segmented resume sections.
func (p *Printer) PrintSections(sections types.SectionMap) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sections found: %d\n\n", sections.SectionsFound()))

	for _, name := range types.SectionNames {
		content := sections.Get(name)
		if content == "" {
			continue
		}
		preview := strings.ReplaceAll(content, "\n", " ")
		if len(preview) > 40 {
			preview = preview[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %-14s %d chars\n", name, len(content)))
		sb.WriteString(fmt.Sprintf("  %s\n", preview))
	}

	p.printBox("RESUME SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEntities outputs the extracted contact info and entity lists.
func (p *Printer) PrintEntities(entities types.EntityBundle) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", valueOrDash(entities.Name)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", valueOrDash(entities.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", valueOrDash(entities.Phone)))
	sb.WriteString("\n")

	writeEntityList(&sb, "Skills", entities.Skills)
	writeEntityList(&sb, "Companies", entities.Companies)
	writeEntityList(&sb, "Job Titles", entities.JobTitles)
	writeEntityList(&sb, "Degrees", entities.EducationDegrees)
	writeEntityList(&sb, "Dates", entities.Dates)

	p.printBox("EXTRACTED ENTITIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillAnalysis outputs the top skill proficiency results.
func (p *Printer) PrintSkillAnalysis(skills []types.SkillProficiency, summary types.SkillAnalysisSummary) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills analyzed: %d (avg score %.1f)\n\n", summary.TotalSkills, summary.AverageScore))

	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := skills[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, skill.Skill))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)", skill.Score, skill.Level))
		if skill.YearsExperience != nil {
			sb.WriteString(fmt.Sprintf(", %d years", *skill.YearsExperience))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", len(skills)-maxItemsToShow))
	}

	p.printBox("SKILL PROFICIENCY", sb.String())
}

// PrintExperience outputs the experience quality analysis.
func (p *Printer) PrintExperience(exp types.ExperienceAnalysis) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total experience: %d years\n", exp.TotalExperienceYears))
	sb.WriteString(fmt.Sprintf("Seniority:        %s\n", exp.SeniorityLevel))
	sb.WriteString(fmt.Sprintf("Strength score:   %d/100\n", exp.ExperienceStrengthScore))
	sb.WriteString(fmt.Sprintf("Achievements:     %d/100\n", exp.AchievementScore))
	sb.WriteString(fmt.Sprintf("Verbs:            %d strong / %d weak\n", exp.StrongVerbsCount, exp.WeakVerbsCount))

	if len(exp.QuantifiedAchievements) > 0 {
		sb.WriteString("\nQuantified achievements:\n")
		count := min(len(exp.QuantifiedAchievements), 3)
		for i := 0; i < count; i++ {
			achievement := exp.QuantifiedAchievements[i]
			if len(achievement) > 50 {
				achievement = achievement[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", achievement))
		}
		if len(exp.QuantifiedAchievements) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(exp.QuantifiedAchievements)-3))
		}
	}

	p.printBox("EXPERIENCE ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoring outputs the global score breakdown.
func (p *Printer) PrintScoring(result types.ScoringResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall: %d/100 (%s)\n\n", result.OverallScore, result.RecommendationTier))
	sb.WriteString(fmt.Sprintf("Skills:       %.1f\n", result.Breakdown.SkillsScore))
	sb.WriteString(fmt.Sprintf("Experience:   %.1f\n", result.Breakdown.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Achievements: %.1f\n", result.Breakdown.AchievementScore))
	sb.WriteString(fmt.Sprintf("Structure:    %.1f\n", result.Breakdown.StructureScore))

	if len(result.MissingSections) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing sections: %s\n", strings.Join(result.MissingSections, ", ")))
	}

	p.printBox("GLOBAL SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the evaluation report headline and top findings.
func (p *Printer) PrintReport(report types.EvaluationReport) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Tier: %s (%d/100)\n", report.ProfileTier, report.OverallScore))

	if len(report.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(report.Strengths), 3)
		for i := 0; i < count; i++ {
			strength := report.Strengths[i]
			if len(strength) > 50 {
				strength = strength[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", strength))
		}
	}

	if len(report.NextSteps) > 0 {
		sb.WriteString("\nNext steps:\n")
		count := min(len(report.NextSteps), 3)
		for i := 0; i < count; i++ {
			step := report.NextSteps[i]
			if len(step) > 50 {
				step = step[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", step))
		}
	}

	p.printBox("EVALUATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

func writeEntityList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	joined := strings.Join(items, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	sb.WriteString(fmt.Sprintf("%-11s %s\n", label+":", joined))
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
