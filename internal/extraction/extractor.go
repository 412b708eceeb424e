// Package extraction pulls structured entities out of segmented resume
// sections: contact details, skills, employers, job titles, degrees, and
// date expressions.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/ner"
	"github.com/jonathan/resume-evaluator/internal/types"
)

const (
	// nameScanLimit bounds how much of a text source is handed to the
	// recognizer when hunting for the candidate's name.
	nameScanLimit = 500
	// combinedPreviewLimit is how much combined section text is used as the
	// last-resort name source.
	combinedPreviewLimit = 200

	minTokenLength = 2
	maxTokenLength = 30
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Phone patterns are tried in priority order; the first that matches wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?1?[-.\s]?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
		regexp.MustCompile(`\+?([0-9]{1,3})[-.\s]?([0-9]{3,4})[-.\s]?([0-9]{3,4})[-.\s]?([0-9]{3,4})`),
		regexp.MustCompile(`\b([0-9]{10})\b`),
	}

	jobTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Senior|Junior|Lead|Principal|Chief)?\s*(Software|Web|Data|System)?\s*(Engineer|Developer|Programmer|Analyst|Manager|Director|Architect)`),
		regexp.MustCompile(`(?i)(Full\s*Stack|Front\s*End|Back\s*End|DevOps)\s*(Engineer|Developer)`),
		regexp.MustCompile(`(?i)(Product|Project|Technical|Engineering)\s*(Manager)`),
		regexp.MustCompile(`(?i)\b(CTO|CEO|VP|Director)\b`),
	}

	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(Bachelor|B\.?\s*(Tech|Sc|A|E|S|Com))\b`),
		regexp.MustCompile(`(?i)\b(Master|M\.?\s*(Tech|Sc|A|E|S|Com|BA))\b`),
		regexp.MustCompile(`(?i)\b(Ph\.?D|PhD|Doctorate)\b`),
		regexp.MustCompile(`(?i)\b(MBA|MCA|BCA)\b`),
		regexp.MustCompile(`(?i)\b(Diploma)\b`),
		regexp.MustCompile(`(?i)\b(Associate|A\.S)\b`),
	}

	nonTokenChars = regexp.MustCompile(`[^\w\s+#.]`)

	nameBlacklist     = []string{"resume", "cv", "profile", "engineer", "developer", "manager"}
	academicOrgWords  = []string{"university", "college", "school", "institute"}
	skillSeparators   = []string{",", "•", "▪", "-", "|", "\n", ";"}
	minDateTextLength = 2
)

// Extractor pulls entities from segmented sections. NER-backed fields (name,
// companies, dates) degrade gracefully when the recognizer finds nothing.
type Extractor struct {
	recognizer ner.Recognizer
	vocabulary []string
}

// New creates an Extractor using the given recognizer. A nil recognizer
// disables NER-backed fields.
func New(recognizer ner.Recognizer) *Extractor {
	if recognizer == nil {
		recognizer = ner.Noop{}
	}
	return &Extractor{recognizer: recognizer, vocabulary: technicalSkills}
}

// Extract processes segmented sections into an entity bundle. Empty sections
// yield empty fields, never errors.
func (e *Extractor) Extract(sections types.SectionMap) types.EntityBundle {
	var bundle types.EntityBundle

	allText := combineSections(sections)
	bundle.Email = extractEmail(allText)
	bundle.Phone = extractPhone(allText)
	bundle.Name = e.extractName(sections, allText)
	bundle.Skills = e.extractSkills(sections.Skills)
	bundle.Companies = e.extractCompanies(sections.Experience)
	bundle.JobTitles = extractJobTitles(sections.Experience)
	bundle.EducationDegrees = extractDegrees(sections.Education)

	bundle.Dates = append(bundle.Dates, e.extractDates(sections.Experience)...)
	bundle.Dates = append(bundle.Dates, e.extractDates(sections.Education)...)

	normalizeBundle(&bundle)
	return bundle
}

func combineSections(sections types.SectionMap) string {
	var parts []string
	for _, name := range types.SectionNames {
		if content := sections.Get(name); content != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, " ")
}

func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractPhone tries each pattern in priority order and joins the captured
// digit groups with dashes, the form later normalized by digit count.
func extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		var groups []string
		for _, g := range match[1:] {
			if g != "" {
				groups = append(groups, g)
			}
		}
		if len(groups) > 0 {
			return strings.Join(groups, "-")
		}
	}
	return ""
}

// extractName looks for a PERSON entity in the summary first, then the
// unclassified text, then the head of the combined sections.
func (e *Extractor) extractName(sections types.SectionMap, allText string) string {
	sources := []string{
		sections.Summary,
		sections.Other,
		truncate(allText, combinedPreviewLimit),
	}

	for _, source := range sources {
		if strings.TrimSpace(source) == "" {
			continue
		}
		for _, entity := range e.recognizer.FindEntities(truncate(source, nameScanLimit)) {
			if entity.Label != ner.LabelPerson {
				continue
			}
			name := strings.TrimSpace(entity.Text)
			if len(name) > 2 && !containsAnyWord(name, nameBlacklist) {
				return name
			}
		}
	}
	return ""
}

// extractSkills matches the vocabulary against the skills section on word
// boundaries, then re-checks separator-delimited tokens, returning canonical
// display forms in vocabulary order.
func (e *Extractor) extractSkills(skillsText string) []string {
	if skillsText == "" {
		return nil
	}

	lower := strings.ToLower(skillsText)
	var skills []string

	for _, skill := range e.vocabulary {
		if containsTerm(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}

	for _, separator := range skillSeparators {
		if !strings.Contains(skillsText, separator) {
			continue
		}
		for _, token := range strings.Split(skillsText, separator) {
			clean := strings.TrimSpace(nonTokenChars.ReplaceAllString(token, ""))
			if len(clean) < minTokenLength || len(clean) > maxTokenLength {
				continue
			}
			if canonical := e.lookupSkill(clean); canonical != "" {
				skills = append(skills, canonical)
			}
		}
	}

	return skills
}

func (e *Extractor) lookupSkill(token string) string {
	lower := strings.ToLower(token)
	for _, skill := range e.vocabulary {
		if strings.ToLower(skill) == lower {
			return skill
		}
	}
	return ""
}

func (e *Extractor) extractCompanies(experienceText string) []string {
	if experienceText == "" {
		return nil
	}

	var companies []string
	for _, entity := range e.recognizer.FindEntities(experienceText) {
		if entity.Label != ner.LabelOrg {
			continue
		}
		company := strings.TrimSpace(entity.Text)
		if len(company) > 1 && !containsAnyWord(company, academicOrgWords) {
			companies = append(companies, company)
		}
	}
	return companies
}

func (e *Extractor) extractDates(text string) []string {
	if text == "" {
		return nil
	}

	var dates []string
	for _, entity := range e.recognizer.FindEntities(text) {
		if entity.Label != ner.LabelDate {
			continue
		}
		date := strings.TrimSpace(entity.Text)
		if len(date) > minDateTextLength {
			dates = append(dates, date)
		}
	}
	return dates
}

// extractJobTitles assembles titles from the captured groups of each pattern,
// in document order per pattern.
func extractJobTitles(experienceText string) []string {
	if experienceText == "" {
		return nil
	}

	var titles []string
	for _, pattern := range jobTitlePatterns {
		for _, match := range pattern.FindAllStringSubmatch(experienceText, -1) {
			var parts []string
			for _, part := range match[1:] {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					parts = append(parts, trimmed)
				}
			}
			if title := strings.Join(parts, " "); title != "" {
				titles = append(titles, title)
			}
		}
	}
	return titles
}

func extractDegrees(educationText string) []string {
	if educationText == "" {
		return nil
	}

	var degrees []string
	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllString(educationText, -1) {
			if degree := strings.TrimSpace(match); degree != "" {
				degrees = append(degrees, degree)
			}
		}
	}
	return degrees
}

// normalizeBundle deduplicates lists case-insensitively preserving first-seen
// order, lowercases the email, and reformats NANP phone numbers.
func normalizeBundle(bundle *types.EntityBundle) {
	bundle.Skills = dedupeFold(bundle.Skills)
	bundle.Companies = dedupeFold(bundle.Companies)
	bundle.JobTitles = dedupeFold(bundle.JobTitles)
	bundle.EducationDegrees = dedupeFold(bundle.EducationDegrees)
	bundle.Dates = dedupeFold(bundle.Dates)

	bundle.Email = strings.ToLower(strings.TrimSpace(bundle.Email))
	bundle.Name = strings.TrimSpace(bundle.Name)
	bundle.Phone = normalizePhone(bundle.Phone)
}

func normalizePhone(phone string) string {
	if phone == "" {
		return ""
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch {
	case len(digits) == 10:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	case len(digits) == 11 && digits[0] == '1':
		return "+1 (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:]
	}
	return phone
}

func dedupeFold(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

func containsAnyWord(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// containsTerm reports whether term occurs in text bounded by non-word
// characters on both sides. Unlike \b it behaves sensibly for terms ending in
// symbols such as "c++" or "c#".
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	for i := 0; i <= len(text)-len(term); {
		j := strings.Index(text[i:], term)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(term)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		i = start + 1
	}
	return false
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
