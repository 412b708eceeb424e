package ner

import (
	"regexp"
	"strings"
)

var (
	// A bare capitalized two-or-three token line is the usual resume header
	// form of a candidate name.
	personLine = regexp.MustCompile(`(?m)^([A-Z][a-z]+(?: [A-Z]\.?)? [A-Z][a-z]+)\s*$`)

	orgSuffix = regexp.MustCompile(`\b((?:[A-Z][A-Za-z&]+ )+(?:Inc|LLC|Ltd|Corp|Corporation|Technologies|Labs|Systems|Solutions|Software|University|College|Institute|School))\b`)
	orgAfterAt = regexp.MustCompile(`\bat ([A-Z][A-Za-z]+(?: [A-Z][A-Za-z]+){0,2})\b`)

	dateRange = regexp.MustCompile(`(?i)\b(?:(?:19|20)\d{2})\s*[-–—]\s*(?:(?:19|20)\d{2}|present)\b`)
	monthYear = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(?:19|20)\d{2}\b`)
	bareYear  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// RuleBased is a regex-driven Recognizer covering the entity shapes that
// appear in resumes: header names, employer names, and date expressions.
type RuleBased struct{}

// NewRuleBased creates the default rule-based recognizer.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// FindEntities scans the text with each rule in a fixed order. Results are
// deterministic for a given input: persons first, then organizations, then
// dates, each in document order.
func (r *RuleBased) FindEntities(text string) []Entity {
	var entities []Entity

	for _, m := range personLine.FindAllStringSubmatchIndex(text, -1) {
		entities = append(entities, Entity{Label: LabelPerson, Text: text[m[2]:m[3]], Start: m[2]})
	}

	seen := make(map[string]bool)
	for _, pattern := range []*regexp.Regexp{orgSuffix, orgAfterAt} {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			name := strings.TrimSpace(text[m[2]:m[3]])
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			entities = append(entities, Entity{Label: LabelOrg, Text: name, Start: m[2]})
		}
	}

	seenDate := make(map[string]bool)
	for _, pattern := range []*regexp.Regexp{dateRange, monthYear, bareYear} {
		for _, m := range pattern.FindAllStringIndex(text, -1) {
			value := text[m[0]:m[1]]
			key := strings.ToLower(value)
			if seenDate[key] {
				continue
			}
			seenDate[key] = true
			entities = append(entities, Entity{Label: LabelDate, Text: value, Start: m[0]})
		}
	}

	return entities
}
