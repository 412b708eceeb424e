// Package segmenter splits raw resume text into canonical named sections by
// detecting heading lines and classifying them against a keyword table.
package segmenter

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-evaluator/internal/types"
)

// minHeadingLength is the shortest line considered as a heading candidate.
const minHeadingLength = 3

// maxHeadingWords is the longest keyword-bearing line treated as a heading.
const maxHeadingWords = 4

// sectionKeywords maps one canonical section to the heading synonyms that
// select it. Order matters: classification walks the table top to bottom and
// the first match wins.
type sectionKeywords struct {
	section  string
	keywords []string
}

var defaultKeywordTable = []sectionKeywords{
	{"summary", []string{
		"summary", "profile", "objective", "professional summary",
		"career objective", "professional profile", "about me",
		"overview", "career summary", "personal statement",
	}},
	{"skills", []string{
		"skills", "technical skills", "core competencies", "competencies",
		"technical competencies", "key skills", "expertise", "technologies",
		"technical expertise", "programming skills", "software skills",
		"tools and technologies", "technical proficiencies",
	}},
	{"experience", []string{
		"experience", "work experience", "professional experience",
		"employment history", "career history", "work history",
		"professional background", "employment", "career",
		"work", "positions held", "professional positions",
	}},
	{"education", []string{
		"education", "educational background", "academic background",
		"academic qualifications", "academic history", "qualifications",
		"degrees", "academic achievements", "schooling", "universities",
		"academic", "studies",
	}},
	{"projects", []string{
		"projects", "key projects", "notable projects", "project experience",
		"project highlights", "portfolio", "work samples", "achievements",
		"accomplishments", "personal projects", "side projects",
	}},
	{"certifications", []string{
		"certifications", "certificates", "professional certifications",
		"licenses", "credentials", "training", "professional development",
		"continuing education", "professional training", "courses",
		"certified", "accreditation",
	}},
}

var (
	spaceRuns       = regexp.MustCompile(`[ \t]+`)
	newlinePadding  = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	blankLineRuns   = regexp.MustCompile(`\n{3,}`)
	headingCleaner  = regexp.MustCompile(`[:\-*=+\s]+`)
	headingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z\s&/\-:]{3,}$`),
		regexp.MustCompile(`^[A-Z][a-zA-Z\s&/\-:]*:?\s*$`),
		regexp.MustCompile(`^[*\-=+]{2,}.*[*\-=+]{2,}$`),
		regexp.MustCompile(`^[A-Z]{3,}$`),
	}
)

// Segmenter detects section headings and slices resume text between them.
type Segmenter struct {
	table []sectionKeywords
}

// New creates a Segmenter with the canonical keyword table.
func New() *Segmenter {
	return &Segmenter{table: defaultKeywordTable}
}

type boundary struct {
	section string
	line    int
}

// Split segments resume text into the canonical sections. Every section key
// is present in the result; undetected sections are empty. Text before the
// first recognized heading, or text with no recognized headings at all, lands
// in "other".
func (s *Segmenter) Split(text string) types.SectionMap {
	var sections types.SectionMap

	normalized := Normalize(text)
	if normalized == "" {
		return sections
	}

	lines := strings.Split(normalized, "\n")
	boundaries := s.findBoundaries(lines)

	if len(boundaries) > 0 && boundaries[0].line > 0 {
		preamble := strings.TrimSpace(strings.Join(lines[:boundaries[0].line], "\n"))
		if preamble != "" {
			appendOther(&sections, preamble)
		}
	}

	for i, b := range boundaries {
		end := len(lines)
		if i+1 < len(boundaries) {
			end = boundaries[i+1].line
		}
		content := strings.TrimSpace(strings.Join(lines[b.line+1:end], "\n"))
		if content != "" {
			sections.Set(b.section, content)
		}
	}

	if sections.SectionsFound() == 0 {
		sections.Other = normalized
	}

	return sections
}

// Normalize collapses whitespace runs to single spaces, trims padding around
// line breaks, and reduces three or more consecutive newlines to a blank line.
func Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = newlinePadding.ReplaceAllString(text, "\n")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

func (s *Segmenter) findBoundaries(lines []string) []boundary {
	var boundaries []boundary

	for idx, line := range lines {
		clean := strings.TrimSpace(line)
		if len(clean) < minHeadingLength {
			continue
		}
		if !s.isPotentialHeading(clean) {
			continue
		}
		if section := s.classify(clean); section != "" {
			boundaries = append(boundaries, boundary{section: section, line: idx})
		}
	}

	return boundaries
}

// isPotentialHeading reports whether a line is shaped like a heading: matching
// one of the structural patterns, or short enough and carrying a known keyword.
func (s *Segmenter) isPotentialHeading(line string) bool {
	for _, pattern := range headingPatterns {
		if pattern.MatchString(line) {
			return true
		}
	}

	if len(strings.Fields(line)) <= maxHeadingWords {
		lower := strings.ToLower(line)
		for _, entry := range s.table {
			for _, keyword := range entry.keywords {
				if strings.Contains(lower, keyword) {
					return true
				}
			}
		}
	}

	return false
}

// classify maps a heading line to its section. Exact matches on the cleaned
// heading beat substring matches; within each pass the table order decides.
func (s *Segmenter) classify(heading string) string {
	clean := strings.TrimSpace(headingCleaner.ReplaceAllString(strings.ToLower(heading), " "))

	for _, entry := range s.table {
		for _, keyword := range entry.keywords {
			if keyword == clean {
				return entry.section
			}
		}
	}

	for _, entry := range s.table {
		for _, keyword := range entry.keywords {
			if strings.Contains(clean, keyword) {
				return entry.section
			}
		}
	}

	return ""
}

func appendOther(sections *types.SectionMap, content string) {
	if sections.Other != "" {
		sections.Other += "\n\n" + content
	} else {
		sections.Other = content
	}
}
