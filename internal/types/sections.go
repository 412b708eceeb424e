// Package types provides type definitions for structured data used throughout the resume-evaluator system.
package types

// SectionNames lists the canonical resume sections in their fixed evaluation order.
var SectionNames = []string{
	"summary",
	"skills",
	"experience",
	"education",
	"projects",
	"certifications",
	"other",
}

// SectionMap holds the text of each canonical resume section. Every key is
// always present in serialized output; sections that were not detected carry
// an empty string.
type SectionMap struct {
	Summary        string `json:"summary"`
	Skills         string `json:"skills"`
	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Projects       string `json:"projects"`
	Certifications string `json:"certifications"`
	Other          string `json:"other"`
}

// Get returns the content of the named section, or "" for unknown names.
func (s *SectionMap) Get(name string) string {
	switch name {
	case "summary":
		return s.Summary
	case "skills":
		return s.Skills
	case "experience":
		return s.Experience
	case "education":
		return s.Education
	case "projects":
		return s.Projects
	case "certifications":
		return s.Certifications
	case "other":
		return s.Other
	}
	return ""
}

// Set stores content under the named section. Unknown names are ignored.
func (s *SectionMap) Set(name, content string) {
	switch name {
	case "summary":
		s.Summary = content
	case "skills":
		s.Skills = content
	case "experience":
		s.Experience = content
	case "education":
		s.Education = content
	case "projects":
		s.Projects = content
	case "certifications":
		s.Certifications = content
	case "other":
		s.Other = content
	}
}

// SectionsFound counts sections with non-empty content.
func (s *SectionMap) SectionsFound() int {
	count := 0
	for _, name := range SectionNames {
		if s.Get(name) != "" {
			count++
		}
	}
	return count
}
