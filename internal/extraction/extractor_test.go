package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-evaluator/internal/ner"
	"github.com/jonathan/resume-evaluator/internal/types"
)

func TestExtract_ContactInformation(t *testing.T) {
	sections := types.SectionMap{
		Other: "Jane Smith\nJane.Smith@Example.COM\n(555) 123-4567",
	}

	bundle := New(ner.NewRuleBased()).Extract(sections)

	assert.Equal(t, "jane.smith@example.com", bundle.Email)
	assert.Equal(t, "(555) 123-4567", bundle.Phone)
	assert.Equal(t, "Jane Smith", bundle.Name)
}

func TestExtract_PhoneWithCountryCode(t *testing.T) {
	sections := types.SectionMap{Other: "Call +1 555 123 4567 anytime"}

	bundle := New(ner.Noop{}).Extract(sections)

	assert.Equal(t, "(555) 123-4567", bundle.Phone)
}

func TestExtract_SkillsInVocabularyOrder(t *testing.T) {
	sections := types.SectionMap{Skills: "Python, Go, node.js, C++, and SQL"}

	bundle := New(ner.Noop{}).Extract(sections)

	assert.Equal(t, []string{"Python", "C++", "Go", "Node.js", "SQL"}, bundle.Skills)
}

func TestExtract_SkillMatchRespectsWordBoundaries(t *testing.T) {
	sections := types.SectionMap{Skills: "Javascripting and golang enthusiast"}

	bundle := New(ner.Noop{}).Extract(sections)

	assert.Empty(t, bundle.Skills)
}

func TestExtract_JobTitlesFromExperience(t *testing.T) {
	sections := types.SectionMap{
		Experience: "Senior Software Engineer at Initech\nProduct Manager for the platform team",
	}

	bundle := New(ner.Noop{}).Extract(sections)

	assert.Contains(t, bundle.JobTitles, "Senior Software Engineer")
	assert.Contains(t, bundle.JobTitles, "Product Manager")
}

func TestExtract_CompaniesExcludeAcademicInstitutions(t *testing.T) {
	sections := types.SectionMap{
		Experience: "Software Engineer at Initech and researcher at Stanford University",
	}

	bundle := New(ner.NewRuleBased()).Extract(sections)

	assert.Contains(t, bundle.Companies, "Initech")
	assert.NotContains(t, bundle.Companies, "Stanford University")
}

func TestExtract_DegreesFromEducation(t *testing.T) {
	sections := types.SectionMap{
		Education: "B.Tech in Computer Science, then Master of Science, currently PhD candidate",
	}

	bundle := New(ner.Noop{}).Extract(sections)

	assert.Contains(t, bundle.EducationDegrees, "B.Tech")
	assert.Contains(t, bundle.EducationDegrees, "Master")
	assert.Contains(t, bundle.EducationDegrees, "PhD")
}

func TestExtract_DatesFromExperienceAndEducation(t *testing.T) {
	sections := types.SectionMap{
		Experience: "Backend developer, 2018 - 2020",
		Education:  "Graduated May 2017",
	}

	bundle := New(ner.NewRuleBased()).Extract(sections)

	assert.Contains(t, bundle.Dates, "2018 - 2020")
	assert.Contains(t, bundle.Dates, "May 2017")
}

func TestExtract_EmptySectionsYieldEmptyBundle(t *testing.T) {
	bundle := New(ner.NewRuleBased()).Extract(types.SectionMap{})

	assert.Equal(t, "", bundle.Name)
	assert.Equal(t, "", bundle.Email)
	assert.Equal(t, "", bundle.Phone)
	assert.Empty(t, bundle.Skills)
	assert.Empty(t, bundle.Companies)
}

func TestExtract_DeduplicatesCaseInsensitively(t *testing.T) {
	sections := types.SectionMap{Skills: "Python; PYTHON; python"}

	bundle := New(ner.Noop{}).Extract(sections)

	assert.Equal(t, []string{"Python"}, bundle.Skills)
}

func TestNormalizePhone_KeepsUnrecognizedFormats(t *testing.T) {
	assert.Equal(t, "44-7911-123456", normalizePhone("44-7911-123456"))
}
