package schemas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/report"
	"github.com/jonathan/resume-evaluator/internal/types"
)

func TestValidateJSONString_Valid(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	err := ValidateJSONString(schema, `{"name": "Jane"}`)

	assert.NoError(t, err)
}

func TestValidateJSONString_FieldErrorsReported(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	err := ValidateJSONString(schema, `{"name": 42}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateEvaluationReport_GeneratedReportPasses(t *testing.T) {
	scoring := types.ScoringResult{
		OverallScore:       72,
		WeightsUsed:        types.DefaultScoringWeights(),
		RecommendationTier: "Fair",
	}
	exp := types.ExperienceAnalysis{
		TotalExperienceYears: 4,
		SeniorityLevel:       "Mid",
		AchievementScore:     55,
	}
	generated := report.NewGenerator().Generate(scoring, nil, exp, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, ValidateEvaluationReport(generated))
}

func TestValidateEvaluationReport_RejectsOutOfRangeScore(t *testing.T) {
	bad := types.EvaluationReport{
		OverallScore:     120,
		ProfileTier:      "Strong Profile",
		SummaryStatement: "x",
		Strengths:        []string{},
		Weaknesses:       []string{},
		Recommendations:  []string{},
		NextSteps:        []string{},
	}

	err := ValidateEvaluationReport(bad)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
