package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScoringWeights_SumToOne(t *testing.T) {
	w := DefaultScoringWeights()

	assert.InDelta(t, 1.0, w.Skills+w.Experience+w.Achievement+w.Structure, 0.0001)
	assert.True(t, w.Valid())
}

func TestScoringWeightsValid_RejectsWrongSum(t *testing.T) {
	w := ScoringWeights{Skills: 0.5, Experience: 0.5, Achievement: 0.5, Structure: 0.5}

	assert.False(t, w.Valid())
}

func TestScoringWeightsValid_RejectsNegative(t *testing.T) {
	w := ScoringWeights{Skills: -0.1, Experience: 0.6, Achievement: 0.3, Structure: 0.2}

	assert.False(t, w.Valid())
}

func TestScoringWeightsValid_AcceptsWithinTolerance(t *testing.T) {
	w := ScoringWeights{Skills: 0.3501, Experience: 0.40, Achievement: 0.15, Structure: 0.0998}

	assert.True(t, w.Valid())
}
