package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-evaluator/internal/types"
)

func TestDefault_MatchesScoringDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Equal(t, types.DefaultScoringWeights(), cfg.Weights())
}

func TestFromEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/evals")
	t.Setenv("VERBOSE", "true")

	cfg := FromEnv()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/evals", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
}

func TestFromEnv_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("MAX_UPLOAD_BYTES", "-1")

	cfg := FromEnv()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.MaxUploadBytes)
}

func TestFromEnv_InvalidWeightsKeepDefaults(t *testing.T) {
	t.Setenv("SKILLS_WEIGHT", "0.9")
	t.Setenv("EXPERIENCE_WEIGHT", "0.9")

	cfg := FromEnv()

	assert.Equal(t, types.DefaultScoringWeights(), cfg.Weights())
}

func TestLoadConfig_ReadsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 3000, "verbose": true}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.True(t, cfg.Verbose)
	// Unset fields keep defaults
	assert.Equal(t, types.DefaultScoringWeights(), cfg.Weights())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.Port = 0

	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsBadWeights(t *testing.T) {
	cfg := Default()
	cfg.SkillsWeight = 0.9

	assert.Error(t, cfg.Validate())
}
