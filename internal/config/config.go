// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/resume-evaluator/internal/types"
)

const (
	// DefaultPort is the HTTP listen port when none is configured.
	DefaultPort = 8080
	// DefaultMaxUploadBytes caps resume file uploads at 5 MB.
	DefaultMaxUploadBytes = 5 << 20
)

// Config represents the runtime configuration. All fields are optional;
// missing values use defaults or must be provided via CLI flags.
type Config struct {
	Port           int     `json:"port,omitempty"`             // HTTP listen port
	DatabaseURL    string  `json:"database_url,omitempty"`     // PostgreSQL connection URL, empty disables persistence
	MaxUploadBytes int64   `json:"max_upload_bytes,omitempty"` // Maximum accepted upload size
	Verbose        bool    `json:"verbose,omitempty"`          // Print detailed analysis boxes
	SkillsWeight   float64 `json:"skills_weight,omitempty"`
	ExpWeight      float64 `json:"experience_weight,omitempty"`
	AchieveWeight  float64 `json:"achievement_weight,omitempty"`
	StructWeight   float64 `json:"structure_weight,omitempty"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	weights := types.DefaultScoringWeights()
	return Config{
		Port:           DefaultPort,
		MaxUploadBytes: DefaultMaxUploadBytes,
		SkillsWeight:   weights.Skills,
		ExpWeight:      weights.Experience,
		AchieveWeight:  weights.Achievement,
		StructWeight:   weights.Structure,
	}
}

// FromEnv builds a Config from environment variables, starting from defaults.
// Invalid values are ignored rather than fatal so a bad override cannot take
// the service down.
func FromEnv() Config {
	cfg := Default()

	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port > 0 && port < 65536 {
		cfg.Port = port
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if max, err := strconv.ParseInt(os.Getenv("MAX_UPLOAD_BYTES"), 10, 64); err == nil && max > 0 {
		cfg.MaxUploadBytes = max
	}
	if verbose, err := strconv.ParseBool(os.Getenv("VERBOSE")); err == nil {
		cfg.Verbose = verbose
	}

	weights := types.ScoringWeights{
		Skills:      envFloat("SKILLS_WEIGHT", cfg.SkillsWeight),
		Experience:  envFloat("EXPERIENCE_WEIGHT", cfg.ExpWeight),
		Achievement: envFloat("ACHIEVEMENT_WEIGHT", cfg.AchieveWeight),
		Structure:   envFloat("STRUCTURE_WEIGHT", cfg.StructWeight),
	}
	if weights.Valid() {
		cfg.SkillsWeight = weights.Skills
		cfg.ExpWeight = weights.Experience
		cfg.AchieveWeight = weights.Achievement
		cfg.StructWeight = weights.Structure
	}

	return cfg
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be positive")
	}
	if weights := c.Weights(); !weights.Valid() {
		return fmt.Errorf("config error: scoring weights must be non-negative and sum to 1.0")
	}
	return nil
}

// Weights returns the configured scoring weights.
func (c *Config) Weights() types.ScoringWeights {
	return types.ScoringWeights{
		Skills:      c.SkillsWeight,
		Experience:  c.ExpWeight,
		Achievement: c.AchieveWeight,
		Structure:   c.StructWeight,
	}
}

func envFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return value
}
