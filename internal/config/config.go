// Package config provides configuration loading and validation for the
// parsing pipeline and the match scorer.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Scoring holds the match-scorer calibration. The weights and sigmoid shape
// are empirically chosen; they are configuration, not invariants, so deployers
// can recalibrate without a rebuild.
type Scoring struct {
	TFIDFWeight      float64 `json:"tfidf_weight" validate:"gte=0,lte=1"`
	SemanticWeight   float64 `json:"semantic_weight" validate:"gte=0,lte=1"`
	SkillWeight      float64 `json:"skill_weight" validate:"gte=0,lte=1"`
	ExperienceWeight float64 `json:"experience_weight" validate:"gte=0,lte=1"`

	SigmoidSteepness float64 `json:"sigmoid_steepness" validate:"gt=0"`
	SigmoidMidpoint  float64 `json:"sigmoid_midpoint" validate:"gte=0,lte=1"`

	// Experience normalization: each extracted work record approximates
	// YearsPerRecord years, scored against a CeilingYears career length.
	YearsPerRecord float64 `json:"years_per_record" validate:"gt=0"`
	CeilingYears   float64 `json:"ceiling_years" validate:"gt=0"`
}

// Config is the full runtime configuration, loadable from a JSON file. Zero
// values fall back to Default().
type Config struct {
	// TaxonomyPath points at a JSON skill taxonomy; empty means the embedded
	// default taxonomy.
	TaxonomyPath string `json:"taxonomy_path,omitempty"`

	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`

	// EmbeddingDim is the dimensionality of the hashing embedder.
	EmbeddingDim int `json:"embedding_dim,omitempty" validate:"omitempty,gte=16,lte=4096"`

	Scoring Scoring `json:"scoring"`
}

// Default returns the calibration the scorer ships with.
func Default() Config {
	return Config{
		LogLevel:     "info",
		EmbeddingDim: 256,
		Scoring: Scoring{
			TFIDFWeight:      0.3,
			SemanticWeight:   0.4,
			SkillWeight:      0.2,
			ExperienceWeight: 0.1,
			SigmoidSteepness: 5,
			SigmoidMidpoint:  0.5,
			YearsPerRecord:   2,
			CeilingYears:     15,
		},
	}
}

// Load reads a JSON config file and overlays it on the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and that the four scoring weights sum to 1.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	s := c.Scoring
	sum := s.TFIDFWeight + s.SemanticWeight + s.SkillWeight + s.ExperienceWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("config error: scoring weights must sum to 1, got %g", sum)
	}

	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
		}
	}
	return nil
}
