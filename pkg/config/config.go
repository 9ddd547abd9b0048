// Package config loads optional host configuration for the ESG pipeline.
// The scoring, compliance and bridge packages never read the environment;
// hosts that want environment-driven setup call Load.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aristath/esgbridge/pkg/compliance"
	"github.com/aristath/esgbridge/pkg/esg"
	"github.com/aristath/esgbridge/pkg/formulas"
	"github.com/joho/godotenv"
)

// DefaultMinimumScore is the composite floor used when ESG_MIN_SCORE is unset.
const DefaultMinimumScore = 50

// Config holds pipeline configuration
type Config struct {
	Weights      esg.Weights
	MinimumScore int    // Composite floor for the minimum-score check
	RulesFile    string // Optional YAML rule set
	LogLevel     string
	LogPretty    bool
}

// Load reads configuration from the environment, after loading a .env file
// from envFiles (or ./.env when none are given) if present.
func Load(envFiles ...string) (*Config, error) {
	// Missing .env files are fine
	_ = godotenv.Load(envFiles...)

	defaults := esg.DefaultWeights()
	cfg := &Config{
		Weights: esg.Weights{
			Environmental: getEnvAsFloat("ESG_WEIGHT_ENVIRONMENTAL", defaults.Environmental),
			Social:        getEnvAsFloat("ESG_WEIGHT_SOCIAL", defaults.Social),
			Governance:    getEnvAsFloat("ESG_WEIGHT_GOVERNANCE", defaults.Governance),
		},
		MinimumScore: getEnvAsInt("ESG_MIN_SCORE", DefaultMinimumScore),
		RulesFile:    getEnv("ESG_RULES_FILE", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPretty:    getEnvAsBool("LOG_PRETTY", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	w := c.Weights
	if !formulas.WeightsValid([]float64{w.Environmental, w.Social, w.Governance}) {
		return fmt.Errorf("%w: ESG weights must be non-negative and sum to > 0", esg.ErrInvalidConfiguration)
	}
	if c.MinimumScore < esg.MinScore || c.MinimumScore > esg.MaxScore {
		return fmt.Errorf("%w: ESG_MIN_SCORE must be within [%d, %d], got %d",
			esg.ErrInvalidConfiguration, esg.MinScore, esg.MaxScore, c.MinimumScore)
	}
	return nil
}

// LoadRules decodes the configured rule set. No file configured means no rules.
func (c *Config) LoadRules() ([]compliance.Rule, error) {
	if c.RulesFile == "" {
		return nil, nil
	}

	f, err := os.Open(c.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open rules file: %w", err)
	}
	defer f.Close()

	rules, err := compliance.DecodeRules(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules from %s: %w", c.RulesFile, err)
	}
	return rules, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
