// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ReturnsFile      string  // CSV of monthly security returns
	FactorsFile      string  // CSV of monthly Fama-French factors
	OutputDir        string  // Directory for rendered charts (always absolute)
	OutlierThreshold float64 // Standard deviations from the global mean before a row is dropped
	LogLevel         string
	Pretty           bool
}

// Load reads configuration from a .env file (if present) and the
// environment, applying defaults for everything optional. The two input
// file paths are required.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		ReturnsFile:      getEnv("MOMENTUM_RETURNS_FILE", ""),
		FactorsFile:      getEnv("MOMENTUM_FACTORS_FILE", ""),
		OutputDir:        getEnv("MOMENTUM_OUTPUT_DIR", "output"),
		OutlierThreshold: getEnvAsFloat("MOMENTUM_OUTLIER_THRESHOLD", 3.0),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Pretty:           getEnvAsBool("LOG_PRETTY", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	absOutputDir, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory path: %w", err)
	}
	if err := os.MkdirAll(absOutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	cfg.OutputDir = absOutputDir

	return cfg, nil
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if c.ReturnsFile == "" {
		return fmt.Errorf("MOMENTUM_RETURNS_FILE is required")
	}
	if c.FactorsFile == "" {
		return fmt.Errorf("MOMENTUM_FACTORS_FILE is required")
	}
	if c.OutlierThreshold <= 0 {
		return fmt.Errorf("MOMENTUM_OUTLIER_THRESHOLD must be positive, got %g", c.OutlierThreshold)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
