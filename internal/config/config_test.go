package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MOMENTUM_RETURNS_FILE", "testdata/returns.csv")
	t.Setenv("MOMENTUM_FACTORS_FILE", "testdata/factors.csv")
	t.Setenv("MOMENTUM_OUTPUT_DIR", filepath.Join(t.TempDir(), "out"))
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "testdata/returns.csv", cfg.ReturnsFile)
	assert.Equal(t, 3.0, cfg.OutlierThreshold)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Pretty)
	assert.True(t, filepath.IsAbs(cfg.OutputDir))
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MOMENTUM_OUTLIER_THRESHOLD", "2.5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "false")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.OutlierThreshold)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Pretty)
}

func TestLoad_MissingReturnsFile(t *testing.T) {
	t.Setenv("MOMENTUM_RETURNS_FILE", "")
	t.Setenv("MOMENTUM_FACTORS_FILE", "testdata/factors.csv")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_InvalidThreshold(t *testing.T) {
	setRequired(t)
	t.Setenv("MOMENTUM_OUTLIER_THRESHOLD", "-1")

	_, err := Load()

	assert.Error(t, err)
}
