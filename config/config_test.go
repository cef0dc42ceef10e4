package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	// Verify security defaults
	assert.Equal(t, 0.75, cfg.Security.AutoBlockThreshold)
	assert.Equal(t, 0.25, cfg.Security.ClassifySkipBelow)
	assert.Equal(t, 0.5, cfg.Security.ClassifyForceAbove)
	assert.Equal(t, 0.4, cfg.Security.SanitizerWeight)
	assert.Equal(t, 0.6, cfg.Security.ClassifierWeight)

	// Verify classifier defaults
	assert.False(t, cfg.Classifier.Enabled)
	assert.Equal(t, 800, cfg.Classifier.TimeoutMs)
	assert.Equal(t, 0.75, cfg.Classifier.HighRiskThreshold)
	assert.Equal(t, 4000, cfg.Classifier.MaxInputChars)
	assert.Equal(t, 256, cfg.Classifier.MaxTokens)

	// Verify output defaults
	assert.NotEmpty(t, cfg.Output.AllowedDomains)
	assert.Equal(t, 2000, cfg.Output.MaxAutomatedLen)
	assert.Equal(t, 8000, cfg.Output.MaxReviewedLen)
	assert.Equal(t, 20, cfg.Output.MinLen)

	// Verify storage defaults
	assert.Equal(t, "", cfg.Storage.Path)
	assert.Equal(t, 90, cfg.Storage.RetentionDays)

	// Verify display defaults
	assert.Equal(t, ColorAuto, cfg.Display.Colors)
	assert.Equal(t, TimezoneLocal, cfg.Display.Timezone)
}

func TestLoad_ValidConfig(t *testing.T) {
	configContent := `
security:
  auto_block_threshold: 0.8
  classify_skip_below: 0.2
  classify_force_above: 0.6
classifier:
  enabled: true
  endpoint: https://classify.internal/v1
  model: guard-small
  timeout_ms: 500
output:
  allowed_domains:
    - acme-shop.com
  max_automated_len: 1500
storage:
  retention_days: 30
display:
  colors: always
  timezone: utc
`

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 0.8, cfg.Security.AutoBlockThreshold)
	assert.Equal(t, 0.2, cfg.Security.ClassifySkipBelow)
	assert.Equal(t, 0.6, cfg.Security.ClassifyForceAbove)
	assert.True(t, cfg.Classifier.Enabled)
	assert.Equal(t, "https://classify.internal/v1", cfg.Classifier.Endpoint)
	assert.Equal(t, "guard-small", cfg.Classifier.Model)
	assert.Equal(t, 500, cfg.Classifier.TimeoutMs)
	assert.Equal(t, []string{"acme-shop.com"}, cfg.Output.AllowedDomains)
	assert.Equal(t, 1500, cfg.Output.MaxAutomatedLen)
	assert.Equal(t, 30, cfg.Storage.RetentionDays)
	assert.Equal(t, ColorAlways, cfg.Display.Colors)
	assert.Equal(t, TimezoneUTC, cfg.Display.Timezone)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "does-not-exist.yaml")

	// A named but missing file is an error; viper only tolerates a
	// missing file when searching default locations.
	_, err := Load(configFile)
	assert.Error(t, err)
}

func TestLoad_ThresholdOutOfRange(t *testing.T) {
	configContent := `
security:
  auto_block_threshold: 1.5
`
	cfg, err := loadFromContent(t, configContent)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "auto_block_threshold")
}

func TestLoad_SkipAboveForce(t *testing.T) {
	configContent := `
security:
  classify_skip_below: 0.7
  classify_force_above: 0.3
`
	cfg, err := loadFromContent(t, configContent)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "classify_skip_below")
}

func TestLoad_WeightsMustSumToOne(t *testing.T) {
	configContent := `
security:
  sanitizer_weight: 0.5
  classifier_weight: 0.8
`
	cfg, err := loadFromContent(t, configContent)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "sum to 1")
}

func TestLoad_ClassifierEnabledNeedsEndpoint(t *testing.T) {
	configContent := `
classifier:
  enabled: true
`
	cfg, err := loadFromContent(t, configContent)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "classifier.endpoint")
}

func TestLoad_InvalidAllowedDomain(t *testing.T) {
	configContent := `
output:
  allowed_domains:
    - "example.com/path"
`
	cfg, err := loadFromContent(t, configContent)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "bare host name")
}

func TestLoad_InvalidColorMode(t *testing.T) {
	configContent := `
display:
  colors: invalid
`
	cfg, err := loadFromContent(t, configContent)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid display.colors")
}

func TestLoad_InvalidTimezoneMode(t *testing.T) {
	configContent := `
display:
  timezone: invalid
`
	cfg, err := loadFromContent(t, configContent)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid display.timezone")
}

func TestLoad_NegativeRetention(t *testing.T) {
	configContent := `
storage:
  retention_days: -1
`
	cfg, err := loadFromContent(t, configContent)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "retention_days")
}

func TestGetDatabasePath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", cfg.GetDatabasePath())

	cfg.Storage.Path = ""
	assert.NotEmpty(t, cfg.GetDatabasePath())
}

func TestResolvePaths(t *testing.T) {
	paths := ResolvePaths()
	require.NotNil(t, paths)

	assert.NotEmpty(t, paths.ConfigDir)
	assert.NotEmpty(t, paths.DataDir)
	assert.Contains(t, paths.ConfigFile, "config.yaml")
	assert.Contains(t, paths.DatabaseFile, "checks.db")
}

// loadFromContent writes the content to a temp config file and loads it.
func loadFromContent(t *testing.T, content string) (*Config, error) {
	t.Helper()
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	return Load(configFile)
}
