// Package config provides configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	// ColorAuto automatically detects terminal support.
	ColorAuto ColorMode = "auto"
	// ColorAlways always uses colors.
	ColorAlways ColorMode = "always"
	// ColorNever never uses colors.
	ColorNever ColorMode = "never"
)

// TimezoneMode represents the timezone display mode.
type TimezoneMode string

const (
	// TimezoneLocal uses the local timezone.
	TimezoneLocal TimezoneMode = "local"
	// TimezoneUTC uses UTC.
	TimezoneUTC TimezoneMode = "utc"
)

// Config holds all configuration values.
type Config struct {
	Security   SecurityConfig   `mapstructure:"security"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Output     OutputConfig     `mapstructure:"output"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Display    DisplayConfig    `mapstructure:"display"`
}

// SecurityConfig holds the pipeline thresholds. They are tuning values,
// not code: changing them requires a reload, never a runtime mutation.
type SecurityConfig struct {
	// AutoBlockThreshold blocks inbound content at or above this
	// sanitizer risk score without further analysis.
	AutoBlockThreshold float64 `mapstructure:"auto_block_threshold"`
	// ClassifySkipBelow skips the classifier below this risk score.
	ClassifySkipBelow float64 `mapstructure:"classify_skip_below"`
	// ClassifyForceAbove requires a classification at or above this
	// risk score.
	ClassifyForceAbove float64 `mapstructure:"classify_force_above"`
	// SanitizerWeight is the sanitizer share of the combined risk score.
	SanitizerWeight float64 `mapstructure:"sanitizer_weight"`
	// ClassifierWeight is the classifier share of the combined risk score.
	ClassifierWeight float64 `mapstructure:"classifier_weight"`
}

// ClassifierConfig holds settings for the external classification
// capability.
type ClassifierConfig struct {
	// Enabled turns the network classifier on. When false the pipeline
	// degrades to sanitizer-plus-heuristics gating.
	Enabled bool `mapstructure:"enabled"`
	// Endpoint is the classification API URL.
	Endpoint string `mapstructure:"endpoint"`
	// APIKey is the bearer token for the endpoint.
	APIKey string `mapstructure:"api_key"`
	// Model names the classification model.
	Model string `mapstructure:"model"`
	// TimeoutMs is the hard per-call timeout in milliseconds.
	TimeoutMs int `mapstructure:"timeout_ms"`
	// HighRiskThreshold skips the network call at or above this
	// sanitizer risk score.
	HighRiskThreshold float64 `mapstructure:"high_risk_threshold"`
	// MaxInputChars truncates the text submitted to the endpoint.
	MaxInputChars int `mapstructure:"max_input_chars"`
	// MaxTokens bounds the endpoint's response size.
	MaxTokens int `mapstructure:"max_tokens"`
}

// OutputConfig holds output validation settings.
type OutputConfig struct {
	// AllowedDomains are hosts whose URLs are considered safe in replies.
	AllowedDomains []string `mapstructure:"allowed_domains"`
	// MaxAutomatedLen is the maximum length of a fully-automated reply.
	MaxAutomatedLen int `mapstructure:"max_automated_len"`
	// MaxReviewedLen is the maximum length of a human-reviewed reply.
	MaxReviewedLen int `mapstructure:"max_reviewed_len"`
	// MinLen catches degenerate or empty generations.
	MinLen int `mapstructure:"min_len"`
}

// StorageConfig holds storage-related settings.
type StorageConfig struct {
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	Colors   ColorMode    `mapstructure:"colors"`
	Timezone TimezoneMode `mapstructure:"timezone"`
}

// Paths holds resolved filesystem paths.
type Paths struct {
	ConfigFile   string
	ConfigDir    string
	DataDir      string
	DatabaseFile string
	CacheDir     string
}

// Load loads configuration from the given path or default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		paths := ResolvePaths()

		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	// Bind environment variables
	v.SetEnvPrefix("MAILGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with all default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// ResolvePaths returns the resolved filesystem paths for the current platform.
func ResolvePaths() *Paths {
	configDir := getConfigDir()
	dataDir := getDataDir()
	cacheDir := getCacheDir()

	return &Paths{
		ConfigFile:   filepath.Join(configDir, "config.yaml"),
		ConfigDir:    configDir,
		DataDir:      dataDir,
		DatabaseFile: filepath.Join(dataDir, "checks.db"),
		CacheDir:     cacheDir,
	}
}

// GetDatabasePath returns the resolved database path from config or default.
func (c *Config) GetDatabasePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}

	paths := ResolvePaths()
	return paths.DatabaseFile
}

// ShouldUseColors returns true if colors should be used based on config and terminal.
func (c *Config) ShouldUseColors() bool {
	switch c.Display.Colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		// Auto: check if stdout is a terminal
		fileInfo, _ := os.Stdout.Stat()
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
}
