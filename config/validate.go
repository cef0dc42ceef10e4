package config

import (
	"fmt"
	"strings"
)

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	// Validate threshold ranges
	thresholds := map[string]float64{
		"security.auto_block_threshold":  cfg.Security.AutoBlockThreshold,
		"security.classify_skip_below":   cfg.Security.ClassifySkipBelow,
		"security.classify_force_above":  cfg.Security.ClassifyForceAbove,
		"classifier.high_risk_threshold": cfg.Classifier.HighRiskThreshold,
	}
	for name, value := range thresholds {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", name, value)
		}
	}

	if cfg.Security.ClassifySkipBelow > cfg.Security.ClassifyForceAbove {
		return fmt.Errorf("security.classify_skip_below must not exceed security.classify_force_above")
	}

	// Validate risk weights
	if cfg.Security.SanitizerWeight < 0 || cfg.Security.ClassifierWeight < 0 {
		return fmt.Errorf("risk weights must be non-negative")
	}
	sum := cfg.Security.SanitizerWeight + cfg.Security.ClassifierWeight
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("security.sanitizer_weight and security.classifier_weight must sum to 1, got %v", sum)
	}

	// Validate classifier settings
	if cfg.Classifier.Enabled && cfg.Classifier.Endpoint == "" {
		return fmt.Errorf("classifier.endpoint is required when classifier.enabled is true")
	}
	if cfg.Classifier.TimeoutMs < 0 {
		return fmt.Errorf("classifier.timeout_ms must be non-negative")
	}
	if cfg.Classifier.MaxInputChars < 0 {
		return fmt.Errorf("classifier.max_input_chars must be non-negative")
	}

	// Validate output settings
	if cfg.Output.MinLen < 0 {
		return fmt.Errorf("output.min_len must be non-negative")
	}
	if cfg.Output.MaxAutomatedLen > 0 && cfg.Output.MaxAutomatedLen < cfg.Output.MinLen {
		return fmt.Errorf("output.max_automated_len must not be below output.min_len")
	}
	if cfg.Output.MaxReviewedLen > 0 && cfg.Output.MaxReviewedLen < cfg.Output.MaxAutomatedLen {
		return fmt.Errorf("output.max_reviewed_len must not be below output.max_automated_len")
	}
	for i, domain := range cfg.Output.AllowedDomains {
		if strings.TrimSpace(domain) == "" {
			return fmt.Errorf("output.allowed_domains[%d] must not be empty", i)
		}
		if strings.Contains(domain, "/") || strings.Contains(domain, " ") {
			return fmt.Errorf("output.allowed_domains[%d]: %q must be a bare host name", i, domain)
		}
	}

	// Validate retention days
	if cfg.Storage.RetentionDays < 0 {
		return fmt.Errorf("storage.retention_days must be non-negative")
	}

	// Validate color mode
	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	// Validate timezone mode
	if !isValidTimezoneMode(cfg.Display.Timezone) {
		return fmt.Errorf("invalid display.timezone: %s (must be local or utc)", cfg.Display.Timezone)
	}

	return nil
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// isValidTimezoneMode returns true if the given mode is valid.
func isValidTimezoneMode(mode TimezoneMode) bool {
	switch mode {
	case TimezoneLocal, TimezoneUTC:
		return true
	default:
		return false
	}
}
