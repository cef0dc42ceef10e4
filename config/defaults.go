package config

import (
	"github.com/spf13/viper"
)

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Security thresholds
	v.SetDefault("security.auto_block_threshold", 0.75)
	v.SetDefault("security.classify_skip_below", 0.25)
	v.SetDefault("security.classify_force_above", 0.5)
	v.SetDefault("security.sanitizer_weight", 0.4)
	v.SetDefault("security.classifier_weight", 0.6)

	// Classifier defaults
	v.SetDefault("classifier.enabled", false)
	v.SetDefault("classifier.endpoint", "")
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.model", "")
	v.SetDefault("classifier.timeout_ms", 800)
	v.SetDefault("classifier.high_risk_threshold", 0.75)
	v.SetDefault("classifier.max_input_chars", 4000)
	v.SetDefault("classifier.max_tokens", 256)

	// Output validation defaults
	v.SetDefault("output.allowed_domains", defaultAllowedDomains())
	v.SetDefault("output.max_automated_len", 2000)
	v.SetDefault("output.max_reviewed_len", 8000)
	v.SetDefault("output.min_len", 20)

	// Storage defaults
	v.SetDefault("storage.path", "") // Empty means use platform default
	v.SetDefault("storage.retention_days", 90)

	// Display defaults
	v.SetDefault("display.colors", "auto")
	v.SetDefault("display.timezone", "local")
}

// defaultAllowedDomains returns the default URL allow-list for generated
// replies.
func defaultAllowedDomains() []string {
	return []string{
		"example.com",
	}
}
