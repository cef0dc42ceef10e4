// Package pipeline orchestrates the email content-security layers:
// sanitizer, conditional classifier and spotlighter for inbound checks,
// and the output validator for outbound checks.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mailgate/mailgate/core/classifier"
	"github.com/mailgate/mailgate/core/outputcheck"
	"github.com/mailgate/mailgate/core/sanitizer"
	"github.com/mailgate/mailgate/core/spotlight"
)

// RiskBand is a discrete classification derived from a continuous risk
// score via fixed cutoffs.
type RiskBand string

const (
	// BandSafe covers scores below 0.1.
	BandSafe RiskBand = "safe"
	// BandLow covers scores below 0.25.
	BandLow RiskBand = "low"
	// BandMedium covers scores below 0.5.
	BandMedium RiskBand = "medium"
	// BandHigh covers scores below 0.75.
	BandHigh RiskBand = "high"
	// BandCritical covers scores at or above 0.75.
	BandCritical RiskBand = "critical"
)

// String returns the string representation of the risk band.
func (b RiskBand) String() string {
	return string(b)
}

// IsValid returns true if the band is a known value.
func (b RiskBand) IsValid() bool {
	switch b {
	case BandSafe, BandLow, BandMedium, BandHigh, BandCritical:
		return true
	default:
		return false
	}
}

// ParseRiskBand parses a string into a RiskBand.
func ParseRiskBand(s string) (RiskBand, error) {
	b := RiskBand(s)
	if !b.IsValid() {
		return "", fmt.Errorf("invalid risk band: %q", s)
	}
	return b, nil
}

// BandFor maps a risk score to its band.
func BandFor(score float64) RiskBand {
	switch {
	case score < 0.1:
		return BandSafe
	case score < 0.25:
		return BandLow
	case score < 0.5:
		return BandMedium
	case score < 0.75:
		return BandHigh
	default:
		return BandCritical
	}
}

// CheckResult is the full record of one inbound check. It is append-only:
// created once, never retroactively edited, and carries enough to
// reconstruct the decision later for audit.
type CheckResult struct {
	// ID is the opaque check identifier.
	ID string `json:"id"`
	// Timestamp is when the check ran (UTC).
	Timestamp time.Time `json:"timestamp"`
	// Duration is how long the check took.
	Duration time.Duration `json:"duration"`
	// Passed is true when the content may proceed to the generator.
	Passed bool `json:"passed"`
	// Blocked is true when the content must not reach the generator.
	Blocked bool `json:"blocked"`
	// RequiresReview is true when a human should inspect the content.
	RequiresReview bool `json:"requires_review"`
	// RiskScore is the combined risk score in [0,1].
	RiskScore float64 `json:"risk_score"`
	// RiskBand is the discrete band for RiskScore.
	RiskBand RiskBand `json:"risk_band"`
	// BlockReason explains a block, empty otherwise.
	BlockReason string `json:"block_reason,omitempty"`
	// Sanitization is the embedded sanitizer result.
	Sanitization *sanitizer.Result `json:"sanitization"`
	// Classification is present only when the classifier ran.
	Classification *classifier.Classification `json:"classification,omitempty"`
	// Spotlight is the marked email, absent on blocked checks.
	Spotlight *spotlight.Email `json:"spotlight,omitempty"`
	// Prompt is the generator-ready prompt pair, absent on blocked checks.
	Prompt *spotlight.SecurePrompt `json:"prompt,omitempty"`
}

// OutputCheckResult is the full record of one outbound check.
type OutputCheckResult struct {
	// ID is the opaque check identifier.
	ID string `json:"id"`
	// Timestamp is when the check ran (UTC).
	Timestamp time.Time `json:"timestamp"`
	// Duration is how long the check took.
	Duration time.Duration `json:"duration"`
	// Passed is true when the content (possibly redacted) may be sent.
	Passed bool `json:"passed"`
	// RequiresReview is true when a human should inspect the reply.
	RequiresReview bool `json:"requires_review"`
	// Validation is the embedded output validation.
	Validation *outputcheck.Validation `json:"validation"`
	// SafeContent is the content safe to send: the original when clean,
	// the redacted rewrite when violations were redactable, empty when a
	// critical violation makes the reply unsendable.
	SafeContent string `json:"safe_content,omitempty"`
}

// NewCheckID generates an opaque, monotonically informative check
// identifier: a UTC timestamp plus a random suffix.
func NewCheckID() string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("chk_%s_%s", time.Now().UTC().Format("20060102T150405"), suffix)
}
