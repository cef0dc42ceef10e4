// Package sanitizer provides pattern-based scrubbing and risk scoring of
// raw inbound email text. It is the first layer of the content-security
// pipeline and never performs I/O.
package sanitizer

import "fmt"

// Severity represents how dangerous a flagged pattern is.
type Severity string

const (
	// SeverityLow indicates a weak signal, harmless on its own.
	SeverityLow Severity = "low"
	// SeverityMedium indicates a suspicious but ambiguous signal.
	SeverityMedium Severity = "medium"
	// SeverityHigh indicates a strong injection signal.
	SeverityHigh Severity = "high"
	// SeverityCritical indicates a near-certain attack signal.
	SeverityCritical Severity = "critical"
)

// severityWeights maps each severity to its risk contribution. The sum of
// contributions is clamped to 1.0 so many low-severity matches cannot by
// themselves force a block.
var severityWeights = map[Severity]float64{
	SeverityLow:      0.1,
	SeverityMedium:   0.25,
	SeverityHigh:     0.5,
	SeverityCritical: 0.8,
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// IsValid returns true if the severity is a known value.
func (s Severity) IsValid() bool {
	_, ok := severityWeights[s]
	return ok
}

// Weight returns the risk contribution of a single match at this severity.
func (s Severity) Weight() float64 {
	return severityWeights[s]
}

// ParseSeverity parses a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("invalid severity: %q", s)
	}
	return sev, nil
}

// PatternKind categorizes a detection rule.
type PatternKind string

const (
	// KindInvisibleChars flags zero-width and other invisible characters.
	KindInvisibleChars PatternKind = "invisible_chars"
	// KindHomoglyph flags non-Latin lookalike characters mixed into text.
	KindHomoglyph PatternKind = "homoglyph"
	// KindBase64Payload flags oversized embedded base64 blobs.
	KindBase64Payload PatternKind = "base64_payload"
	// KindFakeRoleMarker flags fabricated conversation-role markers.
	KindFakeRoleMarker PatternKind = "fake_role_marker"
	// KindFakeInstructionTag flags fabricated instruction/system tags.
	KindFakeInstructionTag PatternKind = "fake_instruction_tag"
	// KindInstructionOverride flags requests to ignore prior instructions.
	KindInstructionOverride PatternKind = "instruction_override"
	// KindRoleHijack flags role-reassignment phrasing.
	KindRoleHijack PatternKind = "role_hijack"
	// KindJailbreakToken flags known jailbreak vocabulary.
	KindJailbreakToken PatternKind = "jailbreak_token"
	// KindExfiltrationPhrase flags send-this-to-an-address phrasing.
	KindExfiltrationPhrase PatternKind = "exfiltration_phrase"
	// KindEncodedInstruction flags encoded-payload markers.
	KindEncodedInstruction PatternKind = "encoded_instruction"
)

// String returns the string representation of the pattern kind.
func (k PatternKind) String() string {
	return string(k)
}

// FlaggedPattern records a single rule match. It is immutable once created
// and consumed only for scoring and audit.
type FlaggedPattern struct {
	// Kind is the category of the matched rule.
	Kind PatternKind `json:"kind"`
	// Match is an excerpt of the matched text.
	Match string `json:"match"`
	// Start is the byte offset of the match in the original text.
	Start int `json:"start"`
	// End is the byte offset one past the match in the original text.
	End int `json:"end"`
	// Severity is the rule's severity.
	Severity Severity `json:"severity"`
	// Description explains the match for a human reviewer.
	Description string `json:"description"`
}

// Result is the outcome of sanitizing one inbound payload. It is created
// once and never mutated afterwards.
type Result struct {
	// CleanedText is the scrubbed, Unicode-normalized text.
	CleanedText string `json:"cleaned_text"`
	// Patterns lists every rule match against the original text, in
	// catalog order.
	Patterns []FlaggedPattern `json:"patterns,omitempty"`
	// RiskScore is the severity-weighted sum of matches, clamped to [0,1].
	RiskScore float64 `json:"risk_score"`
	// ContentHash is the SHA-256 hash of the original text, for audit.
	ContentHash string `json:"content_hash"`
	// Modified is true if cleaning changed the text.
	Modified bool `json:"modified"`
}

// HasSeverity returns true if any flagged pattern has the given severity.
func (r *Result) HasSeverity(sev Severity) bool {
	for _, p := range r.Patterns {
		if p.Severity == sev {
			return true
		}
	}
	return false
}

// KindsFound returns the distinct pattern kinds present in the result, in
// first-seen order.
func (r *Result) KindsFound() []PatternKind {
	seen := make(map[PatternKind]bool, len(r.Patterns))
	kinds := make([]PatternKind, 0, len(r.Patterns))
	for _, p := range r.Patterns {
		if !seen[p.Kind] {
			seen[p.Kind] = true
			kinds = append(kinds, p.Kind)
		}
	}
	return kinds
}
