// Package outputcheck inspects generated reply text for leakage,
// exfiltration and policy violations before it may be sent. It is an
// independent entry point: validation does not require an inbound check
// to have occurred.
package outputcheck

import (
	"fmt"

	"github.com/mailgate/mailgate/core/sanitizer"
)

// ViolationKind categorizes an output violation.
type ViolationKind string

const (
	// KindSystemPromptLeak flags leaked system-instruction phrasing.
	KindSystemPromptLeak ViolationKind = "system_prompt_leak"
	// KindMarkerLeak flags leaked internal marker tokens. These never
	// appear in legitimate output; their presence is proof of a
	// successful injection.
	KindMarkerLeak ViolationKind = "marker_leak"
	// KindCredentialLeak flags credential-looking strings.
	KindCredentialLeak ViolationKind = "credential_leak"
	// KindInternalReference flags internal model or vendor identifiers.
	KindInternalReference ViolationKind = "internal_reference"
	// KindExfiltrationAttempt flags URLs carrying suspicious query
	// parameters or pointing at webhook-style callback hosts.
	KindExfiltrationAttempt ViolationKind = "exfiltration_attempt"
	// KindExternalURLInclusion flags external URLs not on the allow-list.
	KindExternalURLInclusion ViolationKind = "external_url_inclusion"
	// KindPIINationalID flags national-ID-shaped strings.
	KindPIINationalID ViolationKind = "pii_national_id"
	// KindPIIPaymentCard flags payment-card-shaped strings.
	KindPIIPaymentCard ViolationKind = "pii_payment_card"
	// KindSendCommand flags explicit send/forward-to-address commands.
	KindSendCommand ViolationKind = "send_command"
	// KindPolicyViolation flags self-contradictory refusal language.
	KindPolicyViolation ViolationKind = "policy_violation"
	// KindHallucinationHedge flags hallucination-hedging phrasing.
	KindHallucinationHedge ViolationKind = "hallucination_hedge"
	// KindLengthViolation flags replies outside the permitted length.
	KindLengthViolation ViolationKind = "length_violation"
)

// String returns the string representation of the violation kind.
func (k ViolationKind) String() string {
	return string(k)
}

// Violation records a single rule match against generated text. Spans
// reference the validated text and stay valid for redaction.
type Violation struct {
	// Kind is the violation category.
	Kind ViolationKind `json:"kind"`
	// Match is an excerpt of the matched text.
	Match string `json:"match"`
	// Start is the byte offset of the match in the validated text.
	Start int `json:"start"`
	// End is the byte offset one past the match in the validated text.
	End int `json:"end"`
	// Severity is the rule's severity.
	Severity sanitizer.Severity `json:"severity"`
	// Description explains the match for a human reviewer.
	Description string `json:"description"`
}

// Validation is the outcome of validating one generated reply.
type Validation struct {
	// Valid is false only when at least one critical-severity violation
	// exists. Lower severities degrade to requires-review, not a block.
	Valid bool `json:"valid"`
	// Violations lists every match, in catalog order.
	Violations []Violation `json:"violations,omitempty"`
	// RiskScore is the severity-weighted sum of matches, clamped to [0,1].
	RiskScore float64 `json:"risk_score"`
	// RedactedContent is a best-effort safe rewrite, empty when no
	// redaction was possible or necessary.
	RedactedContent string `json:"redacted_content,omitempty"`
	// RequiresReview is true when any violation exists.
	RequiresReview bool `json:"requires_review"`
	// ContentHash is the SHA-256 hash of the validated text, for audit.
	ContentHash string `json:"content_hash"`
}

// HasCritical returns true if any violation is critical.
func (v *Validation) HasCritical() bool {
	for _, viol := range v.Violations {
		if viol.Severity == sanitizer.SeverityCritical {
			return true
		}
	}
	return false
}

// ReplyType distinguishes fully-automated replies from human-reviewed
// ones for length enforcement.
type ReplyType string

const (
	// ReplyAutomated is a reply sent without human review.
	ReplyAutomated ReplyType = "automated"
	// ReplyReviewed is a reply that passes through human review.
	ReplyReviewed ReplyType = "reviewed"
)

// IsValid returns true if the reply type is a known value.
func (r ReplyType) IsValid() bool {
	return r == ReplyAutomated || r == ReplyReviewed
}

// ParseReplyType parses a string into a ReplyType.
func ParseReplyType(s string) (ReplyType, error) {
	r := ReplyType(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid reply type: %q", s)
	}
	return r, nil
}
