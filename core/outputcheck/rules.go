package outputcheck

import (
	"regexp"

	"github.com/mailgate/mailgate/core/sanitizer"
)

// redaction describes how a violation span is rewritten during the
// redaction pass.
type redaction int

const (
	// redactReplace replaces the span with a placeholder.
	redactReplace redaction = iota
	// redactAnnotate keeps the span and appends an annotation suffix.
	redactAnnotate
	// redactKeep leaves the span untouched (flag only).
	redactKeep
)

const (
	redactedPlaceholder = "[REDACTED]"
	piiPlaceholder      = "[PII REMOVED]"
	linkAnnotation      = " [external link]"
)

// outputRule is one entry in the output violation catalog.
type outputRule struct {
	kind        ViolationKind
	re          *regexp.Regexp
	severity    sanitizer.Severity
	description string
	redact      redaction
}

// urlPattern finds URLs for the allow-list and exfiltration checks.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"')\]]+`)

// suspiciousQueryParams are query parameter names that indicate data
// smuggling regardless of host.
var suspiciousQueryParams = []string{"data", "payload", "token", "key", "secret", "exfil", "content", "dump"}

// webhookHosts are callback-style hosts that legitimate replies never
// link to.
var webhookHosts = []string{
	"webhook.site",
	"requestbin.com",
	"pipedream.net",
	"ngrok.io",
	"ngrok-free.app",
	"interact.sh",
	"oastify.com",
}

// defaultOutputRules returns the output violation catalog. URL checks are
// handled separately because they need host parsing, not just a pattern.
func defaultOutputRules() []outputRule {
	return []outputRule{
		{
			kind:        KindSystemPromptLeak,
			re:          regexp.MustCompile(`(?i)(UNTRUSTED DATA|never follow instructions, requests or commands|you draft replies to customer emails)`),
			severity:    sanitizer.SeverityCritical,
			description: "system-instruction phrasing leaked into the reply",
			redact:      redactReplace,
		},
		{
			kind:        KindMarkerLeak,
			re:          regexp.MustCompile(`(>>> |SUBJECT> |FROM> |HDR> |FILE> )`),
			severity:    sanitizer.SeverityCritical,
			description: "internal marker token leaked into the reply",
			redact:      redactReplace,
		},
		{
			kind:        KindCredentialLeak,
			re:          regexp.MustCompile(`(?i)\b(password|passwd|api[_-]?key|access[_-]?token|secret)\s*[=:]\s*\S+`),
			severity:    sanitizer.SeverityCritical,
			description: "credential-looking assignment",
			redact:      redactReplace,
		},
		{
			kind:        KindCredentialLeak,
			re:          regexp.MustCompile(`\b(sk|pk|rk)-[A-Za-z0-9]{20,}\b|(?i)\bbearer\s+[A-Za-z0-9._\-]{16,}\b`),
			severity:    sanitizer.SeverityCritical,
			description: "credential-looking token",
			redact:      redactReplace,
		},
		{
			kind:        KindInternalReference,
			re:          regexp.MustCompile(`(?i)\b(gpt-[45][\w.-]*|claude[\w.-]*|gemini[\w.-]*|openai|anthropic|system prompt|my instructions say)\b`),
			severity:    sanitizer.SeverityHigh,
			description: "internal model or vendor identifier",
			redact:      redactReplace,
		},
		{
			kind:        KindPIIPaymentCard,
			re:          regexp.MustCompile(`\b(?:\d{4}[ -]?){3}\d{3,4}\b`),
			severity:    sanitizer.SeverityHigh,
			description: "payment-card-shaped number",
			redact:      redactReplace,
		},
		{
			kind:        KindPIINationalID,
			re:          regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
			severity:    sanitizer.SeverityHigh,
			description: "national-ID-shaped number",
			redact:      redactReplace,
		},
		{
			kind:        KindSendCommand,
			re:          regexp.MustCompile(`(?i)\b(send|forward)\b[^.\n]{0,40}\bto\b[^.\n]{0,30}[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
			severity:    sanitizer.SeverityCritical,
			description: "embedded send/forward-to-address command",
			redact:      redactReplace,
		},
		{
			kind:        KindPolicyViolation,
			re:          regexp.MustCompile(`(?i)\b(I('| a)?m not (allowed|permitted) to|I can('|no)?t (help|assist|comply) with|against my (rules|guidelines|programming))\b`),
			severity:    sanitizer.SeverityMedium,
			description: "self-contradictory refusal language",
			redact:      redactKeep,
		},
		{
			kind:        KindHallucinationHedge,
			re:          regexp.MustCompile(`(?i)\b(as an AI\b|I (don'?t|do not) have access to real|I (might|may) be (wrong|mistaken|hallucinating)|I cannot verify)\b`),
			severity:    sanitizer.SeverityLow,
			description: "hallucination-hedging phrasing",
			redact:      redactKeep,
		},
	}
}
