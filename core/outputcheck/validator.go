package outputcheck

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/mailgate/mailgate/core/sanitizer"
)

// Config holds output validation settings.
type Config struct {
	// AllowedDomains are hosts whose URLs never count as external-URL
	// violations. Subdomains of an allowed domain are allowed too.
	AllowedDomains []string
	// MaxAutomatedLen is the maximum length of a fully-automated reply.
	MaxAutomatedLen int
	// MaxReviewedLen is the maximum length of a human-reviewed reply.
	MaxReviewedLen int
	// MinLen catches degenerate or empty generations.
	MinLen int
}

// DefaultConfig returns the default output validation configuration.
func DefaultConfig() *Config {
	return &Config{
		AllowedDomains:  []string{"example.com"},
		MaxAutomatedLen: 2000,
		MaxReviewedLen:  8000,
		MinLen:          20,
	}
}

// Validator inspects generated replies. The rule catalog and allow-list
// are compiled once at construction and never mutated, so a Validator is
// safe for concurrent use.
type Validator struct {
	rules   []outputRule
	allowed map[string]bool
	config  *Config
}

// New creates a Validator with the default catalog and the given
// configuration.
func New(cfg *Config) *Validator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	allowed := make(map[string]bool, len(cfg.AllowedDomains))
	for _, d := range cfg.AllowedDomains {
		allowed[strings.ToLower(d)] = true
	}
	return &Validator{
		rules:   defaultOutputRules(),
		allowed: allowed,
		config:  cfg,
	}
}

// Validate runs the violation catalog and the URL checks against the
// generated text. It is a pure function of its input.
func (v *Validator) Validate(generated string) *Validation {
	result := &Validation{
		Valid:       true,
		Violations:  make([]Violation, 0),
		ContentHash: sanitizer.ContentHash(generated),
	}

	if generated == "" {
		return result
	}

	risk := 0.0
	for _, r := range v.rules {
		for _, loc := range r.re.FindAllStringIndex(generated, -1) {
			result.Violations = append(result.Violations, Violation{
				Kind:        r.kind,
				Match:       excerpt(generated[loc[0]:loc[1]]),
				Start:       loc[0],
				End:         loc[1],
				Severity:    r.severity,
				Description: r.description,
			})
			risk += r.severity.Weight()
		}
	}

	for _, viol := range v.checkURLs(generated) {
		result.Violations = append(result.Violations, viol)
		risk += viol.Severity.Weight()
	}

	if risk > 1.0 {
		risk = 1.0
	}
	result.RiskScore = risk
	result.RequiresReview = len(result.Violations) > 0
	result.Valid = !result.HasCritical()

	if len(result.Violations) > 0 {
		result.RedactedContent = v.redact(generated, result.Violations)
	}

	return result
}

// checkURLs finds every URL and classifies it: suspicious query
// parameters are exfiltration regardless of host, webhook-style hosts are
// exfiltration, and any other host off the allow-list is an external URL
// inclusion.
func (v *Validator) checkURLs(generated string) []Violation {
	var violations []Violation

	for _, loc := range urlPattern.FindAllStringIndex(generated, -1) {
		raw := generated[loc[0]:loc[1]]
		viol := Violation{
			Match: excerpt(raw),
			Start: loc[0],
			End:   loc[1],
		}

		parsed, err := url.Parse(raw)
		if err != nil {
			viol.Kind = KindExternalURLInclusion
			viol.Severity = sanitizer.SeverityMedium
			viol.Description = "unparseable URL"
			violations = append(violations, viol)
			continue
		}

		host := strings.ToLower(parsed.Hostname())
		switch {
		case hasSuspiciousQuery(parsed):
			viol.Kind = KindExfiltrationAttempt
			viol.Severity = sanitizer.SeverityCritical
			viol.Description = "URL carries a data-smuggling query parameter"
		case isWebhookHost(host):
			viol.Kind = KindExfiltrationAttempt
			viol.Severity = sanitizer.SeverityCritical
			viol.Description = "URL points at a webhook/callback-style host"
		case !v.isAllowedHost(host):
			viol.Kind = KindExternalURLInclusion
			viol.Severity = sanitizer.SeverityMedium
			viol.Description = "external URL not on the allow-list"
		default:
			continue
		}
		violations = append(violations, viol)
	}

	return violations
}

// redact rewrites violating spans in reverse position order so earlier
// spans stay valid while rewriting.
func (v *Validator) redact(generated string, violations []Violation) string {
	ordered := make([]Violation, len(violations))
	copy(ordered, violations)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start > ordered[j].Start
		}
		return ordered[i].End > ordered[j].End
	})

	redacted := generated
	lastStart := len(redacted) + 1
	for _, viol := range ordered {
		// Spans overlapping an already-rewritten region are clamped to
		// their not-yet-rewritten prefix, so no violating byte survives.
		start, end := viol.Start, viol.End
		if end > lastStart {
			end = lastStart
		}
		if start >= end {
			continue
		}
		switch redactionFor(viol.Kind) {
		case redactReplace:
			redacted = redacted[:start] + placeholderFor(viol.Kind) + redacted[end:]
			lastStart = start
		case redactAnnotate:
			if end < viol.End {
				// The link's tail was already rewritten; an annotation
				// would land inside the replacement.
				continue
			}
			redacted = redacted[:end] + linkAnnotation + redacted[end:]
			lastStart = start
		}
	}
	return redacted
}

// redactionFor maps a violation kind to its redaction behavior.
func redactionFor(kind ViolationKind) redaction {
	switch kind {
	case KindPolicyViolation, KindHallucinationHedge, KindLengthViolation:
		return redactKeep
	case KindExternalURLInclusion:
		return redactAnnotate
	default:
		return redactReplace
	}
}

// placeholderFor maps a violation kind to its replacement placeholder.
func placeholderFor(kind ViolationKind) string {
	switch kind {
	case KindPIINationalID, KindPIIPaymentCard:
		return piiPlaceholder
	default:
		return redactedPlaceholder
	}
}

// ValidateLength enforces the per-reply-type maximum and the degenerate
// minimum. It returns nil when the length is acceptable.
func (v *Validator) ValidateLength(generated string, replyType ReplyType) *Violation {
	maxLen := v.config.MaxAutomatedLen
	if replyType == ReplyReviewed {
		maxLen = v.config.MaxReviewedLen
	}

	trimmed := strings.TrimSpace(generated)
	if len(trimmed) < v.config.MinLen {
		return &Violation{
			Kind:        KindLengthViolation,
			Severity:    sanitizer.SeverityHigh,
			Description: fmt.Sprintf("reply shorter than the %d-character minimum", v.config.MinLen),
		}
	}
	if len(generated) > maxLen {
		return &Violation{
			Kind:        KindLengthViolation,
			Start:       maxLen,
			End:         len(generated),
			Severity:    sanitizer.SeverityHigh,
			Description: fmt.Sprintf("reply exceeds the %d-character maximum for %s replies", maxLen, replyType),
		}
	}
	return nil
}

// isAllowedHost returns true if the host is an allowed domain or a
// subdomain of one.
func (v *Validator) isAllowedHost(host string) bool {
	if v.allowed[host] {
		return true
	}
	for domain := range v.allowed {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// isWebhookHost returns true if the host is a known callback-style host.
func isWebhookHost(host string) bool {
	for _, wh := range webhookHosts {
		if host == wh || strings.HasSuffix(host, "."+wh) {
			return true
		}
	}
	return false
}

// hasSuspiciousQuery returns true if any query parameter name indicates
// data smuggling.
func hasSuspiciousQuery(u *url.URL) bool {
	if u.RawQuery == "" {
		return false
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		// Unparseable query strings are treated as suspicious.
		return true
	}
	for name := range values {
		lower := strings.ToLower(name)
		for _, s := range suspiciousQueryParams {
			if lower == s {
				return true
			}
		}
	}
	return false
}

// maxExcerptLen bounds the excerpt stored per violation.
const maxExcerptLen = 80

// excerpt truncates a match to a bounded excerpt for storage.
func excerpt(match string) string {
	if len(match) <= maxExcerptLen {
		return match
	}
	return sanitizer.Truncate(match, maxExcerptLen) + "..."
}
