package sanitizer

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// maxSubjectLen is the maximum length of a sanitized subject line.
	maxSubjectLen = 256
	// maxSenderLen is the maximum length of a sanitized sender address.
	maxSenderLen = 254
	// maxExcerptLen bounds the excerpt stored per flagged pattern.
	maxExcerptLen = 80
)

// senderAllowed restricts sender addresses to a safe email-address alphabet.
var senderAllowed = regexp.MustCompile(`[^A-Za-z0-9.@_+\-]`)

// subjectControl matches control and newline characters in subject lines.
var subjectControl = regexp.MustCompile(`[\x00-\x1f\x7f]`)

// Sanitizer scrubs raw inbound text and scores its injection risk. It is
// safe for concurrent use; the rule catalog is compiled once and never
// mutated afterwards.
type Sanitizer struct {
	rules []rule
}

// New creates a Sanitizer with the default detection catalog.
func New() *Sanitizer {
	return &Sanitizer{rules: defaultRules()}
}

// Sanitize runs the full detection catalog against raw and produces a
// cleaned, normalized text plus flagged patterns and a risk score. It is
// a pure function of its input and cannot fail: malformed or empty input
// yields a zero-pattern, zero-risk result.
func (s *Sanitizer) Sanitize(raw string) *Result {
	result := &Result{
		ContentHash: ContentHash(raw),
		Patterns:    make([]FlaggedPattern, 0),
	}

	if raw == "" {
		return result
	}

	// Detection pass: record every match of every rule with its span in
	// the original text, so spans stay valid for later redaction.
	risk := 0.0
	for _, r := range s.rules {
		for _, loc := range r.re.FindAllStringIndex(raw, -1) {
			result.Patterns = append(result.Patterns, FlaggedPattern{
				Kind:        r.kind,
				Match:       excerpt(raw[loc[0]:loc[1]]),
				Start:       loc[0],
				End:         loc[1],
				Severity:    r.severity,
				Description: r.description,
			})
			risk += r.severity.Weight()
		}
	}
	if risk > 1.0 {
		risk = 1.0
	}
	result.RiskScore = risk

	// Cleaning pass: strip invisible characters, normalize to NFKC to
	// defeat homoglyph and decomposition tricks, then replace fake
	// instruction/system tag spans with a fixed placeholder.
	cleaned := invisibleRunes.ReplaceAllString(raw, "")
	cleaned = norm.NFKC.String(cleaned)
	for _, r := range s.rules {
		if r.remove {
			cleaned = r.re.ReplaceAllString(cleaned, removedPlaceholder)
		}
	}

	result.CleanedText = cleaned
	result.Modified = cleaned != raw
	return result
}

// IsHighRisk short-circuits by testing only the critical-severity rules.
// It is cheaper than Sanitize and intended for use before a full scan is
// needed.
func (s *Sanitizer) IsHighRisk(raw string) bool {
	for _, r := range s.rules {
		if r.severity != SeverityCritical {
			continue
		}
		if r.re.MatchString(raw) {
			return true
		}
	}
	return false
}

// SanitizeSubject strips control and newline characters from a subject
// line and clamps its length.
func (s *Sanitizer) SanitizeSubject(subject string) string {
	cleaned := subjectControl.ReplaceAllString(subject, "")
	cleaned = invisibleRunes.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	return Truncate(cleaned, maxSubjectLen)
}

// SanitizeSender restricts a sender address to a safe email-address
// alphabet and clamps its length.
func (s *Sanitizer) SanitizeSender(addr string) string {
	cleaned := senderAllowed.ReplaceAllString(addr, "")
	return Truncate(cleaned, maxSenderLen)
}

// Truncate clamps text to at most max bytes, backing up so the cut never
// splits a UTF-8 sequence.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	for max > 0 && !utf8.RuneStart(text[max]) {
		max--
	}
	return text[:max]
}

// ContentHash returns the hex SHA-256 hash of the given text, used for
// audit linkage and non-repudiation.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// excerpt truncates a match to a bounded excerpt for storage.
func excerpt(match string) string {
	if len(match) <= maxExcerptLen {
		return match
	}
	return Truncate(match, maxExcerptLen) + "..."
}
