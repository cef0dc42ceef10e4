// Package spotlight marks every line of untrusted email content with a
// field-specific prefix so a downstream generator can syntactically
// distinguish data from instructions. Marking is a content transform, not
// a truth judgement, and performs no I/O.
package spotlight

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mailgate/mailgate/core/email"
)

// Field-specific marker prefixes. Distinct markers per field let a single
// expression verify that every line of a field carries the expected one.
const (
	// BodyMarker prefixes untrusted body lines.
	BodyMarker = ">>> "
	// SubjectMarker prefixes the subject line.
	SubjectMarker = "SUBJECT> "
	// SenderMarker prefixes the sender line.
	SenderMarker = "FROM> "
	// HeaderMarker prefixes header lines.
	HeaderMarker = "HDR> "
	// AttachmentMarker prefixes attachment-name lines.
	AttachmentMarker = "FILE> "
)

// markerPrefix strips any known marker at the start of a line.
var markerPrefix = regexp.MustCompile(`^(>>> |SUBJECT> |FROM> |HDR> |FILE> )`)

// Email is an inbound email with every untrusted line marked.
type Email struct {
	// Subject is the marked subject line.
	Subject string `json:"subject"`
	// From is the marked sender line.
	From string `json:"from"`
	// Body is the marked body, one marker per line.
	Body string `json:"body"`
	// Headers are the marked header lines.
	Headers []string `json:"headers,omitempty"`
	// Attachments are the marked attachment-name lines.
	Attachments []string `json:"attachments,omitempty"`
}

// SecurePrompt is the generator-ready prompt pair: fixed system
// instructions plus a rendered transcript of the marked email.
type SecurePrompt struct {
	// System is the instruction text explaining the marker convention.
	System string `json:"system"`
	// User is the rendered marked-email transcript.
	User string `json:"user"`
}

// Spotlighter performs the marking transform. It is stateless and safe
// for concurrent use.
type Spotlighter struct{}

// New creates a Spotlighter.
func New() *Spotlighter {
	return &Spotlighter{}
}

// MarkEmail derives a marked email from the given fields. The transform
// is deterministic and exactly invertible via RemoveMarkers.
func (s *Spotlighter) MarkEmail(e *email.Inbound) *Email {
	marked := &Email{
		Subject: SubjectMarker + e.Subject,
		From:    SenderMarker + senderLine(e),
		Body:    MarkLines(e.Body, BodyMarker),
	}

	// Header keys are sorted so the marked form is stable across runs.
	headerKeys := make([]string, 0, len(e.Headers))
	for k := range e.Headers {
		headerKeys = append(headerKeys, k)
	}
	sort.Strings(headerKeys)
	for _, k := range headerKeys {
		marked.Headers = append(marked.Headers, HeaderMarker+k+": "+e.Headers[k])
	}
	for _, name := range e.AttachmentNames {
		marked.Attachments = append(marked.Attachments, AttachmentMarker+name)
	}

	return marked
}

// MarkLines prefixes every line of text with the given marker, including
// empty lines, preserving the original line structure.
func MarkLines(text, marker string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = marker + line
	}
	return strings.Join(lines, "\n")
}

// RemoveMarkers strips all marker prefixes from every line, for storage
// or human display. It is the exact inverse of marking over the
// originally-submitted text.
func RemoveMarkers(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = markerPrefix.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}

// IsProperlyMarked reports whether every line of text carries the
// expected marker. It is a self-check primitive for the pipeline.
func IsProperlyMarked(text, marker string) bool {
	if text == "" {
		return true
	}
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, marker) {
			return false
		}
	}
	return true
}

// senderLine renders the sender with its optional display name.
func senderLine(e *email.Inbound) string {
	if e.FromName != "" {
		return e.FromName + " <" + e.From + ">"
	}
	return e.From
}
