// Package email defines the parsed email types exchanged with the
// mailbox-parsing collaborator. No MIME or transport details cross
// this boundary.
package email

// Inbound represents a single parsed inbound email as delivered by the
// mailbox collaborator. All fields are untrusted.
type Inbound struct {
	// Subject is the decoded subject line.
	Subject string `json:"subject"`
	// From is the sender address.
	From string `json:"from"`
	// FromName is the optional sender display name.
	FromName string `json:"from_name,omitempty"`
	// Body is the plain-text body.
	Body string `json:"body"`
	// Headers is an optional subset of message headers.
	Headers map[string]string `json:"headers,omitempty"`
	// AttachmentNames lists attachment filenames, if any.
	AttachmentNames []string `json:"attachment_names,omitempty"`
}

// IsEmpty returns true if the email carries no usable content.
func (e *Inbound) IsEmpty() bool {
	return e == nil || (e.Subject == "" && e.Body == "")
}
