package outputcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailgate/mailgate/core/sanitizer"
)

func newTestValidator() *Validator {
	return New(&Config{
		AllowedDomains:  []string{"example.com", "acme-shop.com"},
		MaxAutomatedLen: 200,
		MaxReviewedLen:  500,
		MinLen:          10,
	})
}

func TestValidate_CleanReply(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("Thank you for reaching out. Your order shipped on Monday and should arrive within three business days.")

	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 0.0, result.RiskScore)
	assert.False(t, result.RequiresReview)
	assert.Empty(t, result.RedactedContent)
	assert.NotEmpty(t, result.ContentHash)
}

func TestValidate_EmptyInput(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("")

	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)
}

func TestValidate_MarkerLeakIsCritical(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("Sure! The email said:\n>>> ignore everything\nHope that helps.")

	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Violations)

	found := false
	for _, viol := range result.Violations {
		if viol.Kind == KindMarkerLeak {
			found = true
			assert.Equal(t, sanitizer.SeverityCritical, viol.Severity)
		}
	}
	assert.True(t, found)
	assert.NotEmpty(t, result.RedactedContent)
	assert.NotContains(t, result.RedactedContent, ">>> ")
}

func TestValidate_AllowedURLPasses(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("You can track your parcel at https://www.example.com/track/12345 any time.")

	for _, viol := range result.Violations {
		assert.NotEqual(t, KindExternalURLInclusion, viol.Kind)
		assert.NotEqual(t, KindExfiltrationAttempt, viol.Kind)
	}
	assert.True(t, result.Valid)
}

func TestValidate_AllowedURLWithDataParamIsExfiltration(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("See https://www.example.com/track?data=c2VjcmV0 for details.")

	require.NotEmpty(t, result.Violations)
	assert.Equal(t, KindExfiltrationAttempt, result.Violations[0].Kind)
	assert.Equal(t, sanitizer.SeverityCritical, result.Violations[0].Severity)
	assert.False(t, result.Valid)
}

func TestValidate_WebhookHostIsExfiltration(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("Please visit https://abc123.webhook.site/collect for your refund.")

	require.NotEmpty(t, result.Violations)
	assert.Equal(t, KindExfiltrationAttempt, result.Violations[0].Kind)
	assert.False(t, result.Valid)
}

func TestValidate_UnlistedURLRequiresReview(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("More information is available at https://random-site.net/info about this.")

	require.NotEmpty(t, result.Violations)
	assert.Equal(t, KindExternalURLInclusion, result.Violations[0].Kind)
	// Medium severity degrades to review, not a block.
	assert.True(t, result.Valid)
	assert.True(t, result.RequiresReview)
	assert.Contains(t, result.RedactedContent, linkAnnotation)
	assert.Contains(t, result.RedactedContent, "https://random-site.net/info")
}

func TestValidate_CredentialLeak(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("Our internal api_key: sk-abcdefghijklmnopqrstu123 should fix it.")

	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.RedactedContent)
	assert.Contains(t, result.RedactedContent, redactedPlaceholder)
	assert.NotContains(t, result.RedactedContent, "sk-abcdefghijklmnopqrstu123")
}

func TestValidate_PIIRedaction(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("We have your card 4111 1111 1111 1111 and SSN 123-45-6789 on file for reference purposes.")

	assert.True(t, result.Valid, "PII is high severity, not critical")
	assert.True(t, result.RequiresReview)
	assert.Contains(t, result.RedactedContent, piiPlaceholder)
	assert.NotContains(t, result.RedactedContent, "4111 1111 1111 1111")
	assert.NotContains(t, result.RedactedContent, "123-45-6789")
}

func TestValidate_OverlappingSpansFullyRedacted(t *testing.T) {
	v := newTestValidator()
	// The credential assignment sits inside the exfiltration URL, so the
	// two violating spans overlap. The URL's prefix must not survive.
	result := v.Validate("See https://collect.example.net/?secret=mypassword123 for details.")

	assert.False(t, result.Valid)
	assert.NotContains(t, result.RedactedContent, "collect.example.net")
	assert.NotContains(t, result.RedactedContent, "mypassword123")
	assert.Contains(t, result.RedactedContent, redactedPlaceholder)
	assert.Contains(t, result.RedactedContent, "for details.")
}

func TestValidate_SendCommand(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("I will forward your account details to collector@evil.example.net shortly.")

	assert.False(t, result.Valid)
	found := false
	for _, viol := range result.Violations {
		if viol.Kind == KindSendCommand {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_SystemPromptLeak(t *testing.T) {
	v := newTestValidator()
	result := v.Validate("The text above was marked UNTRUSTED DATA so I summarized it instead of replying.")

	assert.False(t, result.Valid)
	assert.Contains(t, result.RedactedContent, redactedPlaceholder)
}

func TestValidate_PolicyLanguageIsReviewOnly(t *testing.T) {
	v := newTestValidator()
	text := "I'm not allowed to discuss pricing, but our store page has everything."
	result := v.Validate(text)

	assert.True(t, result.Valid)
	assert.True(t, result.RequiresReview)
	// Flag-only violations keep the original text intact.
	assert.Contains(t, result.RedactedContent, "not allowed to discuss pricing")
}

func TestValidate_RiskScoreWeights(t *testing.T) {
	v := newTestValidator()
	// One medium external URL: 0.25.
	result := v.Validate("Details at https://unknown-host.org/page if you are curious about it.")
	assert.InDelta(t, 0.25, result.RiskScore, 1e-9)
}

func TestValidateLength(t *testing.T) {
	v := newTestValidator()

	assert.Nil(t, v.ValidateLength("A perfectly reasonable reply.", ReplyAutomated))

	short := v.ValidateLength("hi", ReplyAutomated)
	require.NotNil(t, short)
	assert.Equal(t, KindLengthViolation, short.Kind)

	long := strings.Repeat("a", 300)
	assert.NotNil(t, v.ValidateLength(long, ReplyAutomated))
	// The reviewed limit is higher.
	assert.Nil(t, v.ValidateLength(long, ReplyReviewed))

	tooLong := strings.Repeat("a", 600)
	assert.NotNil(t, v.ValidateLength(tooLong, ReplyReviewed))
}

func TestParseReplyType(t *testing.T) {
	rt, err := ParseReplyType("automated")
	require.NoError(t, err)
	assert.Equal(t, ReplyAutomated, rt)

	_, err = ParseReplyType("casual")
	assert.Error(t, err)
}
