package pipeline

import (
	"context"
	"time"

	"github.com/mailgate/mailgate/core/classifier"
	"github.com/mailgate/mailgate/core/email"
	"github.com/mailgate/mailgate/core/outputcheck"
	"github.com/mailgate/mailgate/core/sanitizer"
	"github.com/mailgate/mailgate/core/spotlight"
)

// Config holds the orchestrator thresholds. These are configuration, not
// code: they are loaded once at startup and never mutated at request time.
type Config struct {
	// AutoBlockThreshold is the sanitizer risk score at or above which
	// inbound content is blocked without classifier or spotlighter work.
	AutoBlockThreshold float64
	// ClassifySkipBelow is the sanitizer risk score below which the
	// classifier is skipped (the quick-check heuristics still run as a
	// tripwire).
	ClassifySkipBelow float64
	// ClassifyForceAbove is the sanitizer risk score at or above which a
	// classification is required; if no classifier is configured, such
	// content is flagged for review.
	ClassifyForceAbove float64
	// SanitizerWeight is the sanitizer share of the combined risk score
	// when a classification is present.
	SanitizerWeight float64
	// ClassifierWeight is the classifier share of the combined risk
	// score when a classification is present.
	ClassifierWeight float64
}

// DefaultConfig returns the default orchestrator thresholds.
func DefaultConfig() *Config {
	return &Config{
		AutoBlockThreshold: 0.75,
		ClassifySkipBelow:  0.25,
		ClassifyForceAbove: 0.5,
		SanitizerWeight:    0.4,
		ClassifierWeight:   0.6,
	}
}

// Pipeline sequences the security layers. It carries no mutable state
// beyond immutable configuration and component handles, so a single
// Pipeline is safe to invoke concurrently, one goroutine per email.
type Pipeline struct {
	sanitizer  *sanitizer.Sanitizer
	classifier *classifier.Classifier
	spotlight  *spotlight.Spotlighter
	validator  *outputcheck.Validator
	config     *Config
}

// New creates a Pipeline from explicitly injected components. The
// classifier may be nil when no classification provider is configured;
// the pipeline then degrades to sanitizer-plus-heuristics gating.
func New(san *sanitizer.Sanitizer, cls *classifier.Classifier, spot *spotlight.Spotlighter, val *outputcheck.Validator, cfg *Config) *Pipeline {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Pipeline{
		sanitizer:  san,
		classifier: cls,
		spotlight:  spot,
		validator:  val,
		config:     cfg,
	}
}

// CheckInbound gates one inbound email. Stages run strictly in sequence:
// sanitizer, then conditionally the classifier, then the spotlighter. A
// sanitizer risk score at or above the auto-block threshold returns
// immediately without paying for classification or prompt building.
// CheckInbound never returns an error: every outcome is a complete,
// inspectable result record.
func (p *Pipeline) CheckInbound(ctx context.Context, e *email.Inbound) *CheckResult {
	started := time.Now()
	result := &CheckResult{
		ID:        NewCheckID(),
		Timestamp: started.UTC(),
	}

	san := p.sanitizer.Sanitize(e.Body)
	result.Sanitization = san

	if san.RiskScore >= p.config.AutoBlockThreshold {
		result.Blocked = true
		result.BlockReason = "sanitizer risk score at or above auto-block threshold"
		result.RiskScore = san.RiskScore
		result.RiskBand = BandFor(san.RiskScore)
		result.Duration = time.Since(started)
		return result
	}

	if cls := p.maybeClassify(ctx, san); cls != nil {
		result.Classification = cls
		if cls.ShouldBlock {
			result.Blocked = true
			result.BlockReason = "classifier signaled block"
			result.RiskScore = p.combineRisk(san, cls)
			result.RiskBand = BandFor(result.RiskScore)
			result.Duration = time.Since(started)
			return result
		}
		if cls.RequiresReview {
			result.RequiresReview = true
		}
	} else if san.RiskScore >= p.config.ClassifyForceAbove {
		// Classification was required but unavailable.
		result.RequiresReview = true
	}

	cleaned := &email.Inbound{
		Subject:         p.sanitizer.SanitizeSubject(e.Subject),
		From:            p.sanitizer.SanitizeSender(e.From),
		FromName:        e.FromName,
		Body:            san.CleanedText,
		Headers:         e.Headers,
		AttachmentNames: e.AttachmentNames,
	}
	marked := p.spotlight.MarkEmail(cleaned)
	result.Spotlight = marked
	result.Prompt = p.spotlight.RenderPrompt(marked)

	result.RiskScore = p.combineRisk(san, result.Classification)
	result.RiskBand = BandFor(result.RiskScore)
	result.Passed = true
	result.Duration = time.Since(started)
	return result
}

// CheckOutput gates one generated reply. The reply type, when known,
// additionally enforces the length limits.
func (p *Pipeline) CheckOutput(ctx context.Context, generated string, replyType outputcheck.ReplyType) *OutputCheckResult {
	started := time.Now()
	result := &OutputCheckResult{
		ID:        NewCheckID(),
		Timestamp: started.UTC(),
	}

	validation := p.validator.Validate(generated)
	if replyType.IsValid() {
		if lv := p.validator.ValidateLength(generated, replyType); lv != nil {
			validation.Violations = append(validation.Violations, *lv)
			validation.RequiresReview = true
		}
	}
	result.Validation = validation
	result.RequiresReview = validation.RequiresReview

	switch {
	case !validation.Valid:
		// A critical violation makes the reply unsendable as-is.
		result.Passed = false
	case validation.RedactedContent != "":
		result.Passed = true
		result.SafeContent = validation.RedactedContent
	default:
		result.Passed = true
		result.SafeContent = generated
	}

	result.Duration = time.Since(started)
	return result
}

// maybeClassify decides whether the classifier runs: skip below the
// low-risk floor unless the quick-check tripwire fires, classify
// otherwise. Returns nil when classification is skipped or no classifier
// is configured.
func (p *Pipeline) maybeClassify(ctx context.Context, san *sanitizer.Result) *classifier.Classification {
	if p.classifier == nil {
		return nil
	}
	if san.RiskScore < p.config.ClassifySkipBelow && !classifier.QuickCheck(san.CleanedText) {
		return nil
	}
	return p.classifier.Classify(ctx, san.CleanedText, san)
}

// combineRisk blends the sanitizer and classifier scores when both are
// present, and falls back to the sanitizer score alone otherwise.
func (p *Pipeline) combineRisk(san *sanitizer.Result, cls *classifier.Classification) float64 {
	if cls == nil {
		return san.RiskScore
	}
	clsScore := cls.Confidence
	if !cls.IsAttack {
		clsScore = 0
	}
	combined := p.config.SanitizerWeight*san.RiskScore + p.config.ClassifierWeight*clsScore
	if combined > 1.0 {
		combined = 1.0
	}
	return combined
}
