// Package classifier provides conditional classification of cleaned email
// text against an external text-classification capability, with a
// deterministic fast path and fail-open semantics.
package classifier

import "fmt"

// Technique identifies the inferred injection technique. The enumeration
// is closed: unknown values from the external classifier are rejected.
type Technique string

const (
	// TechniqueInstructionOverride covers ignore/override phrasing.
	TechniqueInstructionOverride Technique = "instruction_override"
	// TechniqueDelimiterAttack covers fabricated role markers and tags.
	TechniqueDelimiterAttack Technique = "delimiter_attack"
	// TechniqueRoleHijack covers role-reassignment phrasing.
	TechniqueRoleHijack Technique = "role_hijack"
	// TechniqueDirectInjection covers explicit jailbreak attempts.
	TechniqueDirectInjection Technique = "direct_injection"
	// TechniqueSocialEngineering covers exfiltration-style requests.
	TechniqueSocialEngineering Technique = "social_engineering"
	// TechniqueEncodingEvasion covers encoded or obfuscated payloads.
	TechniqueEncodingEvasion Technique = "encoding_evasion"
	// TechniquePayloadSplitting covers instructions split across segments.
	TechniquePayloadSplitting Technique = "payload_splitting"
	// TechniqueIndirectInjection covers attacks with no clearer signature.
	TechniqueIndirectInjection Technique = "indirect_injection"
)

var validTechniques = map[Technique]bool{
	TechniqueInstructionOverride: true,
	TechniqueDelimiterAttack:     true,
	TechniqueRoleHijack:          true,
	TechniqueDirectInjection:     true,
	TechniqueSocialEngineering:   true,
	TechniqueEncodingEvasion:     true,
	TechniquePayloadSplitting:    true,
	TechniqueIndirectInjection:   true,
}

// String returns the string representation of the technique.
func (t Technique) String() string {
	return string(t)
}

// IsValid returns true if the technique is a known value.
func (t Technique) IsValid() bool {
	return validTechniques[t]
}

// ParseTechnique parses a string into a Technique.
func ParseTechnique(s string) (Technique, error) {
	t := Technique(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid technique: %q", s)
	}
	return t, nil
}

// Classification is the judgement produced for one cleaned payload. It is
// produced only when the orchestrator decides classification is warranted.
type Classification struct {
	// IsAttack is true if the content was judged an injection attempt.
	IsAttack bool `json:"is_attack"`
	// Confidence is the judgement confidence in [0,1].
	Confidence float64 `json:"confidence"`
	// Technique is the inferred technique, empty when none applies.
	Technique Technique `json:"technique,omitempty"`
	// Reasoning is a short free-text justification.
	Reasoning string `json:"reasoning,omitempty"`
	// ShouldBlock is true if the content must not reach the generator.
	ShouldBlock bool `json:"should_block"`
	// RequiresReview is true if a human should inspect the content.
	RequiresReview bool `json:"requires_review"`
}
