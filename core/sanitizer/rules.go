package sanitizer

import "regexp"

// rule is a single detection entry in the catalog: a compiled pattern plus
// its classification. Rules with remove set have their matches replaced
// with the removedPlaceholder in the cleaned text.
type rule struct {
	kind        PatternKind
	re          *regexp.Regexp
	severity    Severity
	description string
	remove      bool
}

// removedPlaceholder replaces fake instruction/system tag spans in the
// cleaned text.
const removedPlaceholder = "[REMOVED]"

// invisibleRunes matches zero-width, word-joiner, BOM, soft-hyphen and
// line/paragraph separator characters. These are stripped outright from
// the cleaned text.
var invisibleRunes = regexp.MustCompile("[\u200B\u200C\u200D\u2060\uFEFF\u00AD\u2028\u2029]+")

// defaultRules returns the ordered detection catalog. Order matters only
// for the order of flagged patterns in the result; every rule always runs.
func defaultRules() []rule {
	return []rule{
		{
			kind:        KindInvisibleChars,
			re:          invisibleRunes,
			severity:    SeverityMedium,
			description: "invisible or zero-width characters",
		},
		{
			kind:        KindHomoglyph,
			re:          regexp.MustCompile(`[a-zA-Z][\p{Cyrillic}\p{Greek}]|[\p{Cyrillic}\p{Greek}][a-zA-Z]`),
			severity:    SeverityMedium,
			description: "Cyrillic or Greek lookalike characters mixed into Latin text",
		},
		{
			kind:        KindBase64Payload,
			re:          regexp.MustCompile(`[A-Za-z0-9+/]{120,}={0,2}`),
			severity:    SeverityMedium,
			description: "oversized embedded base64-like payload",
		},
		{
			kind:        KindFakeRoleMarker,
			re:          regexp.MustCompile(`(?im)^[ \t]*(system|assistant|developer|tool)[ \t]*:`),
			severity:    SeverityHigh,
			description: "fabricated conversation-role marker",
			remove:      true,
		},
		{
			kind:        KindFakeInstructionTag,
			re:          regexp.MustCompile(`(?i)(<\|?(system|user|assistant|im_start|im_end|instructions?)[^>|]*\|?>|\[/?(INST|SYSTEM)\])`),
			severity:    SeverityCritical,
			description: "fabricated instruction or system tag",
			remove:      true,
		},
		{
			kind:        KindInstructionOverride,
			re:          regexp.MustCompile(`(?i)\b(ignore|disregard|forget|override)\b[^.\n]{0,30}\b(previous|prior|above|earlier|all|any)\b[^.\n]{0,30}\b(instructions?|prompts?|rules?|directions?|context)\b`),
			severity:    SeverityCritical,
			description: "request to ignore or override prior instructions",
		},
		{
			kind:        KindInstructionOverride,
			re:          regexp.MustCompile(`(?im)^[ \t]*new[ \t]+instructions?[ \t]*:`),
			severity:    SeverityHigh,
			description: "attempt to introduce replacement instructions",
		},
		{
			kind:        KindRoleHijack,
			re:          regexp.MustCompile(`(?i)\b(pretend\s+(to\s+be|you\s+are)|act\s+as\s+(if|a|an|my)|you\s+are\s+now\s+(a|an|in)|roleplay\s+as)\b`),
			severity:    SeverityHigh,
			description: "role-reassignment phrasing",
		},
		{
			kind:        KindJailbreakToken,
			re:          regexp.MustCompile(`(?i)\b(jailbreak|do\s+anything\s+now|\bDAN\s+mode\b|developer\s+mode|unfiltered\s+mode|no\s+restrictions\s+apply)\b`),
			severity:    SeverityHigh,
			description: "known jailbreak vocabulary",
		},
		{
			kind:        KindExfiltrationPhrase,
			re:          regexp.MustCompile(`(?i)\b(send|forward|email|transmit)\b[^.\n]{0,60}\bto\b[^.\n]{0,40}[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
			severity:    SeverityHigh,
			description: "request to send content to an email address",
		},
		{
			kind:        KindExfiltrationPhrase,
			re:          regexp.MustCompile(`(?i)\b(exfiltrate|leak|reveal)\b[^.\n]{0,40}\b(credentials?|secrets?|passwords?|account\s+details?|system\s+prompt)\b`),
			severity:    SeverityHigh,
			description: "request to reveal protected data",
		},
		{
			kind:        KindEncodedInstruction,
			re:          regexp.MustCompile(`(?i)\b(base64|rot13|hex|url)[\s-]*(decode|encoded|decoding)\b`),
			severity:    SeverityMedium,
			description: "encoded-instruction marker",
		},
	}
}
