package classifier

import "regexp"

// quickCheckPatterns is a small set of high-precision expressions for
// synchronous, no-network pre-screening. They trade recall for precision:
// a hit is a strong injection signal, a miss means nothing.
var quickCheckPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bignore\s+(all\s+)?(previous|prior|above)\s+instructions\b`),
	regexp.MustCompile(`(?i)\byou\s+are\s+now\s+in\s+developer\s+mode\b`),
	regexp.MustCompile(`(?i)\bdisregard\s+(your|all)\s+(guidelines|rules|instructions)\b`),
	regexp.MustCompile(`(?i)<\|im_start\|>`),
	regexp.MustCompile(`(?i)\breveal\s+(your|the)\s+system\s+prompt\b`),
	regexp.MustCompile(`(?im)^\s*system\s*:\s*you\s+are\b`),
}

// QuickCheck runs the high-precision heuristics against the text. It never
// performs I/O and is independent of the full classifier.
func QuickCheck(text string) bool {
	for _, re := range quickCheckPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
