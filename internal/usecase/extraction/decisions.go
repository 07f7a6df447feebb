package extraction

import (
	"regexp"
	"strings"
)

const (
	// MaxDecisions caps the number of key decisions returned
	MaxDecisions = 5
	// decisionFallbackThreshold triggers the keyword pass below this count
	decisionFallbackThreshold = 3
	minDecisionLength         = 10
)

var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:it was )?decided that\s+([^.!?]+[.!?]+)`),
	regexp.MustCompile(`(?i)\b(?:the|we|they|team) (?:all )?agreed (?:to|that)\s+([^.!?]+[.!?]+)`),
	regexp.MustCompile(`(?i)\b(?:the|we|they|team) (?:came to a|reached a) consensus (?:to|that)\s+([^.!?]+[.!?]+)`),
	regexp.MustCompile(`(?i)\b(?:final|key) decision:?\s+([^.!?]+[.!?]+)`),
	regexp.MustCompile(`(?i)\bconclusion:?\s+([^.!?]+[.!?]+)`),
}

var decisionKeywords = []string{
	"decide", "agreed", "approved", "finalized", "concluded",
	"consensus", "resolution", "determined", "settled on", "confirmed",
}

// ExtractDecisions collects decision phrases, then tops up with whole
// sentences carrying decision keywords when fewer than three were found.
func ExtractDecisions(text string) []string {
	decisions := make([]string, 0)

	for _, p := range decisionPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if d := strings.TrimSpace(m[1]); runeLen(d) > minDecisionLength {
				decisions = append(decisions, d)
			}
		}
	}

	if len(decisions) < decisionFallbackThreshold {
		lowered := make([]string, len(decisions))
		for i, d := range decisions {
			lowered[i] = strings.ToLower(d)
		}
		for _, sentence := range SplitSentences(text) {
			if len(decisions) >= MaxDecisions {
				break
			}
			lower := strings.ToLower(sentence)
			if !hasKeyword(lower, decisionKeywords) || overlapsAny(lower, lowered) {
				continue
			}
			decisions = append(decisions, sentence)
			lowered = append(lowered, lower)
		}
	}

	if len(decisions) > MaxDecisions {
		decisions = decisions[:MaxDecisions]
	}
	return decisions
}
