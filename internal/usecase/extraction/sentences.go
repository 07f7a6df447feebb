package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

// SplitSentences returns the trimmed, non-empty sentences of text. A sentence
// is a run of characters closed by one or more terminal punctuation marks;
// trailing text without a terminator is not a sentence.
func SplitSentences(text string) []string {
	matches := sentencePattern.FindAllString(text, -1)
	sentences := make([]string, 0, len(matches))
	for _, m := range matches {
		if s := strings.TrimSpace(m); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// overlapsAny reports whether lower contains, or is contained in, any entry
// of existing. Both sides must already be lowercased.
func overlapsAny(lower string, existing []string) bool {
	for _, e := range existing {
		if strings.Contains(lower, e) || strings.Contains(e, lower) {
			return true
		}
	}
	return false
}

// hasKeyword expects lower to be lowercased already
func hasKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// linePrefix matches an optional "[timestamp] " at the start of a line
const linePrefix = `(?:\[[^\]\n]*\][ \t]*)?`
