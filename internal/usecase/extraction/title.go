package extraction

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^[ \t]*` + linePrefix + `meeting[ \t]+title[ \t]*:[ \t]*(.+)$`),
	regexp.MustCompile(`(?im)^[ \t]*` + linePrefix + `title[ \t]*:[ \t]*(.+)$`),
}

// ExtractLabeledTitle returns the value of a "Meeting Title:" or "Title:" line
func ExtractLabeledTitle(text string) (string, bool) {
	for _, p := range titlePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if title := strings.TrimSpace(m[1]); title != "" {
				return title, true
			}
		}
	}
	return "", false
}

// ExtractTitle returns the labeled title, else the first readable non-empty
// line, else the default title.
func ExtractTitle(text string) string {
	if title, ok := ExtractLabeledTitle(text); ok {
		return title
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && IsReadable(line) {
			return line
		}
	}
	return entities.DefaultTitle
}

// IsReadable reports whether s is valid UTF-8 without control characters
// (tabs and newlines aside) and contains at least one letter or digit.
func IsReadable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	hasWord := false
	for _, r := range s {
		if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasWord = true
		}
	}
	return hasWord
}
