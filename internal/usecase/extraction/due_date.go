package extraction

import (
	"regexp"
	"strings"
)

var dueDatePatterns = []*regexp.Regexp{
	// by May 31st
	regexp.MustCompile(`(?i)\bby\s+([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?)\b`),
	// due on June 5, due by June 5
	regexp.MustCompile(`(?i)\bdue\s+(?:(?:on|by)\s+)?([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?)\b`),
	// 6/30, 6/30/2025
	regexp.MustCompile(`\b(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\b`),
	// by next Friday, by next week
	regexp.MustCompile(`(?i)\bby\s+(next\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|week|month))\b`),
}

// ExtractDueDate returns the first due date expression found in text, or ""
func ExtractDueDate(text string) string {
	for _, p := range dueDatePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
