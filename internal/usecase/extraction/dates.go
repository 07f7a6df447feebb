package extraction

import (
	"regexp"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

const monthNames = `(?:January|February|March|April|May|June|July|August|September|October|November|December)`

var datePatterns = []*regexp.Regexp{
	// 04/15/2025, 15-04-25, 15.04.2025
	regexp.MustCompile(`\b\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\b`),
	// April 15th, 2025
	regexp.MustCompile(`(?i)\b` + monthNames + `\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	// 15th April 2025
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+` + monthNames + `,?\s+\d{4}\b`),
}

var dateLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^[ \t]*` + linePrefix + `meeting[ \t]+date[ \t]*:[ \t]*(.+)$`),
	regexp.MustCompile(`(?im)^[ \t]*` + linePrefix + `date[ \t]*:[ \t]*(.+)$`),
}

// ExtractDates finds date mentions in pattern order, deduplicated. When
// nothing is found it falls back to now, so the result is never empty.
func ExtractDates(text string, now time.Time) []string {
	var (
		dates []string
		seen  = make(map[string]struct{})
	)

	add := func(d string) {
		d = strings.TrimSpace(d)
		if d == "" {
			return
		}
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}

	for _, p := range datePatterns {
		for _, m := range p.FindAllString(text, -1) {
			add(m)
		}
	}
	for _, p := range dateLabelPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}

	if len(dates) == 0 {
		dates = append(dates, now.Format(entities.DateLayout))
	}
	return dates
}
