package extraction

import (
	"sort"
	"strings"
)

// MaxSummarySentences caps the summary length
const MaxSummarySentences = 5

var summaryKeywords = []string{
	"agenda", "discuss", "purpose", "goal", "objective", "summary",
	"conclusion", "decision", "action", "next steps", "follow-up",
	"important", "critical", "essential", "key", "main", "primary",
}

type scoredSentence struct {
	text  string
	index int
	score int
}

// Summarize picks the highest scoring sentences and returns them in
// document order joined by a single space. Empty input yields "".
func Summarize(text string) string {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	n := float64(len(sentences))
	scored := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = scoredSentence{text: s, index: i, score: scoreSentence(s, float64(i), n)}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})
	if len(scored) > MaxSummarySentences {
		scored = scored[:MaxSummarySentences]
	}
	sort.Slice(scored, func(a, b int) bool {
		return scored[a].index < scored[b].index
	})

	parts := make([]string, len(scored))
	for i, s := range scored {
		parts[i] = s.text
	}
	return strings.Join(parts, " ")
}

func scoreSentence(s string, index, n float64) int {
	score := 0
	lower := strings.ToLower(s)
	for _, kw := range summaryKeywords {
		if strings.Contains(lower, kw) {
			score += 2
		}
	}
	if index < n*0.2 {
		score++
	}
	if index > n*0.8 {
		score++
	}
	if words := len(strings.Fields(s)); words > 5 && words < 25 {
		score++
	}
	return score
}
