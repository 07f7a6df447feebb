package transcript

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

var (
	// 09:15 Alice: text, 1:02:03 Bob: text, [09:15] Alice: text
	timestampedLinePattern = regexp.MustCompile(`^\[?(\d{1,2}:\d{2}(?::\d{2})?)\]?\s+([^:]+):\s*(.+)$`)
	// Alice: text
	speakerLinePattern = regexp.MustCompile(`^([^:]+):\s*(.+)$`)
)

// parseTXT reads "Speaker: text" dialogue. Lines that do not open a new turn
// are appended to the current one; anything before the first turn is dropped.
func parseTXT(content string) []entities.DialogueTurn {
	var (
		turns   []entities.DialogueTurn
		current *entities.DialogueTurn
	)

	flush := func() {
		if current != nil {
			turns = append(turns, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := timestampedLinePattern.FindStringSubmatch(line); m != nil {
			flush()
			current = &entities.DialogueTurn{
				Timestamp: m[1],
				Speaker:   strings.TrimSpace(m[2]),
				Text:      strings.TrimSpace(m[3]),
			}
			continue
		}

		if m := speakerLinePattern.FindStringSubmatch(line); m != nil {
			flush()
			current = &entities.DialogueTurn{
				Speaker: strings.TrimSpace(m[1]),
				Text:    strings.TrimSpace(m[2]),
			}
			continue
		}

		if current != nil {
			current.Text += " " + line
		}
	}
	flush()

	return turns
}
