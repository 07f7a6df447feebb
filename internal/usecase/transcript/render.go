package transcript

import (
	"strings"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// Render writes turns as canonical text, one "[timestamp] speaker: text" line
// per turn. The bracketed prefix is omitted for turns without a timestamp.
func Render(turns []entities.DialogueTurn) string {
	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		if turn.HasTimestamp() {
			b.WriteByte('[')
			b.WriteString(turn.Timestamp)
			b.WriteString("] ")
		}
		b.WriteString(turn.Speaker)
		b.WriteString(": ")
		b.WriteString(turn.Text)
	}
	return b.String()
}
