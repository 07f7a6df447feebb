package transcript

import (
	"strings"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// UnknownSpeaker labels turns whose speaker column is missing or empty
const UnknownSpeaker = "Unknown"

type csvColumns struct {
	timestamp int
	speaker   int
	text      int
}

var defaultCSVColumns = csvColumns{timestamp: 0, speaker: 1, text: 2}

// parseCSV reads comma separated dialogue rows. The first non-empty line is
// used as a header when it names the timestamp, speaker and text columns.
func parseCSV(content string) []entities.DialogueTurn {
	lines := nonEmptyLines(content)
	if len(lines) == 0 {
		return nil
	}

	cols := defaultCSVColumns
	if isCSVHeader(lines[0]) {
		cols = headerColumns(splitCSVLine(lines[0]))
		lines = lines[1:]
	}

	turns := make([]entities.DialogueTurn, 0, len(lines))
	for _, line := range lines {
		fields := splitCSVLine(line)
		if len(fields) < 2 {
			continue
		}

		speaker := field(fields, cols.speaker)
		if speaker == "" {
			speaker = UnknownSpeaker
		}

		turns = append(turns, entities.DialogueTurn{
			Timestamp: field(fields, cols.timestamp),
			Speaker:   speaker,
			Text:      field(fields, cols.text),
		})
	}

	return turns
}

func isCSVHeader(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "timestamp") &&
		(strings.Contains(lower, "speaker") || strings.Contains(lower, "person")) &&
		(strings.Contains(lower, "text") || strings.Contains(lower, "message"))
}

// headerColumns maps header names onto column positions. Roles the header
// does not name keep their default position.
func headerColumns(header []string) csvColumns {
	cols := csvColumns{timestamp: -1, speaker: -1, text: -1}
	for i, name := range header {
		name = strings.ToLower(name)
		switch {
		case cols.timestamp < 0 && strings.Contains(name, "time"):
			cols.timestamp = i
		case cols.speaker < 0 && (strings.Contains(name, "speaker") || strings.Contains(name, "person") || strings.Contains(name, "name")):
			cols.speaker = i
		case cols.text < 0 && (strings.Contains(name, "text") || strings.Contains(name, "message") || strings.Contains(name, "content")):
			cols.text = i
		}
	}

	if cols.timestamp < 0 {
		cols.timestamp = defaultCSVColumns.timestamp
	}
	if cols.speaker < 0 {
		cols.speaker = defaultCSVColumns.speaker
	}
	if cols.text < 0 {
		cols.text = defaultCSVColumns.text
	}
	return cols
}

// splitCSVLine splits one CSV line on commas outside double quotes.
// A doubled quote inside a quoted field yields a literal quote.
func splitCSVLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"' && inQuotes && i+1 < len(runes) && runes[i+1] == '"':
			current.WriteRune('"')
			i++
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

func field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

func nonEmptyLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
