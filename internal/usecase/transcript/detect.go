package transcript

import (
	"encoding/json"
	"strings"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// DetectFormat sniffs the shape of raw transcript content.
//
// Object-looking input is always treated as JSON. Array-looking input is only
// JSON when it decodes; plain-text transcripts routinely start with a bracketed
// timestamp and end with a bracketed stage note.
func DetectFormat(content string) entities.TranscriptFormat {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return entities.TranscriptFormatTXT
	}

	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return entities.TranscriptFormatJSON
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && json.Valid([]byte(trimmed)) {
		return entities.TranscriptFormatJSON
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, ",") && (strings.Contains(lower, "timestamp") || strings.Contains(lower, "speaker")) {
		return entities.TranscriptFormatCSV
	}

	return entities.TranscriptFormatTXT
}
