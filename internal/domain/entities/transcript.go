package entities

import (
	"path/filepath"
	"strings"
)

// TranscriptFormat identifies the shape of raw transcript input
type TranscriptFormat string

const (
	TranscriptFormatUnknown TranscriptFormat = ""
	TranscriptFormatCSV     TranscriptFormat = "csv"
	TranscriptFormatJSON    TranscriptFormat = "json"
	TranscriptFormatTXT     TranscriptFormat = "txt"
)

// String returns the format name, "auto" when unknown
func (f TranscriptFormat) String() string {
	if f == TranscriptFormatUnknown {
		return "auto"
	}
	return string(f)
}

// ParseTranscriptFormat maps a user supplied hint onto a format.
// Empty and "auto" map to TranscriptFormatUnknown.
func ParseTranscriptFormat(s string) (TranscriptFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return TranscriptFormatUnknown, nil
	case "csv":
		return TranscriptFormatCSV, nil
	case "json":
		return TranscriptFormatJSON, nil
	case "txt", "text", "plain":
		return TranscriptFormatTXT, nil
	default:
		return TranscriptFormatUnknown, ErrUnsupportedFormat
	}
}

// FormatFromFileName derives the format hint from a file extension
func FormatFromFileName(name string) TranscriptFormat {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return TranscriptFormatCSV
	case ".json":
		return TranscriptFormatJSON
	case ".txt", ".text", ".md":
		return TranscriptFormatTXT
	default:
		return TranscriptFormatUnknown
	}
}

// Submission is a transcript handed to the service for processing
type Submission struct {
	Content    string
	Format     TranscriptFormat
	SourceName string
	UseDemo    bool
}
