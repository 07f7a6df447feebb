package presenter

import (
	"encoding/json"
	"io"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// JSONExporter exports records as indented JSON
type JSONExporter struct{}

// Export exports a record to JSON format
func (e *JSONExporter) Export(record entities.MeetingRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(record)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}

// ContentType returns the MIME type for this format
func (e *JSONExporter) ContentType() string {
	return "application/json"
}
