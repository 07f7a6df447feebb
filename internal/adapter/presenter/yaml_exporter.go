package presenter

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// YAMLExporter exports records in YAML format
type YAMLExporter struct{}

// Export exports a record to YAML format
func (e *YAMLExporter) Export(record entities.MeetingRecord, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	return enc.Encode(record)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}

// ContentType returns the MIME type for this format
func (e *YAMLExporter) ContentType() string {
	return "application/yaml"
}
