package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// Exporter writes a meeting record in one file format
type Exporter interface {
	Export(record entities.MeetingRecord, w io.Writer) error
	Extension() string
	ContentType() string
}

// NewExporter creates a new exporter based on format. Empty means json.
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, md)", format)
	}
}

// ExportFileName builds the download name for a record
func ExportFileName(record entities.MeetingRecord, e Exporter) string {
	return slugify(record.Title) + "." + e.Extension()
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "meeting"
	}
	return slug
}
