package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// MarkdownExporter exports records as a Markdown meeting report
type MarkdownExporter struct{}

// Export exports a record to Markdown format
func (e *MarkdownExporter) Export(record entities.MeetingRecord, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(record.Title))
	fmt.Fprintf(&b, "**Date:** %s\n\n", record.Date)

	b.WriteString("## Participants\n\n")
	if len(record.Participants) == 0 {
		b.WriteString("_None identified._\n")
	}
	for _, p := range record.Participants {
		if p.Role != "" {
			fmt.Fprintf(&b, "- %s (%s)\n", escapeMarkdown(p.Name), escapeMarkdown(p.Role))
		} else {
			fmt.Fprintf(&b, "- %s\n", escapeMarkdown(p.Name))
		}
	}

	fmt.Fprintf(&b, "\n## Summary\n\n%s\n", escapeMarkdown(record.Summary))

	b.WriteString("\n## Key Decisions\n\n")
	if len(record.KeyDecisions) == 0 {
		b.WriteString("_None recorded._\n")
	}
	for i, d := range record.KeyDecisions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, escapeMarkdown(d))
	}

	b.WriteString("\n## Action Items\n\n")
	if len(record.ActionItems) == 0 {
		b.WriteString("_None recorded._\n")
	} else {
		b.WriteString("| Owner | Task | Due | Status |\n")
		b.WriteString("|---|---|---|---|\n")
	}
	for _, item := range record.ActionItems {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeCell(item.Person), escapeCell(item.Task), escapeCell(item.DueDate), escapeCell(item.Status))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// escapeMarkdown escapes emphasis markers so transcript text renders literally
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	return text
}

func escapeCell(text string) string {
	text = strings.ReplaceAll(escapeMarkdown(text), "|", "\\|")
	return strings.ReplaceAll(text, "\n", " ")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

// ContentType returns the MIME type for this format
func (e *MarkdownExporter) ContentType() string {
	return "text/markdown; charset=utf-8"
}
