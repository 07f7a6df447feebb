package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

func newShowCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a readable meeting recap in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := formatHint(format, args[0])
			if err != nil {
				return err
			}
			content, err := readTranscript(cmd, args[0])
			if err != nil {
				return err
			}

			renderRecap(cmd.OutOrStdout(), root.pipeline().Extract(content, hint))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: auto, txt, csv, json")
	return cmd
}

func renderRecap(w io.Writer, record entities.MeetingRecord) {
	fmt.Fprintln(w, titleStyle.Render("📋 "+record.Title))
	fmt.Fprintln(w, metaStyle.Render("📅 "+record.Date))

	fmt.Fprintln(w, sectionStyle.Render("👥 Participants"))
	if len(record.Participants) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("  (none identified)"))
	}
	for _, p := range record.Participants {
		if p.Role != "" {
			fmt.Fprintf(w, "  • %s %s\n", p.Name, metaStyle.Render("("+p.Role+")"))
		} else {
			fmt.Fprintf(w, "  • %s\n", p.Name)
		}
	}

	fmt.Fprintln(w, sectionStyle.Render("📝 Summary"))
	fmt.Fprintln(w, "  "+strings.TrimSpace(record.Summary))

	fmt.Fprintln(w, sectionStyle.Render("✅ Key Decisions"))
	if len(record.KeyDecisions) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("  (none recorded)"))
	}
	for i, d := range record.KeyDecisions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, d)
	}

	fmt.Fprintln(w, sectionStyle.Render("📌 Action Items"))
	if len(record.ActionItems) == 0 {
		fmt.Fprintln(w, emptyStyle.Render("  (none recorded)"))
	}
	for _, item := range record.ActionItems {
		line := fmt.Sprintf("  • %s: %s", item.Person, item.Task)
		if item.DueDate != "" {
			line += metaStyle.Render(" (due " + item.DueDate + ")")
		}
		if item.Status == entities.ActionItemStatusPending {
			line += " " + pendingStyle.Render("["+item.Status+"]")
		}
		fmt.Fprintln(w, line)
	}
}
