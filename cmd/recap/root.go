package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-recap/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/usecase/extraction"
	"github.com/johnquangdev/meeting-recap/internal/usecase/meeting"
	pkglogger "github.com/johnquangdev/meeting-recap/pkg/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

// options shared by every subcommand
type rootOptions struct {
	verbose    bool
	stopVerbs  []string
	sequential bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "recap",
		Short: "Turn meeting transcripts into structured meeting records",
		Long: `recap reads a meeting transcript (plain text, CSV or JSON) and extracts
the title, date, participants, key decisions, action items and a summary.

Quick Start:
  recap demo                          # Run on the built-in sample meeting
  recap extract notes.txt             # Print the record as JSON
  recap extract call.csv -o md        # Print the record as Markdown
  recap show notes.txt                # Readable recap in the terminal
  recap email notes.txt --person Ana  # Draft a follow-up for one person`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringSliceVar(&opts.stopVerbs, "stop-verb", nil, "Extra verbs that are never participant roles (repeatable)")
	cmd.PersistentFlags().BoolVar(&opts.sequential, "sequential", false, "Run the extractors one after another")
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	cmd.AddCommand(
		newExtractCmd(opts),
		newEmailCmd(opts),
		newDemoCmd(opts),
		newShowCmd(opts),
		newMigrateCmd(),
	)
	return cmd
}

func (o *rootOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	l, err := pkglogger.New("development")
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func (o *rootOptions) pipeline() *meeting.Pipeline {
	return meeting.NewPipeline(o.logger(), meeting.Options{
		Concurrent:   !o.sequential,
		Participants: extraction.NewParticipantExtractor().WithExtraVerbs(o.stopVerbs...),
	})
}

// readTranscript reads path, or stdin when path is "-"
func readTranscript(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(raw), nil
}

// formatHint prefers an explicit --format and falls back to the extension
func formatHint(flag, path string) (entities.TranscriptFormat, error) {
	if flag != "" {
		f, err := entities.ParseTranscriptFormat(flag)
		if err != nil {
			return f, fmt.Errorf("%w: %s", err, flag)
		}
		return f, nil
	}
	return entities.FormatFromFileName(path), nil
}

// writeRecord renders record with the named exporter to the command output
func writeRecord(cmd *cobra.Command, record entities.MeetingRecord, output string) error {
	exporter, err := presenter.NewExporter(output)
	if err != nil {
		return err
	}
	return exporter.Export(record, cmd.OutOrStdout())
}
