package main

import (
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/usecase/meeting"
)

func newDemoCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Extract the built-in sample meeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record := root.pipeline().Extract(meeting.SampleTranscript, entities.TranscriptFormatTXT)
			return writeRecord(cmd, record, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json, yaml, md")
	return cmd
}
