package main

import (
	"github.com/spf13/cobra"
)

func newExtractCmd(root *rootOptions) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Extract a meeting record from a transcript file",
		Long: `Extract a meeting record from a transcript file ("-" reads stdin).

The input format is taken from --format or the file extension; unknown
input is auto-detected. Output is json (default), yaml or md.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := formatHint(format, args[0])
			if err != nil {
				return err
			}
			content, err := readTranscript(cmd, args[0])
			if err != nil {
				return err
			}

			record := root.pipeline().Extract(content, hint)
			return writeRecord(cmd, record, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: auto, txt, csv, json")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json, yaml, md")
	return cmd
}
