package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-recap/internal/usecase/followup"
)

func newEmailCmd(root *rootOptions) *cobra.Command {
	var (
		format string
		person string
		sender string
	)

	cmd := &cobra.Command{
		Use:   "email FILE",
		Short: "Draft a follow-up email from a transcript",
		Long: `Draft a follow-up email from a transcript. Without --person the draft
goes to the whole team; with it only that person's action items are listed.
Nothing is sent.`,
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
			draft, err := followup.NewComposer(sender).Compose(record, person)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "To: %s\n", draft.Recipient)
			fmt.Fprintf(out, "Subject: %s\n\n", draft.Subject)
			fmt.Fprintln(out, draft.Body)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: auto, txt, csv, json")
	cmd.Flags().StringVarP(&person, "person", "p", "", "Recipient name; empty or \"all\" for the team")
	cmd.Flags().StringVar(&sender, "sender", "", "Signature line of the draft")
	return cmd
}
