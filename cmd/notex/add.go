package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/notex"
	"github.com/aretw0/notex/pkg/core"
)

var (
	addTitle    string
	addPriority string
	addText     string
	addStdin    bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new note",
	Long: `Add creates a note with the next free ID.
The body comes from --text, or from standard input with --stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		priority, err := core.ParsePriority(addPriority)
		if err != nil {
			return err
		}

		text := addText
		if addStdin {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			text = string(data)
		}

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		session := notex.NewSession(store, notex.WithConfirmOnNew(cfg.ConfirmOnNew))
		n, err := session.Submit(cmd.Context(), core.Form{Title: addTitle, Priority: priority, Text: text})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note created: %d\n", n.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title (required)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", core.DefaultPriority.String(), "Low, Medium or High")
	addCmd.Flags().StringVar(&addText, "text", "", "Note body")
	addCmd.Flags().BoolVar(&addStdin, "stdin", false, "Read the note body from standard input")
	_ = addCmd.MarkFlagRequired("title")
}
