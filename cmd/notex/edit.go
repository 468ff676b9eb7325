package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notex"
	"github.com/aretw0/notex/pkg/core"
)

var (
	editTitle    string
	editPriority string
	editText     string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change the title, priority or body of a note",
	Long:  `Edit rewrites the given fields of an existing note. Fields without a flag keep their value; the creation time never changes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		session := notex.NewSession(store)
		form, err := session.BeginEdit(id)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("title") {
			form.Title = editTitle
		}
		if flags.Changed("priority") {
			if form.Priority, err = core.ParsePriority(editPriority); err != nil {
				return err
			}
		}
		if flags.Changed("text") {
			form.Text = editText
		}

		session.SetForm(form)
		if !session.IsDirty() {
			fmt.Fprintf(cmd.OutOrStdout(), "Note %d unchanged\n", id)
			return nil
		}

		if _, err := session.Submit(cmd.Context(), form); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority")
	editCmd.Flags().StringVar(&editText, "text", "", "New body")
}
