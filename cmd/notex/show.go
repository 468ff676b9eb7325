package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notex/pkg/adapters/fs"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a single note",
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

		n, err := store.Get(id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showJSON {
			data, err := fs.JSONSerializer{}.SerializeNote(n)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		fmt.Fprintf(out, "# %s\n", n.Title)
		fmt.Fprintf(out, "Priority: %s\n", n.Priority)
		fmt.Fprintf(out, "Created:  %s\n", n.CreatedString())
		if n.Text != "" {
			fmt.Fprintf(out, "\n%s\n", n.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
