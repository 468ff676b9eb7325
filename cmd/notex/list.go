package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/aretw0/notex/pkg/adapters/fs"
	"github.com/aretw0/notex/pkg/core"
)

const titleWidth = 40

var (
	listJSON       bool
	filterPriority string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		var want core.Priority
		if filterPriority != "" {
			if want, err = core.ParsePriority(filterPriority); err != nil {
				return err
			}
		}

		var filtered []core.Note
		for _, n := range store.List() {
			if want != 0 && n.Priority != want {
				continue
			}
			filtered = append(filtered, n)
		}

		out := cmd.OutOrStdout()
		if listJSON {
			data, err := fs.JSONSerializer{}.Serialize(filtered)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		for _, n := range filtered {
			title := runewidth.Truncate(n.Title, titleWidth, "…")
			title = runewidth.FillRight(title, titleWidth)
			fmt.Fprintf(out, "%4d  %s  %-6s  %s\n", n.ID, title, n.Priority, n.CreatedString())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterPriority, "priority", "", "Only show notes with this priority ("+strings.Join(priorityNames(), ", ")+")")
}

func priorityNames() []string {
	names := make([]string, 0, len(core.Priorities))
	for _, p := range core.Priorities {
		names = append(names, p.String())
	}
	return names
}
