package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notex"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notex",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notex version %s\n", strings.TrimSpace(notex.Version))
	},
	// No config needed to print the version.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
