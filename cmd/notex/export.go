package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notex/pkg/adapters/fs"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every note to a single JSON, YAML or Markdown document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		serializer, ok := fs.DefaultSerializers()[exportFormat]
		if !ok {
			return fmt.Errorf("unknown format %q (available: %s)", exportFormat, strings.Join(fs.Formats(), ", "))
		}

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		data, err := serializer.Serialize(store.List())
		if err != nil {
			return fmt.Errorf("failed to export notes: %w", err)
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		logger.Info("notes exported", "count", store.Len(), "format", exportFormat, "path", exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format ("+strings.Join(fs.Formats(), ", ")+")")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
}
