package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/notex"
	"github.com/aretw0/notex/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit notes in an interactive terminal view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		session := notex.NewSession(store, notex.WithConfirmOnNew(cfg.ConfirmOnNew))

		opts := []tui.Option{tui.WithLogger(logger)}
		if events, err := store.Watch(ctx); err != nil {
			logger.Warn("live reload disabled", "error", err)
		} else {
			opts = append(opts, tui.WithEvents(events))
		}

		return tui.Run(ctx, store, session, opts...)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
