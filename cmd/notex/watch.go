package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	notexlifecycle "github.com/aretw0/notex/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes to the notes directory as they happen",
	Long:  `Watch reports notes created, modified or deleted by any program until interrupted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := openStore(ctx)
		if err != nil {
			return err
		}

		events, err := store.Watch(ctx)
		if err != nil {
			return err
		}

		source := notexlifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			return err
		}

		logger.Info("watching notes", "path", resolveDir())
		out := cmd.OutOrStdout()
		for e := range source.Events() {
			fmt.Fprintf(out, "%s %s\n", time.Now().Format("15:04:05"), e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
