package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/notex"
	"github.com/aretw0/notex/internal/config"
	"github.com/aretw0/notex/pkg/core"
)

var (
	verbose    bool
	notesDir   string
	configPath string
	readOnly   bool
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notex",
	Short: "A plain-text note keeper: one file per note, one flat directory",
	Long: `notex keeps short notes with a title, a priority and a body.
Every note is a small text file (note_<id>.txt) you can read with any editor.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal("Error", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&notesDir, "dir", "d", "", "Notes directory (default: nearest .notex above the working directory, then notes_dir from config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.config/notex/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Never write to the notes directory")
}

// resolveDir picks the notes directory: --dir, then an enclosing notes
// directory, then the configured default.
func resolveDir() string {
	if notesDir != "" {
		return notesDir
	}
	if wd, err := os.Getwd(); err == nil {
		if root, err := notex.FindNotesRoot(wd); err == nil {
			return root
		}
	}
	return cfg.NotesDir
}

func openStore(ctx context.Context) (*core.Store, error) {
	dir := resolveDir()
	logger.Debug("opening notes directory", "path", dir)

	store, err := notex.Open(ctx, dir,
		notex.WithLogger(logger),
		notex.WithSystemDir(cfg.SystemDir),
		notex.WithReadOnly(readOnly || cfg.ReadOnly),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes in %s: %w", dir, err)
	}
	return store, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}
