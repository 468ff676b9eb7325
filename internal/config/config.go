// Package config provides configuration loading for notex.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config holds the settings shared by the CLI and the terminal shell.
type Config struct {
	// NotesDir is the flat directory holding note_<id>.txt files.
	NotesDir string `koanf:"notes_dir" json:"notes_dir"`
	// SystemDir is the hidden directory inside NotesDir holding the ID index.
	SystemDir string `koanf:"system_dir" json:"system_dir"`
	// ConfirmOnNew asks before discarding unsaved edits when starting a new note.
	ConfirmOnNew bool `koanf:"confirm_on_new" json:"confirm_on_new"`
	// ReadOnly opens the notes directory without writing to it.
	ReadOnly bool `koanf:"read_only" json:"read_only"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level" json:"log_level"`
}

// Validate checks the configuration after defaults were applied.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.NotesDir) == "" {
		return fmt.Errorf("notes_dir must not be empty")
	}
	if strings.TrimSpace(c.SystemDir) == "" {
		return fmt.Errorf("system_dir must not be empty")
	}
	if strings.ContainsAny(c.SystemDir, `/\`) {
		return fmt.Errorf("system_dir must be a plain directory name, got %q", c.SystemDir)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
