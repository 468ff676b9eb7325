package notex

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/notex/internal/platform"
	"github.com/aretw0/notex/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note.
type Note = core.Note

// Priority is a public alias for the core priority.
type Priority = core.Priority

// Store is a public alias for the note store.
type Store = core.Store

// Session is a public alias for the editor session.
type Session = core.Session

// Form is a public alias for the editor form.
type Form = core.Form

const (
	PriorityLow    = core.PriorityLow
	PriorityMedium = core.PriorityMedium
	PriorityHigh   = core.PriorityHigh
)

// --- Configuration ---

// Option defines a functional option for configuring notex.
type Option = platform.Option

// WithLogger sets the logger for the store and its adapter.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithMustExist ensures the notes directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly opens the notes directory without ever writing to it.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".notex").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithConfirmOnNew controls whether New over unsaved edits asks first.
func WithConfirmOnNew(enabled bool) Option {
	return platform.WithConfirmOnNew(enabled)
}

// --- Factory ---

// Open prepares the notes directory at path and loads every note in it.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	return platform.Open(ctx, path, opts...)
}

// NewSession creates an idle editor session over store.
func NewSession(store *Store, opts ...Option) *Session {
	return platform.NewSession(store, opts...)
}

// --- Utils ---

// FindNotesRoot looks upwards from startDir for a directory holding a
// ".notex" system directory.
func FindNotesRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir, "")
}
