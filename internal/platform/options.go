package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/notex/pkg/core"
)

// options holds the internal configuration for a notes directory.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	clock        func() time.Time
	mustExist    bool
	readOnly     bool
	systemDir    string
	errorHandler func(error)
	confirmOnNew bool
}

// Option defines a functional option for configuring notex.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		confirmOnNew: true,
	}
}

// WithLogger sets the logger for the store and the filesystem adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithMustExist ensures the notes directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Create, Update and Delete return ErrReadOnly.
// 2. The notes directory is never created.
// 3. The ID index is never written.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".notex").
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.systemDir = name
	}
}

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures
// (e.g. permission denied) which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithConfirmOnNew controls whether starting a new note over unsaved edits
// needs confirmation. Defaults to true.
func WithConfirmOnNew(enabled bool) Option {
	return func(o *options) {
		o.confirmOnNew = enabled
	}
}
