package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/notex/pkg/core"
)

// DefaultSystemDir is the hidden directory that holds the ID index.
const DefaultSystemDir = ".notex"

// Repository implements core.Repository with one plain-text file per note.
type Repository struct {
	Path   string
	config Config
	index  *index

	mu            sync.RWMutex
	watcherActive bool
	lastScan      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string
	MustExist    bool
	ReadOnly     bool
	Logger       *slog.Logger
	SystemDir    string      // e.g. ".notex"
	Pattern      string      // glob for note files, defaults to DefaultPattern
	ErrorHandler func(error) // receives watcher failures
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.SystemDir == "" {
		config.SystemDir = DefaultSystemDir
	}
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	return &Repository{
		Path:   config.Path,
		config: config,
		index:  newIndex(config.Path, config.SystemDir),
	}
}

// Initialize creates the notes directory (unless MustExist or ReadOnly) and
// loads the ID index.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist || r.config.ReadOnly {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			if r.config.MustExist {
				return fmt.Errorf("notes path does not exist: %s", r.Path)
			}
		} else if err != nil {
			return fmt.Errorf("failed to stat notes path: %w", err)
		} else if !info.IsDir() {
			return fmt.Errorf("notes path is not a directory: %s", r.Path)
		}
	} else {
		if err := os.MkdirAll(r.Path, 0755); err != nil {
			return fmt.Errorf("failed to create notes directory: %w", err)
		}
	}

	if err := r.index.Load(); err != nil {
		r.config.Logger.Warn("ignoring unreadable index", "path", r.index.Path, "error", err)
	}
	return nil
}

// Scan reads every note file matching the configured pattern.
//
// Files that cannot be read or parsed are reported as warnings and skipped;
// only a failure to list the directory itself is returned as an error.
func (r *Repository) Scan(ctx context.Context) ([]core.Note, []*core.PersistenceWarning, error) {
	if _, err := os.Stat(r.Path); os.IsNotExist(err) {
		return nil, nil, nil
	}

	names, err := doublestar.Glob(os.DirFS(r.Path), r.config.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", r.Path, err)
	}

	var (
		notes    []core.Note
		warnings []*core.PersistenceWarning
	)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		fullPath := filepath.Join(r.Path, filepath.FromSlash(name))
		id, err := ParseFileName(fullPath)
		if err != nil {
			warnings = append(warnings, &core.PersistenceWarning{Op: "load", Path: fullPath, Err: err})
			continue
		}
		// A malformed note still owns its ID; handing it out again would overwrite the file.
		r.index.Observe(id)

		n, err := r.readNote(id, fullPath)
		if err != nil {
			warnings = append(warnings, &core.PersistenceWarning{Op: "load", Path: fullPath, Err: err})
			continue
		}
		notes = append(notes, n)
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })

	now := time.Now()
	r.mu.Lock()
	r.lastScan = &now
	r.mu.Unlock()

	return notes, warnings, nil
}

func (r *Repository) readNote(id int, fullPath string) (core.Note, error) {
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return core.Note{}, err
	}
	return decodeNote(id, data)
}

// Save writes the note to note_<id>.txt, replacing the whole file.
func (r *Repository) Save(ctx context.Context, n core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if n.ID <= 0 {
		return fmt.Errorf("note has no ID")
	}

	data, err := encodeNote(n)
	if err != nil {
		return fmt.Errorf("failed to encode note: %w", err)
	}

	// The directory may have been removed since Initialize.
	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}

	if err := writeFileAtomic(r.filePath(n.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.index.Observe(n.ID)
	if err := r.index.Save(); err != nil {
		r.config.Logger.Warn("failed to save index", "path", r.index.Path, "error", err)
	}

	r.config.Logger.Debug("note written", "id", n.ID, "path", r.filePath(n.ID))
	return nil
}

// Delete removes note_<id>.txt. A file that is already gone is not an error.
func (r *Repository) Delete(ctx context.Context, id int) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	err := os.Remove(r.filePath(id))
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	r.config.Logger.Debug("note removed", "id", id, "existed", err == nil)
	return nil
}

// LastID implements core.Sequencer.
func (r *Repository) LastID(ctx context.Context) (int, error) {
	return r.index.LastID(), nil
}

// FilePath returns the absolute location of the file backing id.
func (r *Repository) FilePath(id int) string {
	return r.filePath(id)
}

func (r *Repository) filePath(id int) string {
	return filepath.Join(r.Path, FileName(id))
}

var (
	_ core.Repository = (*Repository)(nil)
	_ core.Sequencer  = (*Repository)(nil)
	_ core.Watchable  = (*Repository)(nil)
)
