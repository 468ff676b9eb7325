package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Store owns the authoritative in-memory collection of notes and keeps the
// repository in sync with it after every mutating operation.
//
// A Store is not safe for concurrent use; it is meant to be driven from the
// single thread of an interactive session.
type Store struct {
	repo     Repository
	logger   *slog.Logger
	now      func() time.Time
	notes    []Note
	lastID   int
	warnings []*PersistenceWarning
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used to stamp new notes.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty Store backed by repo. Call Load to populate it.
func NewStore(repo Repository, opts ...StoreOption) *Store {
	s := &Store{
		repo:   repo,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the notes found in the repository.
// Malformed entries are skipped and logged; they never abort the load.
func (s *Store) Load(ctx context.Context) error {
	notes, warnings, err := s.repo.Scan(ctx)
	if err != nil {
		return fmt.Errorf("failed to scan notes: %w", err)
	}

	for _, w := range warnings {
		s.logger.Warn("skipping unreadable note", "op", w.Op, "path", w.Path, "error", w.Err)
	}

	last := s.lastID
	for _, n := range notes {
		last = max(last, n.ID)
	}
	if seq, ok := s.repo.(Sequencer); ok {
		id, err := seq.LastID(ctx)
		if err != nil {
			s.logger.Warn("failed to read id sequence", "error", err)
		}
		last = max(last, id)
	}

	s.notes = notes
	s.lastID = last
	s.warnings = warnings

	s.logger.Debug("notes loaded", "count", len(notes), "skipped", len(warnings), "last_id", last)
	return nil
}

// Create validates the input, assigns the next ID, persists the note and
// appends it to the collection.
func (s *Store) Create(ctx context.Context, title string, priority Priority, text string) (Note, error) {
	title, err := validateTitle(title)
	if err != nil {
		return Note{}, err
	}
	priority, err = normalizePriority(priority)
	if err != nil {
		return Note{}, err
	}

	n := Note{
		ID:       s.lastID + 1,
		Title:    title,
		Priority: priority,
		Created:  s.now().Truncate(time.Second),
		Text:     text,
	}

	if err := s.repo.Save(ctx, n); err != nil {
		return Note{}, fmt.Errorf("failed to persist note %d: %w", n.ID, err)
	}

	s.lastID = n.ID
	s.notes = append(s.notes, n)

	s.logger.Debug("note created", "id", n.ID)
	return n, nil
}

// Update replaces title, priority and text of an existing note.
// The creation timestamp is left untouched.
func (s *Store) Update(ctx context.Context, id int, title string, priority Priority, text string) (Note, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Note{}, &NotFoundError{ID: id}
	}

	title, err := validateTitle(title)
	if err != nil {
		return Note{}, err
	}
	priority, err = normalizePriority(priority)
	if err != nil {
		return Note{}, err
	}

	n := s.notes[idx]
	n.Title = title
	n.Priority = priority
	n.Text = text

	if err := s.repo.Save(ctx, n); err != nil {
		return Note{}, fmt.Errorf("failed to persist note %d: %w", n.ID, err)
	}

	s.notes[idx] = n

	s.logger.Debug("note updated", "id", n.ID)
	return n, nil
}

// Delete removes a note from the collection and its backing file.
// A file that cannot be removed is logged as a warning; the note is still dropped.
func (s *Store) Delete(ctx context.Context, id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrReadOnly) {
			return err
		}
		w := &PersistenceWarning{Op: "delete", Path: fmt.Sprintf("note %d", id), Err: err}
		s.logger.Warn("failed to remove note file", "id", id, "error", err)
		s.warnings = append(s.warnings, w)
	}

	s.notes = slices.Delete(s.notes, idx, idx+1)

	s.logger.Debug("note deleted", "id", id)
	return nil
}

// List returns a snapshot of the collection in insertion/load order.
func (s *Store) List() []Note {
	return slices.Clone(s.notes)
}

// Get returns a single note by ID.
func (s *Store) Get(id int) (Note, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Note{}, &NotFoundError{ID: id}
	}
	return s.notes[idx], nil
}

// Len returns the number of notes held in memory.
func (s *Store) Len() int {
	return len(s.notes)
}

// Warnings returns the persistence warnings collected since the last Load.
func (s *Store) Warnings() []*PersistenceWarning {
	return slices.Clone(s.warnings)
}

// Watch observes external changes in the repository if supported.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, "")
}

func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.ContainsAny(title, "\r\n") {
		return "", &ValidationError{Field: "title", Reason: "must be a single line"}
	}
	return title, nil
}

func normalizePriority(p Priority) (Priority, error) {
	if p == 0 {
		return DefaultPriority, nil
	}
	if !p.Valid() {
		return 0, &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %d", int(p))}
	}
	return p, nil
}
