package core

import (
	"context"
	"strings"
)

// Mode is the editing state of a Session.
type Mode int

const (
	ModeIdle Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "idle"
}

// Form holds the values of the single edit form mirrored by a Session.
type Form struct {
	Title    string
	Priority Priority
	Text     string
}

// BlankForm is the form shown when no note is selected.
func BlankForm() Form {
	return Form{Priority: DefaultPriority}
}

func formOf(n Note) Form {
	return Form{Title: n.Title, Priority: n.Priority, Text: n.Text}
}

// Session mediates between one edit form and the Store. It is either Idle
// (no note selected) or Editing a single note; every completed submit,
// cancel or delete returns it to Idle.
type Session struct {
	store        *Store
	editing      int // 0 while idle
	form         Form
	confirmOnNew bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithConfirmOnNew controls whether starting a new note over unsaved input
// should be confirmed by the user. Defaults to true.
func WithConfirmOnNew(confirm bool) SessionOption {
	return func(s *Session) {
		s.confirmOnNew = confirm
	}
}

// NewSession creates an idle Session over store.
func NewSession(store *Store, opts ...SessionOption) *Session {
	s := &Session{
		store:        store,
		form:         BlankForm(),
		confirmOnNew: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the current editing state.
func (s *Session) Mode() Mode {
	if s.editing != 0 {
		return ModeEditing
	}
	return ModeIdle
}

// Current returns the ID of the note being edited, if any.
func (s *Session) Current() (int, bool) {
	return s.editing, s.editing != 0
}

// Form returns the form values last set on the session.
func (s *Session) Form() Form {
	return s.form
}

// SetForm records the values currently shown in the form.
func (s *Session) SetForm(f Form) {
	s.form = f
}

// ConfirmOnNew reports whether New should be confirmed over unsaved input.
func (s *Session) ConfirmOnNew() bool {
	return s.confirmOnNew
}

// SetConfirmOnNew toggles the confirm-on-new option.
func (s *Session) SetConfirmOnNew(confirm bool) {
	s.confirmOnNew = confirm
}

// BeginEdit selects a note for editing and returns its fields for display.
// An unknown ID leaves the session untouched.
func (s *Session) BeginEdit(id int) (Form, error) {
	n, err := s.store.Get(id)
	if err != nil {
		return Form{}, err
	}
	s.editing = n.ID
	s.form = formOf(n)
	return s.form, nil
}

// Submit creates a note while idle or updates the selected note while editing.
// On success the session returns to Idle with a blank form; on failure the
// session keeps its state and the submitted values.
func (s *Session) Submit(ctx context.Context, f Form) (Note, error) {
	s.form = f

	var (
		n   Note
		err error
	)
	if s.editing == 0 {
		n, err = s.store.Create(ctx, f.Title, f.Priority, f.Text)
	} else {
		n, err = s.store.Update(ctx, s.editing, f.Title, f.Priority, f.Text)
	}
	if err != nil {
		return Note{}, err
	}

	s.reset()
	return n, nil
}

// Cancel drops the selection and the unsaved form without touching the Store.
func (s *Session) Cancel() {
	s.reset()
}

// DeleteCurrent deletes the note being edited and returns to Idle.
func (s *Session) DeleteCurrent(ctx context.Context) error {
	if s.editing == 0 {
		return ErrNoSelection
	}
	if err := s.store.Delete(ctx, s.editing); err != nil {
		return err
	}
	s.reset()
	return nil
}

// New starts a blank note, discarding any unsaved form content.
// Callers check NeedsConfirmation first when they want to prompt.
func (s *Session) New() {
	s.reset()
}

// NeedsConfirmation reports whether New would discard input the user may want to keep.
func (s *Session) NeedsConfirmation() bool {
	return s.confirmOnNew && s.IsDirty()
}

// IsDirty reports whether the form differs from the selected note's saved
// values, or from an empty form while idle.
func (s *Session) IsDirty() bool {
	prio := s.form.Priority
	if prio == 0 {
		prio = DefaultPriority
	}
	if s.editing == 0 {
		return strings.TrimSpace(s.form.Title) != "" ||
			strings.TrimSpace(s.form.Text) != "" ||
			prio != DefaultPriority
	}

	n, err := s.store.Get(s.editing)
	if err != nil {
		// The note vanished underneath us; whatever is in the form is unsaved.
		return true
	}
	return strings.TrimSpace(s.form.Title) != n.Title ||
		prio != n.Priority ||
		s.form.Text != n.Text
}

func (s *Session) reset() {
	s.editing = 0
	s.form = BlankForm()
}
