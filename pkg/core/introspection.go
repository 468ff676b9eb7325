package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes          int    `json:"notes"`
	LastID         int    `json:"last_id"`
	Warnings       int    `json:"warnings"`
	RepositoryType string `json:"repository_type"`
	Repository     any    `json:"repository,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	repoType := "unknown"
	var repoState any
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
		if in, ok := s.repo.(introspection.Introspectable); ok {
			repoState = in.State()
		}
	}

	return StoreState{
		Notes:          len(s.notes),
		LastID:         s.lastID,
		Warnings:       len(s.warnings),
		RepositoryType: repoType,
		Repository:     repoState,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

// SessionState exposes the editor session for observability.
type SessionState struct {
	Mode         string `json:"mode"`
	EditingID    int    `json:"editing_id,omitempty"`
	Dirty        bool   `json:"dirty"`
	ConfirmOnNew bool   `json:"confirm_on_new"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	return SessionState{
		Mode:         s.Mode().String(),
		EditingID:    s.editing,
		Dirty:        s.IsDirty(),
		ConfirmOnNew: s.confirmOnNew,
	}
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var (
	_ introspection.Introspectable = (*Store)(nil)
	_ introspection.Component      = (*Store)(nil)
	_ introspection.Introspectable = (*Session)(nil)
	_ introspection.Component      = (*Session)(nil)
)
