package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("note not found")
	ErrReadOnly    = errors.New("repository is in read-only mode")
	ErrNoSelection = errors.New("no note is being edited")
	ErrMalformed   = errors.New("malformed note file")
)

// ValidationError reports user input that fails a constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an operation on an ID the store does not hold.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note %d not found", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PersistenceWarning is a non-fatal disk anomaly. It is logged, never returned
// to the caller of the operation that produced it.
type PersistenceWarning struct {
	Op   string // "load" or "delete"
	Path string
	Err  error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("%s %s: %v", w.Op, w.Path, w.Err)
}

func (w *PersistenceWarning) Unwrap() error {
	return w.Err
}
