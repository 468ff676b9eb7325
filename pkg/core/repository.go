package core

import (
	"context"
	"strconv"
)

// Repository defines the contract for mirroring notes to durable storage.
// The Store owns the collection; the repository only reads and writes it.
type Repository interface {
	// Initialize ensures the underlying storage is ready (e.g., create directories).
	Initialize(ctx context.Context) error

	// Scan reads every persisted note in ascending ID order.
	// Unreadable or malformed entries are reported as warnings and skipped.
	Scan(ctx context.Context) ([]Note, []*PersistenceWarning, error)

	// Save writes the note, replacing any previous version.
	Save(ctx context.Context, n Note) error

	// Delete removes the persisted note. A note that is already absent is not an error.
	Delete(ctx context.Context, id int) error
}

// Sequencer is implemented by repositories that remember the highest ID ever
// assigned, so IDs stay unique across deletes and restarts.
type Sequencer interface {
	LastID(ctx context.Context) (int, error)
}

// Watchable is implemented by repositories that can report external changes.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// EventType represents the type of change in the notes directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a persisted note.
type Event struct {
	Type      EventType
	ID        int
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " note " + strconv.Itoa(e.ID)
}
