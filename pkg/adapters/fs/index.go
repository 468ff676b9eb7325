package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const indexVersion = 1

// indexState is the persisted form of the index.
type indexState struct {
	Version int `json:"version"`
	LastID  int `json:"last_id"`
}

// index remembers the highest note ID ever written to the directory so that
// deleting the newest note cannot free its ID for reuse.
type index struct {
	Path  string // {notesDir}/{systemDir}/index.json
	state indexState
	dirty bool
	mu    sync.RWMutex
}

func newIndex(notesDir, systemDir string) *index {
	return &index{
		Path:  filepath.Join(notesDir, systemDir, "index.json"),
		state: indexState{Version: indexVersion},
	}
}

// Load reads the index from disk. A missing or corrupted index starts empty:
// the note files themselves remain the source of truth for existing IDs.
func (x *index) Load() error {
	x.mu.Lock()
	defer x.mu.Unlock()

	data, err := os.ReadFile(x.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	var st indexState
	if err := json.Unmarshal(data, &st); err != nil || st.LastID < 0 {
		x.state = indexState{Version: indexVersion}
		return nil
	}

	x.state.LastID = max(x.state.LastID, st.LastID)
	x.dirty = false
	return nil
}

// Observe raises the high-water mark to id.
func (x *index) Observe(id int) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if id > x.state.LastID {
		x.state.LastID = id
		x.dirty = true
	}
}

// LastID returns the high-water mark.
func (x *index) LastID() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.state.LastID
}

// Save persists the index if it changed since the last Load/Save.
func (x *index) Save() error {
	x.mu.RLock()
	if !x.dirty {
		x.mu.RUnlock()
		return nil
	}
	data, err := json.MarshalIndent(x.state, "", "  ")
	x.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(x.Path), 0755); err != nil {
		return err
	}
	if err := writeFileAtomic(x.Path, data, 0644); err != nil {
		return err
	}

	x.mu.Lock()
	x.dirty = false
	x.mu.Unlock()
	return nil
}
