package core_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/aretw0/notex/pkg/core"
)

// MockRepository implements core.Repository in memory.
// It deliberately does NOT implement core.Sequencer or core.Watchable.
type MockRepository struct {
	notes     map[int]core.Note
	warnings  []*core.PersistenceWarning
	saveErr   error
	deleteErr error
	saves     int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		notes: make(map[int]core.Note),
	}
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

func (m *MockRepository) Scan(ctx context.Context) ([]core.Note, []*core.PersistenceWarning, error) {
	var notes []core.Note
	for _, n := range m.notes {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })
	return notes, m.warnings, nil
}

func (m *MockRepository) Save(ctx context.Context, n core.Note) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.notes[n.ID] = n
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.notes, id)
	return nil
}

// seqRepository adds a persisted high-water mark to MockRepository.
type seqRepository struct {
	*MockRepository
	last int
}

func (s *seqRepository) LastID(ctx context.Context) (int, error) { return s.last, nil }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Assigns Sequential IDs", func(t *testing.T) {
		store := core.NewStore(NewMockRepository())
		for want := 1; want <= 5; want++ {
			n, err := store.Create(ctx, "note", core.PriorityLow, "")
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if n.ID != want {
				t.Errorf("expected id %d, got %d", want, n.ID)
			}
		}
	})

	t.Run("Trims Title and Defaults Priority", func(t *testing.T) {
		store := core.NewStore(NewMockRepository())
		n, err := store.Create(ctx, "  Buy milk  ", 0, "2%")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if n.Title != "Buy milk" {
			t.Errorf("expected trimmed title, got %q", n.Title)
		}
		if n.Priority != core.PriorityMedium {
			t.Errorf("expected Medium, got %v", n.Priority)
		}
	})

	t.Run("Stamps Creation Time to the Second", func(t *testing.T) {
		now := time.Date(2024, 3, 1, 10, 20, 30, 999, time.Local)
		store := core.NewStore(NewMockRepository(), core.WithClock(fixedClock(now)))
		n, err := store.Create(ctx, "t", core.PriorityHigh, "")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if got := n.CreatedString(); got != "2024-03-01 10:20:30" {
			t.Errorf("unexpected timestamp %q", got)
		}
	})

	t.Run("Rejects Empty Title", func(t *testing.T) {
		repo := NewMockRepository()
		store := core.NewStore(repo)
		for _, title := range []string{"", "   ", "\t\n"} {
			_, err := store.Create(ctx, title, core.PriorityLow, "x")
			if !errors.Is(err, core.ErrValidation) {
				t.Errorf("title %q: expected ErrValidation, got %v", title, err)
			}
		}
		if store.Len() != 0 || repo.saves != 0 {
			t.Error("rejected create must not touch memory or disk")
		}
	})

	t.Run("Rejects Multi-line Title", func(t *testing.T) {
		store := core.NewStore(NewMockRepository())
		_, err := store.Create(ctx, "line one\nline two", core.PriorityLow, "")
		if !errors.Is(err, core.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("Leaves Memory Untouched on Save Failure", func(t *testing.T) {
		repo := NewMockRepository()
		repo.saveErr = errors.New("disk full")
		store := core.NewStore(repo)

		if _, err := store.Create(ctx, "t", core.PriorityLow, ""); err == nil {
			t.Fatal("expected error")
		}
		if store.Len() != 0 {
			t.Errorf("expected empty store, got %d notes", store.Len())
		}

		repo.saveErr = nil
		n, err := store.Create(ctx, "t", core.PriorityLow, "")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if n.ID != 1 {
			t.Errorf("expected id 1 after failed attempt, got %d", n.ID)
		}
	})
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2023, 1, 2, 3, 4, 5, 0, time.Local)

	setup := func(t *testing.T) (*core.Store, *MockRepository, core.Note) {
		t.Helper()
		repo := NewMockRepository()
		store := core.NewStore(repo, core.WithClock(fixedClock(created)))
		n, err := store.Create(ctx, "Buy milk", core.PriorityLow, "2%")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		return store, repo, n
	}

	t.Run("Keeps ID and Created", func(t *testing.T) {
		store, repo, n := setup(t)
		got, err := store.Update(ctx, n.ID, "Buy milk and eggs", core.PriorityHigh, "2%")
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if got.ID != n.ID || !got.Created.Equal(n.Created) {
			t.Errorf("identity changed: %+v -> %+v", n, got)
		}
		if got.Title != "Buy milk and eggs" || got.Priority != core.PriorityHigh {
			t.Errorf("fields not updated: %+v", got)
		}
		if repo.notes[n.ID].Title != "Buy milk and eggs" {
			t.Error("update was not persisted")
		}
	})

	t.Run("Unknown ID", func(t *testing.T) {
		store, _, _ := setup(t)
		_, err := store.Update(ctx, 42, "x", core.PriorityLow, "")
		var nf *core.NotFoundError
		if !errors.As(err, &nf) || nf.ID != 42 {
			t.Errorf("expected NotFoundError for 42, got %v", err)
		}
	})

	t.Run("Empty Title Leaves Note Unchanged", func(t *testing.T) {
		store, repo, n := setup(t)
		_, err := store.Update(ctx, n.ID, "   ", core.PriorityHigh, "changed")
		if !errors.Is(err, core.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		got, _ := store.Get(n.ID)
		if got != n {
			t.Errorf("note changed in memory: %+v", got)
		}
		if repo.notes[n.ID] != n {
			t.Errorf("note changed on disk: %+v", repo.notes[n.ID])
		}
	})

	t.Run("Save Failure Leaves Memory Unchanged", func(t *testing.T) {
		store, repo, n := setup(t)
		repo.saveErr = errors.New("io error")
		if _, err := store.Update(ctx, n.ID, "new", core.PriorityHigh, ""); err == nil {
			t.Fatal("expected error")
		}
		got, _ := store.Get(n.ID)
		if got.Title != "Buy milk" {
			t.Errorf("memory mutated despite failed save: %+v", got)
		}
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes From Memory and Disk", func(t *testing.T) {
		repo := NewMockRepository()
		store := core.NewStore(repo)
		n, _ := store.Create(ctx, "a", core.PriorityLow, "")

		if err := store.Delete(ctx, n.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if len(store.List()) != 0 {
			t.Error("expected empty list")
		}
		if _, ok := repo.notes[n.ID]; ok {
			t.Error("expected note removed from repository")
		}
	})

	t.Run("Unknown ID", func(t *testing.T) {
		store := core.NewStore(NewMockRepository())
		if err := store.Delete(ctx, 7); !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Removal Failure Is a Warning", func(t *testing.T) {
		repo := NewMockRepository()
		store := core.NewStore(repo)
		n, _ := store.Create(ctx, "a", core.PriorityLow, "")
		repo.deleteErr = errors.New("permission denied")

		if err := store.Delete(ctx, n.ID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if store.Len() != 0 {
			t.Error("expected note dropped from memory")
		}
		if len(store.Warnings()) != 1 {
			t.Errorf("expected 1 warning, got %d", len(store.Warnings()))
		}
	})

	t.Run("Read-only Repository Fails", func(t *testing.T) {
		repo := NewMockRepository()
		store := core.NewStore(repo)
		n, _ := store.Create(ctx, "a", core.PriorityLow, "")
		repo.deleteErr = core.ErrReadOnly

		if err := store.Delete(ctx, n.ID); !errors.Is(err, core.ErrReadOnly) {
			t.Fatalf("expected ErrReadOnly, got %v", err)
		}
		if store.Len() != 1 {
			t.Error("note must stay in memory")
		}
	})

	t.Run("IDs Are Not Reused", func(t *testing.T) {
		store := core.NewStore(NewMockRepository())
		store.Create(ctx, "a", core.PriorityLow, "")
		b, _ := store.Create(ctx, "b", core.PriorityLow, "")
		store.Delete(ctx, b.ID)

		c, err := store.Create(ctx, "c", core.PriorityLow, "")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if c.ID != 3 {
			t.Errorf("expected id 3, got %d", c.ID)
		}
	})
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Skips Warnings and Continues", func(t *testing.T) {
		repo := NewMockRepository()
		repo.notes[2] = core.Note{ID: 2, Title: "two", Priority: core.PriorityLow}
		repo.notes[5] = core.Note{ID: 5, Title: "five", Priority: core.PriorityHigh}
		repo.warnings = []*core.PersistenceWarning{{Op: "load", Path: "note_3.txt", Err: core.ErrMalformed}}

		store := core.NewStore(repo)
		if err := store.Load(ctx); err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		list := store.List()
		if len(list) != 2 || list[0].ID != 2 || list[1].ID != 5 {
			t.Errorf("unexpected list: %+v", list)
		}
		if len(store.Warnings()) != 1 {
			t.Errorf("expected 1 warning, got %d", len(store.Warnings()))
		}

		n, _ := store.Create(ctx, "six", core.PriorityLow, "")
		if n.ID != 6 {
			t.Errorf("expected id 6, got %d", n.ID)
		}
	})

	t.Run("Honors Sequencer High-water Mark", func(t *testing.T) {
		repo := &seqRepository{MockRepository: NewMockRepository(), last: 9}
		repo.notes[1] = core.Note{ID: 1, Title: "one", Priority: core.PriorityLow}

		store := core.NewStore(repo)
		if err := store.Load(ctx); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		n, _ := store.Create(ctx, "next", core.PriorityLow, "")
		if n.ID != 10 {
			t.Errorf("expected id 10, got %d", n.ID)
		}
	})

	t.Run("List Is a Snapshot", func(t *testing.T) {
		store := core.NewStore(NewMockRepository())
		store.Create(ctx, "a", core.PriorityLow, "")

		list := store.List()
		list[0].Title = "mutated"

		got, _ := store.Get(1)
		if got.Title != "a" {
			t.Error("List must not expose internal storage")
		}
	})
}

func TestStore_Watch_Unsupported(t *testing.T) {
	store := core.NewStore(NewMockRepository())
	if _, err := store.Watch(context.TODO()); err == nil {
		t.Fatal("expected error for non-watchable repo")
	}
}
