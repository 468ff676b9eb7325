package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIndex(t *testing.T) {
	t.Run("Starts Empty if File Missing", func(t *testing.T) {
		x := newIndex(t.TempDir(), ".notex")
		if err := x.Load(); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if x.LastID() != 0 {
			t.Errorf("expected 0, got %d", x.LastID())
		}
	})

	t.Run("Persists High-water Mark", func(t *testing.T) {
		dir := t.TempDir()
		x := newIndex(dir, ".notex")
		x.Observe(3)
		x.Observe(2)
		if err := x.Save(); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		y := newIndex(dir, ".notex")
		if err := y.Load(); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if y.LastID() != 3 {
			t.Errorf("expected 3, got %d", y.LastID())
		}
	})

	t.Run("Does Not Save if Not Dirty", func(t *testing.T) {
		dir := t.TempDir()
		x := newIndex(dir, ".notex")
		if err := x.Save(); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if _, err := os.Stat(x.Path); !os.IsNotExist(err) {
			t.Error("expected no index file for a clean index")
		}
	})

	t.Run("Resets on Corrupted JSON", func(t *testing.T) {
		dir := t.TempDir()
		os.MkdirAll(filepath.Join(dir, ".notex"), 0755)
		os.WriteFile(filepath.Join(dir, ".notex", "index.json"), []byte("{ invalid json"), 0644)

		x := newIndex(dir, ".notex")
		if err := x.Load(); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if x.LastID() != 0 {
			t.Errorf("expected 0 after corruption, got %d", x.LastID())
		}
	})
}
