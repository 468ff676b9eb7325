package fs

import (
	"errors"
	"testing"
	"time"

	"github.com/aretw0/notex/pkg/core"
)

func TestFileName(t *testing.T) {
	if got := FileName(12); got != "note_12.txt" {
		t.Errorf("FileName(12) = %q", got)
	}

	valid := map[string]int{
		"note_1.txt":        1,
		"note_42.txt":       42,
		"/tmp/x/note_7.txt": 7,
	}
	for name, want := range valid {
		id, err := ParseFileName(name)
		if err != nil || id != want {
			t.Errorf("ParseFileName(%q) = %d, %v; want %d", name, id, err, want)
		}
	}

	for _, name := range []string{"note_.txt", "note_0.txt", "note_-1.txt", "note_01.txt", "note_a.txt", "note_1.md", "memo_1.txt"} {
		if _, err := ParseFileName(name); !errors.Is(err, core.ErrMalformed) {
			t.Errorf("ParseFileName(%q): expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestEncodeNote(t *testing.T) {
	n := core.Note{
		ID:       1,
		Title:    "Buy milk",
		Priority: core.PriorityLow,
		Created:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local),
		Text:     "2%",
	}

	data, err := encodeNote(n)
	if err != nil {
		t.Fatalf("encodeNote failed: %v", err)
	}
	want := "Buy milk\nLow\n2024-01-02 03:04:05\n2%"
	if string(data) != want {
		t.Errorf("encoded %q, want %q", data, want)
	}

	n.Title = "two\nlines"
	if _, err := encodeNote(n); err == nil {
		t.Error("expected error for multi-line title")
	}
}

func TestDecodeNote(t *testing.T) {
	t.Run("Text Keeps Its Newlines", func(t *testing.T) {
		n, err := decodeNote(3, []byte("Title\nHigh\n2024-01-02 03:04:05\nline 1\nline 2\n\nline 4"))
		if err != nil {
			t.Fatalf("decodeNote failed: %v", err)
		}
		if n.ID != 3 || n.Title != "Title" || n.Priority != core.PriorityHigh {
			t.Errorf("unexpected note %+v", n)
		}
		if n.Text != "line 1\nline 2\n\nline 4" {
			t.Errorf("unexpected text %q", n.Text)
		}
	})

	t.Run("Empty Text", func(t *testing.T) {
		n, err := decodeNote(1, []byte("Title\nLow\n2024-01-02 03:04:05\n"))
		if err != nil {
			t.Fatalf("decodeNote failed: %v", err)
		}
		if n.Text != "" {
			t.Errorf("expected empty text, got %q", n.Text)
		}
	})

	t.Run("Windows Line Endings And Legacy Priority", func(t *testing.T) {
		n, err := decodeNote(1, []byte("Купить молоко\r\nНизкий\r\n2024-01-02 03:04:05\r\n2%\r\nобезжиренное"))
		if err != nil {
			t.Fatalf("decodeNote failed: %v", err)
		}
		if n.Title != "Купить молоко" || n.Priority != core.PriorityLow {
			t.Errorf("unexpected note %+v", n)
		}
		if n.Text != "2%\r\nобезжиренное" {
			t.Errorf("unexpected text %q", n.Text)
		}
	})

	t.Run("Text Keeps Windows Line Endings", func(t *testing.T) {
		orig := core.Note{ID: 4, Title: "Pasted", Priority: core.PriorityMedium, Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local), Text: "a\r\nb\r\n"}
		data, err := encodeNote(orig)
		if err != nil {
			t.Fatalf("encodeNote failed: %v", err)
		}
		got, err := decodeNote(4, data)
		if err != nil {
			t.Fatalf("decodeNote failed: %v", err)
		}
		if got.Text != orig.Text {
			t.Errorf("text changed on reload: got %q, want %q", got.Text, orig.Text)
		}
		if !got.Created.Equal(orig.Created) || got.Title != orig.Title || got.Priority != orig.Priority {
			t.Errorf("unexpected note %+v", got)
		}
	})

	malformed := map[string]string{
		"Missing Fields": "Title\nLow\n2024-01-02 03:04:05",
		"Empty File":     "",
		"Empty Title":    " \nLow\n2024-01-02 03:04:05\ntext",
		"Bad Priority":   "Title\nUrgent\n2024-01-02 03:04:05\ntext",
		"Bad Timestamp":  "Title\nLow\nyesterday\ntext",
		"Invalid UTF-8":  "Title\nLow\n2024-01-02 03:04:05\n\xff\xfe",
	}
	for name, data := range malformed {
		t.Run(name, func(t *testing.T) {
			if _, err := decodeNote(1, []byte(data)); !errors.Is(err, core.ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}
