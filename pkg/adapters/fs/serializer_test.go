package fs

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notex/pkg/core"
)

func exportNotes() []core.Note {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	return []core.Note{
		{ID: 1, Title: "Buy milk", Priority: core.PriorityLow, Created: created, Text: "2%"},
		{ID: 2, Title: "Call mom", Priority: core.PriorityHigh, Created: created, Text: "Sunday\nafter lunch"},
	}
}

func TestSerializers(t *testing.T) {
	serializers := DefaultSerializers()

	t.Run("json", func(t *testing.T) {
		data, err := serializers["json"].Serialize(exportNotes())
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		var got []record
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(got) != 2 || got[1].Priority != "High" || got[0].Created != "2024-01-02 03:04:05" {
			t.Errorf("unexpected records %+v", got)
		}
	})

	t.Run("json single note", func(t *testing.T) {
		data, err := JSONSerializer{}.SerializeNote(exportNotes()[1])
		if err != nil {
			t.Fatalf("SerializeNote failed: %v", err)
		}
		var got record
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got.ID != 2 || got.Title != "Call mom" || got.Text != "Sunday\nafter lunch" {
			t.Errorf("unexpected record %+v", got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := serializers["yaml"].Serialize(exportNotes())
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		var got []record
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("invalid yaml: %v", err)
		}
		if len(got) != 2 || got[1].Text != "Sunday\nafter lunch" {
			t.Errorf("unexpected records %+v", got)
		}
	})

	t.Run("md", func(t *testing.T) {
		data, err := serializers["md"].Serialize(exportNotes())
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		out := string(data)
		if strings.Count(out, "---\n") != 4 {
			t.Errorf("expected two front matter blocks:\n%s", out)
		}
		if !strings.Contains(out, "title: Buy milk\n") || !strings.Contains(out, "Sunday\nafter lunch\n") {
			t.Errorf("unexpected markdown:\n%s", out)
		}
	})

	t.Run("md front matter", func(t *testing.T) {
		data, err := serializers["md"].Serialize(exportNotes()[:1])
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		block := strings.SplitN(strings.TrimPrefix(string(data), "---\n"), "---\n", 2)
		if len(block) != 2 {
			t.Fatalf("missing closing delimiter:\n%s", data)
		}
		var fm frontmatter
		if err := yaml.Unmarshal([]byte(block[0]), &fm); err != nil {
			t.Fatalf("invalid front matter: %v", err)
		}
		if fm.ID != 1 || fm.Title != "Buy milk" || fm.Priority != "Low" {
			t.Errorf("unexpected front matter %+v", fm)
		}
		if block[1] != "2%\n" {
			t.Errorf("unexpected body %q", block[1])
		}
	})

	if got := Formats(); strings.Join(got, ",") != "json,md,yaml" {
		t.Errorf("unexpected formats %v", got)
	}
}
