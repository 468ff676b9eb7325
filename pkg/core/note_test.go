package core_test

import (
	"errors"
	"testing"

	"github.com/aretw0/notex/pkg/core"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want core.Priority
	}{
		{"Low", core.PriorityLow},
		{"medium", core.PriorityMedium},
		{" HIGH ", core.PriorityHigh},
		{"Низкий", core.PriorityLow},
		{"Средний", core.PriorityMedium},
		{"Высокий", core.PriorityHigh},
	}
	for _, tc := range tests {
		got, err := core.ParsePriority(tc.in)
		if err != nil {
			t.Errorf("ParsePriority(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, err := core.ParsePriority("urgent"); !errors.Is(err, core.ErrValidation) {
		t.Errorf("expected ErrValidation for unknown label, got %v", err)
	}
}

func TestPriority_Next(t *testing.T) {
	p := core.PriorityLow
	seen := []core.Priority{p}
	for range 3 {
		p = p.Next()
		seen = append(seen, p)
	}
	want := []core.Priority{core.PriorityLow, core.PriorityMedium, core.PriorityHigh, core.PriorityLow}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle %v, want %v", seen, want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := core.ParseTimestamp("2024-05-06 07:08:09")
	if err != nil {
		t.Fatalf("ParseTimestamp failed: %v", err)
	}
	n := core.Note{Created: ts}
	if n.CreatedString() != "2024-05-06 07:08:09" {
		t.Errorf("round trip mismatch: %s", n.CreatedString())
	}

	if _, err := core.ParseTimestamp("yesterday"); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}
