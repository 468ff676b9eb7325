package core

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the layout used to render and parse Note.Created.
const TimestampLayout = "2006-01-02 15:04:05"

// Priority ranks a note. The zero value is not a valid priority.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// DefaultPriority is assigned to new notes when the form does not pick one.
const DefaultPriority = PriorityMedium

// Priorities lists every valid priority in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// legacyPriorities maps the Russian labels written by older note files.
var legacyPriorities = map[string]Priority{
	"низкий":  PriorityLow,
	"средний": PriorityMedium,
	"высокий": PriorityHigh,
}

// String returns the persisted form of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// Next cycles to the following priority, wrapping High back to Low.
func (p Priority) Next() Priority {
	if !p.Valid() || p == PriorityHigh {
		return PriorityLow
	}
	return p + 1
}

// ParsePriority parses a priority label case-insensitively.
func ParsePriority(s string) (Priority, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Priorities {
		if strings.ToLower(p.String()) == key {
			return p, nil
		}
	}
	if p, ok := legacyPriorities[key]; ok {
		return p, nil
	}
	return 0, &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", s)}
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid priority %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(b []byte) error {
	v, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Note is the central entity of the domain: a titled, prioritized,
// timestamped text record identified by a sequential ID.
type Note struct {
	ID       int
	Title    string
	Priority Priority
	Created  time.Time
	Text     string
}

// CreatedString renders Created with TimestampLayout.
func (n Note) CreatedString() string {
	return n.Created.Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp rendered with TimestampLayout in local time.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, strings.TrimSpace(s), time.Local)
}
