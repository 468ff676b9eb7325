package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notex/pkg/core"
)

// Serializer renders a set of notes into an export format.
type Serializer interface {
	// Serialize converts the notes to bytes.
	Serialize(notes []core.Note) ([]byte, error)
	// Extension is the conventional file extension, including the dot.
	Extension() string
}

// DefaultSerializers returns the standard set of export serializers keyed by format name.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		"json": JSONSerializer{},
		"yaml": YAMLSerializer{},
		"md":   MarkdownSerializer{},
	}
}

// Formats lists the names accepted by DefaultSerializers, sorted.
func Formats() []string {
	var names []string
	for name := range DefaultSerializers() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// record is the export shape of a note.
type record struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Priority string `json:"priority" yaml:"priority"`
	Created  string `json:"created" yaml:"created"`
	Text     string `json:"text" yaml:"text"`
}

func toRecords(notes []core.Note) []record {
	out := make([]record, 0, len(notes))
	for _, n := range notes {
		out = append(out, record{
			ID:       n.ID,
			Title:    n.Title,
			Priority: n.Priority.String(),
			Created:  n.CreatedString(),
			Text:     n.Text,
		})
	}
	return out
}

// --- JSON Serializer ---

// JSONSerializer writes an indented JSON array.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(notes []core.Note) ([]byte, error) {
	data, err := json.MarshalIndent(toRecords(notes), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// SerializeNote writes a single note as an indented JSON object.
func (JSONSerializer) SerializeNote(n core.Note) ([]byte, error) {
	data, err := json.MarshalIndent(toRecords([]core.Note{n})[0], "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (JSONSerializer) Extension() string { return ".json" }

// --- YAML Serializer ---

// YAMLSerializer writes a YAML sequence.
type YAMLSerializer struct{}

func (YAMLSerializer) Serialize(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(toRecords(notes)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLSerializer) Extension() string { return ".yaml" }

// --- Markdown Serializer ---

// MarkdownSerializer writes every note as a front matter block followed by its text.
type MarkdownSerializer struct{}

type frontmatter struct {
	ID       int    `yaml:"id"`
	Title    string `yaml:"title"`
	Priority string `yaml:"priority"`
	Created  string `yaml:"created"`
}

func (MarkdownSerializer) Serialize(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	for i, r := range toRecords(notes) {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("---\n")
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(frontmatter{ID: r.ID, Title: r.Title, Priority: r.Priority, Created: r.Created}); err != nil {
			return nil, fmt.Errorf("failed to encode front matter for note %d: %w", r.ID, err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to close front matter encoder for note %d: %w", r.ID, err)
		}
		buf.WriteString("---\n")
		buf.WriteString(r.Text)
		if !strings.HasSuffix(r.Text, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

func (MarkdownSerializer) Extension() string { return ".md" }
