package fs

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/notex/pkg/core"
)

const (
	// DefaultPattern matches every note file in the notes directory.
	DefaultPattern = "note_*.txt"

	filePrefix = "note_"
	fileSuffix = ".txt"

	// title, priority, created, text
	fieldCount = 4
)

// FileName returns the file name that backs the note with the given ID.
func FileName(id int) string {
	return filePrefix + strconv.Itoa(id) + fileSuffix
}

// ParseFileName extracts the note ID from a canonical note file name.
// Names with leading zeros, signs or non-digits are rejected so that every ID
// maps to exactly one file.
func ParseFileName(name string) (int, error) {
	base := filepath.Base(name)
	raw, ok := strings.CutPrefix(base, filePrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a note file", core.ErrMalformed, base)
	}
	raw, ok = strings.CutSuffix(raw, fileSuffix)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a note file", core.ErrMalformed, base)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 || FileName(id) != base {
		return 0, fmt.Errorf("%w: invalid note id in %s", core.ErrMalformed, base)
	}
	return id, nil
}

// encodeNote renders the four fields, one per line; the text absorbs the rest.
func encodeNote(n core.Note) ([]byte, error) {
	if strings.ContainsAny(n.Title, "\r\n") {
		return nil, fmt.Errorf("title of note %d spans multiple lines", n.ID)
	}
	if !n.Priority.Valid() {
		return nil, fmt.Errorf("note %d has invalid priority %d", n.ID, int(n.Priority))
	}

	var buf bytes.Buffer
	buf.WriteString(n.Title)
	buf.WriteByte('\n')
	buf.WriteString(n.Priority.String())
	buf.WriteByte('\n')
	buf.WriteString(n.CreatedString())
	buf.WriteByte('\n')
	buf.WriteString(n.Text)
	return buf.Bytes(), nil
}

// decodeNote parses a note file. Splitting stops after the third newline so
// the text keeps its own line breaks. A trailing CR is dropped from the three
// header lines only; the text is returned verbatim.
func decodeNote(id int, data []byte) (core.Note, error) {
	if !utf8.Valid(data) {
		return core.Note{}, fmt.Errorf("%w: not valid UTF-8", core.ErrMalformed)
	}

	parts := strings.SplitN(string(data), "\n", fieldCount)
	if len(parts) < fieldCount {
		return core.Note{}, fmt.Errorf("%w: expected %d fields, got %d", core.ErrMalformed, fieldCount, len(parts))
	}
	for i := 0; i < fieldCount-1; i++ {
		parts[i] = strings.TrimSuffix(parts[i], "\r")
	}

	title := strings.TrimSpace(parts[0])
	if title == "" {
		return core.Note{}, fmt.Errorf("%w: empty title", core.ErrMalformed)
	}

	priority, err := core.ParsePriority(parts[1])
	if err != nil {
		return core.Note{}, fmt.Errorf("%w: %v", core.ErrMalformed, err)
	}

	created, err := core.ParseTimestamp(parts[2])
	if err != nil {
		return core.Note{}, fmt.Errorf("%w: bad timestamp %q", core.ErrMalformed, parts[2])
	}

	return core.Note{
		ID:       id,
		Title:    title,
		Priority: priority,
		Created:  created,
		Text:     parts[3],
	}, nil
}
