// Package tui is the interactive terminal shell: a table of notes next to a
// single edit form, driven by a core.Session.
package tui

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/aretw0/notex/pkg/core"
)

type focusArea int

const (
	focusTable focusArea = iota
	focusTitle
	focusPriority
	focusText
	focusCount
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmNew
	confirmDelete
)

const (
	idWidth       = 4
	priorityWidth = 8
	createdWidth  = len(core.TimestampLayout)
	minTitleWidth = 12
)

// Model is the bubbletea model of the shell.
type Model struct {
	ctx     context.Context
	store   *core.Store
	session *core.Session
	logger  *slog.Logger
	events  <-chan core.Event
	copy    func(string) error

	table    table.Model
	title    textinput.Model
	text     textarea.Model
	priority core.Priority
	focus    focusArea

	confirm   confirmKind
	confirmID int

	status string
	err    error
	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithEvents makes the shell reload the store whenever a change arrives on events.
func WithEvents(events <-chan core.Event) Option {
	return func(m *Model) {
		m.events = events
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.copy = write
	}
}

// WithLogger sets the logger used for reload failures.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New builds the shell over an idle session.
func New(ctx context.Context, store *core.Store, session *core.Session, opts ...Option) *Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Prompt = ""

	text := textarea.New()
	text.Placeholder = "Write your note..."
	text.ShowLineNumbers = false

	tbl := table.New(
		table.WithColumns(columns(minTitleWidth)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	tbl.SetStyles(tableStyles())

	m := &Model{
		ctx:      ctx,
		store:    store,
		session:  session,
		logger:   slog.New(slog.DiscardHandler),
		copy:     clipboard.WriteAll,
		table:    tbl,
		title:    title,
		text:     text,
		priority: core.DefaultPriority,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.refreshRows()
	return m
}

// Run starts the shell and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, store *core.Store, session *core.Session, opts ...Option) error {
	m := New(ctx, store, session, opts...)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func columns(titleWidth int) []table.Column {
	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Title", Width: titleWidth},
		{Title: "Priority", Width: priorityWidth},
		{Title: "Created", Width: createdWidth},
	}
}

func (m *Model) titleWidth() int {
	return max(minTitleWidth, m.width/2-idWidth-priorityWidth-createdWidth-8)
}

// refreshRows rebuilds the table from the store, keeping the cursor in range.
func (m *Model) refreshRows() {
	width := m.titleWidth()
	notes := m.store.List()
	rows := make([]table.Row, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, table.Row{
			strconv.Itoa(n.ID),
			runewidth.Truncate(n.Title, width, "…"),
			n.Priority.String(),
			n.CreatedString(),
		})
	}

	m.table.SetColumns(columns(width))
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// selectedID returns the ID in the highlighted row.
func (m *Model) selectedID() (int, bool) {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(row[0])
	return id, err == nil
}

func (m *Model) form() core.Form {
	return core.Form{Title: m.title.Value(), Priority: m.priority, Text: m.text.Value()}
}

// loadForm copies f into the widgets and mirrors it in the session.
func (m *Model) loadForm(f core.Form) {
	m.title.SetValue(f.Title)
	m.text.SetValue(f.Text)
	m.priority = f.Priority
	if m.priority == 0 {
		m.priority = core.DefaultPriority
	}
	m.session.SetForm(m.form())
}

// syncForm pushes the widget values into the session.
func (m *Model) syncForm() {
	m.session.SetForm(m.form())
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.table.Blur()
	m.title.Blur()
	m.text.Blur()

	switch f {
	case focusTable:
		m.table.Focus()
	case focusTitle:
		return m.title.Focus()
	case focusText:
		return m.text.Focus()
	}
	return nil
}
