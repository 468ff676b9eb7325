package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/notex/pkg/core"
)

// noteEventMsg carries a change reported by the repository watcher.
type noteEventMsg core.Event

// watchClosedMsg reports that the watcher stopped.
type watchClosedMsg struct{}

func waitForEvent(events <-chan core.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return watchClosedMsg{}
		}
		return noteEventMsg(e)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.events))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case noteEventMsg:
		m.reload(core.Event(msg))
		return m, waitForEvent(m.events)

	case watchClosedMsg:
		m.events = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

// reload re-reads the notes directory after an external change.
func (m *Model) reload(e core.Event) {
	if err := m.store.Load(m.ctx); err != nil {
		m.logger.Warn("reload failed", "event", e.String(), "error", err)
		m.setError(err)
		return
	}
	m.refreshRows()
	m.logger.Debug("reloaded after change", "event", e.String())
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != confirmNone {
		return m, m.handleConfirm(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.focus == focusTable {
			return m, tea.Quit
		}
	case "tab":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+s":
		return m, m.submit()
	case "ctrl+n":
		return m, m.newNote()
	case "ctrl+d":
		m.askDelete()
		return m, nil
	case "delete":
		if m.focus == focusTable {
			m.askDelete()
			return m, nil
		}
	case "esc":
		m.session.Cancel()
		m.loadForm(m.session.Form())
		m.setStatus("Edit cancelled")
		return m, m.setFocus(focusTable)
	case "ctrl+y":
		m.copyText()
		return m, nil
	case "enter":
		if m.focus == focusTable {
			return m, m.beginEdit()
		}
		if m.focus == focusTitle {
			return m, m.setFocus(focusPriority)
		}
	case "left", "right", " ":
		if m.focus == focusPriority {
			m.cyclePriority(msg.String() == "left")
			return m, nil
		}
	}

	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusTable:
		m.table, cmd = m.table.Update(msg)
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusText:
		m.text, cmd = m.text.Update(msg)
	}
	m.syncForm()
	return cmd
}

func (m *Model) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	kind, id := m.confirm, m.confirmID
	switch msg.String() {
	case "y", "Y", "enter":
	case "n", "N", "esc":
		m.confirm = confirmNone
		m.setStatus("")
		return nil
	default:
		return nil
	}

	m.confirm = confirmNone
	switch kind {
	case confirmNew:
		return m.resetForm()
	case confirmDelete:
		m.deleteNote(id)
	}
	return nil
}

func (m *Model) beginEdit() tea.Cmd {
	id, ok := m.selectedID()
	if !ok {
		return nil
	}
	f, err := m.session.BeginEdit(id)
	if err != nil {
		m.setError(err)
		return nil
	}
	m.loadForm(f)
	m.setStatus(fmt.Sprintf("Editing note %d", id))
	return m.setFocus(focusTitle)
}

func (m *Model) submit() tea.Cmd {
	_, editing := m.session.Current()
	n, err := m.session.Submit(m.ctx, m.form())
	if err != nil {
		m.setError(err)
		return nil
	}

	m.refreshRows()
	m.loadForm(m.session.Form())
	if editing {
		m.setStatus(fmt.Sprintf("Note %d updated", n.ID))
	} else {
		m.setStatus(fmt.Sprintf("Note %d created", n.ID))
	}
	return m.setFocus(focusTable)
}

func (m *Model) newNote() tea.Cmd {
	m.syncForm()
	if m.session.NeedsConfirmation() {
		m.confirm = confirmNew
		m.setStatus("Discard unsaved changes? (y/n)")
		return nil
	}
	return m.resetForm()
}

func (m *Model) resetForm() tea.Cmd {
	m.session.New()
	m.loadForm(m.session.Form())
	m.setStatus("New note")
	return m.setFocus(focusTitle)
}

func (m *Model) askDelete() {
	id, ok := m.session.Current()
	if !ok || m.focus == focusTable {
		id, ok = m.selectedID()
	}
	if !ok {
		m.setError(core.ErrNoSelection)
		return
	}
	m.confirm = confirmDelete
	m.confirmID = id
	m.setStatus(fmt.Sprintf("Delete note %d? (y/n)", id))
}

func (m *Model) deleteNote(id int) {
	var err error
	if current, ok := m.session.Current(); ok && current == id {
		err = m.session.DeleteCurrent(m.ctx)
		if err == nil {
			m.loadForm(m.session.Form())
		}
	} else {
		err = m.store.Delete(m.ctx, id)
	}
	if err != nil {
		m.setError(err)
		return
	}

	m.refreshRows()
	m.setStatus(fmt.Sprintf("Note %d deleted", id))
}

func (m *Model) cyclePriority(backwards bool) {
	if backwards {
		m.priority = m.priority.Next().Next()
	} else {
		m.priority = m.priority.Next()
	}
	m.syncForm()
}

func (m *Model) copyText() {
	if err := m.copy(m.text.Value()); err != nil {
		m.setError(fmt.Errorf("copy failed: %w", err))
		return
	}
	m.setStatus("Copied note text")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *Model) setError(err error) {
	m.err = err
	switch {
	case errors.Is(err, core.ErrValidation):
		m.status = "Check the form: " + err.Error()
	case errors.Is(err, core.ErrReadOnly):
		m.status = "Notes are read-only"
	default:
		m.status = err.Error()
	}
}
