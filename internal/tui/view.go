package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpText = "tab focus • enter edit • ctrl+s save • ctrl+n new • ctrl+d delete • ctrl+y copy • esc cancel • q quit"

// resize fits the widgets to the terminal.
func (m *Model) resize() {
	paneWidth := max(30, m.width/2-4)
	bodyHeight := max(8, m.height-8)

	m.table.SetHeight(bodyHeight - 2)
	m.title.Width = paneWidth - 2
	m.text.SetWidth(paneWidth)
	m.text.SetHeight(max(3, bodyHeight-6))
	m.refreshRows()
}

// View implements tea.Model.
func (m *Model) View() string {
	list := m.pane(m.table.View(), m.focus == focusTable)

	var form strings.Builder
	mode := "New note"
	if id, ok := m.session.Current(); ok {
		mode = fmt.Sprintf("Note %d", id)
	}
	if m.session.IsDirty() {
		mode += " *"
	}
	form.WriteString(titleStyle.Render(mode))
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("Title") + "\n")
	form.WriteString(m.title.View() + "\n\n")
	form.WriteString(labelStyle.Render("Priority") + "  ")
	form.WriteString(priorityBadge(m.priority, m.focus == focusPriority) + "\n\n")
	form.WriteString(m.text.View())

	editor := m.pane(form.String(), m.focus != focusTable)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", editor))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

func (m *Model) pane(content string, focused bool) string {
	if focused {
		return focusedPaneStyle.Render(content)
	}
	return paneStyle.Render(content)
}

func (m *Model) statusLine() string {
	switch {
	case m.confirm != confirmNone:
		return promptStyle.Render(m.status)
	case m.err != nil:
		return errorStyle.Render(m.status)
	default:
		return statusStyle.Render(fmt.Sprintf("%d notes  %s", m.store.Len(), m.status))
	}
}
