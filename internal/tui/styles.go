package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/notex/pkg/core"
)

var (
	colorAccent = lipgloss.Color("#7C3AED")
	colorMuted  = lipgloss.Color("#6B7280")
	colorError  = lipgloss.Color("#EF4444")
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1)

var paneStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

var (
	focusedPaneStyle = paneStyle.BorderForeground(colorAccent)
	labelStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle       = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	promptStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

var priorityColors = map[core.Priority]lipgloss.Color{
	core.PriorityLow:    lipgloss.Color("#10B981"),
	core.PriorityMedium: lipgloss.Color("#F59E0B"),
	core.PriorityHigh:   lipgloss.Color("#EF4444"),
}

func priorityBadge(p core.Priority, focused bool) string {
	style := lipgloss.NewStyle().Foreground(priorityColors[p]).Bold(true)
	if focused {
		return style.Render("‹ " + p.String() + " ›")
	}
	return style.Render(p.String())
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorMuted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	return s
}
