package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting || m.confirmed {
		return ""
	}

	name := "no themes"
	if len(m.themes) > 0 {
		name = fmt.Sprintf("%s (%d/%d)", m.themes[m.index].Name, m.index+1, len(m.themes))
	}

	gutter := "off"
	if m.lineNumbers {
		gutter = "on"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("snapcode • "),
		themeStyle.Render(name),
		statusStyle.Render(fmt.Sprintf("  line numbers %s", gutter)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), helpStyle.Render(m.help()))
}

func (m Model) help() string {
	parts := make([]string, 0, 5)
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
