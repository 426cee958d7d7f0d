// Package tui implements the interactive theme picker behind
// `snapcode preview --interactive`.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/snapcode/internal/theme"
)

// chromeLines is the number of rows used around the viewport.
const chromeLines = 3

// PreviewFunc renders the snippet for a theme and gutter setting.
type PreviewFunc func(themeID string, lineNumbers bool) string

// Selection is what the user settled on.
type Selection struct {
	Theme       string
	LineNumbers bool
	Confirmed   bool
}

// Model contains the Bubbletea state for the theme picker.
type Model struct {
	themes      []theme.Info
	index       int
	lineNumbers bool
	preview     PreviewFunc
	keys        keyMap
	viewport    viewport.Model
	ready       bool
	confirmed   bool
	quitting    bool
}

// NewModel starts the picker on current, or on the first theme when current
// is not listed.
func NewModel(themes []theme.Info, current string, lineNumbers bool, preview PreviewFunc) Model {
	m := Model{
		themes:      themes,
		lineNumbers: lineNumbers,
		preview:     preview,
		keys:        defaultKeyMap(),
		viewport:    viewport.New(80, 20),
	}
	for i, info := range themes {
		if info.ID == current {
			m.index = i
		}
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the highlighted theme id.
func (m Model) Theme() string {
	if len(m.themes) == 0 {
		return ""
	}
	return m.themes[m.index].ID
}

// Selection reports the final state.
func (m Model) Selection() Selection {
	return Selection{Theme: m.Theme(), LineNumbers: m.lineNumbers, Confirmed: m.confirmed}
}

func (m *Model) refresh() {
	if m.preview == nil || len(m.themes) == 0 {
		return
	}
	m.viewport.SetContent(m.preview(m.Theme(), m.lineNumbers))
}

func (m *Model) step(delta int) {
	if len(m.themes) == 0 {
		return
	}
	m.index = (m.index + delta + len(m.themes)) % len(m.themes)
	m.refresh()
}

// Run starts the picker and blocks until the user confirms or quits.
func Run(m Model, opts ...tea.ProgramOption) (Selection, error) {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return Selection{}, err
	}
	return final.(Model).Selection(), nil
}
