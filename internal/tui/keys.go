package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	LineNumbers key.Binding
	Confirm     key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next theme")),
		Prev:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous theme")),
		LineNumbers: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "line numbers")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.LineNumbers, k.Confirm, k.Quit}
}
