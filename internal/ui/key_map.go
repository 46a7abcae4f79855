package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	next key.Binding
	prev key.Binding
	save key.Binding
	quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		save: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep result")),
		quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.save, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.prev},
		{k.save, k.quit},
	}
}
