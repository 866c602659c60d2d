package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Back     key.Binding
	Next     key.Binding
	Submit   key.Binding
	NewQuote key.Binding
	Details  key.Binding
	Quit     key.Binding
	Cancel   key.Binding
	Help     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "previous step"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "send request"),
		),
		NewQuote: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new quote"),
		),
		Details: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "price breakdown"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
