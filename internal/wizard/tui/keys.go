package tui

import "github.com/charmbracelet/bubbles/key"

// formKeyMap defines key bindings shared by both forms
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Change key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Change, k.Submit, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newSetupKeys() formKeyMap {
	keys := newOptionsKeys()
	keys.Change.SetEnabled(false)
	keys.Submit = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "connect"),
	)
	return keys
}

func newOptionsKeys() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Change: key.NewBinding(
			key.WithKeys(" ", "left", "right"),
			key.WithHelp("space/←/→", "change"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// submittingKeyMap is shown while a submission is in flight
type submittingKeyMap struct {
	Cancel key.Binding
}

func (k submittingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel}
}

func (k submittingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
