package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next, Prev         key.Binding
	Complete           key.Binding
	Submit, Leave      key.Binding
	All, Done, Pending key.Binding
	Left, Right        key.Binding
	Quit, ForceQuit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Complete: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "complete")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),
		All:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		Done:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "done")),
		Pending:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "pending")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "choose")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		// ctrl+c works from everywhere, including the text field
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// help shows the bindings that apply to the focused control.
func (k keyMap) help(f focusArea) []key.Binding {
	switch f {
	case focusInput:
		return []key.Binding{k.Submit, k.Leave, k.Next}
	case focusFilters:
		return []key.Binding{k.Left, selectBinding, k.All, k.Done, k.Pending, k.Next, k.Quit}
	default:
		return []key.Binding{k.Complete, k.All, k.Done, k.Pending, k.Next, k.Quit}
	}
}

var selectBinding = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply"))
