package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the line editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right          key.Binding
	WordLeft, WordRight  key.Binding
	Home, End            key.Binding
	HistoryPrev          key.Binding
	HistoryNext          key.Binding
	Backspace, Enter     key.Binding
	KillToStart          key.Binding
	ClearScreen          key.Binding
	Interrupt, EndOfFile key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("ctrl+left", "alt+left"), key.WithHelp("ctrl/alt+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("ctrl+right", "alt+right"), key.WithHelp("ctrl/alt+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		HistoryPrev: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "older entry")),
		HistoryNext: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "newer entry")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),

		KillToStart: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "delete to start")),
		ClearScreen: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear screen")),
		Interrupt:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "interrupt")),
		EndOfFile:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "end of input")),
	}
}

// EmacsKeyMap is DefaultKeyMap plus ctrl+a / ctrl+e for line start/end.
func EmacsKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Home = key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home/ctrl+a", "line start"))
	km.End = key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end/ctrl+e", "line end"))
	return km
}
