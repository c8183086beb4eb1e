package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/listbox-control/internal/dom"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Escape   key.Binding
	Enter    key.Binding
	Space    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
		Left:     key.NewBinding(key.WithKeys("left")),
		Right:    key.NewBinding(key.WithKeys("right")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/select")),
		Space:    key.NewBinding(key.WithKeys(" ", "space")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab")),
		Reload:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Up, k.Down, k.Escape, k.Tab, k.Reload, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type domKey struct {
	name  string
	shift bool
}

// translate maps a terminal key press to the dom key names it produces.
// Rune input yields one key per rune.
func (k keyMap) translate(msg tea.KeyMsg) []domKey {
	switch {
	case key.Matches(msg, k.Up):
		return []domKey{{name: dom.KeyArrowUp}}
	case key.Matches(msg, k.Down):
		return []domKey{{name: dom.KeyArrowDown}}
	case key.Matches(msg, k.Left):
		return []domKey{{name: dom.KeyArrowLeft}}
	case key.Matches(msg, k.Right):
		return []domKey{{name: dom.KeyArrowRight}}
	case key.Matches(msg, k.Escape):
		return []domKey{{name: dom.KeyEscape}}
	case key.Matches(msg, k.Enter):
		return []domKey{{name: dom.KeyEnter}}
	case key.Matches(msg, k.Space), msg.Type == tea.KeySpace:
		return []domKey{{name: dom.KeySpace}}
	case key.Matches(msg, k.Tab):
		return []domKey{{name: dom.KeyTab}}
	case key.Matches(msg, k.ShiftTab):
		return []domKey{{name: dom.KeyTab, shift: true}}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	out := make([]domKey, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		out = append(out, domKey{name: string(r)})
	}
	return out
}
