package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"launchbox/internal/session"
)

type keyMap struct {
	Quit   key.Binding
	Kill   key.Binding
	Launch key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("Q", "ctrl+c"), key.WithHelp("Q", "quit")),
		Kill:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "kill")),
		Launch: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "launch")),
		Up:     key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "prev category")),
		Right:  key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "next category")),
	}
}

// action decodes a key press; unknown keys map to session.None.
func (k keyMap) action(msg tea.KeyMsg) session.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return session.Quit
	case key.Matches(msg, k.Kill):
		return session.Kill
	case key.Matches(msg, k.Launch):
		return session.Launch
	case key.Matches(msg, k.Up):
		return session.Up
	case key.Matches(msg, k.Down):
		return session.Down
	case key.Matches(msg, k.Left):
		return session.Left
	case key.Matches(msg, k.Right):
		return session.Right
	default:
		return session.None
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Launch, k.Kill, k.Up, k.Down, k.Left, k.Right, k.Quit}
}
