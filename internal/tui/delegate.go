package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	runningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	idleStyle     = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

// entryItem adapts a session row to the bubbles list item interface.
type entryItem struct {
	Label   string
	Running bool
}

func (e entryItem) FilterValue() string { return e.Label }

// entryDelegate draws one row per entry: green while running, bold with a
// "> " marker when selected.
type entryDelegate struct{}

func (entryDelegate) Height() int                             { return 1 }
func (entryDelegate) Spacing() int                            { return 0 }
func (entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}
	style := idleStyle
	if it.Running {
		style = runningStyle
	}
	prefix := "  "
	if index == m.Index() {
		prefix = "> "
		style = style.Inherit(selectedStyle)
	}
	fmt.Fprint(w, style.Render(prefix+it.Label))
}
