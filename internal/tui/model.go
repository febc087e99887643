package tui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"launchbox/internal/config"
	"launchbox/internal/session"
)

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Config() config.Config
	Session() *session.Session
}

// Model represents the Bubble Tea state. Every frame tick reaps dead
// processes and rebuilds the view; every key press is one session action.
type Model struct {
	sess     *session.Session
	interval time.Duration
	keys     keyMap

	list list.Model
	view session.View

	statusMsg string
	err       error

	width  int
	height int
}

// New constructs a TUI model with default styles.
func New(ctrl Controller) *Model {
	lst := list.New([]list.Item{}, entryDelegate{}, 0, 0)
	lst.SetShowHelp(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.DisableQuitKeybindings()
	lst.Styles.Title = lipgloss.NewStyle().Bold(true)

	interval := ctrl.Config().FrameInterval
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}

	m := &Model{
		sess:      ctrl.Session(),
		interval:  interval,
		keys:      defaultKeyMap(),
		list:      lst,
		statusMsg: "Ready.",
	}
	m.refresh(m.sess.View())
	return m
}

// Run spins up the Bubble Tea program. Log output is redirected to the
// configured log file, or discarded, while the alternate screen is active.
func Run(ctrl Controller) error {
	if path := ctrl.Config().LogFile; path != "" {
		f, err := tea.LogToFile(path, "launchbox")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := New(ctrl)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return frameCmd(m.interval)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case frameMsg:
		m.refresh(m.sess.Frame())
		return m, frameCmd(m.interval)

	case tea.KeyMsg:
		action := m.keys.action(msg)
		if action == session.None {
			return m, nil
		}
		label := m.view.Entry.Label
		wasRunning := m.view.Running
		quit, err := m.sess.Apply(action)
		if quit {
			return m, tea.Quit
		}
		switch {
		case err != nil:
			m.err = err
		case action == session.Launch && label != "":
			m.err = nil
			m.statusMsg = fmt.Sprintf("Launched %s.", label)
		case action == session.Kill && wasRunning:
			m.err = nil
			m.statusMsg = fmt.Sprintf("Stopped %s.", label)
		}
		m.refresh(m.sess.View())
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	leftWidth, rightWidth, bodyHeight := m.layout()

	panel := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	left := panel.Width(leftWidth).Height(bodyHeight).Render(m.list.View())
	right := panel.Width(rightWidth).Height(bodyHeight).Render(m.infoText(rightWidth))

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteByte('\n')

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	} else {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.statusMsg))
	}
	b.WriteByte('\n')

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m *Model) infoText(width int) string {
	if !m.view.Selected {
		return "No entries in this category."
	}
	lines := []string{"$ " + m.view.Entry.Command}
	lines = append(lines, m.view.Info...)
	if m.view.Running {
		state := fmt.Sprintf("running pid=%d", m.view.Proc.PID)
		if !m.view.Proc.StartedAt.IsZero() {
			state += fmt.Sprintf(" up %s", time.Since(m.view.Proc.StartedAt).Truncate(time.Second))
		}
		lines = append(lines, "", runningStyle.Render(state))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) helpLine() string {
	parts := make([]string, 0, len(m.keys.help())+1)
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	if n := m.sess.Registry.Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("running=%d", n))
	}
	return "Commands: " + strings.Join(parts, " • ")
}

// refresh copies a session view into the list widget.
func (m *Model) refresh(v session.View) {
	m.view = v
	items := make([]list.Item, 0, len(v.Rows))
	for _, r := range v.Rows {
		items = append(items, entryItem{Label: r.Label, Running: r.Running})
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("%s (%d/%d)", v.CategoryName, v.CategoryIndex+1, v.CategoryCount)
	if len(items) > 0 {
		m.list.Select(v.Selection)
	}
}

func (m *Model) resize() {
	leftWidth, _, bodyHeight := m.layout()
	m.list.SetSize(leftWidth, bodyHeight)
}

// layout splits the screen 40/60 and leaves two lines for status and help.
func (m *Model) layout() (left, right, height int) {
	const frame = 4 // border plus horizontal padding
	width := m.width
	if width <= 0 {
		width = 80
	}
	h := m.height
	if h <= 0 {
		h = 24
	}
	left = width*40/100 - frame
	right = width - width*40/100 - frame
	height = h - 4
	if left < 1 {
		left = 1
	}
	if right < 1 {
		right = 1
	}
	if height < 1 {
		height = 1
	}
	return left, right, height
}

type frameMsg time.Time

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
