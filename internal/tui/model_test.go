package tui

import (
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"launchbox/internal/catalog"
	"launchbox/internal/config"
	"launchbox/internal/registry"
	"launchbox/internal/session"
)

type stubHandle struct {
	alive atomic.Bool
}

func (h *stubHandle) Start() error { h.alive.Store(true); return nil }
func (h *stubHandle) Alive() bool  { return h.alive.Load() }
func (h *stubHandle) Kill()        { h.alive.Store(false) }
func (h *stubHandle) PID() int     { return 7 }

type stubController struct {
	cfg     config.Config
	sess    *session.Session
	handles map[string]*stubHandle
}

func (c *stubController) Config() config.Config     { return c.cfg }
func (c *stubController) Session() *session.Session { return c.sess }

func newStubController(t *testing.T) *stubController {
	t.Helper()
	cat, err := catalog.Build([]catalog.Source{
		{Name: "work", Commands: map[string]string{"editor": "vim", "shell": "bash"}},
		{Name: "play", Commands: map[string]string{"game": "nethack"}},
	}, map[string][]string{"editor": {"Opens vim"}})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	c := &stubController{handles: make(map[string]*stubHandle)}
	reg := registry.NewWithFactory(func(label, command, dir string) (registry.Handle, error) {
		h := &stubHandle{}
		c.handles[label] = h
		return h, nil
	})
	c.sess = session.New(cat, reg, t.TempDir())
	return c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *Model, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(msg)
	return cmd
}

func TestKeyMapActions(t *testing.T) {
	k := defaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want session.Action
	}{
		{runes("Q"), session.Quit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, session.Quit},
		{runes("q"), session.Kill},
		{tea.KeyMsg{Type: tea.KeyEnter}, session.Launch},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, session.Launch},
		{runes("w"), session.Up},
		{tea.KeyMsg{Type: tea.KeyUp}, session.Up},
		{runes("s"), session.Down},
		{tea.KeyMsg{Type: tea.KeyDown}, session.Down},
		{runes("a"), session.Left},
		{runes("d"), session.Right},
		{tea.KeyMsg{Type: tea.KeyRight}, session.Right},
		{runes("x"), session.None},
	}
	for _, tc := range cases {
		if got := k.action(tc.msg); got != tc.want {
			t.Fatalf("action(%q) = %s, want %s", tc.msg.String(), got, tc.want)
		}
	}
}

func TestModelLaunchAndKill(t *testing.T) {
	ctrl := newStubController(t)
	m := New(ctrl)

	if cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("launch should not return a command")
	}
	h, ok := ctrl.handles["editor"]
	if !ok || !h.Alive() {
		t.Fatalf("editor was not launched")
	}
	if !m.view.Running || m.statusMsg != "Launched editor." {
		t.Fatalf("unexpected view after launch: running=%v status=%q", m.view.Running, m.statusMsg)
	}
	if !strings.Contains(m.View(), "running pid=7") {
		t.Fatalf("info panel does not show the pid:\n%s", m.View())
	}

	press(t, m, runes("q"))
	if h.Alive() {
		t.Fatalf("editor still alive after kill")
	}
	if m.view.Running || m.statusMsg != "Stopped editor." {
		t.Fatalf("unexpected view after kill: running=%v status=%q", m.view.Running, m.statusMsg)
	}
}

func TestModelKillIdleEntryIsSilent(t *testing.T) {
	ctrl := newStubController(t)
	m := New(ctrl)

	press(t, m, runes("q"))
	if m.statusMsg != "Ready." || m.err != nil {
		t.Fatalf("kill on an idle entry changed the status: %q err=%v", m.statusMsg, m.err)
	}
	if len(ctrl.handles) != 0 {
		t.Fatalf("kill on an idle entry spawned %d processes", len(ctrl.handles))
	}
}

func TestModelNavigation(t *testing.T) {
	ctrl := newStubController(t)
	m := New(ctrl)

	press(t, m, runes("s"))
	if m.view.Entry.Label != "game" || m.list.Index() != 1 {
		t.Fatalf("expected game selected, got %q at %d", m.view.Entry.Label, m.list.Index())
	}

	press(t, m, runes("d"))
	if m.view.CategoryName != "work" || m.view.Selection != 0 {
		t.Fatalf("expected work/0, got %s/%d", m.view.CategoryName, m.view.Selection)
	}
	if m.list.Title != "work (2/3)" {
		t.Fatalf("unexpected title %q", m.list.Title)
	}
	if len(m.list.Items()) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(m.list.Items()))
	}
}

func TestModelQuit(t *testing.T) {
	ctrl := newStubController(t)
	m := New(ctrl)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	cmd := press(t, m, runes("Q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !ctrl.handles["editor"].Alive() {
		t.Fatalf("quit must leave launched processes running")
	}
}

func TestModelFrameReaps(t *testing.T) {
	ctrl := newStubController(t)
	m := New(ctrl)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	ctrl.handles["editor"].alive.Store(false)

	_, cmd := m.Update(frameMsg{})
	if cmd == nil {
		t.Fatalf("frame must schedule the next tick")
	}
	if m.view.Running {
		t.Fatalf("dead process still shown as running")
	}
	if ctrl.sess.Registry.IsRunning("editor") {
		t.Fatalf("dead process still registered")
	}
}

func TestModelViewEmptyCategory(t *testing.T) {
	ctrl := newStubController(t)
	cat, err := catalog.Build([]catalog.Source{{Name: "empty"}}, nil)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	ctrl.sess = session.New(cat, ctrl.sess.Registry, t.TempDir())
	m := New(ctrl)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(ctrl.handles) != 0 {
		t.Fatalf("launch on an empty category spawned %d processes", len(ctrl.handles))
	}
	if !strings.Contains(m.View(), "No entries in this category.") {
		t.Fatalf("empty placeholder missing:\n%s", m.View())
	}
}
