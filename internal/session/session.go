package session

import (
	"errors"

	"launchbox/internal/catalog"
	"launchbox/internal/registry"
)

// Action is one decoded operator intent.
type Action int

const (
	None Action = iota
	Quit
	Kill
	Launch
	Up
	Down
	Left
	Right
)

func (a Action) String() string {
	switch a {
	case Quit:
		return "quit"
	case Kill:
		return "kill"
	case Launch:
		return "launch"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// State is the operator's position in the menu.
type State struct {
	Category  int
	Selection int
}

// Row is one line of the rendered list.
type Row struct {
	Label   string
	Running bool
}

// View is everything a renderer needs for one frame.
type View struct {
	CategoryName  string
	CategoryIndex int
	CategoryCount int
	Rows          []Row
	Selection     int

	// Selected is false when the active category has no entries.
	Selected bool
	Entry    catalog.Entry
	Info     []string
	Proc     registry.Proc
	Running  bool
}

// Session couples the immutable catalog with the live registry.
type Session struct {
	Catalog  catalog.Catalog
	Registry *registry.Registry
	Dir      string
	State    State
}

// New returns a session positioned on the first entry of "All".
func New(cat catalog.Catalog, reg *registry.Registry, dir string) *Session {
	return &Session{Catalog: cat, Registry: reg, Dir: dir}
}

// Frame reaps dead processes and builds the render model for the active
// category.
func (s *Session) Frame() View {
	s.Registry.ReapDead()
	return s.View()
}

// View builds the render model without reaping.
func (s *Session) View() View {
	cat, _ := s.Catalog.Category(s.State.Category)
	v := View{
		CategoryName:  cat.Name,
		CategoryIndex: s.State.Category,
		CategoryCount: s.Catalog.Len(),
		Rows:          make([]Row, 0, cat.Len()),
		Selection:     s.State.Selection,
	}
	for _, e := range cat.Entries {
		v.Rows = append(v.Rows, Row{Label: e.Label, Running: s.Registry.IsRunning(e.Label)})
	}
	if entry, ok := s.Selected(); ok {
		v.Selected = true
		v.Entry = entry
		v.Info = s.Catalog.Info(entry.Label)
		v.Proc, v.Running = s.Registry.Get(entry.Label)
	}
	return v
}

// Selected returns the entry under the cursor.
func (s *Session) Selected() (catalog.Entry, bool) {
	cat, ok := s.Catalog.Category(s.State.Category)
	if !ok || s.State.Selection < 0 || s.State.Selection >= cat.Len() {
		return catalog.Entry{}, false
	}
	return cat.Entries[s.State.Selection], true
}

// Apply dispatches one action. quit is true only for Quit; running processes
// are left alone. A failed launch is returned and leaves the session usable.
func (s *Session) Apply(a Action) (quit bool, err error) {
	switch a {
	case Quit:
		return true, nil
	case Kill:
		if entry, ok := s.Selected(); ok {
			s.Registry.Kill(entry.Label)
		}
	case Launch:
		entry, ok := s.Selected()
		if !ok || s.Registry.IsRunning(entry.Label) {
			return false, nil
		}
		if err := s.Registry.Launch(entry.Label, entry.Command, s.Dir); err != nil {
			if errors.Is(err, registry.ErrAlreadyRunning) {
				return false, nil
			}
			return false, err
		}
	case Up:
		s.State.Selection = clamp(s.State.Selection-1, s.entryCount())
	case Down:
		s.State.Selection = clamp(s.State.Selection+1, s.entryCount())
	case Left:
		s.moveCategory(-1)
	case Right:
		s.moveCategory(1)
	}
	return false, nil
}

// moveCategory resets the selection even when the category is pinned at a
// bound.
func (s *Session) moveCategory(delta int) {
	s.State.Category = clamp(s.State.Category+delta, s.Catalog.Len())
	s.State.Selection = 0
}

func (s *Session) entryCount() int {
	cat, _ := s.Catalog.Category(s.State.Category)
	return cat.Len()
}

// clamp bounds v to [0, n-1], or 0 when n is 0.
func clamp(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
