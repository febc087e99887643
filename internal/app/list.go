package app

import (
	"fmt"
	"strings"
)

// ListParams narrows the catalog listing.
type ListParams struct {
	// Category restricts the listing to one category (case-insensitive).
	Category string
}

// Listing is one category with the state of its entries.
type Listing struct {
	Category string
	Entries  []EntryStatus
}

// EntryStatus is a catalog entry plus what the registry knows about it.
type EntryStatus struct {
	Label   string
	Command string
	Info    []string
	Running bool
	PID     int
}

// List returns the catalog grouped by category, "All" first.
func (a *App) List(params ListParams) ([]Listing, error) {
	want := strings.TrimSpace(params.Category)

	out := make([]Listing, 0, a.cat.Len())
	for _, cat := range a.cat.Categories {
		if want != "" && !strings.EqualFold(cat.Name, want) {
			continue
		}
		l := Listing{Category: cat.Name, Entries: make([]EntryStatus, 0, cat.Len())}
		for _, e := range cat.Entries {
			st := EntryStatus{Label: e.Label, Command: e.Command, Info: a.cat.Info(e.Label)}
			if proc, ok := a.reg.Get(e.Label); ok {
				st.Running = true
				st.PID = proc.PID
			}
			l.Entries = append(l.Entries, st)
		}
		out = append(out, l)
	}
	if want != "" && len(out) == 0 {
		return nil, fmt.Errorf("unknown category %q", want)
	}
	return out, nil
}
