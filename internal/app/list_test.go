package app

import (
	"testing"
)

func TestAppListAllCategories(t *testing.T) {
	a := newTestApp(t, map[string]string{"nap": "sleep 30", "hello": "echo hi"})
	listings, err := a.List(ListParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 || listings[0].Category != "All" || listings[1].Category != "test" {
		t.Fatalf("unexpected listings: %+v", listings)
	}
	entries := listings[0].Entries
	if len(entries) != 2 || entries[0].Label != "hello" || entries[1].Label != "nap" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if len(entries[1].Info) != 1 || entries[0].Running {
		t.Fatalf("unexpected entry state: %+v", entries)
	}
}

func TestAppListFiltersCategory(t *testing.T) {
	a := newTestApp(t, map[string]string{"nap": "sleep 30"})
	listings, err := a.List(ListParams{Category: " TEST "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 || listings[0].Category != "test" {
		t.Fatalf("unexpected listings: %+v", listings)
	}
}

func TestAppListUnknownCategory(t *testing.T) {
	a := newTestApp(t, map[string]string{"nap": "sleep 30"})
	_, err := a.List(ListParams{Category: "nope"})
	if err == nil || err.Error() != `unknown category "nope"` {
		t.Fatalf("expected unknown category error, got %v", err)
	}
}

func TestAppListShowsRunning(t *testing.T) {
	requireBinaries(t, "sleep")
	a := newTestApp(t, map[string]string{"nap": "sleep 30"})
	if err := a.Registry().Launch("nap", "sleep 30", a.Config().Dir); err != nil {
		t.Fatalf("launch: %v", err)
	}
	t.Cleanup(func() { a.Registry().Kill("nap") })

	listings, err := a.List(ListParams{Category: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := listings[0].Entries[0]
	if !st.Running || st.PID <= 0 {
		t.Fatalf("expected running entry with pid, got %+v", st)
	}
}
