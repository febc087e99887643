package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// AllCategory is the name of the synthetic aggregate category at index 0.
const AllCategory = "All"

var (
	// ErrNoCategories is returned when a catalog would contain only "All".
	ErrNoCategories = errors.New("no categories configured")
	// ErrDuplicateLabel is returned when one label maps to two different command lines.
	ErrDuplicateLabel = errors.New("duplicate label")
)

// Entry is a launchable (label, command line) pair.
type Entry struct {
	Label   string
	Command string
}

// Category is an ordered, named group of entries.
type Category struct {
	Name    string
	Entries []Entry
}

// Len returns the number of entries in the category.
func (c Category) Len() int {
	return len(c.Entries)
}

// Catalog is the immutable menu built from configuration.
type Catalog struct {
	Categories []Category
	info       map[string][]string
}

// Source is one configured category before the catalog is assembled.
type Source struct {
	Name     string
	Commands map[string]string
}

// Build assembles a catalog from configured categories. Entries inside each
// category are ordered by label; the "All" category is prepended and holds
// every distinct entry ordered by label, then command line.
func Build(sources []Source, info map[string][]string) (Catalog, error) {
	if len(sources) == 0 {
		return Catalog{}, ErrNoCategories
	}

	seen := make(map[string]string)
	owner := make(map[string]string)
	cats := make([]Category, 0, len(sources)+1)
	cats = append(cats, Category{Name: AllCategory})

	var all []Entry
	for _, src := range sources {
		name := strings.TrimSpace(src.Name)
		if name == "" {
			return Catalog{}, errors.New("category name must not be empty")
		}
		if strings.EqualFold(name, AllCategory) {
			return Catalog{}, fmt.Errorf("category name %q is reserved", name)
		}

		entries := make([]Entry, 0, len(src.Commands))
		for label, cmd := range src.Commands {
			entries = append(entries, Entry{Label: label, Command: cmd})
		}
		sortEntries(entries)

		for _, e := range entries {
			prev, ok := seen[e.Label]
			if !ok {
				seen[e.Label] = e.Command
				owner[e.Label] = name
				all = append(all, e)
				continue
			}
			if prev != e.Command {
				return Catalog{}, fmt.Errorf("%w %q: %q in %s, %q in %s", ErrDuplicateLabel, e.Label, prev, owner[e.Label], e.Command, name)
			}
		}
		cats = append(cats, Category{Name: name, Entries: entries})
	}

	sortEntries(all)
	cats[0].Entries = all

	infoCopy := make(map[string][]string, len(info))
	for label, lines := range info {
		infoCopy[label] = append([]string(nil), lines...)
	}
	return Catalog{Categories: cats, info: infoCopy}, nil
}

// Len returns the category count, including "All".
func (c Catalog) Len() int {
	return len(c.Categories)
}

// Category returns the category at idx; ok is false when idx is out of range.
func (c Catalog) Category(idx int) (Category, bool) {
	if idx < 0 || idx >= len(c.Categories) {
		return Category{}, false
	}
	return c.Categories[idx], true
}

// Info returns the extra description lines for a label, if any.
func (c Catalog) Info(label string) []string {
	return c.info[label]
}

// Lookup finds an entry by label in the "All" category.
func (c Catalog) Lookup(label string) (Entry, bool) {
	if len(c.Categories) == 0 {
		return Entry{}, false
	}
	all := c.Categories[0].Entries
	i := sort.Search(len(all), func(i int) bool { return all[i].Label >= label })
	if i < len(all) && all[i].Label == label {
		return all[i], true
	}
	return Entry{}, false
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Label != entries[j].Label {
			return entries[i].Label < entries[j].Label
		}
		return entries[i].Command < entries[j].Command
	})
}
