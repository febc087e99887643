package registry

import (
	"errors"
	"log"
	"sort"
	"sync"

	"launchbox/internal/process"
)

// ErrAlreadyRunning is returned by Launch when the label is already tracked.
var ErrAlreadyRunning = errors.New("already running")

// Handle is the subset of process.Handle the registry depends on.
type Handle interface {
	Start() error
	Alive() bool
	Kill()
	PID() int
}

// Factory builds an unstarted handle for a catalog entry.
type Factory func(label, command, dir string) (Handle, error)

// Registry tracks live processes keyed by catalog label. Every entry has been
// started; anything present was alive as of the last ReapDead.
type Registry struct {
	mu      sync.RWMutex
	byLabel map[string]*tracked
	factory Factory
}

type tracked struct {
	handle Handle
	proc   Proc
}

// New returns an empty registry that spawns real OS processes.
func New(opts ...process.Option) *Registry {
	return NewWithFactory(func(label, command, dir string) (Handle, error) {
		return process.New(label, command, dir, opts...)
	})
}

// NewWithFactory returns an empty registry using factory to build handles.
func NewWithFactory(factory Factory) *Registry {
	return &Registry{
		byLabel: make(map[string]*tracked),
		factory: factory,
	}
}

// Launch starts command under label. A label that is already tracked is left
// untouched and ErrAlreadyRunning is returned; a failed start leaves the
// registry unchanged.
func (r *Registry) Launch(label, command, dir string) error {
	r.mu.RLock()
	_, exists := r.byLabel[label]
	r.mu.RUnlock()
	if exists {
		return ErrAlreadyRunning
	}

	h, err := r.factory(label, command, dir)
	if err != nil {
		return err
	}
	if err := h.Start(); err != nil {
		return err
	}

	t := &tracked{
		handle: h,
		proc:   Proc{Label: label, Cmd: command, PID: h.PID()},
	}
	if ph, ok := h.(*process.Handle); ok {
		t.proc.ID = ph.ID
		t.proc.StartedAt = ph.StartedAt()
	}

	r.mu.Lock()
	if _, raced := r.byLabel[label]; raced {
		r.mu.Unlock()
		h.Kill()
		return ErrAlreadyRunning
	}
	r.byLabel[label] = t
	r.mu.Unlock()

	log.Printf("registry: tracking %s pid=%d", label, t.proc.PID)
	return nil
}

// Kill terminates and forgets the process tracked under label. Unknown labels
// are ignored.
func (r *Registry) Kill(label string) {
	r.mu.Lock()
	t := r.byLabel[label]
	delete(r.byLabel, label)
	r.mu.Unlock()

	if t == nil {
		return
	}
	t.handle.Kill()
	log.Printf("registry: killed %s pid=%d", label, t.proc.PID)
}

// ReapDead kills and forgets every handle the OS no longer reports alive and
// returns the reaped labels, sorted.
func (r *Registry) ReapDead() []string {
	r.mu.Lock()
	var dead []*tracked
	for label, t := range r.byLabel {
		if t.handle.Alive() {
			continue
		}
		dead = append(dead, t)
		delete(r.byLabel, label)
	}
	r.mu.Unlock()

	if len(dead) == 0 {
		return nil
	}
	labels := make([]string, 0, len(dead))
	for _, t := range dead {
		t.handle.Kill()
		labels = append(labels, t.proc.Label)
		log.Printf("registry: reaped %s pid=%d", t.proc.Label, t.proc.PID)
	}
	sort.Strings(labels)
	return labels
}

// IsRunning reports whether label is tracked. It does not query the OS.
func (r *Registry) IsRunning(label string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byLabel[label]
	return ok
}

// Get returns a copy of the tracked process for label.
func (r *Registry) Get(label string) (Proc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t := r.byLabel[label]
	if t == nil {
		return Proc{}, false
	}
	return t.proc, true
}

// List returns every tracked process, sorted by label.
func (r *Registry) List() []Proc {
	r.mu.RLock()
	out := make([]Proc, 0, len(r.byLabel))
	for _, t := range r.byLabel {
		out = append(out, t.proc)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Len returns the number of tracked processes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byLabel)
}
