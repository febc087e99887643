package process

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultStartTimeout bounds how long Start waits for the child to be observed running.
	DefaultStartTimeout = 2 * time.Second
	// DefaultPollInterval is the sleep between liveness probes inside Start.
	DefaultPollInterval = 5 * time.Millisecond
)

// State is the lifecycle stage of a handle. It is derived on demand.
type State int

const (
	StateNotStarted State = iota
	StateStarting
	StateRunning
	StateExited
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Option tweaks handle behaviour.
type Option func(*options)

type options struct {
	startTimeout time.Duration
	pollInterval time.Duration
}

// WithStartTimeout overrides DefaultStartTimeout. Non-positive values are ignored.
func WithStartTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.startTimeout = d
		}
	}
}

// WithPollInterval overrides DefaultPollInterval. Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.pollInterval = d
		}
	}
}

// Handle owns exactly one spawned OS process.
type Handle struct {
	ID      string
	Label   string
	Command string
	Dir     string

	opts options

	mu        sync.Mutex
	cmd       *exec.Cmd
	pid       int
	startedAt time.Time
	starting  bool
	killed    bool

	waitOnce sync.Once
	done     chan struct{}
	waitErr  error
}

// New parses command by splitting on single spaces: the first token is the
// executable and every other token is passed verbatim as an argument. No
// quoting or expansion is performed. Nothing is spawned until Start.
func New(label, command, dir string, opts ...Option) (*Handle, error) {
	tokens := strings.Split(command, " ")
	if len(tokens) == 0 || tokens[0] == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, command)
	}

	o := options{startTimeout: DefaultStartTimeout, pollInterval: DefaultPollInterval}
	for _, opt := range opts {
		opt(&o)
	}

	cmd := exec.Command(tokens[0], tokens[1:]...)
	cmd.Dir = dir
	// Stdin, Stdout and Stderr stay nil: exec binds them to the null device.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	return &Handle{
		ID:      uuid.NewString(),
		Label:   label,
		Command: command,
		Dir:     dir,
		opts:    o,
		cmd:     cmd,
		done:    make(chan struct{}),
	}, nil
}

// Piped attaches pipes to the child's standard streams. It must be called
// before Start. The interactive loop never uses it.
func (h *Handle) Piped() (io.WriteCloser, io.ReadCloser, io.ReadCloser, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cmd.Process != nil {
		return nil, nil, nil, ErrAlreadyStarted
	}
	stdin, err := h.cmd.StdinPipe()
	if err != nil {
		return nil, nil, nil, err
	}
	stdout, err := h.cmd.StdoutPipe()
	if err != nil {
		return nil, nil, nil, err
	}
	stderr, err := h.cmd.StderrPipe()
	if err != nil {
		return nil, nil, nil, err
	}
	return stdin, stdout, stderr, nil
}

// Start spawns the process and blocks until the OS reports it running, the
// process has already exited, or the start timeout elapses.
func (h *Handle) Start() error {
	h.mu.Lock()
	if h.cmd.Process != nil {
		h.mu.Unlock()
		return ErrAlreadyStarted
	}
	if err := h.cmd.Start(); err != nil {
		h.mu.Unlock()
		log.Printf("launch %s [%s] failed: %v", h.Label, h.ID, err)
		return &SpawnError{Label: h.Label, Command: h.Command, Err: err}
	}
	h.pid = h.cmd.Process.Pid
	h.startedAt = time.Now()
	h.starting = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.starting = false
		h.mu.Unlock()
	}()

	deadline := time.Now().Add(h.opts.startTimeout)
	for {
		switch observe(h.pid) {
		case procRunning:
			log.Printf("launch %s [%s] pid=%d running", h.Label, h.ID, h.pid)
			return nil
		case procGone:
			log.Printf("launch %s [%s] pid=%d exited before confirmation", h.Label, h.ID, h.pid)
			return nil
		}
		if time.Now().After(deadline) {
			log.Printf("launch %s [%s] pid=%d not running after %s", h.Label, h.ID, h.pid, h.opts.startTimeout)
			h.Kill()
			return &SpawnError{Label: h.Label, Command: h.Command, Err: ErrConfirmationTimeout}
		}
		time.Sleep(h.opts.pollInterval)
	}
}

// Alive reports whether the OS considers the process running. It never
// blocks on the child and never sends it a signal.
func (h *Handle) Alive() bool {
	pid := h.PID()
	if pid <= 0 {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
	}
	return observe(pid) == procRunning
}

// Kill sends SIGKILL and releases the process table entry in the background.
// Delivery failures are ignored.
func (h *Handle) Kill() {
	h.mu.Lock()
	if h.cmd.Process == nil || h.killed {
		h.mu.Unlock()
		return
	}
	h.killed = true
	proc := h.cmd.Process
	h.mu.Unlock()

	if err := proc.Kill(); err != nil {
		log.Printf("kill %s [%s] pid=%d: %v", h.Label, h.ID, h.pid, err)
	}
	go h.reap()
}

// Wait blocks until the process exits. Only foreground callers should use it.
func (h *Handle) Wait() error {
	if h.PID() <= 0 {
		return nil
	}
	h.reap()
	return h.waitErr
}

func (h *Handle) reap() {
	h.waitOnce.Do(func() {
		h.waitErr = h.cmd.Wait()
		close(h.done)
	})
}

// PID returns the OS process id, or 0 before Start.
func (h *Handle) PID() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pid
}

// StartedAt returns when the process was spawned.
func (h *Handle) StartedAt() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.startedAt
}

// State derives the lifecycle stage from OS state.
func (h *Handle) State() State {
	h.mu.Lock()
	pid, starting := h.pid, h.starting
	h.mu.Unlock()
	switch {
	case pid == 0:
		return StateNotStarted
	case starting:
		return StateStarting
	case h.Alive():
		return StateRunning
	default:
		return StateExited
	}
}
