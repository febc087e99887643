package registry

import "time"

// Proc is a read-only view of one tracked process.
type Proc struct {
	ID        string
	Label     string
	Cmd       string
	PID       int
	StartedAt time.Time
}
