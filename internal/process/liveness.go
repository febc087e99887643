package process

// procStatus is the coarse OS view of a pid.
type procStatus int

const (
	// procGone covers "no such process", zombies and dead tasks.
	procGone procStatus = iota
	// procStopped is a job-control stop; the process may still resume.
	procStopped
	procRunning
)

// observe is the platform liveness check. Tests replace it to simulate
// states a real child cannot be held in.
var observe = observeProcess
