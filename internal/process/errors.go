package process

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommand means the command line has no executable token.
	ErrInvalidCommand = errors.New("invalid command: no executable")
	// ErrAlreadyStarted is returned when Start or Piped is called on a started handle.
	ErrAlreadyStarted = errors.New("process already started")
	// ErrConfirmationTimeout means the OS never reported the child as running.
	ErrConfirmationTimeout = errors.New("process not observed running before timeout")
)

// SpawnError reports a failed launch of a labelled command.
type SpawnError struct {
	Label   string
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn %s (%s): %v", e.Label, e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
