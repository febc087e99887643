package session

import (
	"context"
	"log"
	"time"
)

// Input yields at most one decoded action per poll. ok is false when no
// input is pending; that is a normal frame, not an error.
type Input interface {
	Poll() (a Action, ok bool)
}

// Renderer draws one frame.
type Renderer interface {
	Render(View) error
}

// Run drives the frame loop until Quit, a render error, or ctx is done. Each
// frame reaps, renders, polls at most one input and dispatches it. Frames are
// paced by interval. Launch failures are passed to onError and the loop
// continues.
func (s *Session) Run(ctx context.Context, interval time.Duration, in Input, out Renderer, onError func(error)) error {
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := out.Render(s.Frame()); err != nil {
			return err
		}
		if a, ok := in.Poll(); ok {
			quit, err := s.Apply(a)
			if err != nil {
				log.Printf("session: %s failed: %v", a, err)
				if onError != nil {
					onError(err)
				}
			}
			if quit {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
