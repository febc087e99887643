package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"launchbox/internal/process"
)

// ExecParams configures a piped run of one catalog entry.
type ExecParams struct {
	Label  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Exec runs label with its standard streams piped through params and waits
// for it to exit. Cancelling ctx kills the process. The registry is not
// involved.
func (a *App) Exec(ctx context.Context, params ExecParams) error {
	entry, ok := a.cat.Lookup(params.Label)
	if !ok {
		return fmt.Errorf("unknown label %q", params.Label)
	}

	h, err := process.New(entry.Label, entry.Command, a.cfg.Dir,
		process.WithStartTimeout(a.cfg.StartTimeout),
		process.WithPollInterval(a.cfg.PollInterval),
	)
	if err != nil {
		return err
	}
	stdin, stdout, stderr, err := h.Piped()
	if err != nil {
		return err
	}
	if err := h.Start(); err != nil {
		return err
	}

	if params.Stdin != nil {
		go func() {
			_, _ = io.Copy(stdin, params.Stdin)
			_ = stdin.Close()
		}()
	} else {
		_ = stdin.Close()
	}

	var wg sync.WaitGroup
	pump := func(dst io.Writer, src io.Reader) {
		defer wg.Done()
		if dst == nil {
			dst = io.Discard
		}
		_, _ = io.Copy(dst, src)
	}
	wg.Add(2)
	go pump(params.Stdout, stdout)
	go pump(params.Stderr, stderr)

	drained := make(chan struct{})
	go func() {
		wg.Wait()
		close(drained)
	}()

	select {
	case <-ctx.Done():
		h.Kill()
		<-drained
		return ctx.Err()
	case <-drained:
	}
	if err := h.Wait(); err != nil {
		return fmt.Errorf("%s: %w", entry.Label, err)
	}
	return nil
}
