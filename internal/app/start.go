package app

import (
	"context"
	"fmt"
	"time"

	"launchbox/internal/registry"
)

// StartParams configures a foreground launch of one catalog entry.
type StartParams struct {
	Label string
	// Poll is the liveness check period; the frame interval is used when zero.
	Poll time.Duration
	// OnStarted is called once the process is confirmed running.
	OnStarted func(registry.Proc)
}

// StartResult describes how a foreground launch ended.
type StartResult struct {
	Proc    registry.Proc
	Killed  bool
	Elapsed time.Duration
}

// Start launches label detached from the terminal and watches it until it
// exits or ctx is cancelled, in which case the process is killed.
func (a *App) Start(ctx context.Context, params StartParams) (StartResult, error) {
	var result StartResult

	entry, ok := a.cat.Lookup(params.Label)
	if !ok {
		return result, fmt.Errorf("unknown label %q", params.Label)
	}
	if err := a.reg.Launch(entry.Label, entry.Command, a.cfg.Dir); err != nil {
		return result, err
	}
	result.Proc, _ = a.reg.Get(entry.Label)
	if params.OnStarted != nil {
		params.OnStarted(result.Proc)
	}

	poll := params.Poll
	if poll <= 0 {
		poll = a.cfg.FrameInterval
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	began := time.Now()
	for {
		select {
		case <-ctx.Done():
			a.reg.Kill(entry.Label)
			result.Killed = true
			result.Elapsed = time.Since(began)
			return result, nil
		case <-ticker.C:
			a.reg.ReapDead()
			if !a.reg.IsRunning(entry.Label) {
				result.Elapsed = time.Since(began)
				return result, nil
			}
		}
	}
}
