package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"launchbox/internal/app"
	"launchbox/internal/registry"
)

var startQuiet bool

func init() {
	rootCmd.AddCommand(cmdStart)
	cmdStart.Flags().BoolVarP(&startQuiet, "quiet", "q", false, "Do not show the progress spinner")
}

// `launchbox start <label>` runs one entry detached and waits for it.
// SIGINT or SIGTERM kills the process before returning.
var cmdStart = &cobra.Command{
	Use:   "start <label>",
	Short: "Launch a catalog entry and wait until it exits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := controllerFactory()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		var spin *spinner.Spinner
		res, err := controller.Start(ctx, app.StartParams{
			Label: args[0],
			OnStarted: func(p registry.Proc) {
				fmt.Fprintf(out, "Started %s pid=%d\n", p.Label, p.PID)
				if startQuiet {
					return
				}
				spin = spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(os.Stderr))
				spin.Suffix = " Running " + p.Label + "..."
				spin.Start()
			},
		})
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return err
		}
		if res.Killed {
			fmt.Fprintf(out, "Killed %s after %s\n", res.Proc.Label, res.Elapsed.Truncate(time.Millisecond))
			return nil
		}
		fmt.Fprintf(out, "%s exited after %s\n", res.Proc.Label, res.Elapsed.Truncate(time.Millisecond))
		return nil
	},
}
