package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"launchbox/internal/app"
)

func init() {
	rootCmd.AddCommand(cmdExec)
}

var cmdExec = &cobra.Command{
	Use:   "exec <label>",
	Short: "Run a catalog entry attached to this terminal's streams",
	Long:  "Runs the command with stdin, stdout and stderr piped through launchbox and returns once it exits. The process is not tracked.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := controllerFactory()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return controller.Exec(ctx, app.ExecParams{
			Label:  args[0],
			Stdin:  os.Stdin,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})
	},
}
