package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchbox/internal/tui"
)

func init() {
	rootCmd.AddCommand(cmdTUI)
}

var cmdTUI = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	controller, err := controllerFactory()
	if err != nil {
		return err
	}
	if err := tui.Run(controller); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
