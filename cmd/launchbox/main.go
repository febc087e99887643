package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"launchbox/internal/app"
	"launchbox/internal/tui"
)

var configPath string

// controllerAPI is the part of app.App the commands use.
type controllerAPI interface {
	tui.Controller
	List(params app.ListParams) ([]app.Listing, error)
	Start(ctx context.Context, params app.StartParams) (app.StartResult, error)
	Exec(ctx context.Context, params app.ExecParams) error
}

var controllerFactory = func() (controllerAPI, error) {
	return app.New(app.Options{ConfigPath: configPath})
}

var rootCmd = &cobra.Command{
	Use:   "launchbox [command]",
	Short: "launchbox: terminal launcher for project commands",
	Long: `launchbox reads the nearest .launchbox file and offers its commands in a
terminal menu. Launched commands run detached and keep running after exit.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a .launchbox file (default: search upwards)")
}

// commandContext returns the command's context, or Background when RunE is
// called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
