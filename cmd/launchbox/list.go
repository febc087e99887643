package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"launchbox/internal/app"
)

var listCategory string

func init() {
	rootCmd.AddCommand(cmdList)
	cmdList.Flags().StringVar(&listCategory, "category", "", "Only show this category")
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog grouped by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := controllerFactory()
		if err != nil {
			return err
		}
		listings, err := controller.List(app.ListParams{Category: listCategory})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, l := range listings {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "[%s]\n", l.Category)
			if len(l.Entries) == 0 {
				fmt.Fprintln(out, "  (empty)")
				continue
			}
			for _, e := range l.Entries {
				fmt.Fprintf(out, "  %s = %s\n", e.Label, e.Command)
				if len(e.Info) > 0 {
					fmt.Fprintf(out, "    %s\n", strings.Join(e.Info, " "))
				}
			}
		}
		return nil
	},
}
