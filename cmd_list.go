package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adventkit/adventkit/solutions"
)

func newListCommand(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, e := range solutions.All() {
				info := e.Day.Info()
				suffix := ""
				if info.IsExpensive() {
					suffix = " (expensive)"
				}
				fmt.Fprintf(out, "%s  %s%s\n", info.ID, info.Title, suffix)
			}
			return nil
		},
	}
}
