package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const programName = "adventkit"

func main() {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if message := err.Error(); message != "" {
			fmt.Fprintln(os.Stderr, message)
		}
		os.Exit(exitCode(err))
	}
}

// rootOptions holds flags shared by all commands.
type rootOptions struct {
	configPath string
	resources  string
	stderr     io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stderr: stderr}

	cmd := &cobra.Command{
		Use:           programName,
		Short:         "Run and manage Advent of Code solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default "+configFileHint+")")
	cmd.PersistentFlags().StringVar(&opts.resources, "resources", "",
		"fixture directory or .txtar archive, overriding the config")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newFetchCommand(opts))
	return cmd
}
