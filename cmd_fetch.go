package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adventkit/adventkit/fetch"
)

type fetchOptions struct {
	*rootOptions
	force bool
}

func newFetchCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &fetchOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fetch ID...",
		Short: "Download puzzle inputs into the fixture directory",
		Long: `Download the puzzle inputs of the given days into the fixture directory.

Inputs differ between users, so a session cookie must be configured, either as
fetch.session in the config file or in the ADVENTKIT_SESSION environment variable.`,
		Example: "  adventkit fetch Y2015D01 Y2015D02",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchInputs(opts, cmd, args)
		},
	}
	cmd.Flags().BoolVar(&opts.force, "force", false, "replace inputs that were already downloaded")
	return cmd
}

func fetchInputs(opts *fetchOptions, cmd *cobra.Command, args []string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger, err := opts.newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ids, err := parseProblemIDs(args)
	if err != nil {
		return err
	}
	dir, _, err := resolveResourceDir(cfg.ResourceDir)
	if err != nil {
		return commandError("could not find fixture directory", err)
	}

	for _, id := range ids {
		client := fetch.NewClient(cfg.Fetch, logger.With("day", id.String()))
		path, err := client.Download(cmd.Context(), id, dir, opts.force)
		switch {
		case errors.Is(err, fetch.ErrExists):
			fmt.Fprintf(cmd.OutOrStdout(), "%s already downloaded to %s (use --force to replace it)\n", id, path)
		case errors.Is(err, fetch.ErrNoSession):
			return commandError("cannot download inputs", err)
		case err != nil:
			return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("could not download %s", id), Err: err}
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "Saved input of %s to %s\n", id, path)
		}
	}
	return nil
}
