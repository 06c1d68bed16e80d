package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/adventkit/adventkit/adventtest"
	"github.com/adventkit/adventkit/framework"
	"github.com/adventkit/adventkit/solutions"
)

type runOptions struct {
	*rootOptions
	filters       framework.RegexFilters
	skipExpensive bool
	report        string
	debug         bool
	debugAll      bool
	color         string
}

func newRunCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [IDs...]",
		Short: "Run the tests of all or some days",
		Long: `Run the fixture and example tests of the registered days.

Days are selected by ID, as in Y2015D01; with no IDs every day is run. Tests can be
selected further with --run and --skip, which take slash-separated regular expressions
matched against each level of the test path, like the flags of go test.

Exit codes:
  0 - All tests passed
  1 - One or more tests failed
  2 - Command error`,
		Example: `  adventkit run
  adventkit run Y2015D01 --run 'Part Two'
  adventkit run --skip-expensive --report results.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args, cmd.OutOrStdout())
		},
	}

	addFilterFlags(cmd.Flags(), &opts.filters)
	cmd.Flags().BoolVar(&opts.skipExpensive, "skip-expensive", false, "skip days marked as expensive")
	cmd.Flags().StringVar(&opts.report, "report", "", "write a JSON report of the results to this file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "show debug output of failed tests")
	cmd.Flags().BoolVar(&opts.debugAll, "debug-all", false, "show debug output of all tests")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "colorize output (auto|always|never)")
	return cmd
}

func runTests(opts *runOptions, args []string, out io.Writer) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if opts.skipExpensive {
		cfg.SkipExpensive = true
	}
	if opts.debugAll {
		cfg.Log.Level = "debug"
	}
	logger, err := opts.newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	useColor, err := colorMode(opts.color, out)
	if err != nil {
		return err
	}
	ids, err := parseProblemIDs(args)
	if err != nil {
		return err
	}
	fixtures, err := openFixtures(cfg.ResourceDir, logger)
	if err != nil {
		return err
	}
	suites, err := solutions.Suites(adventtest.Options{
		Fixtures:         fixtures,
		DefaultTimeout:   cfg.DefaultTimeout,
		ExpensiveTimeout: cfg.ExpensiveTimeout,
		SkipExpensive:    cfg.SkipExpensive,
	}, ids...)
	if err != nil {
		return commandError("invalid day", err)
	}

	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, opts.filters)
	fmt.Fprintln(out, "Running tests")

	testLogger := NewConsoleTestLogger(out, useColor)
	testLogger.DebugOutputOnFailure = opts.debug || opts.debugAll
	testLogger.DebugOutputOnSuccess = opts.debugAll

	results := framework.Run(opts.filters.AsFilter, testLogger, func(c *framework.Context) {
		for _, suite := range suites {
			suite.Register(c)
		}
	})

	fmt.Fprintln(out)
	framework.PrintResults(out, results)

	if opts.report != "" {
		if err := writeReportFile(opts.report, results); err != nil {
			return commandError("could not write report", err)
		}
		logger.Debugf("Wrote report to %s", opts.report)
	}

	if !results.OK() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To re-run failed tests:")
		fmt.Fprintln(out, rerunCommand(opts, results.LeafFailures()))
		return &ExitError{Code: ExitFailure}
	}
	return nil
}

func colorMode(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "auto":
		return isTerminal(out), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, commandError(fmt.Sprintf("invalid color mode %q: must be auto, always or never", mode), nil)
	}
}
