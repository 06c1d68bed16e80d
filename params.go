package main

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/spf13/pflag"

	"github.com/adventkit/adventkit/advent"
	"github.com/adventkit/adventkit/config"
	"github.com/adventkit/adventkit/fixture"
	"github.com/adventkit/adventkit/framework"
	"github.com/adventkit/adventkit/logging"
)

const configFileHint = config.DefaultFile

// loadConfig reads the configuration and applies the command line overrides.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, commandError("invalid configuration", err)
	}
	if o.resources != "" {
		cfg.ResourceDir = o.resources
	}
	return cfg, nil
}

func (o *rootOptions) newLogger(cfg config.Config) (*logging.Logger, error) {
	logger, err := logging.New(cfg.Log, o.stderr)
	if err != nil {
		return nil, commandError("invalid log configuration", err)
	}
	return logger, nil
}

// resolveResourceDir finds the fixture directory named in the configuration, looking in the
// working directory and its parents. If there is none, it returns location unchanged.
func resolveResourceDir(location string) (string, bool, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false, err
	}
	dir, err := fixture.FindResourceDir(wd, location)
	if errors.Is(err, fs.ErrNotExist) {
		return location, false, nil
	}
	if err != nil {
		return "", false, err
	}
	return dir, true, nil
}

// openFixtures opens the fixture store at location. A missing directory is not an error: every
// fixture is then empty and the fixture tests are skipped.
func openFixtures(location string, logger *logging.Logger) (*fixture.Cache, error) {
	if strings.HasSuffix(location, ".txtar") {
		store, err := fixture.OpenStore(location)
		if err != nil {
			return nil, commandError("could not open fixtures", err)
		}
		return fixture.NewCache(store), nil
	}
	dir, found, err := resolveResourceDir(location)
	if err != nil {
		return nil, commandError("could not open fixtures", err)
	}
	logger = logger.With("resources", location)
	if !found {
		logger.Warnf("No fixture directory %s found; fixture tests will be skipped", location)
		return fixture.NewCache(nil), nil
	}
	logger.Debugf("Using fixtures in %s", dir)
	return fixture.NewCache(fixture.NewDirStore(dir)), nil
}

func parseProblemIDs(args []string) ([]advent.ProblemID, error) {
	ids := make([]advent.ProblemID, 0, len(args))
	for _, arg := range args {
		id, err := advent.ParseProblemID(arg)
		if err != nil {
			return nil, commandError("invalid day", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func addFilterFlags(flags *pflag.FlagSet, filters *framework.RegexFilters) {
	flags.Var(&filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	flags.Var(&filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that runs exactly the given tests again.
func rerunCommand(opts *runOptions, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(programName, "run")
	if opts.configPath != "" {
		b.add("--config", opts.configPath)
	}
	if opts.resources != "" {
		b.add("--resources", opts.resources)
	}
	for _, f := range failures {
		b.add("--run", exactPattern(f.TestID))
	}
	if opts.debug {
		b.add("--debug")
	}
	return b.String()
}

// exactPattern is a --run pattern that selects only the given test and its subtests.
func exactPattern(id framework.TestID) string {
	levels := make([]string, 0, len(id.Path))
	for _, name := range id.Path {
		levels = append(levels, "^"+regexp.QuoteMeta(name)+"$")
	}
	return strings.Join(levels, "/")
}
