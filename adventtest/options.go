package adventtest

import (
	"os"
	"sync"
	"time"

	"github.com/adventkit/adventkit/advent"
	"github.com/adventkit/adventkit/fixture"
)

const (
	DefaultTimeout   = 60 * time.Second
	ExpensiveTimeout = 3600 * time.Second

	// ResourcesEnv names a fixture directory or txtar archive to use instead of searching for
	// resources/aoc above the working directory.
	ResourcesEnv = "ADVENTKIT_RESOURCES"
)

// Options control how a Suite runs.
type Options struct {
	// Fixtures provides the puzzle inputs and solutions. If nil, every fixture is empty and the
	// "Outputs a solution" tests are skipped.
	Fixtures *fixture.Cache

	// DefaultTimeout limits each invocation of a cheap day's part. Zero means DefaultTimeout.
	DefaultTimeout time.Duration

	// ExpensiveTimeout limits each invocation of an expensive day's part. Zero means
	// ExpensiveTimeout.
	ExpensiveTimeout time.Duration

	// SkipExpensive makes Register skip expensive days entirely.
	SkipExpensive bool

	// Deadline, if set, shortens the timeouts so that no part runs past it.
	Deadline time.Time
}

// minTimeout is the timeout of a part started at or after the Deadline.
const minTimeout = time.Millisecond

func (o Options) timeoutFor(info advent.Info) time.Duration {
	timeout := DefaultTimeout
	switch {
	case info.IsExpensive() && o.ExpensiveTimeout > 0:
		timeout = o.ExpensiveTimeout
	case info.IsExpensive():
		timeout = ExpensiveTimeout
	case o.DefaultTimeout > 0:
		timeout = o.DefaultTimeout
	}
	if o.Deadline.IsZero() {
		return timeout
	}
	if left := time.Until(o.Deadline); left < timeout {
		if left < minTimeout {
			return minTimeout
		}
		return left
	}
	return timeout
}

var (
	sharedFixtures     *fixture.Cache
	sharedFixturesErr  error
	sharedFixturesOnce sync.Once
)

// DefaultFixtures returns the fixture cache used by Run. Its store is the location named by
// ADVENTKIT_RESOURCES if set, or else the nearest resources/aoc directory at or above the
// working directory. If neither exists the cache has no store.
func DefaultFixtures() (*fixture.Cache, error) {
	sharedFixturesOnce.Do(func() {
		sharedFixtures, sharedFixturesErr = openDefaultFixtures()
	})
	return sharedFixtures, sharedFixturesErr
}

func openDefaultFixtures() (*fixture.Cache, error) {
	if location := os.Getenv(ResourcesEnv); location != "" {
		store, err := fixture.OpenStore(location)
		if err != nil {
			return nil, err
		}
		return fixture.NewCache(store), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	dir, err := fixture.FindResourceDir(wd, fixture.DefaultResources)
	if err != nil {
		return fixture.NewCache(nil), nil
	}
	return fixture.NewCache(fixture.NewDirStore(dir)), nil
}
