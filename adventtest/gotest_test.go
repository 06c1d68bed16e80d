package adventtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventkit/adventkit/advent"
)

func TestRunWithOptionsMirrorsSubtests(t *testing.T) {
	options := Options{Fixtures: fixtures(map[string]string{
		"input.txt":          "1,2,3",
		"solution_part1.txt": "6",
	})}

	var ran bool
	t.Run("suite", func(t *testing.T) {
		RunWithOptions(t, summingDay, options, func(s *Spec) {
			s.PartOne(func(e *Examples) {
				e.ShouldOutput("1", 1)
				e.ShouldNotBeValidInput("word")
			})
			s.XPartTwo(nil)
		})
		ran = true
	})
	assert.True(t, ran)
}

func TestRunWithOptionsSkipsExpensiveDays(t *testing.T) {
	day := fakeDay{cost: advent.Expensive}
	var skipped bool
	t.Run("expensive", func(t *testing.T) {
		defer func() { skipped = t.Skipped() }()
		RunWithOptions(t, day, Options{SkipExpensive: true}, func(s *Spec) { s.PartOne(nil) })
	})
	assert.True(t, skipped)
}

func TestOpenDefaultFixtures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "y9000", "d01"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "y9000", "d01", "input.txt"), []byte("5\n"), 0o644))
	t.Setenv(ResourcesEnv, dir)

	cache, err := openDefaultFixtures()
	require.NoError(t, err)
	f, err := cache.Get(testID)
	require.NoError(t, err)
	require.True(t, f.HasInput())
	assert.Equal(t, "5", *f.Input)

	t.Setenv(ResourcesEnv, filepath.Join(dir, "missing"))
	_, err = openDefaultFixtures()
	assert.Error(t, err)
}
