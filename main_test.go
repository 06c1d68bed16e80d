package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventkit/adventkit/config"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{config.EnvResources, config.EnvSession, config.EnvSkipExpensive} {
		t.Setenv(name, "")
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	clearEnv(t)
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Y2015D01  Not Quite Lisp\n")
	assert.Contains(t, out, "Y2015D04  The Ideal Stocking Stuffer (expensive)\n")
	assert.Contains(t, out, "Y9000D01  Example Day\n")
}

func TestRunPasses(t *testing.T) {
	out, _, err := execute(t, "run", "Y9000D01", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, exitCode(err))
	assert.Contains(t, out, "[Y9000D01 Example Day/Part One/Outputs a solution]\n  Your answer was: 44\n")
	assert.Contains(t, out, "[Y9000D01 Example Day/Part Two/Outputs a solution]\n  Your answer was: 4\n")
	assert.Contains(t, out, `[Y9000D01 Example Day/Part One/Validates the examples/#4 "word" is rejected]`)
	assert.Contains(t, out, "All tests passed (")
	assert.NotContains(t, out, "FAILED")
}

func TestRunFailsAndSuggestsRerun(t *testing.T) {
	resources := t.TempDir()
	writeFixture(t, resources, "y9000/d01/input.txt", "1,2,3\n")
	writeFixture(t, resources, "y9000/d01/solution_part1.txt", "7\n")
	report := filepath.Join(t.TempDir(), "report.json")

	out, _, err := execute(t, "run", "y9000d1", "--resources", resources, "--color", "never", "--report", report)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, exitCode(err))
	assert.Empty(t, err.Error())

	assert.Contains(t, out, "  FAILED: Y9000D01 Example Day/Part One/Outputs a solution\n")
	assert.Contains(t, out, "FAILED TESTS (")
	assert.Contains(t, out, "* Y9000D01 Example Day/Part One/Outputs a solution\n")
	assert.Contains(t, out, "To re-run failed tests:\n")
	assert.Contains(t, out, "adventkit run --resources "+resources+
		" --run '^Y9000D01 Example Day$/^Part One$/^Outputs a solution$'")

	parsed := readReport(t, report)
	assert.False(t, parsed.OK)
	var found bool
	for _, entry := range parsed.Tests {
		if entry.ID == "Y9000D01 Example Day/Part One/Outputs a solution" {
			found = true
			assert.Equal(t, "failed", entry.Status)
			assert.NotEmpty(t, entry.Errors)
			assert.NotNil(t, entry.DurationMS)
		}
	}
	assert.True(t, found)
}

func TestRunWithFilters(t *testing.T) {
	out, _, err := execute(t, "run", "Y9000D01", "--color", "never",
		"--run", "Y9000D01/Part One", "--skip", "Y9000D01/Part One/Validates")
	require.NoError(t, err)
	assert.Contains(t, out, "Some tests will be skipped based on the filter criteria for this test run:")
	assert.Contains(t, out, "  SKIPPED: Y9000D01 Example Day/Part Two (excluded by filter parameters)")
	assert.Contains(t, out, "  SKIPPED: Y9000D01 Example Day/Part One/Validates the examples (excluded by filter parameters)")
}

func TestRunWithoutFixtures(t *testing.T) {
	out, stderr, err := execute(t, "run", "Y9000D01", "--color", "never",
		"--resources", filepath.Join(t.TempDir(), "nothing-here"))
	require.NoError(t, err)
	assert.Contains(t, out, "  SKIPPED: Y9000D01 Example Day/Part One/Outputs a solution (no input for Y9000D01)")
	assert.Contains(t, stderr, "No fixture directory")
}

func TestRunWithTxtarFixtures(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "fixtures.txtar")
	writeFixture(t, filepath.Dir(archive), "fixtures.txtar",
		"-- y9000/d01/input.txt --\n2,2\n-- y9000/d01/solution_part1.txt --\n4\n")

	out, _, err := execute(t, "run", "Y9000D01", "--color", "never", "--resources", archive)
	require.NoError(t, err)
	assert.Contains(t, out, "  Your answer was: 4\n")
	assert.Contains(t, out, "  Your (Unverified) answer was: 2\n")
}

func TestRunSkipsExpensiveDays(t *testing.T) {
	out, _, err := execute(t, "run", "Y2015D04", "--color", "never", "--skip-expensive")
	require.NoError(t, err)
	assert.Contains(t, out, "  SKIPPED: Y2015D04 The Ideal Stocking Stuffer (expensive day)")
}

func TestRunCommandErrors(t *testing.T) {
	_, _, err := execute(t, "run", "Y2014D01")
	assert.Equal(t, ExitCommandError, exitCode(err))

	_, _, err = execute(t, "run", "Y2015D02")
	assert.Equal(t, ExitCommandError, exitCode(err))
	assert.Contains(t, err.Error(), "no solution registered for Y2015D02")

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, ExitCommandError, exitCode(err))

	_, _, err = execute(t, "run", "--run", "(")
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, nil, []byte("(()\n")))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		resources := t.TempDir()
		configFile := filepath.Join(t.TempDir(), "adventkit.yaml")
		writeFixture(t, filepath.Dir(configFile), "adventkit.yaml",
			"fetch:\n  baseURL: "+server.URL+"\n  session: abc\nlog:\n  level: warn\n")

		out, _, err := execute(t, "fetch", "Y2015D01", "--config", configFile, "--resources", resources)
		require.NoError(t, err)
		path := filepath.Join(resources, "y2015", "d01", "input.txt")
		assert.Equal(t, "Saved input of Y2015D01 to "+path+"\n", out)
		assert.Equal(t, "(()\n", readFile(t, path))
		assert.Len(t, requests, 1)

		out, _, err = execute(t, "fetch", "Y2015D01", "--config", configFile, "--resources", resources)
		require.NoError(t, err)
		assert.Contains(t, out, "already downloaded")
		assert.Len(t, requests, 1)

		_, _, err = execute(t, "fetch", "Y2015D01", "--config", configFile, "--resources", resources, "--force")
		require.NoError(t, err)
		assert.Len(t, requests, 2)
	})
}

func TestFetchWithoutSession(t *testing.T) {
	_, _, err := execute(t, "fetch", "Y2015D01", "--resources", t.TempDir())
	assert.Equal(t, ExitCommandError, exitCode(err))
	assert.Contains(t, err.Error(), "no session configured")
}
