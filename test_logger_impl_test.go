package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adventkit/adventkit/framework"
)

func TestConsoleTestLoggerGolden(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleTestLogger(&buf, false)
	logger.DebugOutputOnFailure = true

	started := time.Date(2015, 12, 1, 0, 0, 0, 0, time.UTC)
	debugOutput := framework.CapturedOutput{
		{Time: started, Message: "running part one"},
		{Time: started.Add(1500 * time.Millisecond), Message: "done"},
	}

	solution := testID("Y9000D01 Example Day", "Part One", "Outputs a solution")
	logger.TestStarted(solution)
	logger.TestInfo(solution, "Your answer was:\n#.\n.#")
	logger.TestError(solution, errors.New("Correct solution was: 7\nexpected: \"7\""))
	logger.TestFinished(solution, true, debugOutput)

	examples := testID("Y9000D01 Example Day", "Part One", "Validates the examples")
	logger.TestStarted(examples)
	logger.TestFinished(examples, false, debugOutput)

	partTwo := testID("Y9000D01 Example Day", "Part Two")
	logger.TestStarted(partTwo)
	logger.TestSkipped(partTwo, "disabled")

	day := testID("Y2015D25 Let It Snow")
	logger.TestStarted(day)
	logger.TestSkipped(day, "")

	newGoldie(t).Assert(t, "console", buf.Bytes())
}

func TestConsoleTestLoggerDebugOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleTestLogger(&buf, false)
	logger.DebugOutputOnSuccess = true

	logger.TestFinished(testID("a"), false, framework.CapturedOutput{{Time: time.Now(), Message: "hello"}})
	assert.Contains(t, buf.String(), "    DEBUG [")
	assert.True(t, strings.HasSuffix(buf.String(), "] hello\n"))

	buf.Reset()
	logger.TestFinished(testID("a"), true, framework.CapturedOutput{{Time: time.Now(), Message: "hello"}})
	assert.Equal(t, "  FAILED: a\n", buf.String())
}

func TestConsoleTestLoggerColors(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleTestLogger(&buf, true)
	logger.TestError(testID("a"), errors.New("bad"))
	assert.Contains(t, buf.String(), "\x1b[31m")
	assert.Contains(t, buf.String(), "bad")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, isTerminal(nil))
}

func TestColorMode(t *testing.T) {
	useColor, err := colorMode("always", &bytes.Buffer{})
	assert.NoError(t, err)
	assert.True(t, useColor)

	useColor, err = colorMode("auto", &bytes.Buffer{})
	assert.NoError(t, err)
	assert.False(t, useColor)

	_, err = colorMode("sometimes", &bytes.Buffer{})
	assert.Equal(t, ExitCommandError, exitCode(err))
}
