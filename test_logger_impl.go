package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/adventkit/adventkit/framework"
)

// ConsoleTestLogger prints the progress of a test run.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool

	out     io.Writer
	errors  *color.Color
	infos   *color.Color
	skipped *color.Color
}

func NewConsoleTestLogger(out io.Writer, useColor bool) *ConsoleTestLogger {
	c := &ConsoleTestLogger{
		out:     out,
		errors:  color.New(color.FgRed),
		infos:   color.New(color.FgCyan),
		skipped: color.New(color.FgYellow),
	}
	for _, cc := range []*color.Color{c.errors, c.infos, c.skipped} {
		if useColor {
			cc.EnableColor()
		} else {
			cc.DisableColor()
		}
	}
	return c
}

// isTerminal reports whether w is a terminal that can show colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.out, "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		c.errors.Fprintf(c.out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestInfo(id framework.TestID, message string) {
	for _, line := range strings.Split(message, "\n") {
		c.infos.Fprintf(c.out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		c.errors.Fprintf(c.out, "  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		c.skipped.Fprintf(c.out, "  SKIPPED: %s\n", id)
	} else {
		c.skipped.Fprintf(c.out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}
