package adventtest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adventkit/adventkit/advent"
)

// ErrTimeout is matched by the error reported when a part runs past its timeout.
var ErrTimeout = errors.New("timed out")

// ErrNoAnswer is matched by the error reported when a part returns neither an answer nor an
// error.
var ErrNoAnswer = errors.New("returned no answer")

type outcome struct {
	answer   interface{}
	err      error
	duration time.Duration
}

// invoke runs one part of a day and measures how long it took. The part runs on its own
// goroutine so that invoke can stop waiting for it at the deadline; a part that times out is
// left running. A timeout of zero or less waits forever.
func invoke(day advent.Day, part advent.Part, input string, timeout time.Duration) outcome {
	done := make(chan outcome, 1)
	go func() {
		started := time.Now()
		answer, err := advent.Solve(day, part, input)
		if err == nil && answer == nil {
			err = fmt.Errorf("part %s of %s %w", part.Word(), day.Info().ID, ErrNoAnswer)
		}
		done <- outcome{answer: answer, err: err, duration: time.Since(started)}
	}()

	if timeout <= 0 {
		return <-done
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case o := <-done:
		return o
	case <-timer.C:
		return outcome{
			err:      fmt.Errorf("part %s of %s %w after %s", part.Word(), day.Info().ID, ErrTimeout, timeout),
			duration: timeout,
		}
	}
}

// clue puts multi-line values on lines of their own so they stay readable in test output.
func clue(s string) string {
	if strings.Contains(s, "\n") {
		return "\n" + s + "\n"
	}
	return s
}
