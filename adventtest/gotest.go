package adventtest

import (
	"testing"
	"time"

	"github.com/adventkit/adventkit/advent"
	"github.com/adventkit/adventkit/framework"
)

// deadlineMargin is left between the last part's timeout and the go test deadline, for
// reporting the results.
const deadlineMargin = 5 * time.Second

// Run declares the tests of a day and runs them as subtests of t, using the fixtures found by
// DefaultFixtures. Expensive days are skipped when go test runs with -short.
func Run(t *testing.T, day advent.Day, body func(*Spec)) {
	t.Helper()
	fixtures, err := DefaultFixtures()
	if err != nil {
		t.Fatalf("could not open fixtures: %s", err)
	}
	RunWithOptions(t, day, Options{Fixtures: fixtures}, body)
}

// RunWithOptions is like Run but with explicit options.
//
// Parts are stopped shortly before the go test deadline, so an expensive day only gets its
// full ExpensiveTimeout under go test -timeout 0.
func RunWithOptions(t *testing.T, day advent.Day, options Options, body func(*Spec)) {
	t.Helper()
	if day.Info().IsExpensive() && (testing.Short() || options.SkipExpensive) {
		t.Skipf("%s is expensive", day.Info().ID)
	}
	if deadline, ok := t.Deadline(); ok && options.Deadline.IsZero() {
		options.Deadline = deadline.Add(-deadlineMargin)
	}
	suite := NewSuite(day, options, body)
	results := framework.Run(nil, nil, suite.RunParts)
	mirror(t, results, framework.TestID{})
}

// mirror reports the results recorded under parent as subtests of t, preserving the tree.
func mirror(t *testing.T, results framework.Results, parent framework.TestID) {
	t.Helper()
	if len(parent.Path) == 0 {
		for _, r := range results.Tests {
			if len(r.TestID.Path) == 0 {
				for _, message := range r.ErrorMessages() {
					t.Error(message)
				}
			}
		}
	}
	for _, r := range results.Children(parent) {
		r := r
		t.Run(r.TestID.Path[len(r.TestID.Path)-1], func(t *testing.T) {
			t.Helper()
			for _, message := range r.Messages {
				t.Log(message)
			}
			for _, message := range r.ErrorMessages() {
				t.Error(message)
			}
			mirror(t, results, r.TestID)
			if r.Skipped {
				t.Skip(r.SkipReason)
			}
		})
	}
}
