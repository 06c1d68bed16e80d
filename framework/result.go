package framework

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	Messages   []string
	Skipped    bool
	SkipReason string
	Duration   time.Duration
}

// ErrorMessages returns the test's errors as text, without the assertion traces testify adds.
func (t TestResult) ErrorMessages() []string {
	ret := make([]string, 0, len(t.Errors))
	for _, err := range t.Errors {
		ret = append(ret, reformatError(err).Error())
	}
	return ret
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of tests that passed, failed and were skipped. Only tests without
// subtests are counted.
func (r Results) Counts() (passed, failed, skipped int) {
	for _, t := range r.Tests {
		if r.hasChildren(t.TestID) {
			continue
		}
		switch {
		case t.Skipped:
			skipped++
		case len(t.Errors) > 0 || r.isFailure(t.TestID):
			failed++
		default:
			passed++
		}
	}
	return
}

func (r Results) hasChildren(id TestID) bool {
	for _, t := range r.Tests {
		if len(t.TestID.Path) > len(id.Path) && t.TestID.HasPrefix(id) {
			return true
		}
	}
	return false
}

func (r Results) isFailure(id TestID) bool {
	for _, f := range r.Failures {
		if f.TestID.Equal(id) {
			return true
		}
	}
	return false
}

// Status is "passed", "failed" or "skipped".
func (r Results) Status(t TestResult) string {
	switch {
	case t.Skipped:
		return "skipped"
	case len(t.Errors) > 0 || r.isFailure(t.TestID):
		return "failed"
	default:
		return "passed"
	}
}

// Children returns the results of the direct subtests of parent, in the order they ran. The
// children of the zero TestID are the top-level tests.
func (r Results) Children(parent TestID) []TestResult {
	var ret []TestResult
	for _, t := range r.Tests {
		if len(t.TestID.Path) == len(parent.Path)+1 && t.TestID.HasPrefix(parent) {
			ret = append(ret, t)
		}
	}
	return ret
}

// LeafFailures returns the failed tests that have no failed subtests, which are the ones worth
// re-running or reporting.
func (r Results) LeafFailures() []TestResult {
	var ret []TestResult
	for _, f := range r.Failures {
		leaf := true
		for _, other := range r.Failures {
			if len(other.TestID.Path) > len(f.TestID.Path) && other.TestID.HasPrefix(f.TestID) {
				leaf = false
				break
			}
		}
		if leaf {
			ret = append(ret, f)
		}
	}
	return ret
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Plus returns the ID of a subtest. The receiver's path is never shared with the result.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

func (t TestID) HasPrefix(prefix TestID) bool {
	if len(prefix.Path) > len(t.Path) {
		return false
	}
	for i, p := range prefix.Path {
		if t.Path[i] != p {
			return false
		}
	}
	return true
}

func (t TestID) Equal(other TestID) bool {
	return len(t.Path) == len(other.Path) && t.HasPrefix(other)
}

// PrintResults writes a summary of the run, listing each failed test.
func PrintResults(w io.Writer, results Results) {
	passed, failed, skipped := results.Counts()
	if results.OK() {
		fmt.Fprintf(w, "All tests passed (%d passed, %d skipped)\n", passed, skipped)
		return
	}
	fmt.Fprintf(w, "FAILED TESTS (%d passed, %d failed, %d skipped):\n", passed, failed, skipped)
	for _, f := range results.LeafFailures() {
		fmt.Fprintf(w, "* %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(reformatError(err).Error(), "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}
}
