package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not. It is called
// for every level of the test tree, parents included.
type Filter func(TestID) bool

// RegexFilters selects tests the way "go test -run" and "-skip" do: each pattern is split on
// slashes into one regex per level of the test path.
//
// A test is run if, for at least one MustMatch pattern, every level present in both the test
// path and the pattern matches; so parents of selected tests are run too. A test is skipped if
// some MustNotMatch pattern matches all of its levels.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.anyMatchPrefix(id.Path)) &&
		!r.MustNotMatch.anyMatchAll(id.Path)
}

func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

type pathPattern struct {
	source string
	levels []*regexp.Regexp
}

// RegexList is a list of slash-separated patterns. It implements flag.Value and pflag.Value so
// that it can be filled in from repeated command line flags.
type RegexList struct {
	patterns []pathPattern
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.source+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	p := pathPattern{source: value}
	for _, level := range strings.Split(value, "/") {
		rx, err := regexp.Compile(level)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		p.levels = append(p.levels, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

// Type is used by pflag in usage messages.
func (r *RegexList) Type() string {
	return "regex"
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) anyMatchPrefix(path []string) bool {
	for _, p := range r.patterns {
		if p.matchLevels(path, false) {
			return true
		}
	}
	return false
}

func (r RegexList) anyMatchAll(path []string) bool {
	for _, p := range r.patterns {
		if p.matchLevels(path, true) {
			return true
		}
	}
	return false
}

func (p pathPattern) matchLevels(path []string, needAll bool) bool {
	if needAll && len(path) < len(p.levels) {
		return false
	}
	for i, rx := range p.levels {
		if i >= len(path) {
			break
		}
		if !rx.MatchString(path[i]) {
			return false
		}
	}
	return true
}

// PrintFilterDescription explains which tests the filters will skip.
func PrintFilterDescription(w io.Writer, filters RegexFilters) {
	if filters.IsDefined() {
		fmt.Fprintln(w, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(w, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(w, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(w)
	}
}
