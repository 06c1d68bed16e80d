package framework

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(path string) TestID {
	return TestID{Path: strings.Split(path, "/")}
}

func TestRegexFiltersWithNoPatternsAcceptEverything(t *testing.T) {
	var f RegexFilters
	assert.False(t, f.IsDefined())
	assert.True(t, f.AsFilter(id("Y2015D01/Part One/Outputs a solution")))
}

func TestMustMatchAcceptsParentsOfSelectedTests(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("Y2015D01/Part Two"))

	assert.True(t, f.AsFilter(id("Y2015D01")))
	assert.True(t, f.AsFilter(id("Y2015D01/Part Two")))
	assert.True(t, f.AsFilter(id("Y2015D01/Part Two/Outputs a solution")))
	assert.False(t, f.AsFilter(id("Y2015D01/Part One")))
	assert.False(t, f.AsFilter(id("Y2015D02")))
}

func TestMustNotMatchOnlySkipsFullMatches(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("Y2015/examples"))

	assert.True(t, f.AsFilter(id("Y2015D01")))
	assert.False(t, f.AsFilter(id("Y2015D01/Validates the examples")))
	assert.True(t, f.AsFilter(id("Y2015D01/Outputs a solution")))
}

func TestSeveralPatternsAreAlternatives(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("D01$"))
	require.NoError(t, f.MustMatch.Set("D03$"))

	assert.True(t, f.AsFilter(id("Y2015D01")))
	assert.False(t, f.AsFilter(id("Y2015D02")))
	assert.True(t, f.AsFilter(id("Y2015D03")))
	assert.Equal(t, `"D01$" or "D03$"`, f.MustMatch.String())
}

func TestInvalidRegex(t *testing.T) {
	var r RegexList
	assert.Error(t, r.Set("a/("))
	assert.False(t, r.IsDefined())
	assert.Equal(t, "regex", r.Type())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("expensive"))
	PrintFilterDescription(&buf, f)
	assert.Equal(t, "Some tests will be skipped based on the filter criteria for this test run:\n"+
		"  skip any matching \"expensive\"\n\n", buf.String())
}
