package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adventkit/adventkit/advent"
)

func TestParseSolution(t *testing.T) {
	assert.True(t, ParseSolution("42").IsKnown())
	assert.True(t, ParseSolution("NoSolution").IsNotApplicable())
	assert.True(t, ParseSolution("nosolution").IsKnown())
	assert.True(t, Solution{}.IsUnknown())
}

func TestSolutionMatches(t *testing.T) {
	assert.True(t, Known("6").Matches(6))
	assert.True(t, Known("6").Matches("6"))
	assert.False(t, Known("6").Matches(7))
	assert.False(t, Known("NoSolution").Matches(advent.NoSolution))

	assert.True(t, NotApplicable().Matches(advent.NoSolution))
	assert.False(t, NotApplicable().Matches("NoSolution"))

	assert.False(t, Unknown().Matches(""))
	assert.False(t, Unknown().Matches(nil))
}

func TestSolutionText(t *testing.T) {
	assert.Equal(t, "6", Known("6").Text())
	assert.Equal(t, "NoSolution", NotApplicable().Text())
	assert.Equal(t, "", Unknown().Text())
	assert.Equal(t, "<unknown>", Unknown().String())
	assert.Equal(t, "NoSolution", NotApplicable().String())
}
