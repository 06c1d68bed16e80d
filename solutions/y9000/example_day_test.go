package y9000

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventkit/adventkit/advent"
	"github.com/adventkit/adventkit/adventtest"
)

func TestExampleDay(t *testing.T) {
	adventtest.Run(t, New(), Examples)
}

func TestRoundsHalfUp(t *testing.T) {
	answer, err := New().PartTwo("1,2")
	require.NoError(t, err)
	assert.Equal(t, 2, answer)

	answer, err = New().PartTwo("1, 1, 2")
	require.NoError(t, err)
	assert.Equal(t, 1, answer)
}

func TestRejectsBadNumbers(t *testing.T) {
	_, err := New().PartOne("1,two")
	assert.True(t, errors.Is(err, advent.ErrInvalidInput))
	assert.EqualError(t, err, `invalid input: "two" is not a number`)
}
