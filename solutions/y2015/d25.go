package y2015

import (
	"regexp"
	"strconv"

	"github.com/adventkit/adventkit/advent"
)

const (
	firstCode  = 20151125
	multiplier = 252533
	modulus    = 33554393
)

var gridPosition = regexp.MustCompile(`row (\d+), column (\d+)`)

// Day25 is "Let It Snow". The last day of the year has no second puzzle.
type Day25 struct{}

func (Day25) Info() advent.Info {
	return advent.Info{ID: advent.MustProblemID(2015, 25), Title: "Let It Snow"}
}

// PartOne returns the code at the row and column named in the input. Codes fill the grid along
// diagonals, each one derived from the previous.
func (Day25) PartOne(input string) (interface{}, error) {
	m := gridPosition.FindStringSubmatch(input)
	if m == nil {
		return nil, advent.InvalidInput("no row and column in input")
	}
	row, _ := strconv.Atoi(m[1])
	column, _ := strconv.Atoi(m[2])
	if row < 1 || column < 1 {
		return nil, advent.InvalidInput("row and column start at 1")
	}

	diagonal := int64(row + column - 1)
	index := diagonal*(diagonal-1)/2 + int64(column)
	return firstCode * powMod(multiplier, index-1, modulus) % modulus, nil
}

func (Day25) PartTwo(string) (interface{}, error) {
	return advent.NoSolution, nil
}

func powMod(base, exp, mod int64) int64 {
	result := int64(1)
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % mod
		}
		base = base * base % mod
		exp >>= 1
	}
	return result
}
