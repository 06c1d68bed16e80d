// Package y9000 holds fictitious days that show how solutions and their tests are written.
package y9000

import (
	"math"
	"strconv"
	"strings"

	"github.com/adventkit/adventkit/advent"
	"github.com/adventkit/adventkit/adventtest"
)

// ExampleDay reads a list of comma separated numbers.
//
// Part one: what is the sum of the numbers?
// Part two: what is their average, rounded to the nearest integer?
type ExampleDay struct{}

func New() advent.Day {
	return ExampleDay{}
}

func (ExampleDay) Info() advent.Info {
	return advent.Info{ID: advent.MustProblemID(9000, 1), Title: "Example Day"}
}

func (ExampleDay) PartOne(input string) (interface{}, error) {
	numbers, err := parseInput(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	return sum, nil
}

func (ExampleDay) PartTwo(input string) (interface{}, error) {
	numbers, err := parseInput(input)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, n := range numbers {
		sum += n
	}
	return int(math.Floor(float64(sum)/float64(len(numbers)) + 0.5)), nil
}

func parseInput(input string) ([]int, error) {
	fields := strings.Split(input, ",")
	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimPrefix(field, " "))
		if err != nil {
			return nil, advent.InvalidInput("%q is not a number", field)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// Examples declares the tests of ExampleDay.
func Examples(s *adventtest.Spec) {
	s.PartOne(func(e *adventtest.Examples) {
		e.ShouldOutput("1", 1)
		e.ShouldAllOutput([]string{"1,2,3", "0,3,3"}, 6)
		e.ShouldNotBeValidInput("word")
	})
	s.PartTwo(func(e *adventtest.Examples) {
		e.ShouldOutput("1", 1)
		e.ShouldOutput("1,2,3", 2)
	})
}
