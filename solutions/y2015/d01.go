package y2015

import "github.com/adventkit/adventkit/advent"

// Day01 is "Not Quite Lisp": the input is a list of parentheses moving Santa one floor up or
// down.
type Day01 struct{}

func (Day01) Info() advent.Info {
	return advent.Info{ID: advent.MustProblemID(2015, 1), Title: "Not Quite Lisp"}
}

// PartOne returns the floor Santa ends up on.
func (Day01) PartOne(input string) (interface{}, error) {
	floor := 0
	for i, r := range input {
		step, err := move(r, i)
		if err != nil {
			return nil, err
		}
		floor += step
	}
	return floor, nil
}

// PartTwo returns the position of the first instruction that takes Santa to the basement.
func (Day01) PartTwo(input string) (interface{}, error) {
	floor := 0
	for i, r := range input {
		step, err := move(r, i)
		if err != nil {
			return nil, err
		}
		floor += step
		if floor < 0 {
			return i + 1, nil
		}
	}
	return nil, advent.InvalidInput("Santa never enters the basement")
}

func move(r rune, position int) (int, error) {
	switch r {
	case '(':
		return 1, nil
	case ')':
		return -1, nil
	default:
		return 0, advent.InvalidInput("unexpected %q at position %d", r, position+1)
	}
}
