package advent

import "fmt"

// Part selects one of the two problems of a Day.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{PartOne, PartTwo}

// String returns "One" or "Two", as used in test names.
func (p Part) String() string {
	switch p {
	case PartOne:
		return "One"
	case PartTwo:
		return "Two"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// Word is the lower case form used in sentences.
func (p Part) Word() string {
	switch p {
	case PartOne:
		return "one"
	case PartTwo:
		return "two"
	default:
		return fmt.Sprintf("%d", int(p))
	}
}

func (p Part) IsValid() bool {
	return p == PartOne || p == PartTwo
}
