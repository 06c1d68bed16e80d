package advent

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

const (
	FirstYear = 2015
	FirstDay  = 1
	LastDay   = 25
)

var ErrInvalidProblemID = errors.New("invalid problem ID")

var problemIDPattern = regexp.MustCompile(`^[Yy](\d{4,})[Dd](\d{1,2})$`)

// ProblemID identifies an Advent of Code problem by the year it appeared in and its day.
//
// The zero value is not a valid ID; use NewProblemID or MustProblemID.
type ProblemID struct {
	Year int
	Day  int
}

// NewProblemID validates the year and day and returns the matching ProblemID.
func NewProblemID(year, day int) (ProblemID, error) {
	if year < FirstYear {
		return ProblemID{}, fmt.Errorf("%w: year %d is before %d", ErrInvalidProblemID, year, FirstYear)
	}
	if day < FirstDay || day > LastDay {
		return ProblemID{}, fmt.Errorf("%w: day %d is not in [%d, %d]", ErrInvalidProblemID, day, FirstDay, LastDay)
	}
	return ProblemID{Year: year, Day: day}, nil
}

// MustProblemID is like NewProblemID but panics on invalid values. It is meant for solutions
// declaring their own constant ID.
func MustProblemID(year, day int) ProblemID {
	id, err := NewProblemID(year, day)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseProblemID parses the canonical form produced by String. The letters are matched
// case-insensitively and the day does not need to be zero-padded.
func ParseProblemID(s string) (ProblemID, error) {
	m := problemIDPattern.FindStringSubmatch(s)
	if m == nil {
		return ProblemID{}, fmt.Errorf("%w: %q is not of the form Y2015D01", ErrInvalidProblemID, s)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return ProblemID{}, fmt.Errorf("%w: %q", ErrInvalidProblemID, s)
	}
	day, _ := strconv.Atoi(m[2])
	return NewProblemID(year, day)
}

// Ordinal is the sort key of the ID.
func (id ProblemID) Ordinal() int {
	return id.Year*100 + id.Day
}

// Compare returns -1, 0 or +1 depending on whether id sorts before, equal to, or after other.
func (id ProblemID) Compare(other ProblemID) int {
	a, b := id.Ordinal(), other.Ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (id ProblemID) Less(other ProblemID) bool {
	return id.Compare(other) < 0
}

func (id ProblemID) String() string {
	return fmt.Sprintf("Y%dD%02d", id.Year, id.Day)
}
