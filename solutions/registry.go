// Package solutions lists every implemented day along with its tests.
package solutions

import (
	"sort"

	"github.com/adventkit/adventkit/advent"
	"github.com/adventkit/adventkit/adventtest"
	"github.com/adventkit/adventkit/solutions/y2015"
	"github.com/adventkit/adventkit/solutions/y9000"
)

// Entry is a day and the tests declared for it.
type Entry struct {
	Day   advent.Day
	Tests func(*adventtest.Spec)
}

func (e Entry) ID() advent.ProblemID {
	return e.Day.Info().ID
}

var entries = []Entry{
	{Day: y2015.Day01{}, Tests: y2015.Day01Examples},
	{Day: y2015.Day04{}, Tests: y2015.Day04Examples},
	{Day: y2015.Day25{}, Tests: y2015.Day25Examples},
	{Day: y9000.New(), Tests: y9000.Examples},
}

// All returns every registered day, ordered by ID.
func All() []Entry {
	ret := append([]Entry(nil), entries...)
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID().Less(ret[j].ID()) })
	return ret
}

// Find returns the entry of a day, if it is registered.
func Find(id advent.ProblemID) (Entry, bool) {
	for _, e := range entries {
		if e.ID() == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Suites returns the test suites of the given days, or of every day if ids is empty.
func Suites(options adventtest.Options, ids ...advent.ProblemID) ([]*adventtest.Suite, error) {
	selected := All()
	if len(ids) != 0 {
		selected = selected[:0:0]
		for _, id := range ids {
			e, ok := Find(id)
			if !ok {
				return nil, &UnknownDayError{ID: id}
			}
			selected = append(selected, e)
		}
	}
	suites := make([]*adventtest.Suite, 0, len(selected))
	for _, e := range selected {
		suites = append(suites, adventtest.NewSuite(e.Day, options, e.Tests))
	}
	return suites, nil
}

type UnknownDayError struct {
	ID advent.ProblemID
}

func (e *UnknownDayError) Error() string {
	return "no solution registered for " + e.ID.String()
}
