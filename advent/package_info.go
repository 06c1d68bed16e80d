// Package advent contains the basic vocabulary for Advent of Code puzzle solutions: the
// identifier of a problem, the Day interface implemented by every solution, and the error
// kinds a solution may report.
//
// A solution is a plain value implementing Day. Parts that are not written yet can be left to
// an embedded Unimplemented, which makes them return an error matching ErrNotImplemented:
//
//	type Day01 struct{ advent.Unimplemented }
//
//	func New() *Day01 {
//		return &Day01{advent.Unimplemented{Meta: advent.Info{ID: advent.MustProblemID(2015, 1)}}}
//	}
//
//	func (d *Day01) PartOne(input string) (interface{}, error) { ... }
//
// Input that cannot be parsed should be reported with InvalidInput, so that tests can tell a
// wrong input apart from a missing implementation.
package advent
