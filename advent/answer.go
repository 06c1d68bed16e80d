package advent

import "fmt"

type noSolution struct{}

func (noSolution) String() string { return "NoSolution" }

// NoSolution is returned as the answer of a part that has no problem to solve, which happens
// for the second part of the last day of each year. It is never a legal answer for part one.
var NoSolution fmt.Stringer = noSolution{}

// IsNoSolution reports whether answer is the NoSolution value. A string that happens to read
// "NoSolution" is a regular answer.
func IsNoSolution(answer interface{}) bool {
	_, ok := answer.(noSolution)
	return ok
}

// FormatAnswer converts an answer into the text compared against known solutions.
func FormatAnswer(answer interface{}) string {
	if answer == nil {
		return ""
	}
	return fmt.Sprint(answer)
}
