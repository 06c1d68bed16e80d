package fixture

import "github.com/adventkit/adventkit/advent"

// NoSolutionText is what a solution file contains when the part has nothing to solve.
const NoSolutionText = "NoSolution"

type solutionKind int

const (
	unknown solutionKind = iota
	known
	notApplicable
)

// Solution is the known answer to a part, if there is one. The zero value is Unknown.
type Solution struct {
	kind solutionKind
	text string
}

// Known returns a Solution with the given answer text.
func Known(text string) Solution {
	return Solution{kind: known, text: text}
}

// Unknown is the Solution of a part whose answer has not been verified yet.
func Unknown() Solution {
	return Solution{}
}

// NotApplicable is the Solution of a part that has nothing to solve. It matches an answer of
// advent.NoSolution.
func NotApplicable() Solution {
	return Solution{kind: notApplicable}
}

// ParseSolution interprets the trimmed content of a solution file.
func ParseSolution(text string) Solution {
	if text == NoSolutionText {
		return NotApplicable()
	}
	return Known(text)
}

func (s Solution) IsKnown() bool         { return s.kind == known }
func (s Solution) IsUnknown() bool       { return s.kind == unknown }
func (s Solution) IsNotApplicable() bool { return s.kind == notApplicable }

// Text is the expected answer text. It is empty for an Unknown solution.
func (s Solution) Text() string {
	if s.kind == notApplicable {
		return advent.FormatAnswer(advent.NoSolution)
	}
	return s.text
}

// Matches reports whether an answer computed by a Day is this solution. An Unknown solution
// matches nothing.
func (s Solution) Matches(answer interface{}) bool {
	switch s.kind {
	case known:
		return !advent.IsNoSolution(answer) && advent.FormatAnswer(answer) == s.text
	case notApplicable:
		return advent.IsNoSolution(answer)
	default:
		return false
	}
}

func (s Solution) String() string {
	switch s.kind {
	case known:
		return s.text
	case notApplicable:
		return NoSolutionText
	default:
		return "<unknown>"
	}
}
