package y2015

import "github.com/adventkit/adventkit/adventtest"

func Day01Examples(s *adventtest.Spec) {
	s.PartOne(func(e *adventtest.Examples) {
		e.ShouldAllOutput([]string{"(())", "()()"}, 0)
		e.ShouldAllOutput([]string{"(((", "(()(()(", "))((((("}, 3)
		e.ShouldAllOutput([]string{"())", "))("}, -1)
		e.ShouldAllOutput([]string{")))", ")())())"}, -3)
		e.ShouldNotBeValidInput("(x)")
	})
	s.PartTwo(func(e *adventtest.Examples) {
		e.ShouldOutput(")", 1)
		e.ShouldOutput("()())", 5)
		e.ShouldNotBeValidInputs([]string{"((", ""})
	})
}

func Day04Examples(s *adventtest.Spec) {
	s.PartOne(func(e *adventtest.Examples) {
		e.ShouldOutput("abcdef", 609043)
		e.ShouldOutput("pqrstuv", 1048970)
		e.ShouldNotBeValidInput("")
	})
	s.PartTwo(nil)
}

func Day25Examples(s *adventtest.Spec) {
	s.PartOne(func(e *adventtest.Examples) {
		e.ShouldOutput("Enter the code at row 1, column 1.", 20151125)
		e.ShouldOutput("Enter the code at row 2, column 1.", 31916031)
		e.ShouldOutput("Enter the code at row 1, column 2.", 18749137)
		e.ShouldOutput("Enter the code at row 6, column 6.", 27995004)
		e.ShouldNotBeValidInput("Enter the code.")
	})
	s.PartTwo(func(e *adventtest.Examples) {
		e.ShouldOutput("Enter the code at row 1, column 1.", "NoSolution")
	})
}
