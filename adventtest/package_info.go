// Package adventtest tests advent.Day implementations against their fixtures and against
// examples written inline by the test author.
//
// A test for a day usually looks like this:
//
//	func TestExampleDay(t *testing.T) {
//		adventtest.Run(t, y9000.New(), func(s *adventtest.Spec) {
//			s.PartOne(func(e *adventtest.Examples) {
//				e.ShouldOutput("1", 1)
//				e.ShouldNotBeValidInput("word")
//			})
//			s.PartTwo(nil)
//		})
//	}
//
// Each declared part gets an "Outputs a solution" test, which runs the part against the
// fixture input and checks the answer against the known solution if there is one, and a
// "Validates the examples" test with one subtest per example.
//
// The same suites can be run outside of go test by registering them on a framework.Context,
// which is what the adventkit command does.
package adventtest
