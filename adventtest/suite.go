package adventtest

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adventkit/adventkit/advent"
	"github.com/adventkit/adventkit/fixture"
	"github.com/adventkit/adventkit/framework"
)

const (
	OutputsSolutionTest   = "Outputs a solution"
	ValidatesExamplesTest = "Validates the examples"

	noSolutionForPartOne = "Part one of any day is always defined! NoSolution cannot be the answer."
)

type partTest struct {
	part     advent.Part
	examples func(*Examples)
	disabled bool
}

// Spec is passed to the body of a suite to declare which parts are tested.
type Spec struct {
	parts []partTest
}

// PartOne declares the tests of part one. examples may be nil if there are none.
func (s *Spec) PartOne(examples func(*Examples)) {
	s.add(partTest{part: advent.PartOne, examples: examples})
}

// PartTwo declares the tests of part two. examples may be nil if there are none.
func (s *Spec) PartTwo(examples func(*Examples)) {
	s.add(partTest{part: advent.PartTwo, examples: examples})
}

// XPartOne is a disabled PartOne: the part is reported as skipped and nothing is run.
func (s *Spec) XPartOne(examples func(*Examples)) {
	s.add(partTest{part: advent.PartOne, examples: examples, disabled: true})
}

// XPartTwo is a disabled PartTwo.
func (s *Spec) XPartTwo(examples func(*Examples)) {
	s.add(partTest{part: advent.PartTwo, examples: examples, disabled: true})
}

// add declares a part, replacing any earlier declaration of the same part.
func (s *Spec) add(p partTest) {
	for i, existing := range s.parts {
		if existing.part == p.part {
			s.parts[i] = p
			return
		}
	}
	s.parts = append(s.parts, p)
}

// Suite is a day together with the tests declared for it.
type Suite struct {
	day     advent.Day
	options Options
	parts   []partTest
}

// NewSuite declares the tests of a day. body is called once, immediately.
func NewSuite(day advent.Day, options Options, body func(*Spec)) *Suite {
	spec := &Spec{}
	if body != nil {
		body(spec)
	}
	if options.Fixtures == nil {
		options.Fixtures = fixture.NewCache(nil)
	}
	return &Suite{day: day, options: options, parts: spec.parts}
}

// Register runs the suite as a subtest of c named after the day.
func (s *Suite) Register(c *framework.Context) {
	info := s.day.Info()
	c.Run(info.Name(), func(c *framework.Context) {
		if info.IsExpensive() && s.options.SkipExpensive {
			c.SkipWithReason("expensive day")
		}
		s.RunParts(c)
	})
}

// RunParts runs the tests of every declared part as subtests of c.
func (s *Suite) RunParts(c *framework.Context) {
	for _, p := range s.parts {
		p := p
		c.Run("Part "+p.part.String(), func(c *framework.Context) {
			if p.disabled {
				c.SkipWithReason("disabled")
			}
			c.Run(OutputsSolutionTest, func(c *framework.Context) {
				s.outputsSolution(c, p.part)
			})
			if p.examples != nil {
				examples := &Examples{}
				p.examples(examples)
				c.Run(ValidatesExamplesTest, func(c *framework.Context) {
					s.validatesExamples(c, p.part, examples)
				})
			}
		})
	}
}

func (s *Suite) outputsSolution(c *framework.Context, part advent.Part) {
	info := s.day.Info()
	f, err := s.options.Fixtures.Get(info.ID)
	require.NoError(c, err, "could not load the fixture of %s", info.ID)
	if !f.HasInput() {
		c.SkipWithReason("no input for " + info.ID.String())
	}
	solution := f.SolutionFor(part)

	c.Debug("running part %s with %d bytes of input", part.Word(), len(*f.Input))
	result := invoke(s.day, part, *f.Input, s.options.timeoutFor(info))
	require.NoError(c, result.err)
	answer := advent.FormatAnswer(result.answer)

	unverified := ""
	if solution.IsUnknown() {
		unverified = " (Unverified)"
	}
	c.Infof("Your%s answer was: %s", unverified, clue(answer))
	c.Infof("Your time was: %s", result.duration)

	if part == advent.PartOne {
		assert.False(c, advent.IsNoSolution(result.answer), noSolutionForPartOne)
		assert.False(c, solution.IsNotApplicable(), noSolutionForPartOne)
	}

	if solution.IsUnknown() || solution.Matches(result.answer) {
		return
	}
	if answer == solution.Text() {
		if solution.IsNotApplicable() {
			c.Errorf("Correct solution was NoSolution, but the answer was the text %q", answer)
		} else {
			c.Errorf("Correct solution was %q, but the answer was NoSolution", solution.Text())
		}
		return
	}
	assert.Equal(c, solution.Text(), answer, "Correct solution was: %s", clue(solution.Text()))
}

func (s *Suite) validatesExamples(c *framework.Context, part advent.Part, examples *Examples) {
	timeout := s.options.timeoutFor(s.day.Info())
	for i, x := range examples.cases {
		x := x
		c.Run(x.name(i), func(c *framework.Context) {
			x.run(c, s.day, part, timeout)
		})
	}
}
