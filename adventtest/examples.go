package adventtest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adventkit/adventkit/advent"
	"github.com/adventkit/adventkit/framework"
)

const maxExampleNameLength = 40

type example struct {
	input    string
	expected interface{}
	invalid  bool
}

// Examples collects the example assertions for one part. Each example becomes its own test.
type Examples struct {
	cases []example
}

// ShouldOutput asserts that the part answers expected when given input. Answers are compared by
// their fmt.Sprint form, so ShouldOutput("1,2,3", 6) passes for an answer of int64(6) or "6".
func (e *Examples) ShouldOutput(input string, expected interface{}) {
	e.cases = append(e.cases, example{input: input, expected: expected})
}

// ShouldAllOutput asserts that the part answers expected for every one of inputs.
func (e *Examples) ShouldAllOutput(inputs []string, expected interface{}) {
	for _, input := range inputs {
		e.ShouldOutput(input, expected)
	}
}

// ShouldNotBeValidInput asserts that the part rejects input with an error matching
// advent.ErrInvalidInput. Any other error, or an answer, fails the example.
func (e *Examples) ShouldNotBeValidInput(input string) {
	e.cases = append(e.cases, example{input: input, invalid: true})
}

// ShouldNotBeValidInputs asserts that the part rejects every one of inputs.
func (e *Examples) ShouldNotBeValidInputs(inputs []string) {
	for _, input := range inputs {
		e.ShouldNotBeValidInput(input)
	}
}

func (x example) name(index int) string {
	text := x.input
	if runes := []rune(text); len(runes) > maxExampleNameLength {
		text = string(runes[:maxExampleNameLength]) + "..."
	}
	text = strings.ReplaceAll(strconv.Quote(text), "/", "_")
	if x.invalid {
		return fmt.Sprintf("#%d %s is rejected", index+1, text)
	}
	return fmt.Sprintf("#%d %s", index+1, text)
}

func (x example) run(c *framework.Context, day advent.Day, part advent.Part, timeout time.Duration) {
	c.Debug("input: %s", clue(x.input))
	result := invoke(day, part, x.input, timeout)

	if x.invalid {
		switch {
		case result.err == nil:
			c.Errorf("Expected an invalid input error for input: %s\nbut got the answer: %s",
				clue(x.input), clue(advent.FormatAnswer(result.answer)))
		case !errors.Is(result.err, advent.ErrInvalidInput):
			c.Errorf("Expected an invalid input error for input: %s\nbut got: %s", clue(x.input), result.err)
		}
		return
	}

	expected := advent.FormatAnswer(x.expected)
	if result.err != nil {
		c.Errorf("Expected answer %s for input %s\nbut got error: %s", clue(expected), clue(x.input), result.err)
		return
	}
	assert.Equal(c, expected, advent.FormatAnswer(result.answer),
		"Expected answer %s for input %s", clue(expected), clue(x.input))
}
