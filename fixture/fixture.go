package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode"

	"github.com/adventkit/adventkit/advent"
)

const (
	InputFile        = "input.txt"
	SolutionFileOne  = "solution_part1.txt"
	SolutionFileTwo  = "solution_part2.txt"
	DefaultResources = "resources/aoc"
)

// Fixture is the test data available for a single problem.
type Fixture struct {
	ID      advent.ProblemID
	Input   *string
	PartOne Solution
	PartTwo Solution
}

func (f Fixture) HasInput() bool {
	return f.Input != nil
}

// SolutionFor returns the known solution of a part.
func (f Fixture) SolutionFor(part advent.Part) Solution {
	if part == advent.PartTwo {
		return f.PartTwo
	}
	return f.PartOne
}

// Dir is the directory of a problem's files, relative to the store root.
func Dir(id advent.ProblemID) string {
	return fmt.Sprintf("y%d/d%02d", id.Year, id.Day)
}

// Path is the location of one of a problem's files, relative to the store root.
func Path(id advent.ProblemID, name string) string {
	return path.Join(Dir(id), name)
}

// SolutionFile is the name of the solution file of a part.
func SolutionFile(part advent.Part) string {
	if part == advent.PartTwo {
		return SolutionFileTwo
	}
	return SolutionFileOne
}

// Load reads the fixture of a problem from a store. Missing files leave the corresponding
// fields empty; any other error reading them is returned.
func Load(store fs.FS, id advent.ProblemID) (Fixture, error) {
	f := Fixture{ID: id}

	input, found, err := readText(store, Path(id, InputFile))
	if err != nil {
		return Fixture{}, err
	}
	if found {
		f.Input = &input
	}

	for _, part := range advent.Parts {
		text, found, err := readText(store, Path(id, SolutionFile(part)))
		if err != nil {
			return Fixture{}, err
		}
		if !found {
			continue
		}
		if part == advent.PartOne {
			f.PartOne = ParseSolution(text)
		} else {
			f.PartTwo = ParseSolution(text)
		}
	}
	return f, nil
}

func readText(store fs.FS, name string) (string, bool, error) {
	data, err := fs.ReadFile(store, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("could not read fixture file %s: %w", name, err)
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), true, nil
}
