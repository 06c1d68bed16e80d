package advent

import (
	"fmt"
	"runtime/debug"
)

// Cost tells test runners how long a Day may reasonably take.
type Cost int

const (
	// Cheap days run under the default timeout.
	Cheap Cost = iota
	// Expensive days, such as brute forcing hashes, are allowed a much longer timeout and can be
	// excluded in bulk.
	Expensive
)

func (c Cost) String() string {
	if c == Expensive {
		return "expensive"
	}
	return "cheap"
}

// Info describes a Day.
type Info struct {
	ID    ProblemID
	Title string
	Cost  Cost
}

func (i Info) IsExpensive() bool {
	return i.Cost == Expensive
}

// Name is the ID followed by the title, if any.
func (i Info) Name() string {
	if i.Title == "" {
		return i.ID.String()
	}
	return i.ID.String() + " " + i.Title
}

// Day is an Advent of Code daily challenge.
//
// Both parts receive the same raw puzzle input and must be deterministic functions of it. The
// answer may be any value; it is compared with known solutions by its fmt.Sprint form.
type Day interface {
	Info() Info
	PartOne(input string) (interface{}, error)
	PartTwo(input string) (interface{}, error)
}

// Unimplemented can be embedded in a Day so that parts not written yet report
// ErrNotImplemented.
type Unimplemented struct {
	Meta Info
}

func (u Unimplemented) Info() Info {
	return u.Meta
}

func (u Unimplemented) PartOne(string) (interface{}, error) {
	return nil, &NotImplementedError{ID: u.Meta.ID, Part: PartOne}
}

func (u Unimplemented) PartTwo(string) (interface{}, error) {
	return nil, &NotImplementedError{ID: u.Meta.ID, Part: PartTwo}
}

// Solve invokes one part of a day. A panic inside the part is returned as a *PanicError.
func Solve(day Day, part Part, input string) (answer interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			answer = nil
			err = &PanicError{Value: r, Stack: string(debug.Stack())}
		}
	}()
	if !part.IsValid() {
		return nil, fmt.Errorf("no such part: %s", part)
	}
	if part == PartOne {
		return day.PartOne(input)
	}
	return day.PartTwo(input)
}
