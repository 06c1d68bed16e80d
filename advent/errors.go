package advent

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by errors a solution returns for malformed puzzle input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented is matched by errors returned from parts that have not been written.
	ErrNotImplemented = errors.New("not implemented")

	// ErrPanic is matched by errors produced when a part panicked instead of returning.
	ErrPanic = errors.New("solution panicked")
)

// InputError describes why a puzzle input was rejected. It always matches ErrInvalidInput.
type InputError struct {
	Message string
	Err     error
}

// InvalidInput returns an InputError with a formatted message. If one of the arguments is an
// error and the format uses %w, it is kept as the cause.
func InvalidInput(format string, args ...interface{}) error {
	wrapped := fmt.Errorf(format, args...)
	return &InputError{Message: wrapped.Error(), Err: errors.Unwrap(wrapped)}
}

func (e *InputError) Error() string {
	if e.Message == "" {
		return ErrInvalidInput.Error()
	}
	return ErrInvalidInput.Error() + ": " + e.Message
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NotImplementedError is returned by Unimplemented for every part.
type NotImplementedError struct {
	ID   ProblemID
	Part Part
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("Part %s of %s was not implemented.", e.Part.Word(), e.ID)
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// PanicError wraps a value recovered from a panicking part.
type PanicError struct {
	Value interface{}
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPanic, e.Value)
}

func (e *PanicError) Is(target error) bool {
	return target == ErrPanic
}
