package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrParamCount matches any *ParamCountError with errors.Is
	ErrParamCount = errors.New("wrong number of operands")
	// ErrUnknownCommand matches any *UnknownCommandError with errors.Is
	ErrUnknownCommand = errors.New("unknown command")
)

// ParamCountError is returned when a verb gets the wrong number of path operands.
type ParamCountError struct {
	Verb     Verb
	Expected int
	Got      int
	Command  string // Raw command text
}

func (e *ParamCountError) Error() string {
	return fmt.Sprintf("Cannot run %q - %s expects %d path(s), got %d", e.Command, e.Verb, e.Expected, e.Got)
}

func (e *ParamCountError) Is(target error) bool { return target == ErrParamCount }

// UnknownCommandError is returned for empty lines and unrecognised verbs.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Cannot run %q - unknown command", e.Command)
}

func (e *UnknownCommandError) Is(target error) bool { return target == ErrUnknownCommand }
