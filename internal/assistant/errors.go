package assistant

import (
	"errors"
	"fmt"
)

// ErrUnknownIntent is returned when a message matches no recognized intent.
var ErrUnknownIntent = errors.New("unknown intent")

// ParseError reports a date or time expression that could not be resolved.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CollaboratorError reports a failed calendar operation.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("calendar %s failed: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
