package storage

import (
	"errors"
	"fmt"
)

// Error represents a failed read or write against an output sink
type Error struct {
	Key     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Key != "" {
		msg = fmt.Sprintf("%s (%s)", e.Message, e.Key)
	}
	if e.Cause != nil {
		return fmt.Sprintf("storage error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("storage error: %s", msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrNotFound is returned by Get when no object is stored under the key.
var ErrNotFound = errors.New("object not found")
