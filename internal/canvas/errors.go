package canvas

import "fmt"

// PrimitiveError represents a drawing library that could not be initialised
// or that failed while drawing
type PrimitiveError struct {
	Message string
	Cause   error
}

func (e *PrimitiveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("drawing primitive error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("drawing primitive error: %s", e.Message)
}

func (e *PrimitiveError) Unwrap() error {
	return e.Cause
}
