package resumedata

import "fmt"

// LoadError represents a failure reading, decoding or checking a base résumé model
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	path := e.Path
	if path == "" {
		path = "(inline)"
	}
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
