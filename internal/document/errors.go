package document

import "fmt"

// ConfigurationError reports base data that is missing or malformed. Builds
// collect these as warnings and continue with a fallback where one exists.
type ConfigurationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", msg)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// RenderError represents an unavailable drawing primitive or a mid-draw failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// ResourceError represents an output sink that could not be written
type ResourceError struct {
	Message string
	Cause   error
}

func (e *ResourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resource error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resource error: %s", e.Message)
}

func (e *ResourceError) Unwrap() error {
	return e.Cause
}
