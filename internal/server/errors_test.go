package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/portfolio-cv/internal/document"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "format", Message: "must be pdf or rtf"}
	assert.Equal(t, "validation error: format - must be pdf or rtf", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Resource: "document", ID: "42"}
	assert.Equal(t, "document not found: 42", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrValidation",
			err:      &ErrValidation{Field: "body", Message: "bad"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ConfigurationError",
			err:      &document.ConfigurationError{Field: "request", Message: "invalid"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "Wrapped ErrNotFound",
			err:      fmt.Errorf("lookup: %w", &ErrNotFound{Resource: "document", ID: "x"}),
			expected: http.StatusNotFound,
		},
		{
			name:     "ErrUnavailable",
			err:      &ErrUnavailable{Feature: "document archive"},
			expected: http.StatusNotImplemented,
		},
		{
			name:     "RenderError",
			err:      &document.RenderError{Message: "drawing primitive unavailable"},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "ResourceError",
			err:      &document.ResourceError{Message: "failed to store document"},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
