package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLineLengths_NoViolations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Summary\nShort line\n- Another short line\n"), 0644))

	violations, err := ValidateLineLengths(path, 90)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateLineLengths_WithViolations(t *testing.T) {
	longLine := strings.Repeat("a", 100)
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("Experience\n- %s\nShort line\n", longLine)), 0644))

	violations, err := ValidateLineLengths(path, 90)
	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, "line_too_long", v.Type)
	assert.Equal(t, "warning", v.Severity)
	require.NotNil(t, v.LineNumber)
	assert.Equal(t, 2, *v.LineNumber)
	require.NotNil(t, v.CharCount)
	assert.Equal(t, 100, *v.CharCount, "bullet marker is not counted")
}

func TestValidateLineLengths_FileNotFound(t *testing.T) {
	_, err := ValidateLineLengths("/nonexistent/cv.txt", 90)
	var fileErr *FileReadError
	assert.ErrorAs(t, err, &fileErr)
}

func TestCountContentChars(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{line: "", want: 0},
		{line: "   hello  ", want: 5},
		{line: "- bullet", want: 6},
		{line: "• résumé", want: 6},
		{line: "* star", want: 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countContentChars(tt.line), tt.line)
	}
}
