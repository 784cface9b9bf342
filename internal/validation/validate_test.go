package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-cv/internal/types"
)

func violationTypes(v *types.Violations) []string {
	var out []string
	for _, violation := range v.Violations {
		out = append(out, violation.Type)
	}
	return out
}

func TestValidatePDF_Clean(t *testing.T) {
	violations, err := ValidatePDF(testPDF(t, "Jane Doe Engineer"), Options{
		MaxPages:         1,
		ForbiddenPhrases: DefaultForbiddenPhrases,
		RequiredText:     []string{"Jane Doe"},
	})
	require.NoError(t, err)
	assert.Empty(t, violations.Violations)
	assert.False(t, violations.HasErrors())
}

func TestValidatePDF_PageOverflow(t *testing.T) {
	violations, err := ValidatePDF(testPDF(t, "one", "two", "three"), Options{MaxPages: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"page_overflow"}, violationTypes(violations))
	assert.True(t, violations.HasErrors())
}

func TestValidatePDF_ForbiddenPhraseRecordsPage(t *testing.T) {
	violations, err := ValidatePDF(testPDF(t, "Clean page", "Lorem ipsum filler"), Options{ForbiddenPhrases: []string{"lorem ipsum"}})
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)
	v := violations.Violations[0]
	assert.Equal(t, "forbidden_phrase", v.Type)
	require.NotNil(t, v.Page)
	assert.Equal(t, 2, *v.Page)
}

func TestValidatePDF_MissingRequiredText(t *testing.T) {
	violations, err := ValidatePDF(testPDF(t, "Someone Else"), Options{RequiredText: []string{"Jane Doe", "  "}})
	require.NoError(t, err)
	assert.Equal(t, []string{"missing_text"}, violationTypes(violations))
	assert.False(t, violations.HasErrors())
}

func TestValidatePDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, testPDF(t, "Hello"), 0644))

	violations, err := ValidatePDFFile(path, Options{MaxPages: 1})
	require.NoError(t, err)
	assert.Empty(t, violations.Violations)

	_, err = ValidatePDFFile(filepath.Join(t.TempDir(), "missing.pdf"), Options{})
	var fileErr *FileReadError
	assert.ErrorAs(t, err, &fileErr)
}
