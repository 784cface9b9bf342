package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONOmitsEmptyPointers(t *testing.T) {
	page := 2
	violation := Violation{
		Type:     "page_overflow",
		Severity: SeverityError,
		Details:  "Document has 3 pages, maximum allowed is 2",
		Page:     &page,
	}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"page":2`)
	assert.NotContains(t, string(jsonBytes), "line_number")
	assert.NotContains(t, string(jsonBytes), "char_count")
}

func TestViolations_HasErrors(t *testing.T) {
	var nilViolations *Violations
	assert.False(t, nilViolations.HasErrors())

	v := &Violations{Violations: []Violation{{Type: "line_too_long", Severity: SeverityWarning}}}
	assert.False(t, v.HasErrors())

	v.Violations = append(v.Violations, Violation{Type: "forbidden_phrase", Severity: SeverityError})
	assert.True(t, v.HasErrors())
}
