package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Options are the constraints a built PDF is checked against.
// Zero values disable the corresponding check.
type Options struct {
	MaxPages         int
	ForbiddenPhrases []string
	// RequiredText must appear somewhere in the document, e.g. the candidate name.
	RequiredText []string
}

// ValidatePDFFile reads a PDF from disk and validates it.
func ValidatePDFFile(pdfPath string, opts Options) (*types.Violations, error) {
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to read PDF file: %s", pdfPath),
			Cause:   err,
		}
	}
	return ValidatePDF(data, opts)
}

// ValidatePDF reads a built PDF back and checks page count, forbidden
// phrases and required text.
func ValidatePDF(data []byte, opts Options) (*types.Violations, error) {
	pages, err := PageTexts(data)
	if err != nil {
		return nil, err
	}

	var allViolations []types.Violation

	if opts.MaxPages > 0 && len(pages) > opts.MaxPages {
		allViolations = append(allViolations, types.Violation{
			Type:     "page_overflow",
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("Document has %d pages, maximum allowed is %d", len(pages), opts.MaxPages),
		})
	}

	var all strings.Builder
	for i, lines := range pages {
		text := strings.Join(lines, "\n")
		allViolations = append(allViolations, CheckForbiddenPhrases(text, opts.ForbiddenPhrases, i+1)...)
		all.WriteString(text)
		all.WriteByte('\n')
	}

	if strings.TrimSpace(all.String()) == "" {
		allViolations = append(allViolations, types.Violation{
			Type:     "empty_document",
			Severity: types.SeverityError,
			Details:  "Document contains no extractable text",
		})
	}

	flat := compact(all.String())
	for _, required := range opts.RequiredText {
		if required = strings.TrimSpace(required); required != "" && !strings.Contains(flat, compact(required)) {
			allViolations = append(allViolations, types.Violation{
				Type:     "missing_text",
				Severity: types.SeverityWarning,
				Details:  fmt.Sprintf("Document does not contain %q", required),
			})
		}
	}

	return &types.Violations{Violations: allViolations}, nil
}

// compact drops all whitespace; extracted PDF text does not always keep
// the spaces between words.
func compact(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
