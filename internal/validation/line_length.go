package validation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// ValidateLineLengths checks if any lines in a plain-text CV file exceed the maximum character count
func ValidateLineLengths(textPath string, maxChars int) ([]types.Violation, error) {
	file, err := os.Open(textPath)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to open text file: %s", textPath),
			Cause:   err,
		}
	}
	defer func() { _ = file.Close() }()

	return CheckLineLengths(file, maxChars)
}

// CheckLineLengths reports every line of r longer than maxChars runes.
// Bullet markers and surrounding whitespace are not counted.
func CheckLineLengths(r io.Reader, maxChars int) ([]types.Violation, error) {
	var violations []types.Violation
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		contentLength := countContentChars(scanner.Text())

		if contentLength > maxChars {
			violations = append(violations, types.Violation{
				Type:       "line_too_long",
				Severity:   types.SeverityWarning,
				Details:    fmt.Sprintf("Line %d has %d characters, maximum is %d", lineNum, contentLength, maxChars),
				LineNumber: intPtr(lineNum),
				CharCount:  intPtr(contentLength),
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &FileReadError{
			Message: "failed to read text",
			Cause:   err,
		}
	}

	return violations, nil
}

func countContentChars(line string) int {
	trimmed := strings.TrimSpace(line)
	for _, marker := range []string{"- ", "• ", "* "} {
		trimmed = strings.TrimPrefix(trimmed, marker)
	}
	return len([]rune(strings.TrimSpace(trimmed)))
}

// intPtr returns a pointer to an integer
func intPtr(i int) *int {
	return &i
}
