package validation

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// DefaultForbiddenPhrases are leftovers that should never reach a finished CV
var DefaultForbiddenPhrases = []string{"lorem ipsum", "todo:", "tbd", "your name here"}

// CheckForbiddenPhrases reports lines of text that contain any of the
// phrases, case-insensitively. page is recorded on each violation when
// greater than zero.
func CheckForbiddenPhrases(text string, phrases []string, page int) []types.Violation {
	if len(phrases) == 0 {
		return nil
	}

	var violations []types.Violation
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.ToLower(scanner.Text())

		for _, phrase := range phrases {
			normalizedPhrase := strings.ToLower(strings.TrimSpace(phrase))
			if normalizedPhrase == "" {
				continue
			}

			if strings.Contains(line, normalizedPhrase) {
				v := types.Violation{
					Type:       "forbidden_phrase",
					Severity:   types.SeverityError,
					Details:    fmt.Sprintf("Line %d contains forbidden phrase: %s", lineNum, phrase),
					LineNumber: intPtr(lineNum),
				}
				if page > 0 {
					v.Page = intPtr(page)
				}
				violations = append(violations, v)
				break // one violation per line
			}
		}
	}

	return violations
}
