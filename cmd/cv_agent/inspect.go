package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/validation"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Read a built PDF back and check it",
	Long:  "Reports the page count of a PDF, optionally prints its text, and checks it against page, phrase and required-text constraints.",
	RunE:  runInspect,
}

var (
	inspectInput     string
	inspectMaxPages  int
	inspectForbidden []string
	inspectRequired  []string
	inspectShowText  bool
)

func init() {
	inspectCmd.Flags().StringVarP(&inspectInput, "in", "i", "", "Path to PDF file (required)")
	inspectCmd.Flags().IntVar(&inspectMaxPages, "max-pages", 0, "Maximum page count (0 disables)")
	inspectCmd.Flags().StringSliceVar(&inspectForbidden, "forbid", nil, "Phrases that must not appear")
	inspectCmd.Flags().StringSliceVar(&inspectRequired, "require", nil, "Text that must appear, e.g. the candidate name")
	inspectCmd.Flags().BoolVar(&inspectShowText, "text", false, "Print the extracted text")

	if err := inspectCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(inspectInput)
	if err != nil {
		return fmt.Errorf("failed to read PDF file: %w", err)
	}

	pages, err := validation.CountPages(data)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pages: %d\n", pages)

	if inspectShowText {
		text, err := validation.ExtractText(data)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(text))
	}

	violations, err := validation.ValidatePDF(data, validation.Options{
		MaxPages:         inspectMaxPages,
		ForbiddenPhrases: inspectForbidden,
		RequiredText:     inspectRequired,
	})
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintViolations(violations)

	if n := countErrors(violations); n > 0 {
		// exit code 1 when a hard constraint is broken
		return fmt.Errorf("inspection found %d error(s)", n)
	}
	return nil
}

func countErrors(v *types.Violations) int {
	n := 0
	for _, violation := range v.Violations {
		if violation.Severity == types.SeverityError {
			n++
		}
	}
	return n
}
