package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/resumedata"
	"github.com/jonathan/portfolio-cv/internal/textcv"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/validation"
)

var importTextCmd = &cobra.Command{
	Use:   "import-text",
	Short: "Convert a plain-text CV into a base model file",
	Long: `Parses a plain-text CV with section headers (Contact, Summary, Skills,
Experience & Projects, Education, Certifications) and writes the normalised
base model as JSON or YAML.`,
	RunE: runImportText,
}

var (
	importTextInput    string
	importTextOutput   string
	importTextFormat   string
	importTextMaxChars int
	importTextVerbose  bool
)

func init() {
	importTextCmd.Flags().StringVarP(&importTextInput, "in", "i", "", "Path to plain-text CV (required)")
	importTextCmd.Flags().StringVarP(&importTextOutput, "out", "o", "", "Path to output model file (required)")
	importTextCmd.Flags().StringVarP(&importTextFormat, "format", "f", "", "Output encoding: json or yaml (default from --out extension)")
	importTextCmd.Flags().IntVar(&importTextMaxChars, "max-chars", 0, "Warn about input lines longer than this (0 disables)")
	importTextCmd.Flags().BoolVar(&importTextVerbose, "verbose", false, "Print the recognised sections")

	if err := importTextCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := importTextCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(importTextCmd)
}

func runImportText(cmd *cobra.Command, _ []string) error {
	format := importTextFormat
	if format == "" {
		format = resumedata.FormatFromPath(importTextOutput)
	}
	if format != resumedata.FormatJSON && format != resumedata.FormatYAML {
		return fmt.Errorf("unsupported format %q (use json or yaml)", format)
	}

	doc, err := textcv.ParseFile(importTextInput)
	if err != nil {
		return err
	}
	printer := observability.NewPrinter(cmd.OutOrStdout())
	if importTextVerbose {
		printer.PrintTextImport(doc)
	}

	if importTextMaxChars > 0 {
		violations, err := validation.ValidateLineLengths(importTextInput, importTextMaxChars)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			printer.PrintViolations(&types.Violations{Violations: violations})
		}
	}

	data := textcv.Normalize(doc)
	encoded, err := resumedata.Encode(data, format)
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	// the written file must load back through the same path builds use
	if _, err := resumedata.Parse(encoded, format); err != nil {
		return fmt.Errorf("imported model is invalid: %w", err)
	}

	outputDir := filepath.Dir(importTextOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(importTextOutput, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d experience entries, %d projects\n", len(data.Experience), len(data.Projects))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", importTextOutput)
	return nil
}
