package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/resumedata"
	"github.com/jonathan/portfolio-cv/internal/schemas"
)

var validateDataCmd = &cobra.Command{
	Use:   "validate-data",
	Short: "Validate a base model file",
	Long:  "Validates a JSON or YAML base model against the résumé data schema and checks that ids are unique. --schema validates a JSON file against another schema instead.",
	RunE:  runValidateData,
}

var (
	validateDataPath   string
	validateDataSchema string
)

func init() {
	validateDataCmd.Flags().StringVarP(&validateDataPath, "data", "d", "", "Path to base model file (required)")
	validateDataCmd.Flags().StringVarP(&validateDataSchema, "schema", "s", "", "Path to a JSON schema to validate against instead of the built-in one")

	if err := validateDataCmd.MarkFlagRequired("data"); err != nil {
		panic(fmt.Sprintf("failed to mark data flag as required: %v", err))
	}

	rootCmd.AddCommand(validateDataCmd)
}

func runValidateData(cmd *cobra.Command, _ []string) error {
	if validateDataSchema != "" {
		if err := schemas.ValidateJSON(validateDataSchema, validateDataPath); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("validation failed: %w", err)
			}
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
		return nil
	}

	data, err := resumedata.Load(validateDataPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %d variants, %d experience entries, %d projects\n",
		len(data.RoleVariants), len(data.Experience), len(data.Projects))
	return nil
}
