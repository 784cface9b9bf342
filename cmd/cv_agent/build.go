package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/canvas"
	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/document"
	"github.com/jonathan/portfolio-cv/internal/logger"
	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/validation"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build one CV document",
	Long: `Resolves a role variant against the base model, applies any overrides and
lays the result out with the chosen template as a PDF or RTF file.`,
	RunE: runBuild,
}

var (
	buildData       string
	buildText       string
	buildVariant    string
	buildTemplate   string
	buildFormat     string
	buildPageFormat string
	buildOutput     string
	buildMaxPages   int
	buildUpload     bool
	buildArchive    bool
	buildVerbose    bool
	buildRequest    types.BuildRequest
)

func init() {
	buildCmd.Flags().StringVarP(&buildData, "data", "d", "", "Path to base model (JSON or YAML); defaults to the built-in sample")
	buildCmd.Flags().StringVarP(&buildText, "text", "t", "", "Path to a plain-text CV to import instead of --data")
	buildCmd.Flags().StringVarP(&buildVariant, "variant", "v", "", "Role variant key (default \"general\")")
	buildCmd.Flags().StringVar(&buildTemplate, "template", "", "Template: modern, classic, minimal, bold (default: the variant's)")
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "", "Output format: pdf or rtf (default pdf)")
	buildCmd.Flags().StringVar(&buildPageFormat, "page", "", "Page format: a4 or letter (default a4)")
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "Output directory (default current directory)")
	buildCmd.Flags().IntVar(&buildMaxPages, "max-pages", 0, "Warn when the PDF has more pages than this (0 disables)")
	buildCmd.Flags().BoolVar(&buildUpload, "upload", false, "Upload the document to object storage")
	buildCmd.Flags().BoolVar(&buildArchive, "archive", false, "Record the document in the PostgreSQL archive")
	buildCmd.Flags().BoolVar(&buildVerbose, "verbose", false, "Print a summary of the built document")
	addOverrideFlags(buildCmd, &buildRequest)

	rootCmd.AddCommand(buildCmd)
}

// addOverrideFlags registers the per-build override fields of req.
func addOverrideFlags(cmd *cobra.Command, req *types.BuildRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Override the candidate name")
	cmd.Flags().StringVar(&req.Title, "title", "", "Override the headline title")
	cmd.Flags().StringVar(&req.Location, "location", "", "Override the location")
	cmd.Flags().StringVar(&req.Email, "email", "", "Override the email address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Override the phone number")
	cmd.Flags().StringVar(&req.Links, "links", "", "Comma-separated profile links")
	cmd.Flags().StringVar(&req.Summary, "summary", "", "Replace the summary paragraph")
	cmd.Flags().StringVar(&req.Skills, "skills", "", "Comma-separated skills shown first")
	cmd.Flags().StringVar(&req.Demos, "demos", "", "Comma-separated demo URLs")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	flags := config.Config{
		Data:       buildData,
		Text:       buildText,
		Variant:    buildVariant,
		Template:   buildTemplate,
		Format:     buildFormat,
		PageFormat: buildPageFormat,
		OutDir:     buildOutput,
		MaxPages:   buildMaxPages,
	}
	cfg := flags.MergeWithDefaults(fileConfig)
	if err := cfg.Validate(); err != nil {
		return err
	}

	base, err := loadBase(cfg.Data, cfg.Text)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out, err := openSinks(ctx, &cfg, buildUpload, buildArchive)
	if err != nil {
		return err
	}
	defer out.Close()

	req := buildRequest
	req.Variant = cfg.Variant
	req.Template = cfg.Template
	req.Format = cfg.Format
	req.PageFormat = cfg.PageFormat

	builder := document.NewBuilder(canvas.NewFPDFProvider(), document.WithLogger(logger.Logger))
	doc, err := builder.Build(base, req)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	path, err := writeDocument(doc, cfg.OutDir)
	if err != nil {
		return err
	}
	if err := out.publish(ctx, doc); err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if buildVerbose {
		printer.PrintDocument(doc)
	}
	if cfg.MaxPages > 0 && doc.Format == types.FormatPDF {
		violations, err := validation.ValidatePDF(doc.Bytes, validation.Options{
			MaxPages:     cfg.MaxPages,
			RequiredText: []string{base.Personal.Name},
		})
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
		if len(violations.Violations) > 0 {
			printer.PrintViolations(violations)
		}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
