package main

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/canvas"
	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/document"
	"github.com/jonathan/portfolio-cv/internal/logger"
	"github.com/jonathan/portfolio-cv/internal/types"
)

var buildAllCmd = &cobra.Command{
	Use:   "build-all",
	Short: "Build every variant and template combination",
	Long:  "Builds one document per role variant, template and format concurrently and writes them to the output directory.",
	RunE:  runBuildAll,
}

var (
	buildAllData        string
	buildAllText        string
	buildAllFormats     []string
	buildAllPageFormat  string
	buildAllOutput      string
	buildAllConcurrency int
	buildAllUpload      bool
	buildAllArchive     bool
)

func init() {
	buildAllCmd.Flags().StringVarP(&buildAllData, "data", "d", "", "Path to base model (JSON or YAML); defaults to the built-in sample")
	buildAllCmd.Flags().StringVarP(&buildAllText, "text", "t", "", "Path to a plain-text CV to import instead of --data")
	buildAllCmd.Flags().StringSliceVarP(&buildAllFormats, "formats", "f", []string{types.FormatPDF}, "Output formats (pdf, rtf)")
	buildAllCmd.Flags().StringVar(&buildAllPageFormat, "page", "", "Page format: a4 or letter (default a4)")
	buildAllCmd.Flags().StringVarP(&buildAllOutput, "out", "o", "", "Output directory (default current directory)")
	buildAllCmd.Flags().IntVarP(&buildAllConcurrency, "concurrency", "c", 0, "Builds running at once (0 means one per CPU)")
	buildAllCmd.Flags().BoolVar(&buildAllUpload, "upload", false, "Upload every document to object storage")
	buildAllCmd.Flags().BoolVar(&buildAllArchive, "archive", false, "Record every document in the PostgreSQL archive")

	rootCmd.AddCommand(buildAllCmd)
}

func runBuildAll(cmd *cobra.Command, _ []string) error {
	flags := config.Config{
		Data:        buildAllData,
		Text:        buildAllText,
		PageFormat:  buildAllPageFormat,
		OutDir:      buildAllOutput,
		Concurrency: buildAllConcurrency,
	}
	cfg := flags.MergeWithDefaults(fileConfig)
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, f := range buildAllFormats {
		if f != types.FormatPDF && f != types.FormatRTF {
			return fmt.Errorf("unsupported format %q (use pdf or rtf)", f)
		}
	}

	base, err := loadBase(cfg.Data, cfg.Text)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out, err := openSinks(ctx, &cfg, buildAllUpload, buildAllArchive)
	if err != nil {
		return err
	}
	defer out.Close()

	limit := cfg.Concurrency
	if limit == 0 {
		limit = runtime.NumCPU()
	}

	reqs := document.Matrix(base, buildAllFormats, cfg.PageFormat)
	start := time.Now()
	builder := document.NewBuilder(canvas.NewFPDFProvider(), document.WithLogger(logger.Logger))
	docs, err := builder.BuildMatrix(ctx, base, reqs, limit)
	if err != nil {
		return fmt.Errorf("build-all failed: %w", err)
	}

	var warnings []string
	for _, doc := range docs {
		path, err := writeDocument(doc, cfg.OutDir)
		if err != nil {
			return err
		}
		if err := out.publish(ctx, doc); err != nil {
			return err
		}
		warnings = append(warnings, doc.Warnings...)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	logger.Info().
		Int("documents", len(docs)).
		Int("concurrency", limit).
		Dur("elapsed", time.Since(start)).
		Msg("build-all finished")
	if len(warnings) > 0 {
		logger.Warn().Msg(strings.Join(dedupe(warnings), "; "))
	}
	return nil
}

// dedupe drops repeated strings, keeping first occurrences in order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
