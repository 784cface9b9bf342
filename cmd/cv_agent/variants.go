package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/variant"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the configured role variants",
	Long:  "Lists the role variants of the base model with their default template. With --verbose, prints the resolved content of each variant.",
	RunE:  runVariants,
}

var (
	variantsData    string
	variantsText    string
	variantsVerbose bool
)

func init() {
	variantsCmd.Flags().StringVarP(&variantsData, "data", "d", "", "Path to base model (JSON or YAML); defaults to the built-in sample")
	variantsCmd.Flags().StringVarP(&variantsText, "text", "t", "", "Path to a plain-text CV to import instead of --data")
	variantsCmd.Flags().BoolVar(&variantsVerbose, "verbose", false, "Print each variant and its resolved view")

	rootCmd.AddCommand(variantsCmd)
}

func runVariants(cmd *cobra.Command, _ []string) error {
	dataPath, textPath := variantsData, variantsText
	if dataPath == "" && textPath == "" {
		dataPath, textPath = fileConfig.Data, fileConfig.Text
	}
	base, err := loadBase(dataPath, textPath)
	if err != nil {
		return err
	}

	keys := variant.Keys(base)
	if len(keys) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No role variants configured; builds use the general layout.")
		return nil
	}

	if variantsVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		for _, key := range keys {
			printer.PrintVariant(key, base.RoleVariants[key])
			printer.PrintResolvedView(variant.Resolve(base, key, types.Overrides{}))
		}
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEY\tLABEL\tTEMPLATE")
	for _, key := range keys {
		meta := variant.Resolve(base, key, types.Overrides{}).Variant
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", key, meta.Label, meta.DefaultTemplate)
	}
	return tw.Flush()
}
