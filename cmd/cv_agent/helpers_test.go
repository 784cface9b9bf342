package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// runCommand runs a command handler in-process and returns its stdout.
// Package-level flag variables are reset after the test.
func runCommand(t *testing.T, run func(*cobra.Command, []string) error) (string, error) {
	t.Helper()
	t.Cleanup(resetFlags)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	err := run(cmd, nil)
	return out.String(), err
}

func resetFlags() {
	fileConfig = config.Config{}

	buildData, buildText, buildVariant, buildTemplate = "", "", "", ""
	buildFormat, buildPageFormat, buildOutput = "", "", ""
	buildMaxPages = 0
	buildUpload, buildArchive, buildVerbose = false, false, false
	buildRequest = types.BuildRequest{}

	buildAllData, buildAllText, buildAllPageFormat, buildAllOutput = "", "", "", ""
	buildAllFormats = []string{types.FormatPDF}
	buildAllConcurrency = 0
	buildAllUpload, buildAllArchive = false, false

	variantsData, variantsText, variantsVerbose = "", "", false

	importTextInput, importTextOutput, importTextFormat = "", "", ""
	importTextMaxChars, importTextVerbose = 0, false

	inspectInput, inspectMaxPages = "", 0
	inspectForbidden, inspectRequired, inspectShowText = nil, nil, false

	validateDataPath, validateDataSchema = "", ""
}
