package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-cv/internal/validation"
)

func TestBuildCommand_DefaultsToSample(t *testing.T) {
	buildOutput = t.TempDir()

	out, err := runCommand(t, runBuild)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, buildOutput, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "Alex_Morgan_general_"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	pages, err := validation.CountPages(data)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pages, 1)
}

func TestBuildCommand_VariantTemplateAndOverrides(t *testing.T) {
	dir := t.TempDir()
	buildOutput = dir
	buildVariant = "fullstack"
	buildTemplate = "bold"
	buildRequest.Name = "Jane Doe"
	buildVerbose = true

	out, err := runCommand(t, runBuild)
	require.NoError(t, err)

	assert.Contains(t, out, "BUILT DOCUMENT")
	expected := filepath.Join(dir, "Jane_Doe_fullstack_bold_CV_")
	assert.Contains(t, out, expected)

	text, err := extractFirstFile(t, dir)
	require.NoError(t, err)
	assert.Contains(t, strings.ReplaceAll(text, " ", ""), "JaneDoe")
}

func extractFirstFile(t *testing.T, dir string) (string, error) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	return validation.ExtractText(data)
}

func TestBuildCommand_RTF(t *testing.T) {
	buildOutput = t.TempDir()
	buildFormat = "rtf"
	buildTemplate = "classic"

	out, err := runCommand(t, runBuild)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Contains(t, filepath.Base(path), "_classic_CV_")
	assert.Equal(t, ".rtf", filepath.Ext(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{\rtf1`))
}

func TestBuildCommand_FromTextCV(t *testing.T) {
	buildOutput = t.TempDir()
	buildText = filepath.Join("..", "..", "internal", "textcv", "testdata", "sample.txt")

	out, err := runCommand(t, runBuild)
	require.NoError(t, err)
	assert.Contains(t, out, "Alex_Morgan_general_modern_CV_")
}

func TestBuildCommand_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
		want  string
	}{
		{
			name:  "bad format",
			setup: func() { buildFormat = "docx" },
			want:  "config error",
		},
		{
			name: "data and text together",
			setup: func() {
				buildData = filepath.Join("..", "..", "internal", "textcv", "testdata", "sample.txt")
				buildText = buildData
			},
			want: "mutually exclusive",
		},
		{
			name:  "missing data file",
			setup: func() { buildData = filepath.Join(t.TempDir(), "missing.yaml") },
			want:  "not found",
		},
		{
			name:  "upload without storage",
			setup: func() { buildUpload = true },
			want:  "--upload requires",
		},
		{
			name:  "archive without database",
			setup: func() { buildArchive = true },
			want:  "DATABASE_URL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buildOutput = t.TempDir()
			tt.setup()
			_, err := runCommand(t, runBuild)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuildCommand_MaxPagesReportsOverflow(t *testing.T) {
	buildOutput = t.TempDir()
	buildMaxPages = 1

	out, err := runCommand(t, runBuild)
	require.NoError(t, err, "page overflow is reported, not fatal")

	data, err := os.ReadFile(strings.TrimSpace(lastLine(out)))
	require.NoError(t, err)
	pages, err := validation.CountPages(data)
	require.NoError(t, err)
	if pages > 1 {
		assert.Contains(t, out, "page_overflow")
	} else {
		assert.NotContains(t, out, "page_overflow")
	}
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}

func TestBuildAllCommand(t *testing.T) {
	dir := t.TempDir()
	buildAllOutput = dir
	buildAllFormats = []string{"pdf", "rtf"}
	buildAllConcurrency = 3

	out, err := runCommand(t, runBuildAll)
	require.NoError(t, err)

	// 4 variants x 4 templates x 2 formats
	paths := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, paths, 32)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 32, "every combination gets its own file name")
}

func TestBuildAllCommand_RejectsUnknownFormat(t *testing.T) {
	buildAllOutput = t.TempDir()
	buildAllFormats = []string{"pdf", "odt"}

	_, err := runCommand(t, runBuildAll)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "odt")
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, dedupe([]string{"a", "b", "a", "b"}))
	assert.Empty(t, dedupe(nil))
}
