package resumedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/portfolio-cv/internal/schemas"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	data, err := Sample()
	require.NoError(t, err)

	assert.Equal(t, "Alex Morgan", data.Personal.Name)
	assert.Len(t, data.Experience, 3)
	assert.Len(t, data.Projects, 3)
	assert.Len(t, data.Certifications, 3)
	assert.Len(t, data.Achievements, 4)
	assert.Len(t, data.Education, 2)
	assert.Len(t, data.Languages, 3)
	assert.Equal(t, 8.0, data.Preferences.DailyHours)

	require.Contains(t, data.RoleVariants, types.DefaultVariant)
	for _, key := range []string{"general", "data_scientist", "fullstack", "ai_engineer"} {
		v, ok := data.RoleVariants[key]
		require.True(t, ok, "variant %s", key)
		assert.NotEmpty(t, v.Label)
		assert.NotEmpty(t, v.FileLabel)
		assert.Contains(t, data.Summaries, v.SummaryKey)
		assert.Contains(t, data.TargetRoles, key)
	}

	assert.Equal(t, "classic", data.RoleVariants["data_scientist"].DefaultTemplate)
	assert.Equal(t, "bold", data.RoleVariants["ai_engineer"].DefaultTemplate)
	assert.Equal(t, 3, data.RoleVariants["data_scientist"].ExperienceOverrides["colorweave_ceo"].MaxBullets)
	assert.Equal(t, []string{"data_bi_intern"}, data.RoleVariants["fullstack"].IncludeExperienceIDs)
}

func TestSample_ReturnsIndependentCopies(t *testing.T) {
	a, err := Sample()
	require.NoError(t, err)
	b, err := Sample()
	require.NoError(t, err)

	a.Experience[0].Description[0] = "changed"
	assert.NotEqual(t, a.Experience[0].Description[0], b.Experience[0].Description[0])
}

func TestLoad_JSONAndYAMLRoundTrip(t *testing.T) {
	sample, err := Sample()
	require.NoError(t, err)
	dir := t.TempDir()

	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			content, err := Encode(sample, format)
			require.NoError(t, err)

			path := filepath.Join(dir, "resume."+format)
			require.NoError(t, os.WriteFile(path, content, 0644))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, sample.Personal, loaded.Personal)
			assert.Equal(t, sample.Experience, loaded.Experience)
			assert.Equal(t, sample.RoleVariants["fullstack"].ExperienceIDs, loaded.RoleVariants["fullstack"].ExperienceIDs)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		file       string
		content    string
		wantSchema bool
		wantMsg    string
	}{
		{
			name:    "malformed json",
			file:    "bad.json",
			content: "{ nope",
			wantMsg: "invalid JSON",
		},
		{
			name:    "malformed yaml",
			file:    "bad.yaml",
			content: "personal: [unclosed",
			wantMsg: "invalid YAML",
		},
		{
			name:       "schema violation",
			file:       "schema.json",
			content:    `{"personal": {}, "experience": [{"role": "Dev", "company": "Acme"}]}`,
			wantSchema: true,
		},
		{
			name: "duplicate experience id",
			file: "dup.yml",
			content: `
personal: {name: Jane}
experience:
  - {id: e1, role: Dev, company: Acme}
  - {id: e1, role: Lead, company: Beta}
`,
			wantMsg: `duplicate experience id "e1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, path, loadErr.Path)
			if tt.wantMsg != "" {
				assert.Contains(t, loadErr.Message, tt.wantMsg)
			}
			if tt.wantSchema {
				var validationErr *schemas.ValidationError
				assert.ErrorAs(t, err, &validationErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("cv.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("CV.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("cv.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("cv"))
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
