package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-cv/internal/storage"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"variant": "fullstack",
		"template": "bold",
		"format": "rtf",
		"max_pages": 2,
		"storage": {"endpoint": "localhost:9000", "bucket": "cv"}
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "fullstack", cfg.Variant)
	assert.Equal(t, "bold", cfg.Template)
	assert.Equal(t, "rtf", cfg.Format)
	assert.Equal(t, 2, cfg.MaxPages)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.True(t, cfg.MinioEnabled())
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := "variant: ai_engineer\npage_format: letter\nport: 8090\nallowed_origins:\n  - http://localhost:3000\n"

	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "ai_engineer", cfg.Variant)
	assert.Equal(t, "letter", cfg.PageFormat)
	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.MinioEnabled())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("variant: [unclosed"), 0644))

	_, err := LoadConfig(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Data: "data.json",
		Text: "cv.txt",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_TaggedFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"format", Config{Format: "docx"}},
		{"page format", Config{PageFormat: "a3"}},
		{"log level", Config{LogLevel: "trace"}},
		{"log format", Config{LogFormat: "xml"}},
		{"negative max pages", Config{MaxPages: -1}},
		{"port", Config{Port: 70000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
		})
	}
}

func TestValidate_StorageNeedsBucket(t *testing.T) {
	cfg := &Config{Storage: storage.MinioConfig{Endpoint: "localhost:9000"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.bucket")
}

func TestValidate_MissingDataFile(t *testing.T) {
	cfg := &Config{Data: filepath.Join(t.TempDir(), "missing.yaml")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(dataFile, []byte("personal: {}\n"), 0644))

	cfg := &Config{
		Data:       dataFile,
		Format:     "pdf",
		PageFormat: "a4",
		LogLevel:   "debug",
		LogFormat:  "pretty",
		Port:       8080,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "postgres://cv@localhost/cv")
	t.Setenv(EnvMinioEndpoint, "minio:9000")
	t.Setenv(EnvMinioBucket, "documents")
	t.Setenv(EnvLogLevel, "")

	cfg := &Config{LogLevel: "warn", Storage: storage.MinioConfig{AccessKey: "from-file"}}
	cfg.ApplyEnv()

	assert.Equal(t, "postgres://cv@localhost/cv", cfg.DatabaseURL)
	assert.Equal(t, "minio:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "documents", cfg.Storage.Bucket)
	assert.Equal(t, "from-file", cfg.Storage.AccessKey)
	assert.Equal(t, "warn", cfg.LogLevel, "empty env values are ignored")
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Variant:    "general",
		Template:   "modern",
		Format:     "pdf",
		PageFormat: "a4",
		OutDir:     "out",
		Port:       8080,
		MaxPages:   2,
	}

	partial := Config{
		Variant: "fullstack",
		Format:  "rtf",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "fullstack", merged.Variant)
	assert.Equal(t, "rtf", merged.Format)

	// Default values should fill in empty fields
	assert.Equal(t, "modern", merged.Template)
	assert.Equal(t, "a4", merged.PageFormat)
	assert.Equal(t, "out", merged.OutDir)
	assert.Equal(t, 8080, merged.Port)
	assert.Equal(t, 2, merged.MaxPages)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Variant: "general",
		Port:    9000,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "general", merged.Variant)
	assert.Equal(t, 9000, merged.Port)
}
