// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/portfolio-cv/internal/storage"
)

// Config represents the configuration that can be loaded from a JSON or YAML
// file. All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Inputs
	Data string `json:"data,omitempty" yaml:"data,omitempty"` // Path to base model (JSON/YAML)
	Text string `json:"text,omitempty" yaml:"text,omitempty"` // Path to plain-text CV

	// Build defaults
	Variant    string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Template   string `json:"template,omitempty" yaml:"template,omitempty"`
	Format     string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=pdf rtf"`
	PageFormat string `json:"page_format,omitempty" yaml:"page_format,omitempty" validate:"omitempty,oneof=a4 letter"`
	OutDir     string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"`
	MaxPages   int    `json:"max_pages,omitempty" yaml:"max_pages,omitempty" validate:"gte=0"`
	// Concurrency bounds build-all fan-out; 0 means one worker per CPU.
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"gte=0"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,oneof=json pretty"`

	// Sinks
	DatabaseURL string              `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL
	Storage     storage.MinioConfig `json:"storage,omitempty" yaml:"storage,omitempty"`

	// Server
	Port           int      `json:"port,omitempty" yaml:"port,omitempty" validate:"gte=0,lte=65535"`
	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"`
}

// Env vars read by ApplyEnv
const (
	EnvDatabaseURL    = "DATABASE_URL"
	EnvMinioEndpoint  = "CV_MINIO_ENDPOINT"
	EnvMinioAccessKey = "CV_MINIO_ACCESS_KEY"
	EnvMinioSecretKey = "CV_MINIO_SECRET_KEY"
	EnvMinioBucket    = "CV_MINIO_BUCKET"
	EnvLogLevel       = "CV_LOG_LEVEL"
)

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides database, object storage and log settings from the
// environment. Unset variables leave the config untouched.
func (c *Config) ApplyEnv() {
	setFromEnv(&c.DatabaseURL, EnvDatabaseURL)
	setFromEnv(&c.Storage.Endpoint, EnvMinioEndpoint)
	setFromEnv(&c.Storage.AccessKey, EnvMinioAccessKey)
	setFromEnv(&c.Storage.SecretKey, EnvMinioSecretKey)
	setFromEnv(&c.Storage.Bucket, EnvMinioBucket)
	setFromEnv(&c.LogLevel, EnvLogLevel)
}

func setFromEnv(field *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*field = v
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate mutually exclusive fields
	if c.Data != "" && c.Text != "" {
		return fmt.Errorf("config error: 'data' and 'text' are mutually exclusive")
	}

	if c.Storage.Endpoint != "" && c.Storage.Bucket == "" {
		return fmt.Errorf("config error: 'storage.bucket' is required when 'storage.endpoint' is set")
	}

	// Validate file paths exist (if specified)
	for _, p := range []struct{ name, path string }{{"data", c.Data}, {"text", c.Text}} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.name, p.path)
		}
	}

	return nil
}

// MinioEnabled reports whether an object store is configured.
func (c *Config) MinioEnabled() bool {
	return c.Storage.Endpoint != "" && c.Storage.Bucket != ""
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&result.Data, defaults.Data},
		{&result.Text, defaults.Text},
		{&result.Variant, defaults.Variant},
		{&result.Template, defaults.Template},
		{&result.Format, defaults.Format},
		{&result.PageFormat, defaults.PageFormat},
		{&result.OutDir, defaults.OutDir},
		{&result.LogLevel, defaults.LogLevel},
		{&result.LogFormat, defaults.LogFormat},
		{&result.DatabaseURL, defaults.DatabaseURL},
	} {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}

	if result.Storage.Endpoint == "" {
		result.Storage = defaults.Storage
	}

	// Int fields: use default if zero
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}

	return result
}
