// Package resumedata loads the base résumé model from JSON or YAML and ships a built-in sample.
package resumedata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/schemas"
	"github.com/jonathan/portfolio-cv/internal/types"
	root "github.com/jonathan/portfolio-cv/schemas"
	"gopkg.in/yaml.v3"
)

// Supported encodings
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

//go:embed sample.yaml
var sampleYAML []byte

// Sample returns a fresh copy of the built-in base model.
func Sample() (*types.ResumeData, error) {
	return Parse(sampleYAML, FormatYAML)
}

// FormatFromPath picks the encoding from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a base model from disk, validates it against the embedded
// schema and checks id uniqueness.
func Load(path string) (*types.ResumeData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	data, err := Parse(content, FormatFromPath(path))
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}
	return data, nil
}

// Parse decodes and validates a base model held in memory.
func Parse(content []byte, format string) (*types.ResumeData, error) {
	var data types.ResumeData

	switch format {
	case FormatYAML:
		var generic interface{}
		if err := yaml.Unmarshal(content, &generic); err != nil {
			return nil, &LoadError{Message: "invalid YAML", Cause: err}
		}
		if err := schemas.ValidateEmbeddedValue(root.ResumeData, generic); err != nil {
			return nil, &LoadError{Message: "schema validation failed", Cause: err}
		}
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, &LoadError{Message: "failed to decode YAML", Cause: err}
		}
	case FormatJSON:
		if !json.Valid(content) {
			return nil, &LoadError{Message: "invalid JSON"}
		}
		if err := schemas.ValidateResumeData(content); err != nil {
			return nil, &LoadError{Message: "schema validation failed", Cause: err}
		}
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, &LoadError{Message: "failed to decode JSON", Cause: err}
		}
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported format %q", format)}
	}

	if err := CheckIDs(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CheckIDs reports the first duplicated id in the experience, project,
// certification or achievement lists.
func CheckIDs(data *types.ResumeData) error {
	lists := []struct {
		kind string
		ids  []string
	}{
		{"experience", experienceIDs(data.Experience)},
		{"project", projectIDs(data.Projects)},
		{"certification", certificationIDs(data.Certifications)},
		{"achievement", achievementIDs(data.Achievements)},
	}

	for _, l := range lists {
		seen := make(map[string]bool, len(l.ids))
		for _, id := range l.ids {
			if seen[id] {
				return &LoadError{Message: fmt.Sprintf("duplicate %s id %q", l.kind, id)}
			}
			seen[id] = true
		}
	}
	return nil
}

// Encode serializes a base model in the requested format.
func Encode(data *types.ResumeData, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(data)
	case FormatJSON:
		return json.MarshalIndent(data, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func experienceIDs(entries []types.Experience) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func projectIDs(entries []types.Project) []string {
	ids := make([]string, len(entries))
	for i, p := range entries {
		ids[i] = p.ID
	}
	return ids
}

func certificationIDs(entries []types.Certification) []string {
	ids := make([]string, len(entries))
	for i, c := range entries {
		ids[i] = c.ID
	}
	return ids
}

func achievementIDs(entries []types.Achievement) []string {
	ids := make([]string, len(entries))
	for i, a := range entries {
		ids[i] = a.ID
	}
	return ids
}
