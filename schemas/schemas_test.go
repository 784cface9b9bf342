package schemas_test

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/portfolio-cv/internal/schemas"
	root "github.com/jonathan/portfolio-cv/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	root.ResumeData,
	root.BuildRequest,
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasProps, "schema should declare properties")
		})
	}
}

func TestEmbeddedFS_MatchesDirectory(t *testing.T) {
	matches, err := fs.Glob(root.FS, "*.schema.json")
	require.NoError(t, err)
	assert.ElementsMatch(t, schemaFiles, matches)

	for _, name := range schemaFiles {
		embedded, err := root.FS.ReadFile(name)
		require.NoError(t, err)
		onDisk, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, onDisk, embedded)
	}
}

func TestResumeDataSchema_ValidatesMinimalDocument(t *testing.T) {
	schema, err := root.FS.ReadFile(root.ResumeData)
	require.NoError(t, err)

	doc := `{
		"personal": {"name": "Jane Doe"},
		"experience": [
			{"id": "e1", "role": "Engineer", "company": "Acme", "description": ["Shipped things"]}
		],
		"roleVariants": {
			"general": {"label": "General", "primaryColor": "#0b3d91", "fileLabel": "general"}
		}
	}`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestResumeDataSchema_RejectsBadColor(t *testing.T) {
	schema, err := root.FS.ReadFile(root.ResumeData)
	require.NoError(t, err)

	doc := `{
		"personal": {},
		"experience": [],
		"roleVariants": {"general": {"primaryColor": "blue"}}
	}`
	err = schemas.ValidateJSONString(string(schema), doc)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestBuildRequestSchema_RejectsUnknownFormat(t *testing.T) {
	schema, err := root.FS.ReadFile(root.BuildRequest)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(schema), `{"variant": "fullstack", "format": "pdf"}`))

	err = schemas.ValidateJSONString(string(schema), `{"format": "docx"}`)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
