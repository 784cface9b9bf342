// Package schemas holds the JSON Schema documents shipped with the binary.
package schemas

import "embed"

// Schema file names inside FS
const (
	ResumeData   = "resume_data.schema.json"
	BuildRequest = "build_request.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
