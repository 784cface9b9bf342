package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Output formats
const (
	FormatPDF = "pdf"
	FormatRTF = "rtf"
)

// Page formats
const (
	PageA4     = "a4"
	PageLetter = "letter"
)

// BuildRequest is the document build surface shared by the CLI and the HTTP API.
// Variant and Template are deliberately unchecked: unknown values fall back
// to "general" and "modern" during the build.
type BuildRequest struct {
	Variant    string `json:"variant,omitempty"`
	Template   string `json:"template,omitempty"`
	Format     string `json:"format,omitempty" validate:"omitempty,oneof=pdf rtf"`
	PageFormat string `json:"page_format,omitempty" validate:"omitempty,oneof=a4 letter"`

	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Links    string `json:"links,omitempty"`   // comma-separated
	Summary  string `json:"summary,omitempty"` // free text
	Skills   string `json:"skills,omitempty"`  // comma-separated
	Demos    string `json:"demos,omitempty"`   // comma-separated URLs
}

// Validate validates the BuildRequest using the validator.
func (r *BuildRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Overrides converts the raw form fields into an Overrides patch.
func (r *BuildRequest) Overrides() Overrides {
	ov := Overrides{
		Personal: PersonalOverride{
			Name:     strings.TrimSpace(r.Name),
			Title:    strings.TrimSpace(r.Title),
			Location: strings.TrimSpace(r.Location),
			Email:    strings.TrimSpace(r.Email),
			Phone:    strings.TrimSpace(r.Phone),
		},
		Summary:   strings.TrimSpace(r.Summary),
		Skills:    SplitList(r.Skills),
		DemoLinks: SplitList(r.Demos),
	}
	if links := SplitList(r.Links); links != nil {
		ov.Links = links
	}
	return ov
}

// SplitList splits a comma-separated list, trimming blanks. It returns nil
// when nothing remains.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
