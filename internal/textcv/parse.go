// Package textcv reads plain-text CVs with recognised section headers and
// normalises them into the base résumé model.
package textcv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Section headers recognised on a line of their own
const (
	SectionHeader             = "header"
	SectionContact            = "Contact"
	SectionSummary            = "Summary"
	SectionSkills             = "Skills"
	SectionExperienceProjects = "Experience & Projects"
	SectionExperience         = "Experience"
	SectionProjects           = "Projects"
	SectionEducation          = "Education"
	SectionCertifications     = "Certifications"
	SectionNote               = "Note"
)

var knownHeaders = map[string]bool{
	SectionContact:            true,
	SectionSummary:            true,
	SectionSkills:             true,
	SectionExperienceProjects: true,
	SectionExperience:         true,
	SectionProjects:           true,
	SectionEducation:          true,
	SectionCertifications:     true,
	SectionNote:               true,
}

// Line is one source line inside a section. Blank lines are kept as
// paragraph separators.
type Line struct {
	Text   string
	Bullet bool
	Blank  bool
	Number int
}

// Document is a parsed plain-text CV: lines grouped under the most recently
// seen header. Lines before the first header belong to SectionHeader. When a
// header appears twice only the lines after its last occurrence are kept.
type Document struct {
	Sections map[string][]Line
	// Order lists the sections in the order they first appeared.
	Order []string
}

// Lines returns the lines of a section, or nil.
func (d *Document) Lines(section string) []Line {
	return d.Sections[section]
}

// NonBlank returns the text of the non-blank lines of a section.
func (d *Document) NonBlank(section string) []string {
	var out []string
	for _, l := range d.Sections[section] {
		if !l.Blank {
			out = append(out, l.Text)
		}
	}
	return out
}

// ParseFile parses the plain-text CV at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Message: fmt.Sprintf("failed to open %s", path), Cause: err}
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse reads a plain-text CV. Lines starting with "-" are bullets (the
// marker is removed); any other non-blank line is a paragraph line.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{
		Sections: map[string][]Line{SectionHeader: {}},
		Order:    []string{SectionHeader},
	}
	cursor := SectionHeader

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	content := false

	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))

		if text == "" {
			doc.Sections[cursor] = append(doc.Sections[cursor], Line{Blank: true, Number: lineNum})
			continue
		}
		content = true

		// A repeated header starts its section over; the section keeps the
		// position where it first appeared.
		if knownHeaders[text] {
			cursor = text
			if _, seen := doc.Sections[cursor]; !seen {
				doc.Order = append(doc.Order, cursor)
			}
			doc.Sections[cursor] = []Line{}
			continue
		}

		line := Line{Text: text, Number: lineNum}
		if strings.HasPrefix(text, "-") {
			line.Bullet = true
			line.Text = strings.TrimSpace(strings.TrimLeft(text, "-"))
		}
		doc.Sections[cursor] = append(doc.Sections[cursor], line)
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: lineNum + 1, Message: "failed to read input", Cause: err}
	}
	if !content {
		return nil, &ParseError{Message: "input has no content"}
	}
	return doc, nil
}
