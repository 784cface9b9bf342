// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/portfolio-cv/internal/document"
	"github.com/jonathan/portfolio-cv/internal/textcv"
	"github.com/jonathan/portfolio-cv/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

func pad(s string, n int) string {
	if gap := n - utf8.RuneCountInString(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// PrintVariant outputs the presentation settings of one configured role variant.
func (p *Printer) PrintVariant(key string, v types.RoleVariant) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Key:       %s\n", key))
	sb.WriteString(fmt.Sprintf("Label:     %s\n", v.Label))
	if v.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline:  %s\n", v.Headline))
	}
	if v.DefaultTemplate != "" {
		sb.WriteString(fmt.Sprintf("Template:  %s\n", v.DefaultTemplate))
	}
	if v.FileLabel != "" {
		sb.WriteString(fmt.Sprintf("File:      %s\n", v.FileLabel))
	}
	if len(v.FocusAreas) > 0 {
		sb.WriteString(fmt.Sprintf("Focus:     %s\n", strings.Join(v.FocusAreas, ", ")))
	}

	p.printBox("ROLE VARIANT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResolvedView outputs a human-readable summary of what a build will render.
func (p *Printer) PrintResolvedView(v *types.ResolvedView) {
	if v == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", v.Personal.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", v.Personal.Title))
	if v.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary:  %s\n", v.Summary))
	}
	sb.WriteString(fmt.Sprintf("Skills:   %d technical, %d tools, %d soft\n",
		len(v.Skills.Technical), len(v.Skills.Tools), len(v.Skills.Soft)))
	sb.WriteString("\n")

	if len(v.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(v.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := v.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%d bullets)\n", e.Role, e.Company, len(e.Description)))
		}
		if len(v.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(v.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(v.Projects) > 0 {
		sb.WriteString("Projects:\n")
		count := min(len(v.Projects), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", v.Projects[i].Title))
		}
		if len(v.Projects) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(v.Projects)-3))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Certifications: %d  Achievements: %d  Languages: %d\n",
		len(v.Certifications), len(v.Achievements), len(v.Languages)))
	if v.Preferences.TargetRole != "" {
		sb.WriteString(fmt.Sprintf("Target role:    %s\n", v.Preferences.TargetRole))
	}

	p.printBox(fmt.Sprintf("RESOLVED VIEW: %s", strings.ToUpper(v.Variant.Key)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocument outputs the metadata of a built document and its warnings.
func (p *Printer) PrintDocument(doc *document.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:      %s\n", doc.Filename))
	sb.WriteString(fmt.Sprintf("ID:        %s\n", doc.ID))
	sb.WriteString(fmt.Sprintf("Variant:   %s\n", doc.Variant))
	sb.WriteString(fmt.Sprintf("Template:  %s\n", doc.Template))
	sb.WriteString(fmt.Sprintf("Format:    %s (%s)\n", doc.Format, doc.PageFormat))
	if doc.Pages > 0 {
		sb.WriteString(fmt.Sprintf("Pages:     %d\n", doc.Pages))
	}
	sb.WriteString(fmt.Sprintf("Size:      %d bytes\n", len(doc.Bytes)))

	for _, w := range doc.Warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", w))
	}

	p.printBox("BUILT DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTextImport outputs the sections found in a plain-text CV.
func (p *Printer) PrintTextImport(doc *textcv.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d sections:\n\n", len(doc.Order)))
	for _, section := range doc.Order {
		lines := doc.Lines(section)
		bullets := 0
		for _, l := range lines {
			if l.Bullet {
				bullets++
			}
		}
		sb.WriteString(fmt.Sprintf("%-22s %3d lines, %3d bullets\n", section, len(doc.NonBlank(section)), bullets))
	}

	p.printBox("PLAIN-TEXT CV", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any constraint violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ NO VIOLATIONS FOUND", boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		marker := "⚠"
		if v.Severity == types.SeverityError {
			marker = "✖"
		}
		sb.WriteString(fmt.Sprintf("%s %s", marker, v.Type))
		if v.Page != nil {
			sb.WriteString(fmt.Sprintf(" (page %d)", *v.Page))
		}
		if v.LineNumber != nil {
			sb.WriteString(fmt.Sprintf(" (line %d)", *v.LineNumber))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s\n", v.Details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONSTRAINT VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
