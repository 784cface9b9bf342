package rendering

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/jonathan/portfolio-cv/internal/types"
)

//go:embed templates/document.rtf.tmpl
var rtfTemplate string

// rtfData represents the data structure passed to the RTF template.
// Fields hold raw text; the template escapes them.
type rtfData struct {
	Name     string
	Headline string
	Contact  string
	Links    string
	Sections []rtfSection
}

type rtfSection struct {
	Title   string
	Entries []rtfEntry
}

// rtfEntry is one block inside a section: an optional bold title with
// right-hand metadata, plain lines and bullets.
type rtfEntry struct {
	Title   string
	Meta    string
	Lines   []string
	Bullets []string
}

// RenderRTF renders v as a rich-text document using the section order and
// titles of the named template (unknown names fall back to modern).
func RenderRTF(v *types.ResolvedView, templateName string) ([]byte, error) {
	if v == nil {
		return nil, &RenderError{Message: "nothing to render: resolved view is nil"}
	}

	tmpl, err := parseRTFTemplate()
	if err != nil {
		return nil, err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildRTFData(v, Lookup(templateName))); err != nil {
		return nil, &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return []byte(result.String()), nil
}

func parseRTFTemplate() (*template.Template, error) {
	tmpl, err := template.New("document.rtf").Funcs(template.FuncMap{
		"escape": EscapeRTF,
	}).Parse(rtfTemplate)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func buildRTFData(v *types.ResolvedView, t *Template) *rtfData {
	st := t.Style(v)
	data := &rtfData{
		Name:     displayName(v.Personal),
		Headline: headline(v),
		Contact:  strings.Join(contactItems(v.Personal), " | "),
		Links:    linksLine(v.Personal),
	}

	for _, s := range t.Sections {
		if !hasContent(s, v, &st) {
			continue
		}
		data.Sections = append(data.Sections, rtfSection{
			Title:   st.Title(s),
			Entries: rtfEntries(s, v, &st),
		})
	}
	return data
}

func rtfEntries(s Section, v *types.ResolvedView, st *Style) []rtfEntry {
	var entries []rtfEntry
	switch s {
	case SectionSummary:
		entries = append(entries, rtfEntry{Lines: []string{strings.TrimSpace(v.Summary)}})
	case SectionAchievements:
		var bullets []string
		for _, a := range v.Achievements {
			bullets = append(bullets, a.Text)
		}
		entries = append(entries, rtfEntry{Bullets: bullets})
	case SectionSkills:
		var lines []string
		for _, row := range skillRows(v.Skills, st.SkillGroups) {
			lines = append(lines, row.Label+" "+row.Text)
		}
		entries = append(entries, rtfEntry{Lines: lines})
	case SectionExperience:
		for _, e := range experienceFor(v, st.MaxExperience) {
			entries = append(entries, rtfEntry{Title: experienceTitle(e), Meta: e.Dates, Bullets: e.Description})
		}
	case SectionProjects:
		for _, p := range v.Projects {
			lines := nonEmpty(strings.Join(p.Technologies, listSeparator), p.Description)
			if p.Link != "" {
				lines = append(lines, cleanLink(p.Link))
			}
			entries = append(entries, rtfEntry{Title: p.Title, Lines: lines})
		}
	case SectionEducation:
		for _, e := range v.Education {
			entries = append(entries, rtfEntry{
				Title:   e.Degree,
				Meta:    e.Dates,
				Lines:   nonEmpty(educationMeta(e)),
				Bullets: e.Highlights,
			})
		}
	case SectionCertifications:
		var lines []string
		for _, c := range v.Certifications {
			lines = append(lines, certificationLine(c))
		}
		entries = append(entries, rtfEntry{Lines: lines})
	case SectionLanguages:
		var lines []string
		for _, l := range v.Languages {
			lines = append(lines, languageLine(l))
		}
		entries = append(entries, rtfEntry{Lines: lines})
	case SectionPreferences:
		entries = append(entries, rtfEntry{Bullets: preferenceItems(v.Preferences)})
	}
	return entries
}
