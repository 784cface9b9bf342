package rendering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// PlaceholderName is drawn when the model has no name
const PlaceholderName = "Name"

const (
	bulletGlyph   = "•"
	listSeparator = " • "
	footerLabel   = "Generated with Portfolio CV Tool"
)

// Section identifies one résumé section
type Section string

// Sections in the order they can appear
const (
	SectionSummary        Section = "summary"
	SectionAchievements   Section = "achievements"
	SectionSkills         Section = "skills"
	SectionExperience     Section = "experience"
	SectionProjects       Section = "projects"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
	SectionPreferences    Section = "preferences"
)

// SkillGroup selects one labeled sub-row of the skills section
type SkillGroup string

// Skill groups
const (
	SkillTechnical SkillGroup = "technical"
	SkillTools     SkillGroup = "tools"
	SkillSoft      SkillGroup = "soft"
)

var skillLabels = map[SkillGroup]string{
	SkillTechnical: "Technical:",
	SkillTools:     "Tools:",
	SkillSoft:      "Soft Skills:",
}

type skillRow struct {
	Label string
	Text  string
}

func skillRows(skills types.Skills, groups []SkillGroup) []skillRow {
	var rows []skillRow
	for _, g := range groups {
		var items []string
		switch g {
		case SkillTechnical:
			items = skills.Technical
		case SkillTools:
			items = skills.Tools
		case SkillSoft:
			items = skills.Soft
		}
		if len(items) == 0 {
			continue
		}
		rows = append(rows, skillRow{Label: skillLabels[g], Text: strings.Join(items, listSeparator)})
	}
	return rows
}

func displayName(p types.Personal) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return PlaceholderName
}

// contactItems lists email, phone and location, skipping blanks.
func contactItems(p types.Personal) []string {
	return nonEmpty(p.Email, p.Phone, p.Location)
}

// linksLine joins github, linkedin and portfolio without protocol or
// trailing slash. A portfolio equal to the website is not repeated.
func linksLine(p types.Personal) string {
	var parts []string
	seen := map[string]bool{}
	for _, link := range nonEmpty(p.GitHub, p.LinkedIn, p.Portfolio) {
		short := cleanLink(link)
		if seen[short] {
			continue
		}
		seen[short] = true
		parts = append(parts, short)
	}
	return strings.Join(parts, listSeparator)
}

// cleanLink strips the scheme and a trailing slash and shortens long URLs
// to 60 characters.
func cleanLink(link string) string {
	s := strings.TrimSpace(link)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimSuffix(s, "/")
	if r := []rune(s); len(r) > 60 {
		return string(r[:57]) + "..."
	}
	return s
}

func experienceTitle(e types.Experience) string {
	switch {
	case e.Role != "" && e.Company != "":
		return e.Role + " — " + e.Company
	case e.Role != "":
		return e.Role
	default:
		return e.Company
	}
}

func educationMeta(e types.Education) string {
	return strings.Join(nonEmpty(e.Institution, e.Location), ", ")
}

func certificationLine(c types.Certification) string {
	line := c.Name
	if c.Issuer != "" {
		line += " — " + c.Issuer
	}
	if c.Date != "" {
		line += " (" + c.Date + ")"
	}
	return line
}

func languageLine(l types.Language) string {
	if l.Level == "" {
		return l.Name
	}
	return l.Name + ": " + l.Level
}

// preferenceItems builds the hiring snapshot lines from the non-empty
// preference fields, in a fixed order.
func preferenceItems(p types.Preferences) []string {
	fields := []struct {
		label string
		value string
	}{
		{"Target role", p.TargetRole},
		{"Compensation", p.SalaryExpectation},
		{"Availability", p.Availability},
		{"Work mode", p.WorkMode},
		{"Notice period", p.NoticePeriod},
		{"Timezone", p.Timezone},
		{"Relocation", p.Relocation},
	}

	var items []string
	for _, f := range fields {
		if v := strings.TrimSpace(f.value); v != "" {
			items = append(items, fmt.Sprintf("%s: %s", f.label, v))
		}
	}
	if p.DailyHours > 0 {
		items = append(items, fmt.Sprintf("Daily hours: %sh", strconv.FormatFloat(p.DailyHours, 'f', -1, 64)))
	}
	return items
}

func footerText(now time.Time) string {
	return fmt.Sprintf("%s | %s", footerLabel, now.Format("2006-01-02"))
}

// experienceFor applies the template's display limit on entries.
func experienceFor(v *types.ResolvedView, limit int) []types.Experience {
	if limit > 0 && len(v.Experience) > limit {
		return v.Experience[:limit]
	}
	return v.Experience
}

// hasContent reports whether a section would draw anything for v.
func hasContent(s Section, v *types.ResolvedView, st *Style) bool {
	switch s {
	case SectionSummary:
		return strings.TrimSpace(v.Summary) != ""
	case SectionAchievements:
		return len(v.Achievements) > 0
	case SectionSkills:
		return len(skillRows(v.Skills, st.SkillGroups)) > 0
	case SectionExperience:
		return len(v.Experience) > 0
	case SectionProjects:
		return len(v.Projects) > 0
	case SectionEducation:
		return len(v.Education) > 0
	case SectionCertifications:
		return len(v.Certifications) > 0
	case SectionLanguages:
		return len(v.Languages) > 0
	case SectionPreferences:
		return len(preferenceItems(v.Preferences)) > 0
	default:
		return false
	}
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
