package rendering

import (
	"github.com/jonathan/portfolio-cv/internal/canvas"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// Vertical rhythm in millimetres
const (
	headingAdvance = 7.0
	bulletIndent   = 4.0
	entryAdvance   = 5.0
	ruleLength     = 30.0
	dateOffset     = 40.0
	skillLabelW    = 20.0
	footerOffset   = 8.0
)

// Style is the per-build style configuration handed to every section renderer.
type Style struct {
	Primary canvas.Color
	Accent  canvas.Color
	Dark    canvas.Color
	Muted   canvas.Color

	HeadingSize  float64
	HeadingColor canvas.Color
	AccentRule   bool

	BodySize   float64
	SmallSize  float64
	LineHeight float64
	SectionGap float64

	Titles        map[Section]string
	SkillGroups   []SkillGroup
	MaxExperience int
}

// Title returns the heading for s.
func (st *Style) Title(s Section) string {
	if t, ok := st.Titles[s]; ok {
		return t
	}
	return defaultTitles[s]
}

var defaultTitles = map[Section]string{
	SectionSummary:        "PROFESSIONAL SUMMARY",
	SectionAchievements:   "KEY ACHIEVEMENTS",
	SectionSkills:         "CORE COMPETENCIES",
	SectionExperience:     "EXPERIENCE",
	SectionProjects:       "SELECTED PROJECTS",
	SectionEducation:      "EDUCATION",
	SectionCertifications: "CERTIFICATIONS",
	SectionLanguages:      "LANGUAGES",
	SectionPreferences:    "HIRING SNAPSHOT",
}

func (st *Style) heading(c *canvas.Canvas) {
	c.SetFont(canvas.Font{Style: "B", Size: st.HeadingSize})
	c.SetColor(st.HeadingColor)
}

func (st *Style) body(c *canvas.Canvas) {
	c.SetFont(canvas.Font{Size: st.BodySize})
	c.SetColor(st.Dark)
}

func (st *Style) small(c *canvas.Canvas, col canvas.Color) {
	c.SetFont(canvas.Font{Size: st.SmallSize})
	c.SetColor(col)
}

func (st *Style) strong(c *canvas.Canvas, size float64) {
	c.SetFont(canvas.Font{Style: "B", Size: size})
	c.SetColor(st.Dark)
}

// baseStyle fills in the palette from the variant colors.
func baseStyle(v *types.ResolvedView) Style {
	primary := canvas.ParseHex(v.Variant.PrimaryColor, canvas.Primary)
	return Style{
		Primary:      primary,
		Accent:       canvas.ParseHex(v.Variant.AccentColor, canvas.Accent),
		Dark:         canvas.Dark,
		Muted:        canvas.Muted,
		HeadingSize:  10,
		HeadingColor: primary,
		AccentRule:   true,
		BodySize:     9,
		SmallSize:    8,
		LineHeight:   4,
		SectionGap:   3,
		SkillGroups:  []SkillGroup{SkillTechnical, SkillTools, SkillSoft},
	}
}
