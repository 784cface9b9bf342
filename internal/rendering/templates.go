package rendering

import (
	"strings"
	"time"

	"github.com/jonathan/portfolio-cv/internal/canvas"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// DefaultTemplate is used for unknown template names
const DefaultTemplate = "modern"

// Options carry per-build values that are not part of the resolved view
type Options struct {
	// Now stamps the footer. Zero means time.Now.
	Now time.Time
}

// Template is one named layout: page geometry, section order, header and style.
type Template struct {
	Name     string
	Margins  canvas.Margins
	Sections []Section

	header func(c *canvas.Canvas, v *types.ResolvedView, st *Style)
	style  func(v *types.ResolvedView) Style
}

var templateOrder = []string{"modern", "classic", "minimal", "bold"}

var templates = map[string]*Template{
	"modern": {
		Name:    "modern",
		Margins: canvas.Margins{Top: 15, Bottom: 15, Left: 12, Right: 12},
		Sections: []Section{
			SectionSummary, SectionAchievements, SectionSkills, SectionExperience, SectionProjects,
			SectionEducation, SectionCertifications, SectionLanguages, SectionPreferences,
		},
		header: modernHeader,
		style:  modernStyle,
	},
	"classic": {
		Name:    "classic",
		Margins: canvas.Margins{Top: 15, Bottom: 15, Left: 15, Right: 15},
		Sections: []Section{
			SectionSummary, SectionAchievements, SectionExperience, SectionProjects,
			SectionEducation, SectionSkills, SectionPreferences,
		},
		header: classicHeader,
		style:  classicStyle,
	},
	"minimal": {
		Name:    "minimal",
		Margins: canvas.Margins{Top: 12, Bottom: 15, Left: 14, Right: 14},
		Sections: []Section{
			SectionAchievements, SectionExperience, SectionProjects, SectionEducation,
			SectionSkills, SectionPreferences,
		},
		header: minimalHeader,
		style:  minimalStyle,
	},
	"bold": {
		Name:    "bold",
		Margins: canvas.Margins{Top: 20, Bottom: 15, Left: boldMainLeft, Right: 12},
		Sections: []Section{
			SectionSummary, SectionAchievements, SectionExperience, SectionProjects,
			SectionSkills, SectionPreferences,
		},
		header: boldHeader,
		style:  boldStyle,
	},
}

// Lookup returns the named template, falling back to modern.
func Lookup(name string) *Template {
	if t, ok := templates[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return templates[DefaultTemplate]
}

// Names lists the template names in display order.
func Names() []string {
	return append([]string(nil), templateOrder...)
}

// Known reports whether name is a configured template.
func Known(name string) bool {
	_, ok := templates[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Style returns the style the template uses for v.
func (t *Template) Style(v *types.ResolvedView) Style {
	return t.style(v)
}

// Compose draws the whole document for v onto c: header, every section in
// template order and the footer on the final page. c must have been created
// with t.Margins.
func (t *Template) Compose(c *canvas.Canvas, v *types.ResolvedView, opts Options) error {
	if v == nil {
		return &RenderError{Message: "nothing to render: resolved view is nil"}
	}
	st := t.style(v)

	t.header(c, v, &st)
	for _, s := range t.Sections {
		if !hasContent(s, v, &st) {
			continue
		}
		sectionRenderers[s](c, v, &st)
		c.Advance(st.SectionGap)
	}
	drawFooter(c, &st, opts.now())

	if err := c.Err(); err != nil {
		return &RenderError{Message: "failed to compose " + t.Name + " template", Cause: err}
	}
	return nil
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// drawFooter centers the footer at a fixed offset from the bottom of the
// current page.
func drawFooter(c *canvas.Canvas, st *Style, now time.Time) {
	page := c.PageSize()
	c.SetColumn(0, page.Width)
	st.small(c, st.Muted)

	text := footerText(now)
	x := (page.Width - c.StringWidth(text)) / 2
	c.DrawText(text, x, page.Height-footerOffset, canvas.TextOptions{})
	c.ResetColumn()
}

func headline(v *types.ResolvedView) string {
	if t := strings.TrimSpace(v.Personal.Title); t != "" {
		return t
	}
	return v.Variant.Headline
}

func modernStyle(v *types.ResolvedView) Style {
	return baseStyle(v)
}

func modernHeader(c *canvas.Canvas, v *types.ResolvedView, st *Style) {
	x, y := c.Left(), c.Y()
	contactX := c.PageSize().Width - x - 60

	c.SetFont(canvas.Font{Style: "B", Size: 22})
	c.SetColor(st.Primary)
	y = c.ClampBaseline(y)
	c.DrawText(displayName(v.Personal), x, y, canvas.TextOptions{MaxWidth: contactX - x - 2})

	c.SetFont(canvas.Font{Size: 11})
	c.SetColor(st.Accent)
	c.DrawText(headline(v), x, y+8, canvas.TextOptions{MaxWidth: contactX - x - 2})

	c.SetFont(canvas.Font{Size: st.BodySize})
	c.SetColor(st.Muted)
	for i, item := range contactItems(v.Personal) {
		c.DrawText(item, contactX, y+2+float64(i)*6, canvas.TextOptions{MaxWidth: 60})
	}

	ruleY := y + 13
	if links := linksLine(v.Personal); links != "" {
		st.small(c, st.Primary)
		c.DrawText(links, x, y+13, canvas.TextOptions{})
		ruleY += 3
	}
	c.SetStroke(st.Accent, 0.5)
	c.DrawRule(x, ruleY, c.ContentWidth())
	c.SetY(ruleY + 7)
}

func classicStyle(v *types.ResolvedView) Style {
	st := baseStyle(v)
	st.HeadingSize = 11
	st.AccentRule = false
	st.SectionGap = 2
	st.Titles = map[Section]string{
		SectionSummary:    "PROFESSIONAL PROFILE",
		SectionExperience: "WORK EXPERIENCE",
		SectionSkills:     "SKILLS",
	}
	return st
}

func classicHeader(c *canvas.Canvas, v *types.ResolvedView, st *Style) {
	x, y := c.Left(), c.Y()

	c.SetFont(canvas.Font{Style: "B", Size: 18})
	c.SetColor(st.Dark)
	y = c.ClampBaseline(y)
	c.DrawText(displayName(v.Personal), x, y, canvas.TextOptions{})

	c.SetFont(canvas.Font{Size: 10})
	c.SetColor(st.Primary)
	c.DrawText(headline(v), x, y+7, canvas.TextOptions{})

	st.small(c, st.Dark)
	c.DrawText(strings.Join(contactItems(v.Personal), " | "), x, y+12, canvas.TextOptions{})

	advance := 18.0
	if links := linksLine(v.Personal); links != "" {
		st.small(c, st.Muted)
		c.DrawText(links, x, y+16, canvas.TextOptions{})
		advance += 4
	}
	c.SetY(y + advance)
}

func minimalStyle(v *types.ResolvedView) Style {
	st := baseStyle(v)
	st.HeadingColor = st.Dark
	st.AccentRule = false
	st.SectionGap = 2
	st.MaxExperience = 3
	st.Titles = map[Section]string{SectionSkills: "SKILLS"}
	return st
}

func minimalHeader(c *canvas.Canvas, v *types.ResolvedView, st *Style) {
	x, y := c.Left(), c.Y()

	c.SetFont(canvas.Font{Style: "B", Size: 16})
	c.SetColor(st.Dark)
	y = c.ClampBaseline(y)
	c.DrawText(displayName(v.Personal), x, y, canvas.TextOptions{})

	c.SetFont(canvas.Font{Size: 9})
	c.SetColor(st.Muted)
	c.DrawText(headline(v), x, y+6, canvas.TextOptions{})

	st.small(c, st.Muted)
	contact := append(contactItems(v.Personal), nonEmpty(linksLine(v.Personal))...)
	c.DrawText(strings.Join(contact, " | "), x, y+11, canvas.TextOptions{})
	c.SetY(y + 16)
}

const (
	boldSidebarWidth = 50.0
	boldMainLeft     = 60.0
)

func boldStyle(v *types.ResolvedView) Style {
	st := baseStyle(v)
	st.SectionGap = 2
	st.Titles = map[Section]string{SectionSummary: "SUMMARY"}
	return st
}

// boldHeader paints the sidebar on the first page only; overflow pages
// continue in the main column without it.
func boldHeader(c *canvas.Canvas, v *types.ResolvedView, st *Style) {
	page := c.PageSize()
	c.FillRect(0, 0, boldSidebarWidth, page.Height, st.Primary)

	c.SetColumn(8, boldSidebarWidth-10)
	c.SetFont(canvas.Font{Style: "B", Size: 8})
	c.SetColor(canvas.White)
	c.DrawText("CONTACT", 8, 20, canvas.TextOptions{})

	c.SetFont(canvas.Font{Size: st.BodySize})
	row := 0
	for _, item := range append(contactItems(v.Personal), linkItems(v.Personal)...) {
		c.DrawText(item, 8, 26+float64(row)*8, canvas.TextOptions{MaxWidth: 35, LineHeight: 3.5})
		row++
	}
	c.ResetColumn()

	x := c.Left()
	c.SetFont(canvas.Font{Style: "B", Size: 18})
	c.SetColor(st.Dark)
	y := c.ClampBaseline(20)
	c.DrawText(displayName(v.Personal), x, y, canvas.TextOptions{})

	c.SetFont(canvas.Font{Size: 11})
	c.SetColor(st.Primary)
	c.DrawText(headline(v), x, y+8, canvas.TextOptions{})
	c.SetY(y + 18)
}

// linkItems lists the cleaned profile links one per entry.
func linkItems(p types.Personal) []string {
	line := linksLine(p)
	if line == "" {
		return nil
	}
	return strings.Split(line, listSeparator)
}
