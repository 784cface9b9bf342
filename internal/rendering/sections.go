package rendering

import (
	"strings"

	"github.com/jonathan/portfolio-cv/internal/canvas"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// SectionRenderer draws one section at the cursor and returns the new
// cursor y. A section with nothing to show draws nothing and leaves the
// cursor where it was.
type SectionRenderer func(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64

var sectionRenderers = map[Section]SectionRenderer{
	SectionSummary:        renderSummary,
	SectionAchievements:   renderAchievements,
	SectionSkills:         renderSkills,
	SectionExperience:     renderExperience,
	SectionProjects:       renderProjects,
	SectionEducation:      renderEducation,
	SectionCertifications: renderCertifications,
	SectionLanguages:      renderLanguages,
	SectionPreferences:    renderPreferences,
}

// drawHeading keeps the heading, its rule and the first block of the body
// on one page.
func drawHeading(c *canvas.Canvas, st *Style, title string, firstBlock float64) {
	st.heading(c)
	c.EnsureSpace(headingAdvance + firstBlock)
	y := c.ClampBaseline(c.Y())

	c.DrawText(title, c.Left(), y, canvas.TextOptions{})
	if st.AccentRule {
		c.SetStroke(st.Accent, 0.3)
		c.DrawRule(c.Left(), y+1, ruleLength)
	}
	c.SetY(y + headingAdvance)
	st.body(c)
}

// blockHeight is the space taken by n wrapped lines when the first line
// advances by first and every further line by lineHeight.
func blockHeight(n int, first, lineHeight float64) float64 {
	if n <= 1 {
		return first
	}
	return first + float64(n-1)*lineHeight
}

// drawBullet wraps "• text" to the column minus the bullet indent and
// checks for space before every line, so a long list can split across
// pages.
func drawBullet(c *canvas.Canvas, text string, lineHeight float64) {
	width := c.ContentWidth() - bulletIndent
	for _, line := range c.MeasureWrap(bulletGlyph+" "+text, width) {
		c.EnsureSpace(lineHeight)
		c.DrawText(line, c.Left()+bulletIndent/2, c.Y(), canvas.TextOptions{MaxWidth: width, LineHeight: lineHeight})
		c.Advance(lineHeight)
	}
}

func renderSummary(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64 {
	summary := strings.TrimSpace(v.Summary)
	if summary == "" {
		return c.Y()
	}
	drawHeading(c, st, st.Title(SectionSummary), st.LineHeight)
	c.Paragraph(summary, 1, st.LineHeight)
	return c.Y()
}

func renderAchievements(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64 {
	if len(v.Achievements) == 0 {
		return c.Y()
	}
	drawHeading(c, st, st.Title(SectionAchievements), st.LineHeight)
	for _, a := range v.Achievements {
		drawBullet(c, a.Text, st.LineHeight)
	}
	return c.Y()
}

func renderSkills(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64 {
	rows := skillRows(v.Skills, st.SkillGroups)
	if len(rows) == 0 {
		return c.Y()
	}

	rowHeight := st.LineHeight - 0.5
	drawHeading(c, st, st.Title(SectionSkills), rowHeight)
	for _, row := range rows {
		st.small(c, st.Dark)
		lines := c.MeasureWrap(row.Text, c.ContentWidth()-skillLabelW)
		for i, line := range lines {
			c.EnsureSpace(rowHeight)
			if i == 0 {
				st.strong(c, st.BodySize)
				c.DrawText(row.Label, c.Left(), c.Y(), canvas.TextOptions{MaxWidth: skillLabelW})
				st.small(c, st.Dark)
			}
			c.DrawText(line, c.Left()+skillLabelW, c.Y(), canvas.TextOptions{LineHeight: rowHeight})
			c.Advance(rowHeight)
		}
		c.Advance(1)
	}
	return c.Y()
}

func renderExperience(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64 {
	entries := experienceFor(v, st.MaxExperience)
	if len(entries) == 0 {
		return c.Y()
	}

	drawHeading(c, st, st.Title(SectionExperience), entryAdvance+st.LineHeight)
	for _, e := range entries {
		st.strong(c, st.HeadingSize)
		titleWidth := c.ContentWidth() - dateOffset - 2
		lh := c.LineHeight()
		n := len(c.MeasureWrap(experienceTitle(e), titleWidth))
		c.EnsureSpace(blockHeight(n, entryAdvance, lh) + st.LineHeight)
		y := c.ClampBaseline(c.Y())

		n = c.DrawText(experienceTitle(e), c.Left(), y, canvas.TextOptions{MaxWidth: titleWidth, LineHeight: lh})
		if e.Dates != "" {
			st.small(c, st.Muted)
			c.DrawText(e.Dates, c.Right()-dateOffset, y, canvas.TextOptions{MaxWidth: dateOffset})
		}
		c.SetY(y + blockHeight(n, entryAdvance, lh))

		st.body(c)
		for _, b := range e.Description {
			drawBullet(c, b, st.LineHeight)
		}
		c.Advance(2)
	}
	return c.Y()
}

func renderProjects(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64 {
	if len(v.Projects) == 0 {
		return c.Y()
	}

	drawHeading(c, st, st.Title(SectionProjects), 2*st.LineHeight)
	for _, p := range v.Projects {
		st.strong(c, st.BodySize)
		n := max(1, len(c.MeasureWrap(p.Title, c.ContentWidth())))
		c.EnsureSpace(float64(n+1) * st.LineHeight)
		y := c.ClampBaseline(c.Y())

		n = max(1, c.DrawText(p.Title, c.Left(), y, canvas.TextOptions{LineHeight: st.LineHeight}))
		if p.Link != "" {
			w := min(c.StringWidth(p.Title), c.ContentWidth())
			c.Link(c.Left(), y, w, st.LineHeight, p.Link)
		}
		c.SetY(y + float64(n)*st.LineHeight)

		if len(p.Technologies) > 0 {
			st.small(c, st.Muted)
			c.Paragraph(strings.Join(p.Technologies, listSeparator), 0, st.LineHeight)
		}
		if p.Description != "" {
			st.body(c)
			c.Paragraph(p.Description, 0, st.LineHeight)
		}
		if p.Link != "" {
			st.small(c, st.Primary)
			link := cleanLink(p.Link)
			c.EnsureSpace(blockHeight(len(c.MeasureWrap(link, c.ContentWidth())), st.LineHeight, st.LineHeight))
			y := c.Y()
			n := c.DrawText(link, c.Left(), y, canvas.TextOptions{LineHeight: st.LineHeight})
			c.Link(c.Left(), y, min(c.StringWidth(link), c.ContentWidth()), st.LineHeight, p.Link)
			c.SetY(y + blockHeight(n, entryAdvance, st.LineHeight))
		} else {
			c.Advance(3)
		}
	}
	return c.Y()
}

func renderEducation(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64 {
	if len(v.Education) == 0 {
		return c.Y()
	}

	drawHeading(c, st, st.Title(SectionEducation), 2*entryAdvance)
	for _, e := range v.Education {
		metaWidth := c.ContentWidth() - dateOffset - 2
		st.small(c, st.Muted)
		metaLH := c.LineHeight()
		metaH := blockHeight(len(c.MeasureWrap(educationMeta(e), metaWidth)), entryAdvance, metaLH)

		st.strong(c, st.HeadingSize)
		degreeLH := c.LineHeight()
		degreeH := blockHeight(len(c.MeasureWrap(e.Degree, c.ContentWidth())), entryAdvance, degreeLH)
		c.EnsureSpace(degreeH + metaH)
		y := c.ClampBaseline(c.Y())

		degreeH = blockHeight(c.DrawText(e.Degree, c.Left(), y, canvas.TextOptions{LineHeight: degreeLH}), entryAdvance, degreeLH)
		st.small(c, st.Muted)
		metaY := y + degreeH
		metaH = blockHeight(c.DrawText(educationMeta(e), c.Left(), metaY, canvas.TextOptions{MaxWidth: metaWidth, LineHeight: metaLH}), entryAdvance, metaLH)
		if e.Dates != "" {
			c.DrawText(e.Dates, c.Right()-dateOffset, metaY, canvas.TextOptions{MaxWidth: dateOffset})
		}
		c.SetY(metaY + metaH)

		if len(e.Highlights) > 0 {
			st.small(c, st.Dark)
			for _, h := range e.Highlights {
				drawBullet(c, h, st.LineHeight-0.5)
			}
		}
		c.Advance(2)
	}
	return c.Y()
}

func renderCertifications(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64 {
	if len(v.Certifications) == 0 {
		return c.Y()
	}
	drawHeading(c, st, st.Title(SectionCertifications), st.LineHeight)
	for _, cert := range v.Certifications {
		c.Paragraph(certificationLine(cert), 0, st.LineHeight)
	}
	return c.Y()
}

func renderLanguages(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64 {
	if len(v.Languages) == 0 {
		return c.Y()
	}
	drawHeading(c, st, st.Title(SectionLanguages), st.LineHeight)
	for _, l := range v.Languages {
		c.Paragraph(languageLine(l), 0, st.LineHeight)
	}
	return c.Y()
}

func renderPreferences(c *canvas.Canvas, v *types.ResolvedView, st *Style) float64 {
	items := preferenceItems(v.Preferences)
	if len(items) == 0 {
		return c.Y()
	}
	drawHeading(c, st, st.Title(SectionPreferences), st.LineHeight)
	for _, item := range items {
		drawBullet(c, item, st.LineHeight)
	}
	return c.Y()
}
