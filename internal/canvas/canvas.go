package canvas

import (
	"strings"
)

// DefaultFamily is the core font every template uses
const DefaultFamily = "Helvetica"

const (
	ptToMM = 25.4 / 72
	// ascender of the core Helvetica metrics, in em units
	helveticaAscender = 0.718
)

// Font is the active text style
type Font struct {
	Family string
	Style  string // "", "B", "I" or "BI"
	Size   float64
}

// Margins are page margins in millimetres
type Margins struct {
	Top, Bottom, Left, Right float64
}

// TextOptions tune a single DrawText call
type TextOptions struct {
	// MaxWidth limits the line width; zero means the rest of the column.
	MaxWidth float64
	// LineHeight is the advance between wrapped lines; zero derives it from the font size.
	LineHeight float64
}

// Canvas is the page-aware drawing surface for one document build. It owns
// the cursor and never shares state with other builds.
type Canvas struct {
	p       Primitive
	page    PageSize
	margins Margins

	left  float64
	width float64
	y     float64
	fresh bool

	font  Font
	color Color
}

// New starts the first page on p with the given geometry.
func New(p Primitive, page PageSize, m Margins) *Canvas {
	c := &Canvas{
		p:       p,
		page:    page,
		margins: m,
		left:    m.Left,
		width:   page.Width - m.Left - m.Right,
		font:    Font{Family: DefaultFamily, Size: 9},
		color:   Dark,
	}
	c.NewPage()
	return c
}

// NewPage forces a page break and puts the cursor on the first baseline
// whose glyphs clear the top margin in the active font.
func (c *Canvas) NewPage() {
	c.p.AddPage()
	c.applyStyle()
	c.y = c.TopBaseline()
	c.fresh = true
}

// EnsureSpace breaks the page when height does not fit below the cursor.
// A fresh page is never broken again, so oversized blocks are drawn
// anyway instead of looping. It reports whether a break happened.
func (c *Canvas) EnsureSpace(height float64) bool {
	if c.fresh || c.y+height <= c.Limit() {
		return false
	}
	c.NewPage()
	return true
}

// Limit is the lowest y content may reach on the current page.
func (c *Canvas) Limit() float64 { return c.page.Height - c.margins.Bottom }

// Page is the 1-based index of the current page.
func (c *Canvas) Page() int { return c.p.PageNo() }

// Y is the cursor position.
func (c *Canvas) Y() float64 { return c.y }

// SetY moves the cursor, clamped to the top margin.
func (c *Canvas) SetY(y float64) { c.y = max(y, c.margins.Top) }

// Advance moves the cursor down by dy.
func (c *Canvas) Advance(dy float64) { c.y += dy }

// Left is the left edge of the active column.
func (c *Canvas) Left() float64 { return c.left }

// ContentWidth is the width of the active column.
func (c *Canvas) ContentWidth() float64 { return c.width }

// Right is the right content edge of the active column.
func (c *Canvas) Right() float64 { return c.left + c.width }

// PageSize returns the page format of the document.
func (c *Canvas) PageSize() PageSize { return c.page }

// Margins returns the page margins.
func (c *Canvas) Margins() Margins { return c.margins }

// SetColumn narrows drawing to a column. The width is clamped so the
// column never extends past the page.
func (c *Canvas) SetColumn(left, width float64) {
	c.left = left
	c.width = max(0, min(width, c.page.Width-left))
}

// ResetColumn restores the full-width column between the side margins.
func (c *Canvas) ResetColumn() {
	c.SetColumn(c.margins.Left, c.page.Width-c.margins.Left-c.margins.Right)
}

// SetFont changes the active font.
func (c *Canvas) SetFont(f Font) {
	if f.Family == "" {
		f.Family = DefaultFamily
	}
	c.font = f
	c.p.SetFont(f.Family, f.Style, f.Size)
}

// Font returns the active font.
func (c *Canvas) Font() Font { return c.font }

// SetColor changes the text color.
func (c *Canvas) SetColor(col Color) {
	c.color = col
	c.p.SetTextColor(col.R, col.G, col.B)
}

// SetStroke sets the color and width used by lines and rules.
func (c *Canvas) SetStroke(col Color, width float64) {
	c.p.SetDrawColor(col.R, col.G, col.B)
	c.p.SetLineWidth(width)
}

// LineHeight derives a line advance from the active font size (9pt -> 4mm).
func (c *Canvas) LineHeight() float64 {
	return c.font.Size * 4 / 9
}

// Ascent is the height of the active font above its baseline.
func (c *Canvas) Ascent() float64 {
	return c.font.Size * ptToMM * helveticaAscender
}

// TopBaseline is the highest baseline the active font can use without its
// glyphs crossing the top margin.
func (c *Canvas) TopBaseline() float64 {
	return c.margins.Top + c.Ascent()
}

// ClampBaseline moves y down to TopBaseline when it sits above it.
func (c *Canvas) ClampBaseline(y float64) float64 {
	return max(y, c.TopBaseline())
}

// MeasureWrap splits text into lines no wider than maxWidth using the
// active font. Words are never broken: a word wider than maxWidth gets a
// line of its own.
func (c *Canvas) MeasureWrap(text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if c.p.StringWidth(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// StringWidth measures s in the active font.
func (c *Canvas) StringWidth(s string) float64 { return c.p.StringWidth(s) }

// DrawText draws text with its first baseline at (x, y). x is kept inside
// the active column, the glyphs never rise above the top margin and the effective
// width is min(requested, space left in the column). Text wider than that
// continues on following lines; DrawText never paginates. It returns the
// number of lines drawn.
func (c *Canvas) DrawText(text string, x, y float64, opts TextOptions) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	x = min(max(x, c.left), c.Right())
	y = c.ClampBaseline(y)

	width := c.Right() - x
	if opts.MaxWidth > 0 {
		width = min(opts.MaxWidth, width)
	}
	lineHeight := opts.LineHeight
	if lineHeight <= 0 {
		lineHeight = c.LineHeight()
	}

	lines := []string{text}
	if c.p.StringWidth(text) > width {
		lines = c.MeasureWrap(text, width)
	}
	for i, line := range lines {
		c.p.Text(x, y+float64(i)*lineHeight, line)
	}
	c.fresh = false
	return len(lines)
}

// Paragraph wraps text to width and draws it at the cursor, one line at a
// time, breaking pages between lines as needed. indent shifts every line
// right of the column edge.
func (c *Canvas) Paragraph(text string, indent, lineHeight float64) {
	width := c.width - indent
	for _, line := range c.MeasureWrap(text, width) {
		c.EnsureSpace(lineHeight)
		c.DrawText(line, c.left+indent, c.y, TextOptions{MaxWidth: width, LineHeight: lineHeight})
		c.y += lineHeight
	}
}

// DrawRule draws a thin horizontal line of length starting at (x, y),
// trimmed to the right content edge.
func (c *Canvas) DrawRule(x, y, length float64) {
	end := min(x+length, c.Right())
	c.p.Line(x, y, end, y)
	c.fresh = false
}

// FillRect paints a filled rectangle in col. It is decoration and ignores
// the margins.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	c.p.SetFillColor(col.R, col.G, col.B)
	c.p.Rect(x, y, w, h, "F")
}

// Link makes a rectangle above the baseline at (x, y) clickable.
func (c *Canvas) Link(x, y, w, h float64, url string) {
	c.p.Link(x, y-h, w, h, url)
}

// Err returns the first error reported by the primitive.
func (c *Canvas) Err() error {
	if err := c.p.Error(); err != nil {
		return &PrimitiveError{Message: "drawing failed", Cause: err}
	}
	return nil
}

func (c *Canvas) applyStyle() {
	c.p.SetFont(c.font.Family, c.font.Style, c.font.Size)
	c.p.SetTextColor(c.color.R, c.color.G, c.color.B)
}
