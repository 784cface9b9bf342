// Package canvas provides the paginated drawing surface used by the section renderers.
package canvas

import (
	"io"
	"strings"
	"time"
)

// Primitive is the low-level drawing library a Canvas draws through.
// Coordinates are millimetres from the top-left corner; Text places the
// baseline at y.
type Primitive interface {
	AddPage()
	PageNo() int
	SetFont(family, style string, size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetLineWidth(width float64)
	Text(x, y float64, s string)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, style string)
	Link(x, y, w, h float64, url string)
	StringWidth(s string) float64
	SetMetadata(meta Metadata)
	Output(w io.Writer) error
	Error() error
}

// Provider hands out a fresh Primitive for every document build.
type Provider interface {
	Acquire(page PageSize) (Primitive, error)
}

// Metadata is written into the document information dictionary
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Creator  string
	Created  time.Time
}

// PageSize is a page format in millimetres
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// Supported page formats
var (
	A4     = PageSize{Name: "a4", Width: 210, Height: 297}
	Letter = PageSize{Name: "letter", Width: 215.9, Height: 279.4}
)

// PageSizeFor maps a page format name to its size, defaulting to A4.
func PageSizeFor(name string) PageSize {
	if strings.EqualFold(name, Letter.Name) {
		return Letter
	}
	return A4
}
