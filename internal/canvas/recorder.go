package canvas

import (
	"strings"
	"sync"
)

// Op kinds captured by Recorder
const (
	OpText = "text"
	OpLine = "line"
	OpRect = "rect"
	OpLink = "link"
	OpPage = "page"
)

// Op is one recorded drawing call. Text holds the caller's original UTF-8
// string, before any code page translation.
type Op struct {
	Kind  string
	Page  int
	X, Y  float64
	W, H  float64
	Text  string
	Font  string
	Style string
	Size  float64
}

// Recorder wraps a Primitive and keeps a log of what was drawn on which page.
type Recorder struct {
	Primitive
	ops   []Op
	font  string
	style string
	size  float64
}

// NewRecorder wraps inner.
func NewRecorder(inner Primitive) *Recorder {
	return &Recorder{Primitive: inner}
}

func (r *Recorder) AddPage() {
	r.Primitive.AddPage()
	r.ops = append(r.ops, Op{Kind: OpPage, Page: r.Primitive.PageNo()})
}

func (r *Recorder) SetFont(family, style string, size float64) {
	r.font, r.style, r.size = family, style, size
	r.Primitive.SetFont(family, style, size)
}

func (r *Recorder) Text(x, y float64, s string) {
	r.ops = append(r.ops, Op{
		Kind: OpText, Page: r.Primitive.PageNo(), X: x, Y: y, Text: s,
		Font: r.font, Style: r.style, Size: r.size,
	})
	r.Primitive.Text(x, y, s)
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, Op{Kind: OpLine, Page: r.Primitive.PageNo(), X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
	r.Primitive.Line(x1, y1, x2, y2)
}

func (r *Recorder) Rect(x, y, w, h float64, style string) {
	r.ops = append(r.ops, Op{Kind: OpRect, Page: r.Primitive.PageNo(), X: x, Y: y, W: w, H: h, Style: style})
	r.Primitive.Rect(x, y, w, h, style)
}

func (r *Recorder) Link(x, y, w, h float64, url string) {
	r.ops = append(r.ops, Op{Kind: OpLink, Page: r.Primitive.PageNo(), X: x, Y: y, W: w, H: h, Text: url})
	r.Primitive.Link(x, y, w, h, url)
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Texts returns the text drawn on page, in drawing order.
func (r *Recorder) Texts(page int) []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText && op.Page == page {
			out = append(out, op.Text)
		}
	}
	return out
}

// AllText joins every drawn string with newlines.
func (r *Recorder) AllText() string {
	var sb strings.Builder
	for _, op := range r.ops {
		if op.Kind == OpText {
			sb.WriteString(op.Text)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Pages reports how many pages were started.
func (r *Recorder) Pages() int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == OpPage {
			n++
		}
	}
	return n
}

// RecordingProvider wraps every acquired primitive in a Recorder and keeps
// the recorders for inspection.
type RecordingProvider struct {
	Inner Provider

	mu        sync.Mutex
	recorders []*Recorder
}

// Acquire delegates to Inner and records the result.
func (p *RecordingProvider) Acquire(page PageSize) (Primitive, error) {
	inner, err := p.Inner.Acquire(page)
	if err != nil {
		return nil, err
	}
	rec := NewRecorder(inner)

	p.mu.Lock()
	p.recorders = append(p.recorders, rec)
	p.mu.Unlock()
	return rec, nil
}

// Last returns the most recently acquired recorder, or nil.
func (p *RecordingProvider) Last() *Recorder {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.recorders) == 0 {
		return nil
	}
	return p.recorders[len(p.recorders)-1]
}
