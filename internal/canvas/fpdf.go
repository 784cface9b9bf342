package canvas

import (
	"io"
	"strings"
	"sync"

	"github.com/go-pdf/fpdf"
)

// FPDFProvider produces primitives backed by go-pdf/fpdf using the core
// PDF fonts. The font check and the cp1252 translator are set up on the
// first Acquire and reused for the life of the process.
type FPDFProvider struct {
	once      sync.Once
	translate func(string) string
	initErr   error
}

// NewFPDFProvider creates a provider; nothing is loaded until first use.
func NewFPDFProvider() *FPDFProvider {
	return &FPDFProvider{}
}

func (p *FPDFProvider) load() {
	probe := fpdf.New("P", "mm", "A4", "")
	probe.SetFont("Helvetica", "", 10)
	if probe.Err() {
		p.initErr = &PrimitiveError{Message: "core fonts unavailable", Cause: probe.Error()}
		return
	}
	p.translate = probe.UnicodeTranslatorFromDescriptor("")
	if p.translate == nil {
		p.initErr = &PrimitiveError{Message: "cp1252 translator unavailable"}
	}
}

// Acquire returns a new empty document sized to page.
func (p *FPDFProvider) Acquire(page PageSize) (Primitive, error) {
	p.once.Do(p.load)
	if p.initErr != nil {
		return nil, p.initErr
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)
	doc.SetCompression(true)
	if doc.Err() {
		return nil, &PrimitiveError{Message: "failed to create document", Cause: doc.Error()}
	}
	return &fpdfPrimitive{pdf: doc, tr: p.translate}, nil
}

type fpdfPrimitive struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (f *fpdfPrimitive) AddPage()    { f.pdf.AddPage() }
func (f *fpdfPrimitive) PageNo() int { return f.pdf.PageNo() }

func (f *fpdfPrimitive) SetFont(family, style string, size float64) {
	f.pdf.SetFont(family, style, size)
}

func (f *fpdfPrimitive) SetTextColor(r, g, b int)   { f.pdf.SetTextColor(r, g, b) }
func (f *fpdfPrimitive) SetDrawColor(r, g, b int)   { f.pdf.SetDrawColor(r, g, b) }
func (f *fpdfPrimitive) SetFillColor(r, g, b int)   { f.pdf.SetFillColor(r, g, b) }
func (f *fpdfPrimitive) SetLineWidth(width float64) { f.pdf.SetLineWidth(width) }

func (f *fpdfPrimitive) Text(x, y float64, s string) { f.pdf.Text(x, y, f.tr(s)) }

func (f *fpdfPrimitive) Line(x1, y1, x2, y2 float64) { f.pdf.Line(x1, y1, x2, y2) }

func (f *fpdfPrimitive) Rect(x, y, w, h float64, style string) { f.pdf.Rect(x, y, w, h, style) }

func (f *fpdfPrimitive) Link(x, y, w, h float64, url string) { f.pdf.LinkString(x, y, w, h, url) }

func (f *fpdfPrimitive) StringWidth(s string) float64 { return f.pdf.GetStringWidth(f.tr(s)) }

func (f *fpdfPrimitive) SetMetadata(meta Metadata) {
	f.pdf.SetTitle(meta.Title, true)
	f.pdf.SetAuthor(meta.Author, true)
	f.pdf.SetSubject(meta.Subject, true)
	f.pdf.SetKeywords(strings.Join(meta.Keywords, ", "), true)
	f.pdf.SetCreator(meta.Creator, true)
	if !meta.Created.IsZero() {
		f.pdf.SetCreationDate(meta.Created)
		f.pdf.SetModificationDate(meta.Created)
	}
}

func (f *fpdfPrimitive) Output(w io.Writer) error {
	if err := f.pdf.Output(w); err != nil {
		return &PrimitiveError{Message: "failed to write document", Cause: err}
	}
	return nil
}

func (f *fpdfPrimitive) Error() error { return f.pdf.Error() }
