// Package document turns a base résumé model and a build request into a
// finished document: resolve the variant, lay it out, flush the bytes.
package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-cv/internal/canvas"
	"github.com/jonathan/portfolio-cv/internal/rendering"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/variant"
)

// Creator is written into the PDF metadata
const Creator = "Portfolio CV Tool"

// Document is one built file plus what is needed to serve or store it
type Document struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	Format     string    `json:"format"`
	PageFormat string    `json:"page_format"`
	Variant    string    `json:"variant"`
	Template   string    `json:"template"`
	Pages      int       `json:"pages"`
	CreatedAt  time.Time `json:"created_at"`
	Warnings   []string  `json:"warnings,omitempty"`
	Bytes      []byte    `json:"-"`
}

// StorageKey is the object key for the document bytes. Builds of the same
// variant share a filename, so the key is scoped by the build ID.
func (d *Document) StorageKey() string {
	return StorageKey(d.ID, d.Filename)
}

// StorageKey joins a build ID and a filename into an object key.
func StorageKey(id uuid.UUID, filename string) string {
	return id.String() + "/" + filename
}

// ContentType returns the MIME type of the document bytes.
func (d *Document) ContentType() string {
	if d.Format == types.FormatRTF {
		return "application/rtf"
	}
	return "application/pdf"
}

// WriteTo writes the document bytes to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes)
	if err != nil {
		return int64(n), &ResourceError{Message: fmt.Sprintf("failed to write %s", d.Filename), Cause: err}
	}
	return int64(n), nil
}

// Builder builds documents. It is safe for concurrent use: every build gets
// its own primitive, canvas and resolved view.
type Builder struct {
	provider canvas.Provider
	now      func() time.Time
	log      zerolog.Logger
}

// Option configures a Builder
type Option func(*Builder)

// WithClock fixes the time used for the footer, metadata and filename year.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// NewBuilder creates a builder drawing through provider.
func NewBuilder(provider canvas.Provider, opts ...Option) *Builder {
	b := &Builder{
		provider: provider,
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build resolves the requested variant against base and renders it. Unknown
// variant and template names fall back to "general" and the variant's
// default template (or "modern"); a missing name is drawn as a placeholder
// and reported in Warnings.
func (b *Builder) Build(base *types.ResumeData, req types.BuildRequest) (*Document, error) {
	if base == nil {
		return nil, &ConfigurationError{Message: "base résumé data is required"}
	}
	if err := req.Validate(); err != nil {
		return nil, &ConfigurationError{Field: "request", Message: "invalid build request", Cause: err}
	}

	now := b.now()
	view := variant.Resolve(base, req.Variant, req.Overrides())
	tmpl := rendering.Lookup(templateName(req.Template, view))

	doc := &Document{
		ID:         uuid.New(),
		Format:     orDefault(req.Format, types.FormatPDF),
		PageFormat: canvas.PageSizeFor(req.PageFormat).Name,
		Variant:    view.Variant.Key,
		Template:   tmpl.Name,
		CreatedAt:  now,
		Warnings:   warnings(req, view, tmpl),
	}
	doc.Filename = Filename(displayName(view), view.Variant.FileLabel, tmpl.Name, now.Year(), doc.Format)

	var err error
	switch doc.Format {
	case types.FormatRTF:
		doc.Bytes, err = rendering.RenderRTF(view, tmpl.Name)
		if err != nil {
			return nil, &RenderError{Message: "failed to render rtf", Cause: err}
		}
	default:
		doc.Bytes, doc.Pages, err = b.renderPDF(view, tmpl, canvas.PageSizeFor(req.PageFormat), now)
		if err != nil {
			return nil, err
		}
	}

	for _, w := range doc.Warnings {
		b.log.Warn().Str("build_id", doc.ID.String()).Msg(w)
	}
	b.log.Debug().
		Str("build_id", doc.ID.String()).
		Str("variant", doc.Variant).
		Str("template", doc.Template).
		Str("format", doc.Format).
		Int("pages", doc.Pages).
		Int("bytes", len(doc.Bytes)).
		Msg("document built")
	return doc, nil
}

func (b *Builder) renderPDF(view *types.ResolvedView, tmpl *rendering.Template, page canvas.PageSize, now time.Time) ([]byte, int, error) {
	p, err := b.provider.Acquire(page)
	if err != nil {
		return nil, 0, &RenderError{Message: "drawing primitive unavailable", Cause: err}
	}
	p.SetMetadata(metadata(view, now))

	c := canvas.New(p, page, tmpl.Margins)
	if err := tmpl.Compose(c, view, rendering.Options{Now: now}); err != nil {
		return nil, 0, &RenderError{Message: "failed to draw document", Cause: err}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, 0, &ResourceError{Message: "failed to flush pdf", Cause: err}
	}
	return buf.Bytes(), c.Page(), nil
}

// BuildMatrix builds every request concurrently, at most limit at a time
// (limit <= 0 means no limit). Results keep the order of reqs. The first
// failure cancels the builds that have not started yet.
func (b *Builder) BuildMatrix(ctx context.Context, base *types.ResumeData, reqs []types.BuildRequest, limit int) ([]*Document, error) {
	docs := make([]*Document, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := b.Build(base, req)
			if err != nil {
				return fmt.Errorf("build %s/%s: %w", req.Variant, req.Template, err)
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Matrix lists one request per variant and template for each format.
func Matrix(base *types.ResumeData, formats []string, pageFormat string) []types.BuildRequest {
	if len(formats) == 0 {
		formats = []string{types.FormatPDF}
	}
	var reqs []types.BuildRequest
	for _, key := range variant.Keys(base) {
		for _, name := range rendering.Names() {
			for _, format := range formats {
				reqs = append(reqs, types.BuildRequest{Variant: key, Template: name, Format: format, PageFormat: pageFormat})
			}
		}
	}
	return reqs
}

func templateName(requested string, view *types.ResolvedView) string {
	if strings.TrimSpace(requested) != "" {
		return requested
	}
	return view.Variant.DefaultTemplate
}

func warnings(req types.BuildRequest, view *types.ResolvedView, tmpl *rendering.Template) []string {
	var out []string
	if strings.TrimSpace(view.Personal.Name) == "" {
		err := &ConfigurationError{Field: "personal.name", Message: fmt.Sprintf("missing, drawn as %q", rendering.PlaceholderName)}
		out = append(out, err.Error())
	}
	if req.Variant != "" && req.Variant != view.Variant.Key {
		out = append(out, fmt.Sprintf("unknown variant %q, using %q", req.Variant, view.Variant.Key))
	}
	if req.Template != "" && !rendering.Known(req.Template) {
		out = append(out, fmt.Sprintf("unknown template %q, using %q", req.Template, tmpl.Name))
	}
	return out
}

func metadata(view *types.ResolvedView, now time.Time) canvas.Metadata {
	name := displayName(view)
	keywords := append([]string{}, view.Variant.FocusAreas...)
	keywords = append(keywords, view.Skills.Technical...)
	return canvas.Metadata{
		Title:    "CV - " + name,
		Author:   name,
		Subject:  strings.TrimSpace(view.Variant.Label + " CV"),
		Keywords: keywords,
		Creator:  Creator,
		Created:  now,
	}
}

func displayName(view *types.ResolvedView) string {
	if name := strings.TrimSpace(view.Personal.Name); name != "" {
		return name
	}
	return rendering.PlaceholderName
}

func orDefault(s, fallback string) string {
	if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
		return s
	}
	return fallback
}
