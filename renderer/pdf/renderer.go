// Package pdf renders a formula tree into a PDF document via
// github.com/tdewolff/canvas.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/canvas"
	pdfwriter "github.com/tdewolff/canvas/renderers/pdf"

	"github.com/mathsuite/mathsuite/layout"
	"github.com/mathsuite/mathsuite/renderer"
)

// padding frames the formula inside the page, in points.
const padding = 50

// strokeWidth is the rule thickness for bars, radicals and fences (mm).
const strokeWidth = 1.5 * renderer.PtToMm

// Renderer implements the layout.Renderer capability on a canvas
// context and renderer.Renderer for the final PDF bytes. The context
// is nil outside Render, which makes the Measure pass metric-only.
type Renderer struct {
	fonts *renderer.FontSet

	ctx    *canvas.Context
	size   int
	italic bool
}

var (
	_ layout.Renderer   = (*Renderer)(nil)
	_ renderer.Renderer = (*Renderer)(nil)
)

// New creates a PDF renderer drawing with faces from fonts.
func New(fonts *renderer.FontSet) *Renderer {
	return &Renderer{fonts: fonts}
}

func (r *Renderer) SetFontSize(size int) { r.size = size }

func (r *Renderer) SetFontStyle(italic bool) { r.italic = italic }

func (r *Renderer) TextWidth(s string) int {
	return r.fonts.TextWidth(s, r.size, r.italic)
}

func (r *Renderer) LineHeight() int {
	return r.fonts.LineHeight(r.size)
}

func (r *Renderer) DrawLine(x1, y1, x2, y2 int) {
	if r.ctx == nil {
		return
	}
	r.ctx.SetStrokeColor(canvas.Black)
	r.ctx.SetStrokeWidth(strokeWidth)
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(toMm(x2-x1), toMm(y2-y1))
	r.ctx.DrawPath(toMm(x1), toMm(y1), p)
}

func (r *Renderer) DrawText(x, y int, s string) {
	if r.ctx == nil || s == "" {
		return
	}
	face := r.fonts.Face(r.size, r.italic)
	line := canvas.NewTextLine(face, s, canvas.Left)
	// y is the top edge; the baseline sits one font ascent below it.
	baseline := toMm(y) + face.Metrics().Ascent
	r.ctx.DrawText(toMm(x), baseline, line)
}

// Render measures root against the font metrics, then replays the draw
// pass onto a white canvas and closes it into a single-page PDF.
func (r *Renderer) Render(root layout.Node) ([]byte, error) {
	root.Measure(r)
	b := root.Bounds()

	w := toMm(b.Width + padding*2)
	h := toMm(b.Height + padding*2 + 20)

	var buf bytes.Buffer
	writer := pdfwriter.New(&buf, w, h, nil)

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(w, h))

	r.ctx = ctx
	root.Draw(r, padding, padding+b.Ascent)
	r.ctx = nil

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func toMm(v int) float64 { return float64(v) * renderer.PtToMm }
