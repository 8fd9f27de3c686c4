// Package svg renders a formula tree into a standalone SVG document.
// Text is emitted as <text> elements and bars, radicals and fences as
// <line> elements; metric queries are delegated to a renderer.Metrics
// provider so the geometry matches the drawing backends.
package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mathsuite/mathsuite/layout"
	"github.com/mathsuite/mathsuite/renderer"
)

// padding frames the formula inside the document viewBox.
const padding = 50

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Renderer implements the layout.Renderer capability by accumulating
// SVG elements, and renderer.Renderer by wrapping them in a document
// sized to the measured root.
type Renderer struct {
	metrics renderer.Metrics
	family  string

	buf    bytes.Buffer
	size   int
	italic bool
}

var (
	_ layout.Renderer   = (*Renderer)(nil)
	_ renderer.Renderer = (*Renderer)(nil)
)

// New creates an SVG renderer; family is the font-family attribute
// written on every text element.
func New(metrics renderer.Metrics, family string) *Renderer {
	return &Renderer{metrics: metrics, family: family}
}

func (r *Renderer) SetFontSize(size int) { r.size = size }

func (r *Renderer) SetFontStyle(italic bool) { r.italic = italic }

func (r *Renderer) TextWidth(s string) int { return r.metrics.TextWidth(s, r.size, r.italic) }

func (r *Renderer) LineHeight() int { return r.metrics.LineHeight(r.size) }

func (r *Renderer) DrawLine(x1, y1, x2, y2 int) {
	fmt.Fprintf(&r.buf,
		"<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"black\" stroke-width=\"1.5\" />\n",
		x1, y1, x2, y2)
}

func (r *Renderer) DrawText(x, y int, s string) {
	if s == "" {
		return
	}
	// y is the top edge; SVG positions text by baseline.
	baseline := y + int(float64(r.size)*0.8)
	style := "normal"
	if r.italic {
		style = "italic"
	}
	fmt.Fprintf(&r.buf,
		"<text x=\"%d\" y=\"%d\" font-family=\"%s\" font-style=\"%s\" font-size=\"%d\">%s</text>\n",
		x, baseline, r.family, style, r.size, escaper.Replace(s))
}

// Render measures root, draws it into a fresh buffer and returns the
// complete document: viewBox sized to the formula plus padding, white
// background, then the accumulated elements.
func (r *Renderer) Render(root layout.Node) ([]byte, error) {
	r.buf.Reset()
	root.Measure(r)
	b := root.Bounds()

	totalW := b.Width + padding*2
	totalH := b.Height + padding*2 + 20

	root.Draw(r, padding, padding+b.Ascent)

	var doc bytes.Buffer
	fmt.Fprintf(&doc,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		totalW, totalH, totalW, totalH)
	doc.WriteString("<rect width=\"100%\" height=\"100%\" fill=\"white\" />\n")
	doc.Write(r.buf.Bytes())
	doc.WriteString("</svg>")
	return doc.Bytes(), nil
}
