// Package renderer defines the output side of the pipeline: backends
// that implement the layout.Renderer capability and export a measured
// tree to a document format, plus the font-metrics facility they share.
package renderer

import "github.com/mathsuite/mathsuite/layout"

// Renderer turns a formula tree into a finished document (SVG or PDF
// bytes). Implementations run one Measure pass and one Draw pass over
// the tree through their own layout.Renderer capability.
type Renderer interface {
	Render(root layout.Node) ([]byte, error)
}

// Metrics answers text-measurement queries for a font at a given size
// and style. Backends that do not draw through a font library (the SVG
// writer) delegate their metric queries here so their layout math
// matches the drawing backends.
type Metrics interface {
	TextWidth(s string, size int, italic bool) int
	LineHeight(size int) int
}
