// Package layout holds the formula node tree and its two-pass
// measure/draw protocol. A tree is produced by the parser, measured
// bottom-up against a Renderer's text metrics, then drawn top-down
// through the same Renderer.
package layout

// Renderer is the drawing and text-metrics capability the node tree
// consumes. It carries mutable font state (current size, current
// italic flag) shared across a traversal: every node sets the state it
// depends on immediately before measuring or drawing text, because
// sibling and child operations may have changed it.
//
// DrawText's y is the top edge of the text box; backends translate to
// their own baseline convention.
type Renderer interface {
	SetFontSize(size int)
	SetFontStyle(italic bool)
	TextWidth(s string) int
	LineHeight() int
	DrawLine(x1, y1, x2, y2 int)
	DrawText(x, y int, s string)
}

// Box is the derived geometry shared by every node: outer width and
// height plus the ascent (distance from the top edge to the baseline).
// The fields are valid only after Measure has run over the subtree and
// become stale if the tree is mutated.
type Box struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Ascent int `json:"ascent"`
}

// Bounds returns the measured geometry. Promoted into every node kind.
func (b *Box) Bounds() Box { return *b }

// Descent is the distance from the baseline to the bottom edge.
func (b Box) Descent() int { return b.Height - b.Ascent }

// Node is one element of a formula tree. Measure recomputes the
// node's Box from its content and its children's freshly measured
// geometry; it must be called before Draw and again after any change
// to the subtree. Draw emits primitives through r with the node's
// baseline at y and its left edge at x.
//
// The set of implementations is closed: Sequence, Text, Fraction,
// Script, BigOperator, Integral, Radical and Fence.
type Node interface {
	Measure(r Renderer)
	Draw(r Renderer, x, y int)
	Bounds() Box
}

// drawFrom draws n with its top edge at top rather than its baseline.
func drawFrom(n Node, r Renderer, x, top int) {
	n.Draw(r, x, top+n.Bounds().Ascent)
}

// Sequence lays its children out left to right on a shared baseline.
// It owns its children exclusively; the root of every parse is a
// Sequence.
type Sequence struct {
	Box
	Children []Node
}

// Append adds a child to the end of the row.
func (s *Sequence) Append(n Node) { s.Children = append(s.Children, n) }

func (s *Sequence) Measure(r Renderer) {
	s.Width, s.Height, s.Ascent = 0, 0, 0
	maxAscent, maxDescent := 0, 0
	for _, c := range s.Children {
		c.Measure(r)
		b := c.Bounds()
		s.Width += b.Width
		if b.Ascent > maxAscent {
			maxAscent = b.Ascent
		}
		if d := b.Descent(); d > maxDescent {
			maxDescent = d
		}
	}
	s.Ascent = maxAscent
	s.Height = maxAscent + maxDescent
}

func (s *Sequence) Draw(r Renderer, x, y int) {
	curX := x
	for _, c := range s.Children {
		c.Draw(r, curX, y)
		curX += c.Bounds().Width
	}
}
