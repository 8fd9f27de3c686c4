package layout_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mathsuite/mathsuite/layout"
	"github.com/mathsuite/mathsuite/parser"
)

const baseSize = 28

// stubRenderer is a minimal layout.Renderer with deterministic
// metrics: every glyph is half the font size wide and the line height
// equals the font size. Draw calls are recorded for inspection.
type stubRenderer struct {
	size   int
	italic bool
	texts  []textOp
	lines  []lineOp
}

type textOp struct {
	X, Y   int
	S      string
	Size   int
	Italic bool
}

type lineOp struct {
	X1, Y1, X2, Y2 int
}

func (r *stubRenderer) SetFontSize(size int) { r.size = size }

func (r *stubRenderer) SetFontStyle(italic bool) { r.italic = italic }

func (r *stubRenderer) TextWidth(s string) int { return len([]rune(s)) * r.size / 2 }

func (r *stubRenderer) LineHeight() int { return r.size }

func (r *stubRenderer) DrawLine(x1, y1, x2, y2 int) {
	r.lines = append(r.lines, lineOp{x1, y1, x2, y2})
}

func (r *stubRenderer) DrawText(x, y int, s string) {
	r.texts = append(r.texts, textOp{x, y, s, r.size, r.italic})
}

func measure(t *testing.T, markup string) (*layout.Sequence, *stubRenderer) {
	t.Helper()
	root := parser.Parse(markup, baseSize)
	r := &stubRenderer{}
	root.Measure(r)
	return root, r
}

func (r *stubRenderer) findText(t *testing.T, s string) textOp {
	t.Helper()
	for _, op := range r.texts {
		if op.S == s {
			return op
		}
	}
	t.Fatalf("no DrawText call for %q in %+v", s, r.texts)
	return textOp{}
}

// Children of a sequence share one baseline: each child's top offset
// from the row top equals rowAscent - childAscent.
func TestSequenceBaselineAlignment(t *testing.T) {
	big := &layout.Text{Content: "a", Size: 28}
	small := &layout.Text{Content: "b", Size: 14}
	row := &layout.Sequence{}
	row.Append(big)
	row.Append(small)

	r := &stubRenderer{}
	row.Measure(r)

	if row.Bounds().Ascent != 22 {
		t.Fatalf("row ascent = %d, want 22", row.Bounds().Ascent)
	}

	const baseline = 100
	row.Draw(r, 0, baseline)

	rowTop := baseline - row.Bounds().Ascent
	for _, op := range r.texts {
		var ascent int
		switch op.S {
		case "a":
			ascent = big.Bounds().Ascent
		case "b":
			ascent = small.Bounds().Ascent
		default:
			t.Fatalf("unexpected text %q", op.S)
		}
		if got, want := op.Y-rowTop, row.Bounds().Ascent-ascent; got != want {
			t.Errorf("%q top offset = %d, want %d", op.S, got, want)
		}
		if got := op.Y + ascent; got != baseline {
			t.Errorf("%q baseline = %d, want %d", op.S, got, baseline)
		}
	}
}

// Measuring twice without modification must not change the geometry.
func TestMeasureIdempotent(t *testing.T) {
	root, r := measure(t, `\frac{\sqrt{x^2+1}}{\left(a+b\right)}`)
	first := layout.Snapshot(root)
	root.Measure(r)
	second := layout.Snapshot(root)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-measure changed geometry:\n%s", diff)
	}
}

// Two parses of the same markup measure to identical geometry when the
// renderer metrics are fixed.
func TestMeasureDeterministic(t *testing.T) {
	const markup = `\sum_{i=1}^{n}\frac{1}{i^2}`
	a, _ := measure(t, markup)
	b, _ := measure(t, markup)
	if diff := cmp.Diff(layout.Snapshot(a), layout.Snapshot(b)); diff != "" {
		t.Fatalf("geometry differs between parses:\n%s", diff)
	}
}

func TestFractionGeometry(t *testing.T) {
	root, r := measure(t, `\frac{1}{2}`)

	frac := root.Children[0].(*layout.Fraction)
	num, den := frac.Num.Bounds(), frac.Den.Bounds()
	if want := maxOf(num.Width, den.Width) + 10; frac.Bounds().Width != want {
		t.Fatalf("fraction width = %d, want %d", frac.Bounds().Width, want)
	}
	if want := num.Height + den.Height + 4; frac.Bounds().Height != want {
		t.Fatalf("fraction height = %d, want %d", frac.Bounds().Height, want)
	}
	if want := num.Height + 2; frac.Bounds().Ascent != want {
		t.Fatalf("fraction ascent = %d, want %d", frac.Bounds().Ascent, want)
	}

	// The bar lies on the baseline and spans the full width.
	const baseline = 50
	root.Draw(r, 0, baseline)
	if len(r.lines) != 1 {
		t.Fatalf("expected one bar, got %d lines", len(r.lines))
	}
	bar := r.lines[0]
	want := lineOp{0, baseline, frac.Bounds().Width, baseline}
	if bar != want {
		t.Fatalf("bar = %+v, want %+v", bar, want)
	}

	// Numerator above the bar, denominator below, both centered.
	one := r.findText(t, "1")
	two := r.findText(t, "2")
	if one.Y >= baseline || two.Y <= baseline {
		t.Fatalf("numerator/denominator on wrong side of bar: %+v %+v", one, two)
	}
	if one.X != two.X {
		t.Fatalf("equal-width operands should align: %d != %d", one.X, two.X)
	}
}

func TestScriptGeometry(t *testing.T) {
	root, _ := measure(t, `x^2`)

	script := root.Children[0].(*layout.Script)
	base := script.Base.Bounds()
	sup := script.Super.Bounds()

	if want := base.Width + sup.Width; script.Bounds().Width != want {
		t.Fatalf("script width = %d, want %d", script.Bounds().Width, want)
	}
	if want := sup.Height + base.Ascent/2; script.Bounds().Ascent != want {
		t.Fatalf("script ascent = %d, want %d (raised by superscript)", script.Bounds().Ascent, want)
	}
	if script.Bounds().Ascent <= base.Ascent {
		t.Fatalf("superscript did not raise the ascent: %d <= %d", script.Bounds().Ascent, base.Ascent)
	}
}

func TestSubscriptExtendsHeight(t *testing.T) {
	root, _ := measure(t, `x_3`)

	script := root.Children[0].(*layout.Script)
	sub := script.Sub.Bounds()
	if want := sub.Height + script.Bounds().Ascent; script.Bounds().Height != want {
		t.Fatalf("script height = %d, want %d", script.Bounds().Height, want)
	}
}

// Fence delimiters span exactly the content's measured height, for a
// single character and for tall content alike.
func TestFenceEnclosure(t *testing.T) {
	for _, markup := range []string{`\left(x\right)`, `\left(\frac{1}{2}\right)`} {
		root, r := measure(t, markup)
		fence := root.Children[0].(*layout.Fence)
		content := fence.Content.Bounds()

		if fence.Bounds().Height != content.Height {
			t.Fatalf("%s: fence height = %d, want %d", markup, fence.Bounds().Height, content.Height)
		}

		const baseline = 100
		r.lines = nil
		root.Draw(r, 0, baseline)

		top := baseline - fence.Bounds().Ascent
		minY, maxY := baseline, baseline
		for _, ln := range r.lines {
			minY = minOf(minY, minOf(ln.Y1, ln.Y2))
			maxY = maxOf(maxY, maxOf(ln.Y1, ln.Y2))
		}
		if minY != top || maxY != top+content.Height {
			t.Fatalf("%s: delimiter extent [%d,%d], want [%d,%d]",
				markup, minY, maxY, top, top+content.Height)
		}
	}
}

// Integral limits sit beside the sign, not above and below it.
func TestIntegralLimitsBeside(t *testing.T) {
	root, r := measure(t, `\int_0^1`)
	integral := root.Children[0].(*layout.Integral)

	const baseline = 100
	root.Draw(r, 0, baseline)

	sign := r.findText(t, "∫")
	upper := r.findText(t, "1")
	lower := r.findText(t, "0")

	if upper.X != lower.X {
		t.Fatalf("limits not in one column: %d != %d", upper.X, lower.X)
	}
	if upper.X <= sign.X {
		t.Fatalf("limits should be right of the sign: %d <= %d", upper.X, sign.X)
	}
	if upper.Y >= lower.Y {
		t.Fatalf("upper limit should be above the lower: %d >= %d", upper.Y, lower.Y)
	}
	if want := integral.Bounds().Ascent * 2; integral.Bounds().Height < want {
		t.Fatalf("integral ascent %d exceeds half of height %d", integral.Bounds().Ascent, integral.Bounds().Height)
	}
}

// The radical sign is synthesized from three segments whose bar spans
// the radicand and whose strokes follow the radicand's height.
func TestRadicalStrokes(t *testing.T) {
	root, r := measure(t, `\sqrt{x}`)
	rad := root.Children[0].(*layout.Radical)
	inner := rad.Radicand.Bounds()

	const baseline = 50
	root.Draw(r, 0, baseline)

	if len(r.lines) != 3 {
		t.Fatalf("expected 3 radical segments, got %d", len(r.lines))
	}

	barY := baseline - inner.Ascent - 5
	bar := r.lines[2]
	if bar.Y1 != barY || bar.Y2 != barY {
		t.Fatalf("bar not at %d: %+v", barY, bar)
	}
	if got, want := bar.X2-bar.X1, inner.Width+5; got != want {
		t.Fatalf("bar span = %d, want %d", got, want)
	}

	upStroke := r.lines[1]
	if got, want := upStroke.Y1, baseline+inner.Descent(); got != want {
		t.Fatalf("up-stroke starts at %d, want radicand bottom %d", got, want)
	}
}

// \! narrows the row, \, widens it.
func TestThinSpaces(t *testing.T) {
	plain, _ := measure(t, `ab`)
	tight, _ := measure(t, `a\!b`)
	loose, _ := measure(t, `a\,b`)

	if tight.Bounds().Width >= plain.Bounds().Width {
		t.Fatalf("\\! did not narrow: %d >= %d", tight.Bounds().Width, plain.Bounds().Width)
	}
	if loose.Bounds().Width <= plain.Bounds().Width {
		t.Fatalf("\\, did not widen: %d <= %d", loose.Bounds().Width, plain.Bounds().Width)
	}
}

// Text nodes set the font state they need before every measurement,
// so interleaved sizes cannot leak between siblings.
func TestFontStateIsolation(t *testing.T) {
	root, _ := measure(t, `x^2y`)

	y := root.Children[1].(*layout.Text)
	if y.Bounds().Height != baseSize {
		t.Fatalf("trailing text measured at leaked size: height %d, want %d", y.Bounds().Height, baseSize)
	}
}

func minOf(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}
