package svg_test

import (
	"strings"
	"testing"

	"github.com/mathsuite/mathsuite/parser"
	"github.com/mathsuite/mathsuite/renderer/svg"
)

const baseSize = 28

// fixedMetrics makes glyphs half the font size wide so document
// geometry is predictable without real font files.
type fixedMetrics struct{}

func (fixedMetrics) TextWidth(s string, size int, italic bool) int {
	return len([]rune(s)) * size / 2
}

func (fixedMetrics) LineHeight(size int) int { return size }

func render(t *testing.T, markup string) string {
	t.Helper()
	r := svg.New(fixedMetrics{}, "Times New Roman")
	data, err := r.Render(parser.Parse(markup, baseSize))
	if err != nil {
		t.Fatalf("Render(%q): %v", markup, err)
	}
	return string(data)
}

func TestDocumentShape(t *testing.T) {
	doc := render(t, `\frac{1}{2}`)

	// Fraction box is 24x60; the document adds 50 padding per side
	// plus 20 extra height.
	if !strings.Contains(doc, `viewBox="0 0 124 180"`) {
		t.Errorf("missing expected viewBox:\n%s", doc)
	}
	if !strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("document does not start with an svg element:\n%s", doc)
	}
	if !strings.HasSuffix(doc, "</svg>") {
		t.Errorf("document does not end with </svg>:\n%s", doc)
	}
	if !strings.Contains(doc, `<rect width="100%" height="100%" fill="white" />`) {
		t.Errorf("missing white background:\n%s", doc)
	}

	// The fraction bar sits on the baseline (50 + ascent 30) and spans
	// the fraction's width from the left padding edge.
	if !strings.Contains(doc, `<line x1="50" y1="80" x2="74" y2="80" stroke="black" stroke-width="1.5" />`) {
		t.Errorf("missing fraction bar:\n%s", doc)
	}
}

func TestTextElement(t *testing.T) {
	doc := render(t, "x")

	// 28pt text drawn with its top at the padding edge: the SVG
	// baseline lands at 50 + 0.8*28.
	want := `<text x="50" y="72" font-family="Times New Roman" font-style="italic" font-size="28">x</text>`
	if !strings.Contains(doc, want) {
		t.Errorf("missing %s in:\n%s", want, doc)
	}
}

func TestUprightStyle(t *testing.T) {
	doc := render(t, "1")
	if !strings.Contains(doc, `font-style="normal"`) {
		t.Errorf("digits should render upright:\n%s", doc)
	}
}

func TestMarkupEscaping(t *testing.T) {
	doc := render(t, "a<b")
	if !strings.Contains(doc, ">&lt;<") {
		t.Errorf("'<' not escaped:\n%s", doc)
	}
	if strings.Contains(doc, "><<") {
		t.Errorf("raw '<' leaked into text content:\n%s", doc)
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	r := svg.New(fixedMetrics{}, "Times New Roman")
	root := parser.Parse(`\sqrt{x}`, baseSize)

	first, err := r.Render(root)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Render(root)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("second Render on the same renderer differs:\n%s\n---\n%s", first, second)
	}
}
