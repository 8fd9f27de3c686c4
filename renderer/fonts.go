package renderer

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
)

// DefaultFontPattern selects the formula face when no font file is
// supplied. Times-style serifs carry the usual math glyph repertoire.
const DefaultFontPattern = "Times New Roman, serif"

// FontSet owns the regular and italic faces of one font family and
// caches canvas font faces per size. It implements Metrics for the SVG
// backend and hands faces to the PDF backend for drawing.
type FontSet struct {
	family *canvas.FontFamily
	italic bool // an italic variant was loaded

	mu    sync.Mutex
	faces map[faceKey]*canvas.FontFace
}

type faceKey struct {
	size   int
	italic bool
}

func newFontSet(family *canvas.FontFamily, italic bool) *FontSet {
	return &FontSet{
		family: family,
		italic: italic,
		faces:  map[faceKey]*canvas.FontFace{},
	}
}

// LoadSystemFonts resolves pattern (a comma-separated font query, e.g.
// "Times New Roman, serif") through the system font index. The italic
// variant is optional; when it is missing the regular face doubles for
// italic text.
func LoadSystemFonts(pattern string) (*FontSet, error) {
	family := canvas.NewFontFamily("formula")
	if err := family.LoadSystemFont(pattern, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load system font %q: %w", pattern, err)
	}
	italic := family.LoadSystemFont(pattern, canvas.FontItalic) == nil
	return newFontSet(family, italic), nil
}

// LoadFontFiles builds a FontSet from TTF/OTF files. italicPath may be
// empty, in which case the regular face doubles for italic text.
func LoadFontFiles(path, italicPath string) (*FontSet, error) {
	family := canvas.NewFontFamily("formula")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}

	italic := false
	if italicPath != "" {
		data, err := os.ReadFile(italicPath)
		if err != nil {
			return nil, fmt.Errorf("read italic font %s: %w", italicPath, err)
		}
		if err := family.LoadFont(data, 0, canvas.FontItalic); err != nil {
			return nil, fmt.Errorf("load italic font %s: %w", italicPath, err)
		}
		italic = true
	}
	return newFontSet(family, italic), nil
}

// Face returns a cached canvas face for the given size in points.
func (f *FontSet) Face(size int, italic bool) *canvas.FontFace {
	key := faceKey{size: size, italic: italic && f.italic}

	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[key]; ok {
		return face
	}

	style := canvas.FontRegular
	if key.italic {
		style = canvas.FontItalic
	}
	face := f.family.Face(float64(size), canvas.Black, style, canvas.FontNormal)
	f.faces[key] = face
	return face
}

// TextWidth implements Metrics; the result is in points.
func (f *FontSet) TextWidth(s string, size int, italic bool) int {
	return int(math.Round(f.Face(size, italic).TextWidth(s) * MmToPt))
}

// LineHeight implements Metrics; the result is in points.
func (f *FontSet) LineHeight(size int) int {
	return int(math.Round(f.Face(size, false).Metrics().LineHeight * MmToPt))
}

var _ Metrics = (*FontSet)(nil)
