package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mathsuite/mathsuite/layout"
	"github.com/mathsuite/mathsuite/parser"
	"github.com/mathsuite/mathsuite/renderer"
	"github.com/mathsuite/mathsuite/renderer/pdf"
	"github.com/mathsuite/mathsuite/renderer/svg"
)

// baseFontSize is the default size of top-level formula text in points.
const baseFontSize = 28

func main() {
	formula := flag.String("formula", "", "formula markup; reads -in or stdin when empty")
	input := flag.String("in", "", "file containing formula markup")
	output := flag.String("out", "output/formula.svg", "output path (.svg or .pdf)")
	size := flag.Int("size", baseFontSize, "base font size in points")
	fontPath := flag.String("font", "", "font file for the regular face; system fonts when empty")
	italicPath := flag.String("italic-font", "", "font file for the italic face")
	family := flag.String("family", "Times New Roman", "font-family attribute in SVG output")
	debug := flag.String("debug", "", "layout debug JSON output path")
	flag.Parse()

	if err := run(*formula, *input, *output, *debug, *fontPath, *italicPath, *family, *size); err != nil {
		log.Fatalf("render formula: %v", err)
	}
	fmt.Printf("wrote %s\n", *output)
}

// run chains parsing, layout and rendering.
func run(formula, inputPath, outputPath, debugPath, fontPath, italicPath, family string, size int) error {
	markup, err := readMarkup(formula, inputPath)
	if err != nil {
		return err
	}

	fonts, err := loadFonts(fontPath, italicPath)
	if err != nil {
		return err
	}

	root := parser.Parse(markup, size)

	var r renderer.Renderer
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".svg":
		r = svg.New(fonts, family)
	case ".pdf":
		r = pdf.New(fonts)
	default:
		return fmt.Errorf("unsupported output format %q (want .svg or .pdf)", filepath.Ext(outputPath))
	}

	data, err := r.Render(root)
	if err != nil {
		return fmt.Errorf("render %s: %w", outputPath, err)
	}

	if debugPath != "" {
		if err := layout.WriteDebugJSON(root, debugPath); err != nil {
			return fmt.Errorf("write debug JSON: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

func readMarkup(formula, inputPath string) (string, error) {
	if formula != "" {
		return formula, nil
	}
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", inputPath, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func loadFonts(fontPath, italicPath string) (*renderer.FontSet, error) {
	if fontPath != "" {
		return renderer.LoadFontFiles(fontPath, italicPath)
	}
	return renderer.LoadSystemFonts(renderer.DefaultFontPattern)
}
