// Package parser translates formula markup (a LaTeX-like subset) into
// a layout node tree. Parsing never fails: unknown commands degrade to
// a placeholder glyph and unbalanced input is consumed as far as it
// goes.
package parser

import (
	"unicode"

	"github.com/mathsuite/mathsuite/layout"
)

// placeholder replaces any command the parser does not recognize.
const placeholder = "?"

// Parse interprets markup at the given base font size and returns the
// root sequence. It consumes the entire input, or stops at an
// unmatched '}' or ']' so that sub-parses of extracted blocks hand the
// terminator back to their caller.
func Parse(markup string, fontSize int) *layout.Sequence {
	p := &parser{src: []rune(markup), size: fontSize}
	return p.sequence()
}

// parser holds an immutable input slice and a mutable cursor. Every
// extracted block is parsed by a fresh parser over its own substring,
// so recursive parses never share cursor state.
type parser struct {
	src  []rune
	pos  int
	size int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) next() rune {
	if p.eof() {
		return 0
	}
	r := p.src[p.pos]
	p.pos++
	return r
}

// lookingAt reports whether the input at the cursor starts with s.
func (p *parser) lookingAt(s string) bool {
	i := p.pos
	for _, r := range s {
		if i >= len(p.src) || p.src[i] != r {
			return false
		}
		i++
	}
	return true
}

func (p *parser) sequence() *layout.Sequence {
	row := &layout.Sequence{}
	for !p.eof() {
		c := p.peek()
		if c == '}' || c == ']' {
			break // block terminator belongs to the caller
		}
		node := p.item()
		if node != nil {
			node = p.scripts(node)
			row.Append(node)
		}
	}
	return row
}

func (p *parser) item() layout.Node {
	if p.eof() {
		return nil
	}
	c := p.next()

	if c == '\\' {
		return p.command()
	}

	if unicode.IsDigit(c) {
		num := []rune{c}
		for unicode.IsDigit(p.peek()) || p.peek() == '.' {
			num = append(num, p.next())
		}
		return &layout.Text{Content: string(num), Size: p.size}
	}

	if unicode.IsLetter(c) {
		return &layout.Text{Content: string(c), Italic: true, Size: p.size}
	}

	return &layout.Text{Content: string(c), Size: p.size}
}

func (p *parser) command() layout.Node {
	var name []rune
	for unicode.IsLetter(p.peek()) {
		name = append(name, p.next())
	}
	if len(name) == 0 && !p.eof() {
		// one-character commands: \! \, \'
		name = append(name, p.next())
	}
	cmd := string(name)

	switch cmd {
	case "left":
		return p.fence()
	case "frac":
		num := Parse(p.block(), p.size)
		den := Parse(p.block(), p.size)
		return &layout.Fraction{Num: num, Den: den, Size: p.size}
	case "sqrt":
		var index layout.Node
		if p.peek() == '[' {
			index = Parse(p.block(), scaled(p.size, 0.6))
		}
		radicand := Parse(p.block(), p.size)
		return &layout.Radical{Radicand: radicand, Index: index}
	case "int":
		return &layout.Integral{Size: p.size}
	case "sum", "prod":
		return &layout.BigOperator{Symbol: "∑", Size: p.size}
	case "lim":
		return &layout.BigOperator{Symbol: "lim", Size: p.size, TextStyle: true}
	case "mathrm":
		// the block is literal text, not nested markup
		return &layout.Text{Content: p.block(), Size: p.size}
	case "!":
		return &layout.Text{Size: p.size, Offset: scaled(p.size, -0.15)}
	case ",":
		return &layout.Text{Size: p.size, Offset: scaled(p.size, 0.15)}
	}

	if functions[cmd] {
		return &layout.Text{Content: cmd, Size: p.size}
	}
	if glyph, ok := symbols[cmd]; ok {
		return &layout.Text{Content: glyph, Size: p.size}
	}
	return &layout.Text{Content: placeholder, Size: p.size}
}

// fence handles \left X ... \right Y. The scan tracks nested
// left/right pairs, the enclosed substring is parsed independently,
// and a missing \right simply consumes to end of input.
func (p *parser) fence() layout.Node {
	var left string
	if !p.eof() {
		left = string(p.next())
	}

	start := p.pos
	depth := 0
	for !p.eof() {
		if p.lookingAt(`\left`) {
			depth++
		}
		if p.lookingAt(`\right`) {
			if depth == 0 {
				break
			}
			depth--
		}
		p.pos++
	}

	content := Parse(string(p.src[start:p.pos]), p.size)

	if p.lookingAt(`\right`) {
		p.pos += len(`\right`)
	}
	var right string
	if !p.eof() {
		right = string(p.next())
	}

	return &layout.Fence{Content: content, Left: left, Right: right}
}

// block extracts one argument: a balanced {...} block, a [...] block
// (not depth-tracked), or the next single character as fallback.
func (p *parser) block() string {
	switch p.peek() {
	case '{':
		p.next()
		depth := 1
		var out []rune
		for !p.eof() && depth > 0 {
			c := p.next()
			switch c {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth > 0 {
				out = append(out, c)
			}
		}
		return string(out)
	case '[':
		p.next()
		var out []rune
		for !p.eof() && p.peek() != ']' {
			out = append(out, p.next())
		}
		if !p.eof() {
			p.next()
		}
		return string(out)
	default:
		if p.eof() {
			return ""
		}
		return string(p.next())
	}
}

// scripts attaches trailing ^/_ blocks to base. Big operators and
// integrals take the script content as their limits; anything else is
// wrapped in a Script once and reused for the opposite suffix, so
// x^2_3 and x_3^2 build the same tree.
func (p *parser) scripts(base layout.Node) layout.Node {
	for p.peek() == '^' || p.peek() == '_' {
		kind := p.next()
		content := Parse(p.block(), scaled(p.size, 0.7))

		switch n := base.(type) {
		case *layout.BigOperator:
			if kind == '^' {
				n.Upper = content
			} else {
				n.Lower = content
			}
		case *layout.Integral:
			if kind == '^' {
				n.Upper = content
			} else {
				n.Lower = content
			}
		case *layout.Script:
			if kind == '^' {
				n.Super = content
			} else {
				n.Sub = content
			}
		default:
			s := &layout.Script{Base: base}
			if kind == '^' {
				s.Super = content
			} else {
				s.Sub = content
			}
			base = s
		}
	}
	return base
}

func scaled(size int, factor float64) int {
	return int(float64(size) * factor)
}
