package layout

// integralGlyph is the integral sign; Integral always renders it, the
// limits are what vary.
const integralGlyph = "∫"

// textAscent approximates the typographic baseline at 80% of the line
// height, since the Renderer capability has no per-glyph metrics.
func textAscent(h int) int { return int(float64(h) * 0.8) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Text is a leaf holding a literal string in a fixed size and style.
// Offset shifts the string horizontally and is added to the advance;
// the spacing commands use it with an empty string to produce thin
// positive or negative space.
type Text struct {
	Box
	Content string
	Italic  bool
	Size    int
	Offset  int
}

func (t *Text) Measure(r Renderer) {
	r.SetFontSize(t.Size)
	r.SetFontStyle(t.Italic)
	t.Width = r.TextWidth(t.Content) + t.Offset
	t.Height = r.LineHeight()
	t.Ascent = textAscent(t.Height)
}

func (t *Text) Draw(r Renderer, x, y int) {
	r.SetFontSize(t.Size)
	r.SetFontStyle(t.Italic)
	r.DrawText(x+t.Offset, y-t.Ascent, t.Content)
}

// Fraction stacks a numerator over a denominator with the bar on the
// baseline. Size is the font-size context the fraction was parsed in.
type Fraction struct {
	Box
	Num  Node
	Den  Node
	Size int
}

func (f *Fraction) Measure(r Renderer) {
	f.Num.Measure(r)
	f.Den.Measure(r)
	f.Width = maxInt(f.Num.Bounds().Width, f.Den.Bounds().Width) + 10
	f.Height = f.Num.Bounds().Height + f.Den.Bounds().Height + 4
	f.Ascent = f.Num.Bounds().Height + 2
}

func (f *Fraction) Draw(r Renderer, x, y int) {
	top := y - f.Ascent
	midX := x + f.Width/2
	num, den := f.Num.Bounds(), f.Den.Bounds()
	drawFrom(f.Num, r, midX-num.Width/2, top)
	r.DrawLine(x, y, x+f.Width, y)
	drawFrom(f.Den, r, midX-den.Width/2, y+2)
}

// Script attaches an optional superscript and subscript to a base.
// Both scripts start at the base's right edge and share that slot.
type Script struct {
	Box
	Base  Node
	Super Node
	Sub   Node
}

func (s *Script) Measure(r Renderer) {
	s.Base.Measure(r)
	base := s.Base.Bounds()
	s.Width = base.Width
	s.Ascent = base.Ascent
	s.Height = base.Height

	scriptW := 0
	if s.Super != nil {
		s.Super.Measure(r)
		sup := s.Super.Bounds()
		scriptW = maxInt(scriptW, sup.Width)
		s.Ascent = maxInt(s.Ascent, sup.Height+base.Ascent/2)
	}
	if s.Sub != nil {
		s.Sub.Measure(r)
		sub := s.Sub.Bounds()
		scriptW = maxInt(scriptW, sub.Width)
		s.Height = maxInt(s.Height, sub.Height+s.Ascent)
	}
	s.Width += scriptW
}

func (s *Script) Draw(r Renderer, x, y int) {
	s.Base.Draw(r, x, y)
	base := s.Base.Bounds()
	scriptX := x + base.Width

	if s.Super != nil {
		sup := s.Super.Bounds()
		drawFrom(s.Super, r, scriptX, y-base.Ascent-sup.Height/2)
	}
	if s.Sub != nil {
		sub := s.Sub.Bounds()
		drawFrom(s.Sub, r, scriptX, y+base.Descent()+sub.Height/10)
	}
}

// BigOperator stacks optional limits above and below an operator
// glyph. TextStyle renders the operator at the ambient size (e.g.
// "lim"); otherwise the glyph is enlarged to 150%.
type BigOperator struct {
	Box
	Symbol    string
	Lower     Node
	Upper     Node
	Size      int
	TextStyle bool
}

func (o *BigOperator) glyphSize() int {
	if o.TextStyle {
		return o.Size
	}
	return int(float64(o.Size) * 1.5)
}

func (o *BigOperator) Measure(r Renderer) {
	r.SetFontSize(o.glyphSize())
	r.SetFontStyle(false)
	baseW := r.TextWidth(o.Symbol)
	baseH := r.LineHeight()

	lowW, lowH := 0, 0
	upW, upH := 0, 0
	if o.Lower != nil {
		o.Lower.Measure(r)
		lowW, lowH = o.Lower.Bounds().Width, o.Lower.Bounds().Height
	}
	if o.Upper != nil {
		o.Upper.Measure(r)
		upW, upH = o.Upper.Bounds().Width, o.Upper.Bounds().Height
	}

	o.Width = maxInt(baseW, maxInt(lowW, upW)) + 4

	topPart := upH + textAscent(baseH)
	botPart := (baseH - textAscent(baseH)) + lowH
	o.Ascent = topPart
	o.Height = topPart + botPart
}

func (o *BigOperator) Draw(r Renderer, x, y int) {
	top := y - o.Ascent
	midX := x + o.Width/2

	upH := 0
	if o.Upper != nil {
		up := o.Upper.Bounds()
		drawFrom(o.Upper, r, midX-up.Width/2, top)
		upH = up.Height
	}

	r.SetFontSize(o.glyphSize())
	r.SetFontStyle(false)
	opW := r.TextWidth(o.Symbol)
	opH := r.LineHeight()

	opY := top + upH
	r.DrawText(midX-opW/2, opY, o.Symbol)

	if o.Lower != nil {
		low := o.Lower.Bounds()
		drawFrom(o.Lower, r, midX-low.Width/2, opY+opH)
	}
}

// Integral renders the integral sign with its limits stacked beside it
// (upper above-right, lower below-right) rather than above and below,
// the conventional offset-limit notation.
type Integral struct {
	Box
	Lower Node
	Upper Node
	Size  int
}

func (n *Integral) Measure(r Renderer) {
	r.SetFontSize(int(float64(n.Size) * 1.5))
	r.SetFontStyle(false)
	intW := r.TextWidth(integralGlyph)
	intH := r.LineHeight()

	limitsW, limitsH := 0, 0
	if n.Upper != nil {
		n.Upper.Measure(r)
		limitsW = maxInt(limitsW, n.Upper.Bounds().Width)
		limitsH += n.Upper.Bounds().Height
	}
	if n.Lower != nil {
		n.Lower.Measure(r)
		limitsW = maxInt(limitsW, n.Lower.Bounds().Width)
		limitsH += n.Lower.Bounds().Height
	}

	n.Width = intW + limitsW + 4
	n.Height = maxInt(intH, limitsH)
	n.Ascent = intH / 2
}

func (n *Integral) Draw(r Renderer, x, y int) {
	top := y - n.Ascent

	r.SetFontSize(int(float64(n.Size) * 1.5))
	r.SetFontStyle(false)
	intW := r.TextWidth(integralGlyph)
	intH := r.LineHeight()

	opY := top + (n.Ascent - intH/2)
	r.DrawText(x, opY, integralGlyph)

	limX := x + intW + 2
	if n.Upper != nil {
		drawFrom(n.Upper, r, limX, opY+2)
	}
	if n.Lower != nil {
		drawFrom(n.Lower, r, limX, opY+intH-n.Lower.Bounds().Height-2)
	}
}

// Radical draws an n-th root: an optional index, then a radical sign
// synthesized from three line segments whose extents follow the
// radicand's measured height, so the sign scales with any content.
type Radical struct {
	Box
	Radicand Node
	Index    Node
}

func (n *Radical) Measure(r Renderer) {
	n.Radicand.Measure(r)
	rad := n.Radicand.Bounds()
	n.Width = rad.Width + 15
	n.Height = rad.Height + 5
	n.Ascent = rad.Ascent + 5
	if n.Index != nil {
		n.Index.Measure(r)
		idx := n.Index.Bounds()
		n.Width += maxInt(0, idx.Width-5)
		n.Ascent = maxInt(n.Ascent, idx.Height+5)
		n.Height = maxInt(n.Height, n.Ascent+rad.Descent())
	}
}

func (n *Radical) Draw(r Renderer, x, y int) {
	top := y - n.Ascent
	rad := n.Radicand.Bounds()

	startX := x
	if n.Index != nil {
		drawFrom(n.Index, r, x, top)
		startX += maxInt(5, n.Index.Bounds().Width)
	}

	// Radicand shares the radical's baseline.
	n.Radicand.Draw(r, startX+10, y)

	bottomY := y + rad.Descent()
	topY := y - rad.Ascent - 5

	r.DrawLine(startX, bottomY-(bottomY-topY)/2, startX+5, bottomY)
	r.DrawLine(startX+5, bottomY, startX+10, topY)
	r.DrawLine(startX+10, topY, startX+rad.Width+15, topY)
}

// Fence encloses content between delimiters synthesized from line
// segments scaled to the content's height. Left and Right are one of
// "(", ")", "[", "]", "|" or empty for no delimiter.
type Fence struct {
	Box
	Content Node
	Left    string
	Right   string
}

func (f *Fence) Measure(r Renderer) {
	f.Content.Measure(r)
	c := f.Content.Bounds()
	f.Width = c.Width + 14
	f.Height = c.Height
	f.Ascent = c.Ascent
}

func (f *Fence) Draw(r Renderer, x, y int) {
	f.Content.Draw(r, x+7, y)

	top := y - f.Ascent
	h := f.Height

	switch f.Left {
	case "|":
		r.DrawLine(x+2, top, x+2, top+h)
	case "(":
		r.DrawLine(x+5, top, x+1, top+h/2)
		r.DrawLine(x+1, top+h/2, x+5, top+h)
	case "[":
		r.DrawLine(x+5, top, x+5, top+h)
		r.DrawLine(x+5, top, x+10, top)
		r.DrawLine(x+5, top+h, x+10, top+h)
	}

	switch f.Right {
	case "|":
		r.DrawLine(x+f.Width-2, top, x+f.Width-2, top+h)
	case ")":
		r.DrawLine(x+f.Width-5, top, x+f.Width-1, top+h/2)
		r.DrawLine(x+f.Width-1, top+h/2, x+f.Width-5, top+h)
	case "]":
		r.DrawLine(x+f.Width-5, top, x+f.Width-5, top+h)
		r.DrawLine(x+f.Width-5, top, x+f.Width-10, top)
		r.DrawLine(x+f.Width-5, top+h, x+f.Width-10, top+h)
	}
}
