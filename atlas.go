package datalist

// Glyph locates one rune in an atlas texture. Offsets are from the pen
// position at the top of the line.
type Glyph struct {
	U0, V0, U1, V1 float32
	X, Y, W, H     int
	Advance        int
}

// GlyphAtlas is a font baked into one texture. Renderers build it; the
// DrawList lays text out with it. It also measures text, so a host can
// pass the atlas to WithMeasurer and get layout that matches painting.
type GlyphAtlas struct {
	TextureID uint32
	Height    int
	Glyphs    map[rune]Glyph
	Missing   rune // drawn for runes without a glyph
}

func (a *GlyphAtlas) LineHeight() int { return a.Height }

func (a *GlyphAtlas) TextWidth(s string) int {
	w := 0
	for _, r := range s {
		if g, ok := a.glyph(r); ok {
			w += g.Advance
		}
	}
	return w
}

func (a *GlyphAtlas) glyph(r rune) (Glyph, bool) {
	if g, ok := a.Glyphs[r]; ok {
		return g, true
	}
	if g, ok := a.Glyphs[unicodeFallback(r)]; ok {
		return g, true
	}
	g, ok := a.Glyphs[a.Missing]
	return g, ok
}

// Layout returns the quads for s with the line's top-left at x, y.
func (a *GlyphAtlas) Layout(x, y float32, s string) []GlyphQuad {
	quads := make([]GlyphQuad, 0, len(s))
	for _, r := range s {
		g, ok := a.glyph(r)
		if !ok {
			continue
		}
		if g.W > 0 && g.H > 0 {
			x0, y0 := x+float32(g.X), y+float32(g.Y)
			quads = append(quads, GlyphQuad{
				X0: x0, Y0: y0, X1: x0 + float32(g.W), Y1: y0 + float32(g.H),
				U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
			})
		}
		x += float32(g.Advance)
	}
	return quads
}

// unicodeFallback maps common symbols to ASCII for bitmap fonts.
func unicodeFallback(r rune) rune {
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	case '…':
		return '.'
	}
	return r
}
