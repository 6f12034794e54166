package opengl

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/datalist"
)

// atlasColumns is the number of glyph cells per atlas row.
const atlasColumns = 16

// DefaultRunes is printable ASCII plus Latin-1.
func DefaultRunes() []rune {
	var rs []rune
	for r := rune(32); r < 127; r++ {
		rs = append(rs, r)
	}
	for r := rune(0xA1); r <= 0xFF; r++ {
		rs = append(rs, r)
	}
	return rs
}

// DefaultFace is the bitmap face the renderer bakes when none is given.
func DefaultFace() font.Face { return basicfont.Face7x13 }

// BakeAtlas rasterizes runes from face into an alpha image laid out in a
// grid of line-height cells. The returned atlas has no texture yet.
func BakeAtlas(face font.Face, runes []rune) (*datalist.GlyphAtlas, *image.Alpha) {
	m := face.Metrics()
	cellH := m.Height.Ceil()
	ascent := m.Ascent.Ceil()
	cellW := 1
	for _, r := range runes {
		if adv, ok := face.GlyphAdvance(r); ok {
			cellW = max(cellW, adv.Ceil())
		}
	}

	rows := (len(runes) + atlasColumns - 1) / atlasColumns
	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*cellW, max(1, rows)*cellH))
	tw, th := float32(img.Bounds().Dx()), float32(img.Bounds().Dy())

	atlas := &datalist.GlyphAtlas{
		Height:  cellH,
		Glyphs:  make(map[rune]datalist.Glyph, len(runes)),
		Missing: '?',
	}
	for i, r := range runes {
		cx, cy := (i%atlasColumns)*cellW, (i/atlasColumns)*cellH
		dot := fixed.P(cx, cy+ascent)
		dr, mask, maskp, adv, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		cell := image.Rect(cx, cy, cx+cellW, cy+cellH)
		dr = dr.Intersect(cell)
		draw.DrawMask(img, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
		atlas.Glyphs[r] = datalist.Glyph{
			U0:      float32(dr.Min.X) / tw,
			V0:      float32(dr.Min.Y) / th,
			U1:      float32(dr.Max.X) / tw,
			V1:      float32(dr.Max.Y) / th,
			X:       dr.Min.X - cx,
			Y:       dr.Min.Y - cy,
			W:       dr.Dx(),
			H:       dr.Dy(),
			Advance: adv.Round(),
		}
	}
	return atlas, img
}

// FaceMeasurer measures text with a font face, in pixels.
type FaceMeasurer struct {
	Face font.Face
}

func (m FaceMeasurer) LineHeight() int { return m.Face.Metrics().Height.Ceil() }

func (m FaceMeasurer) TextWidth(s string) int { return font.MeasureString(m.Face, s).Ceil() }
