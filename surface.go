package datalist

// Surface receives the list's paint output, in list units. GPU hosts paint
// into a DrawList; terminal hosts into a cell grid.
type Surface interface {
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	HLine(x, y, w int, c Color)
	VLine(x, y, h int, c Color)
	// Text draws one line with its top-left corner at x, y.
	Text(x, y int, s string, c Color)
	PushClip(r Rect)
	PopClip()
}

// PartPainter is implemented by surfaces that draw themed parts
// themselves. Other surfaces get flat fallbacks built from rectangles.
type PartPainter interface {
	CheckBox(r Rect, checked bool, st *Style)
	ProgressBar(r Rect, percent float64, st *Style)
	SortArrow(r Rect, ascending bool, c Color)
	ScrollBar(track, thumb Rect, vertical bool, st *Style)
}

// flatParts draws the themed parts for surfaces without a PartPainter.
type flatParts struct{ s Surface }

func (p flatParts) CheckBox(r Rect, checked bool, st *Style) {
	p.s.StrokeRect(r, st.CheckBorder)
	if checked {
		p.s.FillRect(r.Inset(max(1, r.W/4)), st.CheckMark)
	}
}

func (p flatParts) ProgressBar(r Rect, percent float64, st *Style) {
	p.s.FillRect(r, st.ProgressTrack)
	fill := r
	fill.W = int(float64(r.W) * percent / 100)
	p.s.FillRect(fill, st.ProgressFill)
}

// SortArrow stacks shrinking bars into a triangle.
func (p flatParts) SortArrow(r Rect, ascending bool, c Color) {
	rows := min(r.H, (r.W+1)/2)
	for i := range rows {
		w := r.W - 2*i
		if w <= 0 {
			break
		}
		y := r.Y + r.H - 1 - i
		if !ascending {
			y = r.Y + i
		}
		p.s.HLine(r.X+i, y, w, c)
	}
}

func (p flatParts) ScrollBar(track, thumb Rect, vertical bool, st *Style) {
	p.s.FillRect(track, st.ScrollbarBack)
	p.s.FillRect(thumb, st.ScrollbarGrab)
}

func partsFor(s Surface) PartPainter {
	if pp, ok := s.(PartPainter); ok {
		return pp
	}
	return flatParts{s}
}
