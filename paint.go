package datalist

import "fmt"

// Paint draws the list into s with its top-left corner at the origin. Only
// rows that intersect the row area are visited. Colors are resolved on
// every call, so overrides and focus changes need no invalidation.
func (l *DataList) Paint(s Surface) {
	if l.width <= 0 || l.height <= 0 {
		return
	}
	parts := partsFor(s)
	full := Rect{W: l.width, H: l.height}
	s.PushClip(full)
	defer s.PopClip()

	back := l.style.Back
	if !l.enabled || l.cols.readOnly {
		back = l.style.ControlBack
	}
	s.FillRect(full, back)

	if l.combo.enabled {
		l.paintComboField(s)
		if !l.combo.dropped {
			return
		}
	}
	if l.showHeader {
		l.paintHeader(s, parts)
	}
	l.paintRows(s, parts)
	l.paintScrollbars(s, parts)
	l.paintEdit(s)
	l.paintTooltip(s)
}

func (l *DataList) paintComboField(s Surface) {
	h := l.baseHeight()
	pad := l.style.CellPadding
	field := Rect{W: l.width, H: h}
	s.FillRect(field, l.style.EditBack)
	s.StrokeRect(field, l.style.EditBorder)

	arrow := min(h-2*pad, l.style.ScrollbarSize)
	arrowRect := Rect{X: l.width - pad - arrow, Y: (h - arrow/2) / 2, W: arrow, H: arrow / 2}
	partsFor(s).SortArrow(arrowRect, l.combo.dropped, l.style.Text)

	text := TruncateText(l.measure, l.ComboText(), l.width-3*pad-arrow)
	s.Text(pad, pad, text, l.style.EditText)
}

func (l *DataList) paintHeader(s Surface, parts PartPainter) {
	h := l.baseHeight()
	y := l.rowTop() - h
	pad := l.style.CellPadding
	bar := Rect{Y: y, W: l.width, H: h}
	s.FillRect(bar, l.style.HeaderBack)
	s.PushClip(bar)
	defer s.PopClip()

	x := l.view.HOffset()
	for _, c := range l.cols.All() {
		w := c.Width()
		if w == 0 {
			continue
		}
		if x+w <= 0 || x >= l.width {
			x += w
			continue
		}
		cell := Rect{X: x, Y: y, W: w, H: h}
		if c == l.header.pressed {
			s.FillRect(cell, l.style.HeaderPressed)
		}
		s.VLine(x+w-1, y, h, l.style.HeaderBorder)

		textW := w - 2*pad
		if c.priority == 0 && c.AllowSort() {
			aw := min(l.style.CheckSize, textW)
			if aw > 0 {
				ah := max(1, aw/2)
				arrow := Rect{X: x + w - pad - aw, Y: y + (h-ah)/2, W: aw, H: ah}
				parts.SortArrow(arrow, c.ascending, l.style.SortArrow)
				textW -= aw + pad
			}
		}
		s.Text(x+pad, y+pad, TruncateText(l.measure, c.name, textW), l.style.HeaderText)
		x += w
	}
	s.HLine(0, y+h-1, l.width, l.style.HeaderBorder)
}

func (l *DataList) paintRows(s Surface, parts PartPainter) {
	area := l.RowArea()
	if area.Empty() {
		return
	}
	s.PushClip(area)
	defer s.PopClip()

	grid := l.style.Back.Scale(l.style.GridLineScale)
	for r, ry := range l.view.Visible() {
		y := area.Y + ry
		x := area.X + l.view.HOffset()
		for i, c := range l.cols.All() {
			w := c.Width()
			if w == 0 {
				continue
			}
			if x+w > area.X && x < area.X+area.W {
				cell := Rect{X: x, Y: y, W: w, H: r.height}
				l.paintCell(s, parts, r, i, c, cell)
				if l.gridLines {
					s.VLine(x+w-1, y, r.height, grid)
				}
			}
			x += w
		}
		if x < area.X+area.W && l.IsHighlighted(r) {
			back, _ := l.CellColors(r, -1)
			s.FillRect(Rect{X: x, Y: y, W: area.X + area.W - x, H: r.height}, back)
		}
		if l.gridLines {
			s.HLine(area.X, y+r.height-1, min(area.W, x-area.X), grid)
		}
	}
}

func (l *DataList) paintCell(s Surface, parts PartPainter, r *Row, i int, c *Column, cell Rect) {
	back, fore := l.CellColors(r, i)
	s.FillRect(cell, back)
	pad := l.style.CellPadding
	inner := cell.Inset(pad)

	switch c.render {
	case RenderCheckBox:
		v := r.Value(i)
		if v.IsNull() && !l.showNull {
			return
		}
		size := min(l.style.CheckSize, inner.W, inner.H)
		box := Rect{X: cell.X + (cell.W-size)/2, Y: cell.Y + (cell.H-size)/2, W: size, H: size}
		parts.CheckBox(box, v.AsBool(), &l.style)
	case RenderProgressBar:
		v := r.Value(i)
		if v.IsNull() {
			if l.showNull {
				s.Text(inner.X, inner.Y, TruncateText(l.measure, "NULL", inner.W), fore)
			}
			return
		}
		pct := v.AsFloat()
		parts.ProgressBar(inner, pct, &l.style)
		label := fmt.Sprintf("%.0f%%", pct)
		if tw := l.measure.TextWidth(label); tw <= inner.W {
			s.Text(inner.X+(inner.W-tw)/2, inner.Y, label, fore)
		}
	case RenderRowBackColor, RenderRowForeColor, RenderRowSelBackColor, RenderRowSelForeColor:
	case RenderTextWrap:
		s.PushClip(cell)
		lh := l.measure.LineHeight()
		for n, line := range WrapText(l.measure, l.Text(r, i), inner.W) {
			s.Text(inner.X, inner.Y+n*lh, line, fore)
		}
		s.PopClip()
	default:
		s.Text(inner.X, inner.Y, TruncateText(l.measure, l.Text(r, i), inner.W), fore)
	}
}

func (l *DataList) paintScrollbars(s Surface, parts PartPainter) {
	area := l.RowArea()
	size := l.style.ScrollbarSize
	if vs := &l.view.VScroll; vs.Visible {
		track := Rect{X: area.X + area.W, Y: area.Y, W: size, H: area.H}
		off, length := vs.Thumb(track.H)
		parts.ScrollBar(track, Rect{X: track.X, Y: track.Y + off, W: size, H: length}, true, &l.style)
	}
	if hs := &l.view.HScroll; hs.Visible {
		track := Rect{X: area.X, Y: area.Y + area.H, W: area.W, H: size}
		off, length := hs.Thumb(track.W)
		parts.ScrollBar(track, Rect{X: track.X + off, Y: track.Y, W: length, H: size}, false, &l.style)
	}
	if l.view.VScroll.Visible && l.view.HScroll.Visible {
		s.FillRect(Rect{X: area.X + area.W, Y: area.Y + area.H, W: size, H: size}, l.style.ScrollbarBack)
	}
}

// EditBounds returns where the open edit box is, clipped to the row area.
// Hosts with native text inputs place them here.
func (l *DataList) EditBounds() (Rect, bool) {
	if l.edit == nil {
		return Rect{}, false
	}
	rect, ok := l.CellRect(l.edit.Row, l.edit.Column)
	return rect, ok
}

func (l *DataList) paintEdit(s Surface) {
	rect, ok := l.EditBounds()
	if !ok {
		return
	}
	s.PushClip(l.RowArea())
	defer s.PopClip()
	s.FillRect(rect, l.style.EditBack)
	s.StrokeRect(rect, l.style.EditBorder)

	pad := l.style.CellPadding
	inner := rect.Inset(pad)
	lh := l.measure.LineHeight()
	lines := []string{l.edit.Text}
	if c := l.cols.At(l.edit.Column); c != nil && c.IsVariableHeight() {
		lines = WrapText(l.measure, l.edit.Text, inner.W)
	}
	s.PushClip(rect)
	for n, line := range lines {
		s.Text(inner.X, inner.Y+n*lh, line, l.style.EditText)
	}
	last := lines[len(lines)-1]
	caretX := min(inner.X+l.measure.TextWidth(last), rect.X+rect.W-1)
	s.VLine(caretX, inner.Y+(len(lines)-1)*lh, lh, l.style.EditText)
	s.PopClip()
}

func (l *DataList) paintTooltip(s Surface) {
	text, x, y, ok := l.Tooltip()
	if !ok {
		return
	}
	pad := max(2, l.style.CellPadding)
	lines := WrapText(l.measure, text, l.width/2)
	w, lh := 0, l.measure.LineHeight()
	for _, line := range lines {
		w = max(w, l.measure.TextWidth(line))
	}
	box := Rect{X: x + 12, Y: y + 16, W: w + 2*pad, H: len(lines)*lh + 2*pad}
	if box.X+box.W > l.width {
		box.X = max(0, l.width-box.W)
	}
	if box.Y+box.H > l.height {
		box.Y = max(0, y-box.H-2)
	}
	s.FillRect(box, l.style.TooltipBack)
	s.StrokeRect(box, l.style.TooltipFrame)
	for n, line := range lines {
		s.Text(box.X+pad, box.Y+pad+n*lh, line, l.style.TooltipText)
	}
}
