package datalist

type headerState struct {
	active   bool    // left button went down in the header
	resizing *Column // column whose right edge is dragged
	pressed  *Column // sortable column pressed for a click
}

// forget drops references to a column being removed.
func (h *headerState) forget(c *Column) {
	if h.resizing == c {
		h.resizing = nil
	}
	if h.pressed == c {
		h.pressed = nil
	}
}

// PressedColumn returns the header column shown pushed in, or nil.
func (l *DataList) PressedColumn() *Column { return l.header.pressed }

// ResizingColumn returns the column being resized from the header, or nil.
func (l *DataList) ResizingColumn() *Column { return l.header.resizing }

// resizeTarget finds the column whose right edge lies within the grip of x.
// Grabbing a column's left edge resizes the previous visible column; past
// the last column the last visible one is grabbed.
func (l *DataList) resizeTarget(x int) *Column {
	grip := l.style.ResizeGrip
	off := l.view.HOffset()
	c := l.cols.Find(x, off)
	if c == nil {
		last := l.cols.lastVisible()
		if last != nil && x-(l.cols.Width()+off) < grip && last.resizable {
			return last
		}
		return nil
	}
	left := l.cols.XPos(c.index, off)
	if x-left < grip && c.index > 0 {
		if prev := l.cols.prevVisible(c); prev != nil && prev.resizable {
			return prev
		}
		return nil
	}
	if left+c.width-x < grip && c.resizable {
		return c
	}
	return nil
}

func (l *DataList) headerMouseDown(x int, b MouseButton) {
	if b != MouseButtonLeft {
		return
	}
	l.settleEdit()
	l.header.active = true
	l.header.resizing = l.resizeTarget(x)
	l.header.pressed = nil
	if l.header.resizing != nil {
		return
	}
	if c := l.cols.Find(x, l.view.HOffset()); c != nil && c.AllowSort() {
		l.header.pressed = c
	}
}

// headerMouseMove drags a resize. Wrapped rows on screen are re-measured
// as the width changes; the rest wait for the release.
func (l *DataList) headerMouseMove(x int) {
	c := l.header.resizing
	if c == nil {
		return
	}
	left := l.cols.XPos(c.index, l.view.HOffset())
	w := max(0, x-left)
	if w == c.width {
		return
	}
	c.width = w
	if c.IsVariableHeight() {
		for _, r := range l.visibleRows() {
			l.rows.setHeight(r, l.measureRow(r))
		}
		l.view.sync(l.view.VScroll.Value)
	}
	l.relayout()
}

// visibleRows snapshots the rows on screen so heights can change while
// iterating.
func (l *DataList) visibleRows() []*Row {
	var out []*Row
	for r := range l.view.Visible() {
		out = append(out, r)
	}
	return out
}

// cancelResize restores the stored width of the column being resized.
func (l *DataList) cancelResize() {
	c := l.header.resizing
	if c == nil {
		return
	}
	c.width = c.stored
	l.header.resizing = nil
	if c.IsVariableHeight() {
		l.recalcAll("resize cancelled")
	}
	l.relayout()
}

func (l *DataList) headerMouseUp(x, y int) {
	l.header.active = false
	if c := l.header.resizing; c != nil {
		l.header.resizing = nil
		c.stored = c.width
		if c.IsVariableHeight() {
			l.recalcAll("resize end")
		}
		l.relayout()
		return
	}

	c := l.header.pressed
	l.header.pressed = nil
	if c == nil {
		return
	}
	hit := l.HitTest(x, y)
	if hit.Area != HitHeader || hit.Column != c.index {
		return
	}
	if c.priority != 0 {
		l.cols.SetPriority(c, 0)
	}
	c.ascending = !c.ascending
	if h := l.Events.ColumnClicked; h != nil {
		h(c.index)
	}
	if err := l.Sort(); err != nil {
		l.log.Warn("header sort failed", "column", c.name, "err", err)
	}
}
