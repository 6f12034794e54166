package datalist

import "iter"

// Viewport maps the vertical scroll value to a cached cursor: the first
// visible row and the signed distance from the viewport top to that row's
// top edge. The cursor is a memo over RowList and the scroll value. Any
// structural change may invalidate it; the next query rebuilds it by walking
// from the head, and scroll deltas move it by walking only the rows that
// enter or leave the top edge.
//
// Horizontal scrolling is a flat offset applied to column positions.
type Viewport struct {
	rows *RowList

	VScroll ScrollBar
	HScroll ScrollBar

	width  int // row area, scrollbars excluded
	height int

	top      *Row
	topY     int
	known    bool
	syncedAt int
}

// NewViewport returns a viewport over rows with an empty area.
func NewViewport(rows *RowList) *Viewport {
	return &Viewport{rows: rows}
}

// Size returns the row area available after scrollbars.
func (v *Viewport) Size() (w, h int) { return v.width, v.height }

// Invalidate forgets the cursor. The next query walks from the head.
func (v *Viewport) Invalidate() { v.known = false }

// Valid reports whether the cursor is cached.
func (v *Viewport) Valid() bool { return v.known }

// Layout sizes the row area inside a client area of clientW x clientH,
// deciding which scrollbars (each barSize thick) are needed for the row
// content and the given content width, and recomputes both ranges. A height
// change invalidates the cursor; a clamped scroll value resyncs it.
func (v *Viewport) Layout(clientW, clientH, barSize, contentW int) {
	total := v.rows.TotalHeight()
	needV, needH := false, false
	for range 3 {
		w, h := clientW, clientH
		if needV {
			w -= barSize
		}
		if needH {
			h -= barSize
		}
		nv, nh := total > h, contentW > w
		if nv == needV && nh == needH {
			break
		}
		needV, needH = nv, nh
	}

	w, h := clientW, clientH
	if needV {
		w -= barSize
	}
	if needH {
		h -= barSize
	}
	w, h = max(0, w), max(0, h)
	if h != v.height {
		v.known = false
	}
	v.width, v.height = w, h
	v.VScroll.Visible, v.HScroll.Visible = needV, needH

	if v.VScroll.SetRange(total, h) {
		v.sync(v.VScroll.Value)
	}
	v.HScroll.SetRange(contentW, w)
}

// Top returns the cursor, computing it when unknown. The row is nil when
// nothing is visible.
func (v *Viewport) Top() (*Row, int) {
	if !v.known || (v.top != nil && !v.rows.Contains(v.top)) {
		v.top, v.topY = v.locate(v.VScroll.Value)
		v.known = true
		v.syncedAt = v.VScroll.Value
	}
	return v.top, v.topY
}

// locate walks from the head: the first visible row is the first whose
// bottom edge lies below the viewport top.
func (v *Viewport) locate(value int) (*Row, int) {
	y := -value
	for r := range v.rows.All() {
		if y+r.height > 0 {
			return r, y
		}
		y += r.height
	}
	return nil, 0
}

// sync moves a known cursor to a new scroll value by walking forward or
// backward from the cached row. It never walks past either end.
func (v *Viewport) sync(value int) {
	if !v.known || v.top == nil || !v.rows.Contains(v.top) {
		v.known = false
		v.Top()
		return
	}
	delta := value - v.syncedAt
	r, y := v.top, v.topY-delta
	switch {
	case delta >= 0:
		for r != nil && y+r.height <= 0 {
			y += r.height
			r = v.rows.Next(r)
		}
	case delta < 0:
		for y > 0 {
			p := v.rows.Prev(r)
			if p == nil {
				break
			}
			r = p
			y -= r.height
		}
	}
	if r == nil {
		y = 0
	}
	v.top, v.topY, v.syncedAt = r, y, value
}

// ScrollTo sets the vertical scroll value, clamped to the range, and moves
// the cursor incrementally. Returns whether the value changed.
func (v *Viewport) ScrollTo(value int) bool {
	if !v.VScroll.SetValue(value) {
		return false
	}
	v.sync(v.VScroll.Value)
	return true
}

// ScrollBy scrolls vertically by delta.
func (v *Viewport) ScrollBy(delta int) bool {
	return v.ScrollTo(v.VScroll.Value + delta)
}

// HScrollTo sets the horizontal offset, clamped to the range.
func (v *Viewport) HScrollTo(x int) bool {
	return v.HScroll.SetValue(x)
}

// HOffset is the x of the first column's left edge relative to the row
// area (zero or negative).
func (v *Viewport) HOffset() int { return -v.HScroll.Value }

// Visible iterates the rows that intersect the row area with their y
// relative to its top.
func (v *Viewport) Visible() iter.Seq2[*Row, int] {
	return func(yield func(*Row, int) bool) {
		r, y := v.Top()
		for r != nil && y < v.height {
			if !yield(r, y) {
				return
			}
			y += r.height
			r = v.rows.Next(r)
		}
	}
}

// RowAt returns the visible row under y and its top, or nil.
func (v *Viewport) RowAt(y int) (*Row, int) {
	if y < 0 || y >= v.height {
		return nil, 0
	}
	for r, ry := range v.Visible() {
		if y >= ry && y < ry+r.height {
			return r, ry
		}
	}
	return nil, 0
}

// Offset returns r's top edge relative to the viewport top, searching
// outward from the cursor in both directions so the cost is proportional to
// the distance from the visible band.
func (v *Viewport) Offset(r *Row) (int, bool) {
	if !v.rows.Contains(r) {
		return 0, false
	}
	top, y := v.Top()
	if top == nil {
		y = -v.VScroll.Value
		for x := range v.rows.All() {
			if x == r {
				return y, true
			}
			y += x.height
		}
		return 0, false
	}

	fwd, fy := top, y
	back, by := v.rows.Prev(top), y
	if back != nil {
		by -= back.height
	}
	for fwd != nil || back != nil {
		if fwd != nil {
			if fwd == r {
				return fy, true
			}
			fy += fwd.height
			fwd = v.rows.Next(fwd)
		}
		if back != nil {
			if back == r {
				return by, true
			}
			if back = v.rows.Prev(back); back != nil {
				by -= back.height
			}
		}
	}
	return 0, false
}

// IsFullyVisible reports whether all of r lies inside the row area.
func (v *Viewport) IsFullyVisible(r *Row) bool {
	y, ok := v.Offset(r)
	return ok && y >= 0 && y+r.height <= v.height
}

// IsPartiallyVisible reports whether any of r lies inside the row area.
func (v *Viewport) IsPartiallyVisible(r *Row) bool {
	y, ok := v.Offset(r)
	return ok && y+r.height > 0 && y < v.height
}

// EnsureVisible scrolls the least amount that makes r fully (or partially)
// visible. A row above the viewport, or any row when top is set, lands on
// the top edge; a row below lands on the bottom edge. Returns whether the
// scroll value changed.
func (v *Viewport) EnsureVisible(r *Row, fully, top bool) bool {
	y, ok := v.Offset(r)
	if !ok {
		return false
	}
	if fully {
		if y >= 0 && y+r.height <= v.height {
			return false
		}
	} else if y+r.height > 0 && y < v.height {
		return false
	}
	if top || y < 0 {
		return v.ScrollTo(v.VScroll.Value + y)
	}
	return v.alignBottom(r, y)
}

// alignBottom makes r the last row, walking backward from it until the
// viewport height is filled and adopting the row reached as the cursor.
func (v *Viewport) alignBottom(r *Row, offset int) bool {
	target := v.VScroll.Value + offset + r.height - v.height
	row, y := r, v.height-r.height
	for y > 0 {
		p := v.rows.Prev(row)
		if p == nil {
			break
		}
		row = p
		y -= row.height
	}
	if target <= 0 || y > 0 {
		return v.ScrollTo(0)
	}

	if !v.VScroll.SetValue(target) {
		return false
	}
	if v.VScroll.Value == target {
		v.top, v.topY, v.syncedAt, v.known = row, y, target, true
	} else {
		v.sync(v.VScroll.Value)
	}
	return true
}

// EnsureColumnVisible scrolls horizontally so the span [x, x+w) of row-area
// coordinates is visible, preferring to keep its left edge in view.
func (v *Viewport) EnsureColumnVisible(x, w int) bool {
	switch {
	case x < 0:
		return v.HScrollTo(v.HScroll.Value + x)
	case x+w > v.width:
		return v.HScrollTo(v.HScroll.Value + min(x+w-v.width, x))
	}
	return false
}
