package datalist

// HitArea identifies the part of the list under a point.
type HitArea int

const (
	HitNone HitArea = iota
	HitComboField
	HitHeader
	HitCell
	HitRowArea // inside the row area but below the last row
	HitVScroll
	HitHScroll
)

// Hit is the result of HitTest.
type Hit struct {
	Area   HitArea
	Row    *Row
	Column int // -1 when no column is under the point
	Cell   Rect
}

type mouseState struct {
	x, y     int
	inside   bool
	captured bool // left button went down in the row area and is still held

	downRow     *Row
	downCol     int
	secondClick bool
	noEdit      bool // a double click happened; the next release must not arm an edit

	lastDownAt  float32
	lastDownX   int
	lastDownY   int
	lastDownRow *Row

	thumb     HitArea // scrollbar whose thumb is dragged, or HitNone
	thumbGrab int
}

// doubleClickSlop is how far apart two presses may be and still pair up.
const doubleClickSlop = 4

// HitTest locates a point given in control coordinates.
func (l *DataList) HitTest(x, y int) Hit {
	hit := Hit{Column: -1}
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return hit
	}
	if l.combo.enabled {
		if y < l.baseHeight() {
			hit.Area = HitComboField
			return hit
		}
		if !l.combo.dropped {
			return hit
		}
	}
	area := l.RowArea()
	if l.showHeader && y < area.Y {
		hit.Area = HitHeader
		if c := l.cols.Find(x, l.view.HOffset()); c != nil {
			hit.Column = c.index
		}
		return hit
	}
	switch {
	case l.view.VScroll.Visible && x >= area.X+area.W && y < area.Y+area.H:
		hit.Area = HitVScroll
		return hit
	case l.view.HScroll.Visible && y >= area.Y+area.H && x < area.X+area.W:
		hit.Area = HitHScroll
		return hit
	case !area.Contains(x, y):
		return hit
	}

	r, ry := l.view.RowAt(y - area.Y)
	if r == nil {
		hit.Area = HitRowArea
		return hit
	}
	hit.Area, hit.Row = HitCell, r
	if c := l.cols.Find(x, l.view.HOffset()); c != nil {
		hit.Column = c.index
		hit.Cell = Rect{X: l.cols.XPos(c.index, l.view.HOffset()), Y: area.Y + ry, W: c.width, H: r.height}
	}
	return hit
}

// SetFocus tells the list whether it has keyboard focus. Losing focus
// commits an open edit.
func (l *DataList) SetFocus(focused bool) {
	defer l.enter()()
	if l.focused == focused {
		return
	}
	l.focused = focused
	if !focused {
		l.settleEdit()
		l.tooltip.hide()
		l.mouse.captured = false
	}
}

// Focused reports whether the list has keyboard focus.
func (l *DataList) Focused() bool { return l.focused }

// MouseDown handles a button press at x, y. A second left press on the
// same row within the double-click time also raises a double click.
func (l *DataList) MouseDown(x, y int, b MouseButton) {
	defer l.enter()()
	if !l.enabled {
		return
	}
	l.focused = true
	l.cancelPending()
	l.tooltip.hide()
	l.mouse.x, l.mouse.y = x, y

	if l.header.resizing != nil {
		if b == MouseButtonRight {
			l.cancelResize()
		}
		return
	}

	hit := l.HitTest(x, y)
	dbl := false
	if b == MouseButtonLeft {
		dbl = hit.Row != nil && hit.Row == l.mouse.lastDownRow &&
			l.clock-l.mouse.lastDownAt <= l.dblClickTime &&
			abs(x-l.mouse.lastDownX) <= doubleClickSlop && abs(y-l.mouse.lastDownY) <= doubleClickSlop
		l.mouse.lastDownAt, l.mouse.lastDownX, l.mouse.lastDownY = l.clock, x, y
		l.mouse.lastDownRow = hit.Row
		if dbl {
			l.mouse.lastDownRow = nil
		}
	}

	switch hit.Area {
	case HitComboField:
		if b == MouseButtonLeft {
			if l.combo.dropped {
				l.CloseDropDown(false)
			} else {
				l.DropDown()
			}
		}
	case HitHeader:
		l.mouse.noEdit = false
		l.headerMouseDown(x, b)
	case HitVScroll, HitHScroll:
		if b == MouseButtonLeft {
			l.scrollbarDown(hit.Area, x, y)
		}
	case HitRowArea:
		l.settleEdit()
	case HitCell:
		if l.cols.readOnly {
			break
		}
		if l.edit != nil && (l.edit.Row != hit.Row || l.edit.Column != hit.Column) {
			l.settleEdit()
		}
		switch b {
		case MouseButtonLeft:
			if l.combo.enabled {
				l.highlight = hit.Row
			} else if hit.Row == l.sel {
				l.mouse.secondClick = true
			} else {
				c := l.cols.At(hit.Column)
				l.mouse.secondClick = c != nil && c.render == RenderCheckBox
				l.Select(hit.Row)
			}
			l.mouse.downRow, l.mouse.downCol = hit.Row, hit.Column
			l.mouse.captured = true
		case MouseButtonRight:
			if l.combo.enabled {
				l.highlight = hit.Row
			} else {
				l.Select(hit.Row)
			}
			l.mouse.captured = false
			l.mouse.secondClick = false
		}
	}
	if !dbl {
		l.mouse.noEdit = false
		return
	}
	l.DoubleClick(x, y)
}

// MouseUp handles a button release at x, y.
func (l *DataList) MouseUp(x, y int, b MouseButton) {
	defer l.enter()()
	l.cancelPending()
	l.mouse.x, l.mouse.y = x, y
	if b != MouseButtonLeft {
		return
	}
	downRow, downCol, second := l.mouse.downRow, l.mouse.downCol, l.mouse.secondClick
	l.mouse.downRow, l.mouse.secondClick, l.mouse.captured = nil, false, false
	l.mouse.thumb = HitNone

	if l.header.active {
		l.headerMouseUp(x, y)
		return
	}
	if !l.enabled || l.cols.readOnly {
		return
	}
	hit := l.HitTest(x, y)
	if hit.Area != HitCell {
		return
	}
	if l.combo.enabled {
		if l.combo.dropped {
			l.highlight = hit.Row
			l.CloseDropDown(true)
		}
		return
	}
	if hit.Row == downRow && hit.Column == downCol {
		if h := l.Events.RowClicked; h != nil {
			h(hit.Row, hit.Column)
		}
	}
	c := l.cols.At(hit.Column)
	if c == nil || !c.AllowEdit() || hit.Row != downRow || hit.Column != downCol || l.mouse.noEdit {
		return
	}
	switch {
	case c.render == RenderComboBox:
		l.armPendingEdit(hit.Row, hit.Column)
	case !second:
	case c.render == RenderCheckBox:
		if !hit.Row.Value(hit.Column).IsNull() {
			_ = l.ToggleCheck(hit.Row, hit.Column)
		}
	default:
		l.armPendingEdit(hit.Row, hit.Column)
	}
}

// MouseMove handles pointer motion. Dragging with the left button held
// moves the selection; in an open drop-down the highlight follows the
// pointer.
func (l *DataList) MouseMove(x, y int) {
	defer l.enter()()
	l.mouse.x, l.mouse.y, l.mouse.inside = x, y, true
	if l.header.active {
		l.headerMouseMove(x)
		l.tooltip.hide()
		return
	}
	if l.mouse.thumb != HitNone {
		l.scrollbarDrag(x, y)
		return
	}
	hit := l.HitTest(x, y)
	if hit.Area != HitCell {
		l.tooltip.hide()
		return
	}
	if !l.cols.readOnly {
		switch {
		case l.combo.dropped:
			l.highlight = hit.Row
		case l.mouse.captured && hit.Row != l.sel:
			l.Select(hit.Row)
		}
	}
	l.hoverCell(hit)
}

// MouseLeave hides the tooltip.
func (l *DataList) MouseLeave() {
	l.mouse.inside = false
	l.tooltip.hide()
}

// MouseWheel scrolls by delta notches; positive scrolls up. Ignored while
// editing.
func (l *DataList) MouseWheel(delta float32) {
	defer l.enter()()
	if l.edit != nil || !l.enabled || !l.view.VScroll.Visible {
		return
	}
	l.cancelPending()
	l.tooltip.hide()
	step := int(-delta * float32(l.view.VScroll.SmallChange*l.wheelLines))
	if !l.view.ScrollBy(step) {
		return
	}
	if l.mouse.captured || (l.combo.dropped && !l.cols.readOnly) {
		if hit := l.HitTest(l.mouse.x, l.mouse.y); hit.Area == HitCell {
			if l.combo.dropped {
				l.highlight = hit.Row
			} else {
				l.Select(hit.Row)
			}
		}
	}
}

// DoubleClick cancels a pending edit and raises RowDoubleClicked for the
// row under x, y. MouseDown calls it for paired presses; hosts with native
// double-click events may call it directly.
func (l *DataList) DoubleClick(x, y int) {
	defer l.enter()()
	l.cancelPending()
	l.mouse.noEdit = true
	if l.cols.readOnly || !l.enabled {
		return
	}
	hit := l.HitTest(x, y)
	if hit.Area != HitCell || hit.Column < 0 {
		return
	}
	if !l.combo.enabled && hit.Row != l.sel {
		l.Select(hit.Row)
	}
	if h := l.Events.RowDoubleClicked; h != nil {
		h(hit.Row, hit.Column)
	}
}

// KeyDown runs the action bound to the chord. Backspace edits the open
// edit text. Returns whether the key was used.
func (l *DataList) KeyDown(k Key, mods Modifiers) bool {
	defer l.enter()()
	if !l.enabled {
		return false
	}
	l.cancelPending()
	l.tooltip.hide()
	if l.edit != nil && k == KeyBackspace {
		l.backspace()
		return true
	}
	a, ok := l.keys.Lookup(KeyChord{Key: k, Mods: mods})
	if !ok {
		return l.edit != nil
	}
	return l.Perform(a) || l.edit != nil
}

// HandleInput turns one frame of polled input into discrete events.
// Mouse coordinates are in list coordinates.
func (l *DataList) HandleInput(in *InputState) {
	defer l.enter()()
	x, y := int(in.MouseX), int(in.MouseY)
	if x != l.mouse.x || y != l.mouse.y {
		l.MouseMove(x, y)
	}
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if in.MouseClicked(b) {
			l.MouseDown(x, y, b)
		}
		if in.MouseReleased(b) {
			l.MouseUp(x, y, b)
		}
	}
	if in.MouseWheelY != 0 {
		l.MouseWheel(in.MouseWheelY)
	}
	if in.MouseWheelX != 0 {
		l.view.HScrollTo(l.view.HScroll.Value - int(in.MouseWheelX*float32(l.view.HScroll.SmallChange*l.wheelLines)))
	}

	mods := in.Mods()
	for k := Key(1); k < KeyCount; k++ {
		if in.KeyRepeated(k) {
			l.KeyDown(k, mods)
		}
	}
	if in.ModCtrl || in.ModAlt {
		return
	}
	for _, ch := range in.InputChars {
		l.InputRune(ch)
	}
}

// Scrollbars

func (l *DataList) scrollbarDown(which HitArea, x, y int) {
	l.settleEdit()
	area := l.RowArea()
	bar, track, pos := &l.view.VScroll, area.H, y-area.Y
	if which == HitHScroll {
		bar, track, pos = &l.view.HScroll, area.W, x-area.X
	}
	off, length := bar.Thumb(track)
	switch {
	case pos < off:
		l.scrollAxis(which, bar.Value-bar.Page)
	case pos >= off+length:
		l.scrollAxis(which, bar.Value+bar.Page)
	default:
		l.mouse.thumb = which
		l.mouse.thumbGrab = pos - off
	}
}

func (l *DataList) scrollbarDrag(x, y int) {
	area := l.RowArea()
	bar, track, pos := &l.view.VScroll, area.H, y-area.Y
	if l.mouse.thumb == HitHScroll {
		bar, track, pos = &l.view.HScroll, area.W, x-area.X
	}
	_, length := bar.Thumb(track)
	if span := track - length; span > 0 {
		l.scrollAxis(l.mouse.thumb, (pos-l.mouse.thumbGrab)*bar.Limit()/span)
	}
}

func (l *DataList) scrollAxis(which HitArea, v int) {
	if which == HitHScroll {
		l.view.HScrollTo(v)
		return
	}
	l.view.ScrollTo(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
