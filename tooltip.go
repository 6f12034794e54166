package datalist

// tooltipState tracks the cell under a resting mouse.
type tooltipState struct {
	row     *Row
	col     int
	text    string
	x, y    int
	elapsed float32
	armed   bool
	visible bool
}

func (t *tooltipState) hide() {
	*t = tooltipState{}
}

// Tooltip returns the tooltip text and anchor when one is showing.
func (l *DataList) Tooltip() (text string, x, y int, ok bool) {
	t := &l.tooltip
	return t.text, t.x, t.y, t.visible
}

// hoverCell re-arms the tooltip when the mouse reaches a new cell. Only
// text that does not fit its cell gets a tooltip.
func (l *DataList) hoverCell(hit Hit) {
	t := &l.tooltip
	if t.row == hit.Row && t.col == hit.Column && (t.armed || t.visible) {
		return
	}
	t.hide()
	c := l.cols.At(hit.Column)
	if c == nil || l.edit != nil {
		return
	}
	switch c.render {
	case RenderText, RenderTextWrap, RenderComboBox:
	default:
		return
	}
	text := l.Text(hit.Row, hit.Column)
	if text == "" || l.textFits(c, text, hit.Cell) {
		return
	}
	t.row, t.col, t.text = hit.Row, hit.Column, text
	t.x, t.y = l.mouse.x, l.mouse.y
	t.armed = true
}

// textFits reports whether a cell shows all of text.
func (l *DataList) textFits(c *Column, text string, cell Rect) bool {
	inner := c.width - 2*l.style.CellPadding
	if c.IsVariableHeight() {
		return WrappedHeight(l.measure, text, inner)+2*l.style.CellPadding <= cell.H
	}
	return Fits(l.measure, text, inner)
}

func (l *DataList) updateTooltip(dt float32) {
	t := &l.tooltip
	if !t.armed {
		return
	}
	if !l.rows.Contains(t.row) {
		t.hide()
		return
	}
	t.elapsed += dt
	if t.elapsed >= l.tooltipDelay {
		t.armed = false
		t.visible = true
	}
}
