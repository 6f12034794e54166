package datalist

// Selection returns the selected row, or nil.
func (l *DataList) Selection() *Row { return l.sel }

// HighlightRow returns the hover highlight of an open drop-down, or nil.
func (l *DataList) HighlightRow() *Row { return l.highlight }

// IsHighlighted reports whether r paints with the selected colors: it is
// the highlight, or it is the selection and nothing is highlighted.
func (l *DataList) IsHighlighted(r *Row) bool {
	if r == nil {
		return false
	}
	return l.highlight == r || (l.highlight == nil && l.sel == r)
}

// Select makes r the selection and clears the highlight. An open edit is
// committed first. A nil row clears the selection; a detached row is
// ignored.
func (l *DataList) Select(r *Row) {
	defer l.enter()()
	if r != nil && !l.rows.Contains(r) {
		return
	}
	l.settleEdit()
	changed := l.sel != r
	l.sel = r
	l.highlight = nil
	if changed && l.Events.SelectionChanged != nil {
		l.Events.SelectionChanged(r)
	}
}

// SetHighlight moves the drop-down highlight.
func (l *DataList) SetHighlight(r *Row) {
	if r != nil && !l.rows.Contains(r) {
		return
	}
	l.highlight = r
}

// moveSelection steps the selection (or the drop-down highlight) by one row
// and scrolls it into view, aligned to the top when moving up.
func (l *DataList) moveSelection(dir int) {
	cur := l.sel
	if l.combo.dropped && l.highlight != nil {
		cur = l.highlight
	}
	var next *Row
	switch {
	case cur == nil:
		next = l.rows.First()
	case dir < 0:
		next = l.rows.Prev(cur)
	default:
		next = l.rows.Next(cur)
	}
	if next == nil {
		return
	}
	if l.combo.dropped {
		l.highlight = next
	} else {
		l.Select(next)
	}
	l.view.EnsureVisible(next, true, dir < 0)
}

func (l *DataList) selectEdge(last bool) {
	r := l.rows.First()
	if last {
		r = l.rows.Last()
	}
	if r == nil {
		return
	}
	if l.combo.dropped {
		l.highlight = r
	} else {
		l.Select(r)
	}
	l.view.EnsureVisible(r, true, !last)
}

// Combo mode

type comboState struct {
	enabled bool
	dropped bool
	format  string
	text    string
}

// ComboMode reports whether the list runs as a drop-down.
func (l *DataList) ComboMode() bool { return l.combo.enabled }

// SetComboMode switches drop-down mode on or off.
func (l *DataList) SetComboMode(on bool) {
	if l.combo.enabled == on {
		return
	}
	l.cancelEdit()
	l.combo.enabled = on
	l.combo.dropped = false
	l.highlight = nil
	l.invalidate("combo mode")
	l.relayout()
}

// DroppedDown reports whether the drop-down list is open.
func (l *DataList) DroppedDown() bool { return l.combo.dropped }

// DropDown opens the list. DroppingDown may cancel it. Returns whether the
// list is open afterwards.
func (l *DataList) DropDown() bool {
	defer l.enter()()
	if !l.combo.enabled || l.combo.dropped {
		return l.combo.dropped
	}
	if h := l.Events.DroppingDown; h != nil {
		cancel := false
		h(&cancel)
		if cancel {
			return false
		}
	}
	l.combo.dropped = true
	l.highlight = l.sel
	if l.sel != nil {
		l.view.EnsureVisible(l.sel, true, false)
	}
	if h := l.Events.DroppedDown; h != nil {
		h()
	}
	return true
}

// CloseDropDown closes the list, selecting the highlight when commit is
// set.
func (l *DataList) CloseDropDown(commit bool) {
	if !l.combo.dropped {
		return
	}
	hl := l.highlight
	l.combo.dropped = false
	l.highlight = nil
	l.tooltip.hide()
	if commit && hl != nil {
		l.Select(hl)
	}
}

// ComboFormat returns the format used by ComboText.
func (l *DataList) ComboFormat() string { return l.combo.format }

// SetComboFormat sets the format used by ComboText.
func (l *DataList) SetComboFormat(f string) { l.combo.format = f }

// SetComboText sets the text shown while nothing is selected.
func (l *DataList) SetComboText(s string) { l.combo.text = s }

// ComboText is the closed drop-down's text: the selected row formatted with
// ComboFormat, or the free text when nothing is selected.
func (l *DataList) ComboText() string {
	if l.sel == nil {
		return l.combo.text
	}
	return l.FormatRow(l.sel, l.combo.format)
}
