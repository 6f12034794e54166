package datalist

import "maps"

// ColorSlot selects one of the four independent override tables kept by
// every color scope.
type ColorSlot int

const (
	BackColor ColorSlot = iota
	ForeColor
	SelBackColor
	SelForeColor
	colorSlotCount
)

// CellKey identifies one cell by its row and column handles. Handles are
// stable across sorting and column index shifts.
type CellKey struct {
	Row    RowID
	Column ColumnID
}

// ColorMap holds explicit color overrides for one scope, keyed by K.
// A key is present only while a non-empty color is set for it; setting
// ColorNone removes the entry. The zero value is ready to use.
type ColorMap[K comparable] struct {
	slots [colorSlotCount]map[K]Color
}

// Set stores c for key in slot, or removes the entry when c is ColorNone.
func (m *ColorMap[K]) Set(slot ColorSlot, key K, c Color) {
	if c.IsNone() {
		m.Remove(slot, key)
		return
	}
	if m.slots[slot] == nil {
		m.slots[slot] = make(map[K]Color)
	}
	m.slots[slot][key] = c
}

// Get returns the override for key in slot.
func (m *ColorMap[K]) Get(slot ColorSlot, key K) (Color, bool) {
	c, ok := m.slots[slot][key]
	return c, ok
}

// Remove deletes the override for key in slot.
func (m *ColorMap[K]) Remove(slot ColorSlot, key K) {
	delete(m.slots[slot], key)
}

// RemoveKey deletes every override for key.
func (m *ColorMap[K]) RemoveKey(key K) {
	for i := range m.slots {
		delete(m.slots[i], key)
	}
}

// RemoveFunc deletes every override whose key satisfies del.
func (m *ColorMap[K]) RemoveFunc(del func(K) bool) {
	for i := range m.slots {
		maps.DeleteFunc(m.slots[i], func(k K, _ Color) bool { return del(k) })
	}
}

// Has reports whether key has an override in any slot.
func (m *ColorMap[K]) Has(key K) bool {
	for i := range m.slots {
		if _, ok := m.slots[i][key]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of entries across all slots.
func (m *ColorMap[K]) Len() int {
	n := 0
	for i := range m.slots {
		n += len(m.slots[i])
	}
	return n
}

// Clear removes every override.
func (m *ColorMap[K]) Clear() {
	for i := range m.slots {
		m.slots[i] = nil
	}
}

// ColorOverrides groups the three override scopes of a list.
type ColorOverrides struct {
	Cells   ColorMap[CellKey]
	Columns ColorMap[ColumnID]
	Rows    ColorMap[RowID]
}

// Resolve walks cell, column then row overrides for slot and returns the
// first hit, or fallback when no scope has one.
func (o *ColorOverrides) Resolve(slot ColorSlot, cell CellKey, fallback Color) Color {
	if c, ok := o.Cells.Get(slot, cell); ok {
		return c
	}
	if c, ok := o.Columns.Get(slot, cell.Column); ok {
		return c
	}
	if c, ok := o.Rows.Get(slot, cell.Row); ok {
		return c
	}
	return fallback
}

// References reports whether any scope still holds an entry for the row.
func (o *ColorOverrides) References(row RowID) bool {
	if o.Rows.Has(row) {
		return true
	}
	found := false
	for i := range o.Cells.slots {
		for k := range o.Cells.slots[i] {
			if k.Row == row {
				found = true
				break
			}
		}
	}
	return found
}

func (o *ColorOverrides) purgeRow(row RowID) {
	o.Rows.RemoveKey(row)
	o.Cells.RemoveFunc(func(k CellKey) bool { return k.Row == row })
}

func (o *ColorOverrides) purgeColumn(col ColumnID) {
	o.Columns.RemoveKey(col)
	o.Cells.RemoveFunc(func(k CellKey) bool { return k.Column == col })
}

func (o *ColorOverrides) purgeRows() {
	o.Rows.Clear()
	o.Cells.Clear()
}

// CellState carries the row and list state that picks the fallback chain.
type CellState struct {
	Highlighted bool // selected, or hovered in combo mode
	Focused     bool // list has input focus or capture
	Disabled    bool // list is disabled or read-only
}

// ResolveCell returns the back and fore colors for one cell.
//
// Highlighted rows consult the selected slots and fall back to the active
// selection pair when focused, the inactive pair otherwise. Other rows
// consult the normal slots and fall back to the list's own colors. A
// disabled list always uses the normal slots with the control pair.
func (o *ColorOverrides) ResolveCell(cell CellKey, st CellState, style *Style) (back, fore Color) {
	switch {
	case st.Disabled:
		back = o.Resolve(BackColor, cell, style.ControlBack)
		fore = o.Resolve(ForeColor, cell, style.ControlText)
	case st.Highlighted && st.Focused:
		back = o.Resolve(SelBackColor, cell, style.Highlight)
		fore = o.Resolve(SelForeColor, cell, style.HighlightText)
	case st.Highlighted:
		back = o.Resolve(SelBackColor, cell, style.InactiveHighlight)
		fore = o.Resolve(SelForeColor, cell, style.InactiveHighlightText)
	default:
		back = o.Resolve(BackColor, cell, style.Back)
		fore = o.Resolve(ForeColor, cell, style.Text)
	}
	return back, fore
}
