package datalist

import (
	"iter"
	"log/slog"
)

// ColumnSet is the ordered column collection of a list.
type ColumnSet struct {
	cols   []*Column
	nextID ColumnID

	allowSort bool
	allowEdit bool
	readOnly  bool

	log *slog.Logger
}

func newColumnSet(log *slog.Logger) *ColumnSet {
	return &ColumnSet{allowSort: true, allowEdit: true, log: log}
}

// Len returns the number of columns, hidden ones included.
func (s *ColumnSet) Len() int { return len(s.cols) }

// At returns the column at index i, or nil when i is out of range.
func (s *ColumnSet) At(i int) *Column {
	if i < 0 || i >= len(s.cols) {
		return nil
	}
	return s.cols[i]
}

// ByID returns the column with the given handle, or nil.
func (s *ColumnSet) ByID(id ColumnID) *Column {
	for _, c := range s.cols {
		if c.id == id {
			return c
		}
	}
	return nil
}

// All iterates the columns in display order.
func (s *ColumnSet) All() iter.Seq2[int, *Column] {
	return func(yield func(int, *Column) bool) {
		for i, c := range s.cols {
			if !yield(i, c) {
				return
			}
		}
	}
}

func (s *ColumnSet) add(c *Column) {
	s.nextID++
	c.id = s.nextID
	c.index = len(s.cols)
	c.set = s
	preset := c.priority
	c.priority = -1
	s.cols = append(s.cols, c)
	if preset >= 0 {
		s.SetPriority(c, preset)
	}
}

func (s *ColumnSet) remove(i int) *Column {
	c := s.cols[i]
	s.SetPriority(c, -1)
	s.cols = append(s.cols[:i], s.cols[i+1:]...)
	for j := i; j < len(s.cols); j++ {
		s.cols[j].index = j
	}
	c.set = nil
	c.index = -1
	return c
}

// MaxPriority returns the highest active sort priority, or -1 when no
// column is ranked.
func (s *ColumnSet) MaxPriority() int {
	m := -1
	for _, c := range s.cols {
		m = max(m, c.priority)
	}
	return m
}

// SetPriority changes one column's sort rank and renumbers the others so
// the active ranks stay exactly 0..k-1. A negative priority unranks the
// column. Requests past the end are clamped to the next free rank for an
// unranked column, or to the last rank for a ranked one. Columns that
// cannot sort are never ranked. Returns whether anything changed.
func (s *ColumnSet) SetPriority(c *Column, priority int) bool {
	if priority < 0 || !c.valueType.Sortable() {
		priority = -1
	}
	old := c.priority
	if priority >= 0 {
		if m := s.MaxPriority(); priority > m {
			if old < 0 {
				priority = m + 1
			} else {
				priority = m
			}
		}
	}
	if old == priority {
		return false
	}

	for _, d := range s.cols {
		if d == c || d.priority < 0 {
			continue
		}
		switch {
		case old < 0:
			if d.priority >= priority {
				d.priority++
			}
		case priority < 0:
			if d.priority > old {
				d.priority--
			}
		case priority > old:
			if d.priority > old && d.priority <= priority {
				d.priority--
			}
		default:
			if d.priority >= priority && d.priority < old {
				d.priority++
			}
		}
	}
	c.priority = priority

	if s.log != nil && listVerbose() {
		s.log.Debug("sort priority", "column", c.name, "from", old, "to", priority)
	}
	return true
}

// Width returns the summed width of the visible columns.
func (s *ColumnSet) Width() int {
	w := 0
	for _, c := range s.cols {
		w += c.Width()
	}
	return w
}

// XPos returns the left edge of column i given the horizontal offset.
func (s *ColumnSet) XPos(i, xOffset int) int {
	x := xOffset
	for j := 0; j < i && j < len(s.cols); j++ {
		x += s.cols[j].Width()
	}
	return x
}

// Find returns the visible column under x, or nil.
func (s *ColumnSet) Find(x, xOffset int) *Column {
	cx := xOffset
	for _, c := range s.cols {
		w := c.Width()
		if w <= 0 {
			continue
		}
		if x >= cx && x < cx+w {
			return c
		}
		cx += w
	}
	return nil
}

func (s *ColumnSet) prevVisible(c *Column) *Column {
	for i := c.index - 1; i >= 0; i-- {
		if s.cols[i].visible {
			return s.cols[i]
		}
	}
	return nil
}

func (s *ColumnSet) lastVisible() *Column {
	for i := len(s.cols) - 1; i >= 0; i-- {
		if s.cols[i].visible {
			return s.cols[i]
		}
	}
	return nil
}

func (s *ColumnSet) hasVariableHeight() bool {
	for _, c := range s.cols {
		if c.IsVariableHeight() && c.visible {
			return true
		}
	}
	return false
}
