package datalist

import (
	"strconv"
	"strings"
)

// RowID is a stable row handle, unique within the list that created the row.
type RowID uint32

// Row is an ordered set of cell values, index-aligned with the list's
// columns. Rows are created detached by DataList.NewRow and live in at most
// one RowList at a time.
type Row struct {
	id     RowID
	cells  []Value
	height int

	// Tag is free for the application.
	Tag any

	// owner is the list that created the row; no other list accepts it.
	owner *DataList

	// Attachment. A row is attached when list.owns(row) holds; clearing the
	// list bumps its epoch, detaching every row at once.
	list  *RowList
	node  int32
	epoch uint32
}

func newRow(id RowID, cols, height int) *Row {
	return &Row{id: id, cells: make([]Value, cols), height: height, node: nilNode}
}

// ID returns the row's handle.
func (r *Row) ID() RowID { return r.id }

// Len returns the number of cells.
func (r *Row) Len() int { return len(r.cells) }

// Height returns the row height last computed by the list.
func (r *Row) Height() int { return r.height }

// Value returns the stored value of cell i, or null when i is out of range.
// Proxy color cells store nothing; read them through DataList.Value.
func (r *Row) Value(i int) Value {
	if i < 0 || i >= len(r.cells) {
		return Null()
	}
	return r.cells[i]
}

// Attached reports whether the row currently belongs to a list.
func (r *Row) Attached() bool {
	return r.list != nil && r.list.owns(r)
}

func (r *Row) insertCell(i int) {
	r.cells = append(r.cells, Value{})
	copy(r.cells[i+1:], r.cells[i:])
	r.cells[i] = Value{}
}

func (r *Row) removeCell(i int) {
	r.cells = append(r.cells[:i], r.cells[i+1:]...)
}

// FormatRow renders the row with a format where {N} stands for the text of
// cell N. An empty format joins all cell texts with ", ".
func (l *DataList) FormatRow(r *Row, format string) string {
	if strings.TrimSpace(format) == "" {
		texts := make([]string, r.Len())
		for i := range texts {
			texts[i] = l.Text(r, i)
		}
		return strings.Join(texts, ", ")
	}

	var b strings.Builder
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '{' {
			b.WriteByte(ch)
			continue
		}
		end := strings.IndexByte(format[i:], '}')
		if end < 0 {
			b.WriteString(format[i:])
			break
		}
		n, err := strconv.Atoi(format[i+1 : i+end])
		if err != nil || n < 0 {
			b.WriteString(format[i : i+end+1])
		} else {
			b.WriteString(l.Text(r, n))
		}
		i += end
	}
	return b.String()
}
