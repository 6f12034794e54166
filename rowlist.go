package datalist

import (
	"iter"
	"slices"
)

const nilNode int32 = -1

// rowNode is a position in the list. Nodes live in an arena and link by
// index; sorting reassigns which row occupies a node.
type rowNode struct {
	prev, next int32
	row        *Row
}

// RowList is a doubly linked sequence of rows with a running count and
// total height. Append, insert-before, remove and clear are O(1).
//
// Misuse (attaching a row that is already attached, inserting before a row
// of another list, removing a foreign row) is a no-op that returns false.
type RowList struct {
	nodes []rowNode
	free  []int32
	head  int32
	tail  int32
	count int
	total int
	epoch uint32
}

// NewRowList returns an empty list.
func NewRowList() *RowList {
	return &RowList{head: nilNode, tail: nilNode, epoch: 1}
}

func (l *RowList) owns(r *Row) bool {
	return r != nil && r.list == l && r.epoch == l.epoch &&
		r.node >= 0 && int(r.node) < len(l.nodes) && l.nodes[r.node].row == r
}

// Contains reports whether r is attached to this list.
func (l *RowList) Contains(r *Row) bool { return l.owns(r) }

func (l *RowList) alloc(r *Row) int32 {
	var n int32
	if k := len(l.free); k > 0 {
		n = l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[n] = rowNode{prev: nilNode, next: nilNode, row: r}
	} else {
		n = int32(len(l.nodes))
		l.nodes = append(l.nodes, rowNode{prev: nilNode, next: nilNode, row: r})
	}
	r.list = l
	r.node = n
	r.epoch = l.epoch
	return n
}

// AddAtEnd appends r. It fails if r is attached to any list.
func (l *RowList) AddAtEnd(r *Row) bool {
	if r == nil || r.Attached() {
		return false
	}
	n := l.alloc(r)
	if l.tail == nilNode {
		l.head = n
	} else {
		l.nodes[l.tail].next = n
		l.nodes[n].prev = l.tail
	}
	l.tail = n
	l.count++
	l.total += r.height
	return true
}

// AddBefore links r in front of before. A nil before appends. It fails if r
// is attached to any list or before is not attached to this one.
func (l *RowList) AddBefore(r, before *Row) bool {
	if before == nil {
		return l.AddAtEnd(r)
	}
	if r == nil || r.Attached() || !l.owns(before) {
		return false
	}
	b := before.node
	n := l.alloc(r)
	p := l.nodes[b].prev
	l.nodes[n].prev = p
	l.nodes[n].next = b
	l.nodes[b].prev = n
	if p == nilNode {
		l.head = n
	} else {
		l.nodes[p].next = n
	}
	l.count++
	l.total += r.height
	return true
}

// Remove unlinks r, subtracting its last known height from the total.
func (l *RowList) Remove(r *Row) bool {
	if !l.owns(r) {
		return false
	}
	n := r.node
	p, nx := l.nodes[n].prev, l.nodes[n].next
	if p == nilNode {
		l.head = nx
	} else {
		l.nodes[p].next = nx
	}
	if nx == nilNode {
		l.tail = p
	} else {
		l.nodes[nx].prev = p
	}
	l.nodes[n] = rowNode{prev: nilNode, next: nilNode}
	l.free = append(l.free, n)

	r.list = nil
	r.node = nilNode
	l.count--
	l.total -= r.height
	return true
}

// Clear empties the list in O(1). Rows that were attached become detached
// without being visited.
func (l *RowList) Clear() {
	l.nodes = nil
	l.free = nil
	l.head, l.tail = nilNode, nilNode
	l.count = 0
	l.total = 0
	l.epoch++
}

// Len returns the number of attached rows.
func (l *RowList) Len() int { return l.count }

// TotalHeight returns the running sum of attached row heights.
func (l *RowList) TotalHeight() int { return l.total }

// First returns the head row, or nil.
func (l *RowList) First() *Row {
	if l.head == nilNode {
		return nil
	}
	return l.nodes[l.head].row
}

// Last returns the tail row, or nil.
func (l *RowList) Last() *Row {
	if l.tail == nilNode {
		return nil
	}
	return l.nodes[l.tail].row
}

// Next returns the row after r, or nil at the end or when r is not attached.
func (l *RowList) Next(r *Row) *Row {
	if !l.owns(r) {
		return nil
	}
	if n := l.nodes[r.node].next; n != nilNode {
		return l.nodes[n].row
	}
	return nil
}

// Prev returns the row before r, or nil at the head or when r is not
// attached.
func (l *RowList) Prev(r *Row) *Row {
	if !l.owns(r) {
		return nil
	}
	if n := l.nodes[r.node].prev; n != nilNode {
		return l.nodes[n].row
	}
	return nil
}

// At walks to the row at position i. O(i); not for paint or scroll paths.
func (l *RowList) At(i int) *Row {
	if i < 0 || i >= l.count {
		return nil
	}
	n := l.head
	for ; i > 0; i-- {
		n = l.nodes[n].next
	}
	return l.nodes[n].row
}

// IndexOf returns the position of r, or -1. O(n).
func (l *RowList) IndexOf(r *Row) int {
	if !l.owns(r) {
		return -1
	}
	i := 0
	for n := l.head; n != nilNode; n = l.nodes[n].next {
		if n == r.node {
			return i
		}
		i++
	}
	return -1
}

// All iterates rows from head to tail.
func (l *RowList) All() iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for n := l.head; n != nilNode; n = l.nodes[n].next {
			if !yield(l.nodes[n].row) {
				return
			}
		}
	}
}

// Backward iterates rows from tail to head.
func (l *RowList) Backward() iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for n := l.tail; n != nilNode; n = l.nodes[n].prev {
			if !yield(l.nodes[n].row) {
				return
			}
		}
	}
}

// AdjustHeight shifts the running total by delta without a rescan.
func (l *RowList) AdjustHeight(delta int) { l.total += delta }

// setHeight stores a row's new height, keeping the total in step when the
// row is attached. Returns the change.
func (l *RowList) setHeight(r *Row, h int) int {
	delta := h - r.height
	if delta == 0 {
		return 0
	}
	r.height = h
	if l.owns(r) {
		l.total += delta
	}
	return delta
}

// RecalcHeights recomputes every row's height with measure and rebuilds the
// total from scratch. This is the only O(n) height path.
func (l *RowList) RecalcHeights(measure func(*Row) int) int {
	total := 0
	for n := l.head; n != nilNode; n = l.nodes[n].next {
		r := l.nodes[n].row
		r.height = measure(r)
		total += r.height
	}
	l.total = total
	return total
}

// Sort orders the rows with a stable sort and writes the result back into
// the existing nodes, so node positions keep their identity while the rows
// occupying them change. If cmp fails the order is left untouched.
func (l *RowList) Sort(cmp func(a, b *Row) (int, error)) error {
	if l.count < 2 {
		return nil
	}
	buf := make([]*Row, 0, l.count)
	for r := range l.All() {
		buf = append(buf, r)
	}

	var sortErr error
	slices.SortStableFunc(buf, func(a, b *Row) int {
		if sortErr != nil {
			return 0
		}
		c, err := cmp(a, b)
		if err != nil {
			sortErr = err
			return 0
		}
		return c
	})
	if sortErr != nil {
		return sortErr
	}

	i := 0
	for n := l.head; n != nilNode; n = l.nodes[n].next {
		r := buf[i]
		l.nodes[n].row = r
		r.node = n
		i++
	}
	return nil
}
