package datalist

import (
	"errors"
	"log/slog"
	"testing"
)

var discardLog = slog.New(slog.DiscardHandler)

func TestSortKeysCollision(t *testing.T) {
	l := New(WithLogger(discardLog))
	a, _ := l.AddColumn("a", TypeInt, 10, RenderText, false)
	b, _ := l.AddColumn("b", TypeInt, 10, RenderText, false)
	a.priority, b.priority = 0, 0

	if _, err := sortKeys(l.cols); !errors.Is(err, ErrPriorityCollision) {
		t.Fatalf("expected ErrPriorityCollision, got %v", err)
	}
	if err := l.Sort(); !errors.Is(err, ErrPriorityCollision) {
		t.Errorf("expected Sort to surface the collision, got %v", err)
	}
}

func TestSortKeysSkipUnsortable(t *testing.T) {
	l := New()
	c, _ := l.AddColumn("c", TypeColor, 10, RenderText, false)
	n, _ := l.AddColumn("n", TypeInt, 10, RenderText, false)
	c.priority = 0
	n.priority = 1

	keys, err := sortKeys(l.cols)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 1 || keys[0].column != 1 {
		t.Errorf("expected only column 1 as a key, got %+v", keys)
	}
}

func TestCompareRowsRejectsUnsortableKey(t *testing.T) {
	r := newRow(1, 1, 10)
	keys := []sortKey{{column: 0, ascending: true, valueType: TypeObject}}
	if _, err := compareRows(keys, r, r); !errors.Is(err, ErrUnsortable) {
		t.Errorf("expected ErrUnsortable, got %v", err)
	}
}

func TestSortMismatchKeepsOrder(t *testing.T) {
	l := New(WithLogger(discardLog))
	if _, err := l.AddColumn("n", TypeInt, 10, RenderText, false, SortPriority(0, true)); err != nil {
		t.Fatal(err)
	}
	var rows []*Row
	for _, v := range []int32{3, 2, 1} {
		r := l.NewRow()
		r.cells[0] = Int(v)
		l.AddRow(r)
		rows = append(rows, r)
	}
	// Bypass SetValue to plant a value of the wrong type.
	rows[1].cells[0] = String("2")

	if err := l.Sort(); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	i := 0
	for r := range l.rows.All() {
		if r != rows[i] {
			t.Fatalf("row %d moved after a failed sort", i)
		}
		i++
	}
}
