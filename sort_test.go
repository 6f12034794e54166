package datalist_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/go-theft-auto/datalist"
)

func TestSortMultiKey(t *testing.T) {
	l := datalist.New(testOptions()...)
	mustColumn(t, l, "A", datalist.TypeInt, datalist.SortPriority(0, true))
	mustColumn(t, l, "B", datalist.TypeString, datalist.SortPriority(1, true))
	mustColumn(t, l, "C", datalist.TypeObject)

	as := []int32{3, 1, 3, 2, 1}
	bs := []string{"x", "b", "a", "y", "c"}
	for i := range as {
		addRow(t, l, datalist.Int(as[i]), datalist.String(bs[i]), datalist.Object(struct{}{}))
	}
	if err := l.Sort(); err != nil {
		t.Fatal(err)
	}

	var gotA []int64
	var gotB []string
	for r := range l.Rows().All() {
		gotA = append(gotA, l.Value(r, 0).AsInt())
		gotB = append(gotB, l.Value(r, 1).AsString())
	}
	if !slices.Equal(gotA, []int64{1, 1, 2, 3, 3}) {
		t.Errorf("expected A 1,1,2,3,3, got %v", gotA)
	}
	if !slices.Equal(gotB, []string{"b", "c", "y", "a", "x"}) {
		t.Errorf("expected B b,c,y,a,x, got %v", gotB)
	}
}

func mustColumn(t *testing.T, l *datalist.DataList, name string, typ datalist.ValueType, opts ...datalist.ColumnOption) *datalist.Column {
	t.Helper()
	c, err := l.AddColumn(name, typ, 20, datalist.RenderText, true, opts...)
	if err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	return c
}

func TestSortNullsAndDirection(t *testing.T) {
	l := datalist.New(testOptions()...)
	c := mustColumn(t, l, "N", datalist.TypeDouble, datalist.SortPriority(0, true))
	for _, v := range []datalist.Value{datalist.Double(2.5), datalist.Null(), datalist.Double(-1), datalist.Double(7)} {
		addRow(t, l, v)
	}

	texts := func() []string {
		var out []string
		for r := range l.Rows().All() {
			out = append(out, l.Text(r, 0))
		}
		return out
	}

	if err := l.Sort(); err != nil {
		t.Fatal(err)
	}
	if got := texts(); !slices.Equal(got, []string{"", "-1", "2.5", "7"}) {
		t.Errorf("ascending: expected null first, got %q", got)
	}

	c.SetAscending(false)
	if err := l.Sort(); err != nil {
		t.Fatal(err)
	}
	if got := texts(); !slices.Equal(got, []string{"7", "2.5", "-1", ""}) {
		t.Errorf("descending: expected null last, got %q", got)
	}
}

func TestSortStable(t *testing.T) {
	l := datalist.New(testOptions()...)
	mustColumn(t, l, "Key", datalist.TypeBool, datalist.SortPriority(0, true))
	mustColumn(t, l, "Seq", datalist.TypeInt)
	for i := range 20 {
		addRow(t, l, datalist.Bool(i%3 == 0), datalist.Int(int32(i)))
	}
	if err := l.Sort(); err != nil {
		t.Fatal(err)
	}

	prevKey, prevSeq := false, int64(-1)
	for r := range l.Rows().All() {
		key, seq := l.Value(r, 0).AsBool(), l.Value(r, 1).AsInt()
		if key != prevKey {
			if key && !prevKey {
				prevSeq = -1
			} else {
				t.Fatalf("false must sort before true")
			}
		}
		if seq <= prevSeq {
			t.Fatalf("equal keys lost their order: %d after %d", seq, prevSeq)
		}
		prevKey, prevSeq = key, seq
	}
}

func TestSortWithoutKeysIsNoop(t *testing.T) {
	l := newTestList(t, 5)
	first := l.Rows().First()
	if err := l.SetValue(first, 1, datalist.Int(99)); err != nil {
		t.Fatal(err)
	}
	if err := l.Sort(); err != nil {
		t.Fatal(err)
	}
	if l.Rows().First() != first {
		t.Error("sort without ranked columns must not reorder")
	}
}

func TestSortDateTime(t *testing.T) {
	l := datalist.New(testOptions()...)
	mustColumn(t, l, "When", datalist.TypeDateTime, datalist.SortPriority(0, true))
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, d := range []int{5, -2, 0} {
		addRow(t, l, datalist.DateTime(base.AddDate(0, 0, d)))
	}
	if err := l.Sort(); err != nil {
		t.Fatal(err)
	}
	if got := l.Value(l.Rows().First(), 0).AsTime(); !got.Equal(base.AddDate(0, 0, -2)) {
		t.Errorf("expected earliest first, got %v", got)
	}
}

func TestSortPriorityRules(t *testing.T) {
	l := datalist.New(testOptions()...)
	a := mustColumn(t, l, "A", datalist.TypeInt)
	b := mustColumn(t, l, "B", datalist.TypeInt)
	c := mustColumn(t, l, "C", datalist.TypeInt)
	obj := mustColumn(t, l, "Obj", datalist.TypeObject)

	prio := func() []int { return []int{a.Priority(), b.Priority(), c.Priority()} }

	must := func(i, p int) {
		t.Helper()
		if err := l.SetSortPriority(i, p); err != nil {
			t.Fatal(err)
		}
	}

	must(0, 5) // clamps to the next free rank
	must(1, 0) // inserts in front
	must(2, 9)
	if got := prio(); !slices.Equal(got, []int{1, 0, 2}) {
		t.Fatalf("expected 1,0,2, got %v", got)
	}
	must(1, 7) // ranked column clamps to the last rank
	if got := prio(); !slices.Equal(got, []int{0, 2, 1}) {
		t.Fatalf("expected 0,2,1, got %v", got)
	}
	must(2, 0)
	if got := prio(); !slices.Equal(got, []int{1, 2, 0}) {
		t.Fatalf("expected 1,2,0, got %v", got)
	}
	must(0, -1)
	if got := prio(); !slices.Equal(got, []int{-1, 1, 0}) {
		t.Fatalf("expected -1,1,0, got %v", got)
	}

	if err := l.SetSortPriority(3, 0); !errors.Is(err, datalist.ErrUnsortable) {
		t.Errorf("expected ErrUnsortable for an object column, got %v", err)
	}
	if obj.Priority() != -1 || obj.AllowSort() {
		t.Error("object columns never rank")
	}
	if err := l.SetSortPriority(9, 0); !errors.Is(err, datalist.ErrColumnRange) {
		t.Errorf("expected ErrColumnRange, got %v", err)
	}
}

func TestSortPriorityContiguity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	l := datalist.New(testOptions()...)
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		mustColumn(t, l, name, datalist.TypeString)
	}

	for step := range 1000 {
		i := rng.IntN(l.Columns().Len())
		p := rng.IntN(9) - 2
		if err := l.SetSortPriority(i, p); err != nil {
			t.Fatal(err)
		}

		var ranks []int
		for _, c := range l.Columns().All() {
			if c.Priority() >= 0 {
				ranks = append(ranks, c.Priority())
			}
		}
		slices.Sort(ranks)
		for k, r := range ranks {
			if r != k {
				t.Fatalf("step %d: ranks %v are not 0..%d", step, ranks, len(ranks)-1)
			}
		}
		if m := l.Columns().MaxPriority(); m != len(ranks)-1 {
			t.Fatalf("step %d: expected max priority %d, got %d", step, len(ranks)-1, m)
		}
	}
}

func TestSortAllowSortFlag(t *testing.T) {
	l := newTestList(t, 2, datalist.WithAllowSort(false))
	if l.Columns().At(0).AllowSort() {
		t.Error("list flag should disable sorting")
	}
	l.SetAllowSort(true)
	if !l.Columns().At(0).AllowSort() {
		t.Error("list flag should enable sorting")
	}
}

func TestSortCommitsOpenEdit(t *testing.T) {
	l := newTestList(t, 5)
	r := l.Rows().At(2)
	if err := l.StartEdit(r, 0); err != nil {
		t.Fatal(err)
	}
	l.SetEditText("aaa")
	if err := l.SetSortPriority(0, 0); err != nil {
		t.Fatal(err)
	}
	l.Columns().At(0).SetAscending(true)
	if err := l.Sort(); err != nil {
		t.Fatal(err)
	}
	if l.Editing() != nil {
		t.Error("sort should close the edit")
	}
	if l.Rows().First() != r || l.Text(r, 0) != "aaa" {
		t.Errorf("expected committed row first, got %q", names(l))
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b datalist.Value
		want int
		err  error
	}{
		{"null equal", datalist.Null(), datalist.Null(), 0, nil},
		{"null first", datalist.Null(), datalist.Int(-5), -1, nil},
		{"null last", datalist.String(""), datalist.Null(), 1, nil},
		{"ints", datalist.Int(2), datalist.Int(10), -1, nil},
		{"strings", datalist.String("b"), datalist.String("a"), 1, nil},
		{"bools", datalist.Bool(false), datalist.Bool(true), -1, nil},
		{"floats", datalist.Float(1.5), datalist.Float(1.5), 0, nil},
		{"mixed", datalist.Int(1), datalist.Long(1), 0, datalist.ErrTypeMismatch},
		{"colors", datalist.ColorValue(datalist.ColorRed), datalist.ColorValue(datalist.ColorBlue), 0, datalist.ErrUnsortable},
		{"objects", datalist.Object(1), datalist.Object(2), 0, datalist.ErrUnsortable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datalist.Compare(tt.a, tt.b)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
