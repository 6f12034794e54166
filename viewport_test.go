package datalist_test

import (
	"math/rand/v2"
	"testing"

	"github.com/go-theft-auto/datalist"
)

// rowsWithHeights returns an attached row list whose rows have the given
// heights.
func rowsWithHeights(heights []int) (*datalist.RowList, []*datalist.Row) {
	rows := detachedRows(len(heights))
	rl := datalist.NewRowList()
	byID := make(map[datalist.RowID]int, len(rows))
	for i, r := range rows {
		rl.AddAtEnd(r)
		byID[r.ID()] = heights[i]
	}
	rl.RecalcHeights(func(r *datalist.Row) int { return byID[r.ID()] })
	return rl, rows
}

func uniform(n, h int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = h
	}
	return out
}

// freshTop computes the cursor for value by walking from the head.
func freshTop(rl *datalist.RowList, clientH, value int) (*datalist.Row, int) {
	v := datalist.NewViewport(rl)
	v.Layout(100, clientH, 10, 50)
	v.VScroll.Value = value
	v.Invalidate()
	return v.Top()
}

func TestViewportScrollRoundTrip(t *testing.T) {
	rl, rows := rowsWithHeights(uniform(10, 20))
	v := datalist.NewViewport(rl)
	v.Layout(100, 60, 10, 50)

	if !v.VScroll.Visible || v.VScroll.Limit() != 140 {
		t.Fatalf("expected visible scrollbar with limit 140, got %v %d", v.VScroll.Visible, v.VScroll.Limit())
	}
	v.ScrollBy(40)
	if top, y := v.Top(); top != rows[2] || y != 0 {
		t.Fatalf("expected rows[2] at 0, got row %d at %d", rl.IndexOf(top), y)
	}
	v.ScrollBy(-40)
	if top, y := v.Top(); top != rows[0] || y != 0 {
		t.Fatalf("expected rows[0] at 0, got row %d at %d", rl.IndexOf(top), y)
	}
}

func TestViewportPartialOffset(t *testing.T) {
	rl, rows := rowsWithHeights(uniform(10, 20))
	v := datalist.NewViewport(rl)
	v.Layout(100, 60, 10, 50)

	v.ScrollTo(45)
	if top, y := v.Top(); top != rows[2] || y != -5 {
		t.Errorf("expected rows[2] at -5, got row %d at %d", rl.IndexOf(top), y)
	}
	var seen []int
	for r, y := range v.Visible() {
		seen = append(seen, rl.IndexOf(r), y)
	}
	want := []int{2, -5, 3, 15, 4, 35, 5, 55}
	if len(seen) != len(want) {
		t.Fatalf("expected visible %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected visible %v, got %v", want, seen)
		}
	}
	if r, y := v.RowAt(16); r != rows[3] || y != 15 {
		t.Errorf("expected rows[3] at 15 under y=16, got row %d at %d", rl.IndexOf(r), y)
	}
}

func TestViewportCursorMatchesFreshWalk(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	heights := make([]int, 300)
	for i := range heights {
		heights[i] = 1 + rng.IntN(50)
	}
	rl, _ := rowsWithHeights(heights)
	v := datalist.NewViewport(rl)
	v.Layout(100, 240, 10, 50)

	for i := range 500 {
		switch rng.IntN(3) {
		case 0:
			v.ScrollBy(rng.IntN(400) - 200)
		case 1:
			v.ScrollTo(rng.IntN(v.VScroll.Limit() + 100))
		default:
			v.ScrollBy(rng.IntN(11) - 5)
		}
		top, y := v.Top()
		wantTop, wantY := freshTop(rl, 240, v.VScroll.Value)
		if top != wantTop || y != wantY {
			t.Fatalf("step %d value %d: cursor row %d at %d, fresh walk row %d at %d",
				i, v.VScroll.Value, rl.IndexOf(top), y, rl.IndexOf(wantTop), wantY)
		}
		if y > 0 || (top != nil && y+top.Height() <= 0) {
			t.Fatalf("step %d: cursor offset %d outside its row", i, y)
		}
	}
}

func TestViewportClampAfterShrink(t *testing.T) {
	rl, rows := rowsWithHeights(uniform(20, 10))
	v := datalist.NewViewport(rl)
	v.Layout(100, 50, 10, 50)
	v.ScrollTo(v.VScroll.Limit())
	if v.VScroll.Value != 150 {
		t.Fatalf("expected value 150, got %d", v.VScroll.Value)
	}

	for _, r := range rows[10:] {
		rl.Remove(r)
	}
	v.Layout(100, 50, 10, 50)
	if v.VScroll.Value != 50 {
		t.Fatalf("expected value clamped to 50, got %d", v.VScroll.Value)
	}
	if top, y := v.Top(); top != rows[5] || y != 0 {
		t.Errorf("expected rows[5] at 0, got row %d at %d", rl.IndexOf(top), y)
	}
}

func TestViewportTopSurvivesRemoval(t *testing.T) {
	rl, rows := rowsWithHeights(uniform(20, 10))
	v := datalist.NewViewport(rl)
	v.Layout(100, 50, 10, 50)
	v.ScrollTo(30)
	rl.Remove(rows[3])
	// The cached top is gone; the next query rebuilds from the head.
	if top, y := v.Top(); top != rows[4] || y != 0 {
		t.Errorf("expected rows[4] at 0, got row %d at %d", rl.IndexOf(top), y)
	}
}

func TestViewportEnsureVisible(t *testing.T) {
	rl, rows := rowsWithHeights(uniform(50, 10))
	v := datalist.NewViewport(rl)
	v.Layout(100, 100, 10, 50)

	if v.EnsureVisible(rows[3], true, false) {
		t.Error("visible row should not scroll")
	}

	if !v.EnsureVisible(rows[20], true, false) {
		t.Fatal("expected a scroll")
	}
	if v.VScroll.Value != 110 {
		t.Errorf("expected bottom alignment at 110, got %d", v.VScroll.Value)
	}
	if y, _ := v.Offset(rows[20]); y != 90 {
		t.Errorf("expected rows[20] on the bottom edge, got offset %d", y)
	}
	if top, y := v.Top(); top != rows[11] || y != 0 {
		t.Errorf("expected rows[11] at 0, got row %d at %d", rl.IndexOf(top), y)
	}

	if !v.EnsureVisible(rows[5], true, false) || v.VScroll.Value != 50 {
		t.Errorf("row above lands on the top edge, got value %d", v.VScroll.Value)
	}
	if !v.EnsureVisible(rows[30], true, true) || v.VScroll.Value != 300 {
		t.Errorf("top placement should scroll to 300, got %d", v.VScroll.Value)
	}
	if !v.EnsureVisible(rows[49], false, true) || v.VScroll.Value != 400 {
		t.Errorf("last row clamps to the limit 400, got %d", v.VScroll.Value)
	}
	if !v.IsFullyVisible(rows[49]) || v.IsPartiallyVisible(rows[30]) {
		t.Error("visibility checks disagree with the scroll value")
	}
}

func TestViewportEnsurePartiallyVisible(t *testing.T) {
	rl, rows := rowsWithHeights(uniform(50, 10))
	v := datalist.NewViewport(rl)
	v.Layout(100, 100, 10, 50)
	v.ScrollTo(5)

	if v.EnsureVisible(rows[0], false, false) {
		t.Error("half visible row satisfies a partial request")
	}
	if !v.EnsureVisible(rows[0], true, false) || v.VScroll.Value != 0 {
		t.Errorf("full request should scroll to 0, got %d", v.VScroll.Value)
	}
}

func TestViewportEnsureVisibleTallRow(t *testing.T) {
	heights := uniform(10, 10)
	heights[5] = 300
	rl, rows := rowsWithHeights(heights)
	v := datalist.NewViewport(rl)
	v.Layout(100, 100, 10, 50)

	v.EnsureVisible(rows[5], true, false)
	if top, y := v.Top(); top != rows[5] || y > 0 {
		t.Errorf("expected tall row as cursor, got row %d at %d", rl.IndexOf(top), y)
	}
	if wantTop, wantY := freshTop(rl, 100, v.VScroll.Value); wantTop != rows[5] || wantY != -200 {
		t.Errorf("fresh walk disagrees: row %d at %d", rl.IndexOf(wantTop), wantY)
	}
}

func TestViewportOffsetOutsideBand(t *testing.T) {
	rl, rows := rowsWithHeights(uniform(40, 10))
	v := datalist.NewViewport(rl)
	v.Layout(100, 50, 10, 50)
	v.ScrollTo(200)

	if y, ok := v.Offset(rows[2]); !ok || y != -180 {
		t.Errorf("expected offset -180 above the band, got %d %v", y, ok)
	}
	if y, ok := v.Offset(rows[39]); !ok || y != 190 {
		t.Errorf("expected offset 190 below the band, got %d %v", y, ok)
	}
	if _, ok := v.Offset(detachedRows(1)[0]); ok {
		t.Error("detached row has no offset")
	}
}

func TestViewportLayoutScrollbars(t *testing.T) {
	tests := []struct {
		name         string
		heights      []int
		contentW     int
		wantV, wantH bool
		wantW, wantH2 int
	}{
		{"fits", uniform(5, 10), 80, false, false, 100, 100},
		{"tall", uniform(20, 10), 80, true, false, 90, 100},
		{"wide", uniform(5, 10), 150, false, true, 100, 90},
		{"wide pushes tall", uniform(19, 5), 150, true, true, 90, 90},
		{"tall pushes wide", uniform(20, 10), 95, true, true, 90, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, _ := rowsWithHeights(tt.heights)
			v := datalist.NewViewport(rl)
			v.Layout(100, 100, 10, tt.contentW)
			if v.VScroll.Visible != tt.wantV || v.HScroll.Visible != tt.wantH {
				t.Errorf("expected bars %v/%v, got %v/%v", tt.wantV, tt.wantH, v.VScroll.Visible, v.HScroll.Visible)
			}
			if w, h := v.Size(); w != tt.wantW || h != tt.wantH2 {
				t.Errorf("expected area %dx%d, got %dx%d", tt.wantW, tt.wantH2, w, h)
			}
		})
	}
}

func TestViewportHorizontal(t *testing.T) {
	rl, _ := rowsWithHeights(uniform(3, 10))
	v := datalist.NewViewport(rl)
	v.Layout(100, 100, 10, 250)

	if v.HScroll.Limit() != 150 {
		t.Fatalf("expected limit 150, got %d", v.HScroll.Limit())
	}
	v.EnsureColumnVisible(120, 30)
	if v.HScroll.Value != 50 || v.HOffset() != -50 {
		t.Errorf("expected offset -50, got %d", v.HOffset())
	}
	v.EnsureColumnVisible(-20, 30)
	if v.HScroll.Value != 30 {
		t.Errorf("expected value 30, got %d", v.HScroll.Value)
	}
	v.HScrollTo(1000)
	if v.HScroll.Value != 150 {
		t.Errorf("expected clamp to 150, got %d", v.HScroll.Value)
	}
}

func TestScrollBarRange(t *testing.T) {
	var s datalist.ScrollBar
	s.SetRange(300, 100)
	if s.LargeChange != 10 || s.Max != 209 || s.Limit() != 200 {
		t.Errorf("expected large 10, max 209, limit 200, got %d %d %d", s.LargeChange, s.Max, s.Limit())
	}
	// The stock convention: the reachable maximum is Max - LargeChange + 1.
	if s.Max-s.LargeChange+1 != s.Limit() {
		t.Error("limit disagrees with Max and LargeChange")
	}
	if !s.SetValue(500) || s.Value != 200 {
		t.Errorf("expected clamp to 200, got %d", s.Value)
	}
	if off, length := s.Thumb(100); off != 67 || length != 33 {
		t.Errorf("expected thumb 67+33, got %d+%d", off, length)
	}

	if !s.SetRange(50, 100) || s.Value != 0 {
		t.Errorf("content that fits resets the value, got %d", s.Value)
	}
	if s.Max != 0 || s.Limit() != 0 {
		t.Errorf("expected empty range, got max %d limit %d", s.Max, s.Limit())
	}
	if off, length := s.Thumb(100); off != 0 || length != 100 {
		t.Errorf("expected full track thumb, got %d+%d", off, length)
	}
	if s.SetValue(-4) {
		t.Error("negative value clamps to the unchanged 0")
	}
}
