package datalist_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/datalist"
)

// mockRenderer records what it was asked to draw.
type mockRenderer struct {
	renderCalls int
	atlas       *datalist.GlyphAtlas
	err         error

	vertices  int
	textured  bool
	firstVert datalist.Vertex
	width     int
	height    int
}

func (m *mockRenderer) Render(dl *datalist.DrawList) error {
	m.renderCalls++
	m.vertices = len(dl.VtxBuffer)
	m.textured = false
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == m.atlas.TextureID && cmd.ElemCount > 0 {
			m.textured = true
		}
	}
	if len(dl.VtxBuffer) > 0 {
		m.firstVert = dl.VtxBuffer[0]
	}
	return m.err
}

func (m *mockRenderer) Atlas() *datalist.GlyphAtlas { return m.atlas }

func (m *mockRenderer) Resize(width, height int) { m.width, m.height = width, height }

// testAtlas has a one unit wide glyph for every printable ASCII rune.
func testAtlas() *datalist.GlyphAtlas {
	a := &datalist.GlyphAtlas{TextureID: 7, Height: 10, Glyphs: map[rune]datalist.Glyph{}, Missing: '?'}
	for r := rune(' '); r <= '~'; r++ {
		g := datalist.Glyph{Advance: 1}
		if r != ' ' {
			g.W, g.H = 1, 10
		}
		a.Glyphs[r] = g
	}
	return a
}

func TestHostFrame(t *testing.T) {
	renderer := &mockRenderer{atlas: testAtlas()}
	l := newTestList(t, 5)
	h := datalist.NewHost(renderer, l)
	if h.List() != l {
		t.Fatal("expected the hosted list")
	}

	if err := h.Frame(datalist.NewInputState(), datalist.Vec2{X: 100, Y: 110}, 0.016); err != nil {
		t.Fatalf("Frame returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.vertices == 0 {
		t.Error("expected the list to draw something")
	}
	if !renderer.textured {
		t.Error("expected text drawn with the atlas texture")
	}

	h.Resize(640, 480)
	if renderer.width != 640 || renderer.height != 480 {
		t.Errorf("expected renderer resized to 640x480, got %dx%d", renderer.width, renderer.height)
	}
}

func TestHostFrameResizesList(t *testing.T) {
	renderer := &mockRenderer{atlas: testAtlas()}
	l := newTestList(t, 30)
	h := datalist.NewHost(renderer, l)

	if err := h.Frame(nil, datalist.Vec2{X: 200, Y: 310}, 0.016); err != nil {
		t.Fatal(err)
	}
	if l.Viewport().VScroll.Visible {
		t.Error("all 30 rows fit; no vertical scrollbar expected")
	}
	if w, hgt := l.Viewport().Size(); w != 200 || hgt != 300 {
		t.Errorf("expected a 200x300 row area, got %dx%d", w, hgt)
	}
}

func TestHostOrigin(t *testing.T) {
	renderer := &mockRenderer{atlas: testAtlas()}
	l := newTestList(t, 5)
	h := datalist.NewHost(renderer, l, datalist.WithOrigin(20, 30))

	in := datalist.NewInputState()
	in.SetMousePos(20+10, float32(30+rowY(2)))
	in.SetMouseButton(datalist.MouseButtonLeft, true)
	if err := h.Frame(in, datalist.Vec2{X: 100, Y: 110}, 0.016); err != nil {
		t.Fatal(err)
	}
	if l.Selection() != l.Rows().At(2) {
		t.Error("input should be translated into list coordinates")
	}
	if in.MouseX != 30 {
		t.Error("the caller's input must not be modified")
	}
	if p := renderer.firstVert.Pos; p[0] != 20 || p[1] != 30 {
		t.Errorf("expected drawing to start at the origin, got %v", p)
	}
}

func TestHostRenderError(t *testing.T) {
	boom := errors.New("device lost")
	renderer := &mockRenderer{atlas: testAtlas(), err: boom}
	h := datalist.NewHost(renderer, newTestList(t, 1))
	if err := h.Frame(nil, datalist.Vec2{X: 100, Y: 110}, 0.016); !errors.Is(err, boom) {
		t.Errorf("expected the renderer error, got %v", err)
	}
}

func TestHostAdvancesTimers(t *testing.T) {
	renderer := &mockRenderer{atlas: testAtlas()}
	l := newTestList(t, 5)
	h := datalist.NewHost(renderer, l)
	size := datalist.Vec2{X: 100, Y: 110}

	click(l, 10, rowY(1))
	l.Update(1.0)
	click(l, 10, rowY(1))
	for range 40 {
		if err := h.Frame(nil, size, 0.016); err != nil {
			t.Fatal(err)
		}
	}
	if l.Editing() == nil {
		t.Error("frames should run the pending edit timer")
	}
}

func TestDrawListPool(t *testing.T) {
	dl1 := datalist.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(0, 0, 100, 100, uint32(datalist.ColorWhite))
	datalist.ReleaseDrawList(dl1)

	dl2 := datalist.AcquireDrawList()
	if len(dl2.VtxBuffer) != 0 || len(dl2.CmdBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	datalist.ReleaseDrawList(dl2)
}

func TestDrawListClip(t *testing.T) {
	dl := datalist.AcquireDrawList()
	defer datalist.ReleaseDrawList(dl)

	dl.SetOrigin(5, 5)
	dl.PushClip(datalist.Rect{W: 10, H: 10})
	dl.FillRect(datalist.Rect{W: 4, H: 4}, datalist.ColorRed)
	dl.PopClip()
	dl.FillRect(datalist.Rect{W: 4, H: 4}, datalist.ColorNone)
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("expected one command, got %d", len(dl.CmdBuffer))
	}
	if got := dl.CmdBuffer[0].ClipRect; got != [4]float32{5, 5, 15, 15} {
		t.Errorf("expected clip at the origin, got %v", got)
	}
	if len(dl.VtxBuffer) != 4 {
		t.Errorf("transparent fills draw nothing, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestGlyphAtlas(t *testing.T) {
	a := testAtlas()
	if w := a.TextWidth("abc"); w != 3 {
		t.Errorf("expected width 3, got %d", w)
	}
	// Arrows fall back to ASCII and unknown runes to the missing glyph.
	if w := a.TextWidth("→日"); w != 2 {
		t.Errorf("expected fallback widths, got %d", w)
	}
	quads := a.Layout(10, 0, "a b")
	if len(quads) != 2 {
		t.Fatalf("spaces advance without a quad, got %d quads", len(quads))
	}
	if quads[1].X0 != 12 {
		t.Errorf("expected second quad at 12, got %v", quads[1].X0)
	}
}

func BenchmarkHostFrame(b *testing.B) {
	l := datalist.New(testOptions()...)
	if _, err := l.AddColumn("Name", datalist.TypeString, 50, datalist.RenderText, true); err != nil {
		b.Fatal(err)
	}
	for range 10000 {
		r := l.NewRow()
		_ = l.SetValue(r, 0, datalist.String("benchmark row"))
		l.AddRow(r)
	}
	h := datalist.NewHost(&mockRenderer{atlas: testAtlas()}, l)
	size := datalist.Vec2{X: 400, Y: 300}

	b.ResetTimer()
	for range b.N {
		_ = h.Frame(nil, size, 0.016)
	}
}
