package datalist

import "sync"

// Vertex is a single vertex for GPU rendering.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // 0xAABBGGRR
}

// DrawCmd is a run of indices sharing a texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		dl.atlas = nil
		drawListPool.Put(dl)
	}
}

// DrawList accumulates one frame of GPU draw data. It implements Surface
// and PartPainter; text needs a glyph atlas from the renderer.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32

	atlas  *GlyphAtlas
	offset [2]float32
}

// Clear resets the DrawList, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
	dl.offset = [2]float32{}
}

// SetAtlas sets the glyph atlas used by Text.
func (dl *DrawList) SetAtlas(a *GlyphAtlas) { dl.atlas = a }

// SetOrigin translates everything drawn afterwards, so a list can be
// placed anywhere in the window.
func (dl *DrawList) SetOrigin(x, y float32) { dl.offset = [2]float32{x, y} }

// PushClipRect pushes a clip rectangle in window coordinates, intersected
// with the current one.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	cur := dl.currentClip
	dl.clipStack = append(dl.clipStack, cur)
	dl.currentClip = [4]float32{max(x1, cur[0]), max(y1, cur[1]), min(x2, cur[2]), min(y2, cur[3])}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture switches the texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices appends vertices and returns the index of the first one
// relative to the current command. Commands are split before 16-bit
// indices would overflow.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > 0xFFFF {
		dl.splitDraw()
	}
	start := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	for i := range verts {
		verts[i].Pos[0] += dl.offset[0]
		verts[i].Pos[1] += dl.offset[1]
	}
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return start
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.SetTexture(0)
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2)
}

// GlyphQuad is one glyph's screen and texture rectangles.
type GlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32
	U0, V0 float32
	U1, V1 float32
}

// AddGlyphQuads draws glyph quads from the current texture.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	for _, q := range quads {
		idx := dl.addVertices(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
		dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
	}
}

// Finalize closes the last command and drops empty ones. Call it before
// rendering.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// Surface

func (dl *DrawList) FillRect(r Rect, c Color) {
	dl.AddRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), uint32(c))
}

func (dl *DrawList) StrokeRect(r Rect, c Color) {
	dl.AddRectOutline(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), uint32(c), 1)
}

func (dl *DrawList) HLine(x, y, w int, c Color) { dl.FillRect(Rect{X: x, Y: y, W: w, H: 1}, c) }
func (dl *DrawList) VLine(x, y, h int, c Color) { dl.FillRect(Rect{X: x, Y: y, W: 1, H: h}, c) }

// PushClip clips to r, given in list coordinates.
func (dl *DrawList) PushClip(r Rect) {
	x, y := float32(r.X)+dl.offset[0], float32(r.Y)+dl.offset[1]
	dl.PushClipRect(x, y, x+float32(r.W), y+float32(r.H))
}

func (dl *DrawList) PopClip() { dl.PopClipRect() }

// Text lays s out with the atlas. Without an atlas nothing is drawn.
func (dl *DrawList) Text(x, y int, s string, c Color) {
	a := dl.atlas
	if a == nil || s == "" || c.IsNone() {
		return
	}
	dl.SetTexture(a.TextureID)
	dl.AddGlyphQuads(a.Layout(float32(x), float32(y), s), uint32(c))
}

// PartPainter

func (dl *DrawList) CheckBox(r Rect, checked bool, st *Style) {
	dl.StrokeRect(r, st.CheckBorder)
	if !checked {
		return
	}
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	m := uint32(st.CheckMark)
	dl.AddTriangle(x+w*0.2, y+h*0.5, x+w*0.4, y+h*0.8, x+w*0.4, y+h*0.6, m)
	dl.AddTriangle(x+w*0.4, y+h*0.8, x+w*0.8, y+h*0.25, x+w*0.4, y+h*0.6, m)
}

func (dl *DrawList) ProgressBar(r Rect, percent float64, st *Style) {
	flatParts{dl}.ProgressBar(r, percent, st)
}

func (dl *DrawList) SortArrow(r Rect, ascending bool, c Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	if ascending {
		dl.AddTriangle(x, y+h, x+w/2, y, x+w, y+h, uint32(c))
		return
	}
	dl.AddTriangle(x, y, x+w, y, x+w/2, y+h, uint32(c))
}

func (dl *DrawList) ScrollBar(track, thumb Rect, vertical bool, st *Style) {
	dl.FillRect(track, st.ScrollbarBack)
	if vertical {
		thumb = Rect{X: thumb.X + 2, Y: thumb.Y, W: thumb.W - 4, H: thumb.H}
	} else {
		thumb = Rect{X: thumb.X, Y: thumb.Y + 2, W: thumb.W, H: thumb.H - 4}
	}
	dl.FillRect(thumb, st.ScrollbarGrab)
}
