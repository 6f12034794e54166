package datalist

// Renderer draws finished DrawLists for a GPU host.
type Renderer interface {
	Render(dl *DrawList) error
	// Atlas is the glyph atlas DrawList text is laid out with.
	Atlas() *GlyphAtlas
	Resize(width, height int)
}

// Host drives one list from a frame loop: each Frame resizes the list,
// feeds it the frame's input, advances its timers and renders it.
type Host struct {
	renderer Renderer
	list     *DataList
	origin   Vec2
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithOrigin places the list at x, y in the window. Input coordinates are
// translated accordingly.
func WithOrigin(x, y float32) HostOption {
	return func(h *Host) { h.origin = Vec2{X: x, Y: y} }
}

// NewHost binds a renderer to a list.
func NewHost(renderer Renderer, list *DataList, opts ...HostOption) *Host {
	h := &Host{renderer: renderer, list: list}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// List returns the hosted list.
func (h *Host) List() *DataList { return h.list }

// Frame runs one frame. size is the area given to the list; dt is the
// frame time in seconds.
func (h *Host) Frame(input *InputState, size Vec2, dt float32) error {
	l := h.list
	l.Resize(int(size.X), int(size.Y))
	if input != nil {
		input.UpdateKeyRepeat(dt)
		local := *input
		p := Vec2{X: input.MouseX, Y: input.MouseY}.Sub(h.origin)
		local.MouseX, local.MouseY = p.X, p.Y
		l.HandleInput(&local)
	}
	l.Update(dt)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	dl.SetAtlas(h.renderer.Atlas())
	dl.SetOrigin(h.origin.X, h.origin.Y)
	l.Paint(dl)
	dl.Finalize()
	return h.renderer.Render(dl)
}

// Resize notifies the renderer of a window size change.
func (h *Host) Resize(width, height int) {
	h.renderer.Resize(width, height)
}
