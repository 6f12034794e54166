package datalist

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect is an integer rectangle in list units (pixels for GPU hosts,
// cells for terminal hosts).
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d int) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Color is a packed RGBA color (0xAABBGGRR, the layout the GL backend
// uploads as normalized bytes). The zero value is ColorNone.
type Color uint32

// ColorNone is the empty color. Storing it in an override map removes the
// entry.
const ColorNone Color = 0

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite     Color = 0xFFFFFFFF
	ColorBlack     Color = 0xFF000000
	ColorRed       Color = 0xFF0000FF
	ColorGreen     Color = 0xFF00FF00
	ColorBlue      Color = 0xFFFF0000
	ColorYellow    Color = 0xFF00FFFF
	ColorGray      Color = 0xFF808080
	ColorDarkGray  Color = 0xFF404040
	ColorLightGray Color = 0xFFC0C0C0
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGB creates an opaque packed color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA extracts the components of a packed color.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// IsNone reports whether c is the empty color.
func (c Color) IsNone() bool {
	return c == ColorNone
}

// Scale multiplies the RGB channels by f, keeping alpha.
// Used for grid lines, which are drawn at 75% of the back color.
func (c Color) Scale(f float32) Color {
	r, g, b, a := c.RGBA()
	return RGBA(
		uint8(clampf(float32(r)*f, 0, 255)),
		uint8(clampf(float32(g)*f, 0, 255)),
		uint8(clampf(float32(b)*f, 0, 255)),
		a,
	)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampi clamps an int value to a range. If maxVal < minVal, minVal wins.
func clampi(v, minVal, maxVal int) int {
	if v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	return v
}
