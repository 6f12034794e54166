// Package term hosts a datalist in a terminal with bubbletea. The list
// paints into a Canvas of character cells, which renders to a string with
// lipgloss styles.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/go-theft-auto/datalist"
)

// cell is one terminal column. An empty text marks the right half of a
// wide grapheme.
type cell struct {
	text      string
	fg, bg    datalist.Color
	underline bool
}

func (c cell) sameStyle(o cell) bool {
	return c.fg == o.fg && c.bg == o.bg && c.underline == o.underline
}

// overlay is pre-rendered text spliced over a run of cells at render time.
type overlay struct {
	x, y, w int
	s       string
}

// Canvas is a datalist.Surface over a grid of terminal cells. Lines are
// drawn with box-drawing runes, except horizontal lines, which underline
// the cells they cross so header and row text stays readable.
type Canvas struct {
	w, h     int
	cells    []cell
	clip     datalist.Rect
	clips    []datalist.Rect
	overlays []overlay
	renderer *lipgloss.Renderer
}

// NewCanvas returns a blank canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{renderer: lipgloss.DefaultRenderer()}
	c.Resize(w, h)
	return c
}

// SetRenderer sets the lipgloss renderer styles are built with.
func (c *Canvas) SetRenderer(r *lipgloss.Renderer) { c.renderer = r }

// Size returns the canvas size in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Resize changes the size and clears the canvas.
func (c *Canvas) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	if w != c.w || h != c.h {
		c.w, c.h = w, h
		c.cells = make([]cell, w*h)
	}
	c.Clear()
}

// Clear blanks every cell and drops clips and overlays.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{text: " "}
	}
	c.clip = datalist.Rect{W: c.w, H: c.h}
	c.clips = c.clips[:0]
	c.overlays = c.overlays[:0]
}

// Cell returns the text and colors at x, y.
func (c *Canvas) Cell(x, y int) (text string, fg, bg datalist.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return "", datalist.ColorNone, datalist.ColorNone
	}
	ce := c.cells[y*c.w+x]
	return ce.text, ce.fg, ce.bg
}

// Underlined reports whether the cell at x, y is underlined.
func (c *Canvas) Underlined(x, y int) bool {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return false
	}
	return c.cells[y*c.w+x].underline
}

func (c *Canvas) visible(x, y int) bool {
	return c.clip.Contains(x, y) && x >= 0 && y >= 0 && x < c.w && y < c.h
}

// put writes one grapheme at x, y, repairing any wide grapheme it splits.
func (c *Canvas) put(x, y int, text string, width int, fg datalist.Color) {
	row := c.cells[y*c.w : (y+1)*c.w]
	if row[x].text == "" && x > 0 {
		row[x-1].text = " "
	}
	if x+1 < c.w && row[x+1].text == "" && width < 2 {
		row[x+1].text = " "
	}
	row[x].text = text
	if !fg.IsNone() {
		row[x].fg = fg
	}
	if width == 2 {
		if x+2 < c.w && row[x+2].text == "" {
			row[x+2].text = " "
		}
		row[x+1] = cell{fg: row[x].fg, bg: row[x+1].bg, underline: row[x+1].underline}
	}
}

func (c *Canvas) FillRect(r datalist.Rect, col datalist.Color) {
	if col.IsNone() {
		return
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if !c.visible(x, y) {
				continue
			}
			c.put(x, y, " ", 1, datalist.ColorNone)
			ce := &c.cells[y*c.w+x]
			ce.bg = col
			ce.underline = false
		}
	}
}

// StrokeRect draws a box. Rectangles thinner than three cells have no
// inside to frame and are left alone.
func (c *Canvas) StrokeRect(r datalist.Rect, col datalist.Color) {
	if col.IsNone() || r.W < 3 || r.H < 3 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	c.rune(r.X, r.Y, "┌", col)
	c.rune(right, r.Y, "┐", col)
	c.rune(r.X, bottom, "└", col)
	c.rune(right, bottom, "┘", col)
	for x := r.X + 1; x < right; x++ {
		c.rune(x, r.Y, "─", col)
		c.rune(x, bottom, "─", col)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.rune(r.X, y, "│", col)
		c.rune(right, y, "│", col)
	}
}

func (c *Canvas) rune(x, y int, s string, col datalist.Color) {
	if c.visible(x, y) {
		c.put(x, y, s, 1, col)
	}
}

// HLine underlines w cells. The terminal has no underline color, so col
// only decides whether anything is drawn.
func (c *Canvas) HLine(x, y, w int, col datalist.Color) {
	if col.IsNone() {
		return
	}
	for i := x; i < x+w; i++ {
		if c.visible(i, y) {
			c.cells[y*c.w+i].underline = true
		}
	}
}

func (c *Canvas) VLine(x, y, h int, col datalist.Color) {
	if col.IsNone() {
		return
	}
	for j := y; j < y+h; j++ {
		c.rune(x, j, "│", col)
	}
}

// Text writes s one grapheme cluster at a time. A wide cluster that would
// straddle the clip edge is dropped.
func (c *Canvas) Text(x, y int, s string, col datalist.Color) {
	if s == "" || y < c.clip.Y || y >= c.clip.Y+c.clip.H || y < 0 || y >= c.h {
		return
	}
	right := min(c.clip.X+c.clip.W, c.w)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if x+w > right {
			return
		}
		if x >= c.clip.X && x >= 0 {
			c.put(x, y, cluster, w, col)
		}
		x += w
	}
}

func (c *Canvas) PushClip(r datalist.Rect) {
	c.clips = append(c.clips, c.clip)
	x1, y1 := max(r.X, c.clip.X), max(r.Y, c.clip.Y)
	x2, y2 := min(r.X+r.W, c.clip.X+c.clip.W), min(r.Y+r.H, c.clip.Y+c.clip.H)
	c.clip = datalist.Rect{X: x1, Y: y1, W: max(0, x2-x1), H: max(0, y2-y1)}
}

func (c *Canvas) PopClip() {
	if n := len(c.clips); n > 0 {
		c.clip = c.clips[n-1]
		c.clips = c.clips[:n-1]
	}
}

// CheckBox draws a check mark or a dot in the box's first cell.
func (c *Canvas) CheckBox(r datalist.Rect, checked bool, st *datalist.Style) {
	if checked {
		c.Text(r.X, r.Y, "✓", st.CheckMark)
		return
	}
	c.Text(r.X, r.Y, "·", st.CheckBorder)
}

func (c *Canvas) ProgressBar(r datalist.Rect, percent float64, st *datalist.Style) {
	c.FillRect(r, st.ProgressTrack)
	fill := r
	fill.W = int(float64(r.W)*percent/100 + 0.5)
	c.FillRect(fill, st.ProgressFill)
}

func (c *Canvas) SortArrow(r datalist.Rect, ascending bool, col datalist.Color) {
	if ascending {
		c.Text(r.X, r.Y, "▴", col)
		return
	}
	c.Text(r.X, r.Y, "▾", col)
}

func (c *Canvas) ScrollBar(track, thumb datalist.Rect, _ bool, st *datalist.Style) {
	c.FillRect(track, st.ScrollbarBack)
	c.FillRect(thumb, st.ScrollbarGrab)
}

// Overlay splices a pre-styled string over the cells starting at x, y
// when the canvas is rendered. s must be a single line.
func (c *Canvas) Overlay(x, y int, s string) {
	w := lipgloss.Width(s)
	if y < 0 || y >= c.h || x < 0 || w == 0 {
		return
	}
	if x+w > c.w {
		s = c.renderer.NewStyle().MaxWidth(c.w - x).Render(s)
		w = lipgloss.Width(s)
	}
	c.overlays = append(c.overlays, overlay{x: x, y: y, w: w, s: s})
}

func (c *Canvas) overlayAt(x, y int) (overlay, bool) {
	for _, o := range c.overlays {
		if o.x == x && o.y == y {
			return o, true
		}
	}
	return overlay{}, false
}

// PlainText returns the canvas without styles, one string per row.
func (c *Canvas) PlainText() []string {
	lines := make([]string, c.h)
	for y := range c.h {
		var b strings.Builder
		for _, ce := range c.cells[y*c.w : (y+1)*c.w] {
			b.WriteString(ce.text)
		}
		lines[y] = b.String()
	}
	return lines
}

// Render returns the canvas as styled lines joined by newlines.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y := range c.h {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		for x := 0; x < c.w; {
			if o, ok := c.overlayAt(x, y); ok {
				b.WriteString(o.s)
				x += o.w
				continue
			}
			start := row[x]
			var run strings.Builder
			for x < c.w && row[x].sameStyle(start) {
				if _, ok := c.overlayAt(x, y); ok {
					break
				}
				run.WriteString(row[x].text)
				x++
			}
			b.WriteString(c.style(start).Render(run.String()))
		}
	}
	return b.String()
}

func (c *Canvas) style(ce cell) lipgloss.Style {
	s := c.renderer.NewStyle()
	if !ce.fg.IsNone() {
		s = s.Foreground(hexColor(ce.fg))
	}
	if !ce.bg.IsNone() {
		s = s.Background(hexColor(ce.bg))
	}
	if ce.underline {
		s = s.Underline(true)
	}
	return s
}

func hexColor(c datalist.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
