package term

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/datalist"
)

func TestCanvasText(t *testing.T) {
	c := NewCanvas(10, 2)
	c.Text(1, 0, "héllo", datalist.ColorWhite)

	lines := c.PlainText()
	require.Len(t, lines, 2)
	assert.Equal(t, " héllo    ", lines[0])
	assert.Equal(t, strings.Repeat(" ", 10), lines[1])

	text, fg, _ := c.Cell(2, 0)
	assert.Equal(t, "é", text)
	assert.Equal(t, datalist.ColorWhite, fg)
}

func TestCanvasWideRunes(t *testing.T) {
	c := NewCanvas(10, 1)
	c.Text(0, 0, "日本", datalist.ColorWhite)
	assert.Equal(t, "日本      ", c.PlainText()[0])

	// Overwriting the right half of a wide rune blanks its left half.
	c.Text(1, 0, "x", datalist.ColorWhite)
	assert.Equal(t, " x本      ", c.PlainText()[0])

	// A wide rune that would cross the right edge is dropped.
	c.Text(9, 0, "語", datalist.ColorWhite)
	text, _, _ := c.Cell(9, 0)
	assert.Equal(t, " ", text)
}

func TestCanvasClip(t *testing.T) {
	c := NewCanvas(10, 2)
	c.PushClip(datalist.Rect{X: 2, W: 3, H: 1})
	c.Text(0, 0, "abcdef", datalist.ColorWhite)
	c.Text(0, 1, "hidden", datalist.ColorWhite)
	c.FillRect(datalist.Rect{W: 10, H: 2}, datalist.ColorRed)
	c.PopClip()

	assert.Equal(t, "          ", c.PlainText()[0])
	_, _, bg := c.Cell(2, 0)
	assert.Equal(t, datalist.ColorRed, bg)
	_, _, bg = c.Cell(1, 0)
	assert.Equal(t, datalist.ColorNone, bg)
	_, _, bg = c.Cell(2, 1)
	assert.Equal(t, datalist.ColorNone, bg)

	c.PushClip(datalist.Rect{X: 2, W: 3, H: 1})
	c.Text(0, 0, "abcdef", datalist.ColorWhite)
	c.PopClip()
	assert.Equal(t, "  cde     ", c.PlainText()[0])
}

func TestCanvasNestedClipIntersects(t *testing.T) {
	c := NewCanvas(10, 1)
	c.PushClip(datalist.Rect{X: 0, W: 6, H: 1})
	c.PushClip(datalist.Rect{X: 4, W: 6, H: 1})
	c.Text(0, 0, "0123456789", datalist.ColorWhite)
	c.PopClip()
	c.PopClip()
	assert.Equal(t, "    45    ", c.PlainText()[0])
}

func TestCanvasLines(t *testing.T) {
	c := NewCanvas(6, 4)
	c.StrokeRect(datalist.Rect{W: 6, H: 1}, datalist.ColorWhite)
	assert.Equal(t, "      ", c.PlainText()[0], "a one-row box has no frame")

	c.StrokeRect(datalist.Rect{W: 4, H: 3}, datalist.ColorWhite)
	lines := c.PlainText()
	assert.Equal(t, "┌──┐  ", lines[0])
	assert.Equal(t, "│  │  ", lines[1])
	assert.Equal(t, "└──┘  ", lines[2])

	c.HLine(0, 3, 3, datalist.ColorWhite)
	assert.True(t, c.Underlined(2, 3))
	assert.False(t, c.Underlined(3, 3))
	assert.Equal(t, "      ", c.PlainText()[3])
}

func TestCanvasParts(t *testing.T) {
	st := datalist.TerminalStyle()
	c := NewCanvas(12, 1)
	c.CheckBox(datalist.Rect{W: 1, H: 1}, true, &st)
	c.CheckBox(datalist.Rect{X: 1, W: 1, H: 1}, false, &st)
	c.SortArrow(datalist.Rect{X: 2, W: 1, H: 1}, true, st.SortArrow)
	c.ProgressBar(datalist.Rect{X: 3, W: 8, H: 1}, 50, &st)

	assert.Equal(t, "✓·▴", c.PlainText()[0][:len("✓·▴")])
	_, _, bg := c.Cell(6, 0)
	assert.Equal(t, st.ProgressFill, bg)
	_, _, bg = c.Cell(7, 0)
	assert.Equal(t, st.ProgressTrack, bg)
}

func TestCanvasRenderOverlay(t *testing.T) {
	c := NewCanvas(6, 2)
	c.SetRenderer(lipgloss.NewRenderer(io.Discard))
	c.Text(0, 0, "abcdef", datalist.ColorWhite)
	c.Overlay(1, 0, "XY")
	c.Overlay(4, 1, "long text")

	assert.Equal(t, "aXYdef\n    lo", c.Render())
}

func TestCellMeasurer(t *testing.T) {
	m := CellMeasurer{}
	assert.Equal(t, 1, m.LineHeight())
	assert.Equal(t, 3, m.TextWidth("abc"))
	assert.Equal(t, 4, m.TextWidth("日本"))
	assert.Equal(t, 0, m.TextWidth(""))
}
