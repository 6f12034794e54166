package datalist

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Measurer reports text metrics in list units. GPU hosts measure a font
// face in pixels; terminal hosts measure display cells.
type Measurer interface {
	// LineHeight is the height of one line of text.
	LineHeight() int
	// TextWidth is the advance of s on one line.
	TextWidth(s string) int
}

// FixedMeasurer gives every grapheme cluster the same advance. The zero
// value measures like a 7x13 bitmap font.
type FixedMeasurer struct {
	CharWidth int
	Height    int
}

func (m FixedMeasurer) LineHeight() int {
	if m.Height <= 0 {
		return 13
	}
	return m.Height
}

func (m FixedMeasurer) TextWidth(s string) int {
	cw := m.CharWidth
	if cw <= 0 {
		cw = 7
	}
	return uniseg.GraphemeClusterCount(s) * cw
}

// WrapText breaks text into lines no wider than maxWidth. Explicit newlines
// always break. Words wider than maxWidth are split between grapheme
// clusters. Empty text yields a single empty line.
func WrapText(m Measurer, text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = wrapParagraph(m, para, maxWidth, lines)
	}
	return lines
}

func wrapParagraph(m Measurer, para string, maxWidth int, lines []string) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(lines, "")
	}

	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.TextWidth(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if m.TextWidth(word) <= maxWidth {
			current = word
			continue
		}
		// Overlong word: hard-break it.
		pieces := breakGraphemes(m, word, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	return append(lines, current)
}

// breakGraphemes splits s into pieces no wider than maxWidth. A single
// cluster wider than maxWidth gets a piece of its own.
func breakGraphemes(m Measurer, s string, maxWidth int) []string {
	var pieces []string
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if b.Len() > 0 && m.TextWidth(b.String()+cluster) > maxWidth {
			pieces = append(pieces, b.String())
			b.Reset()
		}
		b.WriteString(cluster)
	}
	return append(pieces, b.String())
}

// WrappedHeight returns the height of text wrapped to maxWidth.
func WrappedHeight(m Measurer, text string, maxWidth int) int {
	return len(WrapText(m, text, maxWidth)) * m.LineHeight()
}

// Fits reports whether text fits on one line of width maxWidth.
func Fits(m Measurer, text string, maxWidth int) bool {
	return !strings.Contains(text, "\n") && m.TextWidth(text) <= maxWidth
}

// TruncateText cuts text to fit within maxWidth, adding ".." when cut.
// Cuts fall between grapheme clusters.
func TruncateText(m Measurer, text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Fits(m, text, maxWidth) {
		return text
	}
	const suffix = ".."
	target := maxWidth - m.TextWidth(suffix)
	if target <= 0 {
		return ""
	}

	var b strings.Builder
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\n" || m.TextWidth(b.String()+cluster) > target {
			break
		}
		b.WriteString(cluster)
	}
	return b.String() + suffix
}
