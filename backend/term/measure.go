package term

import "github.com/mattn/go-runewidth"

// CellMeasurer measures text in terminal cells: one line is one row and
// East Asian wide runes take two columns.
type CellMeasurer struct {
	// Cond overrides the ambiguous-width policy. Nil uses the runewidth
	// default, which follows the locale.
	Cond *runewidth.Condition
}

func (m CellMeasurer) LineHeight() int { return 1 }

func (m CellMeasurer) TextWidth(s string) int {
	if m.Cond != nil {
		return m.Cond.StringWidth(s)
	}
	return runewidth.StringWidth(s)
}
