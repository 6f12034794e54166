// Package demo builds the task list the commands show.
package demo

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-theft-auto/datalist"
	"github.com/go-theft-auto/datalist/config"
)

//go:embed demo.toml
var sample []byte

// Column indexes of the demo layout.
const (
	ColDone = iota
	ColTask
	ColOwner
	ColProgress
	ColDue
	ColNotes
)

// Config returns the built-in layout.
func Config() (*config.Config, error) {
	return config.Parse(sample)
}

var (
	verbs   = []string{"Fix", "Review", "Port", "Measure", "Document", "Refactor", "Test", "Ship"}
	objects = []string{"viewport", "header drag", "combo popup", "color cache", "row heights", "key map", "clipboard", "tooltip timer"}
	notes   = []string{
		"",
		"Blocked on review.",
		"Needs a second pair of eyes before merge.\nSee the thread from Monday.",
		"Long note that wraps over several lines when the column is narrow enough to force it.",
	}
)

// Fill appends n generated rows to a list with the demo layout and
// re-sorts. Rows from the same seed are identical.
func Fill(l *datalist.DataList, n int, seed uint64) error {
	if l.Columns().Len() <= ColNotes {
		return fmt.Errorf("demo: list has %d columns, want %d", l.Columns().Len(), ColNotes+1)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)

	for i := range n {
		r := l.NewRow()
		progress := rng.IntN(101)
		vals := []datalist.Value{
			ColDone:     datalist.Bool(progress == 100),
			ColTask:     datalist.String(fmt.Sprintf("%s %s #%d", verbs[rng.IntN(len(verbs))], objects[rng.IntN(len(objects))], i+1)),
			ColOwner:    datalist.Int(int32(1 + rng.IntN(4))),
			ColProgress: datalist.Int(int32(progress)),
			ColDue:      datalist.DateTime(base.Add(time.Duration(rng.IntN(60*24)) * time.Hour / 4)),
			ColNotes:    datalist.String(notes[rng.IntN(len(notes))]),
		}
		if rng.IntN(8) == 0 {
			vals[ColDue] = datalist.Null()
		}
		for col, v := range vals {
			if err := l.SetValue(r, col, v); err != nil {
				return fmt.Errorf("demo row %d: %w", i, err)
			}
		}
		l.AddRow(r)
		if progress < 10 {
			l.SetRowColor(r, datalist.ForeColor, datalist.RGB(0xef, 0x29, 0x29))
		}
	}
	if l.Columns().MaxPriority() >= 0 {
		return l.Sort()
	}
	return nil
}

// List builds the demo list with rows generated rows on top of the
// built-in ones. opts apply after the built-in options.
func List(rows int, opts ...datalist.Option) (*datalist.DataList, error) {
	cfg, err := Config()
	if err != nil {
		return nil, err
	}
	l, err := cfg.NewList(opts...)
	if err != nil {
		return nil, err
	}
	if err := Fill(l, rows, 1); err != nil {
		return nil, err
	}
	return l, nil
}
