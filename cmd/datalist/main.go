// Command datalist shows a list in the terminal.
//
// Usage:
//
//	go run ./cmd/datalist                      # built-in task list
//	go run ./cmd/datalist -config list.toml    # columns and rows from TOML
//	go run ./cmd/datalist -rows 500 | less     # not a terminal: print and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/go-theft-auto/datalist"
	dlterm "github.com/go-theft-auto/datalist/backend/term"
	"github.com/go-theft-auto/datalist/config"
	"github.com/go-theft-auto/datalist/internal/demo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath = flag.String("config", "", "TOML file with list settings, columns and rows")
		rows    = flag.Int("rows", 200, "generated rows added to the built-in list")
		theme   = flag.String("theme", "terminal", "base style: terminal, light or dark")
		logPath = flag.String("log", "", "write logs to this file")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger, closeLog, err := openLog(*logPath, *verbose)
	if err != nil {
		return err
	}
	defer closeLog()
	datalist.SetVerbose(*verbose)

	l, err := buildList(*cfgPath, *theme, *rows, logger)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		width := 100
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
		return dump(os.Stdout, l, width)
	}

	var last string
	l.Events.SelectionChanged = func(*datalist.Row) { last = "" }
	l.Events.EditFinished = func(e datalist.EditFinishedEvent) {
		last = fmt.Sprintf("%s: %s → %s", l.Columns().At(e.Column).Name(), e.Old, e.New)
	}
	l.Events.EditFailed = func(e *datalist.EditFailedEvent) {
		last = e.Err.Error()
	}
	status := func() string {
		pos := "no selection"
		if sel := l.Selection(); sel != nil {
			pos = fmt.Sprintf("row %d/%d", l.Rows().IndexOf(sel)+1, l.Rows().Len())
		}
		if last != "" {
			return last + "  " + pos
		}
		return pos
	}

	m := dlterm.New(l, dlterm.WithStatus(status))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	_, err = p.Run()
	return err
}

func buildList(path, theme string, rows int, logger *slog.Logger) (*datalist.DataList, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = demo.Config()
	}
	if err != nil {
		return nil, err
	}
	if theme != "" {
		cfg.List.Theme = theme
	}

	clip := datalist.ClipboardProvider(&datalist.MemoryClipboard{})
	if datalist.ClipboardAvailable() {
		clip = datalist.SystemClipboard{}
	}
	l, err := cfg.NewList(
		datalist.WithLogger(logger),
		datalist.WithClipboard(clip),
		datalist.WithMeasurer(dlterm.CellMeasurer{}),
	)
	if err != nil {
		return nil, err
	}
	if path == "" {
		if err := demo.Fill(l, rows, 1); err != nil {
			return nil, err
		}
		// The built-in layout is sized for the 7px wide GL font.
		for i, c := range l.Columns().All() {
			if err := l.SetColumnWidth(i, max(3, c.StoredWidth()/7)); err != nil {
				return nil, err
			}
		}
	}
	return l, nil
}

// openLog sends logs to path, or discards them: the terminal belongs to the
// list while it runs.
func openLog(path string, verbose bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if path == "" {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(logger)
		return logger, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}

// dump prints every row as plain text.
func dump(w io.Writer, l *datalist.DataList, width int) error {
	l.SetShowHeader(true)
	l.SetMeasurer(dlterm.CellMeasurer{})
	height := 1
	for r := range l.Rows().All() {
		height += r.Height()
	}
	l.Resize(width, height)

	c := dlterm.NewCanvas(width, height)
	l.Paint(c)
	for _, line := range c.PlainText() {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
