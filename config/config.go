// Package config loads list layouts, data and key bindings from TOML.
//
// A file looks like:
//
//	[list]
//	theme = "dark"
//	double_click = "400ms"
//
//	[style.colors]
//	highlight = "#3465a4"
//
//	[[columns]]
//	name = "Qty"
//	type = "int"
//	sort = 0
//
//	[[rows]]
//	values = ["7"]
//	colors = { back = "yellow" }
//
//	[bindings]
//	edit = ["f2", "ctrl+e"]
package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/go-theft-auto/datalist"
)

type Config struct {
	List     ListConfig      `toml:"list"`
	Style    StyleConfig     `toml:"style"`
	Columns  []ColumnConfig  `toml:"columns"`
	Rows     []RowConfig     `toml:"rows"`
	Bindings map[string]Keys `toml:"bindings"`
}

// ListConfig holds list-wide switches. Unset pointers keep the list default.
type ListConfig struct {
	Theme        string   `toml:"theme"`
	ShowHeader   *bool    `toml:"show_header"`
	GridLines    *bool    `toml:"grid_lines"`
	ShowNull     *bool    `toml:"show_null"`
	ReadOnly     bool     `toml:"read_only"`
	AllowSort    *bool    `toml:"allow_sort"`
	AllowEdit    *bool    `toml:"allow_edit"`
	ComboMode    bool     `toml:"combo_mode"`
	ComboFormat  string   `toml:"combo_format"`
	DoubleClick  Duration `toml:"double_click"`
	TooltipDelay Duration `toml:"tooltip_delay"`
}

// StyleConfig overrides parts of the theme. Colors is keyed by the
// snake_case name of the Style field ("header_back", "progress_fill").
type StyleConfig struct {
	Colors        map[string]Color `toml:"colors"`
	CellPadding   *int             `toml:"cell_padding"`
	ScrollbarSize *int             `toml:"scrollbar_size"`
	CheckSize     *int             `toml:"check_size"`
	ResizeGrip    *int             `toml:"resize_grip"`
	GridLineScale *float32         `toml:"grid_line_scale"`
}

// ColorSet is one override per color slot.
type ColorSet struct {
	Back    *Color `toml:"back"`
	Fore    *Color `toml:"fore"`
	SelBack *Color `toml:"sel_back"`
	SelFore *Color `toml:"sel_fore"`
}

func (cs ColorSet) each(fn func(datalist.ColorSlot, datalist.Color) error) error {
	for _, e := range []struct {
		slot datalist.ColorSlot
		c    *Color
	}{
		{datalist.BackColor, cs.Back},
		{datalist.ForeColor, cs.Fore},
		{datalist.SelBackColor, cs.SelBack},
		{datalist.SelForeColor, cs.SelFore},
	} {
		if e.c == nil {
			continue
		}
		if err := fn(e.slot, datalist.Color(*e.c)); err != nil {
			return err
		}
	}
	return nil
}

// ColumnConfig describes one column. Sort is the 0-based sort rank; an
// unset Sort leaves the column unranked.
type ColumnConfig struct {
	Name       string   `toml:"name"`
	Type       string   `toml:"type"`
	Render     string   `toml:"render"`
	Width      int      `toml:"width"`
	Editable   bool     `toml:"editable"`
	Hidden     bool     `toml:"hidden"`
	FixedWidth bool     `toml:"fixed_width"`
	Combo      string   `toml:"combo"`
	Sort       *int     `toml:"sort"`
	Descending bool     `toml:"descending"`
	Colors     ColorSet `toml:"colors"`
}

// RowConfig is one row. Values are parsed with the column's value type;
// an empty string is null. Cells overrides colors per column name.
type RowConfig struct {
	Values []string            `toml:"values"`
	Colors ColorSet            `toml:"colors"`
	Cells  map[string]ColorSet `toml:"cells"`
}

// Load reads and parses a TOML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("config loaded", "path", path, "columns", len(cfg.Columns), "rows", len(cfg.Rows))
	return cfg, nil
}

// Parse decodes TOML. Unknown keys are logged and otherwise ignored.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slog.Warn("config: unknown keys", "keys", strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// Theme returns the base style named by theme: "light" (or empty), "dark"
// or "terminal".
func Theme(theme string) (datalist.Style, error) {
	switch strings.ToLower(theme) {
	case "", "light", "default":
		return datalist.DefaultStyle(), nil
	case "dark":
		return datalist.DarkStyle(), nil
	case "terminal":
		return datalist.TerminalStyle(), nil
	}
	return datalist.Style{}, fmt.Errorf("unknown theme %q", theme)
}

var styleColors = map[string]func(*datalist.Style) *datalist.Color{
	"back":                    func(s *datalist.Style) *datalist.Color { return &s.Back },
	"text":                    func(s *datalist.Style) *datalist.Color { return &s.Text },
	"highlight":               func(s *datalist.Style) *datalist.Color { return &s.Highlight },
	"highlight_text":          func(s *datalist.Style) *datalist.Color { return &s.HighlightText },
	"inactive_highlight":      func(s *datalist.Style) *datalist.Color { return &s.InactiveHighlight },
	"inactive_highlight_text": func(s *datalist.Style) *datalist.Color { return &s.InactiveHighlightText },
	"control_back":            func(s *datalist.Style) *datalist.Color { return &s.ControlBack },
	"control_text":            func(s *datalist.Style) *datalist.Color { return &s.ControlText },
	"header_back":             func(s *datalist.Style) *datalist.Color { return &s.HeaderBack },
	"header_text":             func(s *datalist.Style) *datalist.Color { return &s.HeaderText },
	"header_pressed":          func(s *datalist.Style) *datalist.Color { return &s.HeaderPressed },
	"header_border":           func(s *datalist.Style) *datalist.Color { return &s.HeaderBorder },
	"sort_arrow":              func(s *datalist.Style) *datalist.Color { return &s.SortArrow },
	"check_border":            func(s *datalist.Style) *datalist.Color { return &s.CheckBorder },
	"check_mark":              func(s *datalist.Style) *datalist.Color { return &s.CheckMark },
	"progress_track":          func(s *datalist.Style) *datalist.Color { return &s.ProgressTrack },
	"progress_fill":           func(s *datalist.Style) *datalist.Color { return &s.ProgressFill },
	"scrollbar_back":          func(s *datalist.Style) *datalist.Color { return &s.ScrollbarBack },
	"scrollbar_grab":          func(s *datalist.Style) *datalist.Color { return &s.ScrollbarGrab },
	"edit_back":               func(s *datalist.Style) *datalist.Color { return &s.EditBack },
	"edit_text":               func(s *datalist.Style) *datalist.Color { return &s.EditText },
	"edit_border":             func(s *datalist.Style) *datalist.Color { return &s.EditBorder },
	"tooltip_back":            func(s *datalist.Style) *datalist.Color { return &s.TooltipBack },
	"tooltip_text":            func(s *datalist.Style) *datalist.Color { return &s.TooltipText },
	"tooltip_frame":           func(s *datalist.Style) *datalist.Color { return &s.TooltipFrame },
}

// StyleColorNames lists the keys accepted in [style.colors].
func StyleColorNames() []string {
	names := make([]string, 0, len(styleColors))
	for n := range styleColors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve applies the overrides to the named theme.
func (sc StyleConfig) Resolve(theme string) (datalist.Style, error) {
	st, err := Theme(theme)
	if err != nil {
		return st, err
	}
	for name, c := range sc.Colors {
		field, ok := styleColors[strings.ToLower(name)]
		if !ok {
			return st, fmt.Errorf("style color %q: unknown name", name)
		}
		*field(&st) = datalist.Color(c)
	}
	if sc.CellPadding != nil {
		st.CellPadding = *sc.CellPadding
	}
	if sc.ScrollbarSize != nil {
		st.ScrollbarSize = *sc.ScrollbarSize
	}
	if sc.CheckSize != nil {
		st.CheckSize = *sc.CheckSize
	}
	if sc.ResizeGrip != nil {
		st.ResizeGrip = *sc.ResizeGrip
	}
	if sc.GridLineScale != nil {
		st.GridLineScale = *sc.GridLineScale
	}
	return st, nil
}

// KeyMap returns the default key map with the configured actions rebound.
// An action listed with no keys is left unbound.
func (c *Config) KeyMap() (*datalist.KeyMap, error) {
	km := datalist.DefaultKeyMap()
	for name, keys := range c.Bindings {
		a := datalist.Action(name)
		if !slices.Contains(datalist.Actions(), a) {
			return nil, fmt.Errorf("bindings: unknown action %q", name)
		}
		chords := make([]datalist.KeyChord, 0, len(keys))
		for _, k := range keys {
			chord, err := datalist.ParseKeyChord(k)
			if err != nil {
				return nil, fmt.Errorf("bindings.%s: %w", name, err)
			}
			chords = append(chords, chord)
		}
		km.Rebind(a, chords...)
	}
	return km, nil
}

// Options converts the list, style and binding sections into list options.
func (c *Config) Options() ([]datalist.Option, error) {
	st, err := c.Style.Resolve(c.List.Theme)
	if err != nil {
		return nil, err
	}
	km, err := c.KeyMap()
	if err != nil {
		return nil, err
	}
	lc := c.List
	opts := []datalist.Option{datalist.WithStyle(st), datalist.WithKeyMap(km), datalist.WithReadOnly(lc.ReadOnly)}
	for _, b := range []struct {
		v   *bool
		opt func(bool) datalist.Option
	}{
		{lc.ShowHeader, datalist.WithHeader},
		{lc.GridLines, datalist.WithGridLines},
		{lc.ShowNull, datalist.WithShowNull},
		{lc.AllowSort, datalist.WithAllowSort},
		{lc.AllowEdit, datalist.WithAllowEdit},
	} {
		if b.v != nil {
			opts = append(opts, b.opt(*b.v))
		}
	}
	if lc.ComboMode {
		opts = append(opts, datalist.WithComboMode(lc.ComboFormat))
	}
	if lc.DoubleClick > 0 {
		opts = append(opts, datalist.WithDoubleClickTime(time.Duration(lc.DoubleClick)))
	}
	if lc.TooltipDelay > 0 {
		opts = append(opts, datalist.WithTooltipDelay(time.Duration(lc.TooltipDelay)))
	}
	return opts, nil
}

// Apply adds the configured columns and rows to l, then sorts when a
// column is ranked.
func (c *Config) Apply(l *datalist.DataList) error {
	base := l.Columns().Len()
	names := make(map[string]int, len(c.Columns))
	for i, cc := range c.Columns {
		col, err := cc.add(l)
		if err != nil {
			return fmt.Errorf("columns[%d]: %w", i, err)
		}
		names[cc.Name] = col.Index()
	}

	for i, rc := range c.Rows {
		if err := rc.add(l, base, names); err != nil {
			return fmt.Errorf("rows[%d]: %w", i, err)
		}
	}
	if l.Columns().MaxPriority() >= 0 {
		return l.Sort()
	}
	return nil
}

// NewList builds a list from the whole config. opts are applied after the
// configured options.
func (c *Config) NewList(opts ...datalist.Option) (*datalist.DataList, error) {
	cfgOpts, err := c.Options()
	if err != nil {
		return nil, err
	}
	l := datalist.New(append(cfgOpts, opts...)...)
	if err := c.Apply(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (cc ColumnConfig) add(l *datalist.DataList) (*datalist.Column, error) {
	typ, ok := datalist.ParseValueType(cc.Type)
	if !ok {
		return nil, fmt.Errorf("%q: unknown type %q", cc.Name, cc.Type)
	}
	render := datalist.RenderText
	if cc.Render != "" {
		if render, ok = datalist.ParseRenderType(cc.Render); !ok {
			return nil, fmt.Errorf("%q: unknown render %q", cc.Name, cc.Render)
		}
	}
	var opts []datalist.ColumnOption
	if cc.Sort != nil {
		opts = append(opts, datalist.SortPriority(*cc.Sort, !cc.Descending))
	}
	if cc.Combo != "" {
		src, err := datalist.ParseComboSource(cc.Combo)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", cc.Name, err)
		}
		opts = append(opts, datalist.ComboItems(src))
	}
	if cc.Hidden {
		opts = append(opts, datalist.Hidden())
	}
	if cc.FixedWidth {
		opts = append(opts, datalist.FixedWidth())
	}

	col, err := l.AddColumn(cc.Name, typ, cc.Width, render, cc.Editable, opts...)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", cc.Name, err)
	}
	err = cc.Colors.each(func(slot datalist.ColorSlot, color datalist.Color) error {
		return l.SetColumnColor(col.Index(), slot, color)
	})
	return col, err
}

func (rc RowConfig) add(l *datalist.DataList, base int, names map[string]int) error {
	if base+len(rc.Values) > l.Columns().Len() {
		return fmt.Errorf("%d values for %d columns", len(rc.Values), l.Columns().Len()-base)
	}
	r := l.NewRow()
	for i, text := range rc.Values {
		col := l.Columns().At(base + i)
		v, err := datalist.ParseValue(col.ValueType(), text)
		if err != nil {
			return fmt.Errorf("%s: %w", col.Name(), err)
		}
		if err := l.SetValue(r, col.Index(), v); err != nil {
			return fmt.Errorf("%s: %w", col.Name(), err)
		}
	}
	l.AddRow(r)

	_ = rc.Colors.each(func(slot datalist.ColorSlot, c datalist.Color) error {
		l.SetRowColor(r, slot, c)
		return nil
	})
	for name, cs := range rc.Cells {
		i, ok := names[name]
		if !ok {
			return fmt.Errorf("cells: unknown column %q", name)
		}
		if err := cs.each(func(slot datalist.ColorSlot, c datalist.Color) error {
			return l.SetCellColor(r, i, slot, c)
		}); err != nil {
			return err
		}
	}
	return nil
}
