package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/datalist"
)

const sample = `
[list]
theme = "dark"
grid_lines = false
show_null = true
double_click = "250ms"
tooltip_delay = 800

[style]
cell_padding = 3

[style.colors]
highlight = "#3465a4"
progress_fill = "green"

[[columns]]
name = "Name"
type = "string"
width = 120
editable = true

[[columns]]
name = "Qty"
type = "int"
sort = 0
descending = true
colors = { fore = "#ff0000" }

[[columns]]
name = "Kind"
type = "int"
render = "combobox"
combo = "1;Fruit;2;Vegetable"
hidden = true

[[rows]]
values = ["apple", "3", "1"]

[[rows]]
values = ["carrot", "12", "2"]
colors = { back = "yellow" }
cells = { Name = { fore = "#00ff0080" } }

[[rows]]
values = ["", "", ""]

[bindings]
edit = ["ins", "ctrl+x"]
copy = "ctrl+shift+c"
`

func TestParseSample(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.List.Theme)
	require.NotNil(t, cfg.List.GridLines)
	assert.False(t, *cfg.List.GridLines)
	assert.Nil(t, cfg.List.ShowHeader)
	assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.List.DoubleClick))
	assert.Equal(t, 800*time.Millisecond, time.Duration(cfg.List.TooltipDelay))

	require.Len(t, cfg.Columns, 3)
	require.NotNil(t, cfg.Columns[1].Sort)
	assert.Equal(t, 0, *cfg.Columns[1].Sort)
	assert.True(t, cfg.Columns[1].Descending)
	require.NotNil(t, cfg.Columns[1].Colors.Fore)
	assert.Equal(t, Color(datalist.ColorRed), *cfg.Columns[1].Colors.Fore)

	require.Len(t, cfg.Rows, 3)
	assert.Equal(t, Keys{"ctrl+shift+c"}, cfg.Bindings["copy"])
	assert.Equal(t, Keys{"ins", "ctrl+x"}, cfg.Bindings["edit"])
}

func TestNewList(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	l, err := cfg.NewList()
	require.NoError(t, err)

	st := l.Style()
	assert.Equal(t, datalist.RGB(0x34, 0x65, 0xa4), st.Highlight)
	assert.Equal(t, datalist.ColorGreen, st.ProgressFill)
	assert.Equal(t, 3, st.CellPadding)
	assert.Equal(t, datalist.DarkStyle().Back, st.Back)
	assert.False(t, l.GridLines())
	assert.True(t, l.ShowNull())
	assert.True(t, l.ShowHeader())

	cols := l.Columns()
	require.Equal(t, 3, cols.Len())
	assert.Equal(t, 120, cols.At(0).Width())
	assert.Equal(t, datalist.DefaultColumnWidth, cols.At(1).StoredWidth())
	assert.Equal(t, 0, cols.At(1).Priority())
	assert.Equal(t, -1, cols.At(0).Priority())
	assert.False(t, cols.At(1).Ascending())
	assert.False(t, cols.At(2).Visible())
	assert.Equal(t, "Vegetable", cols.At(2).Combo().Name(2))

	// Sorted by Qty descending; nulls order low, so they come last.
	rows := l.Rows()
	require.Equal(t, 3, rows.Len())
	assert.Equal(t, "carrot", l.Text(rows.At(0), 0))
	assert.Equal(t, "apple", l.Text(rows.At(1), 0))
	assert.True(t, l.Value(rows.At(2), 1).IsNull())
	assert.Equal(t, "Vegetable", l.Text(rows.At(0), 2))

	carrot := rows.At(0)
	back, fore := l.CellColors(carrot, 0)
	assert.Equal(t, datalist.ColorYellow, back)
	assert.Equal(t, datalist.RGBA(0, 0xff, 0, 0x80), fore)
	_, fore = l.CellColors(carrot, 1)
	assert.Equal(t, datalist.ColorRed, fore, "column color beats the style")

	km := l.KeyMap()
	a, ok := km.Lookup(datalist.KeyChord{Key: datalist.KeyX, Mods: datalist.ModCtrl})
	require.True(t, ok)
	assert.Equal(t, datalist.ActionEdit, a)
	_, ok = km.Lookup(datalist.KeyChord{Key: datalist.KeyF2})
	assert.False(t, ok, "rebinding drops the default chord")
	a, _ = km.Lookup(datalist.KeyChord{Key: datalist.KeyC, Mods: datalist.ModCtrl | datalist.ModShift})
	assert.Equal(t, datalist.ActionCopy, a)
}

func TestNewListExtraOptionsWin(t *testing.T) {
	cfg, err := Parse([]byte("[list]\ngrid_lines = false\n"))
	require.NoError(t, err)
	l, err := cfg.NewList(datalist.WithGridLines(true))
	require.NoError(t, err)
	assert.True(t, l.GridLines())
}

func TestComboModeHidesHeader(t *testing.T) {
	cfg, err := Parse([]byte("[list]\nshow_header = true\ncombo_mode = true\ncombo_format = \"{0}\"\n"))
	require.NoError(t, err)
	l, err := cfg.NewList()
	require.NoError(t, err)
	assert.False(t, l.ShowHeader())
}

func TestColorUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want datalist.Color
		err  bool
	}{
		{"#ff0000", datalist.ColorRed, false},
		{"#FF000080", datalist.RGBA(0xff, 0, 0, 0x80), false},
		{"LightGray", datalist.ColorLightGray, false},
		{"none", datalist.ColorNone, false},
		{"ff0000", 0, true},
		{"#ff00", 0, true},
		{"#gg0000", 0, true},
		{"mauve", 0, true},
	}
	for _, tt := range tests {
		var c Color
		err := c.UnmarshalText([]byte(tt.in))
		if tt.err {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, datalist.Color(c), tt.in)
	}
}

func TestColorMarshal(t *testing.T) {
	b, err := Color(datalist.RGB(0x12, 0x34, 0x56)).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#123456", string(b))

	b, err = Color(datalist.RGBA(1, 2, 3, 4)).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#01020304", string(b))
}

func TestDurationUnmarshal(t *testing.T) {
	var v struct {
		A Duration `toml:"a"`
		B Duration `toml:"b"`
	}
	_, err := toml.Decode("a = \"1.5s\"\nb = 40\n", &v)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, time.Duration(v.A))
	assert.Equal(t, 40*time.Millisecond, time.Duration(v.B))

	_, err = toml.Decode("a = true\n", &v)
	assert.Error(t, err)
	_, err = toml.Decode("a = \"soon\"\n", &v)
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"theme", "[list]\ntheme = \"neon\"\n"},
		{"style color", "[style.colors]\nborder_glow = \"red\"\n"},
		{"action", "[bindings]\nexplode = \"f9\"\n"},
		{"chord", "[bindings]\nedit = \"hyper+e\"\n"},
		{"type", "[[columns]]\nname = \"A\"\ntype = \"decimal\"\n"},
		{"render", "[[columns]]\nname = \"A\"\ntype = \"int\"\nrender = \"sparkline\"\n"},
		{"combo", "[[columns]]\nname = \"A\"\ntype = \"int\"\ncombo = \"1;a;2\"\n"},
		{"value", "[[columns]]\nname = \"A\"\ntype = \"int\"\n[[rows]]\nvalues = [\"x\"]\n"},
		{"too many values", "[[columns]]\nname = \"A\"\ntype = \"int\"\n[[rows]]\nvalues = [\"1\", \"2\"]\n"},
		{"cell column", "[[columns]]\nname = \"A\"\ntype = \"int\"\n[[rows]]\nvalues = [\"1\"]\ncells = { B = { back = \"red\" } }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.toml))
			require.NoError(t, err)
			_, err = cfg.NewList()
			assert.Error(t, err)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("[list\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Columns, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestStyleColorNames(t *testing.T) {
	names := StyleColorNames()
	assert.Contains(t, names, "header_back")
	assert.IsIncreasing(t, names)
}
