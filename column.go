package datalist

import (
	"fmt"
	"strings"
)

// ColumnID is a stable column handle. Unlike the column index it does not
// shift when earlier columns are removed.
type ColumnID uint32

// RenderType controls how a column's cells are drawn and edited.
type RenderType int

const (
	RenderText RenderType = iota
	RenderTextWrap
	RenderCheckBox
	RenderComboBox
	RenderProgressBar

	// Proxy types display nothing. Their cells read and write the row-level
	// color override in the matching slot.
	RenderRowBackColor
	RenderRowForeColor
	RenderRowSelBackColor
	RenderRowSelForeColor
)

var renderTypeNames = [...]string{
	RenderText:            "text",
	RenderTextWrap:        "textwrap",
	RenderCheckBox:        "checkbox",
	RenderComboBox:        "combobox",
	RenderProgressBar:     "progressbar",
	RenderRowBackColor:    "rowbackcolor",
	RenderRowForeColor:    "rowforecolor",
	RenderRowSelBackColor: "rowselbackcolor",
	RenderRowSelForeColor: "rowselforecolor",
}

func (r RenderType) String() string {
	if r < 0 || int(r) >= len(renderTypeNames) {
		return fmt.Sprintf("RenderType(%d)", int(r))
	}
	return renderTypeNames[r]
}

// ParseRenderType maps a render type name ("text", "checkbox", ...) to a
// RenderType.
func ParseRenderType(name string) (RenderType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range renderTypeNames {
		if n == name {
			return RenderType(i), true
		}
	}
	return 0, false
}

// ProxySlot returns the row color slot a proxy column redirects to.
func (r RenderType) ProxySlot() (ColorSlot, bool) {
	switch r {
	case RenderRowBackColor:
		return BackColor, true
	case RenderRowForeColor:
		return ForeColor, true
	case RenderRowSelBackColor:
		return SelBackColor, true
	case RenderRowSelForeColor:
		return SelForeColor, true
	}
	return 0, false
}

// accepts reports whether a render type can display values of type t.
func (r RenderType) accepts(t ValueType) bool {
	switch r {
	case RenderCheckBox:
		return t == TypeBool
	case RenderComboBox:
		return t == TypeInt || t == TypeShort || t == TypeLong
	case RenderProgressBar:
		return t.Numeric()
	case RenderRowBackColor, RenderRowForeColor, RenderRowSelBackColor, RenderRowSelForeColor:
		return t == TypeColor
	}
	return true
}

// DefaultColumnWidth is the width of a column added with width 0.
const DefaultColumnWidth = 100

// Column describes one column. Layout-affecting properties (width,
// visibility, sort priority) are changed through the owning DataList so the
// viewport stays in sync.
type Column struct {
	id        ColumnID
	index     int
	name      string
	valueType ValueType
	render    RenderType
	width     int
	stored    int // restored by SetColumnVisible(true) and right-click during resize
	visible   bool
	priority  int
	ascending bool
	resizable bool
	editable  bool
	combo     *ComboSource
	set       *ColumnSet
}

// ColumnOption configures a column as it is added.
type ColumnOption func(*Column)

// SortPriority ranks the new column. The rank goes through the same
// renumbering as DataList.SetSortPriority.
func SortPriority(priority int, ascending bool) ColumnOption {
	return func(c *Column) {
		c.priority = priority
		c.ascending = ascending
	}
}

// ComboItems attaches the id/name source for a combo box column.
func ComboItems(src *ComboSource) ColumnOption {
	return func(c *Column) { c.combo = src }
}

// Hidden adds the column hidden. Its width is kept for when it is shown.
func Hidden() ColumnOption {
	return func(c *Column) { c.visible = false }
}

// FixedWidth disables header resizing for the column.
func FixedWidth() ColumnOption {
	return func(c *Column) { c.resizable = false }
}

func (c *Column) ID() ColumnID         { return c.id }
func (c *Column) Index() int           { return c.index }
func (c *Column) Name() string         { return c.name }
func (c *Column) SetName(name string)  { c.name = name }
func (c *Column) ValueType() ValueType { return c.valueType }
func (c *Column) Render() RenderType   { return c.render }
func (c *Column) Visible() bool        { return c.visible }
func (c *Column) StoredWidth() int     { return c.stored }
func (c *Column) Priority() int        { return c.priority }
func (c *Column) Ascending() bool      { return c.ascending }
func (c *Column) Resizable() bool      { return c.resizable }
func (c *Column) SetResizable(b bool)  { c.resizable = b }
func (c *Column) SetEditable(b bool)   { c.editable = b }
func (c *Column) Combo() *ComboSource  { return c.combo }

// SetAscending sets the sort direction used the next time the list sorts.
func (c *Column) SetAscending(b bool) { c.ascending = b }

// Width returns the current width, or 0 while the column is hidden.
func (c *Column) Width() int {
	if !c.visible {
		return 0
	}
	return c.width
}

// IsVariableHeight reports whether cell content can change the row height.
func (c *Column) IsVariableHeight() bool {
	return c.render == RenderTextWrap
}

// AllowSort reports whether the column can take part in sorting. Object and
// color columns never can.
func (c *Column) AllowSort() bool {
	if !c.valueType.Sortable() {
		return false
	}
	return c.set == nil || c.set.allowSort
}

// AllowEdit reports whether users may edit the column's cells.
func (c *Column) AllowEdit() bool {
	if !c.editable || !c.valueType.Editable() {
		return false
	}
	return c.set == nil || (c.set.allowEdit && !c.set.readOnly)
}

func (c *Column) String() string {
	return fmt.Sprintf("%s[%d %s/%s]", c.name, c.index, c.valueType, c.render)
}
