package datalist

import (
	"fmt"
	"log/slog"
	"time"
)

// DataList is a virtualized multi-column list. All methods must be called
// from one goroutine, the host's event loop.
type DataList struct {
	cols   *ColumnSet
	rows   *RowList
	view   *Viewport
	colors ColorOverrides

	style     Style
	measure   Measurer
	log       *slog.Logger
	clipboard ClipboardProvider
	keys      *KeyMap

	// Events are raised during dispatch.
	Events Events

	width, height int
	showHeader    bool
	gridLines     bool
	showNull      bool
	enabled       bool
	focused       bool

	nextRowID RowID

	sel       *Row
	highlight *Row
	combo     comboState

	mouse  mouseState
	header headerState

	edit     *EditSession
	pending  *pendingEdit
	deferred []func()
	depth    int

	tooltip tooltipState

	clock        float32
	dblClickTime float32
	tooltipDelay float32
	wheelLines   int
}

// Option configures a DataList.
type Option func(*DataList)

// WithStyle sets the colors and metrics.
func WithStyle(s Style) Option {
	return func(l *DataList) { l.style = s }
}

// WithMeasurer sets the text measurer. Terminal hosts measure in cells.
func WithMeasurer(m Measurer) Option {
	return func(l *DataList) { l.measure = m }
}

// WithLogger replaces the package logger for this list.
func WithLogger(log *slog.Logger) Option {
	return func(l *DataList) { l.log = log }
}

// WithDoubleClickTime sets the double-click interval, which is also the
// delay before a second click opens an edit.
func WithDoubleClickTime(d time.Duration) Option {
	return func(l *DataList) { l.dblClickTime = float32(d.Seconds()) }
}

// WithTooltipDelay sets how long the mouse must rest on a clipped cell
// before its full text is shown.
func WithTooltipDelay(d time.Duration) Option {
	return func(l *DataList) { l.tooltipDelay = float32(d.Seconds()) }
}

// WithClipboard sets the clipboard used by the copy action.
func WithClipboard(c ClipboardProvider) Option {
	return func(l *DataList) { l.clipboard = c }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(m *KeyMap) Option {
	return func(l *DataList) { l.keys = m }
}

// WithComboMode runs the list as a drop-down. format renders the selected
// row as the combo text; see FormatRow.
func WithComboMode(format string) Option {
	return func(l *DataList) {
		l.combo.enabled = true
		l.combo.format = format
		l.showHeader = false
	}
}

func WithShowNull(b bool) Option  { return func(l *DataList) { l.showNull = b } }
func WithGridLines(b bool) Option { return func(l *DataList) { l.gridLines = b } }
func WithHeader(b bool) Option    { return func(l *DataList) { l.showHeader = b } }

// WithReadOnly disables editing for every column and paints with the
// control colors.
func WithReadOnly(b bool) Option {
	return func(l *DataList) { l.cols.readOnly = b }
}

func WithAllowSort(b bool) Option { return func(l *DataList) { l.cols.allowSort = b } }
func WithAllowEdit(b bool) Option { return func(l *DataList) { l.cols.allowEdit = b } }

// New creates an empty list.
func New(opts ...Option) *DataList {
	l := &DataList{
		rows:         NewRowList(),
		style:        DefaultStyle(),
		measure:      FixedMeasurer{},
		log:          defaultLogger,
		showHeader:   true,
		gridLines:    true,
		enabled:      true,
		dblClickTime: 0.5,
		tooltipDelay: 0.8,
		wheelLines:   3,
	}
	l.cols = newColumnSet(l.log)
	l.view = NewViewport(l.rows)
	for _, opt := range opts {
		opt(l)
	}
	l.cols.log = l.log
	if l.keys == nil {
		l.keys = DefaultKeyMap()
	}
	l.view.VScroll.SmallChange = l.baseHeight()
	l.view.HScroll.SmallChange = l.measure.TextWidth("m")
	return l
}

func (l *DataList) Columns() *ColumnSet              { return l.cols }
func (l *DataList) Rows() *RowList                   { return l.rows }
func (l *DataList) Viewport() *Viewport              { return l.view }
func (l *DataList) Colors() *ColorOverrides          { return &l.colors }
func (l *DataList) Style() Style                     { return l.style }
func (l *DataList) Measurer() Measurer               { return l.measure }
func (l *DataList) KeyMap() *KeyMap                  { return l.keys }
func (l *DataList) ShowNull() bool                   { return l.showNull }
func (l *DataList) GridLines() bool                  { return l.gridLines }
func (l *DataList) ShowHeader() bool                 { return l.showHeader }
func (l *DataList) ReadOnly() bool                   { return l.cols.readOnly }
func (l *DataList) Enabled() bool                    { return l.enabled }
func (l *DataList) Size() (w, h int)                 { return l.width, l.height }
func (l *DataList) SetGridLines(b bool)              { l.gridLines = b }
func (l *DataList) SetClipboard(c ClipboardProvider) { l.clipboard = c }

// SetStyle replaces the style. Metrics may change, so every row height is
// recomputed.
func (l *DataList) SetStyle(s Style) {
	l.style = s
	l.view.VScroll.SmallChange = l.baseHeight()
	l.recalcAll("style")
	l.relayout()
}

// SetMeasurer replaces the text measurer and recomputes every row height.
func (l *DataList) SetMeasurer(m Measurer) {
	l.measure = m
	l.view.VScroll.SmallChange = l.baseHeight()
	l.view.HScroll.SmallChange = m.TextWidth("m")
	l.recalcAll("measurer")
	l.relayout()
}

// SetShowNull toggles "NULL" for null cells. Wrapped cells may change height.
func (l *DataList) SetShowNull(b bool) {
	if l.showNull == b {
		return
	}
	l.showNull = b
	if l.cols.hasVariableHeight() {
		l.recalcAll("show null")
		l.relayout()
	}
}

// SetShowHeader shows or hides the column header.
func (l *DataList) SetShowHeader(b bool) {
	if l.showHeader == b {
		return
	}
	l.showHeader = b
	l.invalidate("header")
	l.relayout()
}

// SetReadOnly switches read-only mode. An open edit is cancelled.
func (l *DataList) SetReadOnly(b bool) {
	l.cols.readOnly = b
	if b {
		l.cancelEdit()
	}
}

// SetEnabled enables or disables the list. A disabled list ignores input
// and paints with the control colors.
func (l *DataList) SetEnabled(b bool) {
	l.enabled = b
	if !b {
		l.cancelEdit()
		l.tooltip.hide()
	}
}

// SetAllowSort and SetAllowEdit toggle the list-level flags consulted by
// Column.AllowSort and Column.AllowEdit.
func (l *DataList) SetAllowSort(b bool) { l.cols.allowSort = b }

func (l *DataList) SetAllowEdit(b bool) {
	l.cols.allowEdit = b
	if !b {
		l.cancelEdit()
	}
}

// Resize sets the control size, header and scrollbars included.
func (l *DataList) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	if w == l.width && h == l.height {
		return
	}
	l.width, l.height = w, h
	l.invalidate("resize")
	l.relayout()
}

func (l *DataList) invalidate(reason string) {
	l.view.Invalidate()
	if listVerbose() {
		l.log.Debug("viewport invalidated", "reason", reason)
	}
}

// relayout recomputes the row area and scroll ranges.
func (l *DataList) relayout() {
	top := l.rowTop()
	l.view.Layout(l.width, l.height-top, l.style.ScrollbarSize, l.cols.Width())
}

// rowTop is the y of the row area's top edge.
func (l *DataList) rowTop() int {
	y := 0
	if l.combo.enabled {
		y += l.baseHeight()
	}
	if l.showHeader {
		y += l.baseHeight()
	}
	return y
}

// RowArea returns the rectangle rows are painted into.
func (l *DataList) RowArea() Rect {
	w, h := l.view.Size()
	return Rect{X: 0, Y: l.rowTop(), W: w, H: h}
}

func (l *DataList) baseHeight() int {
	return l.measure.LineHeight() + 2*l.style.CellPadding
}

// measureRow computes a row's height from its visible wrapped cells.
func (l *DataList) measureRow(r *Row) int {
	h := l.baseHeight()
	pad := l.style.CellPadding
	for i, c := range l.cols.All() {
		if !c.visible || !c.IsVariableHeight() {
			continue
		}
		ch := WrappedHeight(l.measure, l.Text(r, i), c.width-2*pad) + 2*pad
		h = max(h, ch)
	}
	return h
}

// recalcRow re-measures one row after a cell change.
func (l *DataList) recalcRow(r *Row) {
	if l.rows.setHeight(r, l.measureRow(r)) == 0 || !l.rows.Contains(r) {
		return
	}
	l.invalidate("row height")
	l.relayout()
}

// recalcAll is the full O(n) height rescan.
func (l *DataList) recalcAll(reason string) {
	start := time.Now()
	total := l.rows.RecalcHeights(l.measureRow)
	l.invalidate(reason)
	if listVerbose() {
		l.log.Debug("height rescan", "reason", reason, "rows", l.rows.Len(),
			"total", total, "elapsed", time.Since(start))
	}
}

// Columns

// AddColumn appends a column. Width 0 means DefaultColumnWidth. Every
// attached row gets a null cell for it.
func (l *DataList) AddColumn(name string, typ ValueType, width int, render RenderType, editable bool, opts ...ColumnOption) (*Column, error) {
	if !render.accepts(typ) {
		return nil, fmt.Errorf("%w: render %s cannot show %s", ErrTypeMismatch, render, typ)
	}
	if width <= 0 {
		width = DefaultColumnWidth
	}
	c := &Column{
		name:      name,
		valueType: typ,
		render:    render,
		width:     width,
		stored:    width,
		visible:   true,
		priority:  -1,
		resizable: true,
		editable:  editable,
	}
	for _, opt := range opts {
		opt(c)
	}
	l.cols.add(c)
	for r := range l.rows.All() {
		r.insertCell(c.index)
	}
	if c.IsVariableHeight() && c.visible {
		l.recalcAll("column added")
	}
	l.relayout()
	return c, nil
}

// RemoveColumn deletes column i, its cells and its color overrides.
func (l *DataList) RemoveColumn(i int) error {
	c := l.cols.At(i)
	if c == nil {
		return fmt.Errorf("remove column %d: %w", i, ErrColumnRange)
	}
	if l.edit != nil && l.edit.Column == i {
		l.cancelEdit()
	} else if l.edit != nil && l.edit.Column > i {
		l.edit.Column--
	}
	l.cancelPending()
	l.tooltip.hide()
	l.header.forget(c)

	l.cols.remove(i)
	for r := range l.rows.All() {
		r.removeCell(i)
	}
	l.colors.purgeColumn(c.id)
	if c.IsVariableHeight() {
		l.recalcAll("column removed")
	} else {
		l.invalidate("column removed")
	}
	l.relayout()
	return nil
}

// SetColumnWidth sets a column's width and stored width.
func (l *DataList) SetColumnWidth(i, w int) error {
	c := l.cols.At(i)
	if c == nil {
		return fmt.Errorf("column width %d: %w", i, ErrColumnRange)
	}
	w = max(0, w)
	c.width, c.stored = w, w
	if c.IsVariableHeight() && c.visible {
		l.recalcAll("column width")
	}
	l.relayout()
	return nil
}

// SetColumnVisible shows or hides column i. Hiding stores the width, and
// showing restores it.
func (l *DataList) SetColumnVisible(i int, visible bool) error {
	c := l.cols.At(i)
	if c == nil {
		return fmt.Errorf("column visibility %d: %w", i, ErrColumnRange)
	}
	if c.visible == visible {
		return nil
	}
	if visible {
		c.visible = true
		c.width = c.stored
	} else {
		c.stored = c.width
		c.visible = false
		if l.edit != nil && l.edit.Column == i {
			l.cancelEdit()
		}
	}
	if c.IsVariableHeight() {
		l.recalcAll("column visibility")
	} else {
		l.invalidate("column visibility")
	}
	l.relayout()
	return nil
}

// SetSortPriority ranks column i; see ColumnSet.SetPriority. It does not
// sort.
func (l *DataList) SetSortPriority(i, priority int) error {
	c := l.cols.At(i)
	if c == nil {
		return fmt.Errorf("sort priority %d: %w", i, ErrColumnRange)
	}
	if priority >= 0 && !c.valueType.Sortable() {
		return fmt.Errorf("sort priority %s: %w", c.name, ErrUnsortable)
	}
	l.cols.SetPriority(c, priority)
	return nil
}

// Rows

// NewRow creates a detached row with one null cell per column.
func (l *DataList) NewRow() *Row {
	l.nextRowID++
	r := newRow(l.nextRowID, l.cols.Len(), l.baseHeight())
	r.owner = l
	return r
}

func (l *DataList) checkRow(r *Row, op string) bool {
	if r == nil {
		return false
	}
	if r.owner != l {
		l.log.Warn("row belongs to another list", "op", op, "row", r.id)
		return false
	}
	if r.Len() != l.cols.Len() {
		l.log.Warn("row does not match columns", "op", op, "row", r.id, "cells", r.Len(), "columns", l.cols.Len())
		return false
	}
	return true
}

// AddRow appends r. It returns false, changing nothing, when r is already
// attached or its cells do not match the columns.
func (l *DataList) AddRow(r *Row) bool {
	if !l.checkRow(r, "add") {
		return false
	}
	r.height = l.measureRow(r)
	if !l.rows.AddAtEnd(r) {
		l.log.Warn("row already attached", "op", "add", "row", r.id)
		return false
	}
	if top, _ := l.view.Top(); top == nil {
		l.invalidate("add to empty view")
	}
	l.relayout()
	return true
}

// InsertRow inserts r before another attached row. A nil before appends.
func (l *DataList) InsertRow(r, before *Row) bool {
	if before == nil {
		return l.AddRow(r)
	}
	if !l.checkRow(r, "insert") {
		return false
	}
	r.height = l.measureRow(r)
	if !l.rows.AddBefore(r, before) {
		l.log.Warn("row insert rejected", "row", r.id, "attached", r.Attached(), "before", before.id)
		return false
	}
	l.invalidate("insert")
	l.relayout()
	return true
}

// RemoveRow detaches r along with its selection, color overrides and any
// pending edit. Returns false when r is not attached.
func (l *DataList) RemoveRow(r *Row) bool {
	if !l.rows.Contains(r) {
		return false
	}
	if l.edit != nil && l.edit.Row == r {
		l.cancelEdit()
	}
	if l.pending != nil && l.pending.row == r {
		l.cancelPending()
	}
	if l.tooltip.row == r {
		l.tooltip.hide()
	}
	if l.mouse.downRow == r {
		l.mouse.downRow = nil
	}
	l.colors.purgeRow(r.id)
	l.rows.Remove(r)
	if l.sel == r {
		l.sel = nil
	}
	if l.highlight == r {
		l.highlight = nil
	}
	l.invalidate("remove")
	l.relayout()
	return true
}

// ClearRows removes every row in O(1).
func (l *DataList) ClearRows() {
	l.cancelEdit()
	l.cancelPending()
	l.tooltip.hide()
	l.mouse.downRow = nil
	l.colors.purgeRows()
	l.rows.Clear()
	l.sel, l.highlight = nil, nil
	l.invalidate("clear")
	l.relayout()
}

// Cells

// SetValue stores v in cell col of r. Proxy color columns set the row
// override instead; a null clears it. Proxy writes to a detached row are
// dropped.
func (l *DataList) SetValue(r *Row, col int, v Value) error {
	c := l.cols.At(col)
	if c == nil || col >= r.Len() {
		return fmt.Errorf("set value %d: %w", col, ErrColumnRange)
	}
	if slot, ok := c.render.ProxySlot(); ok {
		if !v.conforms(TypeColor) {
			return fmt.Errorf("%w: %s into %s", ErrTypeMismatch, v.Type(), c)
		}
		if !l.rows.Contains(r) {
			return nil
		}
		if v.IsNull() {
			l.colors.Rows.Remove(slot, r.id)
		} else {
			l.colors.Rows.Set(slot, r.id, v.AsColor())
		}
		return nil
	}
	if c.render == RenderProgressBar {
		v = percent(v)
	}
	if !v.conforms(c.valueType) {
		return fmt.Errorf("%w: %s into %s", ErrTypeMismatch, v.Type(), c)
	}
	r.cells[col] = v
	if c.IsVariableHeight() && c.visible {
		l.recalcRow(r)
	}
	return nil
}

// Value reads cell col of r, resolving proxy color columns.
func (l *DataList) Value(r *Row, col int) Value {
	c := l.cols.At(col)
	if c == nil {
		return Null()
	}
	if slot, ok := c.render.ProxySlot(); ok {
		if color, ok := l.colors.Rows.Get(slot, r.id); ok {
			return ColorValue(color)
		}
		return Null()
	}
	return r.Value(col)
}

// Text returns the display text of a cell.
func (l *DataList) Text(r *Row, col int) string {
	c := l.cols.At(col)
	if c == nil || c.valueType == TypeObject {
		return ""
	}
	v := l.Value(r, col)
	if v.IsNull() {
		if l.showNull {
			return "NULL"
		}
		return ""
	}
	if c.render == RenderComboBox {
		return c.combo.Name(int(v.AsInt()))
	}
	return v.Format()
}

// Colors

// SetRowColor overrides one color slot for an attached row. ColorNone
// clears it.
func (l *DataList) SetRowColor(r *Row, slot ColorSlot, c Color) {
	if !l.rows.Contains(r) {
		return
	}
	l.colors.Rows.Set(slot, r.id, c)
}

// SetColumnColor overrides one color slot for column i.
func (l *DataList) SetColumnColor(i int, slot ColorSlot, c Color) error {
	col := l.cols.At(i)
	if col == nil {
		return fmt.Errorf("column color %d: %w", i, ErrColumnRange)
	}
	l.colors.Columns.Set(slot, col.id, c)
	return nil
}

// SetCellColor overrides one color slot for a single cell of an attached
// row.
func (l *DataList) SetCellColor(r *Row, i int, slot ColorSlot, c Color) error {
	col := l.cols.At(i)
	if col == nil {
		return fmt.Errorf("cell color %d: %w", i, ErrColumnRange)
	}
	if !l.rows.Contains(r) {
		return fmt.Errorf("cell color %d: %w", i, ErrDetachedRow)
	}
	l.colors.Cells.Set(slot, CellKey{Row: r.id, Column: col.id}, c)
	return nil
}

// RemoveRowColors drops every override that names r, cell overrides
// included.
func (l *DataList) RemoveRowColors(r *Row) {
	l.colors.purgeRow(r.id)
}

// CellColors resolves the colors a cell paints with right now.
func (l *DataList) CellColors(r *Row, i int) (back, fore Color) {
	var key CellKey
	key.Row = r.id
	if c := l.cols.At(i); c != nil {
		key.Column = c.id
	}
	st := CellState{
		Highlighted: l.IsHighlighted(r),
		Focused:     l.focused || l.mouse.captured,
		Disabled:    !l.enabled || l.cols.readOnly,
	}
	return l.colors.ResolveCell(key, st, &l.style)
}

// EnsureRowInView scrolls so r is visible; see Viewport.EnsureVisible.
func (l *DataList) EnsureRowInView(r *Row, fully, top bool) bool {
	return l.view.EnsureVisible(r, fully, top)
}

// ensureColumnVisible scrolls horizontally to show column c.
func (l *DataList) ensureColumnVisible(c *Column) bool {
	x := l.cols.XPos(c.index, l.view.HOffset())
	return l.view.EnsureColumnVisible(x, c.Width())
}

// CellRect returns the rectangle of a cell in control coordinates and
// whether any of it is on screen.
func (l *DataList) CellRect(r *Row, i int) (Rect, bool) {
	c := l.cols.At(i)
	if c == nil || !c.visible {
		return Rect{}, false
	}
	y, ok := l.view.Offset(r)
	if !ok {
		return Rect{}, false
	}
	rect := Rect{
		X: l.cols.XPos(i, l.view.HOffset()),
		Y: l.rowTop() + y,
		W: c.width,
		H: r.height,
	}
	return rect, rect.Intersects(l.RowArea())
}
