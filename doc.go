/*
Package datalist provides a virtualized, multi-column list control core:
rows of typed cells under a header of columns, with multi-key sorting,
per-cell color overrides, selection, in-cell editing and a drop-down mode.

The package draws nothing itself. A host owns the window or terminal,
forwards input as discrete events (MouseDown, KeyDown, ...) or as polled
frames (HandleInput), calls Update with the frame time, and hands Paint a
Surface. backend/opengl and backend/term are the two hosts shipped with it.

# Quick Start

	list := datalist.New(datalist.WithShowNull(true))
	list.AddColumn("Name", datalist.TypeString, 160, datalist.RenderText, true)
	list.AddColumn("Done", datalist.TypeBool, 50, datalist.RenderCheckBox, true)

	r := list.NewRow()
	list.SetValue(r, 0, datalist.String("write docs"))
	list.SetValue(r, 1, datalist.Bool(false))
	list.AddRow(r)

	list.SetSortPriority(0, 0)
	if err := list.Sort(); err != nil {
	    log.Fatal(err)
	}

	// GPU host, once per frame
	host := datalist.NewHost(renderer, list)
	host.Frame(input, datalist.Vec2{X: 640, Y: 480}, dt)

# Scrolling

Rows may have different heights. The list keeps a running total of row
heights and a cursor: the first visible row and its offset from the top of
the row area. Scrolling moves the cursor by walking only the rows that
cross the top edge, so the cost of a scroll is proportional to the
distance scrolled, not to the row count. Structural changes (insertion
before the end, removal, sorting, header or size changes) drop the cursor
and the next paint finds it again from the first row.

Only wrapped-text columns make heights vary. Resizing one re-measures the
rows on screen while the header is dragged and every row once the drag
ends.

# Sorting

Each column carries a sort priority: -1 for unranked, otherwise a rank in
0..k-1 with no gaps or repeats. Changing one column's rank shifts the
others to keep that true. Sort compares rows rank by rank, nulls first,
and is stable. Clicking a sortable header makes it rank 0 and flips its
direction.

# Colors

Back and fore colors resolve per cell through four slots (back, fore,
selected back, selected fore) in cell, column, row order, falling back to
the Style. Overrides are keyed by stable row and column handles, so
sorting and column removal never misattribute them.

# Keyboard Shortcuts

Default bindings (see DefaultKeyMap):

	PgUp / PgDn      Scroll one page
	Up / Down        Move selection (highlight in an open drop-down)
	Left / Right     Scroll horizontally
	Home / End       Select first / last row
	F2               Edit the selected row's first editable cell
	Enter            Commit the edit, or the drop-down highlight
	Ctrl+Enter       Commit the edit (Enter adds a line in wrapped cells)
	Esc              Cancel the edit, or close the drop-down
	Ctrl+C           Copy the selected row as tab-separated text
	F4 / Alt+Down    Open or close the drop-down

# Logging

The package logs through log/slog. SetVerbose(true) enables debug records
for sorts, height rescans, cursor invalidation and edit transitions.
*/
package datalist
