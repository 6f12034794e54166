package datalist

// EditStartingEvent is raised before an edit session opens. Set Cancel to
// keep the cell closed.
type EditStartingEvent struct {
	Row    *Row
	Column int
	Cancel bool
}

// EditFinishingEvent is raised after the edit text parsed. Handlers may
// replace New, clear Commit to close without storing, or set Cancel to keep
// the session open.
type EditFinishingEvent struct {
	Row    *Row
	Column int
	Old    Value
	New    Value
	Commit bool
	Cancel bool
}

// EditFinishedEvent is raised after a committed value was stored.
type EditFinishedEvent struct {
	Row    *Row
	Column int
	Old    Value
	New    Value
}

// EditFailedEvent is raised when the edit text does not parse. Unless
// Cancel is set the edit text is cleared. The stored value never changes.
type EditFailedEvent struct {
	Row    *Row
	Column int
	Old    Value
	Text   string
	Err    error
	Cancel bool
}

// Events holds the notification callbacks of a list. Nil callbacks are
// skipped. Callbacks run on the caller's goroutine during event dispatch and
// may call back into the list; work they trigger that must not re-enter the
// current dispatch is queued until it returns.
type Events struct {
	SelectionChanged func(r *Row)
	RowClicked       func(r *Row, column int)
	RowDoubleClicked func(r *Row, column int)
	ColumnClicked    func(column int)

	EditStarting  func(e *EditStartingEvent)
	EditStarted   func(r *Row, column int)
	EditFinishing func(e *EditFinishingEvent)
	EditFinished  func(e EditFinishedEvent)
	EditFailed    func(e *EditFailedEvent)

	// Combo mode
	DroppingDown func(cancel *bool)
	DroppedDown  func()
}
