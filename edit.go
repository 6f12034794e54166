package datalist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// EditSession is the open in-cell edit.
type EditSession struct {
	Row      *Row
	Column   int
	Text     string
	Original Value
	// Choices lists the combo items for a combo box column.
	Choices []ComboItem
}

type pendingEdit struct {
	row       *Row
	col       int
	remaining float32
}

// maxDeferred bounds one drain of the deferred queue. Actions posted while
// draining run in the same drain until the bound is hit.
const maxDeferred = 64

// enter marks the start of an event dispatch. The returned func ends it and
// drains the deferred queue when the outermost dispatch returns.
func (l *DataList) enter() func() {
	l.depth++
	return func() {
		l.depth--
		if l.depth == 0 {
			l.drain()
		}
	}
}

// post queues fn to run after the current dispatch.
func (l *DataList) post(fn func()) {
	l.deferred = append(l.deferred, fn)
	if l.depth == 0 {
		l.drain()
	}
}

func (l *DataList) drain() {
	l.depth++
	defer func() { l.depth-- }()
	for n := 0; n < maxDeferred && len(l.deferred) > 0; n++ {
		fn := l.deferred[0]
		l.deferred[0] = nil
		l.deferred = l.deferred[1:]
		fn()
	}
	if len(l.deferred) == 0 {
		l.deferred = nil
	}
}

// Editing returns the open edit session, or nil.
func (l *DataList) Editing() *EditSession { return l.edit }

// SetEditText replaces the text of the open edit.
func (l *DataList) SetEditText(s string) {
	if l.edit != nil {
		l.edit.Text = s
	}
}

// PendingEdit reports the cell a second click armed, if the timer is still
// running.
func (l *DataList) PendingEdit() (*Row, int, bool) {
	if l.pending == nil {
		return nil, 0, false
	}
	return l.pending.row, l.pending.col, true
}

func (l *DataList) armPendingEdit(r *Row, col int) {
	l.pending = &pendingEdit{row: r, col: col, remaining: l.dblClickTime}
	if listVerbose() {
		l.log.Debug("edit armed", "row", r.id, "column", col)
	}
}

func (l *DataList) cancelPending() { l.pending = nil }

// Update advances the edit and tooltip timers by dt seconds. Hosts call it
// once per frame or tick.
func (l *DataList) Update(dt float32) {
	defer l.enter()()
	l.clock += dt
	if p := l.pending; p != nil {
		p.remaining -= dt
		if p.remaining <= 0 {
			l.pending = nil
			l.post(func() {
				if err := l.StartEdit(p.row, p.col); err != nil && !errors.Is(err, ErrEditCancelled) {
					l.log.Debug("deferred edit not started", "err", err)
				}
			})
		}
	}
	l.updateTooltip(dt)
}

// StartEdit opens an edit on a cell. EditStarting may cancel it. Checkbox
// columns do not open a session; see ToggleCheck.
func (l *DataList) StartEdit(r *Row, col int) error {
	defer l.enter()()
	c := l.cols.At(col)
	if c == nil {
		return fmt.Errorf("start edit %d: %w", col, ErrColumnRange)
	}
	if !l.rows.Contains(r) || !c.visible || !c.AllowEdit() || c.render == RenderCheckBox || l.combo.enabled || !l.enabled {
		return fmt.Errorf("start edit %s: %w", c.name, ErrNotEditable)
	}
	if l.edit != nil {
		if l.edit.Row == r && l.edit.Column == col {
			return nil
		}
		if err := l.FinishEdit(true); err != nil {
			return err
		}
	}
	l.cancelPending()

	ev := EditStartingEvent{Row: r, Column: col}
	if h := l.Events.EditStarting; h != nil {
		h(&ev)
	}
	if ev.Cancel {
		return ErrEditCancelled
	}
	l.view.EnsureVisible(r, true, false)
	l.ensureColumnVisible(c)

	v := l.Value(r, col)
	s := &EditSession{Row: r, Column: col, Original: v}
	if !v.IsNull() {
		s.Text = l.Text(r, col)
	}
	if c.render == RenderComboBox {
		s.Choices = c.combo.Items()
	}
	l.edit = s
	l.tooltip.hide()
	if listVerbose() {
		l.log.Debug("edit started", "row", r.id, "column", c.name)
	}
	if h := l.Events.EditStarted; h != nil {
		h(r, col)
	}
	return nil
}

// FinishEdit closes the open edit. Without commit the session closes and
// nothing is stored. With commit the text is parsed; a parse failure
// raises EditFailed and keeps the session open. EditFinishing may replace
// the value, skip storing it, or keep the session open.
func (l *DataList) FinishEdit(commit bool) error {
	defer l.enter()()
	s := l.edit
	if s == nil {
		return nil
	}
	if !commit {
		l.edit = nil
		if listVerbose() {
			l.log.Debug("edit cancelled", "row", s.Row.id, "column", s.Column)
		}
		return nil
	}

	c := l.cols.At(s.Column)
	nv, err := l.parseEdit(c, s.Text)
	if err != nil {
		ev := EditFailedEvent{Row: s.Row, Column: s.Column, Old: s.Original, Text: s.Text, Err: err}
		if h := l.Events.EditFailed; h != nil {
			h(&ev)
		}
		if !ev.Cancel {
			s.Text = ""
		}
		if listVerbose() {
			l.log.Debug("edit failed", "row", s.Row.id, "column", s.Column, "err", err)
		}
		return err
	}
	return l.finishValue(s.Row, s.Column, s.Original, nv, true)
}

// finishValue runs the finishing half of an edit for a parsed value. With
// session set it closes the open session when finishing is not cancelled.
func (l *DataList) finishValue(r *Row, col int, old, nv Value, session bool) error {
	ev := EditFinishingEvent{Row: r, Column: col, Old: old, New: nv, Commit: true}
	if h := l.Events.EditFinishing; h != nil {
		h(&ev)
	}
	if ev.Cancel {
		return ErrEditCancelled
	}
	if session {
		l.edit = nil
	}
	if !ev.Commit {
		return nil
	}
	if err := l.SetValue(r, col, ev.New); err != nil {
		return err
	}
	if listVerbose() {
		l.log.Debug("edit finished", "row", r.id, "column", col, "value", ev.New)
	}
	if h := l.Events.EditFinished; h != nil {
		h(EditFinishedEvent{Row: r, Column: col, Old: old, New: ev.New})
	}
	return nil
}

func (l *DataList) parseEdit(c *Column, text string) (Value, error) {
	if c.render != RenderComboBox {
		return ParseValue(c.valueType, text)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Null(), nil
	}
	id, ok := c.combo.Lookup(text)
	if !ok {
		return Null(), fmt.Errorf("%w: %q is not a choice", ErrParse, text)
	}
	switch c.valueType {
	case TypeShort:
		return Short(int16(id)), nil
	case TypeLong:
		return Long(int64(id)), nil
	}
	return Int(int32(id)), nil
}

// ToggleCheck flips a checkbox cell, raising the same start and finish
// events as a text edit.
func (l *DataList) ToggleCheck(r *Row, col int) error {
	defer l.enter()()
	c := l.cols.At(col)
	if c == nil {
		return fmt.Errorf("toggle %d: %w", col, ErrColumnRange)
	}
	if c.render != RenderCheckBox || !c.AllowEdit() || !l.rows.Contains(r) {
		return fmt.Errorf("toggle %s: %w", c.name, ErrNotEditable)
	}
	l.settleEdit()
	ev := EditStartingEvent{Row: r, Column: col}
	if h := l.Events.EditStarting; h != nil {
		h(&ev)
	}
	if ev.Cancel {
		return ErrEditCancelled
	}
	if h := l.Events.EditStarted; h != nil {
		h(r, col)
	}
	old := r.Value(col)
	return l.finishValue(r, col, old, Bool(!old.AsBool()), false)
}

// cancelEdit closes any edit without storing and drops a pending one.
func (l *DataList) cancelEdit() {
	l.cancelPending()
	if l.edit != nil {
		_ = l.FinishEdit(false)
	}
}

// settleEdit commits an open edit; when the commit fails the edit is
// dropped.
func (l *DataList) settleEdit() {
	l.cancelPending()
	if l.edit == nil {
		return
	}
	if err := l.FinishEdit(true); err != nil {
		l.log.Debug("edit dropped", "err", err)
		l.edit = nil
	}
}

// InputRune types into the open edit.
func (l *DataList) InputRune(ch rune) {
	if l.edit == nil || ch < ' ' {
		return
	}
	l.edit.Text += string(ch)
}

// backspace removes the last grapheme cluster of the edit text.
func (l *DataList) backspace() {
	if l.edit == nil || l.edit.Text == "" {
		return
	}
	text := l.edit.Text
	cut := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cut, _ = g.Positions()
	}
	l.edit.Text = text[:cut]
}
