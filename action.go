package datalist

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Action names a list command that keys can be bound to.
type Action string

const (
	ActionPageUp   Action = "page_up"
	ActionPageDown Action = "page_down"
	ActionUp       Action = "up"
	ActionDown     Action = "down"
	ActionLeft     Action = "left"
	ActionRight    Action = "right"
	ActionFirst    Action = "first"
	ActionLast     Action = "last"
	ActionCommit   Action = "commit"
	ActionAccept   Action = "accept"
	ActionCancel   Action = "cancel"
	ActionCopy     Action = "copy"
	ActionEdit     Action = "edit"
	ActionDropDown Action = "drop_down"
)

// Actions returns every action in a stable order.
func Actions() []Action {
	return []Action{
		ActionPageUp, ActionPageDown, ActionUp, ActionDown, ActionLeft, ActionRight,
		ActionFirst, ActionLast, ActionCommit, ActionAccept, ActionCancel,
		ActionCopy, ActionEdit, ActionDropDown,
	}
}

// KeyChord is a key with the modifiers held.
type KeyChord struct {
	Key  Key
	Mods Modifiers
}

func (c KeyChord) String() string {
	var parts []string
	if c.Mods&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if c.Mods&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if c.Mods&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(append(parts, strings.ToLower(KeyName(c.Key))), "+")
}

// ParseKeyChord parses chords like "ctrl+c", "pgdn" or "alt+down".
func ParseKeyChord(s string) (KeyChord, error) {
	var c KeyChord
	fields := strings.Split(strings.TrimSpace(s), "+")
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if i < len(fields)-1 {
			switch strings.ToLower(f) {
			case "ctrl", "control":
				c.Mods |= ModCtrl
			case "alt":
				c.Mods |= ModAlt
			case "shift":
				c.Mods |= ModShift
			default:
				return KeyChord{}, fmt.Errorf("key chord %q: unknown modifier %q", s, f)
			}
			continue
		}
		k, ok := ParseKey(f)
		if !ok {
			return KeyChord{}, fmt.Errorf("key chord %q: unknown key %q", s, f)
		}
		c.Key = k
	}
	return c, nil
}

// KeyMap binds chords to actions. Several chords may share an action.
type KeyMap struct {
	bindings map[KeyChord]Action
}

// NewKeyMap returns an empty key map.
func NewKeyMap() *KeyMap {
	return &KeyMap{bindings: make(map[KeyChord]Action)}
}

// DefaultKeyMap returns the standard list keys.
func DefaultKeyMap() *KeyMap {
	m := NewKeyMap()
	m.Bind(KeyChord{Key: KeyPageUp}, ActionPageUp)
	m.Bind(KeyChord{Key: KeyPageDown}, ActionPageDown)
	m.Bind(KeyChord{Key: KeyUp}, ActionUp)
	m.Bind(KeyChord{Key: KeyDown}, ActionDown)
	m.Bind(KeyChord{Key: KeyLeft}, ActionLeft)
	m.Bind(KeyChord{Key: KeyRight}, ActionRight)
	m.Bind(KeyChord{Key: KeyHome}, ActionFirst)
	m.Bind(KeyChord{Key: KeyEnd}, ActionLast)
	m.Bind(KeyChord{Key: KeyEnter}, ActionAccept)
	m.Bind(KeyChord{Key: KeyEnter, Mods: ModCtrl}, ActionCommit)
	m.Bind(KeyChord{Key: KeyEscape}, ActionCancel)
	m.Bind(KeyChord{Key: KeyC, Mods: ModCtrl}, ActionCopy)
	m.Bind(KeyChord{Key: KeyF2}, ActionEdit)
	m.Bind(KeyChord{Key: KeyF4}, ActionDropDown)
	m.Bind(KeyChord{Key: KeyDown, Mods: ModAlt}, ActionDropDown)
	return m
}

// Bind maps a chord to an action, replacing any previous binding.
func (m *KeyMap) Bind(c KeyChord, a Action) { m.bindings[c] = a }

// Unbind removes a chord.
func (m *KeyMap) Unbind(c KeyChord) { delete(m.bindings, c) }

// Rebind replaces every chord bound to a with the given chords.
func (m *KeyMap) Rebind(a Action, chords ...KeyChord) {
	for c, b := range m.bindings {
		if b == a {
			delete(m.bindings, c)
		}
	}
	for _, c := range chords {
		m.bindings[c] = a
	}
}

// Lookup returns the action bound to a chord.
func (m *KeyMap) Lookup(c KeyChord) (Action, bool) {
	a, ok := m.bindings[c]
	return a, ok
}

// Chords returns the chords bound to an action, sorted by name.
func (m *KeyMap) Chords(a Action) []KeyChord {
	var out []KeyChord
	for c, b := range m.bindings {
		if b == a {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(x, y KeyChord) int { return strings.Compare(x.String(), y.String()) })
	return out
}

// actionEntry is a list command with an optional guard.
type actionEntry struct {
	handler   func()
	condition func() bool
}

// actions returns the command table. Entries are tried in order for an
// action; the first whose condition holds runs.
func (l *DataList) actions() map[Action][]actionEntry {
	editing := func() bool { return l.edit != nil }
	dropped := func() bool { return l.combo.dropped }
	closed := func() bool { return l.combo.enabled && !l.combo.dropped }
	idle := func() bool { return l.edit == nil && !closed() }

	return map[Action][]actionEntry{
		ActionPageUp:   {{handler: func() { l.view.ScrollBy(-l.view.height) }, condition: idle}},
		ActionPageDown: {{handler: func() { l.view.ScrollBy(l.view.height) }, condition: idle}},
		ActionUp:       {{handler: func() { l.moveSelection(-1) }, condition: idle}},
		ActionDown: {
			{handler: func() { l.DropDown() }, condition: closed},
			{handler: func() { l.moveSelection(1) }, condition: idle},
		},
		ActionLeft:  {{handler: func() { l.view.HScrollTo(l.view.HScroll.Value - l.view.HScroll.LargeChange) }, condition: idle}},
		ActionRight: {{handler: func() { l.view.HScrollTo(l.view.HScroll.Value + l.view.HScroll.LargeChange) }, condition: idle}},
		ActionFirst: {{handler: func() { l.selectEdge(false) }, condition: idle}},
		ActionLast:  {{handler: func() { l.selectEdge(true) }, condition: idle}},
		ActionCommit: {
			{handler: func() { _ = l.FinishEdit(true) }, condition: editing},
		},
		ActionAccept: {
			{handler: l.acceptEdit, condition: editing},
			{handler: func() { l.CloseDropDown(true) }, condition: dropped},
			{handler: func() { l.DropDown() }, condition: closed},
		},
		ActionCancel: {
			{handler: func() { _ = l.FinishEdit(false) }, condition: editing},
			{handler: func() { l.CloseDropDown(false) }, condition: dropped},
		},
		ActionCopy: {{handler: func() { l.CopySelection() }}},
		ActionEdit: {{handler: l.editSelection, condition: func() bool { return l.edit == nil && l.sel != nil }}},
		ActionDropDown: {
			{handler: func() { l.CloseDropDown(false) }, condition: dropped},
			{handler: func() { l.DropDown() }, condition: closed},
		},
	}
}

// Perform runs an action. Returns whether a handler ran.
func (l *DataList) Perform(a Action) bool {
	defer l.enter()()
	for _, e := range l.actions()[a] {
		if e.condition != nil && !e.condition() {
			continue
		}
		e.handler()
		return true
	}
	return false
}

// acceptEdit commits on Enter, except in wrapped columns where Enter is a
// line break.
func (l *DataList) acceptEdit() {
	if c := l.cols.At(l.edit.Column); c != nil && c.IsVariableHeight() {
		l.edit.Text += "\n"
		return
	}
	_ = l.FinishEdit(true)
}

// editSelection opens an edit on the selected row's first editable column.
func (l *DataList) editSelection() {
	for i, c := range l.cols.All() {
		if !c.visible || !c.AllowEdit() {
			continue
		}
		if c.render == RenderCheckBox {
			if !l.sel.Value(i).IsNull() {
				_ = l.ToggleCheck(l.sel, i)
			}
			return
		}
		if err := l.StartEdit(l.sel, i); err == nil || errors.Is(err, ErrEditCancelled) {
			return
		}
	}
}
