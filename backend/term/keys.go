package term

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/datalist"
)

// teaKeyNames are the names bubbletea gives keys in KeyMsg.String.
var teaKeyNames = map[datalist.Key]string{
	datalist.KeyTab:       "tab",
	datalist.KeyLeft:      "left",
	datalist.KeyRight:     "right",
	datalist.KeyUp:        "up",
	datalist.KeyDown:      "down",
	datalist.KeyPageUp:    "pgup",
	datalist.KeyPageDown:  "pgdown",
	datalist.KeyHome:      "home",
	datalist.KeyEnd:       "end",
	datalist.KeyInsert:    "insert",
	datalist.KeyDelete:    "delete",
	datalist.KeyBackspace: "backspace",
	datalist.KeySpace:     " ",
	datalist.KeyEnter:     "enter",
	datalist.KeyEscape:    "esc",
	datalist.KeyA:         "a",
	datalist.KeyC:         "c",
	datalist.KeyV:         "v",
	datalist.KeyX:         "x",
	datalist.KeyF2:        "f2",
	datalist.KeyF4:        "f4",
}

// TeaKey formats a chord the way bubbletea reports it, for example
// "ctrl+c" or "alt+down".
func TeaKey(c datalist.KeyChord) string {
	name, ok := teaKeyNames[c.Key]
	if !ok {
		return ""
	}
	if c.Mods&datalist.ModShift != 0 {
		name = "shift+" + name
	}
	if c.Mods&datalist.ModCtrl != 0 {
		name = "ctrl+" + name
	}
	if c.Mods&datalist.ModAlt != 0 {
		name = "alt+" + name
	}
	return name
}

var actionHelp = []struct {
	action datalist.Action
	desc   string
}{
	{datalist.ActionUp, "up"},
	{datalist.ActionDown, "down"},
	{datalist.ActionPageUp, "page up"},
	{datalist.ActionPageDown, "page down"},
	{datalist.ActionFirst, "first"},
	{datalist.ActionLast, "last"},
	{datalist.ActionLeft, "scroll left"},
	{datalist.ActionRight, "scroll right"},
	{datalist.ActionEdit, "edit"},
	{datalist.ActionAccept, "accept"},
	{datalist.ActionCommit, "commit"},
	{datalist.ActionCancel, "cancel"},
	{datalist.ActionCopy, "copy row"},
	{datalist.ActionDropDown, "drop down"},
}

// KeyMap is a datalist key map as bubbles key bindings, plus the host's
// own quit and help keys. It implements help.KeyMap.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	actions []key.Binding
	chords  map[string]datalist.KeyChord
}

// NewKeyMap builds bindings from the chords bound in km.
func NewKeyMap(km *datalist.KeyMap) KeyMap {
	k := KeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+q"), key.WithHelp("q", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		chords: make(map[string]datalist.KeyChord),
	}
	for _, ah := range actionHelp {
		var keys, labels []string
		for _, c := range km.Chords(ah.action) {
			name := TeaKey(c)
			if name == "" {
				continue
			}
			keys = append(keys, name)
			labels = append(labels, c.String())
			k.chords[name] = c
		}
		if len(keys) == 0 {
			continue
		}
		k.actions = append(k.actions, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), ah.desc),
		))
	}
	return k
}

// Chord returns the list chord a key message stands for, if it is bound.
func (k KeyMap) Chord(msg tea.KeyMsg) (datalist.KeyChord, bool) {
	c, ok := k.chords[msg.String()]
	return c, ok
}

func (k KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, 6)
	for _, b := range k.actions {
		switch b.Help().Desc {
		case "up", "down", "edit", "copy row":
			out = append(out, b)
		}
	}
	return append(out, k.Help, k.Quit)
}

func (k KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for i := 0; i < len(k.actions); i += 4 {
		cols = append(cols, k.actions[i:min(i+4, len(k.actions))])
	}
	return append(cols, []key.Binding{k.Help, k.Quit})
}
