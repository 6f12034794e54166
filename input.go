package datalist

import "strings"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the list reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyF2
	KeyF4
	KeyCount
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Key repeat timing, in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState holds polled input for one frame. Frame-driven hosts (GLFW)
// fill it; HandleInput turns it into the list's discrete events.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	MouseWheelX float32
	MouseWheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyUp       [KeyCount]bool
	keyHoldTime [KeyCount]float32

	// Text typed this frame
	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{InputChars: make([]rune, 0, 16)}
}

// Reset clears the per-frame edges. Call it before collecting a frame's
// input.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position in list coordinates.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button state, latching press and release edges.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	was := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !was {
		s.mouseClicked[button] = true
	}
	if !down && was {
		s.mouseUp[button] = true
	}
}

// SetKey records a key state, latching press and release edges.
func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	was := s.keyDown[key]
	s.keyDown[key] = down
	if down && !was {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0
	}
	if !down && was {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat advances hold times. Call once per frame.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

func (s *InputState) MouseDown(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseDown[button]
}

func (s *InputState) MouseClicked(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseClicked[button]
}

func (s *InputState) MouseReleased(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseUp[button]
}

func (s *InputState) KeyDown(key Key) bool {
	return key >= 0 && key < KeyCount && s.keyDown[key]
}

func (s *InputState) KeyPressed(key Key) bool {
	return key >= 0 && key < KeyCount && s.keyPressed[key]
}

// KeyRepeated reports a press, then repeats after KeyRepeatDelay every
// KeyRepeatInterval while held.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}
	held := s.keyHoldTime[key]
	if held < KeyRepeatDelay {
		return false
	}
	since := held - KeyRepeatDelay
	// Assumes ~60fps for the previous frame.
	return int(since/KeyRepeatInterval) > int((since-0.016)/KeyRepeatInterval)
}

// Mods returns the held modifiers.
func (s *InputState) Mods() Modifiers {
	var m Modifiers
	if s.ModShift {
		m |= ModShift
	}
	if s.ModCtrl {
		m |= ModCtrl
	}
	if s.ModAlt {
		m |= ModAlt
	}
	return m
}

var keyNames = map[Key]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Ins",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyA:         "A",
	KeyC:         "C",
	KeyV:         "V",
	KeyX:         "X",
	KeyF2:        "F2",
	KeyF4:        "F4",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

// ParseKey maps a key name to a Key, ignoring case. Besides the names
// KeyName returns it accepts "pageup", "pagedown", "escape", "return" and
// "delete".
func ParseKey(name string) (Key, bool) {
	switch strings.ToLower(name) {
	case "pageup":
		return KeyPageUp, true
	case "pagedown":
		return KeyPageDown, true
	case "escape":
		return KeyEscape, true
	case "return":
		return KeyEnter, true
	case "delete":
		return KeyDelete, true
	}
	for k, n := range keyNames {
		if k != KeyNone && strings.EqualFold(n, name) {
			return k, true
		}
	}
	return KeyNone, false
}
