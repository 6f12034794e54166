package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datalist"
)

// GLFWInputAdapter collects GLFW window events into a datalist.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *datalist.InputState
}

// NewGLFWInputAdapter installs key, char, button, scroll and cursor
// callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  datalist.NewInputState(),
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Begin clears last frame's edges. Call it before glfw.PollEvents.
func (a *GLFWInputAdapter) Begin() {
	a.input.Reset()
}

// Input samples the cursor and modifiers and returns the frame's input.
// Call it after glfw.PollEvents.
func (a *GLFWInputAdapter) Input() *datalist.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	a.input.ModCtrl = a.held(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.held(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.held(glfw.KeyLeftAlt, glfw.KeyRightAlt)
	return a.input
}

func (a *GLFWInputAdapter) held(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := mapKey(key)
	if k == datalist.KeyNone {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := mapButton(button)
	if !ok {
		return
	}
	a.input.SetMouseButton(b, action == glfw.Press)
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

var glfwKeys = map[glfw.Key]datalist.Key{
	glfw.KeyTab:       datalist.KeyTab,
	glfw.KeyLeft:      datalist.KeyLeft,
	glfw.KeyRight:     datalist.KeyRight,
	glfw.KeyUp:        datalist.KeyUp,
	glfw.KeyDown:      datalist.KeyDown,
	glfw.KeyPageUp:    datalist.KeyPageUp,
	glfw.KeyPageDown:  datalist.KeyPageDown,
	glfw.KeyHome:      datalist.KeyHome,
	glfw.KeyEnd:       datalist.KeyEnd,
	glfw.KeyInsert:    datalist.KeyInsert,
	glfw.KeyDelete:    datalist.KeyDelete,
	glfw.KeyBackspace: datalist.KeyBackspace,
	glfw.KeySpace:     datalist.KeySpace,
	glfw.KeyEnter:     datalist.KeyEnter,
	glfw.KeyKPEnter:   datalist.KeyEnter,
	glfw.KeyEscape:    datalist.KeyEscape,
	glfw.KeyA:         datalist.KeyA,
	glfw.KeyC:         datalist.KeyC,
	glfw.KeyV:         datalist.KeyV,
	glfw.KeyX:         datalist.KeyX,
	glfw.KeyF2:        datalist.KeyF2,
	glfw.KeyF4:        datalist.KeyF4,
}

func mapKey(key glfw.Key) datalist.Key {
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return datalist.KeyNone
}

func mapButton(button glfw.MouseButton) (datalist.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return datalist.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return datalist.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return datalist.MouseButtonMiddle, true
	}
	return 0, false
}

// GLFWClipboard reads and writes the clipboard through a GLFW window.
type GLFWClipboard struct {
	Window *glfw.Window
}

func (c GLFWClipboard) GetText() string {
	return c.Window.GetClipboardString()
}

func (c GLFWClipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}
