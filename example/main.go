// Example shows the demo task list in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Click a cell to select it, click it again to edit, drag header edges to
// resize and click a header to sort by it.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datalist"
	"github.com/go-theft-auto/datalist/backend/opengl"
	"github.com/go-theft-auto/datalist/internal/demo"
)

const (
	windowWidth  = 900
	windowHeight = 600
	windowTitle  = "datalist example"
	margin       = 12
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	list, err := demo.List(500,
		datalist.WithMeasurer(renderer.Atlas()),
		datalist.WithClipboard(opengl.GLFWClipboard{Window: window}),
	)
	if err != nil {
		return err
	}
	list.SetFocus(true)
	list.Events.EditFinished = func(e datalist.EditFinishedEvent) {
		fmt.Printf("%s: %s -> %s\n", list.Columns().At(e.Column).Name(), e.Old, e.New)
	}

	input := opengl.NewGLFWInputAdapter(window)
	host := datalist.NewHost(renderer, list, datalist.WithOrigin(margin, margin))

	window.SetFocusCallback(func(_ *glfw.Window, focused bool) { list.SetFocus(focused) })

	last := glfw.GetTime()
	for !window.ShouldClose() {
		input.Begin()
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		w, h := window.GetFramebufferSize()
		host.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		size := datalist.Vec2{X: float32(w - 2*margin), Y: float32(h - 2*margin)}
		if err := host.Frame(input.Input(), size, dt); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
