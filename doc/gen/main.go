// Command gen renders the demo list in a few states, captures framebuffer
// pixels and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datalist"
	"github.com/go-theft-auto/datalist/backend/opengl"
	"github.com/go-theft-auto/datalist/internal/demo"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one captured list state.
type screenshot struct {
	name   string
	width  int
	height int
	opts   []datalist.Option
	setup  func(l *datalist.DataList) error
	frames int // 0 = 2
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
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(900, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(900, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// The hidden window stays at 900x600; only the projection changes.
	renderer.Resize(s.width, s.height)

	opts := append([]datalist.Option{datalist.WithMeasurer(renderer.Atlas())}, s.opts...)
	l, err := demo.List(40, opts...)
	if err != nil {
		return err
	}
	l.SetFocus(true)
	if s.setup != nil {
		if err := s.setup(l); err != nil {
			return err
		}
	}
	host := datalist.NewHost(renderer, l)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	size := datalist.Vec2{X: float32(s.width), Y: float32(s.height)}
	for range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := host.Frame(nil, size, 1.0/60.0); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL rows run bottom-up.
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	rowLen := s.width * 4
	for y := range s.height {
		src := (s.height - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	selectRow := func(i int) func(l *datalist.DataList) error {
		return func(l *datalist.DataList) error {
			l.Select(l.Rows().At(i))
			return nil
		}
	}
	return []screenshot{
		{name: "list_dark", width: 820, height: 360, setup: selectRow(2)},
		{name: "list_light", width: 820, height: 360, opts: []datalist.Option{datalist.WithStyle(datalist.DefaultStyle())}, setup: selectRow(2)},
		{name: "list_unfocused", width: 820, height: 240, setup: func(l *datalist.DataList) error {
			l.Select(l.Rows().At(1))
			l.SetFocus(false)
			return nil
		}},
		{name: "list_scrolled", width: 600, height: 300, setup: func(l *datalist.DataList) error {
			last := l.Rows().At(l.Rows().Len() - 1)
			l.Select(last)
			l.EnsureRowInView(last, true, false)
			return nil
		}},
		{name: "edit", width: 820, height: 240, setup: func(l *datalist.DataList) error {
			r := l.Rows().At(1)
			l.Select(r)
			return l.StartEdit(r, demo.ColTask)
		}},
		{name: "sort_by_task", width: 820, height: 300, setup: func(l *datalist.DataList) error {
			if err := l.SetSortPriority(demo.ColTask, 0); err != nil {
				return err
			}
			return l.Sort()
		}},
		{name: "null_cells", width: 820, height: 240, opts: []datalist.Option{datalist.WithShowNull(true)}},
		{name: "read_only", width: 820, height: 240, opts: []datalist.Option{datalist.WithReadOnly(true)}},
	}
}
