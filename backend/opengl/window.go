package opengl

import (
	"fmt"
	"image"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glworks"
	"github.com/go-theft-auto/glworks/internal/texture"
)

// WindowConfig describes the window to open.
type WindowConfig struct {
	Width, Height int
	Title         string
	SwapInterval  int // 1 = vsync, 0 = unthrottled
	Resizable     bool
	Hidden        bool // Offscreen windows for snapshots
}

// Frame is the state handed to the draw function once per frame.
type Frame struct {
	Width, Height int // Framebuffer size in pixels
	Now           time.Time
	Input         *glworks.InputState
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
type Window struct {
	glfw  *glfw.Window
	input *InputAdapter
}

// NewWindow initializes GLFW, opens a window, makes its context current and
// loads the GL bindings. Call from the main thread.
func NewWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, boolHint(!cfg.Hidden))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	if err := LoadGL(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	Logger().Debug("window created", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return &Window{glfw: window, input: NewInputAdapter(window)}, nil
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// Run pumps events and calls draw once per frame until the window is closed,
// Escape is pressed, or draw returns an error.
func (w *Window) Run(draw func(Frame) error) error {
	for !w.glfw.ShouldClose() {
		glfw.PollEvents()
		input := w.input.Update()

		if input.KeyPressed(glworks.KeyEscape) {
			w.glfw.SetShouldClose(true)
			break
		}

		fw, fh := w.glfw.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))

		err := draw(Frame{Width: fw, Height: fh, Now: time.Now(), Input: input})
		w.input.EndFrame()
		if err != nil {
			return err
		}

		w.glfw.SwapBuffers()
	}
	return nil
}

// Close asks the loop to stop after the current frame.
func (w *Window) Close() {
	w.glfw.SetShouldClose(true)
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.glfw.SetTitle(title)
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	return w.glfw.GetSize()
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.glfw.GetFramebufferSize()
}

// Snapshot reads the back buffer into an image with the top row first.
// Call it after drawing and before the buffers are swapped.
func (w *Window) Snapshot() (*image.NRGBA, error) {
	fw, fh := w.glfw.GetFramebufferSize()
	return ReadPixels(fw, fh)
}

// ReadPixels reads the bottom-left width x height pixels of the back buffer,
// flips them so the top row comes first and forces alpha to opaque.
func ReadPixels(width, height int) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if err := CheckError("read pixels"); err != nil {
		return nil, err
	}

	texture.FlipVertical(img)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xFF
	}
	return img, nil
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.glfw.Destroy()
	glfw.Terminate()
}
