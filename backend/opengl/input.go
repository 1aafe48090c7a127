package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glworks"
)

// InputAdapter adapts GLFW input to glworks.InputState.
type InputAdapter struct {
	window *glfw.Window
	input  *glworks.InputState
}

// NewInputAdapter creates a new GLFW input adapter and installs its
// callbacks on window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	adapter := &InputAdapter{
		window: window,
		input:  glworks.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update syncs the cursor position after events were polled.
// Edges recorded by the callbacks stay set until EndFrame.
func (a *InputAdapter) Update() *glworks.InputState {
	a.setCursor(a.window.GetCursorPos())
	return a.input
}

// setCursor stores a window-coordinate cursor position in framebuffer
// pixels, the space the UI lays out in.
func (a *InputAdapter) setCursor(x, y float64) {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	sx, sy := contentScale(ww, wh, fw, fh)
	a.input.SetMousePos(float32(x)*sx, float32(y)*sy)
}

// contentScale returns the framebuffer to window size ratio per axis.
// A minimized window (zero size) reports 1.
func contentScale(winW, winH, fbW, fbH int) (sx, sy float32) {
	sx, sy = 1, 1
	if winW > 0 && fbW > 0 {
		sx = float32(fbW) / float32(winW)
	}
	if winH > 0 && fbH > 0 {
		sy = float32(fbH) / float32(winH)
	}
	return sx, sy
}

// EndFrame clears the per-frame edges once the frame has consumed them.
func (a *InputAdapter) EndFrame() {
	a.input.Reset()
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == glworks.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *InputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.setCursor(xpos, ypos)
}

// glfwKeyToKey maps GLFW keys to toolkit keys.
func glfwKeyToKey(key glfw.Key) glworks.Key {
	switch key {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return glworks.KeyEnter
	case glfw.KeyEscape:
		return glworks.KeyEscape
	case glfw.KeySpace:
		return glworks.KeySpace
	default:
		return glworks.KeyNone
	}
}

// glfwMouseButtonToButton maps GLFW mouse buttons to toolkit buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) glworks.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return glworks.MouseButtonLeft
	case glfw.MouseButtonRight:
		return glworks.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return glworks.MouseButtonMiddle
	default:
		return -1
	}
}
