// Package demo holds the window setup and frame loop shared by the demo
// programs.
package demo

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glworks"
	"github.com/go-theft-auto/glworks/backend/opengl"
	"github.com/go-theft-auto/glworks/internal/config"
	"github.com/go-theft-auto/glworks/raster"
)

// Main runs fn and exits with status 1 if it fails.
func Main(fn func() error) {
	if err := fn(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Open applies the log level and opens the window described by cfg.
// Snapshot runs use a hidden window.
func Open(cfg config.Config) (*opengl.Window, error) {
	glworks.SetVerbose(cfg.Verbose)
	return opengl.NewWindow(opengl.WindowConfig{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        cfg.Title,
		SwapInterval: cfg.SwapInterval(),
		Resizable:    true,
		Hidden:       cfg.SnapshotPath != "",
	})
}

// Loop runs draw every frame. With a snapshot path configured, the first
// frame is saved there and the loop ends.
func Loop(w *opengl.Window, cfg config.Config, draw func(opengl.Frame) error) error {
	return w.Run(func(f opengl.Frame) error {
		if err := draw(f); err != nil {
			return err
		}
		if cfg.SnapshotPath == "" {
			return nil
		}

		img, err := w.Snapshot()
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		if err := raster.Save(cfg.SnapshotPath, img); err != nil {
			return err
		}
		glworks.Logger.Info("snapshot saved", "path", cfg.SnapshotPath, "width", f.Width, "height", f.Height)
		w.Close()
		return nil
	})
}

// Clear clears the color buffer, and the depth buffer when depth is set.
func Clear(c [4]float32, depth bool) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	mask := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// UI bundles the toolkit with its GL renderer.
type UI struct {
	*glworks.GUI
	Renderer *opengl.Renderer
}

// NewUI creates the UI renderer for the current context.
func NewUI(width, height int, style glworks.Style) (*UI, error) {
	atlas := glworks.NewFontAtlas()
	renderer, err := opengl.NewRenderer(width, height, atlas)
	if err != nil {
		return nil, fmt.Errorf("ui renderer: %w", err)
	}
	return &UI{
		GUI:      glworks.New(renderer, glworks.WithStyle(style), glworks.WithFontAtlas(atlas)),
		Renderer: renderer,
	}, nil
}

// Begin resizes the renderer to the frame and starts a UI frame.
func (u *UI) Begin(f opengl.Frame, dt float32) *glworks.Context {
	u.Resize(f.Width, f.Height)
	return u.GUI.Begin(f.Input, glworks.Vec2{X: float32(f.Width), Y: float32(f.Height)}, dt)
}

// Delete releases the renderer.
func (u *UI) Delete() {
	u.Renderer.Delete()
}
