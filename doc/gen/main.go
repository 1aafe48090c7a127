// Command gen renders every widget with sample data in a hidden window,
// reads back the framebuffer and saves PNG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glworks"
	"github.com/go-theft-auto/glworks/backend/opengl"
	"github.com/go-theft-auto/glworks/internal/texture"
	"github.com/go-theft-auto/glworks/raster"
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

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                     // filename without extension
	width  int                        // viewport width
	height int                        // viewport height
	style  func() glworks.Style       // nil = DefaultStyle
	draw   func(ctx *glworks.Context) // widget drawing function
	frames int                        // extra frames to render (0 = default 2)
}

func run() error {
	// The hidden window stays at 800x600, larger than every screenshot.
	win, err := opengl.NewWindow(opengl.WindowConfig{
		Width:  800,
		Height: 600,
		Title:  "screenshot-gen",
		Hidden: true,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	atlas := glworks.NewFontAtlas()
	renderer, err := opengl.NewRenderer(800, 600, atlas)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	checker, err := opengl.NewTexture(texture.Checkerboard(64, 8,
		[4]uint8{255, 255, 255, 255}, [4]uint8{64, 64, 64, 255}), opengl.TextureOptions{Nearest: true})
	if err != nil {
		return err
	}
	defer checker.Delete()
	renderer.RegisterRGBATexture(checker.ID)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots(checker.ID)

	for _, s := range shots {
		if err := capture(renderer, atlas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.png (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, atlas *glworks.FontAtlas, s screenshot, outDir string) error {
	// Only update the renderer projection. Resizing the window is processed
	// asynchronously and would leave the framebuffer and scissor out of step.
	renderer.Resize(s.width, s.height)

	style := glworks.DefaultStyle()
	if s.style != nil {
		style = s.style()
	}

	// Fresh GUI per screenshot so state does not leak between captures.
	ui := glworks.New(renderer, glworks.WithStyle(style), glworks.WithFontAtlas(atlas))
	bg := glworks.Floats(style.WindowBgColor)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(bg[0], bg[1], bg[2], 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := glworks.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := ui.Begin(&glworks.InputState{}, displaySize, 1.0/60.0)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	img, err := opengl.ReadPixels(s.width, s.height)
	if err != nil {
		return err
	}

	return raster.Save(filepath.Join(outDir, s.name+".png"), img)
}

func buildScreenshots(imageID uint32) []screenshot {
	return []screenshot{
		{
			name: "text", width: 300, height: 80,
			draw: func(ctx *glworks.Context) {
				ctx.Text("Plain text")
				ctx.TextColored("Colored text", glworks.ColorYellow)
			},
		},
		{
			name: "hello", width: 300, height: 120, style: glworks.ClassicStyle,
			draw: func(ctx *glworks.Context) {
				ctx.TextCentered(glworks.Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}, "Hello, Windows 98!")
			},
		},
		{
			name: "buttons", width: 400, height: 160, style: glworks.ClassicStyle,
			draw: func(ctx *glworks.Context) {
				ctx.Label(glworks.Rect{X: 10, Y: 10, W: 100, H: 20}, "Buttons")
				ctx.ButtonAt("Click Me", glworks.Rect{X: 50, Y: 50, W: 100, H: 30})
				ctx.ButtonAt("Don't Click Me", glworks.Rect{X: 50, Y: 100, W: 100, H: 30})
			},
		},
		{
			name: "button_flow", width: 200, height: 120,
			draw: func(ctx *glworks.Context) {
				ctx.Button("First")
				ctx.Button("Second")
				ctx.Button("Third")
			},
		},
		{
			name: "image", width: 120, height: 120,
			draw: func(ctx *glworks.Context) {
				ctx.Image(imageID, 96, 96)
			},
		},
		{
			name: "message_box", width: 400, height: 300, style: glworks.ClassicStyle,
			draw: func(ctx *glworks.Context) {
				ctx.ButtonAt("Click Me", glworks.Rect{X: 50, Y: 50, W: 100, H: 30})
				ctx.MessageBox("Info", "You clicked the button!")
			},
		},
	}
}
