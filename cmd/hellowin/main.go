// Hellowin opens a plain window and draws one line of text centered in the
// client area.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/go-theft-auto/glworks"
	"github.com/go-theft-auto/glworks/backend/opengl"
	"github.com/go-theft-auto/glworks/internal/config"
	"github.com/go-theft-auto/glworks/internal/demo"
)

const greeting = "Hello, Windows 98!"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	demo.Main(run)
}

func run() error {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], config.Default("The Hello Program"))
	if err != nil {
		return err
	}

	win, err := demo.Open(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	style := glworks.ClassicStyle()
	ui, err := demo.NewUI(cfg.Width, cfg.Height, style)
	if err != nil {
		return err
	}
	defer ui.Delete()

	bg := glworks.Floats(style.WindowBgColor)

	return demo.Loop(win, cfg, func(f opengl.Frame) error {
		demo.Clear(bg, false)

		ctx := ui.Begin(f, 1.0/60.0)
		ctx.TextCentered(glworks.Rect{W: float32(f.Width), H: float32(f.Height)}, greeting)
		return ui.End()
	})
}
