// Widgets shows a window with two push buttons. Each opens a message box.
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

func init() {
	runtime.LockOSThread()
}

func main() {
	demo.Main(run)
}

func run() error {
	base := config.Default("Window with Buttons")
	base.Width, base.Height = 400, 300

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], base)
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

	// Text of the open message box, empty when none is shown.
	var message string

	return demo.Loop(win, cfg, func(f opengl.Frame) error {
		demo.Clear(bg, false)

		ctx := ui.Begin(f, 1.0/60.0)
		ctx.Label(glworks.Rect{X: 10, Y: 10, W: 100, H: 20}, "Buttons")

		if ctx.ButtonAt("Click Me", glworks.Rect{X: 50, Y: 50, W: 100, H: 30}) {
			message = "You clicked the button!"
		}
		if ctx.ButtonAt("Don't Click Me", glworks.Rect{X: 50, Y: 100, W: 100, H: 30}) {
			message = "Button clicked"
		}

		if message != "" && ctx.MessageBox("Info", message) {
			message = ""
		}
		return ui.End()
	})
}
