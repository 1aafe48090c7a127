// Glclear creates an OpenGL context and clears it to one color every frame.
package main

import (
	"flag"
	"os"
	"runtime"

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
	base := config.Default("OpenGL Cube")
	base.ClearColor = [4]float32{0.5, 1.0, 0.3, 0}

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], base)
	if err != nil {
		return err
	}

	win, err := demo.Open(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	return demo.Loop(win, cfg, func(f opengl.Frame) error {
		demo.Clear(cfg.ClearColor, false)
		return opengl.CheckError("clear")
	})
}
