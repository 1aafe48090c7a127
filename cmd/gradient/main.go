// Gradient fills an off-screen surface with a color gradient and stretches
// it over the window. With -out it writes the stretched image and exits
// without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/glworks"
	"github.com/go-theft-auto/glworks/backend/opengl"
	"github.com/go-theft-auto/glworks/internal/config"
	"github.com/go-theft-auto/glworks/internal/demo"
	"github.com/go-theft-auto/glworks/internal/texture"
	"github.com/go-theft-auto/glworks/raster"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	demo.Main(run)
}

// surfaceFlags are the gradient-specific command-line options.
type surfaceFlags struct {
	bpp           int
	width, height int
	out           string
}

// registerFlags adds the surface options to fs. The surface defaults to a
// 640x480, 32 bits per pixel DIB.
func registerFlags(fs *flag.FlagSet) *surfaceFlags {
	sf := &surfaceFlags{}
	fs.IntVar(&sf.bpp, "bpp", 32, "Surface depth in bits per pixel (8, 15, 16, 24, 32)")
	fs.IntVar(&sf.width, "dib-width", 640, "Surface width")
	fs.IntVar(&sf.height, "dib-height", 480, "Surface height")
	fs.StringVar(&sf.out, "out", "", "Write the stretched surface to this file and exit")
	return sf
}

func run() error {
	sf := registerFlags(flag.CommandLine)

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], config.Default("Gradient"))
	if err != nil {
		return err
	}
	glworks.SetVerbose(cfg.Verbose)

	surface, err := raster.NewSurface(sf.width, sf.height, sf.bpp)
	if err != nil {
		return err
	}
	raster.FillGradient(surface)
	glworks.Logger.Debug("surface filled", "width", surface.Width, "height", surface.Height,
		"bpp", surface.BitsPerPixel, "stride", surface.Stride)

	if sf.out != "" {
		return raster.Save(sf.out, raster.Stretch(surface, cfg.Width, cfg.Height))
	}

	win, err := demo.Open(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	ui, err := demo.NewUI(cfg.Width, cfg.Height, glworks.DefaultStyle())
	if err != nil {
		return err
	}
	defer ui.Delete()

	var tex *opengl.Texture
	defer func() {
		if tex != nil {
			tex.Delete()
		}
	}()

	return demo.Loop(win, cfg, func(f opengl.Frame) error {
		if f.Width <= 0 || f.Height <= 0 {
			return nil
		}

		if tex == nil || tex.Width != f.Width || tex.Height != f.Height {
			if tex != nil {
				ui.Renderer.UnregisterRGBATexture(tex.ID)
				tex.Delete()
				tex = nil
			}
			img := texture.ToNRGBA(raster.Stretch(surface, f.Width, f.Height))
			t, err := opengl.NewTexture(img, opengl.TextureOptions{Nearest: true, Clamp: true})
			if err != nil {
				return fmt.Errorf("upload gradient: %w", err)
			}
			tex = t
			ui.Renderer.RegisterRGBATexture(tex.ID)
		}

		demo.Clear([4]float32{0, 0, 0, 1}, false)

		ctx := ui.Begin(f, 1.0/60.0)
		ctx.DrawList.AddImage(tex.ID, 0, 0, float32(f.Width), float32(f.Height), glworks.ColorWhite)
		return ui.End()
	})
}
