// Texcube spins a textured cube. The texture comes from -texture, or a
// generated gradient when none is given.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glworks"
	"github.com/go-theft-auto/glworks/backend/opengl"
	"github.com/go-theft-auto/glworks/internal/config"
	"github.com/go-theft-auto/glworks/internal/demo"
	"github.com/go-theft-auto/glworks/internal/texture"
	"github.com/go-theft-auto/glworks/mat4"
	"github.com/go-theft-auto/glworks/raster"
	"github.com/go-theft-auto/glworks/scene"
)

const vertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec2 vTexCoord;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
    vTexCoord = aTexCoord;
}
`

const fragmentShader = `
#version 410 core
in vec2 vTexCoord;
out vec4 FragColor;

uniform sampler2D tex;

void main() {
    FragColor = texture(tex, vTexCoord);
}
`

func init() {
	runtime.LockOSThread()
}

func main() {
	demo.Main(run)
}

func run() error {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], config.Default("Textured Cube"))
	if err != nil {
		return err
	}

	img, err := loadImage(cfg.TexturePath)
	if err != nil {
		return err
	}

	win, err := demo.Open(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	prog, err := opengl.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	defer prog.Delete()

	cube, err := opengl.NewMesh(scene.TexturedCube())
	if err != nil {
		return err
	}
	defer cube.Delete()

	tex, err := opengl.NewTexture(img, opengl.TextureOptions{Mipmaps: true, FlipY: true})
	if err != nil {
		return err
	}
	defer tex.Delete()

	cam := scene.Camera{
		FovY:     mat4.Radians(cfg.FovDeg),
		Near:     cfg.Near,
		Far:      cfg.Far,
		Distance: cfg.Distance,
	}
	spin := scene.NewAnimation(cfg.SpinDegPerSec)

	gl.Enable(gl.DEPTH_TEST)

	return demo.Loop(win, cfg, func(f opengl.Frame) error {
		spin.Step(f.Now)
		demo.Clear(cfg.ClearColor, true)

		model, view, proj := cam.Transforms(spin.Angle, cfg.SpinAxis, scene.Aspect(f.Width, f.Height))
		prog.Use()
		prog.SetMat4("model", model)
		prog.SetMat4("view", view)
		prog.SetMat4("projection", proj)
		prog.SetInt("tex", 0)
		tex.Bind(0)
		cube.Draw()
		return opengl.CheckError("draw textured cube")
	})
}

// loadImage decodes path, or builds a gradient when path is empty.
func loadImage(path string) (*image.NRGBA, error) {
	if path != "" {
		img, err := texture.Load(path)
		if err != nil {
			return nil, fmt.Errorf("texture: %w", err)
		}
		glworks.Logger.Debug("texture loaded", "path", path, "size", img.Rect.Size())
		return img, nil
	}

	s, err := raster.NewSurface(256, 256, 24)
	if err != nil {
		return nil, err
	}
	raster.FillGradient(s)
	return texture.ToNRGBA(s), nil
}
