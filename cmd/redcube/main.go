// Redcube spins a flat red indexed cube about (1, 1, 0) under a perspective
// projection.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glworks"
	"github.com/go-theft-auto/glworks/backend/opengl"
	"github.com/go-theft-auto/glworks/internal/config"
	"github.com/go-theft-auto/glworks/internal/demo"
	"github.com/go-theft-auto/glworks/mat4"
	"github.com/go-theft-auto/glworks/scene"
)

const vertexShader = `
#version 410 core
layout (location = 0) in vec3 position;

uniform mat4 mvp;

void main() {
    gl_Position = mvp * vec4(position, 1.0);
}
`

const fragmentShader = `
#version 410 core
uniform vec4 color;
out vec4 FragColor;

void main() {
    FragColor = color;
}
`

func init() {
	runtime.LockOSThread()
}

func main() {
	demo.Main(run)
}

func run() error {
	base := config.Default("OpenGL Cube")
	base.ClearColor = [4]float32{0.129837, 0.283764, 0.54235, 1}
	base.Distance = 5
	base.SpinAxis = [3]float32{1, 1, 0}

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], base)
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

	cube, err := opengl.NewMesh(scene.IndexedCube())
	if err != nil {
		return err
	}
	defer cube.Delete()

	cam := scene.Camera{
		FovY:     mat4.Radians(cfg.FovDeg),
		Near:     cfg.Near,
		Far:      cfg.Far,
		Distance: cfg.Distance,
	}
	spin := scene.NewAnimation(cfg.SpinDegPerSec)

	gl.Enable(gl.DEPTH_TEST)

	return demo.Loop(win, cfg, func(f opengl.Frame) error {
		dt := spin.Step(f.Now)
		glworks.Logger.Debug("frame", "dt", dt, "angle", spin.Angle)

		demo.Clear(cfg.ClearColor, true)

		prog.Use()
		prog.SetMat4("mvp", cam.MVP(spin.Angle, cfg.SpinAxis, scene.Aspect(f.Width, f.Height)))
		prog.SetVec4("color", [4]float32{1, 0, 0, 1})
		cube.Draw()
		return opengl.CheckError("draw cube")
	})
}
