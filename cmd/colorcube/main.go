// Colorcube spins a cube with one color per face, passing the model, view
// and projection matrices as separate uniforms.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glworks/backend/opengl"
	"github.com/go-theft-auto/glworks/internal/config"
	"github.com/go-theft-auto/glworks/internal/demo"
	"github.com/go-theft-auto/glworks/mat4"
	"github.com/go-theft-auto/glworks/scene"
)

const vertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 vColor;

void main() {
    gl_Position = projection * view * model * vec4(aPos, 1.0);
    vColor = aColor;
}
`

const fragmentShader = `
#version 410 core
in vec3 vColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(vColor, 1.0);
}
`

func init() {
	runtime.LockOSThread()
}

func main() {
	demo.Main(run)
}

func run() error {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], config.Default("OpenGL Cube"))
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

	cube, err := opengl.NewMesh(scene.ColoredCube())
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
		spin.Step(f.Now)
		demo.Clear(cfg.ClearColor, true)

		model, view, proj := cam.Transforms(spin.Angle, cfg.SpinAxis, scene.Aspect(f.Width, f.Height))
		prog.Use()
		prog.SetMat4("model", model)
		prog.SetMat4("view", view)
		prog.SetMat4("projection", proj)
		cube.Draw()
		return opengl.CheckError("draw cube")
	})
}
