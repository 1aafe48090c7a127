// Quad draws two indexed triangles forming a quad with a color per corner.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/go-theft-auto/glworks/backend/opengl"
	"github.com/go-theft-auto/glworks/internal/config"
	"github.com/go-theft-auto/glworks/internal/demo"
	"github.com/go-theft-auto/glworks/scene"
)

const vertexShader = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 vColor;

void main() {
    gl_Position = vec4(aPos, 1.0);
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
	base := config.Default("OpenGL Quad")
	base.ClearColor = [4]float32{0.238974, 0.2360, 0.23874, 1}

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

	quad, err := opengl.NewMesh(scene.ColoredQuad())
	if err != nil {
		return err
	}
	defer quad.Delete()

	return demo.Loop(win, cfg, func(f opengl.Frame) error {
		demo.Clear(cfg.ClearColor, false)
		prog.Use()
		quad.Draw()
		return opengl.CheckError("draw quad")
	})
}
