package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glworks"
	"github.com/go-theft-auto/glworks/internal/glproc"
)

// Logger returns the toolkit logger used by the backend.
func Logger() *slog.Logger {
	return glworks.Logger
}

// LoadGL resolves the GL entry points for the current context and loads the
// bindings. Every missing required entry point is reported in one error.
// Optional extensions are only logged.
func LoadGL() error {
	if err := glproc.Check(glproc.Required, glfw.GetProcAddress); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	have, lack := glproc.Probe(glproc.Optional, glfw.ExtensionSupported, glfw.GetProcAddress)
	for _, ext := range have {
		Logger().Info("extension supported", "name", ext.Name)
	}
	for _, ext := range lack {
		Logger().Warn("extension not supported", "name", ext.Name)
	}

	Logger().Debug("opengl context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return nil
}
