// Package glproc is the table of OpenGL entry points the demos depend on and
// the check that resolves them before the GL bindings are loaded.
package glproc

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"
)

// Resolver returns the address of a GL entry point, or nil if the driver
// does not provide it.
type Resolver func(name string) unsafe.Pointer

// Required lists the entry points used for shaders, buffers, vertex arrays,
// uniforms and framebuffers.
var Required = []string{
	"glCreateShader",
	"glShaderSource",
	"glCompileShader",
	"glGetShaderiv",
	"glGetShaderInfoLog",
	"glAttachShader",
	"glCreateProgram",
	"glLinkProgram",
	"glGetProgramiv",
	"glGetProgramInfoLog",
	"glDeleteShader",
	"glUseProgram",
	"glDeleteProgram",
	"glBindAttribLocation",
	"glGenVertexArrays",
	"glBindVertexArray",
	"glDeleteVertexArrays",
	"glGenBuffers",
	"glBindBuffer",
	"glBufferData",
	"glBufferSubData",
	"glDeleteBuffers",
	"glEnableVertexAttribArray",
	"glDisableVertexAttribArray",
	"glVertexAttribPointer",
	"glGetUniformLocation",
	"glUniform1i",
	"glUniform1f",
	"glUniform2f",
	"glUniform4f",
	"glUniformMatrix4fv",
	"glActiveTexture",
	"glGenerateMipmap",
	"glDrawElementsBaseVertex",
	"glGenFramebuffers",
	"glBindFramebuffer",
	"glFramebufferTexture2D",
	"glCheckFramebufferStatus",
	"glDrawBuffers",
}

// Extension is an optional capability and the entry point it brings.
type Extension struct {
	Name string
	Proc string
}

// Optional lists extensions that are reported but never required.
var Optional = []Extension{
	{Name: "GL_ARB_debug_output", Proc: "glDebugMessageCallbackARB"},
	{Name: "GL_EXT_draw_instanced", Proc: "glDrawArraysInstancedEXT"},
}

// MissingError names every entry point that failed to resolve.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing %d OpenGL entry point(s): %s", len(e.Names), strings.Join(e.Names, ", "))
}

// Check resolves every name and reports all missing ones in a single
// *MissingError. A nil resolver is an error.
func Check(names []string, resolve Resolver) error {
	if resolve == nil {
		return errors.New("no OpenGL proc resolver")
	}

	var missing []string
	for _, name := range names {
		if resolve(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Names: missing}
	}
	return nil
}

// Probe splits extensions into those the context supports and those it
// does not. An extension counts as supported only if its entry point
// resolves too.
func Probe(exts []Extension, supported func(string) bool, resolve Resolver) (have, lack []Extension) {
	for _, ext := range exts {
		if supported(ext.Name) && (ext.Proc == "" || resolve(ext.Proc) != nil) {
			have = append(have, ext)
		} else {
			lack = append(lack, ext)
		}
	}
	return have, lack
}
