package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// maxDrain bounds the error loop; a lost context can report errors forever.
const maxDrain = 32

// Error holds the GL error codes drained after an operation.
type Error struct {
	Context string
	Codes   []uint32
}

func (e *Error) Error() string {
	codes := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		codes[i] = fmt.Sprintf("0x%X %s", c, errorName(c))
	}
	return fmt.Sprintf("opengl error (%s): %s", e.Context, strings.Join(codes, ", "))
}

// CheckError drains glGetError, logging each code. It returns nil when the
// error queue was empty.
func CheckError(context string) error {
	return drainErrors(gl.GetError, context)
}

func drainErrors(next func() uint32, context string) error {
	var codes []uint32
	for i := 0; i < maxDrain; i++ {
		code := next()
		if code == gl.NO_ERROR {
			break
		}
		Logger().Error(fmt.Sprintf("[OpenGL Error] (%s): 0x%X", context, code), "name", errorName(code))
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	return &Error{Context: context, Codes: codes}
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "unknown"
	}
}
