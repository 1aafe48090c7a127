package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glworks/scene"
)

// Mesh is scene geometry uploaded into a vertex array object.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
	indexed       bool
}

// NewMesh validates m and uploads it as static data.
func NewMesh(m *scene.Mesh) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}

	out := &Mesh{
		count:   int32(m.ElementCount()),
		indexed: len(m.Indices) > 0,
	}

	gl.GenVertexArrays(1, &out.vao)
	gl.BindVertexArray(out.vao)

	gl.GenBuffers(1, &out.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, out.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	if out.indexed {
		gl.GenBuffers(1, &out.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, out.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	stride := int32(m.Stride() * 4)
	for i, a := range m.Attribs {
		gl.VertexAttribPointerWithOffset(a.Location, int32(a.Size), gl.FLOAT, false, stride, uintptr(m.Offset(i)*4))
		gl.EnableVertexAttribArray(a.Location)
	}

	// The element buffer binding is VAO state; unbind the VAO first.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := CheckError("mesh upload"); err != nil {
		out.Delete()
		return nil, err
	}
	return out, nil
}

// Draw submits the mesh as triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the buffers and vertex array.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
