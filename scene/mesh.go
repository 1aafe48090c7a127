// Package scene holds the demo geometry, the per-frame animation state and
// the model/view/projection setup shared by the 3D demos.
package scene

import (
	"errors"
	"fmt"
)

// Attrib describes one vertex attribute: the shader location and the number
// of float components it takes.
type Attrib struct {
	Location uint32
	Size     int
}

// Mesh is interleaved float vertex data with optional indices.
// With no indices the vertices are drawn in order as triangles.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Attribs  []Attrib
}

// Stride returns the number of floats per vertex.
func (m *Mesh) Stride() int {
	n := 0
	for _, a := range m.Attribs {
		n += a.Size
	}
	return n
}

// Offset returns the float offset of attribute i within a vertex.
func (m *Mesh) Offset(i int) int {
	n := 0
	for _, a := range m.Attribs[:i] {
		n += a.Size
	}
	return n
}

// VertexCount returns the number of whole vertices.
func (m *Mesh) VertexCount() int {
	s := m.Stride()
	if s == 0 {
		return 0
	}
	return len(m.Vertices) / s
}

// ElementCount returns how many elements a draw call submits.
func (m *Mesh) ElementCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Validate checks the layout and that every index names a vertex.
func (m *Mesh) Validate() error {
	s := m.Stride()
	if s == 0 {
		return errors.New("mesh has no vertex attributes")
	}
	for _, a := range m.Attribs {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("attribute %d: size %d out of range", a.Location, a.Size)
		}
	}
	if len(m.Vertices)%s != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of stride %d", len(m.Vertices), s)
	}
	if m.ElementCount()%3 != 0 {
		return fmt.Errorf("%d elements do not form whole triangles", m.ElementCount())
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}
