package scene

import (
	"math"
	"testing"
	"time"

	"github.com/go-theft-auto/glworks/mat4"
)

func TestGeometryValid(t *testing.T) {
	tests := []struct {
		name     string
		mesh     *Mesh
		stride   int
		vertices int
		elements int
	}{
		{"IndexedCube", IndexedCube(), 3, 8, 36},
		{"ColoredQuad", ColoredQuad(), 6, 4, 6},
		{"TexturedCube", TexturedCube(), 5, 36, 36},
		{"ColoredCube", ColoredCube(), 6, 36, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mesh.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if got := tt.mesh.Stride(); got != tt.stride {
				t.Errorf("Expected stride %d, got %d", tt.stride, got)
			}
			if got := tt.mesh.VertexCount(); got != tt.vertices {
				t.Errorf("Expected %d vertices, got %d", tt.vertices, got)
			}
			if got := tt.mesh.ElementCount(); got != tt.elements {
				t.Errorf("Expected %d elements, got %d", tt.elements, got)
			}
		})
	}
}

func TestCubeExtents(t *testing.T) {
	for _, m := range []*Mesh{TexturedCube(), ColoredCube()} {
		s := m.Stride()
		for i := 0; i < m.VertexCount(); i++ {
			for j := 0; j < 3; j++ {
				if v := m.Vertices[i*s+j]; v != 0.5 && v != -0.5 {
					t.Fatalf("vertex %d: coordinate %v is not on the half-unit cube", i, v)
				}
			}
		}
	}
}

func TestIndexedCubeUsesEveryCorner(t *testing.T) {
	m := IndexedCube()
	seen := make(map[uint32]int)
	for _, idx := range m.Indices {
		seen[idx]++
	}
	if len(seen) != 8 {
		t.Errorf("Expected all 8 corners referenced, got %d", len(seen))
	}
}

func TestOffset(t *testing.T) {
	m := TexturedCube()
	if m.Offset(0) != 0 || m.Offset(1) != 3 {
		t.Errorf("Unexpected offsets %d %d", m.Offset(0), m.Offset(1))
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		mesh Mesh
	}{
		{"no attribs", Mesh{Vertices: []float32{0, 0, 0}}},
		{"bad size", Mesh{Vertices: []float32{0}, Attribs: []Attrib{{Size: 5}}}},
		{"ragged", Mesh{Vertices: []float32{0, 0, 0, 0}, Attribs: []Attrib{{Size: 3}}}},
		{"partial triangle", Mesh{Vertices: make([]float32, 9), Indices: []uint32{0, 1}, Attribs: []Attrib{{Size: 3}}}},
		{"index range", Mesh{Vertices: make([]float32, 9), Indices: []uint32{0, 1, 3}, Attribs: []Attrib{{Size: 3}}}},
	}
	for _, tt := range tests {
		if err := tt.mesh.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestAnimationFirstStep(t *testing.T) {
	a := NewAnimation(90)
	if dt := a.Step(time.Unix(100, 0)); dt != 0 {
		t.Errorf("Expected first dt 0, got %v", dt)
	}
	if a.Angle != 0 {
		t.Errorf("Expected angle 0 after first step, got %v", a.Angle)
	}
}

func TestAnimationAdvances(t *testing.T) {
	a := NewAnimation(90)
	start := time.Unix(100, 0)
	a.Step(start)

	dt := a.Step(start.Add(500 * time.Millisecond))
	if dt != 0.5 {
		t.Errorf("Expected dt 0.5, got %v", dt)
	}
	want := float32(math.Pi / 4)
	if d := a.Angle - want; d > 1e-6 || d < -1e-6 {
		t.Errorf("Expected angle %v, got %v", want, a.Angle)
	}
}

func TestAnimationWraps(t *testing.T) {
	a := NewAnimation(90)
	start := time.Unix(100, 0)
	a.Step(start)

	// 5 seconds at 90 deg/s is 450 degrees.
	a.Step(start.Add(5 * time.Second))
	want := float32(math.Pi / 2)
	if d := a.Angle - want; d > 1e-5 || d < -1e-5 {
		t.Errorf("Expected wrapped angle %v, got %v", want, a.Angle)
	}

	for i := 1; i <= 100; i++ {
		a.Step(start.Add(5*time.Second + time.Duration(i)*time.Second))
		if a.Angle < 0 || a.Angle >= 2*math.Pi {
			t.Fatalf("angle %v left [0, 2π)", a.Angle)
		}
	}
}

func TestAnimationClockGoingBackwards(t *testing.T) {
	a := NewAnimation(90)
	start := time.Unix(100, 0)
	a.Step(start)
	if dt := a.Step(start.Add(-time.Second)); dt != 0 {
		t.Errorf("Expected dt 0 for a clock going backwards, got %v", dt)
	}
}

func TestAnimationReset(t *testing.T) {
	a := NewAnimation(90)
	a.Step(time.Unix(0, 0))
	a.Step(time.Unix(1, 0))
	a.Reset()
	if a.Angle != 0 || a.Step(time.Unix(5, 0)) != 0 {
		t.Error("Expected reset to restart the animation")
	}
}

func TestAspect(t *testing.T) {
	if got := Aspect(800, 600); got != float32(800)/600 {
		t.Errorf("Expected 4:3, got %v", got)
	}
	if got := Aspect(800, 0); got != 800 {
		t.Errorf("Expected zero height to count as 1, got %v", got)
	}
}

func TestTransforms(t *testing.T) {
	c := DefaultCamera()
	model, view, _ := c.Transforms(0, [3]float32{0, 1, 0}, 1)

	if !model.ApproxEqual(mat4.Identity(), 1e-6) {
		t.Errorf("Expected identity model at angle 0, got %v", model)
	}
	if view[2][3] != -3 {
		t.Errorf("Expected view to push the scene back 3 units, got %v", view[2][3])
	}
}

func TestMVPMapsOriginInsideFrustum(t *testing.T) {
	c := DefaultCamera()
	mvp := c.MVP(mat4.Radians(30), [3]float32{0.5, 1, 0}, Aspect(800, 600))

	clip := mvp.MulVec4(mat4.Vec4{0, 0, 0, 1})
	if clip[3] <= 0 {
		t.Fatalf("Expected positive w, got %v", clip[3])
	}
	ndcZ := clip[2] / clip[3]
	if ndcZ <= -1 || ndcZ >= 1 {
		t.Errorf("Expected origin between near and far planes, got ndc z %v", ndcZ)
	}
	if clip[0] != 0 || clip[1] != 0 {
		t.Errorf("Expected origin on the view axis, got %v", clip)
	}
}

func TestMVPMatchesComposition(t *testing.T) {
	c := DefaultCamera()
	axis := [3]float32{1, 1, 0}
	model, view, proj := c.Transforms(1.2, axis, 1.5)
	want := proj.Mul(view).Mul(model)
	if got := c.MVP(1.2, axis, 1.5); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("MVP mismatch:\n got %v\nwant %v", got, want)
	}
}
