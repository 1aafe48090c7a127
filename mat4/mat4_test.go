package mat4_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glworks/mat4"
)

const eps = 1e-5

func near(a, b, tol float32) bool {
	d := a - b
	return d <= tol && d >= -tol
}

func vecNear(a, b mat4.Vec4, tol float32) bool {
	for i := range a {
		if !near(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

// sampleMatrices returns matrices built from valid parameters.
func sampleMatrices() map[string]mat4.Mat4 {
	return map[string]mat4.Mat4{
		"rotate z":      mat4.Rotate(math.Pi/2, 0, 0, 1),
		"rotate skew":   mat4.Rotate(0.7, 0.5, 1, 0),
		"rotate neg":    mat4.Rotate(-2.1, 3, -1, 2),
		"translate":     mat4.Translate(2, 3, 4),
		"translate neg": mat4.Translate(-0.5, 0, 10),
		"perspective":   mat4.Perspective(mat4.Radians(45), 4.0/3.0, 0.1, 100),
		"perspective90": mat4.Perspective(math.Pi/2, 1, 1, 100),
		"ortho":         mat4.Ortho(0, 800, 600, 0, -1, 1),
	}
}

func TestIdentity(t *testing.T) {
	m := mat4.Identity()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			if m[r][c] != want {
				t.Errorf("Identity()[%d][%d] = %v, want %v", r, c, m[r][c], want)
			}
		}
	}
}

func TestIdentityNeutrality(t *testing.T) {
	id := mat4.Identity()
	for name, a := range sampleMatrices() {
		if got := mat4.Mul(a, id); !got.ApproxEqual(a, eps) {
			t.Errorf("%s: A·I = %v, want %v", name, got, a)
		}
		if got := mat4.Mul(id, a); !got.ApproxEqual(a, eps) {
			t.Errorf("%s: I·A = %v, want %v", name, got, a)
		}
	}
}

func TestMulRowByColumn(t *testing.T) {
	a := mat4.Mat4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	b := mat4.Mat4{
		{1, 0, 0, 1},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{1, 0, 0, 1},
	}
	want := mat4.Mat4{
		{5, 4, 9, 5},
		{13, 12, 21, 13},
		{21, 20, 33, 21},
		{29, 28, 45, 29},
	}
	if got := mat4.Mul(a, b); got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
	if got := a.Mul(b); got != want {
		t.Errorf("Mat4.Mul = %v, want %v", got, want)
	}
}

func TestTranslatePoint(t *testing.T) {
	got := mat4.Translate(2, 3, 4).MulVec4(mat4.Vec4{0, 0, 0, 1})
	want := mat4.Vec4{2, 3, 4, 1}
	if got != want {
		t.Errorf("Translate(2,3,4)·(0,0,0,1) = %v, want %v", got, want)
	}

	// Directions (w = 0) are not moved.
	dir := mat4.Translate(2, 3, 4).MulVec4(mat4.Vec4{1, 0, 0, 0})
	if dir != (mat4.Vec4{1, 0, 0, 0}) {
		t.Errorf("Translate moved a direction: %v", dir)
	}
}

func TestRotateQuarterTurnAroundZ(t *testing.T) {
	got := mat4.Rotate(math.Pi/2, 0, 0, 1).MulVec4(mat4.Vec4{1, 0, 0, 1})
	want := mat4.Vec4{0, 1, 0, 1}
	if !vecNear(got, want, eps) {
		t.Errorf("Rotate(π/2, z)·(1,0,0,1) = %v, want %v", got, want)
	}
}

func TestRotateNormalizesAxis(t *testing.T) {
	unit := mat4.Rotate(1.1, 0, 0, 1)
	scaled := mat4.Rotate(1.1, 0, 0, 25)
	if !unit.ApproxEqual(scaled, eps) {
		t.Errorf("scaled axis changed the rotation:\n%v\n%v", unit, scaled)
	}
}

func TestRotateExtremeAxisLength(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
	}{
		{"large", 1e20, 0, 0},
		{"huge", 3e38, 0, 0},
		{"tiny", 1e-25, 0, 0},
		{"subnormal", 1e-40, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := mat4.Rotate(1, 1, 0, 0)
			if got := mat4.Rotate(1, tc.x, tc.y, tc.z); !got.ApproxEqual(want, eps) {
				t.Errorf("Rotate(1, %g,%g,%g) = %v, want %v", tc.x, tc.y, tc.z, got, want)
			}
		})
	}
}

func TestRotateDegenerateAxis(t *testing.T) {
	for _, angle := range []float32{0, 0.3, math.Pi, -7, 1e6} {
		if got := mat4.Rotate(angle, 0, 0, 0); got != mat4.Identity() {
			t.Errorf("Rotate(%v, 0,0,0) = %v, want identity", angle, got)
		}
	}
}

func TestRotateIsOrthonormal(t *testing.T) {
	r := mat4.Rotate(0.9, 1, 2, 3)
	if got := mat4.Mul(r, r.Transpose()); !got.ApproxEqual(mat4.Identity(), eps) {
		t.Errorf("R·Rᵀ = %v, want identity", got)
	}
	if r[3] != (mat4.Vec4{0, 0, 0, 1}) {
		t.Errorf("bottom row = %v, want (0,0,0,1)", r[3])
	}
	for i := 0; i < 3; i++ {
		if r[i][3] != 0 {
			t.Errorf("translation column [%d][3] = %v, want 0", i, r[i][3])
		}
	}
}

func TestPerspectiveShape(t *testing.T) {
	const n, f = 1.0, 100.0
	m := mat4.Perspective(math.Pi/2, 1, n, f)

	checks := []struct {
		name string
		r, c int
		want float32
	}{
		{"[0][0]", 0, 0, 1},
		{"[1][1]", 1, 1, 1},
		{"[2][2]", 2, 2, (f + n) / (n - f)},
		{"[2][3]", 2, 3, -1},
		{"[3][2]", 3, 2, (2 * f * n) / (n - f)},
		{"[3][3]", 3, 3, 0},
	}
	for _, tc := range checks {
		if got := m.At(tc.r, tc.c); !near(got, tc.want, eps) {
			t.Errorf("%s = %v, want %v", tc.name, got, tc.want)
		}
	}
	if m[2][3] != -1 || m[3][3] != 0 {
		t.Errorf("[2][3], [3][3] = %v, %v; want exactly -1, 0", m[2][3], m[3][3])
	}

	zero := map[[2]int]bool{
		{0, 1}: true, {0, 2}: true, {0, 3}: true,
		{1, 0}: true, {1, 2}: true, {1, 3}: true,
		{2, 0}: true, {2, 1}: true,
		{3, 0}: true, {3, 1}: true,
	}
	for rc := range zero {
		if m[rc[0]][rc[1]] != 0 {
			t.Errorf("[%d][%d] = %v, want 0", rc[0], rc[1], m[rc[0]][rc[1]])
		}
	}
}

func TestPerspectiveAspect(t *testing.T) {
	m := mat4.Perspective(math.Pi/2, 2, 0.1, 10)
	if !near(m[0][0], 0.5, eps) {
		t.Errorf("[0][0] = %v, want 0.5", m[0][0])
	}
}

func TestPerspectiveDegenerateInputsKeepFixedEntries(t *testing.T) {
	m := mat4.Perspective(mat4.Radians(45), 1, 5, 5)
	// near == far divides by zero in the depth terms; the rest of the
	// matrix is intact.
	if m[2][3] != -1 || m[3][3] != 0 {
		t.Errorf("fixed entries changed: [2][3]=%v [3][3]=%v", m[2][3], m[3][3])
	}
	if !math.IsInf(float64(m[2][2]), 0) || !math.IsInf(float64(m[3][2]), 0) {
		t.Errorf("depth entries = %v, %v; want infinite", m[2][2], m[3][2])
	}
	if math.IsNaN(float64(m[0][0])) || math.IsNaN(float64(m[1][1])) {
		t.Errorf("focal entries are NaN: %v", m)
	}

	if z := mat4.Perspective(mat4.Radians(45), 0, 1, 10); !math.IsInf(float64(z[0][0]), 1) {
		t.Errorf("aspect 0: [0][0] = %v, want +Inf", z[0][0])
	}
}

func TestMulIntoAliasing(t *testing.T) {
	a := mat4.Rotate(0.4, 1, 0, 0)
	b := mat4.Translate(1, 2, 3)
	want := mat4.Mul(a, b)

	dstA := a
	mat4.MulInto(&dstA, &dstA, &b)
	if dstA != want {
		t.Errorf("dst aliasing a: got %v, want %v", dstA, want)
	}

	dstB := b
	mat4.MulInto(&dstB, &a, &dstB)
	if dstB != want {
		t.Errorf("dst aliasing b: got %v, want %v", dstB, want)
	}

	sq := a
	mat4.MulInto(&sq, &sq, &sq)
	if wantSq := mat4.Mul(a, a); sq != wantSq {
		t.Errorf("dst aliasing both: got %v, want %v", sq, wantSq)
	}
}

func TestAssociativity(t *testing.T) {
	a := mat4.Rotate(0.3, 1, 0, 0)
	b := mat4.Rotate(1.2, 0, 1, 1)
	c := mat4.Rotate(-2.5, 0.2, 0.4, 1)

	left := mat4.Mul(mat4.Mul(a, b), c)
	right := mat4.Mul(a, mat4.Mul(b, c))
	if !left.ApproxEqual(right, 1e-4) {
		t.Errorf("(AB)C != A(BC):\n%v\n%v", left, right)
	}
}

func TestTransposeAndStorageOrder(t *testing.T) {
	m := mat4.Mat4{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	}
	row := m.RowMajor()
	col := m.ColMajor()
	tr := m.Transpose()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if row[r*4+c] != m[r][c] {
				t.Errorf("RowMajor[%d] = %v, want %v", r*4+c, row[r*4+c], m[r][c])
			}
			if col[c*4+r] != m[r][c] {
				t.Errorf("ColMajor[%d] = %v, want %v", c*4+r, col[c*4+r], m[r][c])
			}
			if tr[c][r] != m[r][c] {
				t.Errorf("Transpose[%d][%d] = %v, want %v", c, r, tr[c][r], m[r][c])
			}
		}
	}
	if m.Transpose().Transpose() != m {
		t.Error("double transpose changed the matrix")
	}
}

func TestRadians(t *testing.T) {
	if got := mat4.Radians(180); !near(got, math.Pi, 1e-6) {
		t.Errorf("Radians(180) = %v, want π", got)
	}
}

// The remaining tests compare against mgl32, which stores column-major and
// exposes logical entries through At(row, col).

func TestMatchesMathGLRotate(t *testing.T) {
	cases := []struct {
		angle   float32
		x, y, z float32
	}{
		{math.Pi / 2, 0, 0, 1},
		{0.7, 0.5, 1, 0},
		{-1.3, 1, 1, 0},
		{2.9, 3, -4, 12},
	}
	for _, tc := range cases {
		got := mat4.Rotate(tc.angle, tc.x, tc.y, tc.z)
		want := mgl32.HomogRotate3D(tc.angle, mgl32.Vec3{tc.x, tc.y, tc.z}.Normalize())
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if !near(got[r][c], want.At(r, c), eps) {
					t.Errorf("Rotate(%v, %v,%v,%v)[%d][%d] = %v, mgl32 %v",
						tc.angle, tc.x, tc.y, tc.z, r, c, got[r][c], want.At(r, c))
				}
			}
		}
	}
}

func TestMatchesMathGLTranslateAndOrtho(t *testing.T) {
	pairs := []struct {
		name string
		got  mat4.Mat4
		want mgl32.Mat4
	}{
		{"translate", mat4.Translate(2, -3, 4.5), mgl32.Translate3D(2, -3, 4.5)},
		{"ortho", mat4.Ortho(0, 800, 600, 0, -1, 1), mgl32.Ortho(0, 800, 600, 0, -1, 1)},
	}
	for _, p := range pairs {
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if !near(p.got[r][c], p.want.At(r, c), eps) {
					t.Errorf("%s[%d][%d] = %v, mgl32 %v", p.name, r, c, p.got[r][c], p.want.At(r, c))
				}
			}
		}
	}
}

func TestPerspectiveIsTransposedOperator(t *testing.T) {
	fov, aspect, n, f := mat4.Radians(45), float32(16.0/9.0), float32(0.1), float32(100)
	got := mat4.Perspective(fov, aspect, n, f)
	want := mgl32.Perspective(fov, aspect, n, f)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !near(got[r][c], want.At(c, r), 1e-4) {
				t.Errorf("Perspective[%d][%d] = %v, mgl32 At(%d,%d) = %v", r, c, got[r][c], c, r, want.At(c, r))
			}
		}
	}

	// Projecting a point on the near plane lands on z = -1 in NDC.
	clip := got.Transpose().MulVec4(mat4.Vec4{0, 0, -n, 1})
	if ndc := clip[2] / clip[3]; !near(ndc, -1, 1e-4) {
		t.Errorf("near plane maps to z = %v, want -1", ndc)
	}
}

func TestMatchesMathGLComposition(t *testing.T) {
	model := mat4.Rotate(0.8, 0.5, 1, 0)
	view := mat4.Translate(0, 0, -3)
	got := mat4.Mul(view, model)

	want := mgl32.Translate3D(0, 0, -3).Mul4(mgl32.HomogRotate3D(0.8, mgl32.Vec3{0.5, 1, 0}.Normalize()))
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !near(got[r][c], want.At(r, c), eps) {
				t.Errorf("view·model[%d][%d] = %v, mgl32 %v", r, c, got[r][c], want.At(r, c))
			}
		}
	}
}
