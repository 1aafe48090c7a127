// Package mat4 builds and composes 4x4 float32 transform matrices.
//
// A Mat4 is indexed M[row][col] and transforms column vectors (M * v).
// Every function is a pure computation over its arguments, so values may be
// built and combined from any goroutine without synchronization.
package mat4

import "math"

// Mat4 is a 4x4 matrix stored row by row.
type Mat4 [4][4]float32

// Vec4 is a homogeneous coordinate (x, y, z, w).
type Vec4 [4]float32

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the product a·b.
func Mul(a, b Mat4) Mat4 {
	var m Mat4
	MulInto(&m, &a, &b)
	return m
}

// MulInto stores a·b in dst. dst may point at a or b.
func MulInto(dst, a, b *Mat4) {
	var tmp Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			tmp[r][c] = a[r][0]*b[0][c] +
				a[r][1]*b[1][c] +
				a[r][2]*b[2][c] +
				a[r][3]*b[3][c]
		}
	}
	*dst = tmp
}

// Translate returns a matrix that moves points by (tx, ty, tz).
func Translate(tx, ty, tz float32) Mat4 {
	m := Identity()
	m[0][3] = tx
	m[1][3] = ty
	m[2][3] = tz
	return m
}

// Rotate returns a rotation of angle radians around the axis (x, y, z).
// The axis does not need to be unit length. A zero axis yields Identity.
func Rotate(angle, x, y, z float32) Mat4 {
	// float32 squares overflow above ~1e19 and underflow below ~1e-19.
	ax, ay, az := float64(x), float64(y), float64(z)
	l := math.Sqrt(ax*ax + ay*ay + az*az)
	if l == 0 {
		return Identity()
	}
	x, y, z = float32(ax/l), float32(ay/l), float32(az/l)

	s, c := math.Sincos(float64(angle))
	sf, cf := float32(s), float32(c)
	nc := 1 - cf

	return Mat4{
		{x*x*nc + cf, x*y*nc - z*sf, x*z*nc + y*sf, 0},
		{x*y*nc + z*sf, y*y*nc + cf, y*z*nc - x*sf, 0},
		{x*z*nc - y*sf, y*z*nc + x*sf, z*z*nc + cf, 0},
		{0, 0, 0, 1},
	}
}

// Perspective returns a symmetric-frustum projection for a vertical field of
// view fovY (radians), aspect = width/height and clip planes near and far.
//
// The entries are laid out the way GL reads 16 floats uploaded row after row
// without transposition: the -1 that produces w = -z sits at [2][3] and the
// depth offset at [3][2]. Call Transpose to get the column-vector operator
// that composes with Translate and Rotate.
//
// Inputs are not validated. near <= 0, near >= far, aspect <= 0 or fovY
// outside (0, π) produce a defined but possibly infinite matrix.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)*0.5))

	var m Mat4
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = (far + near) / (near - far)
	m[2][3] = -1
	m[3][2] = (2 * far * near) / (near - far)
	return m
}

// Ortho returns an orthographic projection mapping the box
// [left,right]x[bottom,top]x[-near,-far] to clip space.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	m := Identity()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[0][3] = -(right + left) / (right - left)
	m[1][3] = -(top + bottom) / (top - bottom)
	m[2][3] = -(far + near) / (far - near)
	return m
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (math.Pi / 180)
}

// Mul returns m·b.
func (m Mat4) Mul(b Mat4) Mat4 {
	return Mul(m, b)
}

// MulVec4 returns m·v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	for r := 0; r < 4; r++ {
		out[r] = m[r][0]*v[0] + m[r][1]*v[1] + m[r][2]*v[2] + m[r][3]*v[3]
	}
	return out
}

// Transpose returns m with rows and columns exchanged.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c][r] = m[r][c]
		}
	}
	return t
}

// At returns the entry at (row, col).
func (m Mat4) At(row, col int) float32 {
	return m[row][col]
}

// RowMajor returns the 16 entries row after row.
// Upload with the transpose flag set when the target expects columns.
func (m Mat4) RowMajor() [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r][c]
		}
	}
	return out
}

// ColMajor returns the 16 entries column after column, the order
// glUniformMatrix4fv expects with transpose = false.
func (m Mat4) ColMajor() [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r][c]
		}
	}
	return out
}

// ApproxEqual reports whether every entry of m and o differs by at most eps.
func (m Mat4) ApproxEqual(o Mat4, eps float32) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			d := m[r][c] - o[r][c]
			if d > eps || d < -eps {
				return false
			}
		}
	}
	return true
}
