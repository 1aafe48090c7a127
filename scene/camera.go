package scene

import "github.com/go-theft-auto/glworks/mat4"

// Camera looks down -Z at the origin from Distance units away.
type Camera struct {
	FovY     float32 // Radians
	Near     float32
	Far      float32
	Distance float32
}

// DefaultCamera is a 45 degree lens three units back.
func DefaultCamera() Camera {
	return Camera{
		FovY:     mat4.Radians(45),
		Near:     0.1,
		Far:      100,
		Distance: 3,
	}
}

// Aspect returns w/h, treating a zero height as 1 so minimized windows do
// not divide by zero.
func Aspect(width, height int) float32 {
	if height <= 0 {
		height = 1
	}
	return float32(width) / float32(height)
}

// Transforms returns the model, view and projection matrices for an object
// rotated by angle around axis. All three act on column vectors, so
// proj.Mul(view).Mul(model) maps object space to clip space.
func (c Camera) Transforms(angle float32, axis [3]float32, aspect float32) (model, view, proj mat4.Mat4) {
	model = mat4.Rotate(angle, axis[0], axis[1], axis[2])
	view = mat4.Translate(0, 0, -c.Distance)
	proj = mat4.Perspective(c.FovY, aspect, c.Near, c.Far).Transpose()
	return model, view, proj
}

// MVP returns the combined clip-space transform.
func (c Camera) MVP(angle float32, axis [3]float32, aspect float32) mat4.Mat4 {
	model, view, proj := c.Transforms(angle, axis, aspect)
	var mvp mat4.Mat4
	mat4.MulInto(&mvp, &proj, &view)
	mat4.MulInto(&mvp, &mvp, &model)
	return mvp
}
