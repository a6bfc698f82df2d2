package geometry

import "github.com/go-gl/mathgl/mgl64"

// Transform places local-space points in world space.
// Points are scaled, then rotated, then translated.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	// Scale per axis; the zero value means unit scale
	Scale mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Apply transforms a local-space point into world space.
func (t Transform) Apply(point mgl64.Vec3) mgl64.Vec3 {
	scale := t.scale()
	scaled := mgl64.Vec3{point[0] * scale[0], point[1] * scale[1], point[2] * scale[2]}

	return t.rotation().Rotate(scaled).Add(t.Position)
}

// Mat4 returns the homogeneous matrix equivalent to Apply.
func (t Transform) Mat4() mgl64.Mat4 {
	scale := t.scale()

	return mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(t.rotation().Mat4()).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}

func (t Transform) scale() mgl64.Vec3 {
	if t.Scale == (mgl64.Vec3{}) {
		return mgl64.Vec3{1, 1, 1}
	}
	return t.Scale
}

// A zero quaternion would collapse every point onto the origin, treat it as identity
func (t Transform) rotation() mgl64.Quat {
	if t.Rotation.W == 0 && t.Rotation.V == (mgl64.Vec3{}) {
		return mgl64.QuatIdent()
	}
	return t.Rotation.Normalize()
}
