// Package geometry holds the small math types shared by the portal packages:
// planes, rigid transforms and helpers over point sets.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// degenerateNormalLength is the length below which a normal is unusable.
const degenerateNormalLength = 1e-12

// collinearSine is the sine of the angle at a below which three points
// are considered collinear or coincident, whatever their scale.
const collinearSine = 1e-12

// Plane represents an infinite plane in 3D space.
// The plane is defined by the equation: Normal · p = Distance
// where Normal is the plane's unit normal and Distance is the signed distance
// from the origin along the normal.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// NewPlane creates the plane passing through a, b and c.
//
// The normal is (a-c) × (a-b), so the winding of the three points decides
// which side is the front. Collinear or coincident points give the zero
// plane, see IsDegenerate.
func NewPlane(a, b, c mgl64.Vec3) Plane {
	ac, ab := a.Sub(c), a.Sub(b)
	normal := ac.Cross(ab)

	normalLength := normal.Len()
	if normalLength <= collinearSine*ac.Len()*ab.Len() {
		return Plane{}
	}
	normal = normal.Mul(1.0 / normalLength)

	return Plane{
		Normal:   normal,
		Distance: normal.Dot(a),
	}
}

// NewPlaneFromNormal creates the plane passing through point with the given normal.
// The normal is normalized; a zero normal gives the zero plane.
func NewPlaneFromNormal(point, normal mgl64.Vec3) Plane {
	normalLength := normal.Len()
	if normalLength < degenerateNormalLength {
		return Plane{}
	}
	normal = normal.Mul(1.0 / normalLength)

	return Plane{
		Normal:   normal,
		Distance: normal.Dot(point),
	}
}

// DistanceTo returns the signed distance from the plane to p.
// Positive values are in front of the plane (on the side the normal points to).
func (p Plane) DistanceTo(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.Distance
}

// Negate returns the same plane facing the opposite way.
func (p Plane) Negate() Plane {
	return Plane{
		Normal:   p.Normal.Mul(-1),
		Distance: -p.Distance,
	}
}

// IsDegenerate reports whether the plane has no usable normal.
func (p Plane) IsDegenerate() bool {
	return p.Normal.Dot(p.Normal) < degenerateNormalLength
}

// ApproxEqual compares two planes component-wise within epsilon.
func (p Plane) ApproxEqual(other Plane, epsilon float64) bool {
	for i := range p.Normal {
		if math.Abs(p.Normal[i]-other.Normal[i]) > epsilon {
			return false
		}
	}

	return math.Abs(p.Distance-other.Distance) <= epsilon
}
