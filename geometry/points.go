package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Centroid returns the arithmetic mean of points, or the origin for an empty set.
func Centroid(points []mgl64.Vec3) mgl64.Vec3 {
	var centroid mgl64.Vec3
	if len(points) == 0 {
		return centroid
	}

	for _, point := range points {
		centroid = centroid.Add(point)
	}

	return centroid.Mul(1.0 / float64(len(points)))
}

// TangentBasis returns two unit vectors perpendicular to normal and to each other.
// normal must be normalized.
func TangentBasis(normal mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var tangent1 mgl64.Vec3
	if math.Abs(normal.X()) > 0.9 {
		tangent1 = mgl64.Vec3{0, 1, 0}
	} else {
		tangent1 = mgl64.Vec3{1, 0, 0}
	}

	tangent1 = tangent1.Sub(normal.Mul(tangent1.Dot(normal))).Normalize()
	tangent2 := normal.Cross(tangent1).Normalize()

	return tangent1, tangent2
}

// ProjectOnto expresses points in the 2D frame of the plane through origin with
// the given normal, appending the coordinates to dst.
func ProjectOnto(points []mgl64.Vec3, origin, normal mgl64.Vec3, dst []mgl64.Vec2) []mgl64.Vec2 {
	tangent1, tangent2 := TangentBasis(normal)

	for _, point := range points {
		local := point.Sub(origin)
		dst = append(dst, mgl64.Vec2{local.Dot(tangent1), local.Dot(tangent2)})
	}

	return dst
}
