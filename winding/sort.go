// Package winding orders the vertices of a convex polygon into a consistent
// winding around its centroid.
//
// The first three input points fix the intended facing: after sorting, the
// plane through the first three output points has a normal pointing the same
// way as the plane through the first three input points.
//
// The sort is an O(n²) selection sort working in place on the caller's slice.
// Portals carry a handful of vertices and are sorted once at setup, so no
// effort is spent on anything smarter.
package winding

import (
	"math"

	"github.com/akmonengine/portal/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Stats describes how a Sort call resolved the polygon.
type Stats struct {
	// Reference is the normal of the plane through the first three input points
	Reference mgl64.Vec3
	// Unresolved counts the sort steps where no point qualified as a successor.
	// Those positions are left as they were, which happens on non-convex,
	// coincident or collinear input.
	Unresolved int
	// Reversed is set when the sorted order was flipped to match Reference
	Reversed bool
}

// Sort reorders points in place into a convex winding consistent with the
// normal of the first three input points. Fewer than 3 points is a no-op.
//
// Algorithm:
//  1. Reference normal from the plane through points 0, 1, 2
//  2. Centroid of all points
//  3. For each anchor n, among the later points strictly in front of the
//     half-plane through the anchor, the centroid and centroid+reference,
//     pick the one closest in angle to the anchor and swap it to n+1
//  4. Reverse the whole sequence if the sorted normal opposes the reference
func Sort(points []mgl64.Vec3) Stats {
	var stats Stats

	count := len(points)
	if count < 3 {
		return stats
	}

	stats.Reference = geometry.NewPlane(points[0], points[1], points[2]).Normal
	centroid := geometry.Centroid(points)

	for n := 0; n < count-2; n++ {
		anchor := direction(points[n], centroid)
		halfPlane := geometry.NewPlane(points[n], centroid, centroid.Add(stats.Reference))

		bestDot := -math.MaxFloat64
		best := -1

		for m := n + 1; m < count; m++ {
			if halfPlane.DistanceTo(points[m]) <= 0 {
				continue
			}

			dot := anchor.Dot(direction(points[m], centroid))
			if dot > bestDot {
				bestDot = dot
				best = m
			}
		}

		if best == -1 {
			stats.Unresolved++
			continue
		}

		points[n+1], points[best] = points[best], points[n+1]
	}

	// The points are sorted but may run the opposite way to the one wanted
	sorted := geometry.NewPlane(points[0], points[1], points[2]).Normal
	if stats.Reference.Dot(sorted) < 0 {
		Reverse(points)
		stats.Reversed = true
	}

	return stats
}

// Reverse flips the order of points in place.
func Reverse(points []mgl64.Vec3) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// direction returns the unit vector from centroid to point, or the zero
// vector when the point sits on the centroid.
func direction(point, centroid mgl64.Vec3) mgl64.Vec3 {
	dir := point.Sub(centroid)

	length := dir.Len()
	if length < 1e-12 {
		return mgl64.Vec3{}
	}

	return dir.Mul(1.0 / length)
}
