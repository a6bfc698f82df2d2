package portal

import (
	"github.com/akmonengine/portal/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// DebugSink collects world points for debug drawing. It is only ever written to.
type DebugSink interface {
	AddDebugPoint(point mgl64.Vec3)
}

// DebugPoints is an append-only DebugSink.
type DebugPoints []mgl64.Vec3

func (d *DebugPoints) AddDebugPoint(point mgl64.Vec3) {
	*d = append(*d, point)
}

// FrustumPlanes appends to dst one clip plane per portal edge, each passing
// through viewpoint and the two edge endpoints. Edges are visited in winding
// order, (0,1), (1,2) ... (n-1,0), so exactly PointCount planes are added.
//
// When the viewpoint is behind the portal plane, the volume seen through the
// opening is on the negative side of every plane, which is what Classify
// expects. No allocation happens when dst has enough capacity.
//
// sink, when not nil, receives the portal vertices.
func (p *Portal) FrustumPlanes(viewpoint mgl64.Vec3, dst []geometry.Plane, sink DebugSink) ([]geometry.Plane, error) {
	if !p.hasPlane() {
		return dst, ErrNoPlane
	}

	points := p.points
	count := len(points)

	for n := 1; n < count; n++ {
		dst = append(dst, geometry.NewPlane(viewpoint, points[n], points[n-1]))
	}
	// closing edge, last to first
	dst = append(dst, geometry.NewPlane(viewpoint, points[0], points[count-1]))

	if sink != nil {
		for _, point := range points {
			sink.AddDebugPoint(point)
		}
	}

	return dst, nil
}
