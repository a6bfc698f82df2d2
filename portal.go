// Package portal builds the convex, consistently wound polygons used as
// visibility gates between rooms, and answers the per-frame questions asked
// of them: on which side of a plane a portal lies, and which clip planes a
// viewpoint sweeps through its edges.
package portal

import (
	"errors"
	"math"

	"github.com/akmonengine/portal/geometry"
	"github.com/ctessum/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// NoRoom is the room index of a portal not yet registered with a room.
const NoRoom = -1

var (
	// ErrTooFewPoints is returned when less than 3 vertices describe a portal
	ErrTooFewPoints = errors.New("portal must have at least 3 vertices")
	// ErrDegenerateGeometry is returned when the vertices do not span a plane,
	// or span less area than the configured minimum
	ErrDegenerateGeometry = errors.New("portal geometry is degenerate")
	// ErrUnresolvedWinding is returned in strict mode when the vertices could
	// not be fully sorted into a convex winding
	ErrUnresolvedWinding = errors.New("portal winding could not be resolved")
	// ErrNoPlane is returned when a query needs the supporting plane of a
	// portal that was never built
	ErrNoPlane = errors.New("portal has no plane")
)

// ClipResult is the position of a portal relative to a plane
type ClipResult int

const (
	// ClipInside means every vertex is strictly behind the plane
	ClipInside ClipResult = iota
	// ClipOutside means every vertex is on or in front of the plane
	ClipOutside
	// ClipPartial means the portal straddles the plane
	ClipPartial
)

func (r ClipResult) String() string {
	switch r {
	case ClipInside:
		return "inside"
	case ClipOutside:
		return "outside"
	case ClipPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Portal is a planar convex opening between two rooms.
//
// The points are in world space, wound so that the plane through the first
// three of them is the supporting plane. A Portal is immutable once built,
// apart from the room index assigned at registration.
type Portal struct {
	id          uuid.UUID
	counterpart uuid.UUID

	points   []mgl64.Vec3
	centroid mgl64.Vec3
	plane    geometry.Plane

	isMirror bool
	room     int
}

// ID identifies the portal.
func (p *Portal) ID() uuid.UUID {
	return p.id
}

// Counterpart is the ID of the portal this one mirrors, uuid.Nil otherwise.
func (p *Portal) Counterpart() uuid.UUID {
	return p.counterpart
}

// PointCount returns the number of vertices.
func (p *Portal) PointCount() int {
	return len(p.points)
}

// Point returns the i-th wound vertex.
func (p *Portal) Point(i int) mgl64.Vec3 {
	return p.points[i]
}

// Points returns a copy of the wound vertices.
func (p *Portal) Points() []mgl64.Vec3 {
	points := make([]mgl64.Vec3, len(p.points))
	copy(points, p.points)

	return points
}

func (p *Portal) Centroid() mgl64.Vec3 {
	return p.centroid
}

func (p *Portal) Plane() geometry.Plane {
	return p.plane
}

// IsMirror reports whether the portal is the reversed counterpart of another.
func (p *Portal) IsMirror() bool {
	return p.isMirror
}

// Room returns the index of the room owning the portal, or NoRoom.
func (p *Portal) Room() int {
	return p.room
}

// SetRoom records the room owning the portal.
func (p *Portal) SetRoom(room int) {
	p.room = room
}

// hasPlane guards every query against zero-value or unbuilt portals
func (p *Portal) hasPlane() bool {
	return p != nil && len(p.points) >= 3 && !p.plane.IsDegenerate()
}

func planeFromPoints(points []mgl64.Vec3) geometry.Plane {
	if len(points) < 3 {
		return geometry.Plane{}
	}
	return geometry.NewPlane(points[0], points[1], points[2])
}

// Classify locates the portal relative to plane.
//
// A vertex at a non-negative signed distance counts as outside. The portal
// is ClipOutside when all its vertices are outside, ClipInside when none is,
// and ClipPartial otherwise.
func (p *Portal) Classify(plane geometry.Plane) (ClipResult, error) {
	if !p.hasPlane() {
		return ClipPartial, ErrNoPlane
	}

	outside := 0
	for _, point := range p.points {
		if plane.DistanceTo(point) >= 0 {
			outside++
		}
	}

	switch outside {
	case len(p.points):
		return ClipOutside, nil
	case 0:
		return ClipInside, nil
	default:
		return ClipPartial, nil
	}
}

// IsCulled reports whether the portal lies outside any of planes, in which
// case nothing beyond it can be seen through them.
func (p *Portal) IsCulled(planes []geometry.Plane) (bool, error) {
	for _, plane := range planes {
		result, err := p.Classify(plane)
		if err != nil {
			return false, err
		}
		if result == ClipOutside {
			return true, nil
		}
	}

	return false, nil
}

// Mirror creates the portal seen from the other side: the same vertices in
// reverse order, hence a plane facing the opposite way. The copy shares no
// memory with p. Mirroring a nil portal gives nil.
func (p *Portal) Mirror() *Portal {
	if p == nil {
		return nil
	}

	count := len(p.points)
	points := make([]mgl64.Vec3, count)
	for n := 0; n < count; n++ {
		points[n] = p.points[count-n-1]
	}

	mirror := &Portal{
		id:          uuid.New(),
		counterpart: p.id,
		points:      points,
		centroid:    p.centroid,
		plane:       planeFromPoints(points),
		isMirror:    !p.isMirror,
		room:        NoRoom,
	}

	return mirror
}

// Area returns the area of the polygon measured in its own plane.
func (p *Portal) Area() float64 {
	if !p.hasPlane() {
		return 0
	}

	return polygonArea(p.points, p.centroid, p.plane.Normal)
}

func polygonArea(points []mgl64.Vec3, origin, normal mgl64.Vec3) float64 {
	projected := geometry.ProjectOnto(points, origin, normal, make([]mgl64.Vec2, 0, len(points)))

	path := make(geom.Path, len(projected))
	for i, v := range projected {
		path[i] = geom.Point{X: v.X(), Y: v.Y()}
	}

	return math.Abs(geom.Polygon{path}.Area())
}
