package portal

import (
	"fmt"

	"github.com/akmonengine/portal/geometry"
	"github.com/akmonengine/portal/source"
	"github.com/akmonengine/portal/winding"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Builder turns raw portal vertices into Portals.
type Builder struct {
	config Config
	logger *zap.Logger
}

// NewBuilder creates a Builder. A nil logger discards all output.
func NewBuilder(config Config, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Builder{
		config: config,
		logger: logger,
	}
}

// NewPortal builds a portal with the default configuration.
func NewPortal(vertices []mgl64.Vec3, transform geometry.Transform) (*Portal, error) {
	return NewBuilder(DefaultConfig(), nil).Build(vertices, transform)
}

// Build creates a portal from local-space vertices placed in the world by transform.
//
// The vertices may come in any order: they are wound around their centroid so
// that the portal faces the way the first three of them do. The input slice is
// not modified.
func (b *Builder) Build(vertices []mgl64.Vec3, transform geometry.Transform) (*Portal, error) {
	count := len(vertices)
	if count < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, count)
	}

	points := make([]mgl64.Vec3, count)
	var sum mgl64.Vec3
	for n, vertex := range vertices {
		points[n] = transform.Apply(vertex)
		sum = sum.Add(points[n])
	}

	stats := winding.Sort(points)
	if stats.Reference == (mgl64.Vec3{}) {
		return nil, fmt.Errorf("%w: first three vertices do not span a plane", ErrDegenerateGeometry)
	}

	if stats.Unresolved > 0 {
		if b.config.StrictWinding {
			return nil, fmt.Errorf("%w: %d of %d steps", ErrUnresolvedWinding, stats.Unresolved, count-2)
		}
		b.logger.Warn("portal vertices only partially sorted, input is not convex",
			zap.Int("points", count),
			zap.Int("unresolved", stats.Unresolved),
		)
	}

	portal := &Portal{
		id:       uuid.New(),
		points:   points,
		centroid: sum.Mul(1.0 / float64(count)),
		plane:    planeFromPoints(points),
		room:     NoRoom,
	}

	if portal.plane.IsDegenerate() {
		return nil, fmt.Errorf("%w: sorted vertices do not span a plane", ErrDegenerateGeometry)
	}

	if b.config.MinArea > 0 {
		if area := portal.Area(); area < b.config.MinArea {
			return nil, fmt.Errorf("%w: area %g below minimum %g", ErrDegenerateGeometry, area, b.config.MinArea)
		}
	}

	b.logger.Debug("portal built",
		zap.Stringer("id", portal.id),
		zap.Int("points", count),
		zap.Bool("reversed", stats.Reversed),
	)

	return portal, nil
}

// BuildAll builds every definition and assigns its room.
// Definitions that fail are skipped and logged; their errors are combined in
// the returned error, next to the portals that could be built.
func (b *Builder) BuildAll(definitions []source.Definition) ([]*Portal, error) {
	portals := make([]*Portal, 0, len(definitions))
	var errs error

	for _, definition := range definitions {
		portal, err := b.Build(definition.Vertices, definition.Transform)
		if err != nil {
			b.logger.Warn("skipping portal",
				zap.String("name", definition.Name),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("portal %q: %w", definition.Name, err))
			continue
		}

		portal.SetRoom(definition.Room)
		portals = append(portals, portal)
	}

	return portals, errs
}
