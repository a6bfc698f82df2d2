package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/akmonengine/portal"
	"github.com/akmonengine/portal/source"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// The hall sits at z < 0, the kitchen at z > 0, joined by a door in the z=0 wall.
// A second, smaller opening further along the wall uses a suffixed name.
const scene = `
portals:
  - name: portal_kitchen
    room: 0
    vertices: [[0, 0, 0], [1, 2, 0], [1, 0, 0], [0, 2, 0]]
  - name: portal_kitchen*2
    room: 0
    vertices: [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0]]
    transform:
      position: [6, 1, 0]
      scale: [0.5, 0.5, 1]
  - name: portal_hall
    room: 1
    vertices: [[0, 0, 0], [0, 0, 0], [0, 0, 0]]
`

// DebugPrinter prints every debug point it receives
type DebugPrinter struct{}

func (d *DebugPrinter) AddDebugPoint(point mgl64.Vec3) {
	fmt.Printf("   debug point: %v\n", point)
}

// LoadScene reads the scene from the file given as first argument, or the built-in one.
func LoadScene() ([]source.Definition, error) {
	if len(os.Args) > 1 {
		return source.LoadFile(os.Args[1])
	}

	return source.Load(strings.NewReader(scene))
}

// LoadConfig reads the configuration from the file given as second argument, or the defaults.
func LoadConfig() (portal.Config, error) {
	if len(os.Args) > 2 {
		return portal.LoadConfig(os.Args[2])
	}

	return portal.DefaultConfig(), nil
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}

	definitions, err := LoadScene()
	if err != nil {
		logger.Fatal("loading scene", zap.Error(err))
	}

	builder := portal.NewBuilder(config, logger)
	portals, err := builder.BuildAll(definitions)
	if err != nil {
		// broken portals are skipped, the rest of the scene is still usable
		logger.Warn("some portals could not be built", zap.Error(err))
	}

	// Each opening is seen from both rooms
	built := len(portals)
	for i := 0; i < built; i++ {
		mirror := portals[i].Mirror()
		mirror.SetRoom(1 - portals[i].Room())
		portals = append(portals, mirror)
	}

	fmt.Println("Portals:")
	for _, p := range portals {
		fmt.Printf("  %s room=%d mirror=%v points=%d area=%.3f\n", p.ID(), p.Room(), p.IsMirror(), p.PointCount(), p.Area())
		fmt.Printf("   centroid %v, normal %v\n", p.Centroid(), p.Plane().Normal)
	}
	fmt.Println()

	viewpoint := mgl64.Vec3{0.5, 1, -4}
	fmt.Printf("Viewpoint %v\n", viewpoint)

	sets := portal.BuildFrustumSets(portals, viewpoint, config.Workers, nil)
	for i, set := range sets {
		if set.Err != nil {
			fmt.Printf("  portal %d: %v\n", i, set.Err)
			continue
		}

		// only portals facing away from the viewpoint open onto the room behind them
		if set.Portal.Plane().DistanceTo(viewpoint) >= 0 {
			continue
		}

		fmt.Printf("  through portal %d (room %d):\n", i, set.Portal.Room())
		for j, other := range portals {
			if j == i {
				continue
			}

			culled, err := other.IsCulled(set.Planes)
			if err != nil {
				fmt.Printf("    portal %d: %v\n", j, err)
				continue
			}
			fmt.Printf("    portal %d culled=%v\n", j, culled)
		}
	}
	fmt.Println()

	if len(portals) > 0 {
		fmt.Println("Debug points of the first portal:")
		if _, err := portals[0].FrustumPlanes(viewpoint, nil, &DebugPrinter{}); err != nil {
			logger.Error("building frustum planes", zap.Error(err))
		}
	}
}
