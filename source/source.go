// Package source reads portal geometry from a YAML scene description.
//
//	portals:
//	  - name: portal_kitchen*2
//	    room: 0
//	    vertices: [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0]]
//	    transform:
//	      position: [4, 0, 2]
//	      rotation: [0, 90, 0] # euler angles in degrees, XYZ order
//	      scale: [1, 2, 1]
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/portal/geometry"
	"github.com/akmonengine/portal/naming"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Definition is the raw geometry of one portal, ready to be built.
type Definition struct {
	Name string
	// Target is the room the portal leads to, taken from the name
	Target    string
	Room      int
	Vertices  []mgl64.Vec3
	Transform geometry.Transform
}

type scene struct {
	Portals []portalNode `yaml:"portals" validate:"dive"`
}

type portalNode struct {
	Name      string         `yaml:"name" validate:"required"`
	Room      *int           `yaml:"room" validate:"omitempty,gte=-1"`
	Vertices  [][]float64    `yaml:"vertices" validate:"min=3,dive,len=3"`
	Transform *transformNode `yaml:"transform"`
}

type transformNode struct {
	Position []float64 `yaml:"position" validate:"omitempty,len=3"`
	Rotation []float64 `yaml:"rotation" validate:"omitempty,len=3"`
	Scale    []float64 `yaml:"scale" validate:"omitempty,len=3"`
}

// LoadFile reads the definitions of a scene file.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}

	return Load(bytes.NewReader(data))
}

// Load decodes and validates a scene description.
// Portals without a room are given room -1.
func Load(r io.Reader) ([]Definition, error) {
	var s scene
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding scene: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	definitions := make([]Definition, 0, len(s.Portals))
	for _, node := range s.Portals {
		if !naming.IsPortal(node.Name) {
			return nil, fmt.Errorf("invalid scene: %q is not a portal name (expected prefix %q)", node.Name, naming.PortalPrefix)
		}

		definitions = append(definitions, node.definition())
	}

	return definitions, nil
}

func (n portalNode) definition() Definition {
	definition := Definition{
		Name:      n.Name,
		Target:    naming.Target(n.Name),
		Room:      -1,
		Vertices:  make([]mgl64.Vec3, len(n.Vertices)),
		Transform: geometry.NewTransform(),
	}

	if n.Room != nil {
		definition.Room = *n.Room
	}

	for i, v := range n.Vertices {
		definition.Vertices[i] = mgl64.Vec3{v[0], v[1], v[2]}
	}

	if n.Transform != nil {
		definition.Transform = n.Transform.transform()
	}

	return definition
}

func (t transformNode) transform() geometry.Transform {
	transform := geometry.NewTransform()

	if len(t.Position) == 3 {
		transform.Position = mgl64.Vec3{t.Position[0], t.Position[1], t.Position[2]}
	}
	if len(t.Rotation) == 3 {
		transform.Rotation = mgl64.AnglesToQuat(
			mgl64.DegToRad(t.Rotation[0]),
			mgl64.DegToRad(t.Rotation[1]),
			mgl64.DegToRad(t.Rotation[2]),
			mgl64.XYZ,
		)
	}
	if len(t.Scale) == 3 {
		transform.Scale = mgl64.Vec3{t.Scale[0], t.Scale[1], t.Scale[2]}
	}

	return transform
}
