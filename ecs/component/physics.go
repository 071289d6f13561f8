package component

import "github.com/jakecoffman/cp"

// Material is the surface response shared by every fixture of a stroke body.
type Material struct {
	Density     float64
	Friction    float64
	Restitution float64
}

// DefaultMaterial is used when a config leaves the material unset.
var DefaultMaterial = Material{Density: 1.0, Friction: 0.2, Restitution: 0.1}

type FixtureKind int

const (
	FixtureCircle FixtureKind = iota
	FixtureBox
)

func (k FixtureKind) String() string {
	switch k {
	case FixtureCircle:
		return "circle"
	case FixtureBox:
		return "box"
	default:
		return "unknown"
	}
}

// Fixture records the body-local geometry of one attached shape in world
// units. Boxes keep their four corners in Verts.
type Fixture struct {
	Kind       FixtureKind
	Center     cp.Vector
	Radius     float64
	HalfWidth  float64
	HalfHeight float64
	Angle      float64
	Verts      []cp.Vector
	Material   Material
}

// PhysicsBody links an entity to its Chipmunk body. The space owns Body;
// the component only references it.
type PhysicsBody struct {
	Body     *cp.Body
	Shapes   []*cp.Shape
	Fixtures []Fixture
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
