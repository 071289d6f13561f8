package component

// DebugDraw is a singleton toggled at runtime. While Enabled the physics
// debug pass runs and stroke sprites are hidden.
type DebugDraw struct {
	Enabled bool
}

var DebugDrawComponent = NewComponent[DebugDraw]()
