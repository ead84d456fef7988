package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width/Height describe a box collider, Radius a circle; a box wins when both
// are set.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Radius   float64
	Mass     float64
	Friction float64
	Static   bool
	Sensor   bool
	// Frozen bodies keep their position and have velocity forced to zero.
	Frozen bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
