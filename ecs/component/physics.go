package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Dynamic bodies are circles of Radius on the X/Z plane and Height tall;
// static bodies are Width x Depth boxes.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Depth    float64
	Height   float64
	Radius   float64
	Mass     float64
	Friction float64
	Static   bool

	// Platform marks a static box that can be stood on (its top is Y+Height)
	// but does not block horizontal movement.
	Platform bool

	// VelocityY is integrated by the physics system, not by Chipmunk.
	VelocityY    float64
	GravityScale float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Contact holds per-tick probe results for a dynamic body.
type Contact struct {
	// Grounded is true only for the tick following a ground contact. The
	// physics system clears it at the end of every tick.
	Grounded bool
	// Floor is the height of the surface under the body at the last probe.
	Floor float64
	// WallAhead is set when the airborne wall sweep hit a solid this tick.
	WallAhead bool
}

var ContactComponent = NewComponent[Contact]()
