package component

// Transform places an entity in the world. X/Z is the ground plane simulated
// by Chipmunk; Y is height above the level origin. Angles are in degrees.
type Transform struct {
	X     float64
	Y     float64
	Z     float64
	Yaw   float64
	Pitch float64
}

var TransformComponent = NewComponent[Transform]()
