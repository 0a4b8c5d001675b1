package component

import "github.com/milk9111/graveyardshift/common"

// Player holds controller tuning loaded from the player prefab.
type Player struct {
	WalkSpeed          float64
	RunSpeed           float64
	MovementSmoothness float64
	JumpForce          float64

	MouseSensitivity   float64
	RotationSmoothness float64
	MinVerticalAngle   float64
	MaxVerticalAngle   float64

	EyeHeight   float64
	StepHeight  float64
	ProbeMargin float64
}

var PlayerComponent = NewComponent[Player]()

// Look owns the smoothed look deltas. Only the controller mutates it.
type Look struct {
	Yaw   common.SmoothRotation
	Pitch common.SmoothRotation
}

var LookComponent = NewComponent[Look]()

// Movement owns the smoothed horizontal velocity on the X/Z plane.
type Movement struct {
	X common.SmoothVelocity
	Z common.SmoothVelocity
}

var MovementComponent = NewComponent[Movement]()

// Footsteps is the desired state of the footstep loop.
type Footsteps struct {
	Playing bool
	Running bool
}

var FootstepsComponent = NewComponent[Footsteps]()

// Camera is the eye the renderer draws from. It follows the player body.
type Camera struct {
	X     float64
	Y     float64
	Z     float64
	Yaw   float64
	Pitch float64
	FOV   float64
}

var CameraComponent = NewComponent[Camera]()
