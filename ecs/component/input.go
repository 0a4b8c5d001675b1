package component

// Input stores per-tick logical input state for an entity.
type Input struct {
	LookX float64
	LookY float64
	// MoveX strafes right, MoveZ moves forward. Both in [-1, 1].
	MoveX float64
	MoveZ float64
	Run   bool
	Aim   bool

	JumpPressed       bool
	FlashlightPressed bool
	ConfirmPressed    bool
	MenuPressed       bool
	FirePressed       bool
	ReloadPressed     bool
}

var InputComponent = NewComponent[Input]()
