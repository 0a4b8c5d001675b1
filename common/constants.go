package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	TicksPerSecond = 60
	FixedDelta     = 1.0 / TicksPerSecond

	// Gravity is in world units (metres) per second squared, pulling toward -Y.
	Gravity = 9.81
)
