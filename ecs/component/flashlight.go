package component

import "image/color"

type FlashlightTier int

const (
	FlashlightTierLow FlashlightTier = iota
	FlashlightTierMid
	FlashlightTierFull
)

// Flashlight is a battery-driven light. Charge is measured in seconds of use.
type Flashlight struct {
	On        bool
	Dead      bool
	Charge    float64
	MaxCharge float64

	// Feedback derived from the tier table each tick.
	Tier      FlashlightTier
	Intensity float64
	Indicator color.RGBA
}

var FlashlightComponent = NewComponent[Flashlight]()
