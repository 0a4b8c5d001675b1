package system

import (
	"image/color"

	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

var (
	batteryFull = color.RGBA{R: 0x3c, G: 0xd0, B: 0x50, A: 0xff}
	batteryMid  = color.RGBA{R: 0xe8, G: 0xd0, B: 0x30, A: 0xff}
	batteryLow  = color.RGBA{R: 0xd8, G: 0x30, B: 0x30, A: 0xff}
)

// FlashlightSystem toggles the light and drains its battery.
type FlashlightSystem struct{}

func NewFlashlightSystem() *FlashlightSystem {
	return &FlashlightSystem{}
}

func (s *FlashlightSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := deltaTime(w)
	defeated := isDefeated(w)

	ecs.ForEach(w, component.FlashlightComponent.Kind(), func(e ecs.Entity, fl *component.Flashlight) {
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && in.FlashlightPressed && dt > 0 {
			if !fl.Dead && !defeated {
				fl.On = !fl.On
				pushCue(w, "click")
			}
		}
		DrainFlashlight(fl, dt)
	})
}

// DrainFlashlight spends dt seconds of charge while on and refreshes the tier.
func DrainFlashlight(fl *component.Flashlight, dt float64) {
	if fl.On {
		fl.Charge = common.Clamp(fl.Charge-dt, 0, fl.MaxCharge)
	}
	if fl.Charge <= 0 {
		fl.Charge = 0
		fl.On = false
		fl.Dead = true
	} else if fl.Dead {
		fl.Dead = false
	}
	updateFlashlightTier(fl)
}

// RechargeFlashlight adds charge, clamped to the battery size, and revives a
// dead light.
func RechargeFlashlight(fl *component.Flashlight, amount float64) {
	fl.Charge = common.Clamp(fl.Charge+amount, 0, fl.MaxCharge)
	if fl.Charge > 0 {
		fl.Dead = false
	}
	updateFlashlightTier(fl)
}

// ChargeFraction is the battery indicator value in [0, 1].
func ChargeFraction(fl *component.Flashlight) float64 {
	if fl == nil || fl.MaxCharge <= 0 {
		return 0
	}
	return common.Clamp(fl.Charge/fl.MaxCharge, 0, 1)
}

func updateFlashlightTier(fl *component.Flashlight) {
	switch frac := ChargeFraction(fl); {
	case frac > 0.5:
		fl.Tier, fl.Intensity, fl.Indicator = component.FlashlightTierFull, 2, batteryFull
	case frac > 0.25:
		fl.Tier, fl.Intensity, fl.Indicator = component.FlashlightTierMid, 1, batteryMid
	default:
		fl.Tier, fl.Intensity, fl.Indicator = component.FlashlightTierLow, 0.5, batteryLow
	}
}
