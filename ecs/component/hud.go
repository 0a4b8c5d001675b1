package component

import "image/color"

// HUD is the gameplay overlay state read by the renderer.
type HUD struct {
	Visible bool

	HealthBarWidth   float64
	HealthBarHeight  float64
	HealthBackWidth  float64
	HealthBackHeight float64

	BatteryValue float64
	BatteryColor color.RGBA

	Objective string
	Ammo      string
}

var HUDComponent = NewComponent[HUD]()
