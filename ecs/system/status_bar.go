package system

import (
	"fmt"

	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

const (
	healthBarScale   = 1000.0
	healthBarHeight  = 20.0
	healthBackMargin = 2.0
)

// StatusBarSystem mirrors player state into the HUD.
type StatusBarSystem struct{}

func NewStatusBarSystem() *StatusBarSystem {
	return &StatusBarSystem{}
}

func (s *StatusBarSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	_, hud, ok := ecs.FirstValue(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}

	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		SetHealthBar(hud, h)
	}
	if fl, ok := ecs.Get(w, player, component.FlashlightComponent.Kind()); ok {
		hud.BatteryValue = ChargeFraction(fl)
		hud.BatteryColor = fl.Indicator
	}
	if weapon, ok := ecs.Get(w, player, component.WeaponComponent.Kind()); ok {
		hud.Ammo = fmt.Sprintf("%d / %d", weapon.Magazine, weapon.Reserve)
	}
	if _, obj, ok := ecs.FirstValue(w, component.ObjectivesComponent.Kind()); ok {
		hud.Objective = obj.Current()
	}
}

// SetHealthBar sizes the bar to the health fraction.
func SetHealthBar(hud *component.HUD, h *component.Health) {
	frac := 0.0
	if h.Max > 0 {
		frac = common.Clamp(h.Current/h.Max, 0, 1)
	}
	hud.HealthBarWidth = frac * healthBarScale
	hud.HealthBarHeight = healthBarHeight
	hud.HealthBackWidth = hud.HealthBarWidth + healthBackMargin
	hud.HealthBackHeight = healthBarHeight + healthBackMargin
}
