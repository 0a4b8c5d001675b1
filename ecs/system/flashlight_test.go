package system

import (
	"testing"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

func TestFlashlightTiers(t *testing.T) {
	cases := []struct {
		name      string
		charge    float64
		tier      component.FlashlightTier
		intensity float64
	}{
		{"full", 100, component.FlashlightTierFull, 2},
		{"just_above_half", 51, component.FlashlightTierFull, 2},
		{"half_is_mid", 50, component.FlashlightTierMid, 1},
		{"quarter_is_low", 25, component.FlashlightTierLow, 0.5},
		{"nearly_empty", 1, component.FlashlightTierLow, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fl := &component.Flashlight{Charge: c.charge, MaxCharge: 100}
			DrainFlashlight(fl, 0)
			if fl.Tier != c.tier || fl.Intensity != c.intensity {
				t.Fatalf("tier %v intensity %v, want %v %v", fl.Tier, fl.Intensity, c.tier, c.intensity)
			}
		})
	}
}

func TestFlashlightDrainsToDead(t *testing.T) {
	fl := &component.Flashlight{On: true, Charge: 0.5, MaxCharge: 10}
	DrainFlashlight(fl, 0.3)
	if !fl.On || fl.Dead {
		t.Fatalf("light should still be on: %+v", fl)
	}
	DrainFlashlight(fl, 0.3)
	if fl.On || !fl.Dead || fl.Charge != 0 {
		t.Fatalf("expected dead light, got %+v", fl)
	}

	RechargeFlashlight(fl, 5)
	if fl.Dead || fl.Charge != 5 {
		t.Fatalf("recharge should revive, got %+v", fl)
	}
	RechargeFlashlight(fl, 50)
	if fl.Charge != 10 {
		t.Fatalf("recharge must clamp to max, got %v", fl.Charge)
	}
}

func TestFlashlightOffDoesNotDrain(t *testing.T) {
	fl := &component.Flashlight{Charge: 5, MaxCharge: 10}
	DrainFlashlight(fl, 1)
	if fl.Charge != 5 {
		t.Fatalf("off light drained to %v", fl.Charge)
	}
}

func TestFlashlightToggle(t *testing.T) {
	cases := []struct {
		name     string
		dead     bool
		defeated bool
		wantOn   bool
	}{
		{"toggles_on", false, false, true},
		{"dead_stays_off", true, false, false},
		{"defeated_stays_off", false, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tw := newTestWorld(t, "MainMap")
			player := tw.addPlayer(t, 0, 0, 0)
			fl, _ := ecs.Get(tw.w, player, component.FlashlightComponent.Kind())
			if c.dead {
				fl.Charge = 0
				fl.Dead = true
			}
			tw.screens(t).Defeated = c.defeated
			tw.input(t).FlashlightPressed = true

			NewFlashlightSystem().Update(tw.w)
			if fl.On != c.wantOn {
				t.Fatalf("on=%v, want %v", fl.On, c.wantOn)
			}
		})
	}
}
