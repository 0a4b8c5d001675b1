package system

import (
	"math"

	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// deltaTime returns the scaled tick delta. Worlds without a clock run at the
// fixed rate.
func deltaTime(w *ecs.World) float64 {
	_, clock, ok := ecs.FirstValue(w, component.ClockComponent.Kind())
	if !ok {
		return common.FixedDelta
	}
	return clock.Delta
}

func currentTick(w *ecs.World) uint64 {
	_, clock, ok := ecs.FirstValue(w, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.Tick
}

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}

func playerPosition(w *ecs.World) (float64, float64, bool) {
	player, ok := playerEntity(w)
	if !ok {
		return 0, 0, false
	}
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		return t.X, t.Z, true
	}
	return 0, 0, false
}

func playerInput(w *ecs.World) *component.Input {
	player, ok := playerEntity(w)
	if !ok {
		return nil
	}
	in, _ := ecs.Get(w, player, component.InputComponent.Kind())
	return in
}

func isDefeated(w *ecs.World) bool {
	_, screens, ok := ecs.FirstValue(w, component.ScreensComponent.Kind())
	return ok && screens.Defeated
}

func currentLevel(w *ecs.World) (*component.Level, bool) {
	_, lvl, ok := ecs.FirstValue(w, component.LevelComponent.Kind())
	return lvl, ok
}

// QueueDamage adds amount to the pending damage for e. Negative amounts heal.
func QueueDamage(w *ecs.World, e ecs.Entity, amount float64) {
	if !ecs.IsAlive(w, e) {
		return
	}
	if req, ok := ecs.Get(w, e, component.DamageRequestComponent.Kind()); ok {
		req.Amount += amount
		return
	}
	_ = ecs.Add(w, e, component.DamageRequestComponent.Kind(), &component.DamageRequest{Amount: amount})
}

// RequestLevel emits a one-shot level change request for the host.
func RequestLevel(w *ecs.World, name string, reload bool) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{TargetLevel: name, Reload: reload})
}

func pushCue(w *ecs.World, name string) {
	if _, cues, ok := ecs.FirstValue(w, component.AudioCuesComponent.Kind()); ok {
		cues.Push(name)
	}
}

func hypot2(x, z float64) float64 {
	return x*x + z*z
}

func normalize2(x, z float64) (float64, float64) {
	l := math.Hypot(x, z)
	if l == 0 {
		return 0, 0
	}
	return x / l, z / l
}
