package system

import (
	"log"

	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// HealthSystem applies queued damage, latches player defeat and removes dead
// enemies.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

// ApplyHealthDelta subtracts a signed damage delta and clamps into [0, Max].
func ApplyHealthDelta(h *component.Health, delta float64) {
	if h == nil {
		return
	}
	h.Current = common.Clamp(h.Current-delta, 0, h.Max)
}

func (s *HealthSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, e := range w.Query(component.DamageRequestComponent.Kind()) {
		req, _ := ecs.Get(w, e, component.DamageRequestComponent.Kind())
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && req != nil && !h.Defeated {
			ApplyHealthDelta(h, req.Amount)
		}
		ecs.Remove(w, e, component.DamageRequestComponent.Kind())
	}

	if player, ok := playerEntity(w); ok {
		if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok && h.Current <= 0 && !h.Defeated {
			s.defeat(w, h)
		}
	}

	for _, e := range w.Query(component.EnemyComponent.Kind(), component.HealthComponent.Kind()) {
		h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
		if h.Current > 0 {
			continue
		}
		if _, roster, ok := ecs.FirstValue(w, component.EnemyRosterComponent.Kind()); ok {
			roster.Killed++
			log.Printf("health: enemy=%d down (%d/%d)", e, roster.Killed, roster.Initial)
		}
		pushCue(w, "enemy_down")
		ecs.DestroyEntity(w, e)
	}
}

// defeat runs once per session: the game freezes on the game-over screen.
func (s *HealthSystem) defeat(w *ecs.World, h *component.Health) {
	h.Defeated = true
	log.Printf("health: player defeated")

	if _, clock, ok := ecs.FirstValue(w, component.ClockComponent.Kind()); ok {
		clock.Scale = 0
	}
	if _, screens, ok := ecs.FirstValue(w, component.ScreensComponent.Kind()); ok {
		screens.Defeated = true
		screens.Mode = component.ScreenGameOver
		screens.CursorFree = true
	}
	if _, hud, ok := ecs.FirstValue(w, component.HUDComponent.Kind()); ok {
		hud.Visible = false
	}
	pushCue(w, "game_over")
}
