package system

import (
	"math"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// EnemySystem hurts the player on contact, one hit per cooldown.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if s == nil || w == nil || deltaTime(w) <= 0 {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	px, pz, ok := playerPosition(w)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if enemy.Cooldown > 0 {
			enemy.Cooldown--
			return
		}
		if math.Hypot(px-t.X, pz-t.Z) > enemy.ContactRange {
			return
		}
		QueueDamage(w, player, enemy.ContactDamage)
		enemy.Cooldown = enemy.CooldownTicks
		pushCue(w, "hurt")
	})
}
