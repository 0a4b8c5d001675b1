package entity

import (
	"fmt"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

const defaultEnemyPrefab = "enemy.yaml"

// NewEnemyAt builds an enemy prefab and counts it in the level roster.
func NewEnemyAt(w *ecs.World, prefab string, x, y, z float64) (ecs.Entity, error) {
	if prefab == "" {
		prefab = defaultEnemyPrefab
	}
	entity, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	if !ecs.Has(w, entity, component.EnemyComponent.Kind()) {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("enemy: prefab %q has no enemy component", prefab)
	}
	if err := SetEntityTransform(w, entity, x, y, z, 0); err != nil {
		return 0, fmt.Errorf("enemy: override transform: %w", err)
	}
	if _, roster, ok := ecs.FirstValue(w, component.EnemyRosterComponent.Kind()); ok {
		roster.Initial++
	}
	return entity, nil
}
