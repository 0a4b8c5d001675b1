package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

const waypointReach = 0.2

// GoToSystem walks enemies along their planned path toward the player.
type GoToSystem struct{}

func NewGoToSystem() *GoToSystem {
	return &GoToSystem{}
}

func (s *GoToSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	paused := deltaTime(w) <= 0
	px, pz, playerFound := playerPosition(w)

	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		if paused || !playerFound || math.Hypot(px-t.X, pz-t.Z) <= enemy.ContactRange {
			pb.Body.SetVelocityVector(cp.Vector{})
			return
		}

		tx, tz := px, pz
		if pf, ok := ecs.Get(w, e, component.PathfindingComponent.Kind()); ok {
			tx, tz = nextWaypoint(pf, t.X, t.Z, px, pz)
		}
		dx, dz := normalize2(tx-t.X, tz-t.Z)
		pb.Body.SetVelocityVector(cp.Vector{X: dx * enemy.Speed, Y: dz * enemy.Speed})
		if dx != 0 || dz != 0 {
			t.Yaw = math.Atan2(dx, dz) * 180 / math.Pi
		}
	})
}

// nextWaypoint advances past reached nodes and returns the point to head for.
// With no path left the agent heads straight for the fallback.
func nextWaypoint(pf *component.Pathfinding, x, z, fallbackX, fallbackZ float64) (float64, float64) {
	for pf.Next < len(pf.Path) {
		n := pf.Path[pf.Next]
		if math.Hypot(n.X-x, n.Z-z) > waypointReach {
			return n.X, n.Z
		}
		pf.Next++
	}
	return fallbackX, fallbackZ
}
