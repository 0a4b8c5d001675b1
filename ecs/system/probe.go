package system

import (
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// GroundProbeSystem decides which bodies stand on something this tick. It
// runs before the controller; physics clears the result after stepping.
type GroundProbeSystem struct {
	physics *PhysicsSystem
}

func NewGroundProbeSystem(physics *PhysicsSystem) *GroundProbeSystem {
	return &GroundProbeSystem{physics: physics}
}

func (g *GroundProbeSystem) Update(w *ecs.World) {
	if g == nil || w == nil {
		return
	}
	ecs.ForEach3(w, component.ContactComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Contact, pb *component.PhysicsBody, t *component.Transform) {
		step, margin := defaultStepHeight, defaultProbeMargin
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok {
			if p.StepHeight > 0 {
				step = p.StepHeight
			}
			if p.ProbeMargin > 0 {
				margin = p.ProbeMargin
			}
		}
		radius := pb.Radius
		if radius <= 0 {
			radius = defaultRadius
		}
		c.Floor = g.physics.FloorAt(w, t.X, t.Z, radius, t.Y+step)
		c.Grounded = t.Y-c.Floor <= margin && pb.VelocityY <= 0
	})
}
