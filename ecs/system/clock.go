package system

import (
	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// ClockSystem advances the scaled simulation time once per tick.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, c *component.Clock) {
		if c.Scale < 0 {
			c.Scale = 0
		}
		c.Delta = common.FixedDelta * c.Scale
		c.Elapsed += c.Delta
		c.Tick++
	})
}
