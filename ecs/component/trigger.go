package component

import "github.com/milk9111/graveyardshift/quest"

// AABB is an axis-aligned box on the X/Z ground plane.
type AABB struct {
	MinX float64
	MinZ float64
	MaxX float64
	MaxZ float64
}

func (b AABB) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// OverlapsCircle reports whether a circle of radius r at (x, z) touches b.
func (b AABB) OverlapsCircle(x, z, r float64) bool {
	cx := clampf(x, b.MinX, b.MaxX)
	cz := clampf(z, b.MinZ, b.MaxZ)
	dx, dz := x-cx, z-cz
	return dx*dx+dz*dz <= r*r
}

func (b AABB) Center() (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinZ + b.MaxZ) / 2
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Trigger is a quest volume. Inside tracks the previous tick's overlap so
// only enter edges raise events.
type Trigger struct {
	Tag       quest.Tag
	Bounds    AABB
	Condition *quest.Condition
	Inside    bool
}

var TriggerComponent = NewComponent[Trigger]()

// QuestEvent is a one-shot quest event raised by a system rather than by a
// volume (e.g. running out of ammo).
type QuestEvent struct {
	Tag quest.Tag
}

var QuestEventComponent = NewComponent[QuestEvent]()

// QuestState owns the story flags of the loaded level.
type QuestState struct {
	Machine *quest.Machine
}

var QuestStateComponent = NewComponent[QuestState]()
