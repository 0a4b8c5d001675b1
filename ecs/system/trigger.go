package system

import (
	"log"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/quest"
)

// TriggerSystem raises quest events when the player enters a volume and for
// queued QuestEvent entities.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem {
	return &TriggerSystem{}
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	_, state, ok := ecs.FirstValue(w, component.QuestStateComponent.Kind())
	if !ok || state.Machine == nil {
		return
	}

	for _, e := range w.Query(component.QuestEventComponent.Kind()) {
		if ev, ok := ecs.Get(w, e, component.QuestEventComponent.Kind()); ok {
			state.Machine.Handle(ev.Tag, newQuestEnv(w))
		}
		ecs.DestroyEntity(w, e)
	}

	if isDefeated(w) {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	radius := defaultRadius
	if pb, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && pb.Radius > 0 {
		radius = pb.Radius
	}

	for _, e := range w.Query(component.TriggerComponent.Kind()) {
		trig, _ := ecs.Get(w, e, component.TriggerComponent.Kind())
		inside := trig.Bounds.OverlapsCircle(t.X, t.Z, radius)
		entered := inside && !trig.Inside
		trig.Inside = inside
		if !entered {
			continue
		}

		pass, err := s.conditionPasses(trig, state.Machine, w)
		if err != nil {
			log.Printf("trigger: entity=%d condition %q error: %v", e, trig.Condition, err)
			continue
		}
		if !pass {
			// Stay armed so the volume fires once the condition holds.
			trig.Inside = false
			continue
		}
		out := state.Machine.Handle(trig.Tag, newQuestEnv(w))
		if out.Consumed {
			pushCue(w, "pickup")
			ecs.DestroyEntity(w, e)
		}
	}
}

func (s *TriggerSystem) conditionPasses(trig *component.Trigger, machine *quest.Machine, w *ecs.World) (bool, error) {
	if trig.Condition == nil {
		return true, nil
	}
	return trig.Condition.Eval(conditionVars(w, machine))
}
