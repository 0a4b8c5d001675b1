package system

import (
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

// DialogueSystem drives the typewriter with scaled time and the confirm key.
type DialogueSystem struct{}

func NewDialogueSystem() *DialogueSystem {
	return &DialogueSystem{}
}

func (s *DialogueSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := deltaTime(w)
	tick := currentTick(w)
	in := playerInput(w)

	ecs.ForEach(w, component.DialogueBoxComponent.Kind(), func(_ ecs.Entity, box *component.DialogueBox) {
		tw := box.Typewriter
		if tw == nil || !tw.Active() {
			return
		}
		justStarted := box.Started && box.StartedTick == tick
		if in != nil && in.ConfirmPressed && dt > 0 && !justStarted {
			tw.Confirm()
			pushCue(w, "click")
		}
		tw.Update(dt)
	})
}
