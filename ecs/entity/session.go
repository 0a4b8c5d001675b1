package entity

import (
	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/dialogue"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/quest"
)

// NewSession creates the singleton entity holding per-level state: clock,
// screens, objectives, quest flags, the enemy roster, HUD and dialogue box.
func NewSession(w *ecs.World, lvl component.Level, objectives []string, mode component.ScreenMode) (ecs.Entity, error) {
	playing := mode == component.ScreenPlaying
	scale := 0.0
	if playing {
		scale = 1
	}

	e := ecs.CreateEntity(w)
	adds := []func() error{
		func() error {
			return ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{Scale: scale, Delta: common.FixedDelta * scale})
		},
		func() error {
			return ecs.Add(w, e, component.ScreensComponent.Kind(), &component.Screens{Mode: mode, CursorFree: !playing})
		},
		func() error { return ecs.Add(w, e, component.LevelComponent.Kind(), &lvl) },
		func() error {
			return ecs.Add(w, e, component.ObjectivesComponent.Kind(), &component.Objectives{Items: append([]string(nil), objectives...)})
		},
		func() error { return ecs.Add(w, e, component.EnemyRosterComponent.Kind(), &component.EnemyRoster{}) },
		func() error {
			return ecs.Add(w, e, component.QuestStateComponent.Kind(), &component.QuestState{Machine: quest.NewMachine(quest.DefaultTable())})
		},
		func() error { return ecs.Add(w, e, component.AudioCuesComponent.Kind(), &component.AudioCues{}) },
		func() error { return ecs.Add(w, e, component.HUDTagComponent.Kind(), &component.HUDTag{}) },
		func() error { return ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{Visible: playing}) },
		func() error {
			return ecs.Add(w, e, component.DialogueBoxComponent.Kind(), &component.DialogueBox{Typewriter: dialogue.NewTypewriter(dialogue.DefaultInterval)})
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}
	return e, nil
}

// NewMenuWorld builds the world shown behind the main menu.
func NewMenuWorld() (*ecs.World, error) {
	w := ecs.NewWorld()
	if _, err := NewSession(w, component.Level{Name: quest.SceneMenu}, nil, component.ScreenMainMenu); err != nil {
		return nil, err
	}
	return w, nil
}
