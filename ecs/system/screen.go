package system

import (
	"log"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/quest"
)

// ScreenSystem runs the pause and menu sub-state machine. It owns the time
// scale outside of defeat.
type ScreenSystem struct{}

func NewScreenSystem() *ScreenSystem {
	return &ScreenSystem{}
}

func (s *ScreenSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	_, screens, ok := ecs.FirstValue(w, component.ScreensComponent.Kind())
	if !ok {
		return
	}

	if in := playerInput(w); in != nil && in.MenuPressed {
		s.toggle(w, screens)
	}

	for _, e := range w.Query(component.ScreenRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.ScreenRequestComponent.Kind())
		if ok {
			s.apply(w, screens, req.Action)
		}
		ecs.DestroyEntity(w, e)
	}
}

func (s *ScreenSystem) toggle(w *ecs.World, screens *component.Screens) {
	if screens.Defeated {
		return
	}
	switch screens.Mode {
	case component.ScreenPlaying:
		s.setMode(w, screens, component.ScreenPaused)
	case component.ScreenPaused, component.ScreenControls:
		s.setMode(w, screens, component.ScreenPlaying)
	}
}

func (s *ScreenSystem) apply(w *ecs.World, screens *component.Screens, action component.ScreenAction) {
	switch action {
	case component.ScreenActionResume:
		if !screens.Defeated {
			s.setMode(w, screens, component.ScreenPlaying)
		}
	case component.ScreenActionControls:
		if screens.Mode == component.ScreenPaused {
			s.setMode(w, screens, component.ScreenControls)
		}
	case component.ScreenActionBack:
		switch screens.Mode {
		case component.ScreenControls:
			s.setMode(w, screens, component.ScreenPaused)
		case component.ScreenAbout:
			s.setMode(w, screens, component.ScreenMainMenu)
		}
	case component.ScreenActionAbout:
		if screens.Mode == component.ScreenMainMenu {
			s.setMode(w, screens, component.ScreenAbout)
		}
	case component.ScreenActionRestart:
		if lvl, ok := currentLevel(w); ok {
			RequestLevel(w, lvl.Name, true)
		}
	case component.ScreenActionMainMap:
		RequestLevel(w, quest.SceneMain, false)
	case component.ScreenActionMainMenu:
		RequestLevel(w, quest.SceneMenu, false)
	case component.ScreenActionStart:
		RequestLevel(w, quest.SceneTutorial, false)
	case component.ScreenActionQuit:
		screens.QuitRequest = true
	}
	pushCue(w, "click")
}

func (s *ScreenSystem) setMode(w *ecs.World, screens *component.Screens, mode component.ScreenMode) {
	if screens.Mode == mode {
		return
	}
	log.Printf("screen: %s -> %s", screens.Mode, mode)
	screens.Mode = mode

	playing := mode == component.ScreenPlaying
	screens.CursorFree = !playing

	if _, clock, ok := ecs.FirstValue(w, component.ClockComponent.Kind()); ok {
		if playing {
			clock.Scale = 1
		} else {
			clock.Scale = 0
		}
	}
	if _, hud, ok := ecs.FirstValue(w, component.HUDComponent.Kind()); ok {
		hud.Visible = playing
	}
}
