package system

import (
	"testing"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/quest"
)

func pressMenu(t *testing.T, tw *testWorld, s *ScreenSystem) {
	t.Helper()
	tw.input(t).MenuPressed = true
	s.Update(tw.w)
	tw.input(t).MenuPressed = false
}

func request(t *testing.T, tw *testWorld, action component.ScreenAction) {
	t.Helper()
	e := ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, e, component.ScreenRequestComponent.Kind(), &component.ScreenRequest{Action: action})
}

func TestPauseToggle(t *testing.T) {
	tw := newTestWorld(t, "MainMap")
	tw.addPlayer(t, 0, 0, 0)
	s := NewScreenSystem()

	pressMenu(t, tw, s)
	screens := tw.screens(t)
	if screens.Mode != component.ScreenPaused || tw.clock(t).Scale != 0 || !screens.CursorFree || tw.hud(t).Visible {
		t.Fatalf("pause did not freeze: %+v scale=%v", screens, tw.clock(t).Scale)
	}

	pressMenu(t, tw, s)
	if screens.Mode != component.ScreenPlaying || tw.clock(t).Scale != 1 || screens.CursorFree || !tw.hud(t).Visible {
		t.Fatalf("resume did not restore: %+v scale=%v", screens, tw.clock(t).Scale)
	}
}

func TestPauseDisabledAfterDefeat(t *testing.T) {
	tw := newTestWorld(t, "MainMap")
	tw.addPlayer(t, 0, 0, 0)
	s := NewScreenSystem()
	screens := tw.screens(t)
	screens.Defeated = true
	screens.Mode = component.ScreenGameOver

	pressMenu(t, tw, s)
	request(t, tw, component.ScreenActionResume)
	s.Update(tw.w)
	if screens.Mode != component.ScreenGameOver {
		t.Fatalf("defeat must be irreversible, mode=%s", screens.Mode)
	}
}

func TestScreenRequests(t *testing.T) {
	cases := []struct {
		name      string
		start     component.ScreenMode
		action    component.ScreenAction
		wantMode  component.ScreenMode
		wantLevel string
		reload    bool
	}{
		{"controls_from_pause", component.ScreenPaused, component.ScreenActionControls, component.ScreenControls, "", false},
		{"back_to_pause", component.ScreenControls, component.ScreenActionBack, component.ScreenPaused, "", false},
		{"about_from_menu", component.ScreenMainMenu, component.ScreenActionAbout, component.ScreenAbout, "", false},
		{"back_to_menu", component.ScreenAbout, component.ScreenActionBack, component.ScreenMainMenu, "", false},
		{"resume", component.ScreenPaused, component.ScreenActionResume, component.ScreenPlaying, "", false},
		{"restart", component.ScreenPaused, component.ScreenActionRestart, component.ScreenPaused, "MainMap", true},
		{"main_map", component.ScreenGameOver, component.ScreenActionMainMap, component.ScreenGameOver, quest.SceneMain, false},
		{"main_menu", component.ScreenPaused, component.ScreenActionMainMenu, component.ScreenPaused, quest.SceneMenu, false},
		{"start", component.ScreenMainMenu, component.ScreenActionStart, component.ScreenMainMenu, quest.SceneTutorial, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tw := newTestWorld(t, "MainMap")
			tw.addPlayer(t, 0, 0, 0)
			tw.screens(t).Mode = c.start
			request(t, tw, c.action)

			NewScreenSystem().Update(tw.w)
			if got := tw.screens(t).Mode; got != c.wantMode {
				t.Fatalf("mode %s, want %s", got, c.wantMode)
			}
			reqs := tw.levelRequests()
			if c.wantLevel == "" {
				if len(reqs) != 0 {
					t.Fatalf("unexpected level requests %+v", reqs)
				}
				return
			}
			if len(reqs) != 1 || reqs[0].TargetLevel != c.wantLevel || reqs[0].Reload != c.reload {
				t.Fatalf("level requests %+v, want %s reload=%v", reqs, c.wantLevel, c.reload)
			}
			if len(tw.w.Query(component.ScreenRequestComponent.Kind())) != 0 {
				t.Fatalf("screen requests must be consumed")
			}
		})
	}
}

func TestQuitRequest(t *testing.T) {
	tw := newTestWorld(t, "MainMenu")
	tw.screens(t).Mode = component.ScreenMainMenu
	request(t, tw, component.ScreenActionQuit)
	NewScreenSystem().Update(tw.w)
	if !tw.screens(t).QuitRequest {
		t.Fatalf("expected quit request")
	}
}

func TestClockScalesDelta(t *testing.T) {
	tw := newTestWorld(t, "MainMap")
	clock := tw.clock(t)
	clock.Scale = 0.5
	c := NewClockSystem()
	c.Update(tw.w)
	if clock.Delta != 0.5/60.0 || clock.Tick != 1 {
		t.Fatalf("unexpected clock %+v", clock)
	}
	clock.Scale = 0
	c.Update(tw.w)
	if clock.Delta != 0 || clock.Elapsed != 0.5/60.0 {
		t.Fatalf("paused clock advanced: %+v", clock)
	}
}
