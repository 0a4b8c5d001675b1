package system

import (
	"testing"

	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/dialogue"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/quest"
)

type testWorld struct {
	w       *ecs.World
	session ecs.Entity
	player  ecs.Entity
}

func newTestWorld(t *testing.T, level string) *testWorld {
	t.Helper()
	w := ecs.NewWorld()
	tw := &testWorld{w: w}

	tw.session = ecs.CreateEntity(w)
	mustAdd(t, w, tw.session, component.ClockComponent.Kind(), &component.Clock{Scale: 1, Delta: common.FixedDelta})
	mustAdd(t, w, tw.session, component.ScreensComponent.Kind(), &component.Screens{Mode: component.ScreenPlaying})
	mustAdd(t, w, tw.session, component.LevelComponent.Kind(), &component.Level{Name: level, MinX: -10, MinZ: -10, MaxX: 10, MaxZ: 10})
	mustAdd(t, w, tw.session, component.ObjectivesComponent.Kind(), &component.Objectives{Items: []string{"first", "second", "third"}})
	mustAdd(t, w, tw.session, component.EnemyRosterComponent.Kind(), &component.EnemyRoster{})
	mustAdd(t, w, tw.session, component.QuestStateComponent.Kind(), &component.QuestState{Machine: quest.NewMachine(quest.DefaultTable())})
	mustAdd(t, w, tw.session, component.AudioCuesComponent.Kind(), &component.AudioCues{})
	mustAdd(t, w, tw.session, component.HUDComponent.Kind(), &component.HUD{Visible: true})
	mustAdd(t, w, tw.session, component.DialogueBoxComponent.Kind(), &component.DialogueBox{Typewriter: dialogue.NewTypewriter(0.05)})
	return tw
}

func (tw *testWorld) addPlayer(t *testing.T, x, y, z float64) ecs.Entity {
	t.Helper()
	w := tw.w
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{
		WalkSpeed:          3,
		RunSpeed:           6,
		MovementSmoothness: 0.1,
		JumpForce:          5,
		MouseSensitivity:   2,
		RotationSmoothness: 0.05,
		MinVerticalAngle:   -60,
		MaxVerticalAngle:   60,
		EyeHeight:          1.6,
		StepHeight:         0.3,
		ProbeMargin:        0.05,
	})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.LookComponent.Kind(), &component.Look{})
	mustAdd(t, w, e, component.MovementComponent.Kind(), &component.Movement{})
	mustAdd(t, w, e, component.FootstepsComponent.Kind(), &component.Footsteps{})
	mustAdd(t, w, e, component.CameraComponent.Kind(), &component.Camera{})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.5, Mass: 1, Height: 1.8})
	mustAdd(t, w, e, component.ContactComponent.Kind(), &component.Contact{})
	mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Current: 100, Max: 100})
	mustAdd(t, w, e, component.FlashlightComponent.Kind(), &component.Flashlight{Charge: 60, MaxCharge: 60})
	mustAdd(t, w, e, component.WeaponComponent.Kind(), &component.Weapon{Damage: 25, Range: 30, MagazineSize: 6, Magazine: 6, Reserve: 12})
	tw.player = e
	return e
}

func (tw *testWorld) addWall(t *testing.T, x, z, width, depth float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, e, component.WallTagComponent.Kind(), &component.WallTag{})
	mustAdd(t, tw.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Z: z})
	mustAdd(t, tw.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Static: true, Width: width, Depth: depth, Height: 3})
	return e
}

func (tw *testWorld) addPlatform(t *testing.T, x, y, z, width, depth, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(tw.w)
	mustAdd(t, tw.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z})
	mustAdd(t, tw.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Static: true, Platform: true, Width: width, Depth: depth, Height: height})
	return e
}

func (tw *testWorld) addEnemy(t *testing.T, x, z float64) ecs.Entity {
	t.Helper()
	w := tw.w
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyComponent.Kind(), &component.Enemy{Speed: 2, ContactDamage: 10, ContactRange: 1, CooldownTicks: 30})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Z: z})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.4, Mass: 1})
	mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Current: 50, Max: 50})
	if roster := tw.roster(t); roster != nil {
		roster.Initial++
	}
	return e
}

func (tw *testWorld) input(t *testing.T) *component.Input {
	t.Helper()
	in, ok := ecs.Get(tw.w, tw.player, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("player has no input")
	}
	return in
}

func (tw *testWorld) transform(t *testing.T, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(tw.w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %d has no transform", e)
	}
	return tr
}

func (tw *testWorld) screens(t *testing.T) *component.Screens {
	t.Helper()
	s, _ := ecs.Get(tw.w, tw.session, component.ScreensComponent.Kind())
	return s
}

func (tw *testWorld) clock(t *testing.T) *component.Clock {
	t.Helper()
	c, _ := ecs.Get(tw.w, tw.session, component.ClockComponent.Kind())
	return c
}

func (tw *testWorld) hud(t *testing.T) *component.HUD {
	t.Helper()
	h, _ := ecs.Get(tw.w, tw.session, component.HUDComponent.Kind())
	return h
}

func (tw *testWorld) roster(t *testing.T) *component.EnemyRoster {
	t.Helper()
	r, _ := ecs.Get(tw.w, tw.session, component.EnemyRosterComponent.Kind())
	return r
}

func (tw *testWorld) objectives(t *testing.T) *component.Objectives {
	t.Helper()
	o, _ := ecs.Get(tw.w, tw.session, component.ObjectivesComponent.Kind())
	return o
}

func (tw *testWorld) typewriter(t *testing.T) *dialogue.Typewriter {
	t.Helper()
	box, _ := ecs.Get(tw.w, tw.session, component.DialogueBoxComponent.Kind())
	return box.Typewriter
}

func (tw *testWorld) machine(t *testing.T) *quest.Machine {
	t.Helper()
	qs, _ := ecs.Get(tw.w, tw.session, component.QuestStateComponent.Kind())
	return qs.Machine
}

func (tw *testWorld) levelRequests() []component.LevelChangeRequest {
	var out []component.LevelChangeRequest
	ecs.ForEach(tw.w, component.LevelChangeRequestComponent.Kind(), func(_ ecs.Entity, req *component.LevelChangeRequest) {
		out = append(out, *req)
	})
	return out
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}
