package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/prefabs"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"player":       addPlayer,
	"input":        addInput,
	"transform":    addTransform,
	"camera":       addCamera,
	"physics_body": addPhysicsBody,
	"health":       addHealth,
	"flashlight":   addFlashlight,
	"weapon":       addWeapon,
	"enemy":        addEnemy,
	"pathfinding":  addPathfinding,
	"sprite":       addSprite,
}

var componentBuildOrder = []string{
	"player_tag",
	"player",
	"input",
	"transform",
	"camera",
	"physics_body",
	"health",
	"flashlight",
	"weapon",
	"enemy",
	"pathfinding",
	"sprite",
}

// BuildEntity creates an entity from a prefab's component map. Unknown
// component names are an error and leave no partial entity behind.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		if _, ok := componentRegistry[k]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, k)
		}
		remaining[k] = v
	}

	e := ecs.CreateEntity(w)
	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: components not in build order: %v", prefabPath, names)
	}

	return e, nil
}

// SetEntityTransform places e, creating its transform if needed.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, z, yaw float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	t.Z = z
	t.Yaw = yaw
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

// addPlayer also attaches the controller's owned state.
func addPlayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		WalkSpeed:          spec.WalkSpeed,
		RunSpeed:           spec.RunSpeed,
		MovementSmoothness: spec.MovementSmoothness,
		JumpForce:          spec.JumpForce,
		MouseSensitivity:   spec.MouseSensitivity,
		RotationSmoothness: spec.RotationSmoothness,
		MinVerticalAngle:   spec.MinVerticalAngle,
		MaxVerticalAngle:   spec.MaxVerticalAngle,
		EyeHeight:          spec.EyeHeight,
		StepHeight:         spec.StepHeight,
		ProbeMargin:        spec.ProbeMargin,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.LookComponent.Kind(), &component.Look{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.FootstepsComponent.Kind(), &component.Footsteps{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:   spec.X,
		Y:   spec.Y,
		Z:   spec.Z,
		Yaw: spec.Yaw,
	})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{FOV: spec.FOV})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics_body spec: %w", err)
	}
	if spec.Radius <= 0 {
		return fmt.Errorf("physics_body radius must be positive, got %v", spec.Radius)
	}
	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	gravity := 1.0
	if spec.GravityScale != nil {
		gravity = *spec.GravityScale
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:       spec.Radius,
		Height:       spec.Height,
		Mass:         mass,
		Friction:     spec.Friction,
		GravityScale: gravity,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.ContactComponent.Kind(), &component.Contact{})
}

func addHealth(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		return fmt.Errorf("health max must be positive, got %v", spec.Max)
	}
	current := spec.Max
	if spec.Current != nil {
		current = *spec.Current
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: current, Max: spec.Max})
}

func addFlashlight(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.FlashlightComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode flashlight spec: %w", err)
	}
	return ecs.Add(w, e, component.FlashlightComponent.Kind(), &component.Flashlight{
		On:        spec.On,
		Charge:    spec.MaxCharge,
		MaxCharge: spec.MaxCharge,
	})
}

func addWeapon(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.WeaponComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode weapon spec: %w", err)
	}
	return ecs.Add(w, e, component.WeaponComponent.Kind(), &component.Weapon{
		Damage:            spec.Damage,
		Range:             spec.Range,
		MagazineSize:      spec.MagazineSize,
		Magazine:          spec.MagazineSize,
		Reserve:           spec.Reserve,
		FireCooldownTicks: spec.FireCooldownTicks,
		ReloadTicks:       spec.ReloadTicks,
	})
}

func addEnemy(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy spec: %w", err)
	}
	return ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Speed:         spec.Speed,
		ContactDamage: spec.ContactDamage,
		ContactRange:  spec.ContactRange,
		CooldownTicks: spec.CooldownTicks,
	})
}

func addPathfinding(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PathfindingComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pathfinding spec: %w", err)
	}
	grid := spec.GridSize
	if grid <= 0 {
		grid = 1
	}
	repath := spec.RepathTicks
	if repath <= 0 {
		repath = 15
	}
	return ecs.Add(w, e, component.PathfindingComponent.Kind(), &component.Pathfinding{
		GridSize:    grid,
		RepathTicks: repath,
	})
}

func addSprite(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), spriteFromSpec(spec))
}

func spriteFromSpec(spec prefabs.SpriteComponentSpec) *component.Sprite {
	return &component.Sprite{
		Color:  spec.Color.ToRGBA(),
		Width:  spec.Width,
		Height: spec.Height,
		Label:  spec.Label,
	}
}
