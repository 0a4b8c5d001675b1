package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/levels"
	"github.com/milk9111/graveyardshift/prefabs"
	"github.com/milk9111/graveyardshift/quest"
)

const defaultPickupRadius = 0.5

var (
	defaultWallColor     = color.RGBA{R: 70, G: 70, B: 78, A: 255}
	defaultPlatformColor = color.RGBA{R: 92, G: 80, B: 64, A: 255}
)

// NewLevelWorld builds a fresh world for lvl in Playing mode.
func NewLevelWorld(lvl *levels.Level) (*ecs.World, error) {
	w := ecs.NewWorld()
	if err := LoadLevelToWorld(w, lvl); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadLevelToWorld creates the session, geometry, volumes, pickups, enemies
// and player for lvl. Unknown trigger tags and bad conditions fail the load.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("load level: nil world or level")
	}

	if _, err := NewSession(w, component.Level{
		Name:   lvl.Name,
		Ground: lvl.Ground,
		MinX:   lvl.Bounds.MinX,
		MinZ:   lvl.Bounds.MinZ,
		MaxX:   lvl.Bounds.MaxX,
		MaxZ:   lvl.Bounds.MaxZ,
	}, lvl.Objectives, component.ScreenPlaying); err != nil {
		return fmt.Errorf("load level %s: session: %w", lvl.Name, err)
	}

	for i, wall := range lvl.Walls {
		if err := addWall(w, lvl.Ground, wall); err != nil {
			return fmt.Errorf("load level %s: wall %d: %w", lvl.Name, i, err)
		}
	}
	for i, p := range lvl.Platforms {
		if err := addPlatform(w, p); err != nil {
			return fmt.Errorf("load level %s: platform %d: %w", lvl.Name, i, err)
		}
	}
	for i, trig := range lvl.Triggers {
		if err := addTriggerVolume(w, trig); err != nil {
			return fmt.Errorf("load level %s: trigger %d: %w", lvl.Name, i, err)
		}
	}

	if len(lvl.Pickups) > 0 {
		sprites, err := prefabs.LoadPickupSpecs()
		if err != nil {
			return fmt.Errorf("load level %s: %w", lvl.Name, err)
		}
		for i, p := range lvl.Pickups {
			if err := addPickup(w, lvl.Ground, p, sprites); err != nil {
				return fmt.Errorf("load level %s: pickup %d: %w", lvl.Name, i, err)
			}
		}
	}

	for i, en := range lvl.Enemies {
		if _, err := NewEnemyAt(w, en.Prefab, en.X, lvl.Ground, en.Z); err != nil {
			return fmt.Errorf("load level %s: enemy %d: %w", lvl.Name, i, err)
		}
	}

	s := lvl.Spawn
	if _, err := NewPlayerAt(w, s.X, max(s.Y, lvl.Ground), s.Z, s.Yaw); err != nil {
		return fmt.Errorf("load level %s: player: %w", lvl.Name, err)
	}
	return nil
}

func addWall(w *ecs.World, ground float64, wall levels.Wall) error {
	c := defaultWallColor
	if wall.Color != "" {
		parsed, err := prefabs.ParseColor(wall.Color)
		if err != nil {
			return err
		}
		c = color.RGBAModel.Convert(parsed).(color.RGBA)
	}
	height := wall.Height
	if height <= 0 {
		height = 3
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: wall.X, Y: ground, Z: wall.Z}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Static: true,
		Width:  wall.Width,
		Depth:  wall.Depth,
		Height: height,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: c, Width: wall.Width, Height: height})
}

func addPlatform(w *ecs.World, p levels.Platform) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.X, Y: p.Y, Z: p.Z}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Static:   true,
		Platform: true,
		Width:    p.Width,
		Depth:    p.Depth,
		Height:   p.Height,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: defaultPlatformColor, Width: p.Width, Height: p.Height})
}

func addTriggerVolume(w *ecs.World, trig levels.Trigger) error {
	tag, err := quest.ParseTag(trig.Tag)
	if err != nil {
		return err
	}
	cond, err := quest.CompileCondition(trig.Condition)
	if err != nil {
		return err
	}
	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{
		Tag: tag,
		Bounds: component.AABB{
			MinX: trig.Bounds.MinX,
			MinZ: trig.Bounds.MinZ,
			MaxX: trig.Bounds.MaxX,
			MaxZ: trig.Bounds.MaxZ,
		},
		Condition: cond,
	})
}

func addPickup(w *ecs.World, ground float64, p levels.Pickup, sprites prefabs.PickupSpecs) error {
	tag, err := quest.ParseTag(p.Tag)
	if err != nil {
		return err
	}
	r := p.Radius
	if r <= 0 {
		r = defaultPickupRadius
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{
		Tag:    tag,
		Bounds: component.AABB{MinX: p.X - r, MinZ: p.Z - r, MaxX: p.X + r, MaxZ: p.Z + r},
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.X, Y: ground, Z: p.Z}); err != nil {
		return err
	}
	spec, ok := sprites[string(tag)]
	if !ok {
		spec = prefabs.SpriteComponentSpec{Width: 0.4, Height: 0.4, Label: string(tag)}
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), spriteFromSpec(spec))
}
