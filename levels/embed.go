package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

var ErrUnknownLevel = errors.New("levels: unknown level")

// Level is a map authored in the X/Z plane. Y is height.
type Level struct {
	Name       string     `yaml:"name"`
	Ground     float64    `yaml:"ground"`
	Bounds     Bounds     `yaml:"bounds"`
	Spawn      Spawn      `yaml:"spawn"`
	Objectives []string   `yaml:"objectives"`
	Walls      []Wall     `yaml:"walls"`
	Platforms  []Platform `yaml:"platforms"`
	Triggers   []Trigger  `yaml:"triggers"`
	Pickups    []Pickup   `yaml:"pickups"`
	Enemies    []Enemy    `yaml:"enemies"`
}

type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinZ float64 `yaml:"min_z"`
	MaxX float64 `yaml:"max_x"`
	MaxZ float64 `yaml:"max_z"`
}

type Spawn struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

type Wall struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color,omitempty"`
}

type Platform struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
	Height float64 `yaml:"height"`
}

// Trigger is an authored volume. Condition is an optional expression that
// must evaluate true for the volume to fire.
type Trigger struct {
	Tag       string `yaml:"tag"`
	Bounds    Bounds `yaml:"bounds"`
	Condition string `yaml:"condition,omitempty"`
}

// Pickup is a small trigger volume drawn as a billboard.
type Pickup struct {
	Tag    string  `yaml:"tag"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius,omitempty"`
}

type Enemy struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Prefab string  `yaml:"prefab,omitempty"`
}

// Names lists the embedded levels in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Load reads an embedded level by name, with or without the .yaml suffix.
func Load(name string) (*Level, error) {
	file := name
	if !strings.HasSuffix(file, ".yaml") {
		file += ".yaml"
	}
	data, err := fs.ReadFile(LevelsFS, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
		}
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", file, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, ".yaml")
	}
	return lvl, nil
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks geometry only. Tags and conditions are checked when the
// level is built into a world.
func (l *Level) Validate() error {
	b := l.Bounds
	if b.MaxX <= b.MinX || b.MaxZ <= b.MinZ {
		return fmt.Errorf("invalid bounds %+v", b)
	}
	if !b.contains(l.Spawn.X, l.Spawn.Z) {
		return fmt.Errorf("spawn (%.2f, %.2f) outside bounds", l.Spawn.X, l.Spawn.Z)
	}
	for i, w := range l.Walls {
		if w.Width <= 0 || w.Depth <= 0 {
			return fmt.Errorf("wall %d: non-positive size", i)
		}
	}
	for i, p := range l.Platforms {
		if p.Width <= 0 || p.Depth <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d: non-positive size", i)
		}
	}
	for i, t := range l.Triggers {
		if t.Tag == "" {
			return fmt.Errorf("trigger %d: missing tag", i)
		}
		if t.Bounds.MaxX <= t.Bounds.MinX || t.Bounds.MaxZ <= t.Bounds.MinZ {
			return fmt.Errorf("trigger %d (%s): invalid bounds", i, t.Tag)
		}
	}
	for i, p := range l.Pickups {
		if p.Tag == "" {
			return fmt.Errorf("pickup %d: missing tag", i)
		}
	}
	return nil
}

func (b Bounds) contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}
