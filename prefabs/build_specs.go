package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	WalkSpeed          float64 `yaml:"walk_speed"`
	RunSpeed           float64 `yaml:"run_speed"`
	MovementSmoothness float64 `yaml:"movement_smoothness"`
	JumpForce          float64 `yaml:"jump_force"`
	MouseSensitivity   float64 `yaml:"mouse_sensitivity"`
	RotationSmoothness float64 `yaml:"rotation_smoothness"`
	MinVerticalAngle   float64 `yaml:"min_vertical_angle"`
	MaxVerticalAngle   float64 `yaml:"max_vertical_angle"`
	EyeHeight          float64 `yaml:"eye_height"`
	StepHeight         float64 `yaml:"step_height"`
	ProbeMargin        float64 `yaml:"probe_margin"`
}

type CameraComponentSpec struct {
	FOV float64 `yaml:"fov"`
}

type PhysicsBodyComponentSpec struct {
	Radius       float64  `yaml:"radius"`
	Height       float64  `yaml:"height"`
	Mass         float64  `yaml:"mass"`
	Friction     float64  `yaml:"friction"`
	GravityScale *float64 `yaml:"gravity_scale"`
}

type HealthComponentSpec struct {
	Max     float64  `yaml:"max"`
	Current *float64 `yaml:"current"`
}

type FlashlightComponentSpec struct {
	MaxCharge float64 `yaml:"max_charge"`
	On        bool    `yaml:"on"`
}

type WeaponComponentSpec struct {
	Damage            float64 `yaml:"damage"`
	Range             float64 `yaml:"range"`
	MagazineSize      int     `yaml:"magazine_size"`
	Reserve           int     `yaml:"reserve"`
	FireCooldownTicks int     `yaml:"fire_cooldown_ticks"`
	ReloadTicks       int     `yaml:"reload_ticks"`
}

type EnemyComponentSpec struct {
	Speed         float64 `yaml:"speed"`
	ContactDamage float64 `yaml:"contact_damage"`
	ContactRange  float64 `yaml:"contact_range"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
}

type PathfindingComponentSpec struct {
	GridSize    float64 `yaml:"grid_size"`
	RepathTicks int     `yaml:"repath_ticks"`
}

type SpriteComponentSpec struct {
	Color  YAMLColor `yaml:"color"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Label  string    `yaml:"label"`
}
