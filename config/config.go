package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the startup configuration. Environment variables provide the
// defaults; command-line flags override them.
type Config struct {
	Level     string `env:"GRAVEYARD_LEVEL"      envDefault:"MainMenu"`
	Debug     bool   `env:"GRAVEYARD_DEBUG"`
	Watch     bool   `env:"GRAVEYARD_WATCH"`
	Mute      bool   `env:"GRAVEYARD_MUTE"`
	PrefabDir string `env:"GRAVEYARD_PREFAB_DIR" envDefault:"prefabs"`
	Scale     int    `env:"GRAVEYARD_WINDOW_SCALE" envDefault:"1"`
}

func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	return cfg, nil
}

// Load reads the environment and then applies args as flag overrides.
func Load(args []string) (Config, error) {
	cfg, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("graveyardshift", flag.ContinueOnError)
	fs.StringVar(&cfg.Level, "level", cfg.Level, "level to start in (MainMenu, TutorialMap, MainMap, BossMap)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "draw debug overlay and enable pose copy")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload prefabs when they change on disk")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable audio")
	fs.StringVar(&cfg.PrefabDir, "prefabs", cfg.PrefabDir, "directory overriding the embedded prefabs")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "window scale")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return cfg, nil
}
