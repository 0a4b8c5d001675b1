package prefabs

import (
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedEntitySpecs(t *testing.T) {
	tests := []struct {
		file       string
		components []string
	}{
		{"player.yaml", []string{"player_tag", "player", "physics_body", "health", "flashlight", "weapon", "camera"}},
		{"enemy.yaml", []string{"enemy", "pathfinding", "physics_body", "health", "sprite"}},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(tc.file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			for _, name := range tc.components {
				if _, ok := spec.Components[name]; !ok {
					t.Fatalf("expected component %q in %s", name, tc.file)
				}
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("player.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	player, err := DecodeComponentSpec[PlayerComponentSpec](spec.Components["player"])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if player.RunSpeed <= player.WalkSpeed {
		t.Fatalf("expected run speed above walk speed, got %v <= %v", player.RunSpeed, player.WalkSpeed)
	}
	if player.MinVerticalAngle >= player.MaxVerticalAngle {
		t.Fatalf("expected ordered vertical limits, got %v %v", player.MinVerticalAngle, player.MaxVerticalAngle)
	}

	empty, err := DecodeComponentSpec[HealthComponentSpec](nil)
	if err != nil || empty.Max != 0 {
		t.Fatalf("expected zero spec for nil input, got %+v err=%v", empty, err)
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"'#ff0000'", color.RGBA{R: 255, A: 255}, false},
		{"'00ff0080'", color.RGBA{G: 128, A: 128}, false},
		{"'#abc'", color.RGBA{}, true},
		{"'zzzzzz'", color.RGBA{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := c.ToRGBA(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPickupAndControlsSpecs(t *testing.T) {
	pickups, err := LoadPickupSpecs()
	if err != nil {
		t.Fatalf("load pickups: %v", err)
	}
	wantLabels := map[string]string{
		"Medkit":  "medkit",
		"Ammo":    "ammo",
		"Battery": "battery",
		"Key":     "key",
		"Secret":  "?",
	}
	for tag, label := range wantLabels {
		spec, ok := pickups[tag]
		if !ok {
			t.Fatalf("missing pickup sprite for %s", tag)
		}
		if spec.Label != label {
			t.Fatalf("%s label = %q, want %q", tag, spec.Label, label)
		}
	}

	controls, err := LoadControlsSpec()
	if err != nil {
		t.Fatalf("load controls: %v", err)
	}
	if len(controls.Bindings) == 0 {
		t.Fatalf("expected key bindings")
	}
}

func TestEmbeddedYAMLParses(t *testing.T) {
	entries, err := fs.ReadDir(PrefabsFS, ".")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		t.Run(e.Name(), func(t *testing.T) {
			data, err := fs.ReadFile(PrefabsFS, e.Name())
			if err != nil {
				t.Fatal(err)
			}
			var doc any
			if err := yaml.Unmarshal(data, &doc); err != nil {
				t.Fatalf("parse: %v", err)
			}
		})
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	SetDir(dir)
	t.Cleanup(func() { SetDir("") })

	if err := os.WriteFile(filepath.Join(dir, "controls.yaml"), []byte("bindings:\n  - action: Test\n    keys: T\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	controls, err := LoadControlsSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(controls.Bindings) != 1 || controls.Bindings[0].Action != "Test" {
		t.Fatalf("expected disk override, got %+v", controls.Bindings)
	}
	if _, ok := ModTime("prefabs/controls.yaml"); !ok {
		t.Fatalf("expected mod time for disk prefab")
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("name: p\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Base(name) == "notes.txt" {
				t.Fatalf("non-spec file should be ignored")
			}
			if filepath.Base(name) == "player.yaml" {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for player.yaml event")
		}
	}
}
