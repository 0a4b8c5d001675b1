package levels

import (
	"errors"
	"testing"
)

func TestEmbeddedLevels(t *testing.T) {
	for _, name := range []string{"TutorialMap", "MainMap", "BossMap"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if lvl.Name != name {
				t.Fatalf("expected name %q, got %q", name, lvl.Name)
			}
			if len(lvl.Objectives) == 0 {
				t.Fatalf("expected objectives")
			}
			if len(lvl.Walls) == 0 {
				t.Fatalf("expected walls")
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"BossMap", "MainMap", "TutorialMap"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("Nowhere"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "minimal",
			doc:  "bounds: {min_x: -1, min_z: -1, max_x: 1, max_z: 1}\n",
		},
		{
			name:    "empty_bounds",
			doc:     "name: x\n",
			wantErr: true,
		},
		{
			name:    "spawn_outside",
			doc:     "bounds: {min_x: -1, min_z: -1, max_x: 1, max_z: 1}\nspawn: {x: 5, z: 0}\n",
			wantErr: true,
		},
		{
			name:    "flat_wall",
			doc:     "bounds: {min_x: -1, min_z: -1, max_x: 1, max_z: 1}\nwalls: [{x: 0, z: 0, width: 0, depth: 1}]\n",
			wantErr: true,
		},
		{
			name:    "untagged_trigger",
			doc:     "bounds: {min_x: -1, min_z: -1, max_x: 1, max_z: 1}\ntriggers: [{bounds: {min_x: 0, min_z: 0, max_x: 1, max_z: 1}}]\n",
			wantErr: true,
		},
		{
			name:    "inverted_trigger",
			doc:     "bounds: {min_x: -1, min_z: -1, max_x: 1, max_z: 1}\ntriggers: [{tag: Gate, bounds: {min_x: 1, min_z: 0, max_x: 0, max_z: 1}}]\n",
			wantErr: true,
		},
		{
			name:    "bad_yaml",
			doc:     "bounds: [",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
