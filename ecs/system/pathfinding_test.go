package system

import (
	"testing"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

func TestAStarPath(t *testing.T) {
	const w, h = 5, 5
	cases := []struct {
		name    string
		blocked []gridPos
		start   gridPos
		goal    gridPos
		wantLen int
	}{
		{"straight", nil, gridPos{0, 0}, gridPos{4, 0}, 5},
		{"same_cell", nil, gridPos{2, 2}, gridPos{2, 2}, 1},
		{"around_wall", []gridPos{{2, 0}, {2, 1}, {2, 2}, {2, 3}}, gridPos{0, 0}, gridPos{4, 0}, 13},
		{"goal_blocked", []gridPos{{4, 0}}, gridPos{0, 0}, gridPos{4, 0}, 0},
		{"sealed_off", []gridPos{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}, gridPos{0, 0}, gridPos{4, 0}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			blocked := make([]bool, w*h)
			for _, b := range c.blocked {
				blocked[b.z*w+b.x] = true
			}
			path := astarPath(c.start, c.goal, blocked, w, h)
			if len(path) != c.wantLen {
				t.Fatalf("path length %d, want %d: %v", len(path), c.wantLen, path)
			}
			if c.wantLen == 0 {
				return
			}
			if path[0] != c.start || path[len(path)-1] != c.goal {
				t.Fatalf("path endpoints %v..%v", path[0], path[len(path)-1])
			}
			for i := 1; i < len(path); i++ {
				dx, dz := path[i].x-path[i-1].x, path[i].z-path[i-1].z
				if dx*dx+dz*dz != 1 {
					t.Fatalf("non 4-way step %v -> %v", path[i-1], path[i])
				}
				if blocked[path[i].z*w+path[i].x] {
					t.Fatalf("path crosses a wall at %v", path[i])
				}
			}
		})
	}
}

func TestPathfindingSystemPlansAroundWalls(t *testing.T) {
	tw := newTestWorld(t, "MainMap")
	tw.addPlayer(t, 0.5, 0, 5.5)
	enemy := tw.addEnemy(t, 0.5, -4.5)
	tw.addWall(t, 0, 0, 6, 1)
	mustAdd(t, tw.w, enemy, component.PathfindingComponent.Kind(), &component.Pathfinding{GridSize: 1})

	NewPathfindingSystem().Update(tw.w)
	pf, _ := ecs.Get(tw.w, enemy, component.PathfindingComponent.Kind())
	if len(pf.Path) == 0 {
		t.Fatalf("expected a path")
	}
	for _, n := range pf.Path {
		if n.X > -3 && n.X < 3 && n.Z >= -0.5 && n.Z <= 0.5 {
			t.Fatalf("path node %+v inside the wall", n)
		}
	}
	last := pf.Path[len(pf.Path)-1]
	if last.X != 0.5 || last.Z != 5.5 {
		t.Fatalf("path should end in the player's cell, got %+v", last)
	}
	if pf.Next != 1 {
		t.Fatalf("agent should skip its own cell, next=%d", pf.Next)
	}
}

func TestGoToMovesTowardPlayer(t *testing.T) {
	tw := newTestWorld(t, "MainMap")
	tw.addPlayer(t, 0, 0, 6)
	enemy := tw.addEnemy(t, 0, -6)
	physics := NewPhysicsSystem()
	paths := NewPathfindingSystem()
	goTo := NewGoToSystem()
	mustAdd(t, tw.w, enemy, component.PathfindingComponent.Kind(), &component.Pathfinding{GridSize: 1})

	start := tw.transform(t, enemy).Z
	for i := 0; i < 60; i++ {
		physics.Update(tw.w)
		paths.Update(tw.w)
		goTo.Update(tw.w)
	}
	if z := tw.transform(t, enemy).Z; z <= start+1 {
		t.Fatalf("enemy did not approach, z %v -> %v", start, z)
	}
}

func TestGoToStopsWhenPaused(t *testing.T) {
	tw := newTestWorld(t, "MainMap")
	tw.addPlayer(t, 0, 0, 6)
	enemy := tw.addEnemy(t, 0, -6)
	physics := NewPhysicsSystem()
	physics.Update(tw.w)
	tw.clock(t).Delta = 0

	NewGoToSystem().Update(tw.w)
	pb, _ := ecs.Get(tw.w, enemy, component.PhysicsBodyComponent.Kind())
	if v := pb.Body.Velocity(); v.X != 0 || v.Y != 0 {
		t.Fatalf("paused enemy kept moving: %+v", v)
	}
}

func TestNextWaypoint(t *testing.T) {
	pf := &component.Pathfinding{Next: 1, Path: []component.PathNode{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 2, Z: 0}}}
	x, z := nextWaypoint(pf, 0.95, 0, 9, 9)
	if x != 2 || z != 0 || pf.Next != 2 {
		t.Fatalf("expected to skip reached nodes, got (%v, %v) next=%d", x, z, pf.Next)
	}
	pf.Next = 3
	if x, z := nextWaypoint(pf, 0, 0, 9, 9); x != 9 || z != 9 {
		t.Fatalf("expected fallback target, got (%v, %v)", x, z)
	}
}

func TestDialogueSystemConfirm(t *testing.T) {
	tw := newTestWorld(t, "MainMap")
	tw.addPlayer(t, 0, 0, 0)
	typer := tw.typewriter(t)
	typer.SetLines([]string{"one", "two"})
	typer.Start()
	s := NewDialogueSystem()

	tw.input(t).ConfirmPressed = true
	s.Update(tw.w)
	if typer.Text() != "one" {
		t.Fatalf("confirm should complete the line, got %q", typer.Text())
	}
	s.Update(tw.w)
	if typer.Index() != 1 {
		t.Fatalf("second confirm should advance, index=%d", typer.Index())
	}
	tw.input(t).ConfirmPressed = false
	for i := 0; i < 60; i++ {
		s.Update(tw.w)
	}
	if typer.Text() != "two" {
		t.Fatalf("reveal should finish with time, got %q", typer.Text())
	}

	tw.clock(t).Delta = 0
	tw.input(t).ConfirmPressed = true
	s.Update(tw.w)
	if !typer.Active() {
		t.Fatalf("confirm must be ignored while paused")
	}
}
