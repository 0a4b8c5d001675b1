package system

import (
	"container/heap"
	"math"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

const (
	defaultPathGridSize    = 1.0
	defaultPathRepathTicks = 15
)

// PathfindingSystem plans 4-way grid paths from each agent to the player
// around static walls.
type PathfindingSystem struct{}

func NewPathfindingSystem() *PathfindingSystem {
	return &PathfindingSystem{}
}

func (ps *PathfindingSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || deltaTime(w) <= 0 {
		return
	}

	playerX, playerZ, playerFound := playerPosition(w)
	if !playerFound {
		return
	}
	lvl, ok := currentLevel(w)
	if !ok {
		return
	}

	var blocked []bool
	var grid navGrid

	ecs.ForEach2(w, component.PathfindingComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pf *component.Pathfinding, t *component.Transform) {
		if pf.GridSize <= 0 {
			pf.GridSize = defaultPathGridSize
		}
		if pf.RepathTicks <= 0 {
			pf.RepathTicks = defaultPathRepathTicks
		}

		g := newNavGrid(lvl, pf.GridSize)
		if g.w <= 0 || g.h <= 0 {
			return
		}
		if blocked == nil || g != grid {
			grid = g
			blocked = buildBlockedGrid(w, grid)
		}

		start := grid.coord(t.X, t.Z)
		goal := grid.coord(playerX, playerZ)

		pf.TickCounter++
		if pf.TickCounter%pf.RepathTicks != 0 &&
			pf.LastStartX == start.x && pf.LastStartZ == start.z &&
			pf.LastTargetX == goal.x && pf.LastTargetZ == goal.z &&
			len(pf.Path) > 0 {
			return
		}

		path := astarPath(start, goal, blocked, grid.w, grid.h)
		pf.Path = grid.toWorld(path)
		pf.Next = 0
		if len(pf.Path) > 1 {
			// The first node is the agent's own cell.
			pf.Next = 1
		}
		pf.LastStartX, pf.LastStartZ = start.x, start.z
		pf.LastTargetX, pf.LastTargetZ = goal.x, goal.z
	})
}

type gridPos struct {
	x int
	z int
}

type navGrid struct {
	originX float64
	originZ float64
	size    float64
	w       int
	h       int
}

func newNavGrid(lvl *component.Level, size float64) navGrid {
	return navGrid{
		originX: lvl.MinX,
		originZ: lvl.MinZ,
		size:    size,
		w:       int(math.Ceil((lvl.MaxX - lvl.MinX) / size)),
		h:       int(math.Ceil((lvl.MaxZ - lvl.MinZ) / size)),
	}
}

func (g navGrid) coord(x, z float64) gridPos {
	gx := int(math.Floor((x - g.originX) / g.size))
	gz := int(math.Floor((z - g.originZ) / g.size))
	if gx < 0 {
		gx = 0
	}
	if gz < 0 {
		gz = 0
	}
	if gx >= g.w {
		gx = g.w - 1
	}
	if gz >= g.h {
		gz = g.h - 1
	}
	return gridPos{x: gx, z: gz}
}

func (g navGrid) toWorld(path []gridPos) []component.PathNode {
	if len(path) == 0 {
		return nil
	}
	out := make([]component.PathNode, 0, len(path))
	half := g.size * 0.5
	for _, p := range path {
		out = append(out, component.PathNode{
			X: g.originX + float64(p.x)*g.size + half,
			Z: g.originZ + float64(p.z)*g.size + half,
		})
	}
	return out
}

func buildBlockedGrid(w *ecs.World, g navGrid) []bool {
	blocked := make([]bool, g.w*g.h)
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		if !body.Static || body.Platform {
			return
		}

		minX, minZ := t.X-body.Width/2, t.Z-body.Depth/2
		maxX, maxZ := t.X+body.Width/2, t.Z+body.Depth/2
		start := g.coord(minX, minZ)
		end := g.coord(maxX-0.001, maxZ-0.001)

		for z := start.z; z <= end.z; z++ {
			for x := start.x; x <= end.x; x++ {
				blocked[z*g.w+x] = true
			}
		}
	})
	return blocked
}

func astarPath(start, goal gridPos, blocked []bool, gridW, gridH int) []gridPos {
	if start.x < 0 || start.z < 0 || goal.x < 0 || goal.z < 0 {
		return nil
	}
	if start.x >= gridW || start.z >= gridH || goal.x >= gridW || goal.z >= gridH {
		return nil
	}
	if blocked[goal.z*gridW+goal.x] {
		return nil
	}

	open := &openSet{}
	heap.Init(open)

	cameFrom := make([]int, gridW*gridH)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	gScore := make([]float64, gridW*gridH)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}
	startIdx := start.z*gridW + start.x
	goalIdx := goal.z*gridW + goal.x
	gScore[startIdx] = 0
	heap.Push(open, &openItem{pos: start, f: heuristic(start, goal), g: 0})

	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		cur := current.pos
		curIdx := cur.z*gridW + cur.x
		if current.g > gScore[curIdx] {
			continue
		}

		if curIdx == goalIdx {
			return reconstructPath(cameFrom, gridW, startIdx, goalIdx)
		}

		for _, n := range neighbors(cur, gridW, gridH) {
			idx := n.z*gridW + n.x
			if blocked[idx] {
				continue
			}
			tentativeG := gScore[curIdx] + 1
			if tentativeG < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentativeG
				heap.Push(open, &openItem{pos: n, f: tentativeG + heuristic(n, goal), g: tentativeG})
			}
		}
	}

	return nil
}

func reconstructPath(cameFrom []int, gridW int, startIdx, goalIdx int) []gridPos {
	if startIdx == goalIdx {
		return []gridPos{{x: startIdx % gridW, z: startIdx / gridW}}
	}
	if goalIdx < 0 || goalIdx >= len(cameFrom) || cameFrom[goalIdx] == -1 {
		return nil
	}

	path := make([]gridPos, 0, 32)
	cur := goalIdx
	for cur != -1 {
		path = append(path, gridPos{x: cur % gridW, z: cur / gridW})
		if cur == startIdx {
			break
		}
		cur = cameFrom[cur]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func neighbors(p gridPos, gridW, gridH int) []gridPos {
	out := make([]gridPos, 0, 4)
	if p.x > 0 {
		out = append(out, gridPos{x: p.x - 1, z: p.z})
	}
	if p.x < gridW-1 {
		out = append(out, gridPos{x: p.x + 1, z: p.z})
	}
	if p.z > 0 {
		out = append(out, gridPos{x: p.x, z: p.z - 1})
	}
	if p.z < gridH-1 {
		out = append(out, gridPos{x: p.x, z: p.z + 1})
	}
	return out
}

func heuristic(a, b gridPos) float64 {
	return math.Abs(float64(a.x-b.x)) + math.Abs(float64(a.z-b.z))
}

type openItem struct {
	pos   gridPos
	f     float64
	g     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
