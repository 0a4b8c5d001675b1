package component

// PathNode is a world-space waypoint on the X/Z plane.
type PathNode struct {
	X float64
	Z float64
}

// Pathfinding stores grid-based pathfinding results and settings.
type Pathfinding struct {
	GridSize    float64
	RepathTicks int
	TickCounter int
	LastStartX  int
	LastStartZ  int
	LastTargetX int
	LastTargetZ int
	Path        []PathNode
	// Next is the index of the waypoint being walked to.
	Next int
}

var PathfindingComponent = NewComponent[Pathfinding]()
