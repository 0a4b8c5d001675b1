package component

// Clock is the simulation time source. Scale 0 freezes gameplay.
type Clock struct {
	Scale   float64
	Delta   float64
	Elapsed float64
	Tick    uint64
}

var ClockComponent = NewComponent[Clock]()
