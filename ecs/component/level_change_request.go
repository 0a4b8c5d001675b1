package component

// LevelChangeRequest is a one-shot request emitted by gameplay systems to ask
// the outer game loop to load a different level.
//
// Systems only emit data; the Game loop owns IO and world reinitialization.
type LevelChangeRequest struct {
	TargetLevel string
	// Reload is set for restarts of the current level.
	Reload bool
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()

// Level describes the currently loaded level.
type Level struct {
	Name   string
	Ground float64
	MinX   float64
	MinZ   float64
	MaxX   float64
	MaxZ   float64
}

var LevelComponent = NewComponent[Level]()
