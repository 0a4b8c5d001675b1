package component

import "github.com/milk9111/graveyardshift/dialogue"

// DialogueBox is the on-screen conversation surface.
type DialogueBox struct {
	Typewriter *dialogue.Typewriter
	// StartedTick is the clock tick of the last gameplay start. A confirm
	// press on that tick belongs to whatever opened the box.
	StartedTick uint64
	Started     bool
}

var DialogueBoxComponent = NewComponent[DialogueBox]()
