package component

import "image/color"

// Sprite describes how the renderer draws an entity: as a flat-shaded wall
// face for WallTag entities, otherwise as a camera-facing billboard.
type Sprite struct {
	Color  color.RGBA
	Width  float64
	Height float64
	Label  string
}

var SpriteComponent = NewComponent[Sprite]()
