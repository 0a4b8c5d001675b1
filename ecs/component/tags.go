package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()

type HUDTag struct{}

var HUDTagComponent = NewComponent[HUDTag]()
