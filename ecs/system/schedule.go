package system

import "github.com/milk9111/graveyardshift/ecs"

// NewGameScheduler wires every gameplay system in tick order. The probe runs
// before the controller so grounded is valid for jumps; physics clears it at
// the end of the tick.
func NewGameScheduler(input InputSource) (*ecs.Scheduler, *PhysicsSystem) {
	physics := NewPhysicsSystem()
	return ecs.NewScheduler(
		NewInputSystem(input),
		NewScreenSystem(),
		NewClockSystem(),
		NewGroundProbeSystem(physics),
		NewPlayerControllerSystem(physics),
		NewPathfindingSystem(),
		NewGoToSystem(),
		physics,
		NewTriggerSystem(),
		NewDialogueSystem(),
		NewFlashlightSystem(),
		NewWeaponSystem(physics),
		NewEnemySystem(),
		NewHealthSystem(),
		NewStatusBarSystem(),
	), physics
}
