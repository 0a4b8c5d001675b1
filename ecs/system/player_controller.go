package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
)

const (
	pitchEpsilon      = 0.01
	wallProbeFraction = 0.04
	footstepSpeedSq   = 0.1
	defaultFOV        = 70.0
	aimFOV            = 45.0
)

// PlayerControllerSystem turns input into smoothed look, horizontal velocity
// and jumps for entities with a Player tuning component.
type PlayerControllerSystem struct {
	physics   *PhysicsSystem
	validated map[ecs.Entity]bool
	warned    map[ecs.Entity]bool
}

func NewPlayerControllerSystem(physics *PhysicsSystem) *PlayerControllerSystem {
	return &PlayerControllerSystem{
		physics:   physics,
		validated: make(map[ecs.Entity]bool),
		warned:    make(map[ecs.Entity]bool),
	}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	dt := deltaTime(w)

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		in, okIn := ecs.Get(w, e, component.InputComponent.Kind())
		t, okT := ecs.Get(w, e, component.TransformComponent.Kind())
		look, okL := ecs.Get(w, e, component.LookComponent.Kind())
		move, okM := ecs.Get(w, e, component.MovementComponent.Kind())
		pb, okB := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		contact, okC := ecs.Get(w, e, component.ContactComponent.Kind())
		if !okIn || !okT || !okL || !okM || !okB || !okC {
			if !p.warned[e] {
				log.Printf("player_controller: entity=%d missing required components, skipping", e)
				p.warned[e] = true
			}
			return
		}
		if !p.validated[e] {
			ValidateLookLimits(player)
			p.validated[e] = true
		}

		// Footsteps follow what the solver let the body do last step, not
		// what the controller asks for.
		var bodySpeedSq float64
		if pb.Body != nil {
			v := pb.Body.Velocity()
			bodySpeedSq = hypot2(v.X, v.Y)
		}

		if dt > 0 {
			UpdateLook(player, look, t, in.LookX, in.LookY, dt)
			if in.JumpPressed && contact.Grounded {
				Jump(player, pb, contact)
			}
			p.updateMovement(e, player, in, t, move, pb, contact, dt)
		}

		p.updateFootsteps(w, e, in, bodySpeedSq, contact, dt)
		p.updateCamera(w, e, player, t)
	})
}

// ValidateLookLimits clamps the pitch limits into [-90, 90] and orders them.
func ValidateLookLimits(player *component.Player) {
	if player.MinVerticalAngle < -90 || player.MinVerticalAngle > 90 {
		log.Printf("player_controller: min vertical angle %.1f out of range, clamping", player.MinVerticalAngle)
		player.MinVerticalAngle = common.Clamp(player.MinVerticalAngle, -90, 90)
	}
	if player.MaxVerticalAngle < -90 || player.MaxVerticalAngle > 90 {
		log.Printf("player_controller: max vertical angle %.1f out of range, clamping", player.MaxVerticalAngle)
		player.MaxVerticalAngle = common.Clamp(player.MaxVerticalAngle, -90, 90)
	}
	if player.MinVerticalAngle > player.MaxVerticalAngle {
		log.Printf("player_controller: vertical angles inverted (%.1f > %.1f), swapping", player.MinVerticalAngle, player.MaxVerticalAngle)
		player.MinVerticalAngle, player.MaxVerticalAngle = player.MaxVerticalAngle, player.MinVerticalAngle
	}
}

// UpdateLook smooths the raw look deltas and applies them to the transform.
// The pitch step is clamped around the current pitch so the result never
// leaves the configured range.
func UpdateLook(player *component.Player, look *component.Look, t *component.Transform, lookX, lookY, dt float64) {
	yawStep := look.Yaw.Update(lookX*player.MouseSensitivity, player.RotationSmoothness, dt)
	t.Yaw = common.NormalizeAngle(t.Yaw + yawStep)

	pitchStep := look.Pitch.Update(lookY*player.MouseSensitivity, player.RotationSmoothness, dt)
	lo := player.MinVerticalAngle - t.Pitch + pitchEpsilon
	hi := player.MaxVerticalAngle - t.Pitch - pitchEpsilon
	if lo > hi {
		mid := (lo + hi) / 2
		lo, hi = mid, mid
	}
	pitchStep = common.Clamp(pitchStep, lo, hi)
	look.Pitch.SetCurrent(pitchStep)
	t.Pitch = common.Clamp(t.Pitch+pitchStep, player.MinVerticalAngle, player.MaxVerticalAngle)
}

// Jump adds the jump impulse to the vertical velocity and leaves the ground.
func Jump(player *component.Player, pb *component.PhysicsBody, contact *component.Contact) {
	mass := pb.Mass
	if mass <= 0 {
		mass = 1
	}
	pb.VelocityY += player.JumpForce / mass
	contact.Grounded = false
}

// TargetVelocity is the desired X/Z velocity for a move axis pair at yaw.
func TargetVelocity(player *component.Player, moveX, moveZ, yaw float64, run bool) (float64, float64) {
	moveX, moveZ = normalize2(moveX, moveZ)
	speed := player.WalkSpeed
	if run {
		speed = player.RunSpeed
	}
	fx, fz := common.Forward(yaw)
	rx, rz := common.Right(yaw)
	return (fx*moveZ + rx*moveX) * speed, (fz*moveZ + rz*moveX) * speed
}

func (p *PlayerControllerSystem) updateMovement(e ecs.Entity, player *component.Player, in *component.Input, t *component.Transform, move *component.Movement, pb *component.PhysicsBody, contact *component.Contact, dt float64) {
	tx, tz := TargetVelocity(player, in.MoveX, in.MoveZ, t.Yaw, in.Run)

	if !contact.Grounded && hypot2(tx, tz) > 0 {
		dx, dz := normalize2(tx, tz)
		reach := pb.Radius * wallProbeFraction
		if _, hit := p.physics.SweepSolid(e, t.X, t.Z, dx*reach, dz*reach, pb.Radius); hit {
			move.X.Reset()
			move.Z.Reset()
			contact.WallAhead = true
			return
		}
	}

	vx := move.X.Update(tx, player.MovementSmoothness, dt)
	vz := move.Z.Update(tz, player.MovementSmoothness, dt)
	if pb.Body == nil {
		return
	}
	vel := pb.Body.Velocity()
	mass := pb.Body.Mass()
	impulse := cp.Vector{X: (vx - vel.X) * mass, Y: (vz - vel.Y) * mass}
	pb.Body.ApplyImpulseAtWorldPoint(impulse, pb.Body.Position())
}

func (p *PlayerControllerSystem) updateFootsteps(w *ecs.World, e ecs.Entity, in *component.Input, speedSq float64, contact *component.Contact, dt float64) {
	steps, ok := ecs.Get(w, e, component.FootstepsComponent.Kind())
	if !ok {
		return
	}
	steps.Playing = dt > 0 && contact.Grounded && speedSq > footstepSpeedSq
	steps.Running = steps.Playing && in.Run
}

func (p *PlayerControllerSystem) updateCamera(w *ecs.World, e ecs.Entity, player *component.Player, t *component.Transform) {
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam.X, cam.Y, cam.Z = t.X, t.Y+player.EyeHeight, t.Z
	cam.Yaw, cam.Pitch = t.Yaw, t.Pitch
	cam.FOV = defaultFOV
	if weapon, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok && weapon.Aiming {
		cam.FOV = aimFOV
	}
}
