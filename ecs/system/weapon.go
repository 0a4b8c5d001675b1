package system

import (
	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/quest"
)

const muzzleFlashTicks = 4

// WeaponSystem fires hitscan shots and handles reloading.
type WeaponSystem struct {
	physics *PhysicsSystem
}

func NewWeaponSystem(physics *PhysicsSystem) *WeaponSystem {
	return &WeaponSystem{physics: physics}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if s == nil || w == nil || deltaTime(w) <= 0 {
		return
	}

	ecs.ForEach2(w, component.WeaponComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, weapon *component.Weapon, in *component.Input) {
		weapon.Aiming = in.Aim
		if weapon.Cooldown > 0 {
			weapon.Cooldown--
		}
		if weapon.Flash > 0 {
			weapon.Flash--
		}
		if weapon.Reloading > 0 {
			weapon.Reloading--
			if weapon.Reloading == 0 {
				FinishReload(weapon)
			}
		}

		if in.ReloadPressed && StartReload(weapon) {
			pushCue(w, "reload")
		}
		if in.FirePressed && weapon.Cooldown == 0 && weapon.Reloading == 0 {
			s.fire(w, e, weapon)
		}
	})
}

// StartReload begins a reload if one is useful. Zero ReloadTicks reloads at once.
func StartReload(weapon *component.Weapon) bool {
	if weapon.Reloading > 0 || weapon.Magazine >= weapon.MagazineSize || weapon.Reserve <= 0 {
		return false
	}
	if weapon.ReloadTicks <= 0 {
		FinishReload(weapon)
		return true
	}
	weapon.Reloading = weapon.ReloadTicks
	return true
}

// FinishReload moves rounds from reserve into the magazine.
func FinishReload(weapon *component.Weapon) {
	need := weapon.MagazineSize - weapon.Magazine
	if need > weapon.Reserve {
		need = weapon.Reserve
	}
	if need <= 0 {
		return
	}
	weapon.Magazine += need
	weapon.Reserve -= need
}

func (s *WeaponSystem) fire(w *ecs.World, e ecs.Entity, weapon *component.Weapon) {
	if weapon.Magazine <= 0 {
		pushCue(w, "dry_fire")
		ev := ecs.CreateEntity(w)
		_ = ecs.Add(w, ev, component.QuestEventComponent.Kind(), &component.QuestEvent{Tag: quest.TagOutOfAmmo})
		weapon.Cooldown = weapon.FireCooldownTicks
		return
	}

	weapon.Magazine--
	weapon.Cooldown = weapon.FireCooldownTicks
	weapon.Flash = muzzleFlashTicks
	pushCue(w, "shot")

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	fx, fz := common.Forward(t.Yaw)
	hit, _, ok := s.physics.Raycast(e, t.X, t.Z, fx*weapon.Range, fz*weapon.Range, MaskHittable)
	if !ok || !ecs.Has(w, hit, component.EnemyComponent.Kind()) {
		return
	}
	QueueDamage(w, hit, weapon.Damage)
	pushCue(w, "hit")
}
