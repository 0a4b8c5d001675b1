package component

// Weapon is a hitscan gun with a magazine and reserve ammo.
type Weapon struct {
	Damage       float64
	Range        float64
	MagazineSize int
	Magazine     int
	Reserve      int

	FireCooldownTicks int
	ReloadTicks       int
	Cooldown          int
	Reloading         int

	Aiming bool
	// Flash counts down the muzzle flash ticks for the renderer.
	Flash int
}

var WeaponComponent = NewComponent[Weapon]()
