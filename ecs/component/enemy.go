package component

// Enemy is a hostile that walks toward the player and hurts on contact.
type Enemy struct {
	Speed         float64
	ContactDamage float64
	ContactRange  float64
	CooldownTicks int
	Cooldown      int
}

var EnemyComponent = NewComponent[Enemy]()

// EnemyRoster counts the level's enemies and how many have died.
type EnemyRoster struct {
	Initial int
	Killed  int
}

func (r *EnemyRoster) CheckIfDead(count int) bool {
	if r == nil {
		return false
	}
	return r.Killed >= count
}

func (r *EnemyRoster) InitialCount() int {
	if r == nil {
		return 0
	}
	return r.Initial
}

var EnemyRosterComponent = NewComponent[EnemyRoster]()
