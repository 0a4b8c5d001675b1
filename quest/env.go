package quest

// Objectives receives objective completions.
type Objectives interface {
	CompleteObjective()
}

// EnemyTracker answers kill-count queries.
type EnemyTracker interface {
	CheckIfDead(count int) bool
	InitialCount() int
}

// SceneTransitioner loads another level.
type SceneTransitioner interface {
	Transition(scene string)
}

// DialogueStarter replaces the dialogue box lines and shows it.
type DialogueStarter interface {
	StartDialogue(lines []string)
}

// Resources is the player's consumable state touched by pickups.
type Resources interface {
	Damaged() bool
	Heal(fraction float64)
	Drained() bool
	Recharge(fraction float64)
	AddAmmo()
}

// Env carries the collaborators a transition may call. Nil collaborators are
// skipped.
type Env struct {
	Scene      string
	Objectives Objectives
	Enemies    EnemyTracker
	Scenes     SceneTransitioner
	Dialogue   DialogueStarter
	Resources  Resources
}

func (e *Env) enemiesDead(count int) bool {
	if e == nil || e.Enemies == nil {
		return false
	}
	return e.Enemies.CheckIfDead(count)
}

func (e *Env) allEnemiesDead() bool {
	if e == nil || e.Enemies == nil {
		return false
	}
	return e.Enemies.CheckIfDead(e.Enemies.InitialCount())
}
