package quest

// Transition is one row of the trigger table: entering a volume tagged Tag,
// while Once is unset and Require holds, runs Effects and sets Once.
// Rows with Once == FlagNone may fire repeatedly.
type Transition struct {
	Tag     Tag
	Once    Flag
	Require func(Flags, *Env) bool
	Effects []Effect
}

// Effect is a single consequence of a transition, optionally conditioned.
type Effect struct {
	When func(Flags, *Env) bool
	Do   func(*Env, *Outcome)
}

const (
	SceneTutorial = "TutorialMap"
	SceneMain     = "MainMap"
	SceneBoss     = "BossMap"
	SceneMenu     = "MainMenu"
)

const cityKillRequirement = 3

var (
	jumpLines = []string{
		"Come on James, remember boot camp...",
		"You have to press the Space Key to jump!",
	}
	fireLines = []string{
		"Oh no, Enemies incoming!",
		"Remember, left mouse click is to shoot and right mouse click is to aim!",
	}
	cityLines = []string{
		"Looks like there is a city over here... I might want to go check for survivors here...",
	}
	lockedGateLines = []string{
		"The gate is locked... There may be a key in a near by cemetery...",
	}
	reloadLines = []string{
		"I am out of ammo! That gun is not going to reload itself. I must press 'r' to reload it.",
	}
)

func completeObjective() Effect {
	return Effect{Do: func(env *Env, out *Outcome) {
		if env.Objectives != nil {
			env.Objectives.CompleteObjective()
		}
		out.ObjectivesCompleted++
	}}
}

func say(lines ...string) Effect {
	return Effect{Do: func(env *Env, out *Outcome) {
		if env.Dialogue != nil {
			env.Dialogue.StartDialogue(lines)
		}
		out.Dialogue = true
	}}
}

func transitionTo(scene string) Effect {
	return Effect{Do: func(env *Env, out *Outcome) {
		if env.Scenes != nil {
			env.Scenes.Transition(scene)
		}
		out.Scene = scene
	}}
}

func consume() Effect {
	return Effect{Do: func(_ *Env, out *Outcome) { out.Consumed = true }}
}

func heal(fraction float64) Effect {
	return Effect{Do: func(env *Env, _ *Outcome) {
		if env.Resources != nil {
			env.Resources.Heal(fraction)
		}
	}}
}

func recharge(fraction float64) Effect {
	return Effect{Do: func(env *Env, _ *Outcome) {
		if env.Resources != nil {
			env.Resources.Recharge(fraction)
		}
	}}
}

func addAmmo() Effect {
	return Effect{Do: func(env *Env, _ *Outcome) {
		if env.Resources != nil {
			env.Resources.AddAmmo()
		}
	}}
}

func when(cond func(Flags, *Env) bool, e Effect) Effect {
	e.When = cond
	return e
}

func hasFlag(f Flag) func(Flags, *Env) bool {
	return func(flags Flags, _ *Env) bool { return flags.Has(f) }
}

func lacksFlag(f Flag) func(Flags, *Env) bool {
	return func(flags Flags, _ *Env) bool { return !flags.Has(f) }
}

// DefaultTable is the story of The Graveyard Shift.
func DefaultTable() []Transition {
	return []Transition{
		{
			Tag: TagMedkit,
			Require: func(_ Flags, env *Env) bool {
				return env.Resources != nil && env.Resources.Damaged()
			},
			Effects: []Effect{heal(1.0 / 3.0), consume()},
		},
		{Tag: TagAmmo, Effects: []Effect{addAmmo(), consume()}},
		{
			Tag: TagBattery,
			Require: func(_ Flags, env *Env) bool {
				return env.Resources != nil && env.Resources.Drained()
			},
			Effects: []Effect{recharge(0.5), consume()},
		},
		{Tag: TagSecret, Effects: []Effect{consume()}},
		{Tag: TagJumpLog, Once: FlagJumpTutorial, Effects: []Effect{say(jumpLines...)}},
		{Tag: TagFireTutorial, Once: FlagFireTutorial, Effects: []Effect{completeObjective(), say(fireLines...)}},
		{
			Tag:  TagKeyInTheCity,
			Once: FlagKeyInTheCity,
			Effects: []Effect{
				when(func(_ Flags, env *Env) bool { return env.enemiesDead(cityKillRequirement) }, completeObjective()),
				say(cityLines...),
			},
		},
		{Tag: TagKey, Once: FlagHasKey, Effects: []Effect{consume(), completeObjective()}},
		{Tag: TagEnterChurch, Once: FlagChurchEntered, Effects: []Effect{completeObjective()}},
		{
			Tag:     TagFindKey,
			Once:    FlagGateUnlocked,
			Require: hasFlag(FlagHasKey),
			Effects: []Effect{completeObjective(), transitionTo(SceneBoss)},
		},
		{
			Tag:     TagFindKey,
			Once:    FlagFindKey,
			Require: lacksFlag(FlagHasKey),
			Effects: []Effect{say(lockedGateLines...)},
		},
		{Tag: TagEnterForest, Once: FlagForestEntered, Effects: []Effect{completeObjective()}},
		{Tag: TagEnterCemetery, Once: FlagCemeteryEntered, Effects: []Effect{completeObjective()}},
		{
			Tag:     TagGate,
			Once:    FlagGateOpened,
			Require: func(_ Flags, env *Env) bool { return env.allEnemiesDead() },
			Effects: []Effect{completeObjective(), transitionTo(SceneMain)},
		},
		{
			Tag:     TagOutOfAmmo,
			Once:    FlagReloadTip,
			Require: func(_ Flags, env *Env) bool { return env.Scene == SceneTutorial },
			Effects: []Effect{say(reloadLines...)},
		},
	}
}
