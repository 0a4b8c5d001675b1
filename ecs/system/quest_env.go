package system

import (
	"log"

	"github.com/milk9111/graveyardshift/ecs"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/quest"
)

// worldQuestEnv adapts world components to the quest collaborators.
type worldQuestEnv struct {
	w      *ecs.World
	player ecs.Entity
}

func newQuestEnv(w *ecs.World) *quest.Env {
	adapter := &worldQuestEnv{w: w}
	adapter.player, _ = playerEntity(w)

	env := &quest.Env{
		Objectives: adapter,
		Scenes:     adapter,
		Dialogue:   adapter,
		Resources:  adapter,
	}
	if lvl, ok := currentLevel(w); ok {
		env.Scene = lvl.Name
	}
	if _, roster, ok := ecs.FirstValue(w, component.EnemyRosterComponent.Kind()); ok {
		env.Enemies = roster
	}
	return env
}

func (a *worldQuestEnv) CompleteObjective() {
	_, obj, ok := ecs.FirstValue(a.w, component.ObjectivesComponent.Kind())
	if !ok {
		return
	}
	if obj.Completed < len(obj.Items) {
		obj.Completed++
	}
	log.Printf("quest: objective %d/%d complete", obj.Completed, len(obj.Items))
}

func (a *worldQuestEnv) Transition(scene string) {
	RequestLevel(a.w, scene, false)
}

func (a *worldQuestEnv) StartDialogue(lines []string) {
	_, box, ok := ecs.FirstValue(a.w, component.DialogueBoxComponent.Kind())
	if !ok || box.Typewriter == nil {
		return
	}
	box.Typewriter.SetLines(lines)
	box.Typewriter.Start()
	box.StartedTick = currentTick(a.w)
	box.Started = true
}

func (a *worldQuestEnv) Damaged() bool {
	h, ok := ecs.Get(a.w, a.player, component.HealthComponent.Kind())
	return ok && h.Current < h.Max
}

func (a *worldQuestEnv) Heal(fraction float64) {
	if h, ok := ecs.Get(a.w, a.player, component.HealthComponent.Kind()); ok {
		ApplyHealthDelta(h, -h.Max*fraction)
	}
}

func (a *worldQuestEnv) Drained() bool {
	fl, ok := ecs.Get(a.w, a.player, component.FlashlightComponent.Kind())
	return ok && fl.Charge < fl.MaxCharge
}

func (a *worldQuestEnv) Recharge(fraction float64) {
	if fl, ok := ecs.Get(a.w, a.player, component.FlashlightComponent.Kind()); ok {
		RechargeFlashlight(fl, fl.MaxCharge*fraction)
	}
}

func (a *worldQuestEnv) AddAmmo() {
	if weapon, ok := ecs.Get(a.w, a.player, component.WeaponComponent.Kind()); ok {
		weapon.Reserve += weapon.MagazineSize
	}
}

// conditionVars snapshots the values trigger conditions may read.
func conditionVars(w *ecs.World, machine *quest.Machine) quest.ConditionVars {
	vars := quest.ConditionVars{HasKey: machine.Has(quest.FlagHasKey)}
	if lvl, ok := currentLevel(w); ok {
		vars.Scene = lvl.Name
	}
	if _, roster, ok := ecs.FirstValue(w, component.EnemyRosterComponent.Kind()); ok {
		vars.Kills = roster.Killed
		vars.InitialEnemies = roster.Initial
	}
	if player, ok := playerEntity(w); ok {
		if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			vars.Health = h.Current
			vars.MaxHealth = h.Max
		}
		if fl, ok := ecs.Get(w, player, component.FlashlightComponent.Kind()); ok {
			vars.Charge = fl.Charge
		}
	}
	return vars
}
