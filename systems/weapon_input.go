package systems

import (
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AttackIntent picks at most one attack side for a tick. Primary wins ties.
func AttackIntent(canAttack, primary, secondary bool) (cfg.AttackSide, bool) {
	if !canAttack {
		return 0, false
	}
	if primary {
		return cfg.SideLeft, true
	}
	if secondary {
		return cfg.SideRight, true
	}
	return 0, false
}

// UpdateWeaponInput turns held triggers into attack intents and handles the
// interact and holster actions. Holding a trigger swings again as soon as the
// cooldown allows.
func UpdateWeaponInput(e *ecs.ECS) {
	input := getOrCreateInput(e.World)
	primary := GetAction(input, cfg.ActionPrimary).Pressed
	secondary := GetAction(input, cfg.ActionSecondary).Pressed
	interact := GetAction(input, cfg.ActionInteract).JustPressed
	holster := GetAction(input, cfg.ActionHolster).JustPressed

	var weapons []*donburi.Entry
	tags.Weapon.Each(e.World, func(entry *donburi.Entry) {
		weapons = append(weapons, entry)
	})

	for _, entry := range weapons {
		if holster {
			toggleHolster(e.World, entry)
			continue
		}
		SampleWeaponInput(e.World, entry, primary, secondary, interact)
	}
}

// SampleWeaponInput applies one tick of trigger state to a weapon.
func SampleWeaponInput(w donburi.World, entry *donburi.Entry, primary, secondary, interact bool) {
	weapon := components.Weapon.Get(entry)
	if !weapon.Active || !controllable(weapon) {
		return
	}

	now := Now(w)
	if side, ok := AttackIntent(CanAttack(weapon, locomotionState(weapon), now), primary, secondary); ok {
		TryAttack(w, entry, side)
		return
	}
	if interact {
		Interact(w, entry)
	}
}

func toggleHolster(w donburi.World, entry *donburi.Entry) {
	weapon := components.Weapon.Get(entry)
	if !weapon.Selected {
		Select(w, entry)
		return
	}
	if CanSwitch(weapon, locomotionState(weapon), Now(w)) {
		Deselect(w, entry)
	}
}

func controllable(weapon *components.WeaponData) bool {
	if weapon.Locomotion == nil || !weapon.Locomotion.Valid() {
		return false
	}
	return components.Locomotion.Get(weapon.Locomotion).Controllable
}
