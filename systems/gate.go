package systems

import (
	"time"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/yohamta/donburi"
)

// CanAttack reports whether a new attack intent may be committed.
func CanAttack(w *components.WeaponData, state cfg.LocomotionState, now time.Duration) bool {
	return w.Active && state != cfg.Running && now >= w.NextAttackTime && now >= w.NextInteractTime
}

// CanSwitch reports whether the weapon may be put away for another one.
func CanSwitch(w *components.WeaponData, state cfg.LocomotionState, now time.Duration) bool {
	return w.Active && state != cfg.Running && now >= w.NextAttackTime
}

func IsBusy(w *components.WeaponData, now time.Duration) bool {
	return !w.Active || now < w.NextAttackTime
}

func IsAttacking(w *components.WeaponData, now time.Duration) bool {
	return now < w.NextAttackTime
}

func IsInteracting(w *components.WeaponData, now time.Duration) bool {
	return now < w.NextInteractTime
}

func IsIdle(w *components.WeaponData, now time.Duration) bool {
	return !IsAttacking(w, now) && !IsInteracting(w, now)
}

// WeaponStatus is a snapshot of every gate predicate for one weapon.
type WeaponStatus struct {
	Active      bool
	CanAttack   bool
	CanSwitch   bool
	Busy        bool
	Attacking   bool
	Interacting bool
	Idle        bool
}

// StatusOf evaluates the gate predicates against the weapon's locomotion
// state and the current game time.
func StatusOf(world donburi.World, entry *donburi.Entry) WeaponStatus {
	w := components.Weapon.Get(entry)
	now := Now(world)
	state := locomotionState(w)
	return WeaponStatus{
		Active:      w.Active,
		CanAttack:   CanAttack(w, state, now),
		CanSwitch:   CanSwitch(w, state, now),
		Busy:        IsBusy(w, now),
		Attacking:   IsAttacking(w, now),
		Interacting: IsInteracting(w, now),
		Idle:        IsIdle(w, now),
	}
}

func locomotionState(w *components.WeaponData) cfg.LocomotionState {
	if w.Locomotion == nil || !w.Locomotion.Valid() {
		return cfg.Idle
	}
	return components.Locomotion.Get(w.Locomotion).State
}
