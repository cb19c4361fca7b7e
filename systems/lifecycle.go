package systems

import (
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/yohamta/donburi"
)

// Select draws the weapon. It becomes active once the draw animation length
// has elapsed. Selecting an already selected weapon does nothing.
func Select(w donburi.World, entry *donburi.Entry) {
	weapon := components.Weapon.Get(entry)
	if weapon.Selected {
		return
	}
	weapon.Selected = true
	weapon.Active = false

	if weapon.Animator != nil {
		if !weapon.Animator.Initialized() {
			weapon.Animator.Initialize()
		}
		weapon.Animator.Play(cfg.CueDraw)
	}
	PlaySFX(w, cfg.SoundDraw)
	EnsureSwingRoot(w, entry)
	if weapon.Context != nil && weapon.Context.ActionMaps != nil {
		weapon.Context.ActionMaps.Enable(cfg.MapMelee)
	}

	entity := entry.Entity()
	weapon.ActivateHandle = Schedule(w, weapon.DrawAnimationLength, entity, components.ActionActivate, func() {
		activate(w, entity)
	})
}

func activate(w donburi.World, entity donburi.Entity) {
	if !w.Valid(entity) {
		return
	}
	weapon := components.Weapon.Get(w.Entry(entity))
	weapon.ActivateHandle = 0
	if !weapon.Selected {
		return
	}
	weapon.Active = true
	if weapon.Locomotion != nil && weapon.Locomotion.Valid() {
		components.Locomotion.Get(weapon.Locomotion).ReadyToVault = true
	}
}

// Deselect hides the weapon immediately. A draw in flight and an attack still
// in its windup are cancelled; the committed cooldown stays.
func Deselect(w donburi.World, entry *donburi.Entry) {
	weapon := components.Weapon.Get(entry)
	weapon.Active = false
	weapon.Selected = false

	entity := entry.Entity()
	CancelOwned(w, entity, components.ActionActivate)
	CancelOwned(w, entity, components.ActionWindup)
	weapon.ActivateHandle = 0
	weapon.Pending = nil

	if weapon.Locomotion != nil && weapon.Locomotion.Valid() {
		components.Locomotion.Get(weapon.Locomotion).ReadyToVault = false
	}
	if entry.HasComponent(components.MotionFeedback) {
		fb := components.MotionFeedback.Get(entry)
		fb.Shots = fb.Shots[:0]
	}
	if weapon.Animator != nil {
		weapon.Animator.Play(cfg.CueHide)
	}
	PlaySFX(w, cfg.SoundHide)
	if weapon.Context != nil && weapon.Context.ActionMaps != nil {
		weapon.Context.ActionMaps.Disable(cfg.MapMelee)
	}
}

// Interact commits the interact window and plays the interact cue.
func Interact(w donburi.World, entry *donburi.Entry) bool {
	weapon := components.Weapon.Get(entry)
	now := Now(w)
	if !weapon.Active || IsInteracting(weapon, now) {
		return false
	}
	weapon.NextInteractTime = now + max(weapon.InteractAnimationLength, weapon.InteractDelay)
	if weapon.Animator != nil {
		weapon.Animator.Play(cfg.CueInteract)
	}
	PlaySFX(w, cfg.SoundInteract)
	return true
}
