package systems

import (
	"log"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TryAttack authorizes an attack intent and commits it. The cooldown is
// committed before the windup is scheduled; a rejected intent changes nothing.
func TryAttack(w donburi.World, entry *donburi.Entry, side cfg.AttackSide) bool {
	weapon := components.Weapon.Get(entry)
	now := Now(w)
	if !CanAttack(weapon, locomotionState(weapon), now) {
		return false
	}

	weapon.NextAttackTime = now + weapon.Profile.Cooldown
	weapon.Committed++
	if weapon.Animator != nil {
		weapon.Animator.Play(side.Cue())
	}
	PlaySFX(w, cfg.SoundSwing)

	pending := &components.PendingAttack{CommittedAt: now, Side: side}
	weapon.Pending = pending
	entity := entry.Entity()
	pending.Handle = Schedule(w, weapon.Profile.Windup, entity, components.ActionWindup, func() {
		resolveAttack(w, entity, pending)
	})
	return true
}

// resolveAttack runs the hit query once the windup has elapsed.
func resolveAttack(w donburi.World, entity donburi.Entity, pending *components.PendingAttack) {
	if !w.Valid(entity) {
		return
	}
	entry := w.Entry(entity)
	weapon := components.Weapon.Get(entry)
	if weapon.Pending == pending {
		weapon.Pending = nil
	}
	weapon.Resolved++

	if weapon.Camera == nil || !weapon.Camera.Valid() {
		log.Printf("Warning: weapon %q resolved an attack without a camera", weapon.Name)
		return
	}
	cam := components.Camera.Get(weapon.Camera)
	origin, dir := cam.Position, cam.Forward.Normalized()
	profile := weapon.Profile

	hit, ok := Raycast(w, origin, dir, profile.Range, profile.AffectedLayers, true)
	recordTrace(w, entry, origin, dir, profile.Range, hit, ok)
	if !ok {
		return
	}
	weapon.LastHitAt = Now(w)
	PlaySFX(w, cfg.SoundHit)

	if !isOwnRoot(weapon, hit.Root) {
		if hit.Collider.HasComponent(components.RigidBody) {
			ApplyImpulse(components.RigidBody.Get(hit.Collider), dir.Scale(profile.ImpactForce))
		}
		if receiver := damageReceiverOf(hit); receiver != nil {
			amount := SampleDamage(getOrCreateRandom(w).Rand, profile.DamageMin, profile.DamageMax)
			receiver.ReceiveDamage(amount, attackerPosition(weapon, origin), hit.Point, cfg.DamageGeneric)
			if cfg.Debug.LogHits {
				log.Printf("%s %s hit %d for %d at %v", weapon.Name, pending.Side, hit.Root.Entity(), amount, hit.Point)
			}
		}
	}

	if weapon.Animator != nil {
		weapon.Animator.Hit(hit.Point)
	}
}

func isOwnRoot(weapon *components.WeaponData, root *donburi.Entry) bool {
	return weapon.Owner != nil && root != nil && weapon.Owner.Entity() == root.Entity()
}

// damageReceiverOf returns the struck collider's own receiver. The root is
// only used for the self-hit check.
func damageReceiverOf(hit RaycastHit) components.DamageReceiver {
	e := hit.Collider
	if e == nil || !e.Valid() || !e.HasComponent(components.Collider) {
		return nil
	}
	return components.Collider.Get(e).Receiver
}

func attackerPosition(weapon *components.WeaponData, fallback gamemath.Vec3) gamemath.Vec3 {
	if weapon.Owner == nil || !weapon.Owner.Valid() || !weapon.Owner.HasComponent(components.Character) {
		return fallback
	}
	return components.Character.Get(weapon.Owner).Position
}

func recordTrace(w donburi.World, entry *donburi.Entry, origin, dir gamemath.Vec3, dist float64, hit RaycastHit, ok bool) {
	if !entry.HasComponent(components.RayTrace) {
		return
	}
	trace := components.RayTrace.Get(entry)
	trace.Origin = origin
	trace.End = origin.Add(dir.Scale(dist))
	trace.Hit = ok
	if ok {
		trace.End = hit.Point
	}
	trace.Until = Now(w) + cfg.Debug.RayTrace
}
