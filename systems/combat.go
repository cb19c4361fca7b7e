package systems

import (
	"log"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HealthReceiver queues damage on an entry with Health and DamageQueue. The
// combat system applies it on its next run.
type HealthReceiver struct {
	Entry *donburi.Entry
}

func (r HealthReceiver) ReceiveDamage(amount int, source, hit gamemath.Vec3, kind cfg.DamageType) {
	if r.Entry == nil || !r.Entry.Valid() || !r.Entry.HasComponent(components.DamageQueue) {
		return
	}
	q := components.DamageQueue.Get(r.Entry)
	q.Events = append(q.Events, components.DamageEventData{
		Amount: amount,
		Source: source,
		Point:  hit,
		Type:   kind,
	})
}

// UpdateCombat applies queued damage, keeps health values within range and
// breaks targets that reach zero.
func UpdateCombat(ecs *ecs.ECS) {
	// --------------------------------------------------------------------
	// 1. Apply queued damage
	// --------------------------------------------------------------------
	for e := range components.DamageQueue.Iter(ecs.World) {
		q := components.DamageQueue.Get(e)
		if len(q.Events) == 0 || !e.HasComponent(components.Health) {
			continue
		}
		hp := components.Health.Get(e)
		for _, dmg := range q.Events {
			hp.Current -= dmg.Amount
		}
		q.Events = q.Events[:0]

		if e.HasComponent(components.HealthBar) {
			components.HealthBar.Get(e).TimeToLive = cfg.Effects.HealthBarTicks
		}
		if e.HasComponent(components.Flash) {
			components.Flash.Get(e).Duration = cfg.Effects.FlashTicks
		}
	}

	// --------------------------------------------------------------------
	// 2. Clamp health ranges (0..Max)
	// --------------------------------------------------------------------
	var broken []*donburi.Entry
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Current == 0 && e.HasComponent(tags.Target) {
			broken = append(broken, e)
		}
	}

	for _, e := range broken {
		breakTarget(ecs.World, e)
	}
}

// breakTarget removes a destroyed target from the collider space and world.
func breakTarget(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(w); ok {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
	}
	if cfg.Debug.LogHits {
		log.Printf("target %d broken", e.Entity())
	}
	w.Remove(e.Entity())
}
