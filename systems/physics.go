package systems

import (
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyImpulse changes the body's velocity by impulse/mass.
func ApplyImpulse(rb *components.RigidBodyData, impulse gamemath.Vec3) {
	mass := rb.Mass
	if mass <= 0 {
		mass = cfg.Physics.DefaultMass
	}
	rb.Velocity = rb.Velocity.Add(impulse.Scale(1 / mass))
}

// UpdateRigidBodies integrates dynamic bodies on the ground plane, stopping
// them against solids.
func UpdateRigidBodies(e *ecs.ECS) {
	dt := DeltaSeconds(e.World)
	components.RigidBody.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Object) {
			StepRigidBody(entry, dt)
		}
	})
}

func StepRigidBody(entry *donburi.Entry, dt float64) {
	rb := components.RigidBody.Get(entry)
	obj := components.Object.Get(entry)

	// Bodies are ground bound; vertical impulse is dropped.
	v := gamemath.ClampPlanar(rb.Velocity, cfg.Physics.MaxSpeed)
	v.Y = 0
	if v.IsZero() {
		rb.Velocity = v
		return
	}

	blockedX, blockedZ := moveAgainstSolids(obj.Object, v.X*dt, v.Z*dt)
	if blockedX {
		v.X = 0
	}
	if blockedZ {
		v.Z = 0
	}

	rb.Velocity = gamemath.ApplyFrictionPlanar(v, cfg.Physics.Friction)
}
