package factory

import (
	"github.com/automoto/fpsmelee/archetypes"
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/systems"
	"github.com/automoto/fpsmelee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget creates a training dummy: a rigid body with health that takes
// melee damage through a HealthReceiver.
func CreateTarget(ecs *ecs.ECS, fp Footprint, hp int) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs)

	attachCollider(ecs, target, fp, components.ColliderData{
		Layer:    cfg.LayerTarget,
		Receiver: systems.HealthReceiver{Entry: target},
	}, tags.ResolvTarget)

	components.Health.SetValue(target, components.HealthData{
		Current: hp,
		Max:     hp,
	})
	components.RigidBody.SetValue(target, components.RigidBodyData{
		Mass: cfg.Physics.DefaultMass,
	})
	return target
}
