package archetypes

import (
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Locomotion,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Weapon = newArchetype(
		tags.Weapon,
		components.Weapon,
		components.MotionFeedback,
		components.ViewPose,
		components.RayTrace,
	)
	WeaponVisual = newArchetype(
		transform.Transform,
	)
	SwingRoot = newArchetype(
		tags.SwingRoot,
		components.Swing,
		transform.Transform,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Collider,
	)
	Target = newArchetype(
		tags.Target,
		components.Object,
		components.Collider,
		components.Health,
		components.DamageQueue,
		components.RigidBody,
		components.HealthBar,
		components.Flash,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Object,
		components.Collider,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
