package factory

import (
	"github.com/automoto/fpsmelee/archetypes"
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter creates a grounded, controllable character at pos facing yaw.
func CreateCharacter(ecs *ecs.ECS, name string, pos gamemath.Vec3, yaw float64) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	components.Character.SetValue(character, components.CharacterData{
		Name:      name,
		Position:  pos,
		EyeHeight: cfg.Camera.EyeHeight,
		Radius:    0.3,
	})
	components.Locomotion.SetValue(character, components.LocomotionData{
		State:        cfg.Idle,
		Yaw:          yaw,
		Controllable: true,
		Grounded:     true,
	})

	// Movement body only; without a Collider the weapon ray never sees it.
	r := components.Character.Get(character).Radius
	obj := components.NewFootprintObject(pos.X-r, pos.Z-r, 2*r, 2*r, tags.ResolvBody)
	obj.Data = character
	character.AddComponent(components.Object)
	components.Object.SetValue(character, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return character
}
