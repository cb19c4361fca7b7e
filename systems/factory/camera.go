package factory

import (
	"github.com/automoto/fpsmelee/archetypes"
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates a first-person camera mounted on target's eyes.
func CreateCamera(ecs *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	data := components.CameraData{
		Target:  target,
		Forward: gamemath.V3(0, 0, -1),
		FOV:     cfg.Camera.DefaultFOV,
	}
	if target != nil && target.HasComponent(components.Character) {
		char := components.Character.Get(target)
		loc := components.Locomotion.Get(target)
		data.Position = char.Position.Add(gamemath.V3(0, char.EyeHeight, 0))
		data.Forward = gamemath.Forward(loc.Yaw, loc.Pitch)
	}
	components.Camera.SetValue(camera, data)
	return camera
}
