package factory

import (
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameplayContext creates the world's gameplay context with every
// configured action map registered. Only the always-on maps start enabled;
// weapons enable their own map on Select.
func CreateGameplayContext(ecs *ecs.ECS) *components.GameplayContextData {
	entry := ecs.World.Entry(ecs.World.Create(components.GameplayContext))
	registry := components.NewActionMapRegistry(cfg.Input.Maps...)
	registry.Enable(cfg.MapLocomotion)
	registry.Enable(cfg.MapSystem)

	components.GameplayContext.SetValue(entry, components.GameplayContextData{
		ActionMaps: registry,
		TargetFOV:  cfg.Camera.DefaultFOV,
	})
	return components.GameplayContext.Get(entry)
}
