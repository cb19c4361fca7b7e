package systems

import (
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera mounts each camera at its character's eye and smooths the
// field of view toward the gameplay target (the aim FOV while aiming).
func UpdateCamera(e *ecs.ECS) {
	dt := DeltaSeconds(e.World)
	target := cfg.Camera.DefaultFOV
	if entry, ok := components.GameplayContext.First(e.World); ok {
		if fov := components.GameplayContext.Get(entry).TargetFOV; fov > 0 {
			target = fov
		}
	}
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		StepCamera(components.Camera.Get(entry), target, dt)
	})
}

func StepCamera(cam *components.CameraData, targetFOV, dt float64) {
	if cam.Target != nil && cam.Target.Valid() {
		char := components.Character.Get(cam.Target)
		loc := components.Locomotion.Get(cam.Target)
		cam.Position = char.Position.Add(gamemath.V3(0, char.EyeHeight, 0))
		cam.Forward = gamemath.Forward(loc.Yaw, loc.Pitch)
		if loc.Aiming {
			targetFOV = cfg.Camera.AimFOV
		}
	}
	if cam.FOV == 0 {
		cam.FOV = targetFOV
	}
	cam.FOV += (targetFOV - cam.FOV) * gamemath.ExpSmoothing(cfg.Camera.FOVSmoothing, dt)
}
