package components

import (
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Target   *donburi.Entry // Character the camera is mounted on
	Position gamemath.Vec3
	Forward  gamemath.Vec3 // Unit length
	FOV      float64       // Degrees, smoothed toward the gameplay context target
}

var Camera = donburi.NewComponentType[CameraData]()
