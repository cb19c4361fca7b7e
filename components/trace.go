package components

import (
	"time"

	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
)

// RayTraceData records a weapon's last hit query for the debug renderer.
type RayTraceData struct {
	Origin gamemath.Vec3
	End    gamemath.Vec3
	Hit    bool
	Until  time.Duration
}

var RayTrace = donburi.NewComponentType[RayTraceData]()
