package components

import (
	"github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
)

type DamageEventData struct {
	Amount int
	Source gamemath.Vec3
	Point  gamemath.Vec3
	Type   config.DamageType
}

// DamageQueueData holds the damage events received since the combat system
// last ran. More than one hit can land on a target in a tick.
type DamageQueueData struct {
	Events []DamageEventData
}

var DamageQueue = donburi.NewComponentType[DamageQueueData]()
