package components

import (
	"github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DamageReceiver is the capability a hit target exposes to take melee damage.
type DamageReceiver interface {
	ReceiveDamage(amount int, source, hit gamemath.Vec3, kind config.DamageType)
}

// ColliderData extends the resolv footprint with a vertical extent and the
// query metadata the raycast filters on.
type ColliderData struct {
	Layer    config.Layer
	Trigger  bool
	MinY     float64
	MaxY     float64
	Root     *donburi.Entry // Owning root; nil means the collider is its own root
	Receiver DamageReceiver // Optional
}

var Collider = donburi.NewComponentType[ColliderData]()

// RigidBodyData is a simple dynamic body. Impulses change velocity by J/m.
type RigidBodyData struct {
	Velocity gamemath.Vec3
	Mass     float64
}

var RigidBody = donburi.NewComponentType[RigidBodyData]()
