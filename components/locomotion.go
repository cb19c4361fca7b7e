package components

import (
	"github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// LocomotionData is the locomotion controller's snapshot. Weapons only read
// it, except for ReadyToVault which the active weapon owns.
type LocomotionData struct {
	State        config.LocomotionState
	Velocity     gamemath.Vec3 // World space
	Yaw, Pitch   float64       // Radians
	LookDelta    math.Vec2     // Look input this tick (X yaw, Y pitch)
	Controllable bool
	Aiming       bool
	ReadyToVault bool

	// Controller internals
	Grounded    bool
	VaultTimer  float64
	AirborneFor float64
}

var Locomotion = donburi.NewComponentType[LocomotionData]()

type PreJumpEvent struct {
	Character *donburi.Entry
}

type LandingEvent struct {
	Character  *donburi.Entry
	FallDamage float64
}

type VaultEvent struct {
	Character *donburi.Entry
}

var (
	PreJump = events.NewEventType[PreJumpEvent]()
	Landing = events.NewEventType[LandingEvent]()
	Vault   = events.NewEventType[VaultEvent]()
)
