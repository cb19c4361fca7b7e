package components

import (
	"time"

	"github.com/automoto/fpsmelee/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// PendingAttack is a committed attack waiting for its windup to elapse.
type PendingAttack struct {
	CommittedAt time.Duration
	Side        config.AttackSide
	Handle      ActionHandle
}

// WeaponData is the melee weapon's runtime record plus its wiring.
type WeaponData struct {
	ID   uuid.UUID
	Name string

	Owner      *donburi.Entry // Character root; hits on this root are ignored
	Camera     *donburi.Entry // Entry with a Camera component
	Locomotion *donburi.Entry // Entry with a Locomotion component
	VisualRoot *donburi.Entry // Transform entry of the view model
	Context    *GameplayContextData
	Animator   ArmsAnimator

	Profile                 config.AttackProfile
	DrawAnimationLength     time.Duration
	AttackAnimationLength   time.Duration
	InteractAnimationLength time.Duration
	InteractDelay           time.Duration

	Active           bool // Draw finished and not deselected
	Selected         bool // Between Select and Deselect
	NextAttackTime   time.Duration
	NextInteractTime time.Duration
	Pending          *PendingAttack
	ActivateHandle   ActionHandle // Zero when no draw is in flight

	// Counters for HUD and tests
	Committed int
	Resolved  int
	LastHitAt time.Duration
}

var Weapon = donburi.NewComponentType[WeaponData]()
