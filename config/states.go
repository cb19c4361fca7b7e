package config

// LocomotionState is the motion state reported by the locomotion controller.
type LocomotionState int

const (
	Idle LocomotionState = iota
	Walking
	Running
	Crouching
	Airborne
	Vaulting
)

var locomotionStateNames = [...]string{
	Idle:      "idle",
	Walking:   "walking",
	Running:   "running",
	Crouching: "crouching",
	Airborne:  "airborne",
	Vaulting:  "vaulting",
}

func (s LocomotionState) String() string {
	if s < 0 || int(s) >= len(locomotionStateNames) {
		return "unknown"
	}
	return locomotionStateNames[s]
}

// CueID is a visual cue requested from the arms animator.
type CueID int

const (
	CueDraw CueID = iota
	CueHide
	CueAttackLeft
	CueAttackRight
	CueInteract
)

var cueNames = [...]string{
	CueDraw:        "draw",
	CueHide:        "hide",
	CueAttackLeft:  "attack_left",
	CueAttackRight: "attack_right",
	CueInteract:    "interact",
}

func (c CueID) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// AttackSide tags an attack intent with the hand that performs it.
type AttackSide int

const (
	SideLeft AttackSide = iota
	SideRight
)

func (s AttackSide) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Cue returns the animator cue that plays the attack.
func (s AttackSide) Cue() CueID {
	if s == SideRight {
		return CueAttackRight
	}
	return CueAttackLeft
}

// Layer is a single physics layer bit.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerTarget
	LayerProp
	LayerCharacter
	LayerTrigger
	LayerIgnoreRaycast
)

// LayerMask is a set of layers.
type LayerMask uint32

// LayerAll matches every layer.
const LayerAll LayerMask = ^LayerMask(0)

func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= LayerMask(l)
	}
	return m
}

func (m LayerMask) Has(l Layer) bool {
	return m&LayerMask(l) != 0
}

// DamageType tags delivered damage. Melee hits always use DamageGeneric.
type DamageType int

const DamageGeneric DamageType = 0

// Default is the donburi layer every entity is created on.
const Default = 0
