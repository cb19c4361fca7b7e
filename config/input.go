package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionRun
	ActionCrouch
	ActionJump
	ActionVault
	ActionAim
	ActionPrimary
	ActionSecondary
	ActionInteract
	ActionHolster
	ActionDebug
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// ActionMap is a named set of bindings. Several maps can be registered at once
// (e.g. "locomotion" and "melee") so a weapon only enables the map it reads.
type ActionMap struct {
	Name     string
	Bindings map[ActionID]InputBinding
}

// InputConfig holds all input mappings
type InputConfig struct {
	Maps []ActionMap
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// Action map names
const (
	MapLocomotion = "locomotion"
	MapMelee      = "melee"
	MapSystem     = "system"
)

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Maps: []ActionMap{
			{
				Name: MapLocomotion,
				Bindings: map[ActionID]InputBinding{
					ActionMoveForward: {
						Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
					},
					ActionMoveBack: {
						Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
					},
					ActionMoveLeft: {
						Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
					},
					ActionMoveRight: {
						Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
					},
					ActionRun: {
						Keys:                   []ebiten.Key{ebiten.KeyShiftLeft},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftStick},
					},
					ActionCrouch: {
						Keys:                   []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightStick},
					},
					ActionJump: {
						Keys:                   []ebiten.Key{ebiten.KeySpace},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
					},
					ActionVault: {
						Keys:                   []ebiten.Key{ebiten.KeyV},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
					},
					ActionAim: {
						MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonMiddle},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
					},
				},
			},
			{
				Name: MapMelee,
				Bindings: map[ActionID]InputBinding{
					ActionPrimary: {
						Keys:                   []ebiten.Key{ebiten.KeyJ},
						MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
					},
					ActionSecondary: {
						Keys:                   []ebiten.Key{ebiten.KeyK},
						MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonRight},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
					},
					ActionInteract: {
						Keys:                   []ebiten.Key{ebiten.KeyE},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
					},
				},
			},
			{
				Name: MapSystem,
				Bindings: map[ActionID]InputBinding{
					ActionHolster: {
						Keys:                   []ebiten.Key{ebiten.KeyQ},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
					},
					ActionDebug: {
						Keys: []ebiten.Key{ebiten.KeyF1},
					},
					ActionPause: {
						Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
					},
					ActionMenuUp: {
						Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
					},
					ActionMenuDown: {
						Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
					},
					ActionMenuSelect: {
						Keys: []ebiten.Key{ebiten.KeyEnter},
						// Select / View button
						StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
					},
				},
			},
		},
	}
}
