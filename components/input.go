package components

import (
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputMethod is the device family that produced the latest input.
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current   [cfg.ActionCount]bool // Current frame's Pressed state
	Previous  [cfg.ActionCount]bool // Previous frame's Pressed state
	Look      math.Vec2             // Mouse/right stick delta this frame
	Cursor    math.Vec2             // Last cursor position, for mouse deltas
	HasCursor bool

	LastInputMethod InputMethod // Drives the control labels in on-screen hints
}

var Input = donburi.NewComponentType[InputData]()
