package systems

import (
	"math"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// stickLookSpeed is the look delta in pixels per tick at full right stick.
const stickLookSpeed = 12.0

// UpdateInput polls raw input for every enabled action map and updates the
// Input component. Must run BEFORE locomotion and the weapon input gate.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for _, m := range enabledMaps(ecs.World) {
		for actionID, binding := range m.Bindings {
			if pressed, method := bindingPressed(binding, gamepadIDs); pressed {
				input.Current[actionID] = true
				input.LastInputMethod = method
			}
		}
	}

	left, right, up, down := getAnalogStickState(gamepadIDs)
	if left || right || up || down {
		input.LastInputMethod = components.InputGamepad
	}
	input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || left
	input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || right
	input.Current[cfg.ActionMoveForward] = input.Current[cfg.ActionMoveForward] || up
	input.Current[cfg.ActionMoveBack] = input.Current[cfg.ActionMoveBack] || down

	cx, cy := ebiten.CursorPosition()
	cursor := dmath.NewVec2(float64(cx), float64(cy))
	look := dmath.NewVec2(0, 0)
	if input.HasCursor {
		look = cursor.Sub(input.Cursor)
	}
	input.Cursor = cursor
	input.HasCursor = true
	if stick := rightStickLook(gamepadIDs); stick.X != 0 || stick.Y != 0 {
		look = look.Add(stick)
		input.LastInputMethod = components.InputGamepad
	}
	input.Look = look
}

// enabledMaps returns the maps enabled in the gameplay context. Without a
// context every configured map is polled.
func enabledMaps(w donburi.World) []cfg.ActionMap {
	entry, ok := components.GameplayContext.First(w)
	if !ok {
		return cfg.Input.Maps
	}
	ctx := components.GameplayContext.Get(entry)
	if ctx.ActionMaps == nil {
		return cfg.Input.Maps
	}
	return ctx.ActionMaps.EnabledMaps()
}

func bindingPressed(binding cfg.InputBinding, gamepads []ebiten.GamepadID) (bool, components.InputMethod) {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true, components.InputKeyboard
		}
	}
	for _, btn := range binding.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true, components.InputKeyboard
		}
	}
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true, components.InputGamepad
			}
		}
	}
	return false, components.InputKeyboard
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

func rightStickLook(gamepads []ebiten.GamepadID) dmath.Vec2 {
	deadzone := cfg.Input.AnalogDeadzone
	var look dmath.Vec2
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Abs(h) > deadzone {
			look.X += h * stickLookSpeed
		}
		if math.Abs(v) > deadzone {
			look.Y += v * stickLookSpeed
		}
	}
	return look
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
