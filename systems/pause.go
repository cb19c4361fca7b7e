package systems

import (
	"fmt"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs.World)
	wasPaused := pause.IsPaused
	StepPause(ecs.World, getOrCreateInput(ecs.World))

	if pause.IsPaused != wasPaused {
		if pause.IsPaused {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		}
	}
}

// StepPause applies one tick of input to the pause menu.
func StepPause(w donburi.World, input *components.InputData) {
	pause := GetOrCreatePause(w)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
		}
		return
	}
	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around
	numOptions := int(components.MenuExit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption((int(pause.SelectedOption) - 1 + numOptions) % numOptions)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption((int(pause.SelectedOption) + 1) % numOptions)
	}
	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}

	settings := GetOrCreateSettings(w)
	switch pause.SelectedOption {
	case components.MenuResume:
		pause.IsPaused = false
	case components.MenuVolume:
		settings.SFXVolume = nextStep(cfg.SettingsMenu.VolumeSteps, settings.SFXVolume)
		SetSFXVolume(settings.SFXVolume)
		PlaySFX(w, cfg.SoundInteract)
		SaveCurrentSettings(settings)
	case components.MenuSway:
		settings.SwingScale = nextStep(cfg.SettingsMenu.SwaySteps, settings.SwingScale)
		cfg.Swing.Scale = settings.SwingScale
		SaveCurrentSettings(settings)
	case components.MenuExit:
		pause.ExitRequested = true
	}
}

// nextStep returns the first step above current, wrapping to the first.
func nextStep(steps []float64, current float64) float64 {
	if len(steps) == 0 {
		return current
	}
	for _, s := range steps {
		if s > current+1e-9 {
			return s
		}
	}
	return steps[0]
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs.World)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	settings := GetOrCreateSettings(ecs.World)
	options := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(options)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2
	face := fonts.HUD.Get()

	for i, option := range options {
		label := option
		switch components.PauseMenuOption(i) {
		case components.MenuVolume:
			label = fmt.Sprintf("%s: %d%%", option, int(settings.SFXVolume*100+0.5))
		case components.MenuSway:
			label = fmt.Sprintf("%s: %.1fx", option, settings.SwingScale)
		}

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
		x := int((width - float64(bounds.Dx())) / 2)
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)
		text.Draw(screen, label, face, x, int(y+cfg.Pause.MenuItemHeight), textColor)
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e.World); pause.IsPaused {
			return
		}
		system(e)
	}
}

// IsExitRequested reports whether the player chose Exit from the pause menu.
func IsExitRequested(w donburi.World) bool {
	return GetOrCreatePause(w).ExitRequested
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(w donburi.World) *components.PauseData {
	entry, ok := components.Pause.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
