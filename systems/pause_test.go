package systems

import (
	"testing"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// press returns input where only id went down this tick.
func press(id cfg.ActionID) *components.InputData {
	in := &components.InputData{}
	in.Current[id] = true
	return in
}

func TestPauseToggleAndMenu(t *testing.T) {
	swing := cfg.Swing
	t.Cleanup(func() { cfg.Swing = swing; SetSFXVolume(cfg.Audio.DefaultSFXVol) })

	w := donburi.NewWorld()
	pause := GetOrCreatePause(w)

	StepPause(w, press(cfg.ActionMenuDown))
	if pause.SelectedOption != components.MenuResume {
		t.Fatal("menu navigated while not paused")
	}

	StepPause(w, press(cfg.ActionPause))
	if !pause.IsPaused {
		t.Fatal("pause did not toggle on")
	}

	StepPause(w, press(cfg.ActionMenuUp))
	if pause.SelectedOption != components.MenuExit {
		t.Errorf("up from the top = %v, want wrap to exit", pause.SelectedOption)
	}
	StepPause(w, press(cfg.ActionMenuDown))
	StepPause(w, press(cfg.ActionMenuDown))
	if pause.SelectedOption != components.MenuVolume {
		t.Fatalf("selected = %v, want volume", pause.SelectedOption)
	}

	settings := GetOrCreateSettings(w)
	settings.SFXVolume = 0.5
	StepPause(w, press(cfg.ActionMenuSelect))
	if settings.SFXVolume != 0.75 || GetSFXVolume() != 0.75 {
		t.Errorf("volume = %v (global %v), want 0.75", settings.SFXVolume, GetSFXVolume())
	}

	StepPause(w, press(cfg.ActionMenuDown))
	settings.SwingScale = 1.5
	StepPause(w, press(cfg.ActionMenuSelect))
	if settings.SwingScale != 0 || cfg.Swing.Scale != 0 {
		t.Errorf("sway = %v (config %v), want wrap to 0", settings.SwingScale, cfg.Swing.Scale)
	}

	StepPause(w, press(cfg.ActionMenuDown))
	StepPause(w, press(cfg.ActionMenuSelect))
	if !IsExitRequested(w) {
		t.Error("exit not requested")
	}

	StepPause(w, press(cfg.ActionPause))
	if pause.IsPaused {
		t.Error("pause did not toggle off")
	}
}

func TestWithPauseCheck(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	runs := 0
	system := WithPauseCheck(func(*ecs.ECS) { runs++ })

	system(e)
	GetOrCreatePause(e.World).IsPaused = true
	system(e)
	if runs != 1 {
		t.Errorf("runs = %d, want the paused tick skipped", runs)
	}
}

func TestNextStep(t *testing.T) {
	steps := []float64{0, 0.5, 1}
	tests := []struct {
		current, want float64
	}{
		{0, 0.5},
		{0.3, 0.5},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		if got := nextStep(steps, tt.current); got != tt.want {
			t.Errorf("nextStep(%v) = %v, want %v", tt.current, got, tt.want)
		}
	}
	if got := nextStep(nil, 0.3); got != 0.3 {
		t.Errorf("no steps = %v, want unchanged", got)
	}
}
