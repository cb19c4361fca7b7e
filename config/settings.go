package config

// SettingsMenuConfig contains the steps the pause menu cycles through
type SettingsMenuConfig struct {
	VolumeSteps []float64
	SwaySteps   []float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
		SwaySteps:   []float64{0, 0.5, 1.0, 1.5},
	}
}
