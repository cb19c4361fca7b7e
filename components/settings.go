package components

import "github.com/yohamta/donburi"

// SettingsData holds the player adjustable settings of the running session.
type SettingsData struct {
	Debug      bool
	SwingScale float64
	FOV        float64
	SFXVolume  float64
}

var Settings = donburi.NewComponentType[SettingsData]()
