package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool    `json:"debug"`
	SwingScale float64 `json:"swingScale"`
	FOV        float64 `json:"fov"`
	SFXVolume  float64 `json:"sfxVolume"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "fpsmelee",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the session settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:      s.Debug,
		SwingScale: s.SwingScale,
		FOV:        s.FOV,
		SFXVolume:  s.SFXVolume,
	})
}

// ApplySavedSettingsGlobal applies loaded settings to the package defaults.
// Used during startup before the scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Enabled = saved.Debug
	if saved.SwingScale > 0 {
		cfg.Swing.Scale = saved.SwingScale
	}
	if saved.FOV > 0 {
		cfg.Camera.DefaultFOV = saved.FOV
	}
	if saved.SFXVolume >= 0 && saved.SFXVolume <= 1 {
		cfg.Audio.DefaultSFXVol = saved.SFXVolume
	}
}

// GetOrCreateSettings returns the session settings, seeded from config.
func GetOrCreateSettings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Enabled,
			SwingScale: cfg.Swing.Scale,
			FOV:        cfg.Camera.DefaultFOV,
			SFXVolume:  GetSFXVolume(),
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay and persists the change.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e.World)
	if !GetAction(input, cfg.ActionDebug).JustPressed {
		return
	}
	settings := GetOrCreateSettings(e.World)
	settings.Debug = !settings.Debug
	SaveCurrentSettings(settings)
}
