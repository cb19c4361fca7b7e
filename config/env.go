package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are the settings that can be changed without rebuilding.
// Unset variables keep the current configuration.
type EnvOverrides struct {
	Debug      bool    `env:"MELEE_DEBUG"`
	Seed       int64   `env:"MELEE_SEED"`
	LogHits    bool    `env:"MELEE_LOG_HITS"`
	ArenaPath  string  `env:"MELEE_ARENA"`
	TPS        int     `env:"MELEE_TPS"`
	SwingScale float64 `env:"MELEE_SWING_SCALE"`
	SFXVolume  float64 `env:"MELEE_SFX_VOLUME"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv parses EnvOverrides and writes them into the global configuration.
func ApplyEnv() error {
	o := EnvOverrides{
		Debug:      Debug.Enabled,
		Seed:       Debug.Seed,
		LogHits:    Debug.LogHits,
		ArenaPath:  Arena.Path,
		TPS:        C.TPS,
		SwingScale: Swing.Scale,
		SFXVolume:  Audio.DefaultSFXVol,
	}
	if err := ParseEnv(&o); err != nil {
		return err
	}
	if o.TPS <= 0 {
		return fmt.Errorf("parse env: MELEE_TPS must be positive, got %d", o.TPS)
	}
	Debug.Enabled = o.Debug
	Debug.Seed = o.Seed
	Debug.LogHits = o.LogHits
	Arena.Path = o.ArenaPath
	C.TPS = o.TPS
	Swing.Scale = o.SwingScale
	Audio.DefaultSFXVol = o.SFXVolume
	return nil
}
