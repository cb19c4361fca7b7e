package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Weapon sounds
	SoundDraw
	SoundHide
	SoundSwing
	SoundHit
	SoundInteract
	// Movement sounds
	SoundJump
	SoundLand
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesized sound effect: a sine sweep from Freq to
// EndFreq mixed with white noise, under a linear attack and decay.
type Tone struct {
	Freq     float64 // Hz at the start
	EndFreq  float64 // Hz at the end
	Noise    float64 // 0 pure tone, 1 pure noise
	Attack   time.Duration
	Duration time.Duration
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundDraw:     {Freq: 900, EndFreq: 1800, Noise: 0.6, Attack: 20 * time.Millisecond, Duration: 180 * time.Millisecond},
			SoundHide:     {Freq: 1400, EndFreq: 600, Noise: 0.6, Attack: 10 * time.Millisecond, Duration: 150 * time.Millisecond},
			SoundSwing:    {Freq: 300, EndFreq: 120, Noise: 0.9, Attack: 40 * time.Millisecond, Duration: 220 * time.Millisecond},
			SoundHit:      {Freq: 140, EndFreq: 60, Noise: 0.4, Attack: 2 * time.Millisecond, Duration: 160 * time.Millisecond},
			SoundInteract: {Freq: 500, EndFreq: 700, Noise: 0.1, Attack: 10 * time.Millisecond, Duration: 120 * time.Millisecond},
			SoundJump:     {Freq: 220, EndFreq: 330, Noise: 0.3, Attack: 5 * time.Millisecond, Duration: 90 * time.Millisecond},
			SoundLand:     {Freq: 90, EndFreq: 50, Noise: 0.7, Attack: 2 * time.Millisecond, Duration: 120 * time.Millisecond},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:  1.5,
			SoundJump: 0.5,
		},
	}
}
