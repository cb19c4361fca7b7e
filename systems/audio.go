package systems

import (
	"log"
	"sync"

	"github.com/automoto/fpsmelee/assets"
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state, created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every sound effect at startup.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: Could not preload sound %d: %v", id, err)
		}
	}
}

// UpdateAudio plays the sound effects queued since the last tick.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}
	initGlobalAudio()
	for _, id := range audioData.PendingSFX {
		playSFX(id)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 || id == cfg.SoundNone {
		return
	}
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}
	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played by UpdateAudio.
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	audioData := getOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

func GetSFXVolume() float64 {
	return globalSFXVolume
}

func getOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
