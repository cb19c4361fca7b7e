package components

import (
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects requested this tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
