package systems

import (
	"time"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the game clock by one tick. Must run first.
func UpdateClock(e *ecs.ECS) {
	AdvanceClock(e.World, TickDuration())
}

// TickDuration is the fixed length of one tick at the configured TPS.
func TickDuration() time.Duration {
	tps := cfg.C.TPS
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

// AdvanceClock moves the clock forward by d.
func AdvanceClock(w donburi.World, d time.Duration) {
	clock := GetOrCreateClock(w)
	if d < 0 {
		d = 0
	}
	clock.Now += d
	clock.Delta = d
	clock.Ticks++
}

func GetOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// Now returns the current game time.
func Now(w donburi.World) time.Duration {
	return GetOrCreateClock(w).Now
}

// DeltaSeconds returns the last tick length in seconds.
func DeltaSeconds(w donburi.World) float64 {
	return GetOrCreateClock(w).Delta.Seconds()
}
