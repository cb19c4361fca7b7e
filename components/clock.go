package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the monotonic game clock. Now only moves forward, once per tick.
type ClockData struct {
	Now   time.Duration // Time since the scene started
	Delta time.Duration // Length of the last tick
	Ticks uint64
}

var Clock = donburi.NewComponentType[ClockData]()
