package components

import "github.com/yohamta/donburi"

// FlashData tracks the hit flash of a target
type FlashData struct {
	Duration int // ticks remaining
}

var Flash = donburi.NewComponentType[FlashData]()
