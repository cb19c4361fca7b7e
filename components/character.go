package components

import (
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CharacterData is the root of a character. Position is at the feet.
type CharacterData struct {
	Name      string
	Position  gamemath.Vec3
	EyeHeight float64
	Radius    float64
}

var Character = donburi.NewComponentType[CharacterData]()
