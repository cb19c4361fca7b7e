package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Weapon    = donburi.NewTag().SetName("Weapon")
	SwingRoot = donburi.NewTag().SetName("SwingRoot")
	Wall      = donburi.NewTag().SetName("Wall")
	Target    = donburi.NewTag().SetName("Target")
	Trigger   = donburi.NewTag().SetName("Trigger")
)

// Resolv tags for the collider space
const (
	ResolvCollider = "collider"
	ResolvSolid    = "solid"
	ResolvTarget   = "target"
	ResolvTrigger  = "trigger"
	ResolvProbe    = "probe"
	ResolvBody     = "body"
)
