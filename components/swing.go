package components

import (
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SwingData is the continuous sway of a character's swing root. Only the
// swing system writes it.
type SwingData struct {
	Character *donburi.Entry
	Sway      gamemath.Pose // Smoothed velocity and look sway
	Breath    float64       // Breathing phase in seconds
	Current   gamemath.Pose // Sway plus breathing
}

var Swing = donburi.NewComponentType[SwingData]()

// SwingRootsData maps a character entity to its shared swing root.
type SwingRootsData struct {
	Roots map[donburi.Entity]*donburi.Entry
}

var SwingRoots = donburi.NewComponentType[SwingRootsData]()

// ViewPoseData is a weapon's final view model pose: swing root plus one-shots.
type ViewPoseData struct {
	Pose gamemath.Pose
}

var ViewPose = donburi.NewComponentType[ViewPoseData]()
