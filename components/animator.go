package components

import (
	"github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
)

// ArmsAnimator is the clip-based arms animation collaborator. The weapon only
// requests cues; playback and blending belong to the implementation.
type ArmsAnimator interface {
	Initialized() bool
	Initialize()
	Play(cue config.CueID)
	// Hit is a cosmetic impact signal at the struck point.
	Hit(point gamemath.Vec3)
}
