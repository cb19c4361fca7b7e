package components

import (
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type OneShotKind int

const (
	OneShotJump OneShotKind = iota
	OneShotLand
	OneShotVault
)

func (k OneShotKind) String() string {
	switch k {
	case OneShotJump:
		return "jump"
	case OneShotLand:
		return "land"
	case OneShotVault:
		return "vault"
	}
	return "unknown"
}

// OneShot is a non-looping procedural animation. Height and Pitch run in
// lockstep; the shot is finished when both sequences are.
type OneShot struct {
	Kind   OneShotKind
	Height *gween.Sequence
	Pitch  *gween.Sequence
	Done   bool

	height     float32
	pitch      float32
	heightDone bool
	pitchDone  bool
}

// Sample returns the current additive pose of the shot.
func (s *OneShot) Sample() gamemath.Pose {
	return gamemath.Pose{
		Position: gamemath.V3(0, float64(s.height), 0),
		Rotation: gamemath.V3(float64(s.pitch), 0, 0),
	}
}

// Advance steps both sequences by dt seconds.
func (s *OneShot) Advance(dt float32) {
	if !s.heightDone {
		s.height, _, s.heightDone = s.Height.Update(dt)
	}
	if !s.pitchDone {
		s.pitch, _, s.pitchDone = s.Pitch.Update(dt)
	}
	if s.heightDone && s.pitchDone {
		s.Done = true
		s.height, s.pitch = 0, 0
	}
}

type MotionFeedbackData struct {
	Shots  []*OneShot
	Offset gamemath.Pose // Sum of the running shots
}

var MotionFeedback = donburi.NewComponentType[MotionFeedbackData]()
