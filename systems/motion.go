package systems

import (
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterMotionFeedback subscribes the weapon one-shots to the locomotion
// events of w. Call UnregisterMotionFeedback when the world is torn down.
func RegisterMotionFeedback(w donburi.World) {
	components.PreJump.Subscribe(w, onPreJump)
	components.Landing.Subscribe(w, onLanding)
	components.Vault.Subscribe(w, onVault)
}

func UnregisterMotionFeedback(w donburi.World) {
	components.PreJump.Unsubscribe(w, onPreJump)
	components.Landing.Unsubscribe(w, onLanding)
	components.Vault.Unsubscribe(w, onVault)
}

func onPreJump(w donburi.World, ev components.PreJumpEvent) {
	startOneShot(w, ev.Character, func() *components.OneShot {
		return NewOneShot(components.OneShotJump, cfg.Feedback)
	})
}

// onLanding plays the same dip for every landing; fall damage is the
// locomotion controller's concern.
func onLanding(w donburi.World, ev components.LandingEvent) {
	startOneShot(w, ev.Character, func() *components.OneShot {
		return NewOneShot(components.OneShotLand, cfg.Feedback)
	})
}

func onVault(w donburi.World, ev components.VaultEvent) {
	startOneShot(w, ev.Character, func() *components.OneShot {
		return NewOneShot(components.OneShotVault, cfg.Feedback)
	})
}

// startOneShot adds a new shot to every active weapon held by character.
// Each weapon gets its own sequences.
func startOneShot(w donburi.World, character *donburi.Entry, newShot func() *components.OneShot) {
	if character == nil {
		return
	}
	tags.Weapon.Each(w, func(entry *donburi.Entry) {
		weapon := components.Weapon.Get(entry)
		if !weapon.Active || weapon.Owner == nil || weapon.Owner.Entity() != character.Entity() {
			return
		}
		fb := components.MotionFeedback.Get(entry)
		fb.Shots = append(fb.Shots, newShot())
		if limit := cfg.Feedback.MaxConcurrent; limit > 0 && len(fb.Shots) > limit {
			fb.Shots = fb.Shots[len(fb.Shots)-limit:]
		}
	})
}

// NewOneShot builds the height and pitch sequences for kind.
func NewOneShot(kind components.OneShotKind, c cfg.FeedbackConfig) *components.OneShot {
	switch kind {
	case components.OneShotJump:
		d := float32(c.JumpDipTime)
		dip := float32(-c.JumpDip)
		return &components.OneShot{
			Kind: kind,
			Height: gween.NewSequence(
				gween.New(0, dip, d, ease.OutQuad),
				gween.New(dip, 0, d, ease.InOutQuad),
			),
			Pitch: gween.NewSequence(gween.New(0, 0, 2*d, ease.Linear)),
		}
	case components.OneShotLand:
		d := float32(c.LandDipTime)
		dip := float32(-c.LandDip)
		pitch := float32(c.LandPitch)
		return &components.OneShot{
			Kind: kind,
			Height: gween.NewSequence(
				gween.New(0, dip, d*0.5, ease.OutQuad),
				gween.New(dip, 0, d, ease.OutBack),
			),
			Pitch: gween.NewSequence(
				gween.New(0, pitch, d*0.5, ease.OutQuad),
				gween.New(pitch, 0, d, ease.OutBack),
			),
		}
	case components.OneShotVault:
		up := float32(c.VaultRaiseTime)
		hold := float32(c.VaultHoldTime)
		raise := float32(c.VaultRaise)
		pitch := float32(c.VaultPitch)
		return &components.OneShot{
			Kind: kind,
			Height: gween.NewSequence(
				gween.New(0, raise, up, ease.OutCubic),
				gween.New(raise, raise, hold, ease.Linear),
				gween.New(raise, 0, up, ease.InOutCubic),
			),
			Pitch: gween.NewSequence(
				gween.New(0, pitch, up, ease.OutCubic),
				gween.New(pitch, pitch, hold, ease.Linear),
				gween.New(pitch, 0, up, ease.InOutCubic),
			),
		}
	}
	return &components.OneShot{
		Kind:   kind,
		Height: gween.NewSequence(gween.New(0, 0, 0, ease.Linear)),
		Pitch:  gween.NewSequence(gween.New(0, 0, 0, ease.Linear)),
	}
}

// UpdateMotionFeedback dispatches queued locomotion events and advances the
// running one-shots.
func UpdateMotionFeedback(e *ecs.ECS) {
	components.PreJump.ProcessEvents(e.World)
	components.Landing.ProcessEvents(e.World)
	components.Vault.ProcessEvents(e.World)
	StepMotionFeedback(e.World, DeltaSeconds(e.World))
}

func StepMotionFeedback(w donburi.World, dt float64) {
	components.MotionFeedback.Each(w, func(entry *donburi.Entry) {
		fb := components.MotionFeedback.Get(entry)
		var offset gamemath.Pose
		running := fb.Shots[:0]
		for _, shot := range fb.Shots {
			shot.Advance(float32(dt))
			if shot.Done {
				continue
			}
			offset = offset.Add(shot.Sample())
			running = append(running, shot)
		}
		for i := len(running); i < len(fb.Shots); i++ {
			fb.Shots[i] = nil
		}
		fb.Shots = running
		fb.Offset = offset
	})
}
