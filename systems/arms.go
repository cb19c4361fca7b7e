package systems

import (
	"log"
	"time"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hitMarkerTime is how long the debug view shows the last impact point.
const hitMarkerTime = 0.3

// TweenArms is the sandbox arms animator. It raises and lowers the view model
// and plays a swing arc per attack cue using tweens.
type TweenArms struct {
	Raise     float32 // 0 lowered, 1 drawn
	Arc       float32 // Signed swing arc; negative for left attacks
	LastCue   cfg.CueID
	HitPoint  gamemath.Vec3
	HitMarker float32 // Seconds left to show HitPoint

	draw, attack, interact float32
	initialized            bool
	raise                  *gween.Tween
	arc                    *gween.Sequence
}

func NewTweenArms(draw, attack, interact time.Duration) *TweenArms {
	return &TweenArms{
		draw:     float32(draw.Seconds()),
		attack:   float32(attack.Seconds()),
		interact: float32(interact.Seconds()),
	}
}

func (a *TweenArms) Initialized() bool {
	return a.initialized
}

func (a *TweenArms) Initialize() {
	a.initialized = true
	a.Raise = 0
	a.Arc = 0
}

func (a *TweenArms) Play(cue cfg.CueID) {
	a.LastCue = cue
	switch cue {
	case cfg.CueDraw:
		a.raise = gween.New(a.Raise, 1, a.draw, ease.OutCubic)
	case cfg.CueHide:
		a.raise = gween.New(a.Raise, 0, a.draw/2, ease.InCubic)
		a.arc = nil
		a.Arc = 0
	case cfg.CueAttackLeft, cfg.CueAttackRight:
		sign := float32(1)
		if cue == cfg.CueAttackLeft {
			sign = -1
		}
		a.arc = gween.NewSequence(
			gween.New(0, sign, a.attack*0.3, ease.OutQuad),
			gween.New(sign, 0, a.attack*0.7, ease.InOutQuad),
		)
	case cfg.CueInteract:
		a.arc = gween.NewSequence(
			gween.New(0, 0.3, a.interact/2, ease.OutQuad),
			gween.New(0.3, 0, a.interact/2, ease.InQuad),
		)
	default:
		log.Printf("Warning: unknown arms cue %d", cue)
	}
}

func (a *TweenArms) Hit(point gamemath.Vec3) {
	a.HitPoint = point
	a.HitMarker = hitMarkerTime
}

// Update advances the running tweens by dt seconds.
func (a *TweenArms) Update(dt float32) {
	if a.raise != nil {
		var done bool
		a.Raise, done = a.raise.Update(dt)
		if done {
			a.raise = nil
		}
	}
	if a.arc != nil {
		var done bool
		a.Arc, _, done = a.arc.Update(dt)
		if done {
			a.arc = nil
			a.Arc = 0
		}
	}
	if a.HitMarker > 0 {
		a.HitMarker -= dt
	}
}

func updateArms(e *ecs.ECS) {
	dt := float32(DeltaSeconds(e.World))
	tags.Weapon.Each(e.World, func(entry *donburi.Entry) {
		if arms, ok := components.Weapon.Get(entry).Animator.(*TweenArms); ok {
			arms.Update(dt)
		}
	})
}

var _ components.ArmsAnimator = (*TweenArms)(nil)
