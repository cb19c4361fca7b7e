package systems

import (
	"math"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

func getOrCreateSwingRoots(w donburi.World) *components.SwingRootsData {
	entry, ok := components.SwingRoots.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.SwingRoots))
	}
	roots := components.SwingRoots.Get(entry)
	if roots.Roots == nil {
		roots.Roots = make(map[donburi.Entity]*donburi.Entry)
	}
	return roots
}

// SwingRootOf returns the swing root shared by every weapon of a character.
func SwingRootOf(w donburi.World, character *donburi.Entry) (*donburi.Entry, bool) {
	if character == nil {
		return nil, false
	}
	root, ok := getOrCreateSwingRoots(w).Roots[character.Entity()]
	if !ok || !root.Valid() {
		return nil, false
	}
	return root, true
}

// EnsureSwingRoot finds or creates the owner's swing root and parents the
// weapon's visual root under it.
func EnsureSwingRoot(w donburi.World, weaponEntry *donburi.Entry) *donburi.Entry {
	weapon := components.Weapon.Get(weaponEntry)
	if weapon.Owner == nil || !weapon.Owner.Valid() {
		return nil
	}

	root, ok := SwingRootOf(w, weapon.Owner)
	if !ok {
		root = w.Entry(w.Create(tags.SwingRoot, components.Swing, transform.Transform))
		components.Swing.Get(root).Character = weapon.Owner
		getOrCreateSwingRoots(w).Roots[weapon.Owner.Entity()] = root
	}

	if weapon.VisualRoot != nil && weapon.VisualRoot.Valid() {
		parent, hasParent := transform.GetParent(weapon.VisualRoot)
		if !hasParent || parent.Entity() != root.Entity() {
			transform.AppendChild(root, weapon.VisualRoot, false)
		}
	}
	return root
}

// SwayTarget is the unsmoothed sway for the current locomotion sample.
// Velocity is taken in the character's local frame.
func SwayTarget(loc *components.LocomotionData, c cfg.SwingConfig) gamemath.Pose {
	local := loc.Velocity.RotateY(-loc.Yaw)
	lx, ly := loc.LookDelta.X, loc.LookDelta.Y

	vel := func(v float64) float64 {
		return gamemath.Clamp(-v*c.VelocityAmount, -c.MaxVelocityShift, c.MaxVelocityShift)
	}
	look := func(v float64) float64 {
		return gamemath.Clamp(-v*c.LookAmount, -c.MaxLookShift, c.MaxLookShift)
	}
	rot := func(v float64) float64 {
		return gamemath.Clamp(v*c.RotationAmount, -c.MaxRotation, c.MaxRotation)
	}

	p := gamemath.Pose{
		Position: gamemath.V3(vel(local.X)+look(lx), vel(local.Y)+look(-ly), vel(local.Z)),
		Rotation: gamemath.V3(rot(ly), rot(-lx), rot(-lx-local.X)),
	}
	return scalePose(p, c.Scale)
}

// BreathOffset is the idle breathing figure-eight at phase t seconds.
func BreathOffset(t float64, aiming bool, c cfg.SwingConfig) gamemath.Pose {
	amp := c.BreathAmplitude * c.Scale
	if aiming {
		amp *= c.AimBreathScale
	}
	phase := 2 * math.Pi * c.BreathRate * t
	return gamemath.Pose{
		Position: gamemath.V3(math.Sin(phase/2)*amp*0.5, math.Sin(phase)*amp, 0),
	}
}

func scalePose(p gamemath.Pose, s float64) gamemath.Pose {
	return gamemath.Pose{Position: p.Position.Scale(s), Rotation: p.Rotation.Scale(s)}
}

// UpdateSwing smooths every swing root toward its character's sway. It runs
// whether or not a weapon is active so the pose is continuous on re-draw.
func UpdateSwing(e *ecs.ECS) {
	StepSwing(e.World, DeltaSeconds(e.World))
}

func StepSwing(w donburi.World, dt float64) {
	alpha := gamemath.ExpSmoothing(cfg.Swing.Smoothing, dt)
	tags.SwingRoot.Each(w, func(root *donburi.Entry) {
		swing := components.Swing.Get(root)
		if swing.Character == nil || !swing.Character.Valid() {
			return
		}
		loc := components.Locomotion.Get(swing.Character)

		target := SwayTarget(loc, cfg.Swing)
		swing.Sway = gamemath.Pose{
			Position: swing.Sway.Position.Lerp(target.Position, alpha),
			Rotation: swing.Sway.Rotation.Lerp(target.Rotation, alpha),
		}
		swing.Breath += dt
		swing.Current = swing.Sway.Add(BreathOffset(swing.Breath, loc.Aiming, cfg.Swing))

		tr := transform.Transform.Get(root)
		tr.LocalPosition = viewOffset(swing.Current.Position)
		tr.LocalRotation = swing.Current.Rotation.Z
	})
}
