package systems

import (
	"math"
	"testing"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

func TestSwayTarget(t *testing.T) {
	c := cfg.Swing
	c.Scale = 1

	still := SwayTarget(&components.LocomotionData{}, c)
	if !still.Position.IsZero() || !still.Rotation.IsZero() {
		t.Errorf("sway at rest = %+v, want zero", still)
	}

	strafe := SwayTarget(&components.LocomotionData{Velocity: gamemath.V3(3, 0, 0)}, c)
	if want := -3 * c.VelocityAmount; math.Abs(strafe.Position.X-want) > 1e-12 {
		t.Errorf("strafe X = %v, want %v", strafe.Position.X, want)
	}

	fast := SwayTarget(&components.LocomotionData{Velocity: gamemath.V3(100, 0, 0)}, c)
	if math.Abs(fast.Position.X+c.MaxVelocityShift) > 1e-12 {
		t.Errorf("fast X = %v, want clamped to %v", fast.Position.X, -c.MaxVelocityShift)
	}

	look := SwayTarget(&components.LocomotionData{LookDelta: dmath.NewVec2(1000, 0)}, c)
	if math.Abs(look.Rotation.Y) > c.MaxRotation+1e-12 || math.Abs(look.Position.X) > c.MaxLookShift+1e-12 {
		t.Errorf("look sway %+v exceeds its clamps", look)
	}
}

func TestSwayTargetIsCharacterLocal(t *testing.T) {
	c := cfg.Swing
	c.Scale = 1
	// Facing +X (yaw -pi/2) and moving along +X is moving forward: no lateral sway.
	loc := &components.LocomotionData{Yaw: -math.Pi / 2, Velocity: gamemath.V3(3, 0, 0)}
	p := SwayTarget(loc, c)
	if math.Abs(p.Position.X) > 1e-9 {
		t.Errorf("forward motion swayed sideways: %v", p.Position)
	}
	if p.Position.Z <= 0 {
		t.Errorf("forward motion should pull the weapon back, got Z=%v", p.Position.Z)
	}
}

func TestSwayScale(t *testing.T) {
	c := cfg.Swing
	loc := &components.LocomotionData{Velocity: gamemath.V3(2, 0, 1), LookDelta: dmath.NewVec2(3, -2)}

	c.Scale = 1
	full := SwayTarget(loc, c)
	c.Scale = 0.5
	half := SwayTarget(loc, c)
	if half.Position.Sub(full.Position.Scale(0.5)).Length() > 1e-12 {
		t.Errorf("scaled sway = %v, want half of %v", half.Position, full.Position)
	}
	c.Scale = 0
	if off := SwayTarget(loc, c); !off.Position.IsZero() || !off.Rotation.IsZero() {
		t.Errorf("zero scale still sways: %+v", off)
	}
}

func TestBreathOffset(t *testing.T) {
	c := cfg.Swing
	c.Scale = 1
	quarter := 1 / (4 * c.BreathRate)

	idle := BreathOffset(quarter, false, c)
	if math.Abs(idle.Position.Y-c.BreathAmplitude) > 1e-12 {
		t.Errorf("breath peak = %v, want %v", idle.Position.Y, c.BreathAmplitude)
	}
	aim := BreathOffset(quarter, true, c)
	if math.Abs(aim.Position.Y-c.BreathAmplitude*c.AimBreathScale) > 1e-12 {
		t.Errorf("aiming breath peak = %v", aim.Position.Y)
	}
}

func TestStepSwingConvergesAndRunsWhileInactive(t *testing.T) {
	h := newHarness(t)
	root := EnsureSwingRoot(h.w, h.weapon)
	if h.data().Active {
		t.Fatal("test needs an inactive weapon")
	}

	h.loc().Velocity = gamemath.V3(3, 0, 0)
	for i := 0; i < 120; i++ {
		StepSwing(h.w, 1.0/60)
	}

	swing := components.Swing.Get(root)
	want := SwayTarget(h.loc(), cfg.Swing)
	if swing.Sway.Position.Sub(want.Position).Length() > 1e-4 {
		t.Errorf("sway = %v, want it to converge on %v", swing.Sway.Position, want.Position)
	}
	if swing.Breath <= 1.9 {
		t.Errorf("breath phase = %v, want it advancing every step", swing.Breath)
	}

	tr := transform.Transform.Get(root)
	if got := viewOffset(swing.Current.Position); tr.LocalPosition != got {
		t.Errorf("root transform = %v, want %v", tr.LocalPosition, got)
	}
}

func TestSwingIsContinuousAcrossDeselect(t *testing.T) {
	h := newHarness(t)
	Select(h.w, h.weapon)
	h.advanceTo(400 * ms)
	h.loc().Velocity = gamemath.V3(-2, 0, 0)
	for i := 0; i < 30; i++ {
		StepSwing(h.w, 1.0/60)
	}

	root, _ := SwingRootOf(h.w, h.character)
	before := components.Swing.Get(root).Sway
	Deselect(h.w, h.weapon)
	if after := components.Swing.Get(root).Sway; after != before {
		t.Fatalf("Deselect reset the sway: %v -> %v", before, after)
	}

	StepSwing(h.w, 1.0/60)
	after := components.Swing.Get(root).Sway
	if after == before {
		t.Error("swing stopped updating while the weapon is hidden")
	}
	if after.Position.Sub(before.Position).Length() > 0.01 {
		t.Errorf("swing jumped after Deselect: %v -> %v", before.Position, after.Position)
	}
}
