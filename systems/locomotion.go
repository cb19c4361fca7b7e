package systems

import (
	"math"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// MoveIntent is one tick of locomotion input.
type MoveIntent struct {
	Forward, Right float64 // -1..1
	Run            bool
	Crouch         bool
	Jump           bool
	Vault          bool
	Aim            bool
	Look           dmath.Vec2
}

func moveIntentFrom(input *components.InputData) MoveIntent {
	axis := func(pos, neg cfg.ActionID) float64 {
		v := 0.0
		if input.Current[pos] {
			v++
		}
		if input.Current[neg] {
			v--
		}
		return v
	}
	return MoveIntent{
		Forward: axis(cfg.ActionMoveForward, cfg.ActionMoveBack),
		Right:   axis(cfg.ActionMoveRight, cfg.ActionMoveLeft),
		Run:     input.Current[cfg.ActionRun],
		Crouch:  input.Current[cfg.ActionCrouch],
		Jump:    GetAction(input, cfg.ActionJump).JustPressed,
		Vault:   GetAction(input, cfg.ActionVault).JustPressed,
		Aim:     input.Current[cfg.ActionAim],
		Look:    input.Look,
	}
}

// UpdateLocomotion is the sandbox character controller. It publishes the
// PreJump, Landing and Vault events the weapon reacts to.
func UpdateLocomotion(e *ecs.ECS) {
	intent := moveIntentFrom(getOrCreateInput(e.World))
	dt := DeltaSeconds(e.World)
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		StepLocomotion(e.World, entry, intent, dt)
	})
}

func StepLocomotion(w donburi.World, entry *donburi.Entry, in MoveIntent, dt float64) {
	char := components.Character.Get(entry)
	loc := components.Locomotion.Get(entry)
	c := cfg.Locomotion

	if !loc.Controllable {
		in = MoveIntent{}
	}
	loc.LookDelta = in.Look
	loc.Yaw -= in.Look.X * cfg.Camera.LookSens
	loc.Pitch = gamemath.Clamp(loc.Pitch-in.Look.Y*cfg.Camera.LookSens, -cfg.Camera.MaxPitch, cfg.Camera.MaxPitch)
	loc.Aiming = in.Aim

	if loc.State == cfg.Vaulting {
		loc.VaultTimer -= dt
		loc.Velocity = gamemath.Vec3{}
		if loc.VaultTimer > 0 {
			return
		}
		loc.VaultTimer = 0
		loc.State = cfg.Idle
	}

	speed := c.WalkSpeed
	switch {
	case in.Crouch:
		speed = c.CrouchSpeed
	case in.Run && in.Forward > 0:
		speed = c.RunSpeed
	}
	move := gamemath.V3(in.Right, 0, -in.Forward)
	if l := move.Length(); l > 1 {
		move = move.Scale(1 / l)
	}
	planar := move.Scale(speed).RotateY(loc.Yaw)
	loc.Velocity.X, loc.Velocity.Z = planar.X, planar.Z

	if loc.Grounded {
		switch {
		case in.Vault && loc.ReadyToVault:
			components.Vault.Publish(w, components.VaultEvent{Character: entry})
			loc.State = cfg.Vaulting
			loc.VaultTimer = c.VaultTime.Seconds()
			loc.Velocity = gamemath.Vec3{}
			return
		case in.Jump:
			components.PreJump.Publish(w, components.PreJumpEvent{Character: entry})
			PlaySFX(w, cfg.SoundJump)
			loc.Velocity.Y = c.JumpSpeed
			loc.Grounded = false
			loc.AirborneFor = 0
		}
	}

	if !loc.Grounded {
		loc.Velocity.Y -= c.Gravity * dt
		loc.AirborneFor += dt
	}

	moveCharacter(entry, char, loc.Velocity.Scale(dt))

	if !loc.Grounded && char.Position.Y <= 0 {
		impact := -loc.Velocity.Y
		char.Position.Y = 0
		loc.Velocity.Y = 0
		loc.Grounded = true
		PlaySFX(w, cfg.SoundLand)
		components.Landing.Publish(w, components.LandingEvent{
			Character:  entry,
			FallDamage: math.Max(0, impact-c.FallDamageSpeed),
		})
	}

	loc.State = locomotionStateFor(loc, in)
}

func locomotionStateFor(loc *components.LocomotionData, in MoveIntent) cfg.LocomotionState {
	if !loc.Grounded {
		return cfg.Airborne
	}
	moving := in.Forward != 0 || in.Right != 0
	switch {
	case in.Crouch:
		return cfg.Crouching
	case moving && in.Run && in.Forward > 0:
		return cfg.Running
	case moving:
		return cfg.Walking
	}
	return cfg.Idle
}

// moveCharacter applies delta to the character. With a body in the collider
// space the planar move stops against solids, otherwise only the arena bounds
// hold it.
func moveCharacter(entry *donburi.Entry, char *components.CharacterData, delta gamemath.Vec3) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		moveAgainstSolids(obj.Object, delta.X, delta.Z)
		x, z, w, d := obj.Footprint()
		delta.X = x + w/2 - char.Position.X
		delta.Z = z + d/2 - char.Position.Z
	}
	char.Position = char.Position.Add(delta)

	x := gamemath.Clamp(char.Position.X, char.Radius, float64(cfg.Arena.Width)-char.Radius)
	z := gamemath.Clamp(char.Position.Z, char.Radius, float64(cfg.Arena.Depth)-char.Radius)
	if x == char.Position.X && z == char.Position.Z {
		return
	}
	char.Position.X, char.Position.Z = x, z
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		obj.X = (x - char.Radius) * components.SpaceScale
		obj.Y = (z - char.Radius) * components.SpaceScale
		obj.Update()
	}
}
