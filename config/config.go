package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

// Config holds window/tick level settings.
type Config struct {
	Width  int
	Height int
	TPS    int
}

// AttackProfile is the immutable per-weapon attack configuration.
type AttackProfile struct {
	Range          float64       // Ray length in world units
	Cooldown       time.Duration // Minimum time between accepted attacks
	Windup         time.Duration // Delay between commit and hit query
	ImpactForce    float64       // Impulse applied to struck rigid bodies
	DamageMin      int
	DamageMax      int
	AffectedLayers LayerMask
}

var (
	ErrInvalidRange    = errors.New("attack range must be positive")
	ErrInvalidCooldown = errors.New("attack cooldown must be positive")
	ErrInvalidWindup   = errors.New("attack windup must not be negative")
	ErrWindupTooLong   = errors.New("attack windup must be shorter than cooldown")
	ErrInvalidDamage   = errors.New("damage range min exceeds max")
)

// Validate checks the profile invariants. Windup >= Cooldown would let two
// resolutions overlap, so it is rejected here rather than guarded at runtime.
func (p AttackProfile) Validate() error {
	switch {
	case p.Range <= 0:
		return fmt.Errorf("%w: %v", ErrInvalidRange, p.Range)
	case p.Cooldown <= 0:
		return fmt.Errorf("%w: %v", ErrInvalidCooldown, p.Cooldown)
	case p.Windup < 0:
		return fmt.Errorf("%w: %v", ErrInvalidWindup, p.Windup)
	case p.Windup >= p.Cooldown:
		return fmt.Errorf("%w: windup %v, cooldown %v", ErrWindupTooLong, p.Windup, p.Cooldown)
	case p.DamageMin > p.DamageMax:
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidDamage, p.DamageMin, p.DamageMax)
	}
	return nil
}

// WeaponConfig contains melee weapon defaults
type WeaponConfig struct {
	Profile AttackProfile

	// Timings of the external arms animations
	DrawAnimationLength     time.Duration
	AttackAnimationLength   time.Duration
	InteractAnimationLength time.Duration
	InteractDelay           time.Duration
}

// SwingConfig contains procedural sway configuration
type SwingConfig struct {
	Scale            float64 // Global multiplier applied to the whole sway
	VelocityAmount   float64 // Offset per unit of local velocity
	MaxVelocityShift float64 // Clamp for the velocity offset
	LookAmount       float64 // Offset per unit of look delta
	MaxLookShift     float64 // Clamp for the look offset
	RotationAmount   float64 // Degrees per unit of look delta
	MaxRotation      float64 // Clamp for rotation in degrees
	Smoothing        float64 // Exponential smoothing rate (1/s)

	// Breathing
	BreathAmplitude float64
	BreathRate      float64 // Cycles per second
	AimBreathScale  float64 // Breathing multiplier while aiming
}

// FeedbackConfig contains one-shot procedural animation configuration
type FeedbackConfig struct {
	JumpDip        float64 // Downward offset on pre-jump
	JumpDipTime    float64 // Seconds for each half of the dip
	LandDip        float64
	LandDipTime    float64
	LandPitch      float64 // Degrees of pitch added at the bottom of the landing dip
	VaultRaise     float64 // Upward offset while vaulting
	VaultRaiseTime float64
	VaultHoldTime  float64
	VaultPitch     float64
	MaxConcurrent  int // Oldest one-shot is dropped beyond this
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DefaultFOV   float64
	AimFOV       float64
	FOVSmoothing float64 // Exponential smoothing rate (1/s)
	EyeHeight    float64
	LookSens     float64 // Radians per pixel of mouse movement
	MaxPitch     float64
}

// LocomotionConfig drives the sandbox locomotion controller.
type LocomotionConfig struct {
	WalkSpeed       float64
	RunSpeed        float64
	CrouchSpeed     float64
	JumpSpeed       float64
	Gravity         float64
	FallDamageSpeed float64 // Landing speed above which fall damage is reported
	VaultTime       time.Duration
}

// PhysicsConfig contains rigid body integration values
type PhysicsConfig struct {
	Friction    float64 // Planar friction per tick
	MaxSpeed    float64
	DefaultMass float64
	CellSize    int // resolv space cell size
}

// ArenaConfig describes the sandbox arena
type ArenaConfig struct {
	Path         string // TMX path on disk; empty uses the built-in layout
	Width        int
	Depth        int
	WallHeight   float64
	TargetHP     int
	TargetSize   float64
	UnitsPerTile float64
}

// EffectsConfig contains hit feedback durations in ticks
type EffectsConfig struct {
	FlashTicks     int
	HealthBarTicks int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Enabled  bool
	Seed     int64 // 0 picks a random seed
	LogHits  bool
	RayTrace time.Duration // How long the last ray stays visible
}

// UIConfig contains debug renderer colors and scale
type UIConfig struct {
	PixelsPerUnit float64
	ColliderColor color.RGBA
	TriggerColor  color.RGBA
	TargetColor   color.RGBA
	PlayerColor   color.RGBA
	RayColor      color.RGBA
	HitColor      color.RGBA
	WeaponColor   color.RGBA
	TextColor     color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MessageConfig contains trigger hint popup configuration
type MessageConfig struct {
	DisplayDuration int        // Ticks to display a message after entering a trigger
	BoxPadding      float64    // Padding inside message box
	BoxColor        color.RGBA // Semi-transparent background color
	TextColor       color.RGBA
	TopMargin       float64 // Distance from top of screen

	// Labels substituted for {placeholders} per input method
	KeyboardLabels map[string]string
	GamepadLabels  map[string]string
}

var C *Config
var Weapon WeaponConfig
var Swing SwingConfig
var Feedback FeedbackConfig
var Camera CameraConfig
var Locomotion LocomotionConfig
var Physics PhysicsConfig
var Arena ArenaConfig
var Effects EffectsConfig
var Debug DebugConfig
var UI UIConfig
var Pause PauseConfig
var Message MessageConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Weapon = WeaponConfig{
		Profile: AttackProfile{
			Range:          2.0,
			Cooldown:       350 * time.Millisecond,
			Windup:         100 * time.Millisecond,
			ImpactForce:    6.0,
			DamageMin:      15,
			DamageMax:      30,
			AffectedLayers: LayerMask(LayerDefault | LayerTarget | LayerProp),
		},
		DrawAnimationLength:     400 * time.Millisecond,
		AttackAnimationLength:   350 * time.Millisecond,
		InteractAnimationLength: 600 * time.Millisecond,
		InteractDelay:           500 * time.Millisecond,
	}

	Swing = SwingConfig{
		Scale:            1.0,
		VelocityAmount:   0.01,
		MaxVelocityShift: 0.05,
		LookAmount:       0.002,
		MaxLookShift:     0.04,
		RotationAmount:   0.15,
		MaxRotation:      6.0,
		Smoothing:        8.0,

		BreathAmplitude: 0.004,
		BreathRate:      0.3,
		AimBreathScale:  0.3,
	}

	Feedback = FeedbackConfig{
		JumpDip:        0.03,
		JumpDipTime:    0.08,
		LandDip:        0.05,
		LandDipTime:    0.12,
		LandPitch:      4.0,
		VaultRaise:     0.08,
		VaultRaiseTime: 0.15,
		VaultHoldTime:  0.25,
		VaultPitch:     -10.0,
		MaxConcurrent:  4,
	}

	Camera = CameraConfig{
		DefaultFOV:   75,
		AimFOV:       60,
		FOVSmoothing: 10,
		EyeHeight:    1.6,
		LookSens:     0.003,
		MaxPitch:     1.4,
	}

	Locomotion = LocomotionConfig{
		WalkSpeed:       3.0,
		RunSpeed:        6.0,
		CrouchSpeed:     1.5,
		JumpSpeed:       4.5,
		Gravity:         12.0,
		FallDamageSpeed: 10.0,
		VaultTime:       500 * time.Millisecond,
	}

	Physics = PhysicsConfig{
		Friction:    0.1,
		MaxSpeed:    12.0,
		DefaultMass: 1.0,
		CellSize:    2,
	}

	Arena = ArenaConfig{
		Width:        32,
		Depth:        32,
		WallHeight:   3.0,
		TargetHP:     100,
		TargetSize:   0.8,
		UnitsPerTile: 1.0,
	}

	Effects = EffectsConfig{
		FlashTicks:     6,
		HealthBarTicks: 120,
	}

	Debug = DebugConfig{
		Enabled:  true,
		LogHits:  false,
		RayTrace: 500 * time.Millisecond,
	}

	UI = UIConfig{
		PixelsPerUnit: 16,
		ColliderColor: color.RGBA{R: 100, G: 100, B: 100, A: 255},
		TriggerColor:  color.RGBA{R: 0, G: 255, B: 255, A: 120},
		TargetColor:   color.RGBA{R: 255, G: 60, B: 60, A: 255},
		PlayerColor:   color.RGBA{R: 0, G: 100, B: 255, A: 255},
		RayColor:      color.RGBA{R: 255, G: 255, B: 0, A: 255},
		HitColor:      color.RGBA{R: 255, G: 140, B: 0, A: 255},
		WeaponColor:   color.RGBA{R: 200, G: 200, B: 220, A: 255},
		TextColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	Pause = PauseConfig{
		OverlayColor:      color.RGBA{R: 0, G: 0, B: 0, A: 180},
		TextColorNormal:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextColorSelected: color.RGBA{R: 255, G: 165, B: 0, A: 255},
		MenuItemHeight:    20,
		MenuItemGap:       10,
		MenuOptions:       []string{"Resume", "Volume", "Sway", "Exit"},
	}

	Message = MessageConfig{
		DisplayDuration: 300, // 5 seconds at 60 TPS
		BoxPadding:      8.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TopMargin:       30.0,

		KeyboardLabels: map[string]string{
			"attack": "LMB", "alt": "RMB", "interact": "E",
			"holster": "Q", "jump": "SPACE", "vault": "V",
		},
		GamepadLabels: map[string]string{
			"attack": "LB", "alt": "RB", "interact": "X",
			"holster": "B", "jump": "A", "vault": "Y",
		},
	}
}
