package factory

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/fpsmelee/archetypes"
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoCamera     = errors.New("weapon has no camera")
	ErrNoLocomotion = errors.New("weapon has no locomotion controller")
)

// WeaponOptions wires a melee weapon to its character. Zero timings fall back
// to config.Weapon.
type WeaponOptions struct {
	Name     string
	Owner    *donburi.Entry // Character root
	Camera   *donburi.Entry
	Context  *components.GameplayContextData
	Animator components.ArmsAnimator
	Profile  *cfg.AttackProfile // nil uses config.Weapon.Profile

	DrawAnimationLength     time.Duration
	AttackAnimationLength   time.Duration
	InteractAnimationLength time.Duration
	InteractDelay           time.Duration
}

// CreateWeapon creates an inactive melee weapon and its view model
// transform. Call systems.Select to draw it.
func CreateWeapon(ecs *ecs.ECS, opts WeaponOptions) (*donburi.Entry, error) {
	if opts.Camera == nil || !opts.Camera.Valid() || !opts.Camera.HasComponent(components.Camera) {
		return nil, fmt.Errorf("%s: %w", opts.Name, ErrNoCamera)
	}
	if opts.Owner == nil || !opts.Owner.Valid() || !opts.Owner.HasComponent(components.Locomotion) {
		return nil, fmt.Errorf("%s: %w", opts.Name, ErrNoLocomotion)
	}

	profile := cfg.Weapon.Profile
	if opts.Profile != nil {
		profile = *opts.Profile
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Name, err)
	}

	weapon := archetypes.Weapon.Spawn(ecs)
	visual := archetypes.WeaponVisual.Spawn(ecs)

	components.Weapon.SetValue(weapon, components.WeaponData{
		ID:         uuid.New(),
		Name:       opts.Name,
		Owner:      opts.Owner,
		Camera:     opts.Camera,
		Locomotion: opts.Owner,
		VisualRoot: visual,
		Context:    opts.Context,
		Animator:   opts.Animator,
		Profile:    profile,

		DrawAnimationLength:     orDefault(opts.DrawAnimationLength, cfg.Weapon.DrawAnimationLength),
		AttackAnimationLength:   orDefault(opts.AttackAnimationLength, cfg.Weapon.AttackAnimationLength),
		InteractAnimationLength: orDefault(opts.InteractAnimationLength, cfg.Weapon.InteractAnimationLength),
		InteractDelay:           orDefault(opts.InteractDelay, cfg.Weapon.InteractDelay),
	})
	return weapon, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d == 0 {
		return def
	}
	return d
}
