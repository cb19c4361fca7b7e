package systems

import (
	"testing"
	"time"

	"github.com/automoto/fpsmelee/archetypes"
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const ms = time.Millisecond

type fakeArms struct {
	initialized bool
	inits       int
	cues        []cfg.CueID
	hits        []gamemath.Vec3
}

func (a *fakeArms) Initialized() bool { return a.initialized }
func (a *fakeArms) Initialize()       { a.initialized = true; a.inits++ }
func (a *fakeArms) Play(c cfg.CueID)  { a.cues = append(a.cues, c) }
func (a *fakeArms) Hit(p gamemath.Vec3) {
	a.hits = append(a.hits, p)
}

func (a *fakeArms) played(c cfg.CueID) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

type damageCall struct {
	amount      int
	source, hit gamemath.Vec3
	kind        cfg.DamageType
}

type recordingReceiver struct {
	calls []damageCall
}

func (r *recordingReceiver) ReceiveDamage(amount int, source, hit gamemath.Vec3, kind cfg.DamageType) {
	r.calls = append(r.calls, damageCall{amount, source, hit, kind})
}

// harness is a world with one character at (10, 0, 10) looking down -Z, its
// camera, a gameplay context and one melee weapon using the default profile.
type harness struct {
	t         *testing.T
	ecs       *ecs.ECS
	w         donburi.World
	character *donburi.Entry
	camera    *donburi.Entry
	weapon    *donburi.Entry
	arms      *fakeArms
	ctx       *components.GameplayContextData
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	h := &harness{t: t, ecs: e, w: e.World, arms: &fakeArms{}}

	space := archetypes.Space.Spawn(e)
	components.Space.Set(space, components.NewFootprintSpace(64, 64, 2))

	h.character = archetypes.Character.Spawn(e)
	components.Character.SetValue(h.character, components.CharacterData{
		Name:      "tester",
		Position:  gamemath.V3(10, 0, 10),
		EyeHeight: 1.6,
		Radius:    0.3,
	})
	components.Locomotion.SetValue(h.character, components.LocomotionData{
		State:        cfg.Idle,
		Controllable: true,
		Grounded:     true,
	})

	h.camera = archetypes.Camera.Spawn(e)
	components.Camera.SetValue(h.camera, components.CameraData{
		Position: gamemath.V3(10, 1.6, 10),
		Forward:  gamemath.V3(0, 0, -1),
		FOV:      cfg.Camera.DefaultFOV,
	})

	ctxEntry := e.World.Entry(e.World.Create(components.GameplayContext))
	components.GameplayContext.SetValue(ctxEntry, components.GameplayContextData{
		ActionMaps: components.NewActionMapRegistry(cfg.Input.Maps...),
		TargetFOV:  cfg.Camera.DefaultFOV,
	})
	h.ctx = components.GameplayContext.Get(ctxEntry)

	h.weapon = h.newWeapon("blade")
	return h
}

func (h *harness) newWeapon(name string) *donburi.Entry {
	weapon := archetypes.Weapon.Spawn(h.ecs)
	visual := archetypes.WeaponVisual.Spawn(h.ecs)
	components.Weapon.SetValue(weapon, components.WeaponData{
		Name:                    name,
		Owner:                   h.character,
		Camera:                  h.camera,
		Locomotion:              h.character,
		VisualRoot:              visual,
		Context:                 h.ctx,
		Animator:                h.arms,
		Profile:                 testProfile(),
		DrawAnimationLength:     400 * ms,
		AttackAnimationLength:   350 * ms,
		InteractAnimationLength: 600 * ms,
		InteractDelay:           500 * ms,
	})
	return weapon
}

func testProfile() cfg.AttackProfile {
	return cfg.AttackProfile{
		Range:          2,
		Cooldown:       350 * ms,
		Windup:         100 * ms,
		ImpactForce:    6,
		DamageMin:      15,
		DamageMax:      30,
		AffectedLayers: cfg.MaskOf(cfg.LayerDefault, cfg.LayerTarget, cfg.LayerProp),
	}
}

func (h *harness) data() *components.WeaponData {
	return components.Weapon.Get(h.weapon)
}

func (h *harness) loc() *components.LocomotionData {
	return components.Locomotion.Get(h.character)
}

// forceActive marks the weapon drawn without running the draw delay, so
// timing tests can start at t=0.
func (h *harness) forceActive() {
	w := h.data()
	w.Selected = true
	w.Active = true
}

// advance moves the clock forward and runs whatever became due.
func (h *harness) advance(d time.Duration) {
	AdvanceClock(h.w, d)
	RunDueActions(h.w)
}

// advanceTo moves the clock to the absolute time t.
func (h *harness) advanceTo(t time.Duration) {
	h.advance(t - Now(h.w))
}

type colliderSpec struct {
	fp        gamemath.Box // Min/Max in world space
	layer     cfg.Layer
	trigger   bool
	root      *donburi.Entry
	receiver  components.DamageReceiver
	rigidBody bool
}

func (h *harness) addCollider(c colliderSpec) *donburi.Entry {
	cs := []donburi.IComponentType{components.Object, components.Collider}
	if c.rigidBody {
		cs = append(cs, components.RigidBody)
	}
	entry := h.w.Entry(h.w.Create(cs...))

	b := c.fp
	w, d := b.Max.X-b.Min.X, b.Max.Z-b.Min.Z
	obj := components.NewFootprintObject(b.Min.X, b.Min.Z, w, d, tags.ResolvCollider)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Collider.SetValue(entry, components.ColliderData{
		Layer:    c.layer,
		Trigger:  c.trigger,
		MinY:     b.Min.Y,
		MaxY:     b.Max.Y,
		Root:     c.root,
		Receiver: c.receiver,
	})
	if c.rigidBody {
		components.RigidBody.SetValue(entry, components.RigidBodyData{Mass: 1})
	}

	spaceEntry, _ := components.Space.First(h.w)
	components.Space.Get(spaceEntry).Add(obj)
	return entry
}

// boxAhead is a 1x2x0.5 box whose near face is dist units in front of the
// camera.
func boxAhead(dist float64) gamemath.Box {
	near := 10 - dist
	return gamemath.Box{
		Min: gamemath.V3(9.5, 0, near-0.5),
		Max: gamemath.V3(10.5, 2, near),
	}
}
