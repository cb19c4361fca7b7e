package scenes

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sync"

	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/arenadata"
	"github.com/automoto/fpsmelee/systems"
	"github.com/automoto/fpsmelee/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the melee sandbox: one character with a blade in an arena of
// target dummies.
type ArenaScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// ExitRequested reports whether the player chose Exit from the pause menu.
func (as *ArenaScene) ExitRequested() bool {
	return as.ecs != nil && systems.IsExitRequested(as.ecs.World)
}

// Close releases the world's event subscriptions.
func (as *ArenaScene) Close() {
	if as.ecs != nil {
		systems.UnregisterMotionFeedback(as.ecs.World)
	}
}

// gameSystems run in this order. The clock stops with them so pending
// windups keep their deadlines. The camera follows the character before the
// scheduler resolves windups, so their rays use this tick's eye.
var gameSystems = []struct {
	name   string
	update ecs.System
}{
	{"clock", systems.UpdateClock},
	{"locomotion", systems.UpdateLocomotion},
	{"camera", systems.UpdateCamera},
	{"weapon input", systems.UpdateWeaponInput},
	{"scheduler", systems.UpdateScheduler},
	{"swing", systems.UpdateSwing},
	{"motion feedback", systems.UpdateMotionFeedback},
	{"weapon pose", systems.UpdateWeaponPose},
	{"rigid bodies", systems.UpdateRigidBodies},
	{"combat", systems.UpdateCombat},
	{"effects", systems.UpdateEffects},
	{"message", systems.UpdateMessage},
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems, frozen while paused
	for _, s := range gameSystems {
		ecs.AddSystem(systems.WithPauseCheck(s.update))
	}

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawViewModel)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	as.ecs = ecs

	if cfg.Debug.Seed != 0 {
		systems.SeedRandom(ecs.World, uint64(cfg.Debug.Seed))
	}
	systems.RegisterMotionFeedback(ecs.World)

	arena := loadArena()
	factory.CreateArena(ecs, arena)

	ctx := factory.CreateGameplayContext(ecs)
	character := factory.CreateCharacter(ecs, "player", factory.SpawnPosition(arena), arena.Spawn.Yaw)
	camera := factory.CreateCamera(ecs, character)

	weapon, err := factory.CreateWeapon(ecs, factory.WeaponOptions{
		Name:     "blade",
		Owner:    character,
		Camera:   camera,
		Context:  ctx,
		Animator: systems.NewTweenArms(cfg.Weapon.DrawAnimationLength, cfg.Weapon.AttackAnimationLength, cfg.Weapon.InteractAnimationLength),
	})
	if err != nil {
		panic(fmt.Errorf("create weapon: %w", err))
	}
	systems.Select(ecs.World, weapon)
}

// loadArena reads the configured TMX arena, falling back to the built-in
// layout when none is configured or it fails to load.
func loadArena() *arenadata.ArenaData {
	a := cfg.Arena
	if a.Path != "" {
		data, err := arenadata.LoadArena(os.DirFS(filepath.Dir(a.Path)), filepath.Base(a.Path), a.UnitsPerTile)
		if err == nil {
			cfg.Arena.Width, cfg.Arena.Depth = int(data.Width), int(data.Depth)
			return data
		}
		log.Printf("Warning: Could not load arena %s: %v", a.Path, err)
	}
	return arenadata.Default(float64(a.Width), float64(a.Depth), a.TargetSize)
}
