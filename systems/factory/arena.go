package factory

import (
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/arenadata"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena creates the collider space and every collider in data, and
// returns the target entries.
func CreateArena(ecs *ecs.ECS, data *arenadata.ArenaData) []*donburi.Entry {
	cell := cfg.Physics.CellSize
	CreateSpace(ecs, int(data.Width)+cell, int(data.Depth)+cell, cell)

	for _, b := range data.Walls {
		CreateWall(ecs, footprint(b, cfg.Arena.WallHeight))
	}
	for _, b := range data.Props {
		CreateProp(ecs, footprint(b, 1))
	}
	for _, b := range data.Triggers {
		CreateTrigger(ecs, footprint(b, 2), b.Message)
	}

	targets := make([]*donburi.Entry, 0, len(data.Targets))
	for _, b := range data.Targets {
		targets = append(targets, CreateTarget(ecs, footprint(b, 1.8), cfg.Arena.TargetHP))
	}
	return targets
}

func footprint(b arenadata.Box, defaultHeight float64) Footprint {
	h := b.Height
	if h <= 0 {
		h = defaultHeight
	}
	return Footprint{X: b.X, Z: b.Z, W: b.W, D: b.D, MinY: 0, MaxY: h}
}

// SpawnPosition returns the arena spawn as a world position.
func SpawnPosition(data *arenadata.ArenaData) gamemath.Vec3 {
	return gamemath.V3(data.Spawn.X, 0, data.Spawn.Z)
}
