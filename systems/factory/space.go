package factory

import (
	"github.com/automoto/fpsmelee/archetypes"
	"github.com/automoto/fpsmelee/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collider space covering the arena's ground plane.
// Sizes are in world units.
func CreateSpace(ecs *ecs.ECS, width, depth, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, components.NewFootprintSpace(width, depth, cellSize))
	return space
}
