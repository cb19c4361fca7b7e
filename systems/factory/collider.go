package factory

import (
	"github.com/automoto/fpsmelee/archetypes"
	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Footprint is a collider's ground rectangle plus vertical extent.
type Footprint struct {
	X, Z, W, D float64
	MinY, MaxY float64
}

// attachCollider creates the resolv object for entry, links it back for
// lookups from collisions and adds it to the space if one exists.
func attachCollider(ecs *ecs.ECS, entry *donburi.Entry, fp Footprint, col components.ColliderData, resolvTags ...string) *resolv.Object {
	obj := components.NewFootprintObject(fp.X, fp.Z, fp.W, fp.D, append([]string{tags.ResolvCollider}, resolvTags...)...)
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	col.MinY, col.MaxY = fp.MinY, fp.MaxY
	components.Collider.SetValue(entry, col)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

func CreateWall(ecs *ecs.ECS, fp Footprint) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	attachCollider(ecs, wall, fp, components.ColliderData{Layer: cfg.LayerDefault}, tags.ResolvSolid)
	return wall
}

// CreateProp creates a static prop on the prop layer.
func CreateProp(ecs *ecs.ECS, fp Footprint) *donburi.Entry {
	prop := archetypes.Wall.Spawn(ecs)
	attachCollider(ecs, prop, fp, components.ColliderData{Layer: cfg.LayerProp}, tags.ResolvSolid)
	return prop
}

// CreateTrigger creates a non-solid trigger volume. A non-empty message is
// shown while the character stands inside it.
func CreateTrigger(ecs *ecs.ECS, fp Footprint, message string) *donburi.Entry {
	trigger := archetypes.Trigger.Spawn(ecs)
	attachCollider(ecs, trigger, fp, components.ColliderData{Layer: cfg.LayerTrigger, Trigger: true}, tags.ResolvTrigger)
	if message != "" {
		trigger.AddComponent(components.MessagePoint)
		components.MessagePoint.SetValue(trigger, components.MessagePointData{Text: message})
	}
	return trigger
}
