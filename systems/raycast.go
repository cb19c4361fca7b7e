package systems

import (
	"math"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// RaycastHit is the nearest collider struck by a ray.
type RaycastHit struct {
	Point    gamemath.Vec3
	Distance float64
	Collider *donburi.Entry
	Root     *donburi.Entry
}

// probePadding widens the probe past resolv's cell rounding and keeps it
// non-degenerate for axis aligned rays.
const probePadding = 0.1

// Raycast returns the nearest collider along origin+dir*t for t in
// [0, maxDist] whose layer is in mask. Triggers count only when
// includeTriggers is set.
//
// The resolv space only knows ground footprints, so the ray's footprint is
// added as a temporary probe to collect candidates and each candidate's box is
// then tested exactly.
func Raycast(w donburi.World, origin, dir gamemath.Vec3, maxDist float64, mask cfg.LayerMask, includeTriggers bool) (RaycastHit, bool) {
	dir = dir.Normalized()
	if dir.IsZero() || maxDist <= 0 {
		return RaycastHit{}, false
	}
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return RaycastHit{}, false
	}
	space := components.Space.Get(spaceEntry)

	end := origin.Add(dir.Scale(maxDist))
	minX, maxX := math.Min(origin.X, end.X)-probePadding, math.Max(origin.X, end.X)+probePadding
	minZ, maxZ := math.Min(origin.Z, end.Z)-probePadding, math.Max(origin.Z, end.Z)+probePadding

	probe := components.NewFootprintObject(minX, minZ, maxX-minX, maxZ-minZ, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvCollider)
	if check == nil {
		return RaycastHit{}, false
	}

	var best RaycastHit
	found := false
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Collider) {
			continue
		}
		col := components.Collider.Get(entry)
		if !mask.Has(col.Layer) {
			continue
		}
		if col.Trigger && !includeTriggers {
			continue
		}
		t, hit := gamemath.RayBox(origin, dir, maxDist, footprintBox(obj, col))
		if !hit || (found && t >= best.Distance) {
			continue
		}
		root := col.Root
		if root == nil {
			root = entry
		}
		best = RaycastHit{
			Point:    origin.Add(dir.Scale(t)),
			Distance: t,
			Collider: entry,
			Root:     root,
		}
		found = true
	}
	return best, found
}

func footprintBox(obj *resolv.Object, col *components.ColliderData) gamemath.Box {
	x, z, w, d := components.ObjectData{Object: obj}.Footprint()
	return gamemath.Box{
		Min: gamemath.V3(x, col.MinY, z),
		Max: gamemath.V3(x+w, col.MaxY, z+d),
	}
}
