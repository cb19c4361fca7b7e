package systems

import (
	"math"

	"github.com/automoto/fpsmelee/components"
	"github.com/automoto/fpsmelee/tags"
	"github.com/solarlune/resolv"
)

// moveAgainstSolids moves object by dx then dz world units on the ground
// plane. An axis that would overlap a solid stops flush against it; the
// returned flags tell which axes were blocked. The resolv check is the broad
// phase, the footprint overlap test decides.
func moveAgainstSolids(object *resolv.Object, dx, dz float64) (blockedX, blockedZ bool) {
	dx, dz = dx*components.SpaceScale, dz*components.SpaceScale
	if dx != 0 {
		if check := object.Check(dx+math.Copysign(1, dx), 0, tags.ResolvSolid); check != nil {
			dx, blockedX = clampHorizontal(object, check, dx)
		}
		object.X += dx
	}
	if dz != 0 {
		if check := object.Check(0, dz+math.Copysign(1, dz), tags.ResolvSolid); check != nil {
			dz, blockedZ = clampVertical(object, check, dz)
		}
		object.Y += dz
	}
	object.Update()
	return blockedX, blockedZ
}

func clampHorizontal(object *resolv.Object, check *resolv.Collision, dx float64) (float64, bool) {
	blocked := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spanOverlaps(object.Y, object.H, solid.Y, solid.H) {
			continue
		}
		if dx > 0 && object.X+object.W+dx > solid.X && object.X < solid.X+solid.W {
			dx = math.Max(0, math.Min(dx, solid.X-(object.X+object.W)))
			blocked = true
		}
		if dx < 0 && object.X+dx < solid.X+solid.W && object.X+object.W > solid.X {
			dx = math.Min(0, math.Max(dx, solid.X+solid.W-object.X))
			blocked = true
		}
	}
	return dx, blocked
}

func clampVertical(object *resolv.Object, check *resolv.Collision, dz float64) (float64, bool) {
	blocked := false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !spanOverlaps(object.X, object.W, solid.X, solid.W) {
			continue
		}
		if dz > 0 && object.Y+object.H+dz > solid.Y && object.Y < solid.Y+solid.H {
			dz = math.Max(0, math.Min(dz, solid.Y-(object.Y+object.H)))
			blocked = true
		}
		if dz < 0 && object.Y+dz < solid.Y+solid.H && object.Y+object.H > solid.Y {
			dz = math.Min(0, math.Max(dz, solid.Y+solid.H-object.Y))
			blocked = true
		}
	}
	return dz, blocked
}

// spanOverlaps reports whether [a, a+aLen) and [b, b+bLen) intersect.
func spanOverlaps(a, aLen, b, bLen float64) bool {
	return a < b+bLen && b < a+aLen
}
