package systems

import (
	"github.com/automoto/fpsmelee/components"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// viewScale converts view model offsets (world units) into the 2D view
// transform used by the debug renderer.
const viewScale = 400

func viewOffset(p gamemath.Vec3) dmath.Vec2 {
	return dmath.NewVec2(p.X*viewScale, -p.Y*viewScale)
}

// UpdateWeaponPose combines the swing root pose with the weapon's one-shots.
func UpdateWeaponPose(e *ecs.ECS) {
	tags.Weapon.Each(e.World, func(entry *donburi.Entry) {
		weapon := components.Weapon.Get(entry)
		fb := components.MotionFeedback.Get(entry)

		pose := fb.Offset
		if root, ok := SwingRootOf(e.World, weapon.Owner); ok {
			pose = components.Swing.Get(root).Current.Add(fb.Offset)
		}
		components.ViewPose.Get(entry).Pose = pose

		if weapon.VisualRoot != nil && weapon.VisualRoot.Valid() {
			tr := transform.Transform.Get(weapon.VisualRoot)
			tr.LocalPosition = viewOffset(fb.Offset.Position)
			tr.LocalRotation = fb.Offset.Rotation.X
		}
	})
}
