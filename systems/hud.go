package systems

import (
	"image/color"
	"math"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// DrawViewModel renders the weapon as a first-person blade in the lower right
// corner, offset by the swing root and one-shot transforms.
func DrawViewModel(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	tags.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		weapon := components.Weapon.Get(e)
		if weapon.VisualRoot == nil || !weapon.VisualRoot.Valid() {
			return
		}
		raise, arc := float32(1), float32(0)
		if arms, ok := weapon.Animator.(*TweenArms); ok {
			raise, arc = arms.Raise, arms.Arc
		}
		if raise <= 0.01 {
			return
		}

		pos := transform.WorldPosition(weapon.VisualRoot)
		baseX := float32(width)*0.78 + float32(pos.X) - arc*float32(width)*0.2
		baseY := float32(height) + float32(pos.Y) - raise*float32(height)*0.35

		angle := float64(arc)*0.9 - 0.35
		tipX := baseX + float32(math.Sin(angle))*120
		tipY := baseY - float32(math.Cos(angle))*120
		vector.StrokeLine(screen, baseX, baseY, tipX, tipY, 8, cfg.UI.WeaponColor, true)
		vector.FillCircle(screen, baseX, baseY, 10, color.RGBA{90, 60, 40, 255}, true)
	})

	// Crosshair
	cx, cy := float32(width)/2, float32(height)/2
	vector.StrokeLine(screen, cx-5, cy, cx+5, cy, 1, cfg.UI.TextColor, false)
	vector.StrokeLine(screen, cx, cy-5, cx, cy+5, 1, cfg.UI.TextColor, false)
}
