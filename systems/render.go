package systems

import (
	"image/color"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/shared/gamemath"
	"github.com/automoto/fpsmelee/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// mapOrigin is where the arena's (0, 0) corner lands on screen.
const mapOriginX, mapOriginY = 8, 20

func toScreen(x, z float64) (float32, float32) {
	ppu := cfg.UI.PixelsPerUnit
	return float32(mapOriginX + x*ppu), float32(mapOriginY + z*ppu)
}

// DrawArena renders a top-down view of the arena: walls, targets and the
// character with its facing.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	ppu := float32(cfg.UI.PixelsPerUnit)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		fx, fz, fw, fd := components.Object.Get(e).Footprint()
		x, y := toScreen(fx, fz)
		vector.FillRect(screen, x, y, float32(fw)*ppu, float32(fd)*ppu, cfg.UI.ColliderColor, false)
	})

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		fx, fz, fw, fd := components.Object.Get(e).Footprint()
		x, y := toScreen(fx, fz)
		c := cfg.UI.TargetColor
		if components.Flash.Get(e).Duration > 0 {
			c = color.RGBA{255, 255, 255, 255}
		}
		w, h := float32(fw)*ppu, float32(fd)*ppu
		vector.FillRect(screen, x, y, w, h, c, false)
		drawHealthBar(screen, e, x, y-4, w)
	})

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		char := components.Character.Get(e)
		loc := components.Locomotion.Get(e)
		x, y := toScreen(char.Position.X, char.Position.Z)
		vector.FillCircle(screen, x, y, float32(char.Radius)*ppu, cfg.UI.PlayerColor, true)

		f := gamemath.Forward(loc.Yaw, 0).Scale(char.Radius * 2)
		fx, fy := toScreen(char.Position.X+f.X, char.Position.Z+f.Z)
		vector.StrokeLine(screen, x, y, fx, fy, 2, cfg.UI.TextColor, true)
	})
}

func drawHealthBar(screen *ebiten.Image, e *donburi.Entry, x, y, w float32) {
	if components.HealthBar.Get(e).TimeToLive <= 0 {
		return
	}
	hp := components.Health.Get(e)
	if hp.Max <= 0 {
		return
	}
	ratio := float32(hp.Current) / float32(hp.Max)
	vector.FillRect(screen, x, y, w, 2, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, x, y, w*ratio, 2, color.RGBA{40, 220, 40, 255}, false)
}
