package systems

import (
	"fmt"

	"github.com/automoto/fpsmelee/components"
	cfg "github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/fonts"
	"github.com/automoto/fpsmelee/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs.World)
	if !settings.Debug {
		return
	}
	ppu := float32(cfg.UI.PixelsPerUnit)

	// Collider outlines straight from the resolv space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := cfg.UI.ColliderColor
			if obj.HasTags(tags.ResolvTrigger) {
				c = cfg.UI.TriggerColor
			} else if obj.HasTags(tags.ResolvTarget) {
				c = cfg.UI.TargetColor
			}
			fx, fz, fw, fd := components.ObjectData{Object: obj}.Footprint()
			x, y := toScreen(fx, fz)
			vector.StrokeRect(screen, x, y, float32(fw)*ppu, float32(fd)*ppu, 1, c, false)
		}
	}

	now := Now(ecs.World)
	tags.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		trace := components.RayTrace.Get(e)
		if now < trace.Until {
			x0, y0 := toScreen(trace.Origin.X, trace.Origin.Z)
			x1, y1 := toScreen(trace.End.X, trace.End.Z)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.UI.RayColor, false)
			if trace.Hit {
				vector.FillCircle(screen, x1, y1, 3, cfg.UI.HitColor, true)
			}
		}
		drawWeaponStatus(ecs.World, screen, e)
	})
}

func drawWeaponStatus(w donburi.World, screen *ebiten.Image, e *donburi.Entry) {
	weapon := components.Weapon.Get(e)
	status := StatusOf(w, e)
	state := locomotionState(weapon)
	lines := []string{
		fmt.Sprintf("%s  t=%.2fs  seed=%d", weapon.Name, Now(w).Seconds(), RandomSeed(w)),
		fmt.Sprintf("active=%v attack=%v switch=%v busy=%v", status.Active, status.CanAttack, status.CanSwitch, status.Busy),
		fmt.Sprintf("attacking=%v interacting=%v idle=%v", status.Attacking, status.Interacting, status.Idle),
		fmt.Sprintf("state=%s swings=%d resolved=%d pending=%d", state, weapon.Committed, weapon.Resolved, PendingActions(w, e.Entity())),
	}
	if camEntry, ok := components.Camera.First(w); ok {
		lines = append(lines, fmt.Sprintf("fov=%.1f", components.Camera.Get(camEntry).FOV))
	}

	face := fonts.Debug.Get()
	x := screen.Bounds().Dx() - 360
	for i, line := range lines {
		text.Draw(screen, line, face, x, 20+i*14, cfg.UI.TextColor)
	}
}
