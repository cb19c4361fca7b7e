package systems

import (
	"github.com/automoto/fpsmelee/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down hit flashes and health bar visibility.
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		if bar.TimeToLive > 0 {
			bar.TimeToLive--
		}
	})
	updateArms(ecs)
}
