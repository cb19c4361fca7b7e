package systems

import (
	"strings"

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

// UpdateMessage shows a trigger's message when the character walks into it.
func UpdateMessage(ecs *ecs.ECS) {
	StepMessage(ecs.World)
}

func StepMessage(w donburi.World) {
	state := getOrCreateMessageState(w)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}

	character, ok := tags.Character.First(w)
	if !ok {
		return
	}
	pos := components.Character.Get(character).Position

	var zone *donburi.Entry
	components.MessagePoint.Each(w, func(entry *donburi.Entry) {
		if zone != nil || !entry.HasComponent(components.Object) {
			return
		}
		if components.Object.Get(entry).Contains(pos.X, pos.Z) {
			zone = entry
		}
	})

	if zone == nil {
		state.InZone = false
		return
	}
	// Staying in a zone shows its message once.
	if state.InZone && zone.Entity() == state.Zone {
		return
	}
	state.InZone = true
	state.Zone = zone.Entity()
	state.Text = components.MessagePoint.Get(zone).Text
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// DrawMessage renders the active message at the top center of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs.World)
	if state.Text == "" {
		return
	}

	input := getOrCreateInput(ecs.World)
	resolvedText := resolvePlaceholders(state.Text, input.LastInputMethod)
	face := fonts.HUD.Get()

	bounds := text.BoundString(face, resolvedText) //nolint:staticcheck // TODO: migrate to text/v2
	padding := cfg.Message.BoxPadding
	boxWidth := float32(bounds.Dx()) + float32(padding)*2
	boxHeight := float32(bounds.Dy()) + float32(padding)*2

	boxX := (float32(screen.Bounds().Dx()) - boxWidth) / 2
	boxY := float32(cfg.Message.TopMargin)
	vector.FillRect(screen, boxX, boxY, boxWidth, boxHeight, cfg.Message.BoxColor, false)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(bounds.Dy()))
	text.Draw(screen, resolvedText, face, textX, textY, cfg.Message.TextColor)
}

// resolvePlaceholders replaces {placeholder} tokens with input-specific labels
func resolvePlaceholders(s string, method components.InputMethod) string {
	labels := cfg.Message.KeyboardLabels
	if method == components.InputGamepad {
		labels = cfg.Message.GamepadLabels
	}
	for placeholder, label := range labels {
		s = strings.ReplaceAll(s, "{"+placeholder+"}", label)
	}
	return s
}

func getOrCreateMessageState(w donburi.World) *components.MessageStateData {
	entry, ok := components.MessageState.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
