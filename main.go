package main

import (
	"image"
	"log"

	"github.com/automoto/fpsmelee/config"
	"github.com/automoto/fpsmelee/scenes"
	"github.com/automoto/fpsmelee/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if s, ok := g.scene.(interface{ ExitRequested() bool }); ok && s.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	// Initialize persistence and load saved settings before env overrides
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if err := config.ApplyEnv(); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	systems.SetSFXVolume(config.Audio.DefaultSFXVol)
	systems.PreloadAllSFX()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("fpsmelee")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	game := NewGame()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	if closer, ok := game.scene.(interface{ Close() }); ok {
		closer.Close()
	}
}
