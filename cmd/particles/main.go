// Package main provides a standalone preview tool for the particle engine.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	--width <px>      Window width (default 1024)
//	--height <px>     Window height (default 640)
//	--density <n>     Pixel density multiplier (default 1.0)
//	--verbose         Enable verbose logging
//
// Controls:
//
//	P            - Toggle pause (观察静止的粒子分布)
//	R            - Reinitialize all particles
//	Up/Down      - Increase/decrease density and rebuild
//	Q/Escape     - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/decker502/greeting/internal/particle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	widthFlag   = flag.Int("width", 1024, "Window width in pixels")
	heightFlag  = flag.Int("height", 640, "Window height in pixels")
	densityFlag = flag.Float64("density", 1.0, "Pixel density multiplier")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// previewGame implements ebiten.Game for the particle preview window.
type previewGame struct {
	engine  *particle.Engine
	density float64
	width   int
	height  int
}

func newPreviewGame(width, height int, density float64) *previewGame {
	engine := particle.NewEngine()
	engine.Configure(float64(width), float64(height), density)
	engine.Initialize()
	engine.Run()

	return &previewGame{
		engine:  engine,
		density: density,
		width:   width,
		height:  height,
	}
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.engine.Paused() {
			g.engine.Resume()
		} else {
			g.engine.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reinitialize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.setDensity(g.density + 0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.setDensity(g.density - 0.25)
	}

	g.engine.Update()
	return nil
}

// setDensity 重建粒子系统以应用新密度
func (g *previewGame) setDensity(density float64) {
	if density < 0.25 {
		density = 0.25
	}
	g.density = density
	g.engine.Configure(float64(g.width), float64(g.height), density)
	g.engine.Reinitialize()
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	g.engine.Draw(screen)

	status := fmt.Sprintf("FPS: %.1f  particles: %d  density: %.2f  [P]ause [R]einit [Up/Down] density [Q]uit",
		ebiten.ActualFPS(), len(g.engine.Particles), g.density)
	if g.engine.Paused() {
		status += "  (paused)"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	game := newPreviewGame(*widthFlag, *heightFlag, *densityFlag)

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Particle Preview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
