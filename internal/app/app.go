//go:build ebiten

package app

import (
	"time"

	"terragen/internal/core"
	"terragen/internal/render"
	"terragen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 230

// Game adapts a world builder to the ebiten.Game interface, advancing
// generation in paced batches so the pipeline stages are visible as they
// run.
type Game struct {
	builder core.Builder
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided builder. stepsPerSecond bounds how
// many generation batches run per wall-clock second; zero or negative means
// unpaced.
func New(builder core.Builder, scale int, seed int64, stepsPerSecond int) *Game {
	g := &Game{
		builder: builder,
		painter: render.NewGridPainter(builder.Size().W, builder.Size().H),
		overlay: ui.NewOverlay(builder, scale),
		hud:     ui.NewHUD(builder, hudWidth),
		scale:   scale,
		seed:    seed,
	}
	if stepsPerSecond > 0 {
		g.timer = core.NewFixedStep(stepsPerSecond)
	}
	return g
}

// Reset restarts generation with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.builder.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update()
	}

	if g.builder.Done() {
		return nil
	}
	if g.tickOnce {
		g.builder.Step()
		g.tickOnce = false
		return nil
	}
	if g.paused {
		return nil
	}
	if g.timer == nil || g.timer.ShouldStep() {
		g.builder.Step()
	}
	return nil
}

// Draw renders the current world state, overlays, and HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.builder.Cells(), g.builder.Palette(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.builder.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.builder.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
