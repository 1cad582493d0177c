//go:build ebiten

package app

import (
	"image/color"
	"time"

	"fungi-ca/internal/core"
	"fungi-ca/internal/render"
	"fungi-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("fairyring.app")

type toxinToggler interface {
	ShowToxins() bool
	SetShowToxins(bool)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette render.PaletteProvider
	hud     *ui.HUD
	overlay *ui.Overlay
	pace    *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The sim advances tps
// times per second independently of the frame rate.
func New(sim core.Sim, scale, tps, hudWidth int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, scale),
		pace:     core.NewFixedStep(tps),
		scale:    max(scale, 1),
		hudWidth: max(hudWidth, 0),
	}
	g.palette, _ = sim.(render.PaletteProvider)
	g.Reset(seed)
	return g
}

// Reset reinitializes the simulation state with the provided seed and
// reinoculates sims that start from a seeded pattern.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	if in, ok := g.sim.(core.Inoculator); ok {
		in.Inoculate()
	}
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		logger.Infof("reseeding with %d", seed)
		g.Reset(seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if t, ok := g.sim.(toxinToggler); ok {
			t.SetShowToxins(!t.ShowToxins())
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.pace.SetInterval(g.pace.Interval() / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.pace.SetInterval(g.pace.Interval() * 2)
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)

	step := g.pace.ShouldStep()
	if (!g.paused && step) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	var palette []color.RGBA
	if g.palette != nil {
		palette = g.palette.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
