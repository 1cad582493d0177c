//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"fungi-ca/internal/core"
	"fungi-ca/internal/geometry"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	hullColor   = color.RGBA{R: 250, G: 220, B: 80, A: 220}
	memberColor = color.RGBA{R: 80, G: 220, B: 250, A: 220}
)

// Overlay outlines the convex hull of the fruiting bodies (key 1) and marks
// the ring members (key 2).
type Overlay struct {
	sim   core.Sim
	scale int

	showHull    bool
	showMembers bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: max(scale, 1), showHull: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHull = !o.showHull
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showMembers = !o.showMembers
	}
}

// Draw paints the enabled layers over the simulation view.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(RingProvider)
	if !ok || (!o.showHull && !o.showMembers) {
		return
	}
	ring, ok := provider.RingMetrics()
	if !ok {
		return
	}
	view := provider.Viewport()
	if o.showMembers {
		points := provider.FruitingPoints()
		members, _ := geometry.ClassifyRing(points, ring.Hull, geometry.RingTolerance)
		for i, p := range points {
			if members[i] {
				x, y := project(p, view, o.scale)
				o.drawPoint(screen, x, y, float64(o.scale), memberColor)
			}
		}
	}
	if o.showHull {
		n := len(ring.Hull)
		for i := 0; i < n; i++ {
			x1, y1 := project(ring.Hull[i], view, o.scale)
			x2, y2 := project(ring.Hull[(i+1)%n], view, o.scale)
			o.drawLine(screen, x1, y1, x2, y2, math.Max(1, float64(o.scale)/3), hullColor)
		}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size/2, y-size/2)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	length := math.Hypot(x2-x1, y2-y1)
	if length == 0 {
		o.drawPoint(screen, x1, y1, thickness, col)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -0.5)
	op.GeoM.Scale(length, thickness)
	op.GeoM.Rotate(math.Atan2(y2-y1, x2-x1))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
