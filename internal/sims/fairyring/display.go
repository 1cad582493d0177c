package fairyring

import (
	"fmt"
	"image/color"

	"fungi-ca/internal/core"
	"fungi-ca/internal/geometry"
)

const (
	// toxinShadeBase is the palette index of the first toxin shade.
	toxinShadeBase = StateCount
	toxinShades    = 16
)

var fairyPalette = buildPalette()

// Palette exposes the colours used by the viewer. Indices below StateCount
// are states; the rest are toxin shades for empty cells.
func (s *Sim) Palette() []color.RGBA {
	return fairyPalette
}

func buildPalette() []color.RGBA {
	palette := []color.RGBA{
		{R: 0, G: 102, B: 0, A: 255},     // empty
		{R: 255, G: 255, B: 255, A: 255}, // spore
		{R: 255, G: 204, B: 204, A: 255}, // young
		{R: 255, G: 102, B: 102, A: 255}, // maturing
		{R: 204, G: 0, B: 0, A: 255},     // mushroom
		{R: 102, G: 51, B: 0, A: 255},    // older
		{R: 102, G: 102, B: 0, A: 255},   // decaying
		{R: 26, G: 51, B: 0, A: 255},     // dead1
		{R: 26, G: 51, B: 0, A: 255},     // dead2
		{R: 90, G: 90, B: 90, A: 255},    // inert
	}
	ground := palette[Empty]
	toxic := color.RGBA{R: 150, G: 40, B: 190, A: 255}
	for i := 0; i < toxinShades; i++ {
		t := float64(i+1) / toxinShades
		palette = append(palette, color.RGBA{
			R: lerp(ground.R, toxic.R, t),
			G: lerp(ground.G, toxic.G, t),
			B: lerp(ground.B, toxic.B, t),
			A: 255,
		})
	}
	return palette
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// SetShowToxins toggles the toxin overlay in Cells.
func (s *Sim) SetShowToxins(show bool) { s.showToxins = show }

// ShowToxins reports whether Cells shades empty cells by toxicity.
func (s *Sim) ShowToxins() bool { return s.showToxins }

// Viewport returns the lattice rectangle Cells covers: the bounds of a
// bounded sim, otherwise a Width x Height window centred on the origin.
func (s *Sim) Viewport() geometry.Rect {
	if s.bounded {
		return s.bounds
	}
	w, h := s.cfg.Width, s.cfg.Height
	origin := geometry.Pt(-w/2, -h/2)
	return geometry.Rect{Min: origin, Max: geometry.Pt(origin.X+w-1, origin.Y+h-1)}
}

// Cells implements core.Sim. The returned buffer is reused between calls.
func (s *Sim) Cells() []uint8 {
	r := s.Viewport()
	if s.view == nil || s.view.W != r.Dx() || s.view.H != r.Dy() {
		s.view = core.NewByteGrid(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
	s.view.X0, s.view.Y0 = r.Min.X, r.Min.Y
	s.view.Clear()
	if s.showToxins {
		s.Toxins().Each(func(p geometry.Point, v float64) {
			s.view.Set(p.X, p.Y, toxinShade(v))
		})
	}
	for _, p := range s.State().Points() {
		s.view.Set(p.X, p.Y, uint8(s.State().At(p)))
	}
	return s.view.Cells()
}

func toxinShade(v float64) uint8 {
	level := int(v * toxinShades)
	if level >= toxinShades {
		level = toxinShades - 1
	}
	if level < 0 {
		level = 0
	}
	return uint8(toxinShadeBase + level)
}

// StatusLines summarises the run for the HUD.
func (s *Sim) StatusLines() []string {
	lines := []string{
		fmt.Sprintf("t=%d  cells=%d  toxins=%d", s.time, s.State().Len(), s.Toxins().Len()),
		fmt.Sprintf("coupling=%s", s.cfg.Coupling),
	}
	if ring, ok := s.RingMetrics(); ok {
		lines = append(lines, fmt.Sprintf("ring=%.2f (%d/%d)  d=%.1f", ring.Ratio, ring.Members, ring.Total, ring.Diameter()))
	} else {
		lines = append(lines, "ring=--")
	}
	return lines
}
