package fairyring

import (
	"math"
	"strconv"
	"strings"

	"fungi-ca/internal/core"
	"fungi-ca/internal/geometry"
)

// DefaultPadding is the margin Render and the rasters add around the
// occupied bounding box.
const DefaultPadding = 2

// Window returns the occupied bounding box grown by padding on every side.
// An empty grid yields a window around the origin.
func (s *Sim) Window(padding int) geometry.Rect {
	r, ok := s.State().Bounds()
	if !ok {
		r = geometry.Rect{}
	}
	return r.Grow(padding)
}

// StateRaster copies the window's states into a dense grid.
func (s *Sim) StateRaster(padding int) *core.ByteGrid {
	r := s.Window(padding)
	out := core.NewByteGrid(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	for _, p := range s.State().Points() {
		out.Set(p.X, p.Y, uint8(s.State().At(p)))
	}
	return out
}

// ToxinRaster copies the window's toxin values into a dense grid.
func (s *Sim) ToxinRaster(padding int) *core.FloatGrid {
	r := s.Window(padding)
	out := core.NewFloatGrid(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	s.Toxins().Each(func(p geometry.Point, v float64) {
		out.Set(p.X, p.Y, v)
	})
	return out
}

// Render formats the window as text, one row per line. Cells are state
// digits, or toxin values rounded to one decimal when showToxins is set.
func (s *Sim) Render(padding int, showToxins bool) string {
	var b strings.Builder
	r := s.Window(padding)
	if showToxins {
		raster := s.ToxinRaster(padding)
		for y := r.Min.Y; y <= r.Max.Y; y++ {
			for x := r.Min.X; x <= r.Max.X; x++ {
				if x > r.Min.X {
					b.WriteByte(' ')
				}
				v := math.Round(raster.At(x, y)*10) / 10
				b.WriteString(strconv.FormatFloat(v, 'f', 1, 64))
			}
			b.WriteByte('\n')
		}
		return b.String()
	}
	raster := s.StateRaster(padding)
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if x > r.Min.X {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(int(raster.At(x, y))))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
