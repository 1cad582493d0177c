package ui

import (
	"math"
	"strconv"

	"fungi-ca/internal/core"
	"fungi-ca/internal/geometry"
)

// StatusProvider is implemented by sims that report a few lines of run
// state for the HUD.
type StatusProvider interface {
	StatusLines() []string
}

// RingProvider is implemented by sims whose fruiting bodies can be outlined
// by the overlay.
type RingProvider interface {
	RingMetrics() (geometry.Ring, bool)
	FruitingPoints() []geometry.Point
	Viewport() geometry.Rect
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

// refresh loads the control's current value from a parameter snapshot.
func (s *controlState) refresh(snapshot core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snapshot.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

// target returns the value one step in direction, clamped to the control's
// bounds, and whether it differs from the current value.
func (s *controlState) target(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	step := s.control.Step
	switch s.control.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next := s.control.Clamp(s.floatValue + float64(direction)*step)
	return next, math.Abs(next-s.floatValue) > 1e-9
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// project maps a lattice point to the centre of its screen pixel block.
func project(p geometry.Point, view geometry.Rect, scale int) (float64, float64) {
	x := (float64(p.X-view.Min.X) + 0.5) * float64(scale)
	y := (float64(p.Y-view.Min.Y) + 0.5) * float64(scale)
	return x, y
}
