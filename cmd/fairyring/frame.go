package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"fungi-ca/internal/sims/fairyring"
)

var stateColors = [fairyring.StateCount]aurora.Color{
	fairyring.Empty:    aurora.GreenFg | aurora.FaintFm,
	fairyring.Spore:    aurora.WhiteFg | aurora.BrightFg,
	fairyring.Young:    aurora.MagentaFg | aurora.BrightFg,
	fairyring.Maturing: aurora.RedFg | aurora.BrightFg,
	fairyring.Mushroom: aurora.RedFg | aurora.BoldFm,
	fairyring.Older:    aurora.YellowFg,
	fairyring.Decaying: aurora.YellowFg | aurora.FaintFm,
	fairyring.Dead1:    aurora.BlackFg | aurora.BrightFg,
	fairyring.Dead2:    aurora.BlackFg | aurora.BrightFg,
	fairyring.Inert:    aurora.WhiteFg,
}

// frame renders the occupied window like Sim.Render, colouring each cell.
func frame(au aurora.Aurora, sim *fairyring.Sim, padding int, toxins bool) string {
	var b strings.Builder
	r := sim.Window(padding)
	states := sim.StateRaster(padding)
	tox := sim.ToxinRaster(padding)
	threshold := sim.Config().Params.ToxinThreshold
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if x > r.Min.X {
				b.WriteByte(' ')
			}
			if toxins {
				v := tox.At(x, y)
				s := strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
				if v > threshold {
					b.WriteString(au.Magenta(s).String())
				} else {
					b.WriteString(au.Faint(s).String())
				}
				continue
			}
			st := states.At(x, y)
			b.WriteString(au.Colorize(strconv.Itoa(int(st)), stateColors[st]).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// summary describes the current step, population and ring shape.
func summary(au aurora.Aurora, sim *fairyring.Sim) string {
	head := fmt.Sprintf("t=%d cells=%d fruiting=%d", sim.Time(), sim.State().Len(), len(sim.FruitingPoints()))
	ring, ok := sim.RingMetrics()
	if !ok {
		return head + " ring=--"
	}
	ratio := fmt.Sprintf("%.2f", ring.Ratio)
	if ring.Ratio >= fairyring.FairyRingRatio {
		ratio = au.Green(ratio).Bold().String()
	}
	return fmt.Sprintf("%s ring=%s (%d/%d) diameter=%.1f", head, ratio, ring.Members, ring.Total, ring.Diameter())
}
