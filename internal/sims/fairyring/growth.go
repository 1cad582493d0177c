package fairyring

import (
	errgo "gopkg.in/errgo.v1"

	"fungi-ca/internal/geometry"
)

// DiameterSample is the equivalent-circle diameter of the fruiting hull at
// one step.
type DiameterSample struct {
	Step     int     `json:"step"`
	Diameter float64 `json:"diameter"`
	Ratio    float64 `json:"ratio"`
}

// GrowthResult captures telemetry from one inoculated run.
type GrowthResult struct {
	// Ring is the ring measurement after the last simulated step. It is only
	// meaningful when Defined is set.
	Ring    geometry.Ring `json:"-"`
	Defined bool          `json:"defined"`
	Ratio   float64       `json:"ratio"`

	// Samples holds one entry per step that had fruiting bodies.
	Samples []DiameterSample `json:"samples,omitempty"`

	// PeakFruiting and PeakOccupied are the largest fruiting and non-empty
	// cell counts seen at any step.
	PeakFruiting int `json:"peak_fruiting"`
	PeakOccupied int `json:"peak_occupied"`

	// LastActiveStep is the final step that still had a non-empty grid.
	LastActiveStep int `json:"last_active_step"`

	// StepsSimulated reports how many steps ran. A colony that dies out ends
	// the run early.
	StepsSimulated int `json:"steps_simulated"`
}

// MeasureGrowth inoculates a fresh simulation with a single spore, runs it for
// up to steps ticks and records the ring shape as it develops.
func MeasureGrowth(cfg Config, steps int) (GrowthResult, error) {
	sim, err := New(cfg)
	if err != nil {
		return GrowthResult{}, errgo.Mask(err, errgo.Any)
	}
	sim.Inoculate()

	var result GrowthResult
	for step := 1; step <= steps; step++ {
		sim.Step()
		result.StepsSimulated = step

		grid := sim.State()
		if grid.Len() == 0 {
			result.Ring, result.Defined = geometry.Ring{}, false
			break
		}
		result.LastActiveStep = step
		result.PeakOccupied = max(result.PeakOccupied, grid.Len())

		fruiting := sim.FruitingPoints()
		result.PeakFruiting = max(result.PeakFruiting, len(fruiting))
		ring, ok := geometry.MeasureRing(fruiting)
		result.Ring, result.Defined = ring, ok
		if !ok {
			continue
		}
		result.Samples = append(result.Samples, DiameterSample{
			Step:     step,
			Diameter: ring.Diameter(),
			Ratio:    ring.Ratio,
		})
	}
	if result.Defined {
		result.Ratio = result.Ring.Ratio
	}
	return result, nil
}
