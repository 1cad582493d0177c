package fairyring

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/juju/loggo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	errgo "gopkg.in/errgo.v1"
)

var sweepLogger = loggo.GetLogger("fairyring.sweep")

const (
	// FairyRingRatio is the ring ratio at or above which a run counts as a
	// fairy ring.
	FairyRingRatio = 0.9
	// FairyRingShare is the fraction of runs that must form a ring for a
	// parameter point to be classified as producing fairy rings.
	FairyRingShare = 0.5
)

// SweepAxis is one swept parameter and the values it takes.
type SweepAxis struct {
	Key    string
	Values []float64
}

// ParseAxis parses "key=lo:hi:n" into n evenly spaced values from lo to hi
// inclusive, or "key=a,b,c" into an explicit list.
func ParseAxis(spec string) (SweepAxis, error) {
	key, rest, ok := strings.Cut(spec, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" || rest == "" {
		return SweepAxis{}, errgo.WithCausef(nil, ErrInvalidConfig, "axis %q: want key=lo:hi:n or key=a,b,c", spec)
	}
	var probe Config
	if !probe.ApplyParameter(key, 0) {
		return SweepAxis{}, errgo.WithCausef(nil, ErrInvalidConfig, "axis %q: unknown parameter %q", spec, key)
	}

	if parts := strings.Split(rest, ":"); len(parts) == 3 {
		lo, err1 := strconv.ParseFloat(parts[0], 64)
		hi, err2 := strconv.ParseFloat(parts[1], 64)
		n, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil || n <= 0 {
			return SweepAxis{}, errgo.WithCausef(nil, ErrInvalidConfig, "axis %q: bad range", spec)
		}
		if n == 1 {
			return SweepAxis{Key: key, Values: []float64{lo}}, nil
		}
		return SweepAxis{Key: key, Values: floats.Span(make([]float64, n), lo, hi)}, nil
	}

	var values []float64
	for _, field := range strings.Split(rest, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return SweepAxis{}, errgo.WithCausef(nil, ErrInvalidConfig, "axis %q: bad value %q", spec, field)
		}
		values = append(values, v)
	}
	return SweepAxis{Key: key, Values: values}, nil
}

// SweepRecord aggregates the replicate runs of one parameter point.
type SweepRecord struct {
	Point map[string]float64 `json:"point"`
	Runs  int                `json:"runs"`

	// Defined counts runs that ended with at least one fruiting body.
	Defined int `json:"defined"`

	// MeanRatio and StdRatio summarise the ring ratio over defined runs.
	MeanRatio float64 `json:"mean_ratio"`
	StdRatio  float64 `json:"std_ratio"`

	// RingShare is the fraction of all runs whose ratio reached
	// FairyRingRatio. Undefined runs count as non-rings.
	RingShare float64 `json:"ring_share"`
	FairyRing bool    `json:"fairy_ring"`

	MeanDiameter     float64 `json:"mean_diameter"`
	MeanPeakFruiting float64 `json:"mean_peak_fruiting"`
}

// Label formats the point as "key=value" pairs in axis order.
func (r SweepRecord) Label(axes []SweepAxis) string {
	parts := make([]string, 0, len(axes))
	for _, a := range axes {
		parts = append(parts, fmt.Sprintf("%s=%.4g", a.Key, r.Point[a.Key]))
	}
	return strings.Join(parts, " ")
}

// ParameterGrid measures every point of the cartesian product of axes with
// runs replicates each, seeded base.Seed+i. Runs execute on up to workers
// goroutines; records come back in axis order with the last axis varying
// fastest.
func ParameterGrid(base Config, axes []SweepAxis, runs, steps, workers int) ([]SweepRecord, error) {
	if runs <= 0 {
		runs = 1
	}
	if workers <= 0 {
		workers = 1
	}

	points := cartesian(axes)
	configs := make([]Config, len(points))
	for i, pt := range points {
		cfg := base
		for _, a := range axes {
			cfg.ApplyParameter(a.Key, pt[a.Key])
		}
		if err := cfg.Validate(); err != nil {
			return nil, errgo.Mask(err, errgo.Is(ErrInvalidConfig))
		}
		configs[i] = cfg
	}
	sweepLogger.Infof("sweeping %d points x %d runs (%d steps, %d workers)", len(points), runs, steps, workers)

	results := make([][]GrowthResult, len(points))
	for i := range results {
		results[i] = make([]GrowthResult, runs)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, workers)
	for i := range points {
		for r := 0; r < runs; r++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(pi, run int) {
				defer wg.Done()
				defer func() { <-sem }()
				cfg := configs[pi]
				cfg.Seed = base.Seed + int64(run)
				cfg.KeepHistory = false
				res, err := MeasureGrowth(cfg, steps)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				results[pi][run] = res
			}(i, r)
		}
	}
	wg.Wait()
	if firstErr != nil {
		return nil, errgo.Mask(firstErr, errgo.Any)
	}

	records := make([]SweepRecord, len(points))
	for i, pt := range points {
		records[i] = summarise(pt, results[i])
		sweepLogger.Debugf("%s: ratio %.3f±%.3f share %.2f", records[i].Label(axes),
			records[i].MeanRatio, records[i].StdRatio, records[i].RingShare)
	}
	return records, nil
}

func summarise(point map[string]float64, runs []GrowthResult) SweepRecord {
	rec := SweepRecord{Point: point, Runs: len(runs)}
	var ratios, diameters []float64
	peaks := make([]float64, 0, len(runs))
	rings := 0
	for _, res := range runs {
		peaks = append(peaks, float64(res.PeakFruiting))
		if !res.Defined {
			continue
		}
		ratios = append(ratios, res.Ratio)
		diameters = append(diameters, res.Ring.Diameter())
		if res.Ratio >= FairyRingRatio {
			rings++
		}
	}
	rec.Defined = len(ratios)
	if len(ratios) > 0 {
		rec.MeanRatio = stat.Mean(ratios, nil)
		rec.MeanDiameter = stat.Mean(diameters, nil)
	}
	if len(ratios) > 1 {
		_, rec.StdRatio = stat.MeanStdDev(ratios, nil)
	}
	if len(peaks) > 0 {
		rec.MeanPeakFruiting = stat.Mean(peaks, nil)
		rec.RingShare = float64(rings) / float64(len(runs))
	}
	rec.FairyRing = rec.RingShare >= FairyRingShare
	return rec
}

func cartesian(axes []SweepAxis) []map[string]float64 {
	points := []map[string]float64{{}}
	for _, a := range axes {
		next := make([]map[string]float64, 0, len(points)*len(a.Values))
		for _, p := range points {
			for _, v := range a.Values {
				q := make(map[string]float64, len(p)+1)
				for k, pv := range p {
					q[k] = pv
				}
				q[a.Key] = v
				next = append(next, q)
			}
		}
		points = next
	}
	return points
}
